package main // Entry point package

import (
    "context"   // Root context for startup and the consumer
    "log"       // Logging library
    "os"        // Signals
    "os/signal" // Graceful shutdown
    "syscall"
    "time"

    "github.com/joho/godotenv"    // Loads .env in development
    "github.com/labstack/echo/v4" // Echo web framework

    "github.com/iliyamo/train-seat-reservation/internal/config"     // Internal config loader
    "github.com/iliyamo/train-seat-reservation/internal/database"   // MySQL ticket source
    "github.com/iliyamo/train-seat-reservation/internal/handler"    // HTTP handlers
    "github.com/iliyamo/train-seat-reservation/internal/queue"      // Ticket event consumer
    "github.com/iliyamo/train-seat-reservation/internal/repository" // Ticket repository
    "github.com/iliyamo/train-seat-reservation/internal/router"     // Internal router setup
    "github.com/iliyamo/train-seat-reservation/internal/service"    // Booking service
)

func main() {
    if err := godotenv.Load(); err != nil {
        log.Printf("no .env file loaded: %v", err)
    }
    cfg := config.Load() // Load environment config

    ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
    defer stop()

    cat, err := config.LoadLineCatalog(cfg.LinesFile)
    if err != nil {
        log.Fatalf("line catalogue: %v", err)
    }

    var tickets service.TicketSource = service.FileTicketSource{}
    if cfg.TicketSource == "mysql" {
        db, err := database.Open(config.LoadDB())
        if err != nil {
            log.Fatalf("database: %v", err)
        }
        defer db.Close()
        tickets = service.DBTicketSource{Repo: repository.NewTicketRepo(db)}
    }

    lines, err := service.LoadRegistry(ctx, cat, tickets)
    if err != nil {
        log.Fatal(err)
    }

    var pub service.EventPublisher = service.NopPublisher{}
    if cfg.EventsEnabled {
        pub = service.NewRabbitPublisher(cfg.AMQPURL)
    }
    if cfg.ConsumerEnabled {
        go func() {
            if err := queue.StartTicketConsumer(ctx, cfg.AMQPURL, cfg.LogDir); err != nil && ctx.Err() == nil {
                log.Printf("ticket-consumer: stopped: %v", err)
            }
        }()
    }

    rdb := config.NewRedisClient()
    if rdb != nil {
        defer rdb.Close()
    }

    e := echo.New()          // Create Echo instance
    router.RegisterRoutes(e) // Register application routes
    router.RegisterAuth(e, handler.NewAuthHandler(cfg))
    router.RegisterLines(e, handler.NewLineHandler(service.NewBookingService(lines, pub)), router.Deps{
        JWTSecret: cfg.JWTSecret,
        Rdb:       rdb,
        Cache:     config.LoadCacheConfig(),
        RateLimit: config.LoadRateLimitConfig(),
    })

    e.HideBanner = true

    addr := ":" + cfg.Port                                                          // Address string with port
    log.Printf("listening on %s (env=%s, lines=%v)", addr, cfg.Env, lines.Names()) // Print startup info

    go func() {
        <-ctx.Done()
        sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
        defer cancel()
        _ = e.Shutdown(sctx)
    }()
    if err := e.Start(addr); err != nil && ctx.Err() == nil { // Start HTTP server
        log.Fatal(err) // Log and exit if server fails
    }
}
