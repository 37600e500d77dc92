package router // package router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4" // Echo web framework
    "github.com/prometheus/client_golang/prometheus/promhttp"
    "github.com/redis/go-redis/v9"

    "github.com/iliyamo/train-seat-reservation/internal/config"
    "github.com/iliyamo/train-seat-reservation/internal/handler"
    "github.com/iliyamo/train-seat-reservation/internal/middleware"
)

// RegisterRoutes registers the unauthenticated operational endpoints:
// the health check and the Prometheus scrape endpoint.
func RegisterRoutes(e *echo.Echo) {
    e.GET("/healthz", handler.Health)
    e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// RegisterAuth registers the operator login under /v1/auth.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
    g := e.Group("/v1/auth")
    g.POST("/login", a.Login)
}

// Deps groups what RegisterLines needs besides the handler.  Rdb may be
// nil, in which case caching and rate limiting are skipped.
type Deps struct {
    JWTSecret string
    Rdb       *redis.Client
    Cache     config.CacheConfig
    RateLimit config.RateLimitConfig
}

// RegisterLines registers the per-line endpoints under /v1/lines.  Reads
// are public; reservation mutations are rate limited; clearing a line
// requires an OPERATOR token.
func RegisterLines(e *echo.Echo, h *handler.LineHandler, d Deps) {
    e.GET("/v1/lines", h.ListLines)

    g := e.Group("/v1/lines/:line")
    g.GET("/stations", h.GetStations, middleware.NewRedisCache(d.Cache, d.Rdb))
    g.GET("/availability", h.GetAvailability)
    g.GET("/fare", h.GetFare)
    g.GET("/seats", h.ListSeats)
    g.GET("/seats/:seat", h.GetSeat)

    limit := middleware.NewTokenBucket(d.RateLimit, d.Rdb)
    g.POST("/reservations", h.CreateReservation, limit)
    g.DELETE("/reservations", h.CancelReservation, limit)

    g.POST("/clear", h.ClearAll,
        middleware.JWTAuth(d.JWTSecret),
        middleware.RequireRole(handler.RoleOperator),
    )
}
