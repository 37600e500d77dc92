package main // Interactive console entry point

import (
    "context"
    "flag"
    "log"
    "os"

    "github.com/joho/godotenv"

    "github.com/iliyamo/train-seat-reservation/internal/config"
    "github.com/iliyamo/train-seat-reservation/internal/console"
    "github.com/iliyamo/train-seat-reservation/internal/service"
)

func main() {
    _ = godotenv.Load()

    linesFile := flag.String("lines", envOr("LINES_FILE", "data/lines.yml"), "path of the YAML line catalogue")
    name := flag.String("line", "", "line to operate (defaults to the catalogue default)")
    flag.Parse()

    cat, err := config.LoadLineCatalog(*linesFile)
    if err != nil {
        log.Fatalf("line catalogue: %v", err)
    }
    if *name == "" {
        *name = cat.Default
    }
    var src *config.LineSource
    for i := range cat.Lines {
        if cat.Lines[i].Name == *name {
            src = &cat.Lines[i]
        }
    }
    if src == nil {
        log.Fatalf("line %q not in %s", *name, *linesFile)
    }

    l, err := service.LoadLine(context.Background(), *src, service.FileTicketSource{})
    if err != nil {
        log.Fatal(err)
    }
    if err := console.New(l, os.Stdin, os.Stdout).Run(); err != nil {
        log.Fatal(err)
    }
}

func envOr(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}
