package main // Prints a bcrypt hash for OPERATOR_PASSWORD_HASH

import (
    "bufio"
    "flag"
    "fmt"
    "log"
    "os"
    "strings"

    "golang.org/x/crypto/bcrypt"

    "github.com/iliyamo/train-seat-reservation/internal/utils"
)

func main() {
    cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost")
    flag.Parse()

    plain := flag.Arg(0)
    if plain == "" {
        // read from stdin so the password stays out of shell history
        s := bufio.NewScanner(os.Stdin)
        if s.Scan() {
            plain = strings.TrimSpace(s.Text())
        }
    }
    if plain == "" {
        log.Fatal("usage: hashpass [-cost N] <password>  (or pipe it on stdin)")
    }
    hash, err := utils.HashPassword(plain, *cost)
    if err != nil {
        log.Fatal(err)
    }
    fmt.Println(hash)
}
