// Command export-token prints a signed bearer token for GET /listall, or with -hash a
// bcrypt hash suitable for EXPORT_SECRET_HASH.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"conferenceassistant/config"
	"conferenceassistant/internal/adapters/auth"
)

func main() {
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	hash := flag.Bool("hash", false, "print a bcrypt hash of EXPORT_SECRET instead of a token")
	flag.Parse()

	if err := run(*ttl, *hash); err != nil {
		fmt.Fprintf(os.Stderr, "export-token: %v\n", err)
		os.Exit(1)
	}
}

func run(ttl time.Duration, hash bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.ExportSecret == "" {
		return fmt.Errorf("EXPORT_SECRET is not set")
	}

	if hash {
		h, err := auth.HashSecret(cfg.ExportSecret, bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		fmt.Println(h)
		return nil
	}

	token, err := auth.NewExportTokenIssuer(cfg.ExportSecret).Issue(ttl)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}
