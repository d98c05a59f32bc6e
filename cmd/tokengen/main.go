// Command tokengen issues a session token signed with the service's
// JWT_SECRET, for use as a Bearer token or session-token cookie.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tair/inventory-service/pkg/auth"
	"github.com/tair/inventory-service/pkg/config"
)

func main() {
	userID := flag.Uint("user-id", 1, "user id claim")
	username := flag.String("username", "admin", "username claim")
	role := flag.String("role", "admin", "role claim")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	token, err := auth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL).
		GenerateToken(uint(*userID), *username, *role)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(token)
}
