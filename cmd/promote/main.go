// Command promote grants the administrator role to an existing account.
// It is used to bootstrap the first admin user.
//
// Usage:
//
//	promote --username=alice
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/heartmarshall/wordassist-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wordassist-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/wordassist-backend/internal/config"
	"github.com/heartmarshall/wordassist-backend/internal/domain"
)

func main() {
	username := flag.String("username", "", "username of the account to promote to admin")
	flag.Parse()

	if *username == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --username=alice")
		os.Exit(1)
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, config.DatabaseConfig{DSN: dsn, MaxConns: 2})
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	err = user.New(pool).SetRoleByUsername(ctx, *username, domain.UserRoleAdmin)
	if errors.Is(err, domain.ErrNotFound) {
		fmt.Printf("No user found with username %q.\n", *username)
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("update role: %v", err)
	}

	fmt.Printf("User %q promoted to admin.\n", *username)
}
