package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"taskboard/internal/config"
	"taskboard/internal/db"
	"taskboard/internal/domain"
	"taskboard/internal/logger"
	"taskboard/internal/repository"
	"taskboard/internal/service"
)

// Registers a user (or logs in when it exists) and prints an identity token
// usable as the authToken cookie.
func main() {
	email := flag.String("email", "tester@example.com", "user email")
	password := flag.String("password", "secret123", "user password")
	flag.Parse()

	cfg := config.Load()
	ctx := context.Background()

	h, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("connect failed", "error", err)
	}
	defer h.Close()
	if err := h.Migrate(ctx); err != nil {
		logger.Fatal("migrate failed", "error", err)
	}

	stores := repository.NewStores(h)
	tokens, err := service.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		logger.Fatal("jwt setup failed", "error", err)
	}
	auth := service.NewAuthService(stores.Users, service.NewPasswordHasher(cfg.BcryptCost), tokens)

	u, token, err := auth.Register(ctx, *email, *password)
	if errors.Is(err, domain.ErrAlreadyExists) {
		u, token, err = auth.Authenticate(ctx, *email, *password)
		if err == nil {
			logger.Info("user already exists", "user_id", u.ID)
		}
	} else if err == nil {
		logger.Info("user created", "user_id", u.ID)
	}
	if err != nil {
		logger.Fatal("create user failed", "error", err)
	}

	fmt.Printf("token=%s\n", token)
}
