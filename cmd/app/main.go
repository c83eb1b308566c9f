package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskboard/internal/config"
	"taskboard/internal/db"
	httpServer "taskboard/internal/http"
	"taskboard/internal/http/middleware"
	"taskboard/internal/logger"
	"taskboard/internal/repository"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

var version = "dev"

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	store, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("database connection failed", "error", err)
	}
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		logger.Fatal("migrations failed", "error", err)
	}

	stores := repository.NewStores(store)

	tokens, err := service.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		logger.Fatal("jwt setup failed", "error", err)
	}
	authService := service.NewAuthService(stores.Users, service.NewPasswordHasher(cfg.BcryptCost), tokens)
	taskService := service.NewTaskService(stores.Tasks)

	if middleware.InitRedisRateLimiter(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB) {
		logger.Info("redis rate limiting enabled", "addr", cfg.RedisAddr)
	}
	defer middleware.CloseRedis()

	r := httpServer.NewRouter(httpServer.Deps{
		Auth:    authService,
		Tasks:   taskService,
		DB:      store,
		Config:  cfg,
		Version: version,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server started", "port", cfg.AppPort, "env", cfg.AppEnv, "driver", store.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return
	}

	logger.Info("server exited")
}
