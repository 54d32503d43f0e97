package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/wensjes/registry/internal/auth"
	"github.com/wensjes/registry/internal/config"
	"github.com/wensjes/registry/internal/server"
	"github.com/wensjes/registry/internal/service"
	"github.com/wensjes/registry/internal/storage"
	"github.com/wensjes/registry/internal/storage/redis"
	"github.com/wensjes/registry/internal/storage/sqlite"
	"github.com/wensjes/registry/pkg/logging"
)

func main() {
	logging.Setup()
	cfg := config.Load()
	ctx := context.Background()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET must be set")
		os.Exit(1)
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize storage", "store", cfg.Store, "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "store", cfg.Store)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	authenticator := auth.NewPasswordAuthenticator(store)
	session := auth.NewSession(store, tokens, auth.NewFileTokenStore(cfg.TokenPath))
	if err := session.Restore(ctx); err != nil {
		slog.Error("Failed to restore session", "error", err)
		os.Exit(1)
	}
	if user := session.Current(); user != nil {
		slog.Info("Session restored", "username", user.Username)
	}

	svc := service.NewRegistryService(store, slog.Default())
	srv := server.New(svc, authenticator, store, tokens, session, cfg.JWTSecret, slog.Default())

	// h2c allows HTTP/2 without TLS so long-lived watch streams multiplex
	// behind plaintext reverse proxies.
	handler := h2c.NewHandler(srv.Router(), &http2.Server{})

	httpSrv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	go func() {
		slog.Info("Server starting", "address", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down")
	shutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutCtx); err != nil {
		slog.Error("Shutdown failed", "error", err)
	}
}

func openStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.Store {
	case config.StoreRedis:
		return redis.New(ctx, cfg.RedisAddr, cfg.RedisPassword)
	default:
		return sqlite.New(cfg.DBPath)
	}
}
