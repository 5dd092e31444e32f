package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shiharai/invoice-service/internal/application/services"
	"github.com/shiharai/invoice-service/internal/config"
	"github.com/shiharai/invoice-service/internal/infrastructure/auth"
	"github.com/shiharai/invoice-service/internal/infrastructure/persistence"
	"github.com/shiharai/invoice-service/internal/infrastructure/persistence/postgres"
	"github.com/shiharai/invoice-service/internal/interfaces/rest/handlers"
	"github.com/shiharai/invoice-service/internal/interfaces/rest/middleware"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting invoice service",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
	)

	calc, err := cfg.Invoice.Calculator()
	if err != nil {
		logger.Error("invalid billing rate configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	db, err := persistence.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	invoiceRepo := postgres.NewInvoiceRepository(db)
	accountRepo := postgres.NewAccountRepository(db)

	tokenService := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	authService := services.NewAuthService(accountRepo, tokenService)
	invoiceService := services.NewInvoiceService(invoiceRepo, calc)

	h := handlers.NewHandlers(authService, invoiceService, logger)

	authenticate := middleware.Authenticate(tokenService, accountRepo, logger)
	router := http.Handler(handlers.NewRouter(h, authenticate))

	handler := middleware.Recovery(logger)(router)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Timeout(cfg.Server.ReadTimeout)(handler)
	handler = middleware.TraceID()(handler)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
