package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"auth-service/internal/config"
	"auth-service/internal/handler"
	"auth-service/internal/repository"
	"auth-service/internal/router"
	"auth-service/internal/service"
	"auth-service/internal/usecase"
	"auth-service/pkg/jwtutil"
	"auth-service/pkg/middleware"
)

// Run wires the service together and serves until a shutdown signal arrives.
func Run(cfg config.AppConfig, logger *zap.Logger) error {
	client, db, err := config.ConnectDB(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Warn("error closing mongo connection", zap.Error(err))
		}
	}()

	userRepo := repository.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(context.Background()); err != nil {
		return err
	}
	emailLogs := repository.NewEmailLogRepo(db)

	sender := service.NewEmailSender(service.EmailConfig{
		SMTPHost: cfg.SMTP.Host,
		SMTPPort: cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})
	mailer := service.NewLoggedMailer(sender, emailLogs, logger)

	uc := usecase.NewAuthUsecase(userRepo, mailer, logger)

	tokens := jwtutil.NewManager(cfg.JWTSecret, cfg.JWTExpiresIn)
	// The cookie must not outlive the token it carries.
	cookieTTL := cfg.CookieExpires
	if cookieTTL > tokens.TTL() {
		cookieTTL = tokens.TTL()
	}
	cookies := middleware.NewCookieWriter(cookieTTL, cfg.IsProduction())
	auth := middleware.NewAuthMiddleware(tokens, uc)

	authHandler := handler.NewAuthHandler(uc, tokens, cookies, logger)

	r := chi.NewRouter()
	router.SetupRoutes(r, authHandler, auth, cfg.CORSOrigin)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("auth HTTP server listening", zap.String("addr", cfg.HTTPAddr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		logger.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
		return err
	}

	logger.Info("graceful shutdown complete")
	return nil
}
