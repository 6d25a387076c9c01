package main

import (
	"fmt"
	"log"

	"go.uber.org/zap"

	"auth-service/internal/config"
	"auth-service/internal/server"
)

func main() {
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	if err := server.Run(cfg, logger); err != nil {
		log.Fatalf("auth service: %v", err)
	}
}
