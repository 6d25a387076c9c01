package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

type AppConfig struct {
	HTTPAddr string
	Env      string // "development" or "production"

	MongoURI string
	MongoDB  string

	JWTSecret     string
	JWTExpiresIn  time.Duration
	CookieExpires time.Duration

	CORSOrigin string

	SMTP SMTPConfig
}

// IsProduction affects the session cookie's Secure/SameSite attributes.
func (c AppConfig) IsProduction() bool { return c.Env == "production" }

func Load() AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Println("Auth: No .env file found, relying on system env vars")
	}
	return AppConfig{
		HTTPAddr: getEnv("HTTP_ADDR", ":8000"),
		Env:      getEnv("APP_ENV", "development"),

		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "auth"),

		JWTSecret:     getEnv("JWT_SECRET", ""),
		JWTExpiresIn:  getEnvDuration("JWT_EXPIRES_IN", 24*time.Hour),
		CookieExpires: time.Duration(getEnvInt("JWT_COOKIE_EXPIRES_IN", 1)) * 24 * time.Hour,

		CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:3000"),

		SMTP: SMTPConfig{
			Host:     getEnv("SMTPHost", ""),
			Port:     getEnv("SMTPPort", "465"),
			Username: getEnv("SMTPUser", ""),
			Password: getEnv("SMTPPass", ""),
			From:     getEnv("MAIL_FROM", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
