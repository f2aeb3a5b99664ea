package main

import (
	"SentimentBot/repo"
	"fmt"
	"os"
	"time"
)

const (
	BackendGraphQL  = "graphql"
	BackendFirebase = "firebase"

	defaultRequestTimeout = 15 * time.Second
)

// Config is read once from the environment at startup.
type Config struct {
	BotToken string
	Backend  string

	FaunaSecret     string
	GraphQLEndpoint string
	RequestTimeout  time.Duration

	FirebaseServiceAccountKeyPath string
	FirebaseDatabaseURL           string

	LogLevel  string
	LogFormat string
}

// LoadConfig reads the environment and checks that the selected backend
// has its credentials.
func LoadConfig() (Config, error) {
	cfg := Config{
		BotToken:                      os.Getenv("TELEGRAM_BOT_TOKEN"),
		Backend:                       envOr("SENTIMENT_BACKEND", BackendGraphQL),
		FaunaSecret:                   os.Getenv("FAUNA_SECRET"),
		GraphQLEndpoint:               envOr("SENTIMENT_GRAPHQL_ENDPOINT", repo.DefaultGraphQLEndpoint),
		RequestTimeout:                defaultRequestTimeout,
		FirebaseServiceAccountKeyPath: os.Getenv("FIREBASE_SERVICE_ACCOUNT_KEY_PATH"),
		FirebaseDatabaseURL:           os.Getenv("FIREBASE_DATABASE_URL"),
		LogLevel:                      envOr("SENTIMENT_LOG_LEVEL", "info"),
		LogFormat:                     envOr("SENTIMENT_LOG_FORMAT", "json"),
	}

	if raw := os.Getenv("SENTIMENT_REQUEST_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SENTIMENT_REQUEST_TIMEOUT %q: %w", raw, err)
		}
		cfg.RequestTimeout = timeout
	}

	if cfg.BotToken == "" {
		return Config{}, fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable not set")
	}

	switch cfg.Backend {
	case BackendGraphQL:
		if cfg.FaunaSecret == "" {
			return Config{}, fmt.Errorf("FAUNA_SECRET environment variable not set")
		}
	case BackendFirebase:
		if cfg.FirebaseServiceAccountKeyPath == "" {
			return Config{}, fmt.Errorf("FIREBASE_SERVICE_ACCOUNT_KEY_PATH environment variable not set")
		}
		if cfg.FirebaseDatabaseURL == "" {
			return Config{}, fmt.Errorf("FIREBASE_DATABASE_URL environment variable not set")
		}
	default:
		return Config{}, fmt.Errorf("unknown SENTIMENT_BACKEND %q", cfg.Backend)
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
