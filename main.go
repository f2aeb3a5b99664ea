package main

import (
	"SentimentBot/handler"
	"SentimentBot/repo"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading configuration")
	}

	logger, err := NewLogger(cfg, os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("Error configuring logger")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client, err := NewSentimentClient(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Str("backend", cfg.Backend).Msg("Error initializing backend")
	}

	h := handler.NewSentimentBotHandler(client, logger)

	opts := []bot.Option{
		bot.WithDefaultHandler(h.DefaultHandler),
	}

	b, err := bot.New(cfg.BotToken, opts...)
	if err != nil {
		logger.Fatal().Err(err).Msg("Error creating bot")
	}
	h.Register(b)

	logger.Info().Str("backend", cfg.Backend).Msg("Bot started")
	b.Start(ctx)
	logger.Info().Msg("Bot stopped")
}

// NewLogger builds the process logger from the configured level and format.
func NewLogger(cfg Config, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("invalid SENTIMENT_LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}

	if cfg.LogFormat == "console" {
		w = zerolog.ConsoleWriter{Out: w}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

// NewSentimentClient constructs the single backend client shared by every session.
func NewSentimentClient(ctx context.Context, cfg Config, logger zerolog.Logger) (repo.SentimentClient, error) {
	switch cfg.Backend {
	case BackendFirebase:
		firebaseConnector, err := repo.NewFirebaseConnector(ctx, cfg.FirebaseServiceAccountKeyPath, cfg.FirebaseDatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("error creating Firebase connector: %w", err)
		}
		return firebaseConnector, nil
	case BackendGraphQL:
		httpClient := &http.Client{Timeout: cfg.RequestTimeout}
		return repo.NewGraphQLConnector(cfg.GraphQLEndpoint, cfg.FaunaSecret, httpClient, logger), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}
