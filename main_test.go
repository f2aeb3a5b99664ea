package main

import (
	"SentimentBot/repo"
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, env map[string]string) {
	t.Helper()
	for _, key := range []string{
		"TELEGRAM_BOT_TOKEN", "SENTIMENT_BACKEND", "FAUNA_SECRET", "SENTIMENT_GRAPHQL_ENDPOINT",
		"SENTIMENT_REQUEST_TIMEOUT", "FIREBASE_SERVICE_ACCOUNT_KEY_PATH", "FIREBASE_DATABASE_URL",
		"SENTIMENT_LOG_LEVEL", "SENTIMENT_LOG_FORMAT",
	} {
		t.Setenv(key, env[key])
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	setEnv(t, map[string]string{"TELEGRAM_BOT_TOKEN": "token", "FAUNA_SECRET": "secret"})

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, BackendGraphQL, cfg.Backend)
	assert.Equal(t, repo.DefaultGraphQLEndpoint, cfg.GraphQLEndpoint)
	assert.Equal(t, defaultRequestTimeout, cfg.RequestTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{name: "missing token", env: map[string]string{"FAUNA_SECRET": "s"}, want: "TELEGRAM_BOT_TOKEN"},
		{name: "missing secret", env: map[string]string{"TELEGRAM_BOT_TOKEN": "t"}, want: "FAUNA_SECRET"},
		{name: "unknown backend", env: map[string]string{"TELEGRAM_BOT_TOKEN": "t", "SENTIMENT_BACKEND": "mongo"}, want: "mongo"},
		{name: "firebase without key", env: map[string]string{"TELEGRAM_BOT_TOKEN": "t", "SENTIMENT_BACKEND": "firebase", "FIREBASE_DATABASE_URL": "u"}, want: "FIREBASE_SERVICE_ACCOUNT_KEY_PATH"},
		{name: "firebase without url", env: map[string]string{"TELEGRAM_BOT_TOKEN": "t", "SENTIMENT_BACKEND": "firebase", "FIREBASE_SERVICE_ACCOUNT_KEY_PATH": "k"}, want: "FIREBASE_DATABASE_URL"},
		{name: "bad timeout", env: map[string]string{"TELEGRAM_BOT_TOKEN": "t", "FAUNA_SECRET": "s", "SENTIMENT_REQUEST_TIMEOUT": "soon"}, want: "SENTIMENT_REQUEST_TIMEOUT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, tt.env)
			_, err := LoadConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	setEnv(t, map[string]string{
		"TELEGRAM_BOT_TOKEN":         "token",
		"FAUNA_SECRET":               "secret",
		"SENTIMENT_GRAPHQL_ENDPOINT": "http://localhost:8084/graphql",
		"SENTIMENT_REQUEST_TIMEOUT":  "2s",
		"SENTIMENT_LOG_LEVEL":        "debug",
	})

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8084/graphql", cfg.GraphQLEndpoint)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(Config{LogLevel: "warn"}, &buf)
	require.NoError(t, err)

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"message":"shown"`)

	_, err = NewLogger(Config{LogLevel: "loud"}, &buf)
	assert.Error(t, err)
}

func TestNewSentimentClientGraphQL(t *testing.T) {
	client, err := NewSentimentClient(context.Background(), Config{
		Backend:         BackendGraphQL,
		GraphQLEndpoint: "http://localhost/graphql",
		FaunaSecret:     "secret",
		RequestTimeout:  time.Second,
	}, zerolog.Nop())
	require.NoError(t, err)
	assert.IsType(t, &repo.GraphQLConnector{}, client)

	_, err = NewSentimentClient(context.Background(), Config{Backend: "mongo"}, zerolog.Nop())
	assert.Error(t, err)
}
