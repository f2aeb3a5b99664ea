package repo

import (
	"SentimentBot/model"
	"context"
	"fmt"
	"sort"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"
)

const sentimentsPath = "sentiments"

// FirebaseConnector stores sentiments in the Firebase Realtime Database.
type FirebaseConnector struct {
	app    *firebase.App
	client *db.Client
}

// NewFirebaseConnector creates a new Firebase connector
func NewFirebaseConnector(ctx context.Context, serviceAccountKeyPath string, databaseURL string) (*FirebaseConnector, error) {
	opt := option.WithCredentialsFile(serviceAccountKeyPath)

	config := &firebase.Config{
		DatabaseURL: databaseURL,
	}
	app, err := firebase.NewApp(ctx, config, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing Firebase app: %w", err)
	}

	client, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting database client: %w", err)
	}

	return &FirebaseConnector{
		app:    app,
		client: client,
	}, nil
}

// CreateSentiment pushes a new sentiment under /sentiments.
func (fc *FirebaseConnector) CreateSentiment(ctx context.Context, value int) error {
	if err := model.ValidateLevel(value); err != nil {
		return fmt.Errorf("%w: %w", model.ErrMutationFailed, err)
	}

	ref := fc.client.NewRef(sentimentsPath)
	if _, err := ref.Push(ctx, model.Sentiment{Value: value}); err != nil {
		return fmt.Errorf("%w: error creating sentiment: %w", model.ErrMutationFailed, err)
	}
	return nil
}

// AllSentiments reads every sentiment under /sentiments in push order.
func (fc *FirebaseConnector) AllSentiments(ctx context.Context) ([]model.Sentiment, error) {
	ref := fc.client.NewRef(sentimentsPath)
	var sentiments map[string]model.Sentiment
	if err := ref.Get(ctx, &sentiments); err != nil {
		return nil, fmt.Errorf("%w: error listing sentiments: %w", model.ErrQueryFailed, err)
	}
	return orderByKey(sentiments), nil
}

// orderByKey flattens a push-keyed map. Push keys sort chronologically.
func orderByKey(byKey map[string]model.Sentiment) []model.Sentiment {
	keys := make([]string, 0, len(byKey))
	for key := range byKey {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	sentiments := make([]model.Sentiment, 0, len(keys))
	for _, key := range keys {
		sentiments = append(sentiments, byKey[key])
	}
	return sentiments
}

var _ SentimentClient = (*FirebaseConnector)(nil)
