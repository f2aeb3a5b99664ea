package repo

import (
	"SentimentBot/model"
	"context"
)

// SentimentClient is the query/mutation backend both workflows talk to.
// Calls are single-shot: no retries, batching or pagination.
type SentimentClient interface {
	// CreateSentiment stores one rating. Errors wrap model.ErrMutationFailed.
	CreateSentiment(ctx context.Context, value int) error
	// AllSentiments returns every stored rating in storage order.
	// Errors wrap model.ErrQueryFailed.
	AllSentiments(ctx context.Context) ([]model.Sentiment, error)
}
