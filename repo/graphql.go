package repo

import (
	"SentimentBot/model"
	"context"
	"fmt"
	"net/http"

	"github.com/machinebox/graphql"
	"github.com/rs/zerolog"
)

// DefaultGraphQLEndpoint is the hosted Fauna GraphQL API.
const DefaultGraphQLEndpoint = "https://graphql.fauna.com/graphql"

const createSentimentMutation = `
	mutation CreateSentiment($value: Int!) {
		createSentiment(data: { value: $value }) {
			value
		}
	}
`

const allSentimentsQuery = `
	query GetAllSentiments {
		allSentiments {
			data {
				value
			}
		}
	}
`

// GraphQLConnector talks to a GraphQL backend with a static bearer token.
type GraphQLConnector struct {
	client *graphql.Client
	secret string
}

// NewGraphQLConnector creates a connector for endpoint. A nil httpClient
// falls back to http.DefaultClient.
func NewGraphQLConnector(endpoint, secret string, httpClient *http.Client, logger zerolog.Logger) *GraphQLConnector {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	client := graphql.NewClient(endpoint, graphql.WithHTTPClient(httpClient))
	gqlLogger := logger.With().Str("component", "graphql").Logger()
	client.Log = func(s string) { gqlLogger.Trace().Msg(s) }

	return &GraphQLConnector{
		client: client,
		secret: secret,
	}
}

// CreateSentiment runs the createSentiment mutation for value.
func (c *GraphQLConnector) CreateSentiment(ctx context.Context, value int) error {
	if err := model.ValidateLevel(value); err != nil {
		return fmt.Errorf("%w: %w", model.ErrMutationFailed, err)
	}

	req := c.newRequest(createSentimentMutation)
	req.Var("value", value)

	var resp struct {
		CreateSentiment model.Sentiment `json:"createSentiment"`
	}
	if err := c.client.Run(ctx, req, &resp); err != nil {
		return fmt.Errorf("%w: error creating sentiment: %w", model.ErrMutationFailed, err)
	}
	return nil
}

// AllSentiments runs the allSentiments query.
func (c *GraphQLConnector) AllSentiments(ctx context.Context) ([]model.Sentiment, error) {
	var resp struct {
		AllSentiments struct {
			Data []model.Sentiment `json:"data"`
		} `json:"allSentiments"`
	}
	if err := c.client.Run(ctx, c.newRequest(allSentimentsQuery), &resp); err != nil {
		return nil, fmt.Errorf("%w: error listing sentiments: %w", model.ErrQueryFailed, err)
	}

	sentiments := resp.AllSentiments.Data
	if sentiments == nil {
		sentiments = []model.Sentiment{}
	}
	return sentiments, nil
}

func (c *GraphQLConnector) newRequest(q string) *graphql.Request {
	req := graphql.NewRequest(q)
	req.Header.Set("Authorization", "Bearer "+c.secret)
	return req
}

var _ SentimentClient = (*GraphQLConnector)(nil)
