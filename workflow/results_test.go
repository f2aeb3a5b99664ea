package workflow

import (
	"SentimentBot/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextResultsRequestLoads(t *testing.T) {
	next, effects, err := NextResults(ResultsState{Status: ResultsIdle}, Request{})
	require.NoError(t, err)
	assert.Equal(t, ResultsLoading, next.Status)
	assert.Equal(t, []Effect{FetchSentiments{}}, effects)
}

func TestNextResultsResolvedReplacesSentiments(t *testing.T) {
	loading := ResultsState{Status: ResultsLoading, Sentiments: []model.Sentiment{{Value: 1}}}
	payload := []model.Sentiment{{Value: 4}, {Value: 6}}

	next, effects, err := NextResults(loading, ResultsResolved{Sentiments: payload})
	require.NoError(t, err)
	assert.Empty(t, effects)
	assert.Equal(t, ResultsSuccess, next.Status)
	assert.Equal(t, payload, next.Sentiments)

	avg, err := next.Average()
	require.NoError(t, err)
	assert.Equal(t, "5.0", avg)

	payload[0].Value = 10
	assert.Equal(t, 4, next.Sentiments[0].Value, "state must not alias the event payload")
}

func TestNextResultsRejected(t *testing.T) {
	next, effects, err := NextResults(ResultsState{Status: ResultsLoading}, ResultsRejected{Err: model.ErrQueryFailed})
	require.NoError(t, err)
	assert.Empty(t, effects)
	assert.Equal(t, ResultsFailure, next.Status)
}

func TestNextResultsTerminalStates(t *testing.T) {
	events := []Event{Request{}, ResultsResolved{}, ResultsRejected{}, Reset{}, Retry{}}
	for _, status := range []ResultsStatus{ResultsSuccess, ResultsFailure} {
		for _, ev := range events {
			s := ResultsState{Status: status}
			next, effects, err := NextResults(s, ev)
			assert.ErrorIs(t, err, ErrNoTransition, "%s on %s", ev.Name(), status)
			assert.Empty(t, effects)
			assert.Equal(t, s, next)
		}
	}
}

func TestNextResultsIgnoresEarlyCompletion(t *testing.T) {
	s := ResultsState{Status: ResultsIdle}
	next, _, err := NextResults(s, ResultsResolved{Sentiments: []model.Sentiment{{Value: 3}}})
	assert.ErrorIs(t, err, ErrNoTransition)
	assert.Equal(t, s, next)
}

func TestResultsAverageEmpty(t *testing.T) {
	_, err := ResultsState{Status: ResultsSuccess}.Average()
	assert.ErrorIs(t, err, model.ErrNoParticipants)
}
