package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAverage(t *testing.T) {
	tests := []struct {
		name       string
		sentiments []Sentiment
		want       string
	}{
		{name: "both extremes", sentiments: []Sentiment{{Value: 0}, {Value: 10}}, want: "5.0"},
		{name: "single value", sentiments: []Sentiment{{Value: 7}}, want: "7.0"},
		{name: "repeating fraction", sentiments: []Sentiment{{Value: 1}, {Value: 2}, {Value: 2}}, want: "1.7"},
		{name: "all zero", sentiments: []Sentiment{{Value: 0}, {Value: 0}}, want: "0.0"},
		{name: "two thirds", sentiments: []Sentiment{{Value: 1}, {Value: 0}, {Value: 1}}, want: "0.7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Average(tt.sentiments)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAverageEmpty(t *testing.T) {
	_, err := Average(nil)
	assert.ErrorIs(t, err, ErrNoParticipants)

	_, err = Average([]Sentiment{})
	assert.ErrorIs(t, err, ErrNoParticipants)
}

func TestValidateLevel(t *testing.T) {
	for level := MinLevel; level <= MaxLevel; level++ {
		assert.NoError(t, ValidateLevel(level))
	}
	assert.ErrorIs(t, ValidateLevel(-1), ErrLevelOutOfRange)
	assert.ErrorIs(t, ValidateLevel(11), ErrLevelOutOfRange)
}
