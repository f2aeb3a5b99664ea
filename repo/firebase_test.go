package repo

import (
	"SentimentBot/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderByKey(t *testing.T) {
	byKey := map[string]model.Sentiment{
		"-NxB2": {Value: 9},
		"-NxA1": {Value: 1},
		"-NxC3": {Value: 5},
	}
	assert.Equal(t, []model.Sentiment{{Value: 1}, {Value: 9}, {Value: 5}}, orderByKey(byKey))
	assert.Empty(t, orderByKey(nil))
}
