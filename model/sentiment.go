package model

import (
	"fmt"
	"strconv"
)

// Rating bounds for a single sentiment.
const (
	MinLevel = 0
	MaxLevel = 10
)

type Sentiment struct {
	Value int `json:"value"`
}

// ValidateLevel reports whether level can be stored as a sentiment value.
func ValidateLevel(level int) error {
	if level < MinLevel || level > MaxLevel {
		return fmt.Errorf("%w: %d not in %d..%d", ErrLevelOutOfRange, level, MinLevel, MaxLevel)
	}
	return nil
}

// Average returns the mean of all values formatted with one decimal place.
func Average(sentiments []Sentiment) (string, error) {
	if len(sentiments) == 0 {
		return "", ErrNoParticipants
	}

	total := 0
	for _, s := range sentiments {
		total += s.Value
	}
	return strconv.FormatFloat(float64(total)/float64(len(sentiments)), 'f', 1, 64), nil
}
