package workflow

import (
	"SentimentBot/model"
	"fmt"
)

type ResultsStatus int

const (
	ResultsIdle ResultsStatus = iota
	ResultsLoading
	ResultsSuccess
	ResultsFailure
)

func (s ResultsStatus) String() string {
	switch s {
	case ResultsIdle:
		return "idle"
	case ResultsLoading:
		return "loading"
	case ResultsSuccess:
		return "success"
	case ResultsFailure:
		return "failure"
	default:
		return fmt.Sprintf("ResultsStatus(%d)", int(s))
	}
}

// ResultsState is the results workflow's state plus the last fetched records.
type ResultsState struct {
	Status     ResultsStatus
	Sentiments []model.Sentiment
}

func (s ResultsState) String() string { return s.Status.String() }

// Average is the displayed average of the fetched records.
func (s ResultsState) Average() (string, error) {
	return model.Average(s.Sentiments)
}

// NextResults is the pure transition function of the results workflow.
// Success and failure are both terminal.
func NextResults(s ResultsState, ev Event) (ResultsState, []Effect, error) {
	switch s.Status {
	case ResultsIdle:
		if _, ok := ev.(Request); ok {
			return ResultsState{Status: ResultsLoading, Sentiments: s.Sentiments}, []Effect{FetchSentiments{}}, nil
		}
	case ResultsLoading:
		switch e := ev.(type) {
		case ResultsResolved:
			sentiments := make([]model.Sentiment, len(e.Sentiments))
			copy(sentiments, e.Sentiments)
			return ResultsState{Status: ResultsSuccess, Sentiments: sentiments}, nil, nil
		case ResultsRejected:
			return ResultsState{Status: ResultsFailure, Sentiments: s.Sentiments}, nil, nil
		}
	}
	return s, nil, fmt.Errorf("%w: %s from %s", ErrNoTransition, ev.Name(), s.Status)
}
