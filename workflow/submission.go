package workflow

import (
	"SentimentBot/model"
	"fmt"
)

type SubmissionStatus int

const (
	SubmissionIdle SubmissionStatus = iota
	SubmissionSubmitting
	SubmissionSuccess
	SubmissionFailure
)

func (s SubmissionStatus) String() string {
	switch s {
	case SubmissionIdle:
		return "idle"
	case SubmissionSubmitting:
		return "submitting"
	case SubmissionSuccess:
		return "success"
	case SubmissionFailure:
		return "failure"
	default:
		return fmt.Sprintf("SubmissionStatus(%d)", int(s))
	}
}

// SubmissionState is the submission workflow's state plus its context.
// Level is nil until a rating has been selected.
type SubmissionState struct {
	Status SubmissionStatus
	Level  *int
}

func (s SubmissionState) String() string { return s.Status.String() }

// HasLevel reports whether a rating has been selected.
func (s SubmissionState) HasLevel() bool { return s.Level != nil }

// NextSubmission is the pure transition function of the submission workflow.
// Entering submitting yields a SubmitSentiment effect for the selected level.
func NextSubmission(s SubmissionState, ev Event) (SubmissionState, []Effect, error) {
	switch s.Status {
	case SubmissionIdle:
		switch e := ev.(type) {
		case Reset:
			return SubmissionState{Status: SubmissionIdle}, nil, nil
		case Select:
			if err := model.ValidateLevel(e.Level); err != nil {
				return s, nil, err
			}
			level := e.Level
			return SubmissionState{Status: SubmissionIdle, Level: &level}, nil, nil
		case Submit:
			if !s.HasLevel() {
				return s, nil, fmt.Errorf("%w: %s from %s without a level", ErrNoTransition, ev.Name(), s.Status)
			}
			return submitting(s)
		}
	case SubmissionSubmitting:
		switch ev.(type) {
		case SubmissionResolved:
			return SubmissionState{Status: SubmissionSuccess, Level: s.Level}, nil, nil
		case SubmissionRejected:
			return SubmissionState{Status: SubmissionFailure, Level: s.Level}, nil, nil
		}
	case SubmissionFailure:
		switch ev.(type) {
		case Reset:
			return SubmissionState{Status: SubmissionIdle}, nil, nil
		case Retry:
			return submitting(s)
		}
	}
	return s, nil, fmt.Errorf("%w: %s from %s", ErrNoTransition, ev.Name(), s.Status)
}

func submitting(s SubmissionState) (SubmissionState, []Effect, error) {
	next := SubmissionState{Status: SubmissionSubmitting, Level: s.Level}
	return next, []Effect{SubmitSentiment{Level: *s.Level}}, nil
}
