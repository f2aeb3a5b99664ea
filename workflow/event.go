package workflow

import (
	"SentimentBot/model"
	"errors"
)

// ErrNoTransition is returned by a transition function when the current
// state defines no transition for the event. The state is left unchanged.
var ErrNoTransition = errors.New("no transition defined")

// Event is anything a workflow reacts to: user intents sent by the
// presentation layer, and completion events fed back by the driver.
type Event interface {
	Name() string
}

type Select struct{ Level int }
type Submit struct{}
type Reset struct{}
type Retry struct{}
type Request struct{}

// SubmissionResolved and SubmissionRejected settle a pending mutation.
type SubmissionResolved struct{}
type SubmissionRejected struct{ Err error }

// ResultsResolved and ResultsRejected settle a pending query.
type ResultsResolved struct{ Sentiments []model.Sentiment }
type ResultsRejected struct{ Err error }

func (Select) Name() string             { return "SELECT" }
func (Submit) Name() string             { return "SUBMIT" }
func (Reset) Name() string              { return "RESET" }
func (Retry) Name() string              { return "RETRY" }
func (Request) Name() string            { return "REQUEST" }
func (SubmissionResolved) Name() string { return "SUBMISSION_RESOLVED" }
func (SubmissionRejected) Name() string { return "SUBMISSION_REJECTED" }
func (ResultsResolved) Name() string    { return "RESULTS_RESOLVED" }
func (ResultsRejected) Name() string    { return "RESULTS_REJECTED" }

// Effect describes an asynchronous call a transition asks the driver to make.
type Effect interface {
	effect()
}

// SubmitSentiment stores one rating through the backend mutation.
type SubmitSentiment struct{ Level int }

// FetchSentiments loads every stored rating through the backend query.
type FetchSentiments struct{}

func (SubmitSentiment) effect() {}
func (FetchSentiments) effect() {}
