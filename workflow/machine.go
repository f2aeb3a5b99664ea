package workflow

import (
	"SentimentBot/model"
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TransitionFunc computes the next state for an event. It must be pure:
// side effects are returned as Effects and run by the Machine.
type TransitionFunc[S any] func(S, Event) (S, []Effect, error)

// EffectRunner performs an effect and reports its outcome as a completion
// event that is fed back into the same Machine.
type EffectRunner func(ctx context.Context, eff Effect) Event

// Machine drives a pure transition function. Transitions are serialized;
// every effect runs on its own goroutine and settles through Send.
type Machine[S fmt.Stringer] struct {
	id         string
	name       string
	transition TransitionFunc[S]
	run        EffectRunner
	logger     zerolog.Logger

	mu       sync.Mutex
	state    S
	onChange func(S)

	inflight sync.WaitGroup
}

func NewMachine[S fmt.Stringer](name string, initial S, transition TransitionFunc[S], run EffectRunner, logger zerolog.Logger) *Machine[S] {
	id := uuid.NewString()
	return &Machine[S]{
		id:         id,
		name:       name,
		transition: transition,
		run:        run,
		state:      initial,
		logger:     logger.With().Str("machine", name).Str("machine_id", id).Logger(),
	}
}

func (m *Machine[S]) ID() string { return m.id }

func (m *Machine[S]) Name() string { return m.name }

// OnChange registers fn to be called after every accepted transition.
// fn runs outside the Machine's lock and may observe a newer state than
// the one it was called with if transitions race.
func (m *Machine[S]) OnChange(fn func(S)) {
	m.mu.Lock()
	m.onChange = fn
	m.mu.Unlock()
}

func (m *Machine[S]) State() S {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Send applies ev and returns the resulting state. Events without a
// transition are logged and leave the state unchanged.
func (m *Machine[S]) Send(ctx context.Context, ev Event) S {
	m.mu.Lock()
	prev := m.state
	next, effects, err := m.transition(prev, ev)
	if err != nil {
		m.mu.Unlock()
		lvl := zerolog.WarnLevel
		if errors.Is(err, ErrNoTransition) {
			lvl = zerolog.InfoLevel
		}
		m.logger.WithLevel(lvl).Err(err).Str("state", prev.String()).Str("event", ev.Name()).Msg("event ignored")
		return prev
	}
	m.state = next
	listener := m.onChange
	m.inflight.Add(len(effects))
	m.mu.Unlock()

	m.logger.Debug().
		Str("from", prev.String()).
		Str("to", next.String()).
		Str("event", ev.Name()).
		Msg("transition")

	if listener != nil {
		listener(next)
	}
	for _, eff := range effects {
		go m.settle(ctx, eff)
	}
	return next
}

// Wait blocks until every effect started so far has settled.
func (m *Machine[S]) Wait() {
	m.inflight.Wait()
}

func (m *Machine[S]) settle(ctx context.Context, eff Effect) {
	defer m.inflight.Done()
	m.Send(ctx, m.run(ctx, eff))
}

// Submitter is the mutation half of the backend client.
type Submitter interface {
	CreateSentiment(ctx context.Context, value int) error
}

// Fetcher is the query half of the backend client.
type Fetcher interface {
	AllSentiments(ctx context.Context) ([]model.Sentiment, error)
}

func NewSubmissionMachine(client Submitter, logger zerolog.Logger) *Machine[SubmissionState] {
	m := NewMachine("submission", SubmissionState{Status: SubmissionIdle}, NextSubmission, nil, logger)
	m.run = func(ctx context.Context, eff Effect) Event {
		e, ok := eff.(SubmitSentiment)
		if !ok {
			return SubmissionRejected{Err: fmt.Errorf("unexpected effect %T", eff)}
		}
		if err := client.CreateSentiment(ctx, e.Level); err != nil {
			m.logger.Error().Err(err).Int("level", e.Level).Msg("error submitting sentiment")
			return SubmissionRejected{Err: err}
		}
		return SubmissionResolved{}
	}
	return m
}

func NewResultsMachine(client Fetcher, logger zerolog.Logger) *Machine[ResultsState] {
	m := NewMachine("results", ResultsState{Status: ResultsIdle}, NextResults, nil, logger)
	m.run = func(ctx context.Context, eff Effect) Event {
		if _, ok := eff.(FetchSentiments); !ok {
			return ResultsRejected{Err: fmt.Errorf("unexpected effect %T", eff)}
		}
		sentiments, err := client.AllSentiments(ctx)
		if err != nil {
			m.logger.Error().Err(err).Msg("error fetching sentiments")
			return ResultsRejected{Err: err}
		}
		return ResultsResolved{Sentiments: sentiments}
	}
	return m
}
