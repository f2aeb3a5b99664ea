package handler

import (
	"SentimentBot/repo"
	"SentimentBot/workflow"
	"context"
	"sync"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"
)

// Messenger is the subset of *bot.Bot the handler needs.
type Messenger interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
	EditMessageText(ctx context.Context, params *bot.EditMessageTextParams) (*models.Message, error)
	AnswerCallbackQuery(ctx context.Context, params *bot.AnswerCallbackQueryParams) (bool, error)
}

// Session is one chat's page: both workflows and the message rendering them.
type Session struct {
	ChatID     int64
	MessageID  int
	Submission *workflow.Machine[workflow.SubmissionState]
	Results    *workflow.Machine[workflow.ResultsState]

	logger zerolog.Logger

	renderMu sync.Mutex
	lastText string
}

func newSession(chatID int64, client repo.SentimentClient, logger zerolog.Logger) *Session {
	logger = logger.With().Int64("chat_id", chatID).Logger()
	return &Session{
		ChatID:     chatID,
		Submission: workflow.NewSubmissionMachine(client, logger),
		Results:    workflow.NewResultsMachine(client, logger),
		logger:     logger,
	}
}

// bind re-renders the session message whenever either workflow changes.
func (s *Session) bind(ctx context.Context, m Messenger) {
	s.Submission.OnChange(func(workflow.SubmissionState) { s.render(ctx, m) })
	s.Results.OnChange(func(workflow.ResultsState) { s.render(ctx, m) })
}

// Page returns the current text and keyboard of the session message.
func (s *Session) Page() (string, models.ReplyMarkup) {
	return renderPage(s.Submission.State(), s.Results.State())
}

// Wait blocks until no backend call is in flight for this session.
func (s *Session) Wait() {
	s.Submission.Wait()
	s.Results.Wait()
}

func (s *Session) render(ctx context.Context, m Messenger) {
	s.renderMu.Lock()
	defer s.renderMu.Unlock()

	text, markup := s.Page()
	// Telegram rejects edits that leave the message unchanged.
	if text == s.lastText {
		return
	}

	_, err := m.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:      s.ChatID,
		MessageID:   s.MessageID,
		Text:        text,
		ReplyMarkup: markup,
	})
	if err != nil {
		s.logger.Error().Err(err).Int("message_id", s.MessageID).Msg("error editing message")
		return
	}
	s.lastText = text
}
