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

const (
	helpText = `I run the Room Sentiment poll.
/start – Open a fresh form and rate how you're feeling from 0 to 10.
/help – Show this message.

Pick a number, press Submit, and then ask for the results to see the room's average.`
	unknownText = "I didn't understand that command. Use /start or /help."
	expiredText = "This form has expired. Use /start to open a new one."
)

type SentimentBotHandler struct {
	client repo.SentimentClient
	logger zerolog.Logger

	mu       sync.Mutex
	sessions map[int64]*Session
}

func NewSentimentBotHandler(client repo.SentimentClient, logger zerolog.Logger) *SentimentBotHandler {
	return &SentimentBotHandler{
		client:   client,
		logger:   logger.With().Str("component", "handler").Logger(),
		sessions: make(map[int64]*Session),
	}
}

// Register wires the command and callback handlers into b. Other messages
// reach DefaultHandler through bot.WithDefaultHandler.
func (h *SentimentBotHandler) Register(b *bot.Bot) {
	b.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, h.StartHandler)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, h.HelpHandler)
	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, CallbackPrefix, bot.MatchTypePrefix, h.CallbackHandler)
}

func (h *SentimentBotHandler) StartHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.start(ctx, b, update)
}

func (h *SentimentBotHandler) HelpHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.reply(ctx, b, update, helpText)
}

func (h *SentimentBotHandler) DefaultHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.reply(ctx, b, update, unknownText)
}

func (h *SentimentBotHandler) CallbackHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.callback(ctx, b, update)
}

// Session returns the chat's current session, if any.
func (h *SentimentBotHandler) Session(chatID int64) (*Session, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	s, ok := h.sessions[chatID]
	return s, ok
}

// start replaces the chat's session with a fresh one and sends its form.
func (h *SentimentBotHandler) start(ctx context.Context, m Messenger, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	s := newSession(chatID, h.client, h.logger)
	text, markup := s.Page()
	msg, err := m.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ReplyMarkup: markup,
	})
	if err != nil {
		h.logger.Error().Err(err).Int64("chat_id", chatID).Msg("error sending form")
		return
	}
	s.MessageID = msg.ID
	s.lastText = text
	s.bind(ctx, m)

	h.mu.Lock()
	h.sessions[chatID] = s
	h.mu.Unlock()

	h.logger.Info().
		Int64("chat_id", chatID).
		Str("submission_id", s.Submission.ID()).
		Str("results_id", s.Results.ID()).
		Msg("session started")
}

func (h *SentimentBotHandler) reply(ctx context.Context, m Messenger, update *models.Update, text string) {
	if update.Message == nil {
		return
	}

	h.logger.Debug().Str("user", username(update.Message.From)).Str("text", update.Message.Text).Msg("message received")

	_, err := m.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   text,
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("error sending message")
	}
}

// callback turns an inline keyboard press into a workflow event.
func (h *SentimentBotHandler) callback(ctx context.Context, m Messenger, update *models.Update) {
	cq := update.CallbackQuery
	if cq == nil {
		return
	}
	defer h.answer(ctx, m, cq.ID)

	chatID, messageID, ok := callbackOrigin(cq)
	if !ok {
		return
	}
	logger := h.logger.With().Int64("chat_id", chatID).Str("data", cq.Data).Logger()

	ev, err := parseCallback(cq.Data)
	if err != nil {
		logger.Warn().Err(err).Msg("error parsing callback")
		return
	}

	s, ok := h.Session(chatID)
	if !ok || s.MessageID != messageID {
		logger.Info().Msg("callback for expired form")
		_, err := m.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: expiredText})
		if err != nil {
			logger.Error().Err(err).Msg("error sending message")
		}
		return
	}

	if _, ok := ev.(workflow.Request); ok {
		// Results are only offered once the rating is in.
		if s.Submission.State().Status != workflow.SubmissionSuccess {
			logger.Info().Str("state", s.Submission.State().String()).Msg("results requested before submission succeeded")
			return
		}
		s.Results.Send(ctx, ev)
		return
	}
	s.Submission.Send(ctx, ev)
}

func (h *SentimentBotHandler) answer(ctx context.Context, m Messenger, callbackQueryID string) {
	_, err := m.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackQueryID,
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("error answering callback query")
	}
}

func callbackOrigin(cq *models.CallbackQuery) (chatID int64, messageID int, ok bool) {
	switch {
	case cq.Message.Message != nil:
		return cq.Message.Message.Chat.ID, cq.Message.Message.ID, true
	case cq.Message.InaccessibleMessage != nil:
		return cq.Message.InaccessibleMessage.Chat.ID, cq.Message.InaccessibleMessage.MessageID, true
	}
	return 0, 0, false
}

func username(u *models.User) string {
	if u == nil {
		return ""
	}
	if u.Username != "" {
		return u.Username
	}
	return u.FirstName
}
