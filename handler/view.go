package handler

import (
	"SentimentBot/model"
	"SentimentBot/workflow"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-telegram/bot/models"
)

const pageTitle = "Room Sentiment"

// Callback data sent by the inline keyboards.
const (
	CallbackPrefix  = "sentiment:"
	callbackSelect  = CallbackPrefix + "select:"
	callbackReset   = CallbackPrefix + "reset"
	callbackSubmit  = CallbackPrefix + "submit"
	callbackRetry   = CallbackPrefix + "retry"
	callbackResults = CallbackPrefix + "results"
)

var errUnknownCallback = errors.New("unknown callback data")

// parseCallback maps inline keyboard data to a workflow event.
func parseCallback(data string) (workflow.Event, error) {
	switch data {
	case callbackReset:
		return workflow.Reset{}, nil
	case callbackSubmit:
		return workflow.Submit{}, nil
	case callbackRetry:
		return workflow.Retry{}, nil
	case callbackResults:
		return workflow.Request{}, nil
	}

	if raw, ok := strings.CutPrefix(data, callbackSelect); ok {
		level, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", errUnknownCallback, data, err)
		}
		return workflow.Select{Level: level}, nil
	}
	return nil, fmt.Errorf("%w: %q", errUnknownCallback, data)
}

// renderPage builds the message text and keyboard for both workflows.
// A nil markup removes any keyboard from the message.
func renderPage(sub workflow.SubmissionState, res workflow.ResultsState) (string, models.ReplyMarkup) {
	var b strings.Builder
	b.WriteString(pageTitle)
	b.WriteString("\n\n")

	switch sub.Status {
	case workflow.SubmissionIdle:
		b.WriteString("On a scale from 0 to 10, how are you feeling?\n")
		if sub.HasLevel() {
			fmt.Fprintf(&b, "Selected: %d", *sub.Level)
		} else {
			b.WriteString("Nothing selected yet.")
		}
		return b.String(), formKeyboard(sub.Level)
	case workflow.SubmissionSubmitting:
		b.WriteString("Submitting data...")
		return b.String(), nil
	case workflow.SubmissionFailure:
		b.WriteString("Sorry, the form failed to submit.")
		return b.String(), &models.InlineKeyboardMarkup{
			InlineKeyboard: [][]models.InlineKeyboardButton{{
				{Text: "Retry", CallbackData: callbackRetry},
				{Text: "Reset", CallbackData: callbackReset},
			}},
		}
	case workflow.SubmissionSuccess:
		b.WriteString("Success! Thank you for participating.\n\n")
		return renderResults(&b, res)
	}
	return b.String(), nil
}

func renderResults(b *strings.Builder, res workflow.ResultsState) (string, models.ReplyMarkup) {
	switch res.Status {
	case workflow.ResultsIdle:
		b.WriteString("Would you like to see the results?")
		return b.String(), &models.InlineKeyboardMarkup{
			InlineKeyboard: [][]models.InlineKeyboardButton{{
				{Text: "Yes", CallbackData: callbackResults},
			}},
		}
	case workflow.ResultsLoading:
		b.WriteString("Tabulating results...")
	case workflow.ResultsFailure:
		b.WriteString("Sorry, there was an error calculating the results. Our bad.")
	case workflow.ResultsSuccess:
		avg, err := res.Average()
		if errors.Is(err, model.ErrNoParticipants) {
			b.WriteString("No one has shared their sentiment yet.")
			break
		}
		fmt.Fprintf(b, "The average score is...\n\n%s\n\n...out of %d participants. Thanks for being one of them.", avg, len(res.Sentiments))
	}
	return b.String(), nil
}

// formKeyboard lays out the 0..10 scale in two rows plus Reset and Submit.
// The selected level is bracketed.
func formKeyboard(selected *int) *models.InlineKeyboardMarkup {
	var scale [][]models.InlineKeyboardButton
	row := []models.InlineKeyboardButton{}
	for level := model.MinLevel; level <= model.MaxLevel; level++ {
		label := strconv.Itoa(level)
		if selected != nil && *selected == level {
			label = "[" + label + "]"
		}
		row = append(row, models.InlineKeyboardButton{
			Text:         label,
			CallbackData: callbackSelect + strconv.Itoa(level),
		})
		if len(row) == 6 {
			scale = append(scale, row)
			row = []models.InlineKeyboardButton{}
		}
	}
	if len(row) > 0 {
		scale = append(scale, row)
	}

	scale = append(scale, []models.InlineKeyboardButton{
		{Text: "Reset", CallbackData: callbackReset},
		{Text: "Submit", CallbackData: callbackSubmit},
	})
	return &models.InlineKeyboardMarkup{InlineKeyboard: scale}
}
