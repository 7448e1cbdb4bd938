// Package assistant answers free-form questions about a user's finances.
// The user's data is condensed into a text summary and sent to a
// generative model together with the conversation so far.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "spendly/internal/errors"
	"spendly/internal/logger"
	"spendly/internal/snapshot"
)

// Conversation roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// maxHistory bounds how many earlier turns are replayed to the model.
const maxHistory = 20

const systemPrompt = `You are Spendly, a friendly personal finance assistant.
Answer using only the figures in the summary below. If the summary does not
contain what the user asks about, say so. Keep answers short and practical,
and format amounts with two decimals in the user's currency.`

// Message is one earlier turn of the conversation.
type Message struct {
	Role    string `json:"role" binding:"required,oneof=user assistant"`
	Content string `json:"content" binding:"required,max=4000"`
}

// Model generates a reply from a system instruction and a conversation
// whose last message is from the user.
type Model interface {
	Generate(ctx context.Context, instruction string, conversation []Message) (string, error)
}

// Assistant answers chat messages. A nil model means the assistant is not
// configured.
type Assistant struct {
	model Model
	now   func() time.Time
}

// New creates an Assistant backed by model.
func New(model Model) *Assistant {
	return &Assistant{model: model, now: time.Now}
}

// Configured reports whether a model is available.
func (a *Assistant) Configured() bool {
	return a != nil && a.model != nil
}

// Reply answers message in the context of history and the user's data.
// data may be nil when the client shares nothing.
func (a *Assistant) Reply(ctx context.Context, message string, history []Message, data *snapshot.Data) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", apperrors.ErrMessageRequired
	}
	if !a.Configured() {
		return "", apperrors.ErrAssistantNotConfigured
	}

	if len(history) > maxHistory {
		history = history[len(history)-maxHistory:]
	}
	conversation := make([]Message, 0, len(history)+1)
	conversation = append(conversation, history...)
	conversation = append(conversation, Message{Role: RoleUser, Content: message})

	reply, err := a.model.Generate(ctx, a.instruction(data), conversation)
	if err != nil {
		logger.Get().Errorw("assistant request failed", "error", err)
		return "", apperrors.Wrap(apperrors.ErrAssistantFailed, err)
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		return "", apperrors.Wrap(apperrors.ErrAssistantFailed, errors.New("empty response from model"))
	}
	return reply, nil
}

func (a *Assistant) instruction(data *snapshot.Data) string {
	if data == nil {
		return systemPrompt + "\n\nThe user has not shared any data yet."
	}
	summary := snapshot.Summarize(*data, a.now().UTC())
	return fmt.Sprintf("%s\n\nToday is %s.\n\n%s", systemPrompt, a.now().UTC().Format("2006-01-02"), summary.String())
}
