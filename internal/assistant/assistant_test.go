package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"spendly/internal/snapshot"
	"spendly/internal/testutil"
)

type fakeModel struct {
	reply        string
	err          error
	instruction  string
	conversation []Message
}

func (f *fakeModel) Generate(_ context.Context, instruction string, conversation []Message) (string, error) {
	f.instruction = instruction
	f.conversation = conversation
	return f.reply, f.err
}

func newTestAssistant(model Model) *Assistant {
	a := New(model)
	a.now = func() time.Time { return time.Date(2024, 2, 14, 9, 0, 0, 0, time.UTC) }
	return a
}

func TestReply(t *testing.T) {
	t.Run("includes_summary_and_history", func(t *testing.T) {
		model := &fakeModel{reply: "  You spent 65.50 on food.  "}
		a := newTestAssistant(model)

		data := &snapshot.Data{
			Expenses: []snapshot.Expense{{ID: "e1", Amount: 65.5, Category: "food", Date: "2024-02-10"}},
			Profile:  &snapshot.Profile{Currency: "EUR"},
		}
		history := []Message{
			{Role: RoleUser, Content: "hi"},
			{Role: RoleAssistant, Content: "hello!"},
		}

		reply, err := a.Reply(context.Background(), "How much on food?", history, data)
		testutil.AssertNoError(t, err)

		if reply != "You spent 65.50 on food." {
			t.Errorf("unexpected reply %q", reply)
		}
		if !strings.Contains(model.instruction, "food: 65.50") || !strings.Contains(model.instruction, "Today is 2024-02-14") {
			t.Errorf("instruction missing summary:\n%s", model.instruction)
		}
		if len(model.conversation) != 3 || model.conversation[2].Content != "How much on food?" {
			t.Errorf("unexpected conversation: %+v", model.conversation)
		}
	})

	t.Run("history_is_trimmed", func(t *testing.T) {
		model := &fakeModel{reply: "ok"}
		a := newTestAssistant(model)

		history := make([]Message, maxHistory+5)
		for i := range history {
			history[i] = Message{Role: RoleUser, Content: "x"}
		}
		_, err := a.Reply(context.Background(), "q", history, nil)
		testutil.AssertNoError(t, err)

		if len(model.conversation) != maxHistory+1 {
			t.Errorf("expected %d messages, got %d", maxHistory+1, len(model.conversation))
		}
		if !strings.Contains(model.instruction, "not shared any data") {
			t.Errorf("expected no-data instruction, got:\n%s", model.instruction)
		}
	})

	t.Run("blank_message", func(t *testing.T) {
		_, err := newTestAssistant(&fakeModel{}).Reply(context.Background(), "   ", nil, nil)
		testutil.AssertAppError(t, err, "MESSAGE_REQUIRED")
	})

	t.Run("not_configured", func(t *testing.T) {
		_, err := New(nil).Reply(context.Background(), "hello", nil, nil)
		testutil.AssertAppError(t, err, "ASSISTANT_NOT_CONFIGURED")
	})

	t.Run("model_error", func(t *testing.T) {
		_, err := newTestAssistant(&fakeModel{err: errors.New("quota exceeded")}).Reply(context.Background(), "hello", nil, nil)
		testutil.AssertAppError(t, err, "ASSISTANT_FAILED")
	})

	t.Run("empty_reply", func(t *testing.T) {
		_, err := newTestAssistant(&fakeModel{reply: " "}).Reply(context.Background(), "hello", nil, nil)
		testutil.AssertAppError(t, err, "ASSISTANT_FAILED")
	})
}
