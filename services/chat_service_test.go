package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCompleter records the prompt it was handed and returns a canned
// reply or error.
type fakeCompleter struct {
	reply    string
	err      error
	received []ChatMessage
}

func (f *fakeCompleter) Complete(_ context.Context, messages []ChatMessage) (string, error) {
	f.received = append([]ChatMessage(nil), messages...)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func newChatFixture(t *testing.T, llm Completer) (*ChatService, *ConversationStore) {
	t.Helper()
	db := newTestDB(t)
	sessions := NewConversationStore(10, time.Minute)
	return NewChatService(db, llm, sessions), sessions
}

func TestAskRecordsBothTurns(t *testing.T) {
	llm := &fakeCompleter{reply: "You had 150 calories."}
	svc, sessions := newChatFixture(t, llm)

	reply, err := svc.Ask(context.Background(), 1, "how many calories today")
	require.NoError(t, err)
	assert.Equal(t, "You had 150 calories.", reply)

	history := sessions.History(1)
	require.Len(t, history, 2)
	assert.Equal(t, ChatMessage{Role: "user", Content: "how many calories today"}, history[0])
	assert.Equal(t, ChatMessage{Role: "assistant", Content: "You had 150 calories."}, history[1])
}

func TestAskRejectsBlankMessage(t *testing.T) {
	svc, sessions := newChatFixture(t, &fakeCompleter{reply: "ok"})

	_, err := svc.Ask(context.Background(), 1, "   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
	assert.Empty(t, sessions.History(1))
}

func TestAskCompletionFailureBecomesReply(t *testing.T) {
	llm := &fakeCompleter{err: errors.New("connection refused")}
	svc, sessions := newChatFixture(t, llm)

	reply, err := svc.Ask(context.Background(), 1, "what should I eat")
	require.NoError(t, err)
	assert.Equal(t, "Sorry, I encountered an error: connection refused", reply)

	// the error text still lands in the transcript as the assistant turn
	history := sessions.History(1)
	require.Len(t, history, 2)
	assert.Equal(t, "assistant", history[1].Role)
	assert.Equal(t, reply, history[1].Content)
}

func TestAskGroundsPromptInTodayEntries(t *testing.T) {
	llm := &fakeCompleter{reply: "ok"}
	db := newTestDB(t)
	sessions := NewConversationStore(10, time.Minute)
	svc := NewChatService(db, llm, sessions)

	now := time.Now()
	seedEntries(t, db, models.FoodEntry{
		UserID: 1, Name: "Oats", MealType: "breakfast", Quantity: 50, Calories: 150, Date: now,
	})

	_, err := svc.Ask(context.Background(), 1, "is my intake ok")
	require.NoError(t, err)

	require.NotEmpty(t, llm.received)
	require.Equal(t, "system", llm.received[0].Role)
	assert.Contains(t, llm.received[0].Content, "Today's food entries:")
	assert.Contains(t, llm.received[0].Content, "Oats (breakfast): 150 calories")
}

func TestAskUsesProfileOnlyWhenComplete(t *testing.T) {
	llm := &fakeCompleter{reply: "ok"}
	db := newTestDB(t)
	sessions := NewConversationStore(10, time.Minute)
	svc := NewChatService(db, llm, sessions)

	user := models.User{
		Email: "a@example.com", Age: 30, Weight: 70, Height: 175,
		Gender: "male", ActivityLevel: "sedentary", ProfileComplete: true,
	}
	require.NoError(t, db.Create(&user).Error)
	seedEntries(t, db, models.FoodEntry{
		UserID: user.ID, Name: "Rice", MealType: "lunch", Quantity: 150, Calories: 200, Date: time.Now(),
	})

	_, err := svc.Ask(context.Background(), user.ID, "is my intake ok")
	require.NoError(t, err)

	require.NotEmpty(t, llm.received)
	assert.Contains(t, llm.received[0].Content, "User profile: Age 30, Weight 70kg, Gender male")
}

func TestAskDefaultPersonaForIncompleteProfile(t *testing.T) {
	llm := &fakeCompleter{reply: "ok"}
	db := newTestDB(t)
	sessions := NewConversationStore(10, time.Minute)
	svc := NewChatService(db, llm, sessions)

	user := models.User{Email: "b@example.com"}
	require.NoError(t, db.Create(&user).Error)
	seedEntries(t, db, models.FoodEntry{
		UserID: user.ID, Name: "Rice", MealType: "lunch", Quantity: 150, Calories: 200, Date: time.Now(),
	})

	_, err := svc.Ask(context.Background(), user.ID, "is my intake ok")
	require.NoError(t, err)

	require.NotEmpty(t, llm.received)
	assert.Contains(t, llm.received[0].Content, "Assume default user profile: Age 20, Weight 50kg, Female")
}

func TestClearResetsConversation(t *testing.T) {
	svc, sessions := newChatFixture(t, &fakeCompleter{reply: "ok"})

	_, err := svc.Ask(context.Background(), 1, "hello there")
	require.NoError(t, err)
	require.NotEmpty(t, sessions.History(1))

	svc.Clear(1)
	assert.Empty(t, sessions.History(1))
}
