package handlers

import (
	"context"
	"sync"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jalsahq/hydration-helper/internal/bot/state"
)

// A message with no text and no command binds the owner and returns without
// touching the API, which keeps these tests network-free.
func bindingUpdate(chatID int64) tgbotapi.Update {
	return tgbotapi.Update{Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: chatID}}}
}

func TestUpdateHandlerBindsFirstChat(t *testing.T) {
	h := NewUpdateHandler(nil, Dependencies{}, state.NewManager(), 0)
	assert.Zero(t, h.OwnerChatID())

	require.NoError(t, h.Handle(context.Background(), bindingUpdate(42)))
	assert.Equal(t, int64(42), h.OwnerChatID())

	// A different chat is ignored and cannot steal the binding
	require.NoError(t, h.Handle(context.Background(), bindingUpdate(99)))
	assert.Equal(t, int64(42), h.OwnerChatID())
}

func TestUpdateHandlerOwnerBindingIsConcurrencySafe(t *testing.T) {
	h := NewUpdateHandler(nil, Dependencies{}, state.NewManager(), 0)

	// The reminder watcher polls OwnerChatID while the update loop binds;
	// run both at once so the race detector can see any unguarded access.
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			_ = h.OwnerChatID()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			_ = h.Handle(context.Background(), bindingUpdate(42))
		}
	}()
	wg.Wait()

	assert.Equal(t, int64(42), h.OwnerChatID())
}

func TestUpdateChatID(t *testing.T) {
	tests := []struct {
		name   string
		update tgbotapi.Update
		want   int64
	}{
		{
			name:   "plain message",
			update: tgbotapi.Update{Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 7}}},
			want:   7,
		},
		{
			name: "callback with message",
			update: tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
				Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 8}},
				From:    &tgbotapi.User{ID: 9},
			}},
			want: 8,
		},
		{
			name: "stale callback without message falls back to sender",
			update: tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
				From: &tgbotapi.User{ID: 9},
			}},
			want: 9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, updateChatID(tt.update))
		})
	}
}
