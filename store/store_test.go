package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "chats.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadChatsEmpty(t *testing.T) {
	s := newTestStore(t)

	chats, err := s.LoadChats()
	require.NoError(t, err)
	require.Empty(t, chats)
}

func TestSaveAndLoadChats(t *testing.T) {
	s := newTestStore(t)

	chat := NewChat("chat-1")
	chat.Messages = append(chat.Messages, &Message{
		Sender:    SenderUser,
		Text:      "hello",
		Timestamp: time.Now(),
	})
	require.NoError(t, s.SaveChats([]*Chat{chat}))

	chats, err := s.LoadChats()
	require.NoError(t, err)
	require.Len(t, chats, 1)
	require.Equal(t, "chat-1", chats[0].ID)
	require.Equal(t, "New Chat", chats[0].Title)
	require.Len(t, chats[0].Messages, 1)
	require.Equal(t, SenderUser, chats[0].Messages[0].Sender)
	require.Equal(t, "hello", chats[0].Messages[0].Text)
}

func TestCurrentChatIDRoundTrip(t *testing.T) {
	s := newTestStore(t)

	id, err := s.CurrentChatID()
	require.NoError(t, err)
	require.Empty(t, id)

	require.NoError(t, s.SetCurrentChatID("chat-42"))
	id, err = s.CurrentChatID()
	require.NoError(t, err)
	require.Equal(t, "chat-42", id)
}

func TestCorruptChatsResetToEmpty(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SaveChats([]*Chat{NewChat("chat-1")}))

	// Damage the stored value behind the store's back.
	require.NoError(t, s.set(chatsKey, "{not json"))

	chats, err := s.LoadChats()
	require.NoError(t, err)
	require.Empty(t, chats)
}
