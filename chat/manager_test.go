package chat

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chatnex/chatnex/store"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	s, err := store.New(filepath.Join(t.TempDir(), "chats.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	m, err := NewManager(s)
	require.NoError(t, err)
	return m
}

func TestNewManagerCreatesInitialChat(t *testing.T) {
	m := newTestManager(t)

	require.Len(t, m.Chats(), 1)
	current := m.CurrentChat()
	require.NotNil(t, current)
	require.Equal(t, "New Chat", current.Title)
	require.Empty(t, current.Messages)
}

func TestCreateNewChatAlwaysCreates(t *testing.T) {
	m := newTestManager(t)
	first := m.CurrentChat()
	require.Empty(t, first.Messages)

	// An existing empty active chat does not suppress creation.
	second, err := m.CreateNewChat()
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)
	require.Len(t, m.Chats(), 2)
	require.Equal(t, second.ID, m.CurrentChatID())
	// Newest chat sits at the front.
	require.Equal(t, second.ID, m.Chats()[0].ID)
}

func TestSaveMessageAppendsAndRefreshesUpdatedAt(t *testing.T) {
	m := newTestManager(t)
	before := m.CurrentChat().UpdatedAt

	chat, err := m.SaveMessage(store.SenderUser, "hello")
	require.NoError(t, err)
	require.Len(t, chat.Messages, 1)
	require.Equal(t, store.SenderUser, chat.Messages[0].Sender)
	require.False(t, chat.UpdatedAt.Before(before))
}

func TestSaveMessageSelfHealsWithoutActiveChat(t *testing.T) {
	m := newTestManager(t)
	m.currentChatID = "gone"

	chat, err := m.SaveMessage(store.SenderUser, "hello")
	require.NoError(t, err)
	require.Len(t, chat.Messages, 1)
	require.Equal(t, "hello", chat.Messages[0].Text)
	require.Equal(t, chat.ID, m.CurrentChatID())
}

func TestUpdateChatTitleFiresOnce(t *testing.T) {
	m := newTestManager(t)

	_, err := m.SaveMessage(store.SenderUser, "what is the weather like")
	require.NoError(t, err)
	require.NoError(t, m.UpdateChatTitle("what is the weather like"))
	require.Equal(t, "what is the weather like", m.CurrentChat().Title)

	// A second message must not change the title.
	_, err = m.SaveMessage(store.SenderBot, "sunny")
	require.NoError(t, err)
	require.NoError(t, m.UpdateChatTitle("sunny"))
	require.Equal(t, "what is the weather like", m.CurrentChat().Title)
}

func TestUpdateChatTitleTruncates(t *testing.T) {
	m := newTestManager(t)
	long := strings.Repeat("a", 60)

	_, err := m.SaveMessage(store.SenderUser, long)
	require.NoError(t, err)
	require.NoError(t, m.UpdateChatTitle(long))
	require.Equal(t, strings.Repeat("a", 50)+"...", m.CurrentChat().Title)

	// Exactly 50 characters is not truncated.
	m2 := newTestManager(t)
	exact := strings.Repeat("b", 50)
	_, err = m2.SaveMessage(store.SenderUser, exact)
	require.NoError(t, err)
	require.NoError(t, m2.UpdateChatTitle(exact))
	require.Equal(t, exact, m2.CurrentChat().Title)
}

func TestDeleteActiveChatActivatesMostRecent(t *testing.T) {
	m := newTestManager(t)
	second, err := m.CreateNewChat()
	require.NoError(t, err)
	third, err := m.CreateNewChat()
	require.NoError(t, err)

	require.NoError(t, m.DeleteChat(third.ID))
	require.Len(t, m.Chats(), 2)
	// Most recently created remaining chat becomes active.
	require.Equal(t, second.ID, m.CurrentChatID())
	require.Equal(t, second.ID, m.Chats()[0].ID)
}

func TestDeleteOnlyChatCreatesFreshOne(t *testing.T) {
	m := newTestManager(t)
	only := m.CurrentChat()

	require.NoError(t, m.DeleteChat(only.ID))
	require.Len(t, m.Chats(), 1)
	current := m.CurrentChat()
	require.NotNil(t, current)
	require.NotEqual(t, only.ID, current.ID)
	require.Empty(t, current.Messages)
}

func TestDeleteInactiveChatKeepsActive(t *testing.T) {
	m := newTestManager(t)
	first := m.CurrentChat()
	second, err := m.CreateNewChat()
	require.NoError(t, err)

	require.NoError(t, m.DeleteChat(first.ID))
	require.Equal(t, second.ID, m.CurrentChatID())
}

func TestDeleteUnknownChat(t *testing.T) {
	m := newTestManager(t)
	require.Error(t, m.DeleteChat("nope"))
}
