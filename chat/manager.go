// Package chat owns the chat collection state: an ordered list of chats
// (most recently created first) plus the active-chat pointer. All mutations go
// through the Manager and are persisted immediately; rendering is someone
// else's job.
package chat

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/chatnex/chatnex/store"
)

// Titles are derived from the first user message, truncated to 50 characters.
const titleMaxLength = 50

// Manager holds the chat collection and its active-chat pointer.
type Manager struct {
	store         *store.Store
	chats         []*store.Chat
	currentChatID string
}

// NewManager loads the collection from the store. If the active pointer is
// missing or references a chat that no longer exists, a fresh chat is created,
// so the invariant "the active chat is always present" holds from here on.
func NewManager(s *store.Store) (*Manager, error) {
	chats, err := s.LoadChats()
	if err != nil {
		return nil, errors.Wrap(err, "loading chats")
	}
	currentChatID, err := s.CurrentChatID()
	if err != nil {
		return nil, errors.Wrap(err, "loading current chat id")
	}

	m := &Manager{store: s, chats: chats, currentChatID: currentChatID}
	if m.CurrentChat() == nil {
		if _, err := m.CreateNewChat(); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Chats returns the collection, most recently created first.
func (m *Manager) Chats() []*store.Chat {
	return m.chats
}

// CurrentChatID returns the active chat id.
func (m *Manager) CurrentChatID() string {
	return m.currentChatID
}

// CurrentChat returns the active chat, or nil if the pointer is dangling.
func (m *Manager) CurrentChat() *store.Chat {
	if m.currentChatID == "" {
		return nil
	}
	for _, chat := range m.chats {
		if chat.ID == m.currentChatID {
			return chat
		}
	}
	return nil
}

// CreateNewChat inserts a fresh chat at the front of the collection and makes
// it active. An existing empty chat does not suppress creation.
func (m *Manager) CreateNewChat() (*store.Chat, error) {
	chat := store.NewChat("chat_" + uuid.New().String()[:8])
	m.chats = append([]*store.Chat{chat}, m.chats...)
	m.currentChatID = chat.ID

	if err := m.store.SaveChats(m.chats); err != nil {
		return nil, errors.Wrap(err, "persisting chats")
	}
	if err := m.store.SetCurrentChatID(chat.ID); err != nil {
		return nil, errors.Wrap(err, "persisting current chat id")
	}
	return chat, nil
}

// LoadChat makes the given chat active.
func (m *Manager) LoadChat(id string) (*store.Chat, error) {
	for _, chat := range m.chats {
		if chat.ID != id {
			continue
		}
		m.currentChatID = id
		if err := m.store.SetCurrentChatID(id); err != nil {
			return nil, errors.Wrap(err, "persisting current chat id")
		}
		return chat, nil
	}
	return nil, errors.Errorf("chat %s not found", id)
}

// DeleteChat removes a chat. If it was active, the most recently created
// remaining chat becomes active; if none remain, a fresh chat is created.
func (m *Manager) DeleteChat(id string) error {
	found := false
	chats := make([]*store.Chat, 0, len(m.chats))
	for _, chat := range m.chats {
		if chat.ID == id {
			found = true
			continue
		}
		chats = append(chats, chat)
	}
	if !found {
		return errors.Errorf("chat %s not found", id)
	}
	m.chats = chats

	if err := m.store.SaveChats(m.chats); err != nil {
		return errors.Wrap(err, "persisting chats")
	}

	if m.currentChatID != id {
		return nil
	}
	if len(m.chats) > 0 {
		_, err := m.LoadChat(m.chats[0].ID)
		return err
	}
	_, err := m.CreateNewChat()
	return err
}

// SaveMessage appends a message to the active chat. If no chat is active, one
// is created first; the message is never dropped.
func (m *Manager) SaveMessage(sender, text string) (*store.Chat, error) {
	chat := m.CurrentChat()
	if chat == nil {
		var err error
		chat, err = m.CreateNewChat()
		if err != nil {
			return nil, err
		}
	}

	now := time.Now()
	chat.Messages = append(chat.Messages, &store.Message{
		Sender:    sender,
		Text:      text,
		Timestamp: now,
	})
	chat.UpdatedAt = now

	if err := m.store.SaveChats(m.chats); err != nil {
		return nil, errors.Wrap(err, "persisting chats")
	}
	return chat, nil
}

// UpdateChatTitle sets the active chat's title from its first message. The
// guard on message count makes this fire exactly once per chat.
func (m *Manager) UpdateChatTitle(firstMessage string) error {
	chat := m.CurrentChat()
	if chat == nil || len(chat.Messages) != 1 {
		return nil
	}

	chat.Title = truncateTitle(firstMessage)
	chat.UpdatedAt = time.Now()
	return errors.Wrap(m.store.SaveChats(m.chats), "persisting chats")
}

func truncateTitle(s string) string {
	runes := []rune(s)
	if len(runes) <= titleMaxLength {
		return s
	}
	return string(runes[:titleMaxLength]) + "..."
}
