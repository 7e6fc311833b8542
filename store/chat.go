package store

import "time"

// Senders of a message.
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// Chat represents one conversation thread.
type Chat struct {
	// Opaque unique identifier, generated at creation time.
	ID string `json:"id"`
	// Display string. Defaults to "New Chat" and is overwritten once, from
	// the first user message.
	Title string `json:"title"`
	// Ordered messages, append-only.
	Messages []*Message `json:"messages"`
	// Time at which the chat was created.
	CreatedAt time.Time `json:"createdAt"`
	// Refreshed on every message append and on title change.
	UpdatedAt time.Time `json:"updatedAt"`
}

// Message represents one turn in a chat. Immutable once created.
type Message struct {
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// NewChat instantiates and returns a new chat.
func NewChat(id string) *Chat {
	now := time.Now()
	return &Chat{
		ID:        id,
		Title:     "New Chat",
		Messages:  []*Message{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
