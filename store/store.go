// Package store persists the chat collection and the active-chat pointer in a
// local SQLite database, under the same two keys the storage has always used:
// "chatnex_chats" holds the JSON-serialized collection and
// "chatnex_current_chat" holds the raw active chat id.
package store

import (
	"database/sql"
	"encoding/json"
	"path/filepath"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"github.com/chatnex/chatnex/internal/debug"
	"github.com/chatnex/chatnex/internal/file"
)

const (
	chatsKey       = "chatnex_chats"
	currentChatKey = "chatnex_current_chat"
)

// Store implements a SQLite key-value store for the chat collection.
type Store struct {
	db *sql.DB
}

// New store.
func New(dbPath string) (*Store, error) {
	if err := file.CreateDirectoryIfNotExist(filepath.Dir(dbPath)); err != nil {
		return nil, errors.Wrap(err, "creating store directory")
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS storage (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`)
	if err != nil {
		return nil, errors.Wrap(err, "creating storage table")
	}

	return &Store{db: db}, nil
}

// LoadChats reads the chat collection. A corrupt or unparsable stored value is
// not an error: the collection resets to empty, matching what the UI expects
// when storage has been cleared or damaged externally.
func (s *Store) LoadChats() ([]*Chat, error) {
	value, ok, err := s.get(chatsKey)
	if err != nil {
		return nil, errors.Wrap(err, "reading chats")
	}
	if !ok {
		return nil, nil
	}

	var chats []*Chat
	if err := json.Unmarshal([]byte(value), &chats); err != nil {
		debug.GetLogger().Error("corrupt chat collection, resetting", "error", err)
		return nil, nil
	}
	return chats, nil
}

// SaveChats writes the chat collection.
func (s *Store) SaveChats(chats []*Chat) error {
	if chats == nil {
		chats = []*Chat{}
	}
	bytes, err := json.Marshal(chats)
	if err != nil {
		return errors.Wrap(err, "marshaling chats")
	}
	return errors.Wrap(s.set(chatsKey, string(bytes)), "writing chats")
}

// CurrentChatID returns the active chat id, or "" if none is stored.
func (s *Store) CurrentChatID() (string, error) {
	value, _, err := s.get(currentChatKey)
	if err != nil {
		return "", errors.Wrap(err, "reading current chat id")
	}
	return value, nil
}

// SetCurrentChatID stores the active chat id.
func (s *Store) SetCurrentChatID(id string) error {
	return errors.Wrap(s.set(currentChatKey, id), "writing current chat id")
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM storage WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *Store) set(key, value string) error {
	// Use REPLACE INTO to handle both insert and update cases
	_, err := s.db.Exec(`REPLACE INTO storage (key, value) VALUES (?, ?)`, key, value)
	return err
}
