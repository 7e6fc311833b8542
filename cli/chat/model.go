// Package chat implements the interactive chat interface: a sidebar listing
// every chat, a conversation pane, and a single-line input. All state changes
// flow through the manager so the on-disk collection is always current.
package chat

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	chatstate "github.com/chatnex/chatnex/chat"
	"github.com/chatnex/chatnex/cli/chat/styles"
	"github.com/chatnex/chatnex/client"
	"github.com/chatnex/chatnex/internal/configuration"
)

// Model holds the interface state.
type Model struct {
	config  *configuration.Config
	manager *chatstate.Manager
	sender  *client.Client

	textarea textarea.Model
	viewport viewport.Model
	spinner  spinner.Model

	width  int
	height int
	ready  bool

	// sending gates the input: while a reply is pending, typing and chat
	// switching are disabled.
	sending bool

	// selected is the sidebar cursor, an index into manager.Chats().
	selected int

	// confirmDelete holds the id of the chat pending deletion, empty when no
	// confirmation is showing.
	confirmDelete string

	err      error
	quitting bool
}

// NewModel instantiates and returns a model.
func NewModel(config *configuration.Config, manager *chatstate.Manager, sender *client.Client) *Model {
	ta := textarea.New()
	ta.Placeholder = "Ask me anything..."
	ta.Focus()
	ta.Prompt = ""
	ta.CharLimit = 0
	ta.SetHeight(styles.TextareaHeight)
	ta.ShowLineNumbers = false

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SpinnerStyle

	return &Model{
		config:   config,
		manager:  manager,
		sender:   sender,
		textarea: ta,
		spinner:  sp,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// selectedChatID returns the id under the sidebar cursor, or "".
func (m *Model) selectedChatID() string {
	chats := m.manager.Chats()
	if m.selected < 0 || m.selected >= len(chats) {
		return ""
	}
	return chats[m.selected].ID
}

// syncSelection moves the sidebar cursor to the active chat.
func (m *Model) syncSelection() {
	for i, chat := range m.manager.Chats() {
		if chat.ID == m.manager.CurrentChatID() {
			m.selected = i
			return
		}
	}
	m.selected = 0
}
