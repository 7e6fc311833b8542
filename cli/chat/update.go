package chat

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chatnex/chatnex/cli/chat/styles"
	"github.com/chatnex/chatnex/store"
)

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if !m.sending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case sendResultMsg:
		m.sending = false
		if _, err := m.manager.SaveMessage(store.SenderBot, msg.text); err != nil {
			m.err = err
		}
		m.refreshViewport()
		m.viewport.GotoBottom()
		m.textarea.Focus()
		return m, textarea.Blink

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	if m.confirmDelete != "" {
		switch msg.String() {
		case "y", "Y":
			id := m.confirmDelete
			m.confirmDelete = ""
			if err := m.manager.DeleteChat(id); err != nil {
				m.err = err
			}
			m.syncSelection()
			m.refreshViewport()
			m.viewport.GotoBottom()
		case "n", "N", "esc":
			m.confirmDelete = ""
		}
		return m, nil
	}

	// While a reply is pending the input is locked. Quit is still allowed,
	// everything else waits.
	if m.sending {
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEnter:
		return m, m.sendMessage()
	case tea.KeyCtrlN:
		if _, err := m.manager.CreateNewChat(); err != nil {
			m.err = err
		}
		m.syncSelection()
		m.refreshViewport()
		return m, nil
	case tea.KeyTab:
		if len(m.manager.Chats()) > 0 {
			m.selected = (m.selected + 1) % len(m.manager.Chats())
		}
		return m, nil
	case tea.KeyShiftTab:
		if n := len(m.manager.Chats()); n > 0 {
			m.selected = (m.selected - 1 + n) % n
		}
		return m, nil
	case tea.KeyCtrlO:
		if id := m.selectedChatID(); id != "" {
			if _, err := m.manager.LoadChat(id); err != nil {
				m.err = err
			}
			m.refreshViewport()
			m.viewport.GotoBottom()
		}
		return m, nil
	case tea.KeyCtrlX:
		if id := m.selectedChatID(); id != "" {
			m.confirmDelete = id
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	mainWidth := width - styles.SidebarWidth - 1
	if mainWidth < 1 {
		mainWidth = 1
	}
	viewportHeight := height - styles.HeaderHeight - styles.TextareaHeight - styles.InputBorderHeight - styles.HelpHeight
	if viewportHeight < styles.MinViewportHeight {
		viewportHeight = styles.MinViewportHeight
	}

	if !m.ready {
		m.viewport = viewport.New(mainWidth, viewportHeight)
		m.ready = true
	} else {
		m.viewport.Width = mainWidth
		m.viewport.Height = viewportHeight
	}
	m.textarea.SetWidth(mainWidth - styles.TextAreaPaddingLeft - 2)

	m.syncSelection()
	m.refreshViewport()
	m.viewport.GotoBottom()
}
