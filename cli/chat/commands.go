package chat

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chatnex/chatnex/client"
	"github.com/chatnex/chatnex/store"
)

// sendResultMsg carries the text to append as the bot's message, whether it is
// a real reply or a rendered failure notice.
type sendResultMsg struct {
	text string
}

// sendMessage persists the user's message, derives the title if this was the
// chat's first message, and kicks off the backend call.
func (m *Model) sendMessage() tea.Cmd {
	text := strings.TrimSpace(m.textarea.Value())
	if text == "" {
		return nil
	}

	if _, err := m.manager.SaveMessage(store.SenderUser, text); err != nil {
		m.err = err
		return nil
	}
	if err := m.manager.UpdateChatTitle(text); err != nil {
		m.err = err
		return nil
	}

	m.textarea.Reset()
	m.sending = true
	m.syncSelection()
	m.refreshViewport()

	return tea.Batch(m.spinner.Tick, m.doSend(text))
}

// doSend calls the backend. Every outcome, success or failure, resolves to a
// sendResultMsg so the typing indicator is always cleared.
func (m *Model) doSend(text string) tea.Cmd {
	return func() tea.Msg {
		reply, err := m.sender.Send(context.Background(), text)
		if err != nil {
			return sendResultMsg{text: client.Notice(err)}
		}
		return sendResultMsg{text: reply}
	}
}
