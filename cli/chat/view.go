package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chatnex/chatnex/cli/chat/styles"
	"github.com/chatnex/chatnex/internal/markdown"
	"github.com/chatnex/chatnex/store"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}

	main := lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		m.viewport.View(),
		m.inputView(),
		m.helpView(),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, m.sidebarView(), main)
}

func (m *Model) headerView() string {
	title := "New Chat"
	if chat := m.manager.CurrentChat(); chat != nil {
		title = chat.Title
	}
	return styles.TitleStyle.Width(m.viewport.Width).Render(" ChatNex | " + title)
}

func (m *Model) sidebarView() string {
	var b strings.Builder
	b.WriteString(styles.SidebarHeaderStyle.Render("Chats"))
	b.WriteString("\n\n")

	chats := m.manager.Chats()
	if len(chats) == 0 {
		b.WriteString(styles.SidebarEmptyStyle.Render("No chat history yet"))
	}
	for i, chat := range chats {
		cursor := "  "
		if i == m.selected {
			cursor = styles.SidebarSelectedStyle.Render("> ")
		}

		title := styles.Truncate(chat.Title, styles.SidebarWidth-4)
		style := styles.SidebarItemStyle
		if chat.ID == m.manager.CurrentChatID() {
			style = styles.SidebarActiveStyle
		}

		b.WriteString(cursor + style.Render(title) + "\n")
		b.WriteString("  " + styles.SidebarTimeStyle.Render(chat.CreatedAt.Format("Jan 2 3:04 PM")) + "\n")
	}

	return styles.SidebarStyle.Height(m.height).Render(b.String())
}

// refreshViewport re-renders the conversation into the viewport.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	chat := m.manager.CurrentChat()
	if chat == nil || len(chat.Messages) == 0 {
		m.viewport.SetContent(styles.GreetingStyle.Render("Hi! I'm ChatNex. Ask me anything!"))
		return
	}

	parts := make([]string, 0, len(chat.Messages))
	for _, message := range chat.Messages {
		parts = append(parts, m.renderMessage(message))
	}
	m.viewport.SetContent(strings.Join(parts, "\n"))
}

func (m *Model) renderMessage(message *store.Message) string {
	maxWidth := m.viewport.Width - 12
	if maxWidth < 20 {
		maxWidth = 20
	}

	if message.Sender == store.SenderUser {
		bubble := styles.UserMessageStyle.MaxWidth(maxWidth).Render("😎 " + message.Text)
		return lipgloss.PlaceHorizontal(m.viewport.Width, lipgloss.Right, bubble)
	}
	return styles.BotMessageStyle.MaxWidth(maxWidth).Render("🤖 " + markdown.ToANSI(message.Text))
}

func (m *Model) inputView() string {
	if m.confirmDelete != "" {
		prompt := lipgloss.JoinVertical(lipgloss.Left,
			styles.ConfirmTitleStyle.Render("Delete this chat?"),
			"This cannot be undone. (y/n)",
		)
		return styles.ConfirmBoxStyle.Render(prompt)
	}
	if m.sending {
		return styles.TextAreaStyle.Width(m.viewport.Width - 2).
			Render(m.spinner.View() + styles.TypingStyle.Render(" Typing..."))
	}
	return styles.TextAreaStyle.Render(m.textarea.View())
}

func (m *Model) helpView() string {
	help := "enter: send • ctrl+n: new • tab: select • ctrl+o: open • ctrl+x: delete • ctrl+c: quit"
	if m.err != nil {
		return styles.ErrorStyle.Render(fmt.Sprintf("error: %v", m.err))
	}
	return styles.HelpStyle.Render(help)
}
