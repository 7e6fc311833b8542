package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Layout constants
const (
	SidebarWidth = 32

	TextareaHeight      = 3
	TextAreaPaddingLeft = 1

	HeaderHeight      = 1
	InputBorderHeight = 2
	HelpHeight        = 1
	MinViewportHeight = 1

	// Truncation
	TruncateSuffix       = "..."
	TruncateSuffixLength = 3
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7C3AED") // Purple
	SecondaryColor = lipgloss.Color("#06B6D4") // Cyan
	AccentColor    = lipgloss.Color("#F59E0B") // Amber
	SuccessColor   = lipgloss.Color("#10B981") // Green
	ErrorColor     = lipgloss.Color("#EF4444") // Red
	MutedColor     = lipgloss.Color("#6B7280") // Gray
	TextColor      = lipgloss.Color("#F9FAFB") // Light gray
	DimTextColor   = lipgloss.Color("#9CA3AF") // Dim gray
	BorderColor    = lipgloss.Color("#4B5563")
)

// Title bar
var (
	TitleStyle = lipgloss.NewStyle().
		Background(PrimaryColor).
		Foreground(TextColor).
		Bold(true)
)

// Sidebar
var (
	SidebarStyle = lipgloss.NewStyle().
			Width(SidebarWidth).
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(BorderColor)

	SidebarHeaderStyle = lipgloss.NewStyle().
				Foreground(SecondaryColor).
				Bold(true)

	SidebarItemStyle = lipgloss.NewStyle().
				Foreground(DimTextColor)

	SidebarActiveStyle = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true)

	SidebarSelectedStyle = lipgloss.NewStyle().
				Foreground(AccentColor)

	SidebarTimeStyle = lipgloss.NewStyle().
				Foreground(MutedColor)

	SidebarEmptyStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				Italic(true)
)

// Messages.
var (
	messageStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder())

	UserMessageStyle = lipgloss.NewStyle().
				Inherit(messageStyle).
				BorderForeground(PrimaryColor).
				MarginLeft(10)

	BotMessageStyle = lipgloss.NewStyle().
			Inherit(messageStyle).
			BorderForeground(SecondaryColor).
			MarginRight(10)
)

// Greeting shown before the first message of a chat.
var (
	GreetingStyle = lipgloss.NewStyle().
		Foreground(DimTextColor).
		Italic(true).
		Padding(1, 2)
)

// Typing indicator
var (
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor)

	TypingStyle = lipgloss.NewStyle().
			Foreground(DimTextColor).
			Italic(true)
)

// Input area
var (
	TextAreaStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		PaddingLeft(TextAreaPaddingLeft)
)

// Help text
var (
	HelpStyle = lipgloss.NewStyle().
		Foreground(MutedColor).
		Italic(true)
)

// Delete confirmation
var (
	ConfirmBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(AccentColor).
			Padding(0, 2)

	ConfirmTitleStyle = lipgloss.NewStyle().
				Foreground(AccentColor).
				Bold(true)
)

// Error
var (
	ErrorStyle = lipgloss.NewStyle().
		Foreground(ErrorColor).
		Bold(true)
)

// Truncate truncates a string to the specified length with a suffix.
func Truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-TruncateSuffixLength]) + TruncateSuffix
}
