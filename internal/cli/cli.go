package cli

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/buger/goterm"
	"github.com/fatih/color"
)

var (
	// Colors for different types of output
	userInputColor = color.New(color.FgWhite)               // White for user messages
	botOutputColor = color.New(color.FgCyan)                // Cyan for bot messages
	titleColor     = color.New(color.FgMagenta, color.Bold) // Bold magenta for titles
	separatorColor = color.New(color.FgHiBlack)             // Dark grey for separators
	timestampColor = color.New(color.FgHiBlack)             // Dark grey for timestamps
	activeColor    = color.New(color.FgGreen, color.Bold)   // Green for the active chat
	errorColor     = color.New(color.FgRed)                 // Red for errors

	width = goterm.Width()
)

// Separator printed to cli.
func Separator() {
	separator := strings.Repeat("-", width)
	separatorColor.Println(separator)
}

// Title printed to cli.
func Title(text string, args ...any) {
	title := "      " + fmt.Sprintf(text, args...) + "      "
	leftWidth := (width - len(title)) / 2
	separator1 := strings.Repeat("-", leftWidth)
	separator2 := strings.Repeat("-", width-len(title)-len(separator1))
	output := fmt.Sprintf("%s%s%s", separator1, title, separator2)
	titleColor.Println(output)
}

// UserInput printed to cli.
func UserInput(text string, args ...any) {
	userInputColor.Printf(text, args...)
}

// BotOutput printed to cli.
func BotOutput(text string, args ...any) {
	text = strings.ReplaceAll(text, "%", "%%")
	botOutputColor.Printf(text, args...)
}

// ActiveMarker printed to cli.
func ActiveMarker(text string, args ...any) {
	activeColor.Printf(text, args...)
}

// Timestamp printed to cli.
func Timestamp(text string, args ...any) {
	timestampColor.Printf(text, args...)
}

// Error printed to cli.
func Error(text string, args ...any) {
	errorColor.Printf(text, args...)
}

// QueryUser a yes/no question.
func QueryUser(question string) bool {
	surveyQuestion := &survey.Confirm{
		Message: question,
	}
	confirm := false
	survey.AskOne(surveyQuestion, &confirm)
	return confirm
}
