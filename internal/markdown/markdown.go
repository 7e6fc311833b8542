// Package markdown implements the markdown-lite transform applied to bot
// messages: `**x**` is bold, `*x*` is italic, and newlines become line breaks.
// Bold must be applied before italic so that the bold pattern consumes paired
// double asterisks before the italic pattern sees the remaining single ones.
package markdown

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	boldPattern   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicPattern = regexp.MustCompile(`\*(.*?)\*`)

	boldStyle   = lipgloss.NewStyle().Bold(true)
	italicStyle = lipgloss.NewStyle().Italic(true)
)

// ToHTML renders the transform as HTML: <strong>, <em> and <br>.
func ToHTML(text string) string {
	if text == "" {
		return ""
	}
	formatted := boldPattern.ReplaceAllString(text, "<strong>$1</strong>")
	formatted = italicPattern.ReplaceAllString(formatted, "<em>$1</em>")
	formatted = strings.ReplaceAll(formatted, "\n", "<br>")
	return formatted
}

// ToANSI renders the transform as terminal output. Newlines are left as-is.
// The styles inserted for bold spans contain no asterisks, so running the
// italic pattern over the intermediate output preserves the precedence chain.
func ToANSI(text string) string {
	if text == "" {
		return ""
	}
	formatted := boldPattern.ReplaceAllStringFunc(text, func(match string) string {
		return boldStyle.Render(match[2 : len(match)-2])
	})
	formatted = italicPattern.ReplaceAllStringFunc(formatted, func(match string) string {
		return italicStyle.Render(match[1 : len(match)-1])
	})
	return formatted
}
