package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bold italic and line break",
			in:   "**bold** and *italic*\nnext line",
			want: "<strong>bold</strong> and <em>italic</em><br>next line",
		},
		{
			name: "bold consumed before italic",
			in:   "**x**",
			want: "<strong>x</strong>",
		},
		{
			name: "italic alone",
			in:   "*x*",
			want: "<em>x</em>",
		},
		{
			name: "plain text untouched",
			in:   "hello world",
			want: "hello world",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
		{
			name: "unpaired asterisk left alone",
			in:   "2 * 3",
			want: "2 * 3",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ToHTML(tt.in))
		})
	}
}

func TestToANSIStripsMarkers(t *testing.T) {
	// Styles degrade to plain text without a terminal; the markers must be
	// consumed with the same precedence either way.
	out := ToANSI("**bold** and *italic*\nnext line")
	require.NotContains(t, out, "*")
	require.Contains(t, out, "bold")
	require.Contains(t, out, "italic")
	require.Contains(t, out, "\n")
}
