package server

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractReply(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "string content under message",
			body: `{"choices": [{"message": {"role": "assistant", "content": "hello there"}}]}`,
			want: "hello there",
		},
		{
			name: "array content concatenated in order with no separator",
			body: `{"choices": [{"message": {"content": [{"text": "foo"}, {"text": "bar"}, {"text": "baz"}]}}]}`,
			want: "foobarbaz",
		},
		{
			name: "array content with part missing text",
			body: `{"choices": [{"message": {"content": [{"text": "foo"}, {"type": "image"}, {"text": "bar"}]}}]}`,
			want: "foobar",
		},
		{
			name: "array content with non-object part stringified",
			body: `{"choices": [{"message": {"content": ["foo", 42]}}]}`,
			want: "foo42",
		},
		{
			name: "content object when message is absent",
			body: `{"choices": [{"content": {"content": "from content"}}]}`,
			want: "from content",
		},
		{
			name: "string content field used directly",
			body: `{"choices": [{"content": "direct"}]}`,
			want: "direct",
		},
		{
			name: "message as a bare string",
			body: `{"choices": [{"message": "plain reply"}]}`,
			want: "plain reply",
		},
		{
			name: "top-level reply when choices absent",
			body: `{"reply": "fallback reply"}`,
			want: "fallback reply",
		},
		{
			name: "top-level text after reply",
			body: `{"text": "fallback text"}`,
			want: "fallback text",
		},
		{
			name: "empty reply falls through to text",
			body: `{"reply": "", "text": "the text"}`,
			want: "the text",
		},
		{
			name: "choices take precedence over top-level reply",
			body: `{"choices": [{"message": {"content": "from choices"}}], "reply": "ignored"}`,
			want: "from choices",
		},
		{
			name: "empty choices fall through to reply",
			body: `{"choices": [], "reply": "the reply"}`,
			want: "the reply",
		},
		{
			name: "unparsable body returned raw",
			body: `<html>upstream exploded</html>`,
			want: `<html>upstream exploded</html>`,
		},
		{
			name: "top-level array returned raw",
			body: `[1, 2, 3]`,
			want: `[1, 2, 3]`,
		},
		{
			name: "object with nothing usable returned raw",
			body: `{"usage": {"total_tokens": 7}}`,
			want: `{"usage": {"total_tokens": 7}}`,
		},
		{
			name: "empty body stays empty",
			body: ``,
			want: ``,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ExtractReply([]byte(tt.body)))
		})
	}
}
