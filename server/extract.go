package server

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ExtractReply salvages reply text from an upstream response body. Providers
// disagree on response shape, so resolution follows a fixed precedence:
//
//  1. choices[0].message (or .content, or the element itself) — a string
//     content, an array of {text} parts concatenated in order, or a bare
//     string message;
//  2. a top-level "reply" field;
//  3. a top-level "text" field;
//  4. the raw response body.
//
// An unparsable body skips straight to the raw-body fallback. The precedence
// is the contract: a shape error upstream must never surface as an error here
// as long as any text can be salvaged.
func ExtractReply(body []byte) string {
	var parsed any
	if err := json.Unmarshal(body, &parsed); err == nil {
		if object, ok := parsed.(map[string]any); ok {
			if reply := replyFromObject(object); reply != "" {
				return reply
			}
		}
	}
	return string(body)
}

func replyFromObject(object map[string]any) string {
	if reply := replyFromChoices(object["choices"]); reply != "" {
		return reply
	}
	if reply := stringify(object["reply"]); reply != "" {
		return reply
	}
	return stringify(object["text"])
}

func replyFromChoices(value any) string {
	choices, ok := value.([]any)
	if !ok || len(choices) == 0 {
		return ""
	}

	first := choices[0]
	message := first
	if object, ok := first.(map[string]any); ok {
		// Newer chat responses nest the text under message.content.
		if m := object["message"]; truthy(m) {
			message = m
		} else if c := object["content"]; truthy(c) {
			message = c
		}
	}

	switch m := message.(type) {
	case string:
		return m
	case map[string]any:
		switch content := m["content"].(type) {
		case string:
			return content
		case []any:
			return joinContentParts(content)
		}
	}
	return ""
}

// joinContentParts concatenates part texts in sequence order with no
// separator.
func joinContentParts(parts []any) string {
	var b strings.Builder
	for _, part := range parts {
		if object, ok := part.(map[string]any); ok {
			if text, ok := object["text"].(string); ok {
				b.WriteString(text)
			}
			continue
		}
		b.WriteString(stringify(part))
	}
	return b.String()
}

// truthy mirrors the loose presence check the extraction chain has always
// used: nil, empty string, false and zero do not count as a value.
func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	case float64:
		return v != 0
	default:
		return true
	}
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if !v {
			return ""
		}
		return "true"
	case float64:
		if v == 0 {
			return ""
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
