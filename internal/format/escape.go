// Package format provides text escaping and formatting utilities shared by
// all renderer variants.
package format

import "strings"

// EscapeLaTeX escapes special LaTeX characters in text.
// Special characters: \ { } $ & % # ^ _ ~
//
// The single left-to-right pass guarantees that backslashes introduced by the
// substitutions themselves are never re-escaped. Straight double quotes are
// normalized to LaTeX quote ligatures, alternating between opening and
// closing quotes.
func EscapeLaTeX(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) * 2) // Pre-allocate space for potential escaping

	openQuote := true
	for _, r := range text {
		switch r {
		case '\\':
			result.WriteString(`\textbackslash{}`)
		case '{':
			result.WriteString(`\{`)
		case '}':
			result.WriteString(`\}`)
		case '$':
			result.WriteString(`\$`)
		case '&':
			result.WriteString(`\&`)
		case '%':
			result.WriteString(`\%`)
		case '#':
			result.WriteString(`\#`)
		case '^':
			result.WriteString(`\textasciicircum{}`)
		case '_':
			result.WriteString(`\_`)
		case '~':
			result.WriteString(`\textasciitilde{}`)
		case '"':
			if openQuote {
				result.WriteString("``")
			} else {
				result.WriteString("''")
			}
			openQuote = !openQuote
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}

// EscapeLaTeXAll escapes each element of items, preserving order.
func EscapeLaTeXAll(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	escaped := make([]string, len(items))
	for i, item := range items {
		escaped[i] = EscapeLaTeX(item)
	}
	return escaped
}
