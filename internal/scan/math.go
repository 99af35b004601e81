package scan

import (
	"github.com/JorgeCarriles-Uniovi/Tessellum/internal/span"
)

// FindMath 单遍扫描文本，返回块级（$$...$$）和行内（$...$）数学区域。
//
// Block and inline math must be resolved in one pass: independent regexes for
// the two forms produce overlapping matches when an inline candidate sits
// inside block delimiters. Here a "$$" opener always tries to close as a
// block first; only a lone "$" is considered as an inline opener, and its
// closing "$" must appear on the same line.
//
// A backslash escapes the next character ("\$" is a literal dollar), both
// outside math and while looking for a closing delimiter.
func FindMath(text string) []span.Span {
	var spans []span.Span
	n := len(text)
	i := 0
	for i < n {
		c := text[i]
		if c == '\\' {
			i += 2
			continue
		}
		if c != '$' {
			i++
			continue
		}
		if i+1 < n && text[i+1] == '$' {
			// Block candidate: search for a closing "$$" anywhere ahead.
			if close := findBlockClose(text, i+2); close >= 0 {
				spans = append(spans, span.Span{
					Start:   i,
					End:     close + 2,
					Kind:    span.KindMathBlock,
					Formula: text[i+2 : close],
					Display: true,
				})
				i = close + 2
				continue
			}
			// Unterminated "$$" is literal text.
			i += 2
			continue
		}
		// Inline candidate: closing "$" must be on the same line.
		if close := findInlineClose(text, i+1); close >= 0 {
			spans = append(spans, span.Span{
				Start:   i,
				End:     close + 1,
				Kind:    span.KindMathInline,
				Formula: text[i+1 : close],
			})
			i = close + 1
			continue
		}
		i++
	}
	return spans
}

// findBlockClose returns the index of the next unescaped "$$" at or after
// from, or -1. May cross lines.
func findBlockClose(text string, from int) int {
	n := len(text)
	j := from
	for j < n {
		switch text[j] {
		case '\\':
			j += 2
		case '$':
			if j+1 < n && text[j+1] == '$' {
				return j
			}
			j++
		default:
			j++
		}
	}
	return -1
}

// findInlineClose returns the index of the next unescaped "$" at or after
// from on the same line, or -1 if a newline or end of text intervenes.
func findInlineClose(text string, from int) int {
	n := len(text)
	j := from
	for j < n {
		switch text[j] {
		case '\\':
			j += 2
		case '\n':
			return -1
		case '$':
			return j
		default:
			j++
		}
	}
	return -1
}
