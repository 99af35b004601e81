package scan

import (
	"strings"

	"github.com/JorgeCarriles-Uniovi/Tessellum/internal/span"
)

// FindWikilinks 逐行扫描 [[Target]] / [[Target|Alias]] 形式的维基链接。
//
// The scan is line-scoped: "[[" and "]]" never pair across lines. A backslash
// before "[[" escapes the whole construct and produces no span. The first
// unescaped "]]" closes the link; content before the first unescaped "|" is
// the target, the rest the alias, both trimmed.
func FindWikilinks(text string) []span.Span {
	var spans []span.Span
	forEachLine(text, func(lineStart int, line string) {
		i := 0
		n := len(line)
		for i < n {
			if line[i] == '\\' {
				i += 2
				continue
			}
			if line[i] != '[' || i+1 >= n || line[i+1] != '[' {
				i++
				continue
			}
			close := findLinkClose(line, i+2)
			if close < 0 {
				// Unterminated: skip the opener, keep scanning.
				i += 2
				continue
			}
			target, alias := splitLinkInner(line[i+2 : close])
			spans = append(spans, span.Span{
				Start:  lineStart + i,
				End:    lineStart + close + 2,
				Kind:   span.KindWikilink,
				Target: target,
				Alias:  alias,
			})
			i = close + 2
		}
	})
	return spans
}

// findLinkClose returns the index of the first unescaped "]]" at or after
// from within the line, or -1.
func findLinkClose(line string, from int) int {
	n := len(line)
	j := from
	for j < n {
		switch line[j] {
		case '\\':
			j += 2
		case ']':
			if j+1 < n && line[j+1] == ']' {
				return j
			}
			j++
		default:
			j++
		}
	}
	return -1
}

// splitLinkInner splits link content into target and alias at the first
// unescaped pipe. Both sides are trimmed; alias is empty when no pipe.
func splitLinkInner(inner string) (target, alias string) {
	pipe := -1
	for j := 0; j < len(inner); j++ {
		if inner[j] == '\\' {
			j++
			continue
		}
		if inner[j] == '|' {
			pipe = j
			break
		}
	}
	if pipe < 0 {
		return strings.TrimSpace(inner), ""
	}
	return strings.TrimSpace(inner[:pipe]), strings.TrimSpace(inner[pipe+1:])
}

// forEachLine calls fn for each line of text with the byte offset of the
// line's first character. The line string excludes the terminator.
func forEachLine(text string, fn func(lineStart int, line string)) {
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			fn(start, text[start:i])
			start = i + 1
		}
	}
	if start <= len(text) {
		fn(start, text[start:])
	}
}
