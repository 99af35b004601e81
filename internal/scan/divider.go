package scan

import (
	"github.com/JorgeCarriles-Uniovi/Tessellum/internal/span"
)

// FindDividers 逐行扫描水平分割线。
//
// A line is a divider iff its content is exactly "---": "----", "--- " with
// a trailing space, or any surrounding text disqualify it. The span covers
// the whole line including its terminator, so a divider widget replaces the
// full line.
func FindDividers(text string) []span.Span {
	var spans []span.Span
	forEachLine(text, func(lineStart int, line string) {
		if line != "---" {
			return
		}
		end := lineStart + len(line)
		if end < len(text) && text[end] == '\n' {
			end++
		}
		spans = append(spans, span.Span{
			Start: lineStart,
			End:   end,
			Kind:  span.KindDivider,
		})
	})
	return spans
}
