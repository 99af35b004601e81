package scan

import (
	"strings"

	"github.com/JorgeCarriles-Uniovi/Tessellum/internal/span"
)

// Window 将可见行范围换算为要扫描的字节区间 [start, end)。
//
// The window is expanded to the nearest blank line above and below the
// viewport so spans that start before the first visible line but end inside
// it are still found. If an unclosed "$$" opener precedes the window, the
// window is pulled back to its line, since block math may cross blank lines.
func Window(text string, vp span.LineRange) (int, int) {
	if vp.Whole() {
		return 0, len(text)
	}

	starts := lineStarts(text)
	first, last := vp.First, vp.Last
	if first < 0 {
		first = 0
	}
	if last >= len(starts) {
		last = len(starts) - 1
	}
	if first >= len(starts) || last < first {
		return len(text), len(text)
	}

	// Expand upward to a blank line.
	for first > 0 && !blankLine(text, starts, first-1) {
		first--
	}
	// Expand downward to a blank line.
	for last < len(starts)-1 && !blankLine(text, starts, last+1) {
		last++
	}

	start := starts[first]
	end := len(text)
	if last+1 < len(starts) {
		end = starts[last+1]
	}

	// Pull the window back over an unclosed block-math opener.
	if open := openBlockMathBefore(text, start); open >= 0 {
		start = lineStartBefore(text, open)
	}
	return start, end
}

// lineStarts returns the byte offset of every line start.
func lineStarts(text string) []int {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' && i+1 <= len(text) {
			starts = append(starts, i+1)
		}
	}
	return starts
}

func blankLine(text string, starts []int, idx int) bool {
	start := starts[idx]
	end := len(text)
	if idx+1 < len(starts) {
		end = starts[idx+1] - 1
	}
	return strings.TrimSpace(text[start:end]) == ""
}

// openBlockMathBefore returns the offset of the last unescaped "$$" before
// pos when the count of such openers is odd (an unclosed block), else -1.
func openBlockMathBefore(text string, pos int) int {
	count := 0
	lastIdx := -1
	i := 0
	for i < pos {
		switch text[i] {
		case '\\':
			i += 2
		case '$':
			if i+1 < pos && text[i+1] == '$' {
				count++
				lastIdx = i
				i += 2
				continue
			}
			i++
		default:
			i++
		}
	}
	if count%2 == 1 {
		return lastIdx
	}
	return -1
}
