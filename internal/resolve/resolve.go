// Package resolve merges candidate spans from the finders into one
// non-overlapping timeline and applies cursor-aware suppression.
package resolve

import (
	"sort"

	"github.com/JorgeCarriles-Uniovi/Tessellum/internal/span"
)

// Resolve 将多个 finder 的候选区域合并为单条不重叠、按 Start 升序的列表。
//
// Candidates are sorted by start ascending; ties go to the longer span, then
// to the fixed kind priority (math-block > math-inline > wikilink > divider >
// structural-mark). A left-to-right sweep then keeps a candidate iff it
// starts at or after the end of the last kept span. Dropped spans are simple
// overlap suppression, not errors.
//
// The tie-break must be total and deterministic: without it two spans
// starting at the same offset could resolve differently across recomputes
// and flicker on screen.
func Resolve(lists ...[]span.Span) []span.Span {
	total := 0
	for _, l := range lists {
		total += len(l)
	}
	if total == 0 {
		return nil
	}
	all := make([]span.Span, 0, total)
	for _, l := range lists {
		all = append(all, l...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.Len() != b.Len() {
			return a.Len() > b.Len()
		}
		return a.Kind.Priority() < b.Kind.Priority()
	})

	out := make([]span.Span, 0, len(all))
	lastEnd := 0
	for _, s := range all {
		if s.Start >= lastEnd {
			out = append(out, s)
			lastEnd = s.End
		}
	}
	return out
}

// Flagged pairs a resolved span with its render decision. Widget=false means
// the span renders raw (source text visible); the span still participates in
// bookkeeping such as wikilink existence checks.
type Flagged struct {
	Span   span.Span
	Widget bool
}

// Suppress 根据当前选区决定每个区域以 widget 还是原文呈现。
//
// Two deliberately different predicates, one per behavior family:
//
//   - math / wikilink / divider render raw when the selection touches the
//     span at all, inclusive on both ends:
//     sel.From <= span.End && sel.To >= span.Start
//   - structural marks render raw when the selection is fully contained in
//     the enclosing node:
//     sel.From >= node.Start && sel.To <= node.End
//
// The predicates must not be unified; they produce different behavior when
// typing at the edge of a span, and both edge behaviors are intended.
func Suppress(spans []span.Span, sel span.Selection, docLen int) []Flagged {
	sel = sel.Clamp(docLen)
	out := make([]Flagged, len(spans))
	for i, s := range spans {
		out[i] = Flagged{Span: s, Widget: !rendersRaw(s, sel)}
	}
	return out
}

func rendersRaw(s span.Span, sel span.Selection) bool {
	if s.Kind == span.KindStructuralMark {
		start, end := s.Enclosing()
		return sel.From >= start && sel.To <= end
	}
	return sel.From <= s.End && sel.To >= s.Start
}
