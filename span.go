package tessellum

import (
	"github.com/JorgeCarriles-Uniovi/Tessellum/internal/resolve"
	"github.com/JorgeCarriles-Uniovi/Tessellum/internal/scan"
	"github.com/JorgeCarriles-Uniovi/Tessellum/internal/span"
)

// 导出类型别名
type (
	Span      = span.Span
	Kind      = span.Kind
	Marker    = span.Marker
	Selection = span.Selection
	Snapshot  = span.Snapshot
	LineRange = span.LineRange
)

// Markup kinds, in resolver precedence order.
const (
	KindMathBlock      = span.KindMathBlock
	KindMathInline     = span.KindMathInline
	KindWikilink       = span.KindWikilink
	KindDivider        = span.KindDivider
	KindStructuralMark = span.KindStructuralMark
)

// Structural-mark subtypes.
const (
	MarkerHeading     = span.MarkerHeading
	MarkerEmphasis    = span.MarkerEmphasis
	MarkerStrong      = span.MarkerStrong
	MarkerQuote       = span.MarkerQuote
	MarkerListBullet  = span.MarkerListBullet
	MarkerLinkBracket = span.MarkerLinkBracket
	MarkerImageBang   = span.MarkerImageBang
)

// FlaggedSpan pairs a resolved span with its render decision.
type FlaggedSpan = resolve.Flagged

// FindSpans 对整篇文本运行指定类别的 finder，返回按 Start 升序的候选区域。
//
// This is the raw finder layer: results of different kinds may overlap.
// Resolve merges them into the final non-overlapping list.
func FindSpans(text string, kind Kind) []Span {
	switch kind {
	case KindMathBlock, KindMathInline:
		var out []Span
		for _, s := range scan.FindMath(text) {
			if s.Kind == kind {
				out = append(out, s)
			}
		}
		return out
	case KindWikilink:
		return scan.FindWikilinks(text)
	case KindDivider:
		return scan.FindDividers(text)
	case KindStructuralMark:
		return scan.FindStructural(text)
	}
	return nil
}

// Resolve 将多个候选列表合并为最终的不重叠区域列表。
func Resolve(lists ...[]Span) []Span {
	return resolve.Resolve(lists...)
}

// Suppress 根据选区为每个已消解区域打上 widget/raw 标记。
func Suppress(spans []Span, sel Selection, docLen int) []FlaggedSpan {
	return resolve.Suppress(spans, sel, docLen)
}
