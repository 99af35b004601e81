package tessellum

import (
	"github.com/JorgeCarriles-Uniovi/Tessellum/internal/resolve"
	"github.com/JorgeCarriles-Uniovi/Tessellum/internal/scan"
)

// Decorate 对一个文档快照运行完整管线，返回装饰集。
//
// 管线：扫描 -> 消解 -> 光标抑制 -> 物化。纯函数：相同的 (text, selection,
// viewport) 快照总是产生相同的装饰集。
//
// 参数:
//   - snap: 文档快照（全文 + 选区 + 可见行范围，零值视口表示整篇）
//   - opts: 配置项（WithNoteIndex、WithMathRenderer、WithConfig）
//
// 返回:
//   - *DecorationSet: 有序、不重叠的 (区域, 指令) 集合
func Decorate(snap Snapshot, opts ...Option) *DecorationSet {
	_, set := runPipeline(snap, applyOptions(opts...))
	return set
}

// runPipeline 执行扫描与消解，返回已消解区域和完整装饰集。
func runPipeline(snap Snapshot, o *DecorateOptions) ([]Span, *DecorationSet) {
	wStart, wEnd := scan.Window(snap.Text, snap.Viewport)
	window := snap.Text[wStart:wEnd]

	math := shiftSpans(scan.FindMath(window), wStart)
	wiki := shiftSpans(scan.FindWikilinks(window), wStart)
	div := shiftSpans(scan.FindDividers(window), wStart)
	var structural []Span
	if o.Config == nil || o.Config.HideStructuralMarks {
		structural = shiftStructural(scan.FindStructural(window), wStart)
	}

	resolved := resolve.Resolve(math, wiki, div, structural)
	return resolved, finishPipeline(resolved, snap, o)
}

// finishPipeline 对已消解区域执行抑制与物化。Selection-only 重算复用它。
func finishPipeline(resolved []Span, snap Snapshot, o *DecorateOptions) *DecorationSet {
	flagged := resolve.Suppress(resolved, snap.Selection, len(snap.Text))
	return &DecorationSet{
		Spans:        flagged,
		Instructions: Materialize(flagged, o.Config, o.Math, o.Index),
	}
}

// shiftSpans rebases window-relative spans onto document offsets.
func shiftSpans(spans []Span, by int) []Span {
	if by == 0 {
		return spans
	}
	for i := range spans {
		spans[i].Start += by
		spans[i].End += by
	}
	return spans
}

// shiftStructural additionally rebases the enclosing-node ranges.
func shiftStructural(spans []Span, by int) []Span {
	if by == 0 {
		return spans
	}
	for i := range spans {
		spans[i].Start += by
		spans[i].End += by
		spans[i].NodeStart += by
		spans[i].NodeEnd += by
	}
	return spans
}
