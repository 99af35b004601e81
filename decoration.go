package tessellum

import (
	"github.com/JorgeCarriles-Uniovi/Tessellum/internal/decor"
	"github.com/JorgeCarriles-Uniovi/Tessellum/internal/mathtext"
)

// 导出类型别名
type (
	Instruction    = decor.Instruction
	Op             = decor.Op
	Surface        = decor.Surface
	NavigationSink = decor.NavigationSink
	MathRenderer   = decor.MathRenderer
	IndexLookup    = decor.Lookup
)

// Instruction operations.
const (
	OpReplace = decor.OpReplace
	OpMark    = decor.OpMark
)

// PlainMath renders a formula as its own source text.
type PlainMath = decor.PlainMath

// UnicodeMath 将公式渲染为 Unicode 近似文本（√、上下标、希腊字母等），
// 适合无法内嵌公式引擎的渲染面。通过 WithMathRenderer 启用。
type UnicodeMath = mathtext.Renderer

// DecorationSet 是一次重算的完整输出：已消解区域及其渲染指令。
//
// The set is replaced wholesale on every recompute; entries are never
// patched in place. Spans are ordered ascending by start and do not overlap.
type DecorationSet struct {
	Spans        []FlaggedSpan
	Instructions []Instruction
}

// Eq reports value equality of two sets. Hosts can use it to skip a render
// cycle entirely when a recompute produced an identical set.
func (ds *DecorationSet) Eq(o *DecorationSet) bool {
	if ds == nil || o == nil {
		return ds == o
	}
	if len(ds.Spans) != len(o.Spans) || len(ds.Instructions) != len(o.Instructions) {
		return false
	}
	for i := range ds.Spans {
		if ds.Spans[i] != o.Spans[i] {
			return false
		}
	}
	for i := range ds.Instructions {
		if !ds.Instructions[i].Eq(o.Instructions[i]) {
			return false
		}
	}
	return true
}

// Materialize 将带标记的区域转换为装饰指令。
func Materialize(flagged []FlaggedSpan, cfg *RenderConfig, math MathRenderer, index IndexLookup) []Instruction {
	return decor.Materialize(flagged, cfg, math, index)
}
