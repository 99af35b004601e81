// Package decor converts resolved, suppression-flagged spans into render
// instructions for a host surface. All side effects of the pipeline (widget
// construction, click handling) live here, behind small interfaces, so the
// scan/resolve stages stay testable without any rendering surface.
package decor

import (
	"github.com/JorgeCarriles-Uniovi/Tessellum/internal/resolve"
	"github.com/JorgeCarriles-Uniovi/Tessellum/internal/span"
)

// Op distinguishes the two instruction forms a surface must support.
type Op int

const (
	// OpReplace replaces the span's text range with an opaque widget.
	OpReplace Op = iota
	// OpMark styles the span's text range, leaving the text visible.
	OpMark
)

// String returns the string representation of Op.
func (op Op) String() string {
	if op == OpReplace {
		return "replace"
	}
	return "mark"
}

// Instruction 是一条可交给渲染面的装饰指令。
type Instruction struct {
	Op    Op
	Span  span.Span
	Class string

	// Rendered is the widget's display text: the rendered formula for math,
	// alias or target for wikilinks. Empty for hidden structural marks.
	Rendered string

	// Wikilink resolution state, filled from the note index.
	Broken   bool
	Resolved string
}

// Eq reports value equality. Hosts use it to skip re-creating widgets whose
// instruction did not change between recomputes; object identity is useless
// for that because every recompute builds fresh instructions.
func (in Instruction) Eq(o Instruction) bool {
	return in == o
}

// Surface 渲染面：本子系统对宿主 UI 的全部假设。
type Surface interface {
	// SelectRange sets the editor selection to [from, to) in the underlying
	// text buffer.
	SelectRange(from, to int)
}

// NavigationSink receives wikilink activations. Creating a missing note is
// the receiver's business, not ours.
type NavigationSink interface {
	OnWikiLinkActivated(target string, resolvedPath string)
}

// MathRenderer renders a formula for display inside a widget.
type MathRenderer interface {
	Render(formula string, display bool) (string, error)
}

// PlainMath is the fallback MathRenderer: the formula text itself.
type PlainMath struct{}

// Render returns the formula unchanged.
func (PlainMath) Render(formula string, display bool) (string, error) {
	return formula, nil
}

// Lookup is the synchronous face of the note index. Answers may be stale;
// a nil Lookup means every link is unresolved.
type Lookup interface {
	Exists(target string) bool
	ResolveTarget(target string) (string, bool)
}

// Materialize 将带渲染标记的区域转换为装饰指令列表。
//
// Raw (Widget=false) math keeps a style mark so the source text is still
// recognizable as math; raw wikilinks keep their link/broken-link mark, since
// existence checking applies to raw links too. Raw dividers and raw
// structural marks produce no instruction: their source text simply shows.
//
// A math renderer failure never aborts the set: the failing span falls back
// to a raw-text mark.
func Materialize(flagged []resolve.Flagged, cfg *span.RenderConfig, math MathRenderer, index Lookup) []Instruction {
	if cfg == nil {
		cfg = span.DefaultRenderConfig()
	}
	if math == nil {
		math = PlainMath{}
	}
	out := make([]Instruction, 0, len(flagged))
	for _, f := range flagged {
		if in, ok := materializeOne(f, cfg, math, index); ok {
			out = append(out, in)
		}
	}
	return out
}

func materializeOne(f resolve.Flagged, cfg *span.RenderConfig, math MathRenderer, index Lookup) (Instruction, bool) {
	s := f.Span
	switch s.Kind {
	case span.KindMathBlock, span.KindMathInline:
		if !f.Widget {
			return Instruction{Op: OpMark, Span: s, Class: cfg.Classes.RawMath}, true
		}
		rendered, err := math.Render(s.Formula, s.Display)
		if err != nil {
			return Instruction{Op: OpMark, Span: s, Class: cfg.Classes.RawMath}, true
		}
		class := cfg.Classes.MathInline
		if s.Kind == span.KindMathBlock {
			class = cfg.Classes.MathBlock
		}
		return Instruction{Op: OpReplace, Span: s, Class: class, Rendered: rendered}, true

	case span.KindWikilink:
		resolved, ok := lookupTarget(index, s.Target)
		class := cfg.Classes.Wikilink
		if !ok {
			class = cfg.Classes.BrokenWikilink
		}
		in := Instruction{
			Span:     s,
			Class:    class,
			Broken:   !ok,
			Resolved: resolved,
		}
		if !f.Widget {
			in.Op = OpMark
			return in, true
		}
		in.Op = OpReplace
		in.Rendered = s.Target
		if s.Alias != "" {
			in.Rendered = s.Alias
		}
		return in, true

	case span.KindDivider:
		if !f.Widget {
			return Instruction{}, false
		}
		return Instruction{Op: OpReplace, Span: s, Class: cfg.Classes.Divider}, true

	case span.KindStructuralMark:
		if !f.Widget || !cfg.HideStructuralMarks {
			return Instruction{}, false
		}
		return Instruction{Op: OpReplace, Span: s, Class: cfg.Classes.HiddenMark}, true
	}
	return Instruction{}, false
}

// lookupTarget consults the index; a nil or failing index means unresolved.
func lookupTarget(index Lookup, target string) (string, bool) {
	if index == nil {
		return "", false
	}
	if path, ok := index.ResolveTarget(target); ok {
		return path, true
	}
	if index.Exists(target) {
		return "", true
	}
	return "", false
}

// Click 执行一条指令的点击行为。
//
// Contract: clicking a widget selects the full original span range in the
// text buffer, so raw-text editing after the click starts from a correct
// selection. Wikilink widgets additionally notify the navigation sink.
func (in Instruction) Click(sf Surface, nav NavigationSink) {
	if sf != nil {
		sf.SelectRange(in.Span.Start, in.Span.End)
	}
	if in.Span.Kind == span.KindWikilink && nav != nil {
		nav.OnWikiLinkActivated(in.Span.Target, in.Resolved)
	}
}
