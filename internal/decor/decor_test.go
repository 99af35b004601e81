package decor

import (
	"errors"
	"testing"

	"github.com/JorgeCarriles-Uniovi/Tessellum/internal/resolve"
	"github.com/JorgeCarriles-Uniovi/Tessellum/internal/span"
)

type fakeIndex struct {
	known map[string]string
}

func (f *fakeIndex) Exists(target string) bool {
	_, ok := f.known[target]
	return ok
}

func (f *fakeIndex) ResolveTarget(target string) (string, bool) {
	path, ok := f.known[target]
	return path, ok
}

type failingMath struct{}

func (failingMath) Render(formula string, display bool) (string, error) {
	return "", errors.New("bad formula")
}

type recordingSurface struct {
	from, to int
	called   bool
}

func (r *recordingSurface) SelectRange(from, to int) {
	r.from, r.to = from, to
	r.called = true
}

type recordingSink struct {
	target, resolved string
	called           bool
}

func (r *recordingSink) OnWikiLinkActivated(target, resolvedPath string) {
	r.target, r.resolved = target, resolvedPath
	r.called = true
}

func widget(s span.Span) resolve.Flagged {
	return resolve.Flagged{Span: s, Widget: true}
}

func raw(s span.Span) resolve.Flagged {
	return resolve.Flagged{Span: s, Widget: false}
}

// TestMaterialize_MathWidget 测试数学 widget 指令
func TestMaterialize_MathWidget(t *testing.T) {
	s := span.Span{Start: 0, End: 7, Kind: span.KindMathBlock, Formula: "x^2", Display: true}
	out := Materialize([]resolve.Flagged{widget(s)}, nil, nil, nil)
	if len(out) != 1 {
		t.Fatalf("Materialize() = %d instructions, want 1", len(out))
	}
	in := out[0]
	if in.Op != OpReplace {
		t.Errorf("op = %v, want replace", in.Op)
	}
	if in.Rendered != "x^2" {
		t.Errorf("rendered = %q, want \"x^2\" from the plain renderer", in.Rendered)
	}
}

// TestMaterialize_MathRawKeepsMark 测试光标内的数学区域保留样式标注
func TestMaterialize_MathRawKeepsMark(t *testing.T) {
	s := span.Span{Start: 0, End: 5, Kind: span.KindMathInline, Formula: "a"}
	out := Materialize([]resolve.Flagged{raw(s)}, nil, nil, nil)
	if len(out) != 1 || out[0].Op != OpMark {
		t.Fatalf("Materialize() = %+v, want one mark instruction", out)
	}
}

// TestMaterialize_MathRenderFailureFallsBack 测试渲染失败回退为原文标注
func TestMaterialize_MathRenderFailureFallsBack(t *testing.T) {
	s := span.Span{Start: 0, End: 7, Kind: span.KindMathBlock, Formula: "\\bogus", Display: true}
	out := Materialize([]resolve.Flagged{widget(s)}, nil, failingMath{}, nil)
	if len(out) != 1 {
		t.Fatalf("Materialize() = %d instructions, want 1 (fallback)", len(out))
	}
	if out[0].Op != OpMark {
		t.Errorf("op = %v, want mark fallback on renderer failure", out[0].Op)
	}
}

// TestMaterialize_WikilinkResolved 测试已解析链接
func TestMaterialize_WikilinkResolved(t *testing.T) {
	idx := &fakeIndex{known: map[string]string{"My Note": "notes/My Note.md"}}
	s := span.Span{Start: 4, End: 15, Kind: span.KindWikilink, Target: "My Note"}
	out := Materialize([]resolve.Flagged{widget(s)}, nil, nil, idx)
	if len(out) != 1 {
		t.Fatalf("Materialize() = %d instructions, want 1", len(out))
	}
	in := out[0]
	if in.Broken {
		t.Error("resolved link must not be broken")
	}
	if in.Resolved != "notes/My Note.md" {
		t.Errorf("resolved = %q, want the index answer", in.Resolved)
	}
	if in.Rendered != "My Note" {
		t.Errorf("rendered = %q, want target as display text", in.Rendered)
	}
}

// TestMaterialize_WikilinkBroken 测试未知目标的断链样式
func TestMaterialize_WikilinkBroken(t *testing.T) {
	idx := &fakeIndex{known: map[string]string{}}
	s := span.Span{Start: 0, End: 11, Kind: span.KindWikilink, Target: "My Note"}
	out := Materialize([]resolve.Flagged{widget(s)}, nil, nil, idx)
	if !out[0].Broken {
		t.Error("unknown target must materialize as broken")
	}
	cfg := span.DefaultRenderConfig()
	if out[0].Class != cfg.Classes.BrokenWikilink {
		t.Errorf("class = %q, want broken-link class", out[0].Class)
	}
}

// TestMaterialize_WikilinkNilIndex 测试无索引时一律视为未解析
func TestMaterialize_WikilinkNilIndex(t *testing.T) {
	s := span.Span{Start: 0, End: 7, Kind: span.KindWikilink, Target: "X"}
	out := Materialize([]resolve.Flagged{widget(s)}, nil, nil, nil)
	if !out[0].Broken {
		t.Error("nil index means every link is unresolved")
	}
}

// TestMaterialize_WikilinkAlias 测试别名作为显示文本
func TestMaterialize_WikilinkAlias(t *testing.T) {
	s := span.Span{Start: 0, End: 14, Kind: span.KindWikilink, Target: "N", Alias: "shown"}
	out := Materialize([]resolve.Flagged{widget(s)}, nil, nil, nil)
	if out[0].Rendered != "shown" {
		t.Errorf("rendered = %q, want the alias", out[0].Rendered)
	}
}

// TestMaterialize_WikilinkRawKeepsBookkeeping 测试原文链接仍保留存在性标注
func TestMaterialize_WikilinkRawKeepsBookkeeping(t *testing.T) {
	idx := &fakeIndex{known: map[string]string{"N": "N.md"}}
	s := span.Span{Start: 0, End: 7, Kind: span.KindWikilink, Target: "N"}
	out := Materialize([]resolve.Flagged{raw(s)}, nil, nil, idx)
	if len(out) != 1 || out[0].Op != OpMark {
		t.Fatalf("Materialize() = %+v, want one mark for the raw link", out)
	}
	if out[0].Broken {
		t.Error("existence checking applies to raw links too")
	}
}

// TestMaterialize_DividerAndHiddenMarks 测试分割线与结构标记
func TestMaterialize_DividerAndHiddenMarks(t *testing.T) {
	div := span.Span{Start: 0, End: 4, Kind: span.KindDivider}
	mark := span.Span{Start: 5, End: 7, Kind: span.KindStructuralMark,
		Marker: span.MarkerStrong, NodeStart: 5, NodeEnd: 14}

	out := Materialize([]resolve.Flagged{widget(div), widget(mark)}, nil, nil, nil)
	if len(out) != 2 {
		t.Fatalf("Materialize() = %d instructions, want 2", len(out))
	}
	if out[0].Op != OpReplace || out[1].Op != OpReplace {
		t.Error("divider and hidden mark are both replace instructions")
	}

	// Raw versions disappear entirely: the source text simply shows.
	out = Materialize([]resolve.Flagged{raw(div), raw(mark)}, nil, nil, nil)
	if len(out) != 0 {
		t.Errorf("raw divider/mark should produce no instruction, got %d", len(out))
	}
}

// TestMaterialize_HideDisabled 测试关闭隐藏语法时不产生结构标记指令
func TestMaterialize_HideDisabled(t *testing.T) {
	cfg := span.DefaultRenderConfig()
	cfg2 := *cfg
	cfg2.HideStructuralMarks = false
	mark := span.Span{Start: 0, End: 2, Kind: span.KindStructuralMark,
		Marker: span.MarkerHeading, NodeStart: 0, NodeEnd: 8}
	out := Materialize([]resolve.Flagged{widget(mark)}, &cfg2, nil, nil)
	if len(out) != 0 {
		t.Errorf("Materialize() = %d instructions with hiding disabled, want 0", len(out))
	}
}

// TestInstruction_Click 测试点击选中整个区域并通知导航
func TestInstruction_Click(t *testing.T) {
	idx := &fakeIndex{known: map[string]string{"My Note": "My Note.md"}}
	s := span.Span{Start: 4, End: 15, Kind: span.KindWikilink, Target: "My Note"}
	out := Materialize([]resolve.Flagged{widget(s)}, nil, nil, idx)

	sf := &recordingSurface{}
	sink := &recordingSink{}
	out[0].Click(sf, sink)

	if !sf.called || sf.from != 4 || sf.to != 15 {
		t.Errorf("click selected [%d,%d), want the full span [4,15)", sf.from, sf.to)
	}
	if !sink.called || sink.target != "My Note" || sink.resolved != "My Note.md" {
		t.Errorf("sink got (%q, %q), want (\"My Note\", \"My Note.md\")",
			sink.target, sink.resolved)
	}
}

// TestInstruction_ClickNonLink 测试非链接 widget 点击只选中区域
func TestInstruction_ClickNonLink(t *testing.T) {
	s := span.Span{Start: 0, End: 7, Kind: span.KindMathBlock, Formula: "x"}
	out := Materialize([]resolve.Flagged{widget(s)}, nil, nil, nil)

	sf := &recordingSurface{}
	sink := &recordingSink{}
	out[0].Click(sf, sink)
	if !sf.called {
		t.Error("click must select the span range")
	}
	if sink.called {
		t.Error("math widget click must not notify the navigation sink")
	}
}

// TestInstruction_Eq 测试指令值相等性
func TestInstruction_Eq(t *testing.T) {
	s := span.Span{Start: 0, End: 7, Kind: span.KindMathBlock, Formula: "x", Display: true}
	a := Materialize([]resolve.Flagged{widget(s)}, nil, nil, nil)
	b := Materialize([]resolve.Flagged{widget(s)}, nil, nil, nil)
	if !a[0].Eq(b[0]) {
		t.Error("identical recomputes must produce equal instructions")
	}
	s2 := s
	s2.Formula = "y"
	c := Materialize([]resolve.Flagged{widget(s2)}, nil, nil, nil)
	if a[0].Eq(c[0]) {
		t.Error("different payloads must not compare equal")
	}
}
