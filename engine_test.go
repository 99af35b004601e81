package tessellum

import "testing"

// TestEngine_FullRecomputeOnDocChange 测试文档变更触发完整重算
func TestEngine_FullRecomputeOnDocChange(t *testing.T) {
	e := NewEngine()
	snap := Snapshot{Text: "$x$ and [[Note]]"}

	set := e.OnChange(ChangeEvent{DocChanged: true}, snap)
	if set == nil || len(set.Spans) != 2 {
		t.Fatalf("got %+v, want 2 spans", set)
	}
	if e.Current() != set {
		t.Error("Current() should return the cached set")
	}

	snap.Text = "$x$"
	next := e.OnChange(ChangeEvent{DocChanged: true}, snap)
	if len(next.Spans) != 1 {
		t.Errorf("after doc change got %d spans, want 1", len(next.Spans))
	}
	if next == set {
		t.Error("recompute must replace the set wholesale, not reuse it")
	}
}

// TestEngine_SelectionOnlyReusesSpans 测试仅选区变更只重跑抑制与物化
func TestEngine_SelectionOnlyReusesSpans(t *testing.T) {
	e := NewEngine()
	snap := Snapshot{Text: "$$x^2$$ tail", Selection: Selection{From: 12, To: 12}}

	first := e.OnChange(ChangeEvent{DocChanged: true}, snap)
	if !first.Spans[0].Widget {
		t.Fatal("selection outside the span should start as a widget")
	}

	snap.Selection = Selection{From: 3, To: 3}
	second := e.OnChange(ChangeEvent{SelectionChanged: true}, snap)
	if second.Spans[0].Widget {
		t.Error("moving the caret inside must flip the span to raw")
	}
	if first.Spans[0].Span != second.Spans[0].Span {
		t.Error("selection-only recompute must keep the same resolved span")
	}

	snap.Selection = Selection{From: 12, To: 12}
	third := e.OnChange(ChangeEvent{SelectionChanged: true}, snap)
	if !third.Spans[0].Widget {
		t.Error("moving the caret back out must restore the widget")
	}
}

// TestEngine_NoChangeReturnsCached 测试无变更时返回缓存集
func TestEngine_NoChangeReturnsCached(t *testing.T) {
	e := NewEngine()
	snap := Snapshot{Text: "---\n"}

	set := e.OnChange(ChangeEvent{DocChanged: true}, snap)
	again := e.OnChange(ChangeEvent{}, snap)
	if again != set {
		t.Error("no-op change must return the cached set unchanged")
	}
}

// TestEngine_FirstCallAlwaysComputes 测试首次调用即使事件为空也计算
func TestEngine_FirstCallAlwaysComputes(t *testing.T) {
	e := NewEngine()
	if e.Current() != nil {
		t.Fatal("fresh engine must have no cached set")
	}
	set := e.OnChange(ChangeEvent{}, Snapshot{Text: "$x$"})
	if set == nil || len(set.Spans) != 1 {
		t.Errorf("first OnChange must compute, got %+v", set)
	}
}

// TestEngine_Invalidate 测试失效后强制完整重算
func TestEngine_Invalidate(t *testing.T) {
	e := NewEngine()
	snap := Snapshot{Text: "[[Note]]"}

	e.OnChange(ChangeEvent{DocChanged: true}, snap)
	e.Invalidate()
	if e.Current() != nil {
		t.Fatal("Invalidate must drop the cached set")
	}
	set := e.OnChange(ChangeEvent{}, snap)
	if set == nil || len(set.Spans) != 1 {
		t.Errorf("post-invalidate OnChange must recompute, got %+v", set)
	}
}

// TestEngine_ViewportChangeRescans 测试视口变更重新扫描窗口
func TestEngine_ViewportChangeRescans(t *testing.T) {
	e := NewEngine()
	text := "$a$\n\nmiddle\n\n$b$\n"

	top := e.OnChange(ChangeEvent{DocChanged: true}, Snapshot{
		Text:     text,
		Viewport: LineRange{First: 0, Last: 1},
	})
	if len(top.Spans) != 1 {
		t.Fatalf("top viewport got %d spans, want 1", len(top.Spans))
	}

	bottom := e.OnChange(ChangeEvent{ViewportChanged: true}, Snapshot{
		Text:     text,
		Viewport: LineRange{First: 4, Last: 4},
	})
	if len(bottom.Spans) != 1 || bottom.Spans[0].Span.Start == top.Spans[0].Span.Start {
		t.Errorf("bottom viewport should find the other formula, got %+v", bottom.Spans)
	}
}
