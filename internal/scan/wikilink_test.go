package scan

import (
	"testing"

	"github.com/JorgeCarriles-Uniovi/Tessellum/internal/span"
)

// TestFindWikilinks_Simple 测试基本链接
func TestFindWikilinks_Simple(t *testing.T) {
	text := "See [[My Note]] for details."
	spans := FindWikilinks(text)
	if len(spans) != 1 {
		t.Fatalf("FindWikilinks() = %d spans, want 1", len(spans))
	}
	s := spans[0]
	if s.Kind != span.KindWikilink {
		t.Errorf("kind = %v, want wikilink", s.Kind)
	}
	if s.Target != "My Note" || s.Alias != "" {
		t.Errorf("payload = (%q, %q), want (\"My Note\", \"\")", s.Target, s.Alias)
	}
	if text[s.Start:s.End] != "[[My Note]]" {
		t.Errorf("covered text = %q, want \"[[My Note]]\"", text[s.Start:s.End])
	}
}

// TestFindWikilinks_Alias 测试别名
func TestFindWikilinks_Alias(t *testing.T) {
	spans := FindWikilinks("[[Note| the alias ]]")
	if len(spans) != 1 {
		t.Fatalf("FindWikilinks() = %d spans, want 1", len(spans))
	}
	if spans[0].Target != "Note" || spans[0].Alias != "the alias" {
		t.Errorf("payload = (%q, %q), want trimmed (\"Note\", \"the alias\")",
			spans[0].Target, spans[0].Alias)
	}
}

// TestFindWikilinks_Escaped 测试转义的链接不产生区域
func TestFindWikilinks_Escaped(t *testing.T) {
	if spans := FindWikilinks(`\[[Not a link]]`); len(spans) != 0 {
		t.Errorf("FindWikilinks() = %d spans, want 0 for escaped link", len(spans))
	}
}

// TestFindWikilinks_Unterminated 测试未闭合的链接不产生区域且扫描继续
func TestFindWikilinks_Unterminated(t *testing.T) {
	spans := FindWikilinks("[[broken\n[[Good]]")
	if len(spans) != 1 {
		t.Fatalf("FindWikilinks() = %d spans, want 1", len(spans))
	}
	if spans[0].Target != "Good" {
		t.Errorf("target = %q, want \"Good\"", spans[0].Target)
	}
}

// TestFindWikilinks_FirstCloseWins 测试第一个 ]] 闭合链接
func TestFindWikilinks_FirstCloseWins(t *testing.T) {
	text := "[[a]]b]]"
	spans := FindWikilinks(text)
	if len(spans) != 1 {
		t.Fatalf("FindWikilinks() = %d spans, want 1", len(spans))
	}
	if text[spans[0].Start:spans[0].End] != "[[a]]" {
		t.Errorf("covered = %q, want \"[[a]]\"", text[spans[0].Start:spans[0].End])
	}
}

// TestFindWikilinks_LineScoped 测试链接不跨行
func TestFindWikilinks_LineScoped(t *testing.T) {
	if spans := FindWikilinks("[[split\nacross]]"); len(spans) != 0 {
		t.Errorf("FindWikilinks() = %d spans, want 0 across lines", len(spans))
	}
}

// TestFindWikilinks_Multiple 测试多个链接与文档级偏移
func TestFindWikilinks_Multiple(t *testing.T) {
	text := "[[A]]\nmid [[B|b]] end"
	spans := FindWikilinks(text)
	if len(spans) != 2 {
		t.Fatalf("FindWikilinks() = %d spans, want 2", len(spans))
	}
	if text[spans[0].Start:spans[0].End] != "[[A]]" {
		t.Errorf("first covered = %q", text[spans[0].Start:spans[0].End])
	}
	if text[spans[1].Start:spans[1].End] != "[[B|b]]" {
		t.Errorf("second covered = %q", text[spans[1].Start:spans[1].End])
	}
	if spans[1].Alias != "b" {
		t.Errorf("alias = %q, want \"b\"", spans[1].Alias)
	}
}

// TestFindWikilinks_PathTarget 测试带路径的目标
func TestFindWikilinks_PathTarget(t *testing.T) {
	spans := FindWikilinks("[[folder/Note]]")
	if len(spans) != 1 || spans[0].Target != "folder/Note" {
		t.Fatalf("FindWikilinks() = %+v, want one span with path target", spans)
	}
}
