package scan

import (
	"sort"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	gmtext "github.com/yuin/goldmark/text"

	"github.com/JorgeCarriles-Uniovi/Tessellum/internal/span"
)

// StandardOptions goldmark 扩展配置，与结构扫描所需的语法集对应。
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM,
	),
}

// FindStructural 通过 goldmark 结构解析提取语法标记子区域。
//
// Each emitted span covers one syntax marker (the "# " of a heading, one
// "**" delimiter of a strong run, the "> " of a quote line, a list bullet,
// the brackets of a link) and carries the enclosing node's full range in
// NodeStart/NodeEnd, because hide-markup suppression is decided per node,
// not per marker.
func FindStructural(text string) []span.Span {
	if text == "" {
		return nil
	}
	md := goldmark.New(StandardOptions...)
	source := []byte(text)
	reader := gmtext.NewReader(source)
	root := md.Parser().Parse(reader)

	w := &structWalker{text: text}
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		return w.walk(n)
	})

	sort.SliceStable(w.spans, func(i, j int) bool {
		if w.spans[i].Start != w.spans[j].Start {
			return w.spans[i].Start < w.spans[j].Start
		}
		return w.spans[i].End > w.spans[j].End
	})
	return w.spans
}

type structWalker struct {
	text  string
	spans []span.Span
}

func (w *structWalker) walk(n ast.Node) (ast.WalkStatus, error) {
	switch v := n.(type) {
	case *ast.Heading:
		w.onHeading(v)
	case *ast.Emphasis:
		w.onEmphasis(v)
	case *ast.Blockquote:
		w.onBlockquote(v)
	case *ast.ListItem:
		w.onListItem(v)
	case *ast.Link:
		w.onLink(v)
	case *ast.Image:
		w.onImage(v)
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		// Code blocks keep their raw text; nothing inside is markup.
		return ast.WalkSkipChildren, nil
	}
	return ast.WalkContinue, nil
}

func (w *structWalker) emit(start, end int, m span.Marker, nodeStart, nodeEnd int) {
	if start < 0 || end > len(w.text) || start >= end {
		return
	}
	w.spans = append(w.spans, span.Span{
		Start:     start,
		End:       end,
		Kind:      span.KindStructuralMark,
		Marker:    m,
		NodeStart: nodeStart,
		NodeEnd:   nodeEnd,
	})
}

// onHeading marks the ATX "# " prefix. Setext headings have no prefix and
// are left alone.
func (w *structWalker) onHeading(n *ast.Heading) {
	lines := n.Lines()
	if lines.Len() == 0 {
		return
	}
	first := lines.At(0)
	lineStart := lineStartBefore(w.text, first.Start)
	j := lineStart
	for j < len(w.text) && w.text[j] == ' ' {
		j++
	}
	if j >= len(w.text) || w.text[j] != '#' {
		return
	}
	nodeEnd := lines.At(lines.Len() - 1).Stop
	// Line segments may include the terminator; the node ends at the text.
	for nodeEnd > first.Start && (w.text[nodeEnd-1] == '\n' || w.text[nodeEnd-1] == '\r') {
		nodeEnd--
	}
	w.emit(lineStart, first.Start, span.MarkerHeading, lineStart, nodeEnd)
}

// onEmphasis marks both delimiter runs of *em* / **strong**.
func (w *structWalker) onEmphasis(n *ast.Emphasis) {
	start, stop, ok := textRange(n, w.text)
	if !ok {
		return
	}
	level := n.Level
	markStart := start - level
	markEnd := stop + level
	if markStart < 0 || markEnd > len(w.text) {
		return
	}
	c := w.text[start-1]
	if c != '*' && c != '_' {
		return
	}
	m := span.MarkerEmphasis
	if level == 2 {
		m = span.MarkerStrong
	}
	w.emit(markStart, start, m, markStart, markEnd)
	w.emit(stop, markEnd, m, markStart, markEnd)
}

// onBlockquote marks the leading "> " of every line the quote covers.
func (w *structWalker) onBlockquote(n *ast.Blockquote) {
	contentStart, nodeEnd, ok := blockRange(n, w.text)
	if !ok {
		return
	}
	// Content segments begin after the "> " prefix; the markers live on the
	// stretch from the line start.
	nodeStart := lineStartBefore(w.text, contentStart)
	pos := nodeStart
	for pos < nodeEnd {
		lineEnd := lineEndAfter(w.text, pos)
		j := pos
		for j < lineEnd && (w.text[j] == ' ' || w.text[j] == '\t') {
			j++
		}
		if j < lineEnd && w.text[j] == '>' {
			markEnd := j + 1
			if markEnd < lineEnd && w.text[markEnd] == ' ' {
				markEnd++
			}
			w.emit(j, markEnd, span.MarkerQuote, nodeStart, nodeEnd)
		}
		if lineEnd >= len(w.text) {
			break
		}
		pos = lineEnd + 1
	}
}

// onListItem marks the bullet ("- ", "* ", "1. ") of the item's first line.
func (w *structWalker) onListItem(n *ast.ListItem) {
	nodeStart, nodeEnd, ok := blockRange(n, w.text)
	if !ok {
		return
	}
	lineStart := lineStartBefore(w.text, nodeStart)
	// Walk back from the content over "bullet + spaces".
	j := nodeStart
	for j > lineStart && w.text[j-1] == ' ' {
		j--
	}
	switch {
	case j > lineStart && (w.text[j-1] == '-' || w.text[j-1] == '*' || w.text[j-1] == '+'):
		j--
	case j > lineStart && (w.text[j-1] == '.' || w.text[j-1] == ')'):
		j--
		for j > lineStart && w.text[j-1] >= '0' && w.text[j-1] <= '9' {
			j--
		}
	default:
		return
	}
	w.emit(j, nodeStart, span.MarkerListBullet, j, nodeEnd)
}

// onLink marks the "[" and "](dest)" of an inline link.
func (w *structWalker) onLink(n *ast.Link) {
	start, stop, ok := textRange(n, w.text)
	if !ok {
		return
	}
	if start < 1 || w.text[start-1] != '[' {
		return
	}
	if stop >= len(w.text) || w.text[stop] != ']' {
		return
	}
	end := closeParenAfter(w.text, stop+1)
	if end < 0 {
		return
	}
	w.emit(start-1, start, span.MarkerLinkBracket, start-1, end)
	w.emit(stop, end, span.MarkerLinkBracket, start-1, end)
}

// onImage marks the "![" and "](dest)" of an inline image.
func (w *structWalker) onImage(n *ast.Image) {
	start, stop, ok := textRange(n, w.text)
	if !ok {
		return
	}
	if start < 2 || w.text[start-2] != '!' || w.text[start-1] != '[' {
		return
	}
	if stop >= len(w.text) || w.text[stop] != ']' {
		return
	}
	end := closeParenAfter(w.text, stop+1)
	if end < 0 {
		return
	}
	w.emit(start-2, start, span.MarkerImageBang, start-2, end)
	w.emit(stop, end, span.MarkerImageBang, start-2, end)
}

// textRange returns the source range covered by the Text descendants of n.
func textRange(n ast.Node, text string) (start, stop int, ok bool) {
	start, stop = len(text), -1
	var visit func(ast.Node)
	visit = func(c ast.Node) {
		if t, isText := c.(*ast.Text); isText {
			if t.Segment.Start < start {
				start = t.Segment.Start
			}
			if t.Segment.Stop > stop {
				stop = t.Segment.Stop
			}
		}
		for child := c.FirstChild(); child != nil; child = child.NextSibling() {
			visit(child)
		}
	}
	visit(n)
	if stop < 0 || start > stop {
		return 0, 0, false
	}
	return start, stop, true
}

// blockRange returns the source range covered by the line segments of n's
// block descendants. Container blocks carry no lines themselves.
func blockRange(n ast.Node, text string) (start, stop int, ok bool) {
	start, stop = len(text), -1
	var visit func(ast.Node)
	visit = func(c ast.Node) {
		if c.Type() == ast.TypeBlock {
			lines := c.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				if seg.Start < start {
					start = seg.Start
				}
				if seg.Stop > stop {
					stop = seg.Stop
				}
			}
		}
		for child := c.FirstChild(); child != nil; child = child.NextSibling() {
			visit(child)
		}
	}
	visit(n)
	if stop < 0 || start > stop {
		return 0, 0, false
	}
	return start, stop, true
}

// lineStartBefore returns the offset of the first character of the line
// containing pos.
func lineStartBefore(text string, pos int) int {
	if pos > len(text) {
		pos = len(text)
	}
	for pos > 0 && text[pos-1] != '\n' {
		pos--
	}
	return pos
}

// lineEndAfter returns the offset of the terminator of the line containing
// pos, or len(text).
func lineEndAfter(text string, pos int) int {
	for pos < len(text) && text[pos] != '\n' {
		pos++
	}
	return pos
}

// closeParenAfter expects "(", scans to the first ")" and returns the offset
// just past it, or -1.
func closeParenAfter(text string, pos int) int {
	if pos >= len(text) || text[pos] != '(' {
		return -1
	}
	for j := pos + 1; j < len(text); j++ {
		if text[j] == ')' {
			return j + 1
		}
		if text[j] == '\n' {
			return -1
		}
	}
	return -1
}
