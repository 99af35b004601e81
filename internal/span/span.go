package span

// Kind discriminates the markup kinds a Span can represent.
type Kind int

const (
	// KindMathBlock is $$...$$ display math, may cross lines.
	KindMathBlock Kind = iota
	// KindMathInline is $...$ math confined to one line.
	KindMathInline
	// KindWikilink is [[Target]] or [[Target|Alias]].
	KindWikilink
	// KindDivider is a line whose content is exactly "---".
	KindDivider
	// KindStructuralMark is a markdown syntax marker (heading #, emphasis
	// delimiters, blockquote >, list bullets, link/image brackets).
	KindStructuralMark
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindMathBlock:
		return "math-block"
	case KindMathInline:
		return "math-inline"
	case KindWikilink:
		return "wikilink"
	case KindDivider:
		return "divider"
	case KindStructuralMark:
		return "structural-mark"
	default:
		return "unknown"
	}
}

// Priority returns the resolver precedence for this kind. Lower wins when two
// candidate spans start at the same offset and have the same length.
func (k Kind) Priority() int {
	switch k {
	case KindMathBlock:
		return 0
	case KindMathInline:
		return 1
	case KindWikilink:
		return 2
	case KindDivider:
		return 3
	case KindStructuralMark:
		return 4
	default:
		return 5
	}
}

// Marker identifies the structural-mark subtype.
type Marker int

const (
	MarkerNone Marker = iota
	MarkerHeading
	MarkerEmphasis
	MarkerStrong
	MarkerQuote
	MarkerListBullet
	MarkerLinkBracket
	MarkerImageBang
)

// String returns the string representation of Marker.
func (m Marker) String() string {
	switch m {
	case MarkerHeading:
		return "heading-mark"
	case MarkerEmphasis:
		return "emphasis-mark"
	case MarkerStrong:
		return "strong-mark"
	case MarkerQuote:
		return "quote-mark"
	case MarkerListBullet:
		return "list-bullet"
	case MarkerLinkBracket:
		return "link-bracket"
	case MarkerImageBang:
		return "image-bang"
	default:
		return "none"
	}
}

// Span 表示文档中一段已识别的标记区域，半开区间 [Start, End)，字节偏移。
//
// Payload fields are kind-specific and zero-valued for other kinds:
//   - math:            Formula, Display
//   - wikilink:        Target, Alias
//   - structural-mark: Marker, NodeStart, NodeEnd (enclosing node range)
//
// Spans are built fresh on every scan pass and never mutated.
type Span struct {
	Start int
	End   int
	Kind  Kind

	// Math payload
	Formula string
	Display bool

	// Wikilink payload
	Target string
	Alias  string

	// Structural-mark payload. NodeStart/NodeEnd cover the full enclosing
	// structural node (the whole heading line, the whole emphasis run),
	// because suppression is decided at node granularity.
	Marker    Marker
	NodeStart int
	NodeEnd   int
}

// Eq reports value equality over (kind, range, payload). Used by hosts to skip
// re-creating widgets whose backing span did not change between recomputes.
func (s Span) Eq(o Span) bool {
	return s == o
}

// Len returns End - Start.
func (s Span) Len() int {
	return s.End - s.Start
}

// Enclosing returns the range suppression is decided on: the enclosing node
// range for structural marks, the span's own range otherwise.
func (s Span) Enclosing() (int, int) {
	if s.Kind == KindStructuralMark {
		return s.NodeStart, s.NodeEnd
	}
	return s.Start, s.End
}

// Overlaps reports whether two spans share at least one byte.
func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

// Selection 表示宿主编辑器的当前选区（光标为 From == To 的空选区）。
type Selection struct {
	From int
	To   int
}

// Clamp normalizes the selection against a document of n bytes: offsets are
// clamped into [0, n] and From/To are swapped if inverted. Hosts occasionally
// hand over stale out-of-bounds selections during rapid edits.
func (sel Selection) Clamp(n int) Selection {
	from, to := sel.From, sel.To
	if from > to {
		from, to = to, from
	}
	if from < 0 {
		from = 0
	}
	if to < 0 {
		to = 0
	}
	if from > n {
		from = n
	}
	if to > n {
		to = n
	}
	return Selection{From: from, To: to}
}

// LineRange is an inclusive range of 0-based line numbers, used for the
// host's visible viewport. The zero value means "whole document".
type LineRange struct {
	First int
	Last  int
}

// Whole reports whether the range is the zero value, meaning no viewport
// restriction.
func (lr LineRange) Whole() bool {
	return lr == LineRange{}
}

// Snapshot 是传入管线的文档快照：全文 + 选区 + 可见行范围。
// Owned by the host editor, read-only here.
type Snapshot struct {
	Text      string
	Selection Selection
	Viewport  LineRange
}
