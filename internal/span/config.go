package span

// ClassSet 定义各类装饰在宿主渲染面上使用的样式类名。
type ClassSet struct {
	MathInline     string
	MathBlock      string
	Wikilink       string
	BrokenWikilink string
	Divider        string
	HiddenMark     string
	RawMath        string
}

// DefaultClassSet 返回默认样式类名。
func DefaultClassSet() *ClassSet {
	return &ClassSet{
		MathInline:     "ts-math-inline",
		MathBlock:      "ts-math-block",
		Wikilink:       "ts-wikilink",
		BrokenWikilink: "ts-wikilink-broken",
		Divider:        "ts-divider",
		HiddenMark:     "ts-hidden-mark",
		RawMath:        "ts-math-raw",
	}
}

// RenderConfig 渲染配置。
type RenderConfig struct {
	Classes *ClassSet
	// HideStructuralMarks enables the live-preview behavior of hiding raw
	// syntax markers (heading #, emphasis delimiters) unless the selection
	// is inside the enclosing node.
	HideStructuralMarks bool
}

// DefaultRenderConfig 返回默认渲染配置。
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		Classes:             DefaultClassSet(),
		HideStructuralMarks: true,
	}
}
