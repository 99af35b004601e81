package index

import (
	"regexp"

	"github.com/JorgeCarriles-Uniovi/Tessellum/internal/scan"
	"github.com/JorgeCarriles-Uniovi/Tessellum/internal/span"
)

// codeRegionRe 匹配围栏代码块和行内代码。
var codeRegionRe = regexp.MustCompile("(```[\\s\\S]*?```|`[^`\\n]+`)")

// ExtractWikilinks 提取笔记正文中的所有维基链接，跳过代码区域。
//
// Code regions are masked with spaces of equal length before scanning so the
// byte offsets of the returned spans still address the original content.
func ExtractWikilinks(content string) []span.Span {
	masked := codeRegionRe.ReplaceAllStringFunc(content, func(m string) string {
		b := make([]byte, len(m))
		for i := range b {
			if m[i] == '\n' {
				b[i] = '\n'
			} else {
				b[i] = ' '
			}
		}
		return string(b)
	})
	return scan.FindWikilinks(masked)
}

// ExtractTargets returns just the link targets, in document order, for the
// indexer.
func ExtractTargets(content string) []string {
	links := ExtractWikilinks(content)
	out := make([]string, 0, len(links))
	for _, l := range links {
		out = append(out, l.Target)
	}
	return out
}
