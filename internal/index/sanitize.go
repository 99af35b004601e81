package index

import (
	"path/filepath"
	"strings"
	"unicode"
)

// SanitizeName 过滤笔记名中不允许的字符。
//
// Allowed: letters, digits, space, '-', '_', '(', ')', '.'; trailing dots
// and spaces are trimmed so the result is a valid filename on all platforms.
func SanitizeName(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) ||
			r == ' ' || r == '-' || r == '_' || r == '(' || r == ')' || r == '.' {
			b.WriteRune(r)
		}
	}
	return strings.TrimRight(b.String(), ". ")
}

// IsSafeRelPath reports whether input can be used as a relative note path:
// non-empty, not absolute, and free of "." / ".." components.
func IsSafeRelPath(input string) bool {
	if strings.TrimSpace(input) == "" {
		return false
	}
	if filepath.IsAbs(input) || strings.HasPrefix(input, "/") {
		return false
	}
	for _, part := range strings.Split(filepath.ToSlash(input), "/") {
		if part == "" || part == "." || part == ".." {
			return false
		}
	}
	return true
}

// safePath resolves relPath against the vault root and rejects results that
// escape the vault boundary.
func safePath(vaultPath, relPath string) (string, bool) {
	abs, err := filepath.Abs(filepath.Join(vaultPath, filepath.FromSlash(relPath)))
	if err != nil {
		return "", false
	}
	vaultAbs, err := filepath.Abs(vaultPath)
	if err != nil {
		return "", false
	}
	if abs != vaultAbs && !strings.HasPrefix(abs, vaultAbs+string(filepath.Separator)) {
		return "", false
	}
	return abs, true
}
