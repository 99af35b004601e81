// Package mathtext renders LaTeX formulas as plain Unicode text. It is the
// default widget renderer for math spans on surfaces that cannot embed a real
// formula engine: a best-effort, human-readable approximation, never an error.
//
// 转换原则：
//  1. 数据驱动：符号映射集中在 symbols.go
//  2. 鲁棒降级：未知命令返回原文，不报错
//  3. Unicode 优先：无法表示时退回可读的 ASCII 近似
package mathtext

import (
	"regexp"
	"strings"
	"unicode"
)

// Renderer 将公式源码转换为 Unicode 文本。零值即可用。
type Renderer struct{}

// Render 实现装饰管线的 MathRenderer 接口。
//
// display 为 true 时（块级公式）保留换行结构；行内公式压缩为单行。
// Render 从不返回错误：无法转换的输入原样返回。
func (r Renderer) Render(formula string, display bool) (string, error) {
	out := r.convert(strings.TrimSpace(formula))
	if !display {
		out = strings.Join(strings.Fields(out), " ")
	}
	return out, nil
}

// convert 递归下降转换一段 LaTeX。
func (r Renderer) convert(latex string) string {
	var b strings.Builder
	i := 0
	for i < len(latex) {
		switch {
		case latex[i] == '\\':
			cmd, next := parseCommand(latex, i)
			handled, next := r.handleCommand(cmd, latex, next)
			b.WriteString(handled)
			i = next

		case latex[i] == '{':
			block, next := r.parseBlock(latex, i)
			b.WriteString(block)
			i = next

		case latex[i] == '_' || latex[i] == '^':
			script := latex[i]
			arg, next := r.parseScriptArg(latex, i+1)
			if script == '_' {
				b.WriteString(makeSubscript(arg))
			} else {
				b.WriteString(makeSuperscript(arg))
			}
			i = next

		case unicode.IsSpace(rune(latex[i])):
			for i < len(latex) && unicode.IsSpace(rune(latex[i])) {
				i++
			}
			b.WriteByte(' ')

		default:
			b.WriteByte(latex[i])
			i++
		}
	}
	return b.String()
}

// handleCommand 按优先级分派一个命令。
func (r Renderer) handleCommand(cmd, latex string, i int) (string, int) {
	if sym, ok := Symbols[cmd]; ok {
		return sym, i
	}

	if c, ok := Combining[cmd]; ok {
		arg, next := r.parseBlock(latex, i)
		return applyCombining(c, arg), next
	}

	switch cmd {
	case "\\frac", "\\tfrac", "\\dfrac":
		num, i1 := r.parseBlock(latex, i)
		den, i2 := r.parseBlock(latex, i1)
		return makeFraction(num, den), i2

	case "\\sqrt":
		index, i1 := r.parseOptional(latex, i)
		radicand, i2 := r.parseBlock(latex, i1)
		return makeSqrt(index, radicand), i2

	case "\\binom", "\\tbinom", "\\dbinom":
		n, i1 := r.parseBlock(latex, i)
		k, i2 := r.parseBlock(latex, i1)
		return "C(" + n + "," + k + ")", i2

	case "\\not":
		return r.handleNot(latex, i)

	case "\\text", "\\textrm", "\\operatorname", "\\mbox", "\\mathop":
		return r.parseBlock(latex, i)

	case "\\boxed":
		arg, next := r.parseBlock(latex, i)
		return "[" + arg + "]", next

	case "\\pmod":
		arg, next := r.parseBlock(latex, i)
		return " (mod " + arg + ")", next

	case "\\left", "\\right":
		return parseDelimiter(latex, i)

	case "\\begin":
		env, i1 := parseEnvName(latex, i)
		body, i2 := parseEnvBody(latex, i1, env)
		return r.renderEnvironment(env, body), i2

	case "\\end":
		_, next := parseEnvName(latex, i)
		return "", next

	case "\\\\":
		return "\n", i
	}

	if styleMap, ok := Styles[cmd]; ok {
		arg, next := r.parseBlock(latex, i)
		return applyStyle(styleMap, arg), next
	}

	// 未知命令原样保留
	return cmd, i
}

// handleNot 处理 \not 前缀否定。
func (r Renderer) handleNot(latex string, i int) (string, int) {
	if i >= len(latex) {
		return "̸", i
	}
	var negated string
	if latex[i] == '\\' {
		cmd, next := parseCommand(latex, i)
		negated = Symbols[cmd]
		if negated == "" {
			negated = cmd
		}
		i = next
	} else {
		negated = string(latex[i])
		i++
	}
	if sym, ok := NotMap[negated]; ok {
		return sym, i
	}
	runes := []rune(negated)
	if len(runes) == 0 {
		return "̸", i
	}
	return string(runes[0]) + "̸" + string(runes[1:]), i
}

// --- 上下标、分数、根号 ---

// trySuperscript 全部字符都可转上标时返回转换结果，否则返回空串。
func trySuperscript(text string) string {
	var b strings.Builder
	for _, ch := range text {
		sup, ok := Superscripts[ch]
		if !ok {
			return ""
		}
		b.WriteRune(sup)
	}
	return b.String()
}

func trySubscript(text string) string {
	var b strings.Builder
	for _, ch := range text {
		sub, ok := Subscripts[ch]
		if !ok {
			return ""
		}
		b.WriteRune(sub)
	}
	return b.String()
}

func makeSuperscript(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	if sup := trySuperscript(text); sup != "" {
		return sup
	}
	if len([]rune(text)) == 1 {
		return "^" + text
	}
	return "^(" + text + ")"
}

func makeSubscript(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	if sub := trySubscript(text); sub != "" {
		return sub
	}
	if len([]rune(text)) == 1 {
		return "_" + text
	}
	return "_(" + text + ")"
}

func makeFraction(num, den string) string {
	num, den = strings.TrimSpace(num), strings.TrimSpace(den)
	if frac, ok := VulgarFractions[[2]string{num, den}]; ok {
		return frac
	}
	return parenthesize(num) + "/" + parenthesize(den)
}

// parenthesize 为含运算符的子式加括号，单个标识符或数字不加。
func parenthesize(text string) string {
	for _, ch := range text {
		if !unicode.IsLetter(ch) && !unicode.IsNumber(ch) && !isCombiningRune(ch) {
			return "(" + text + ")"
		}
	}
	return text
}

func makeSqrt(index, radicand string) string {
	var radix string
	switch strings.TrimSpace(index) {
	case "", "2":
		radix = "√"
	case "3":
		radix = "∛"
	case "4":
		radix = "∜"
	default:
		if sup := trySuperscript(index); sup != "" {
			radix = sup + "√"
		} else {
			radix = "(" + index + ")√"
		}
	}
	return radix + applyCombining(Combining["\\overline"], radicand)
}

// applyCombining 将组合字符应用到文本。
func applyCombining(c combining, text string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return text
	}
	switch c.Placement {
	case firstChar:
		return string(runes[:1]) + string(c.Char) + string(runes[1:])
	case lastChar:
		return text + string(c.Char)
	default: // allChars
		var b strings.Builder
		for _, ch := range runes {
			b.WriteRune(ch)
			b.WriteRune(c.Char)
		}
		return b.String()
	}
}

func applyStyle(styleMap map[rune]rune, text string) string {
	if styleMap == nil {
		return text
	}
	var b strings.Builder
	for _, ch := range text {
		if styled, ok := styleMap[ch]; ok {
			b.WriteRune(styled)
		} else {
			b.WriteRune(ch)
		}
	}
	return b.String()
}

func isCombiningRune(r rune) bool {
	return (r >= '̀' && r <= 'ͯ') || (r >= '⃐' && r <= '⃿')
}

// --- 底层解析 ---

var commandRe = regexp.MustCompile(`^\\([a-zA-Z]+|.)`)

func parseCommand(latex string, start int) (string, int) {
	if m := commandRe.FindString(latex[start:]); m != "" {
		return m, start + len(m)
	}
	return "\\", start + 1
}

// parseBlock 读取 {...} 块并递归转换；无大括号时读取单个 token。
func (r Renderer) parseBlock(latex string, start int) (string, int) {
	if start >= len(latex) {
		return "", start
	}
	if latex[start] != '{' {
		if latex[start] == '\\' {
			cmd, next := parseCommand(latex, start)
			return r.handleCommand(cmd, latex, next)
		}
		return string(latex[start]), start + 1
	}
	level, pos := 1, start+1
	for pos < len(latex) && level > 0 {
		switch latex[pos] {
		case '{':
			level++
		case '}':
			level--
		}
		pos++
	}
	end := pos
	if level == 0 {
		end = pos - 1
	}
	return r.convert(latex[start+1 : end]), pos
}

func (r Renderer) parseOptional(latex string, start int) (string, int) {
	if start >= len(latex) || latex[start] != '[' {
		return "", start
	}
	if close := strings.IndexByte(latex[start:], ']'); close != -1 {
		return r.convert(latex[start+1 : start+close]), start + close + 1
	}
	return "", start
}

// parseScriptArg 读取 _ 或 ^ 的参数。
func (r Renderer) parseScriptArg(latex string, start int) (string, int) {
	if start >= len(latex) {
		return "", start
	}
	switch latex[start] {
	case '{':
		return r.parseBlock(latex, start)
	case '\\':
		cmd, next := parseCommand(latex, start)
		return r.handleCommand(cmd, latex, next)
	default:
		return string(latex[start]), start + 1
	}
}

func parseDelimiter(latex string, i int) (string, int) {
	if i >= len(latex) {
		return "", i
	}
	if latex[i] == '\\' {
		cmd, next := parseCommand(latex, i)
		if sym, ok := Symbols[cmd]; ok {
			return sym, next
		}
		return strings.TrimPrefix(cmd, "\\"), next
	}
	if latex[i] == '.' {
		return "", i + 1 // 不可见定界符
	}
	return string(latex[i]), i + 1
}

// --- 环境 ---

func parseEnvName(latex string, i int) (string, int) {
	if i < len(latex) && latex[i] == '{' {
		if close := strings.IndexByte(latex[i:], '}'); close != -1 {
			return latex[i+1 : i+close], i + close + 1
		}
	}
	return "", i
}

func parseEnvBody(latex string, i int, env string) (string, int) {
	end := "\\end{" + env + "}"
	if pos := strings.Index(latex[i:], end); pos != -1 {
		return latex[i : i+pos], i + pos + len(end)
	}
	return latex[i:], len(latex)
}

// matrixDelims 矩阵环境的左右定界符。
var matrixDelims = map[string][2]string{
	"matrix":  {"", ""},
	"pmatrix": {"(", ")"},
	"bmatrix": {"[", "]"},
	"Bmatrix": {"{", "}"},
	"vmatrix": {"|", "|"},
	"Vmatrix": {"‖", "‖"},
}

var alignEnvs = map[string]bool{
	"align": true, "align*": true, "aligned": true,
	"gather": true, "gathered": true, "split": true,
	"equation": true, "equation*": true,
}

func (r Renderer) renderEnvironment(env, body string) string {
	if delims, ok := matrixDelims[env]; ok {
		return r.renderMatrix(body, delims[0], delims[1])
	}
	if env == "cases" {
		return r.renderCases(body)
	}
	if alignEnvs[env] {
		return r.renderAlign(body)
	}
	return r.convert(body)
}

func (r Renderer) renderMatrix(body, left, right string) string {
	var rows []string
	for _, row := range strings.Split(body, "\\\\") {
		row = strings.TrimSpace(row)
		if row == "" {
			continue
		}
		var cells []string
		for _, cell := range strings.Split(row, "&") {
			cells = append(cells, r.convert(strings.TrimSpace(cell)))
		}
		rows = append(rows, strings.Join(cells, "  "))
	}
	return left + strings.Join(rows, "\n") + right
}

func (r Renderer) renderCases(body string) string {
	var parts []string
	for _, row := range strings.Split(body, "\\\\") {
		row = strings.TrimSpace(row)
		if row == "" {
			continue
		}
		segs := strings.SplitN(row, "&", 2)
		line := r.convert(strings.TrimSpace(segs[0]))
		if len(segs) > 1 {
			line += ", " + r.convert(strings.TrimSpace(segs[1]))
		}
		parts = append(parts, line)
	}
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return "{ " + parts[0]
	}
	for i := range parts {
		switch i {
		case 0:
			parts[i] = "⎧ " + parts[i]
		case len(parts) - 1:
			parts[i] = "⎩ " + parts[i]
		default:
			parts[i] = "⎨ " + parts[i]
		}
	}
	return strings.Join(parts, "\n")
}

func (r Renderer) renderAlign(body string) string {
	var lines []string
	for _, row := range strings.Split(body, "\\\\") {
		row = strings.TrimSpace(row)
		if row == "" {
			continue
		}
		lines = append(lines, r.convert(strings.ReplaceAll(row, "&", " ")))
	}
	return strings.Join(lines, "\n")
}
