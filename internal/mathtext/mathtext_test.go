package mathtext

import (
	"strings"
	"testing"
)

func render(t *testing.T, formula string) string {
	t.Helper()
	out, err := Renderer{}.Render(formula, false)
	if err != nil {
		t.Fatalf("Render(%q) error = %v", formula, err)
	}
	return out
}

// TestRender_Symbols 测试符号表直查
func TestRender_Symbols(t *testing.T) {
	tests := []struct {
		formula string
		want    string
	}{
		{`\alpha + \beta`, "α + β"},
		{`x \to \infty`, "x → ∞"},
		{`a \leq b \neq c`, "a ≤ b ≠ c"},
		{`A \subseteq B \cap C`, "A ⊆ B ∩ C"},
		{`\sum \int`, "∑ ∫"},
		{`\sin x`, "sin x"},
	}
	for _, tt := range tests {
		if got := render(t, tt.formula); got != tt.want {
			t.Errorf("Render(%q) = %q, want %q", tt.formula, got, tt.want)
		}
	}
}

// TestRender_Scripts 测试上下标转换
func TestRender_Scripts(t *testing.T) {
	tests := []struct {
		formula string
		want    string
	}{
		{`x^2`, "x²"},
		{`x^{10}`, "x¹⁰"},
		{`a_1`, "a₁"},
		{`a_{ij}`, "aᵢⱼ"},
		{`x^{a+b}`, "xᵃ⁺ᵇ"},
		{`E = mc^2`, "E = mc²"},
		{`x^{y/z}`, "x^(y/z)"}, // '/' has no superscript form
	}
	for _, tt := range tests {
		if got := render(t, tt.formula); got != tt.want {
			t.Errorf("Render(%q) = %q, want %q", tt.formula, got, tt.want)
		}
	}
}

// TestRender_Fractions 测试分数
func TestRender_Fractions(t *testing.T) {
	tests := []struct {
		formula string
		want    string
	}{
		{`\frac{1}{2}`, "½"},
		{`\frac{3}{4}`, "¾"},
		{`\frac{a}{b}`, "a/b"},
		{`\frac{a+b}{c}`, "(a+b)/c"},
	}
	for _, tt := range tests {
		if got := render(t, tt.formula); got != tt.want {
			t.Errorf("Render(%q) = %q, want %q", tt.formula, got, tt.want)
		}
	}
}

// TestRender_Sqrt 测试根号
func TestRender_Sqrt(t *testing.T) {
	if got := render(t, `\sqrt{2}`); !strings.HasPrefix(got, "√") {
		t.Errorf("Render(sqrt 2) = %q, want √ prefix", got)
	}
	if got := render(t, `\sqrt[3]{x}`); !strings.HasPrefix(got, "∛") {
		t.Errorf("Render(cube root) = %q, want ∛ prefix", got)
	}
}

// TestRender_StylesAndText 测试样式与文本直通
func TestRender_StylesAndText(t *testing.T) {
	if got := render(t, `x \in \mathbb{R}`); got != "x ∈ ℝ" {
		t.Errorf("Render(mathbb) = %q, want \"x ∈ ℝ\"", got)
	}
	if got := render(t, `\text{rate} = 5`); got != "rate = 5" {
		t.Errorf("Render(text) = %q", got)
	}
}

// TestRender_Not 测试否定
func TestRender_Not(t *testing.T) {
	if got := render(t, `a \not= b`); got != "a ≠ b" {
		t.Errorf("Render(not=) = %q, want \"a ≠ b\"", got)
	}
	if got := render(t, `x \not\in S`); got != "x ∉ S" {
		t.Errorf("Render(not in) = %q, want \"x ∉ S\"", got)
	}
}

// TestRender_Environments 测试矩阵与分段函数环境
func TestRender_Environments(t *testing.T) {
	got, err := Renderer{}.Render(`\begin{pmatrix} 1 & 0 \\ 0 & 1 \end{pmatrix}`, true)
	if err != nil {
		t.Fatal(err)
	}
	if got != "(1  0\n0  1)" {
		t.Errorf("Render(pmatrix) = %q", got)
	}

	got, err = Renderer{}.Render(`\begin{cases} x & x > 0 \\ -x & x \leq 0 \end{cases}`, true)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "⎧ x, x > 0") || !strings.Contains(got, "⎩ -x, x ≤ 0") {
		t.Errorf("Render(cases) = %q", got)
	}
}

// TestRender_UnknownCommandPassesThrough 测试未知命令原样保留
func TestRender_UnknownCommandPassesThrough(t *testing.T) {
	if got := render(t, `\unknowncmd x`); got != `\unknowncmd x` {
		t.Errorf("Render(unknown) = %q, want the command kept", got)
	}
}

// TestRender_InlineCollapsesWhitespace 测试行内模式压缩空白
func TestRender_InlineCollapsesWhitespace(t *testing.T) {
	got, err := Renderer{}.Render("a  +\n  b", false)
	if err != nil {
		t.Fatal(err)
	}
	if got != "a + b" {
		t.Errorf("inline Render = %q, want single-spaced", got)
	}
}
