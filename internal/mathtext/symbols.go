package mathtext

// Symbols 命令 → Unicode 符号直查表。
var Symbols = map[string]string{
	// 希腊字母
	"\\alpha": "α", "\\beta": "β", "\\gamma": "γ", "\\delta": "δ",
	"\\epsilon": "ε", "\\varepsilon": "ε", "\\zeta": "ζ", "\\eta": "η",
	"\\theta": "θ", "\\vartheta": "ϑ", "\\iota": "ι", "\\kappa": "κ",
	"\\lambda": "λ", "\\mu": "μ", "\\nu": "ν", "\\xi": "ξ",
	"\\pi": "π", "\\varpi": "ϖ", "\\rho": "ρ", "\\varrho": "ϱ",
	"\\sigma": "σ", "\\varsigma": "ς", "\\tau": "τ", "\\upsilon": "υ",
	"\\phi": "φ", "\\varphi": "φ", "\\chi": "χ", "\\psi": "ψ", "\\omega": "ω",
	"\\Gamma": "Γ", "\\Delta": "Δ", "\\Theta": "Θ", "\\Lambda": "Λ",
	"\\Xi": "Ξ", "\\Pi": "Π", "\\Sigma": "Σ", "\\Upsilon": "Υ",
	"\\Phi": "Φ", "\\Psi": "Ψ", "\\Omega": "Ω",

	// 运算符与关系
	"\\pm": "±", "\\mp": "∓", "\\times": "×", "\\div": "÷", "\\cdot": "⋅",
	"\\ast": "∗", "\\star": "⋆", "\\circ": "∘", "\\bullet": "•",
	"\\leq": "≤", "\\le": "≤", "\\geq": "≥", "\\ge": "≥",
	"\\neq": "≠", "\\ne": "≠", "\\approx": "≈", "\\equiv": "≡",
	"\\sim": "∼", "\\simeq": "≃", "\\cong": "≅", "\\propto": "∝",
	"\\ll": "≪", "\\gg": "≫", "\\prec": "≺", "\\succ": "≻",
	"\\oplus": "⊕", "\\ominus": "⊖", "\\otimes": "⊗", "\\oslash": "⊘",
	"\\odot": "⊙", "\\wedge": "∧", "\\vee": "∨", "\\land": "∧", "\\lor": "∨",
	"\\neg": "¬", "\\lnot": "¬",

	// 集合与逻辑
	"\\in": "∈", "\\notin": "∉", "\\ni": "∋",
	"\\subset": "⊂", "\\supset": "⊃", "\\subseteq": "⊆", "\\supseteq": "⊇",
	"\\cup": "∪", "\\cap": "∩", "\\setminus": "∖",
	"\\emptyset": "∅", "\\varnothing": "∅",
	"\\forall": "∀", "\\exists": "∃", "\\nexists": "∄",

	// 微积分与大型运算符
	"\\infty": "∞", "\\partial": "∂", "\\nabla": "∇",
	"\\sum": "∑", "\\prod": "∏", "\\coprod": "∐",
	"\\int": "∫", "\\iint": "∬", "\\iiint": "∭", "\\oint": "∮",

	// 箭头
	"\\to": "→", "\\rightarrow": "→", "\\leftarrow": "←", "\\gets": "←",
	"\\Rightarrow": "⇒", "\\Leftarrow": "⇐", "\\implies": "⟹",
	"\\leftrightarrow": "↔", "\\Leftrightarrow": "⇔", "\\iff": "⟺",
	"\\mapsto": "↦", "\\uparrow": "↑", "\\downarrow": "↓",
	"\\longrightarrow": "⟶", "\\longleftarrow": "⟵",

	// 定界符与标点
	"\\langle": "⟨", "\\rangle": "⟩",
	"\\lceil": "⌈", "\\rceil": "⌉", "\\lfloor": "⌊", "\\rfloor": "⌋",
	"\\|": "‖", "\\{": "{", "\\}": "}",
	"\\dots": "…", "\\ldots": "…", "\\cdots": "⋯", "\\vdots": "⋮", "\\ddots": "⋱",
	"\\%": "%", "\\$": "$", "\\&": "&", "\\#": "#", "\\_": "_",

	// 杂项
	"\\hbar": "ℏ", "\\ell": "ℓ", "\\Re": "ℜ", "\\Im": "ℑ",
	"\\aleph": "ℵ", "\\wp": "℘", "\\angle": "∠", "\\degree": "°",
	"\\perp": "⊥", "\\parallel": "∥", "\\mid": "∣",
	"\\therefore": "∴", "\\because": "∵", "\\prime": "′",
	"\\top": "⊤", "\\bot": "⊥", "\\models": "⊨", "\\vdash": "⊢",

	// 函数名直通
	"\\sin": "sin", "\\cos": "cos", "\\tan": "tan", "\\cot": "cot",
	"\\sec": "sec", "\\csc": "csc", "\\arcsin": "arcsin", "\\arccos": "arccos",
	"\\arctan": "arctan", "\\sinh": "sinh", "\\cosh": "cosh", "\\tanh": "tanh",
	"\\log": "log", "\\ln": "ln", "\\lg": "lg", "\\exp": "exp",
	"\\lim": "lim", "\\limsup": "lim sup", "\\liminf": "lim inf",
	"\\min": "min", "\\max": "max", "\\inf": "inf", "\\sup": "sup",
	"\\det": "det", "\\dim": "dim", "\\ker": "ker", "\\deg": "deg",
	"\\gcd": "gcd", "\\mod": "mod", "\\Pr": "Pr",

	// 间距命令
	"\\,": " ", "\\;": " ", "\\:": " ", "\\!": "",
	"\\quad": "  ", "\\qquad": "    ", "\\ ": " ",
}

// Superscripts 可转为 Unicode 上标的字符。
var Superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	'+': '⁺', '-': '⁻', '=': '⁼', '(': '⁽', ')': '⁾',
	'a': 'ᵃ', 'b': 'ᵇ', 'c': 'ᶜ', 'd': 'ᵈ', 'e': 'ᵉ', 'f': 'ᶠ',
	'g': 'ᵍ', 'h': 'ʰ', 'i': 'ⁱ', 'j': 'ʲ', 'k': 'ᵏ', 'l': 'ˡ',
	'm': 'ᵐ', 'n': 'ⁿ', 'o': 'ᵒ', 'p': 'ᵖ', 'r': 'ʳ', 's': 'ˢ',
	't': 'ᵗ', 'u': 'ᵘ', 'v': 'ᵛ', 'w': 'ʷ', 'x': 'ˣ', 'y': 'ʸ', 'z': 'ᶻ',
	'T': 'ᵀ',
}

// Subscripts 可转为 Unicode 下标的字符。
var Subscripts = map[rune]rune{
	'0': '₀', '1': '₁', '2': '₂', '3': '₃', '4': '₄',
	'5': '₅', '6': '₆', '7': '₇', '8': '₈', '9': '₉',
	'+': '₊', '-': '₋', '=': '₌', '(': '₍', ')': '₎',
	'a': 'ₐ', 'e': 'ₑ', 'h': 'ₕ', 'i': 'ᵢ', 'j': 'ⱼ', 'k': 'ₖ',
	'l': 'ₗ', 'm': 'ₘ', 'n': 'ₙ', 'o': 'ₒ', 'p': 'ₚ', 'r': 'ᵣ',
	's': 'ₛ', 't': 'ₜ', 'u': 'ᵤ', 'v': 'ᵥ', 'x': 'ₓ',
}

// combiningPlacement 组合字符的应用位置。
type combiningPlacement int

const (
	firstChar combiningPlacement = iota
	lastChar
	allChars
)

type combining struct {
	Char      rune
	Placement combiningPlacement
}

// Combining 重音/装饰命令 → 组合字符。
var Combining = map[string]combining{
	"\\hat":       {'̂', firstChar},
	"\\tilde":     {'̃', firstChar},
	"\\bar":       {'̄', firstChar},
	"\\dot":       {'̇', firstChar},
	"\\ddot":      {'̈', firstChar},
	"\\vec":       {'⃗', firstChar},
	"\\check":     {'̌', firstChar},
	"\\breve":     {'̆', firstChar},
	"\\acute":     {'́', firstChar},
	"\\grave":     {'̀', firstChar},
	"\\overline":  {'̅', allChars},
	"\\underline": {'̲', allChars},
}

// NotMap \not 的专用否定符号；没有专用符号时用组合斜线。
var NotMap = map[string]string{
	"=": "≠", "<": "≮", ">": "≯",
	"∈": "∉", "∋": "∌", "≡": "≢", "∼": "≁",
	"⊂": "⊄", "⊃": "⊅", "⊆": "⊈", "⊇": "⊉",
	"→": "↛", "←": "↚",
}

// VulgarFractions 有专用 Unicode 码位的分数。
var VulgarFractions = map[[2]string]string{
	{"1", "2"}: "½", {"1", "3"}: "⅓", {"2", "3"}: "⅔",
	{"1", "4"}: "¼", {"3", "4"}: "¾",
	{"1", "5"}: "⅕", {"2", "5"}: "⅖", {"3", "5"}: "⅗", {"4", "5"}: "⅘",
	{"1", "6"}: "⅙", {"5", "6"}: "⅚",
	{"1", "8"}: "⅛", {"3", "8"}: "⅜", {"5", "8"}: "⅝", {"7", "8"}: "⅞",
}

// blackboard \mathbb 的双线体字母（常用数集）。
var blackboard = map[rune]rune{
	'N': 'ℕ', 'Z': 'ℤ', 'Q': 'ℚ', 'R': 'ℝ', 'C': 'ℂ',
	'H': 'ℍ', 'P': 'ℙ', '1': '𝟙',
}

// calligraphic \mathcal 的花体字母（有独立码位的部分）。
var calligraphic = map[rune]rune{
	'B': 'ℬ', 'E': 'ℰ', 'F': 'ℱ', 'H': 'ℋ', 'I': 'ℐ',
	'L': 'ℒ', 'M': 'ℳ', 'R': 'ℛ', 'e': 'ℯ', 'g': 'ℊ', 'o': 'ℴ',
}

// Styles 样式命令 → 逐字符替换表。nil 表示原样直通。
var Styles = map[string]map[rune]rune{
	"\\mathbb":  blackboard,
	"\\mathcal": calligraphic,
	"\\mathrm":  nil,
	"\\mathsf":  nil,
	"\\mathit":  nil,
	"\\mathbf":  nil,
	"\\mathtt":  nil,
}
