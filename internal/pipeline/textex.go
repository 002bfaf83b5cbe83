package pipeline

import "strings"

// Delimiters wrapped around the TeX of a visible formula. KaTeX's
// auto-render script typesets text between them.
const (
	inlineMathOpen   = `\(`
	inlineMathClose  = `\)`
	displayMathOpen  = `\[`
	displayMathClose = `\]`
)

// texSymbols maps TeX control words to the characters they typeset.
var texSymbols = map[string]string{
	// Greek
	"alpha": "α", "beta": "β", "gamma": "γ", "delta": "δ", "epsilon": "ϵ",
	"varepsilon": "ε", "zeta": "ζ", "eta": "η", "theta": "θ", "vartheta": "ϑ",
	"iota": "ι", "kappa": "κ", "lambda": "λ", "mu": "μ", "nu": "ν", "xi": "ξ",
	"pi": "π", "varpi": "ϖ", "rho": "ρ", "varrho": "ϱ", "sigma": "σ",
	"varsigma": "ς", "tau": "τ", "upsilon": "υ", "phi": "ϕ", "varphi": "φ",
	"chi": "χ", "psi": "ψ", "omega": "ω",
	"Gamma": "Γ", "Delta": "Δ", "Theta": "Θ", "Lambda": "Λ", "Xi": "Ξ",
	"Pi": "Π", "Sigma": "Σ", "Upsilon": "Υ", "Phi": "Φ", "Psi": "Ψ", "Omega": "Ω",

	// Relations and arrows
	"to": "→", "rightarrow": "→", "leftarrow": "←", "gets": "←",
	"Rightarrow": "⇒", "Leftarrow": "⇐", "leftrightarrow": "↔",
	"Leftrightarrow": "⇔", "implies": "⟹", "iff": "⟺", "mapsto": "↦",
	"le": "≤", "leq": "≤", "ge": "≥", "geq": "≥", "ne": "≠", "neq": "≠",
	"approx": "≈", "equiv": "≡", "sim": "∼", "simeq": "≃", "cong": "≅",
	"propto": "∝", "in": "∈", "notin": "∉", "ni": "∋", "subset": "⊂",
	"subseteq": "⊆", "supset": "⊃", "supseteq": "⊇", "mid": "∣", "perp": "⊥",
	"vdash": "⊢", "models": "⊨",

	// Operators
	"pm": "±", "mp": "∓", "times": "×", "cdot": "⋅", "div": "÷", "circ": "∘",
	"cup": "∪", "cap": "∩", "setminus": "∖", "oplus": "⊕", "otimes": "⊗",
	"land": "∧", "wedge": "∧", "lor": "∨", "vee": "∨", "neg": "¬", "lnot": "¬",
	"sum": "∑", "prod": "∏", "int": "∫", "oint": "∮", "sqrt": "√",

	// Misc
	"infty": "∞", "partial": "∂", "nabla": "∇", "forall": "∀", "exists": "∃",
	"emptyset": "∅", "varnothing": "∅", "ell": "ℓ", "hbar": "ℏ", "aleph": "ℵ",
	"ldots": "…", "dots": "…", "cdots": "⋯", "langle": "⟨", "rangle": "⟩",
	"angle": "∠", "top": "⊤", "bot": "⊥",

	// Spacing and sizing, no glyph of their own
	"quad": " ", "qquad": " ", "left": "", "right": "",
}

// texEscapes maps TeX control symbols (a backslash and one non-letter).
var texEscapes = map[byte]string{
	',': " ", ';': " ", ':': " ", ' ': " ", '!': "", '\\': " ",
	'{': "{", '}': "}", '$': "$", '%': "%", '&': "&", '_': "_", '#': "#",
}

// TeXText approximates the text a TeX formula typesets to, for plaintext
// use: delimiters are dropped, known control words become their characters
// and spacing commands become spaces. Everything else is kept as written,
// so "e^{i\pi}" reads "e^{iπ}".
func TeXText(tex string) string {
	tex = stripMathDelimiters(strings.TrimSpace(tex))

	var sb strings.Builder
	sb.Grow(len(tex))

	for i := 0; i < len(tex); {
		if tex[i] != '\\' || i+1 == len(tex) {
			sb.WriteByte(tex[i])
			i++
			continue
		}

		j := i + 1
		for j < len(tex) && isLetter(tex[j]) {
			j++
		}

		if j == i+1 {
			// Control symbol
			if s, ok := texEscapes[tex[j]]; ok {
				sb.WriteString(s)
			} else {
				sb.WriteString(tex[i : j+1])
			}
			i = j + 1
			continue
		}

		if s, ok := texSymbols[tex[i+1:j]]; ok {
			sb.WriteString(s)
		} else {
			sb.WriteString(tex[i:j])
		}
		i = j
	}
	return sb.String()
}

// stripMathDelimiters removes one pair of \(..\) or \[..\] around tex.
func stripMathDelimiters(tex string) string {
	for _, pair := range [][2]string{
		{inlineMathOpen, inlineMathClose},
		{displayMathOpen, displayMathClose},
	} {
		if len(tex) >= 4 && strings.HasPrefix(tex, pair[0]) && strings.HasSuffix(tex, pair[1]) {
			return strings.TrimSpace(tex[2 : len(tex)-2])
		}
	}
	return tex
}

func isLetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}
