// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package omml

import "strings"

// symbolTable maps Unicode math characters to their LaTeX spelling. It is
// built once and never mutated. Characters without an entry pass through
// unchanged; Greek capitals that look like Latin letters map to the plain
// letter.
var symbolTable = map[rune]string{
	// Greek letters
	'α': `\alpha`, 'β': `\beta`, 'γ': `\gamma`, 'δ': `\delta`,
	'ε': `\epsilon`, 'ζ': `\zeta`, 'η': `\eta`, 'θ': `\theta`,
	'ι': `\iota`, 'κ': `\kappa`, 'λ': `\lambda`, 'μ': `\mu`,
	'ν': `\nu`, 'ξ': `\xi`, 'ο': "o", 'π': `\pi`,
	'ρ': `\rho`, 'σ': `\sigma`, 'τ': `\tau`, 'υ': `\upsilon`,
	'φ': `\phi`, 'χ': `\chi`, 'ψ': `\psi`, 'ω': `\omega`,

	// Capital Greek letters
	'Α': "A", 'Β': "B", 'Γ': `\Gamma`, 'Δ': `\Delta`,
	'Ε': "E", 'Ζ': "Z", 'Η': "H", 'Θ': `\Theta`,
	'Ι': "I", 'Κ': "K", 'Λ': `\Lambda`, 'Μ': "M",
	'Ν': "N", 'Ξ': `\Xi`, 'Ο': "O", 'Π': `\Pi`,
	'Ρ': "P", 'Σ': `\Sigma`, 'Τ': "T", 'Υ': `\Upsilon`,
	'Φ': `\Phi`, 'Χ': "X", 'Ψ': `\Psi`, 'Ω': `\Omega`,

	// Operators
	'∞': `\infty`, '∑': `\sum`, '∫': `\int`, '∂': `\partial`,
	'∇': `\nabla`, '∆': `\Delta`, '∏': `\prod`,

	// Relations
	'≤': `\leq`, '≥': `\geq`, '≠': `\neq`, '≈': `\approx`,
	'≡': `\equiv`, '∝': `\propto`, '∼': `\sim`,

	// Set theory
	'∈': `\in`, '∉': `\notin`, '⊂': `\subset`, '⊆': `\subseteq`,
	'⊃': `\supset`, '⊇': `\supseteq`, '∪': `\cup`, '∩': `\cap`,
	'∅': `\emptyset`, '∀': `\forall`, '∃': `\exists`,

	// Arrows
	'→': `\rightarrow`, '←': `\leftarrow`, '↔': `\leftrightarrow`,
	'⇒': `\Rightarrow`, '⇐': `\Leftarrow`, '⇔': `\Leftrightarrow`,
	'↑': `\uparrow`, '↓': `\downarrow`, '↕': `\updownarrow`,

	// Other symbols
	'±': `\pm`, '∓': `\mp`, '×': `\times`, '÷': `\div`,
	'·': `\cdot`, '∘': `\circ`, '√': `\sqrt`,
	'∠': `\angle`, '⊥': `\perp`, '∥': `\parallel`,
}

// naryOperators maps the operator character of an n-ary construct to its
// LaTeX command. Characters outside this table fall back to the symbol
// table spelling.
var naryOperators = map[string]string{
	"∑": `\sum`,
	"∫": `\int`,
	"∬": `\iint`,
	"∭": `\iiint`,
	"∮": `\oint`,
	"∏": `\prod`,
	"⋃": `\bigcup`,
	"⋂": `\bigcap`,
	"⋁": `\bigvee`,
	"⋀": `\bigwedge`,
}

// accentCommands maps an accent construct's combining diacritic to a LaTeX
// accent command. The hat is the construct's default accent, so it also
// serves for diacritics outside the table.
var accentCommands = map[rune]string{
	'̂': `\hat`,
	'̃': `\tilde`,
	'̄': `\bar`,
	'̅': `\bar`,
	'̇': `\dot`,
	'̈': `\ddot`,
	'̌': `\check`,
	'́': `\acute`,
	'̀': `\grave`,
	'⃗': `\vec`,
	'→': `\vec`,
}

// lookupSymbol returns the LaTeX spelling for a math character and whether
// the table knows it.
func lookupSymbol(r rune) (string, bool) {
	s, ok := symbolTable[r]
	return s, ok
}

// replaceSymbols rewrites every known math character in text to its LaTeX
// spelling, leaving unknown characters untouched.
func replaceSymbols(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if s, ok := lookupSymbol(r); ok {
			b.WriteString(s)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// accentFor resolves an accent construct's diacritic to its LaTeX command.
func accentFor(chr string) string {
	for _, r := range chr {
		if cmd, ok := accentCommands[r]; ok {
			return cmd
		}
		break
	}
	return `\hat`
}

// naryFor resolves an n-ary operator character to its LaTeX command.
func naryFor(chr string) string {
	if op, ok := naryOperators[chr]; ok {
		return op
	}
	return replaceSymbols(chr)
}

// leftFence and rightFence map a delimiter fence character to the
// corresponding \left / \right form. An empty character is an invisible
// fence; characters outside the table degrade to parentheses.
func leftFence(ch string) string {
	switch ch {
	case "":
		return `\left.`
	case "(":
		return `\left(`
	case "[":
		return `\left[`
	case "{":
		return `\left\{`
	case "|":
		return `\left|`
	case "‖", "║":
		return `\left\|`
	case "⟨", "〈":
		return `\left\langle`
	case "⌊":
		return `\left\lfloor`
	case "⌈":
		return `\left\lceil`
	}
	return `\left(`
}

func rightFence(ch string) string {
	switch ch {
	case "":
		return `\right.`
	case ")":
		return `\right)`
	case "]":
		return `\right]`
	case "}":
		return `\right\}`
	case "|":
		return `\right|`
	case "‖", "║":
		return `\right\|`
	case "⟩", "〉":
		return `\right\rangle`
	case "⌋":
		return `\right\rfloor`
	case "⌉":
		return `\right\rceil`
	}
	return `\right)`
}

// matrixEnv returns the matrix environment implied by a delimiter fence
// pair, or empty when the pair has no matrix form.
func matrixEnv(beg, end string) string {
	switch beg + end {
	case "()":
		return "pmatrix"
	case "[]":
		return "bmatrix"
	case "{}":
		return "Bmatrix"
	case "||":
		return "vmatrix"
	case "‖‖", "║║":
		return "Vmatrix"
	}
	return ""
}
