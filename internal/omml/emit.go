// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package omml

import (
	"fmt"
	"strings"
)

// emit renders a math tree as raw LaTeX. The only error it can produce is
// a node kind outside the closed set, which callers treat as total
// conversion failure. Gaps inside a known kind never error: an absent
// slot emits as the empty string, and constructs follow the original
// document shape as closely as their LaTeX form allows.
func emit(n *MathNode) (string, error) {
	if n == nil {
		return "", nil
	}
	switch n.Kind {
	case KindGroup:
		return emitAll(n.Children)

	case KindRun:
		return emitRun(n), nil

	case KindFraction:
		num, den, err := emitPair(n.child(0), n.child(1))
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(`\frac{%s}{%s}`, num, den), nil

	case KindRadical:
		deg, base, err := emitPair(n.child(0), n.child(1))
		if err != nil {
			return "", err
		}
		if deg != "" {
			return fmt.Sprintf(`\sqrt[%s]{%s}`, deg, base), nil
		}
		return fmt.Sprintf(`\sqrt{%s}`, base), nil

	case KindSuperscript:
		base, sup, err := emitPair(n.child(0), n.child(1))
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(`{%s}^{%s}`, base, sup), nil

	case KindSubscript:
		base, sub, err := emitPair(n.child(0), n.child(1))
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(`{%s}_{%s}`, base, sub), nil

	case KindSubSup:
		base, err := emit(n.child(0))
		if err != nil {
			return "", err
		}
		sub, sup, err := emitPair(n.child(1), n.child(2))
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(`{%s}_{%s}^{%s}`, base, sub, sup), nil

	case KindNary:
		return emitNary(n)

	case KindDelimiter:
		inner, err := emitAll(n.Children)
		if err != nil {
			return "", err
		}
		return leftFence(n.BegChr) + " " + inner + " " + rightFence(n.EndChr), nil

	case KindMatrix:
		return emitMatrix(n)

	case KindFunction:
		name, arg, err := emitPair(n.child(0), n.child(1))
		if err != nil {
			return "", err
		}
		// Only a plain-letter name can become a command; a structured
		// name like {log}_{2} is emitted as-is before the argument.
		switch {
		case name == "":
			return fmt.Sprintf(`{%s}`, arg), nil
		case isLetters(name):
			return fmt.Sprintf(`\%s{%s}`, name, arg), nil
		}
		return fmt.Sprintf(`%s{%s}`, name, arg), nil

	case KindAccent:
		base, err := emit(n.child(0))
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(`%s{%s}`, accentFor(n.Chr), base), nil

	case KindBar:
		base, err := emit(n.child(0))
		if err != nil {
			return "", err
		}
		if n.Pos == "bot" {
			return fmt.Sprintf(`\underline{%s}`, base), nil
		}
		return fmt.Sprintf(`\overline{%s}`, base), nil

	case KindBorderBox:
		base, err := emit(n.child(0))
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(`\boxed{%s}`, base), nil

	case KindGroupChr:
		base, err := emit(n.child(0))
		if err != nil {
			return "", err
		}
		if n.Pos == "top" || (n.Pos == "" && n.Chr == "⏞") {
			return fmt.Sprintf(`\overbrace{%s}`, base), nil
		}
		return fmt.Sprintf(`\underbrace{%s}`, base), nil

	case KindLimLow:
		base, lim, err := emitPair(n.child(0), n.child(1))
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(`\underset{%s}{%s}`, lim, base), nil

	case KindLimUpp:
		base, lim, err := emitPair(n.child(0), n.child(1))
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(`\overset{%s}{%s}`, lim, base), nil
	}

	return "", fmt.Errorf("unresolved node kind %d", n.Kind)
}

// isLetters reports whether s is nonempty and ASCII letters only, making
// it usable as a LaTeX command name.
func isLetters(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

// emitAll concatenates the emissions of a child list.
func emitAll(children []*MathNode) (string, error) {
	var b strings.Builder
	for _, child := range children {
		s, err := emit(child)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

// emitPair emits two slots of the same node.
func emitPair(a, b *MathNode) (string, string, error) {
	first, err := emit(a)
	if err != nil {
		return "", "", err
	}
	second, err := emit(b)
	if err != nil {
		return "", "", err
	}
	return first, second, nil
}

// emitRun renders a text run: every known math character becomes its
// LaTeX spelling, and an explicit script style wraps the result.
func emitRun(n *MathNode) string {
	text := replaceSymbols(n.Text)
	if text == "" {
		return ""
	}
	switch n.Style {
	case "b", "bi":
		return fmt.Sprintf(`\mathbf{%s}`, text)
	case "i":
		return fmt.Sprintf(`\mathit{%s}`, text)
	case "p":
		return fmt.Sprintf(`\mathrm{%s}`, text)
	}
	return text
}

// emitNary renders an n-ary construct. Limits that emitted nothing are
// dropped from the script form entirely rather than rendered as empty
// braces.
func emitNary(n *MathNode) (string, error) {
	sub, sup, err := emitPair(n.child(0), n.child(1))
	if err != nil {
		return "", err
	}
	operand, err := emit(n.child(2))
	if err != nil {
		return "", err
	}
	op := naryFor(n.Chr)
	switch {
	case sub != "" && sup != "":
		return fmt.Sprintf(`%s_{%s}^{%s} %s`, op, sub, sup, operand), nil
	case sub != "":
		return fmt.Sprintf(`%s_{%s} %s`, op, sub, operand), nil
	case sup != "":
		return fmt.Sprintf(`%s^{%s} %s`, op, sup, operand), nil
	}
	return op + " " + operand, nil
}

// emitMatrix renders the cell grid. Rows join with the LaTeX row
// separator, cells with the column separator; the environment comes from
// the folded bracket style when a delimiter collapsed into the matrix.
func emitMatrix(n *MathNode) (string, error) {
	env := n.Bracket
	if env == "" {
		env = "matrix"
	}
	rows := make([]string, 0, len(n.Rows))
	for _, row := range n.Rows {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			s, err := emit(cell)
			if err != nil {
				return "", err
			}
			cells = append(cells, s)
		}
		rows = append(rows, strings.Join(cells, " & "))
	}
	return fmt.Sprintf(`\begin{%s} %s \end{%s}`, env, strings.Join(rows, ` \\ `), env), nil
}
