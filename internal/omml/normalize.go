// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package omml

import (
	"regexp"
	"sort"
	"strings"
)

// Cleanup regex patterns.
var (
	// eqNumberRe matches equation-number artifacts like #(2-1) that Word
	// stores inside the formula text.
	eqNumberRe = regexp.MustCompile(`#\([^)]+\)`)

	// eqNumberDelimRe matches equation numbers whose parentheses were
	// converted as a delimiter, like #\left( 2-1 \right).
	eqNumberDelimRe = regexp.MustCompile(`#\\left\([^)]+\\right\)`)

	// strayHashRe matches a # that is neither escaped nor followed by a
	// letter. Groups 1 and 2 re-insert the surrounding characters.
	strayHashRe = regexp.MustCompile(`(^|[^\\])#([^a-zA-Z]|$)`)

	// doubleBraceRe matches a brace pair immediately wrapping another
	// brace pair with no structure in between.
	doubleBraceRe = regexp.MustCompile(`\{\{([^{}]*)\}\}`)

	// trailingCommaRe matches a dangling comma at the end of a formula,
	// left behind when an equation number was stripped.
	trailingCommaRe = regexp.MustCompile(`\s*,\s*$`)

	// spaceRunRe matches any run of whitespace.
	spaceRunRe = regexp.MustCompile(`\s+`)
)

// structuralCommands lists the commands the emitter produces that do not
// come from the character tables.
var structuralCommands = []string{
	`\frac`, `\sqrt`, `\overline`, `\underline`, `\boxed`,
	`\underbrace`, `\overbrace`, `\underset`, `\overset`,
	`\begin`, `\end`, `\left`, `\right`,
	`\langle`, `\rangle`, `\lfloor`, `\rfloor`, `\lceil`, `\rceil`,
	`\mathbf`, `\mathrm`,
}

// commandBoundaryRe matches a known command immediately followed by an
// alphanumeric character, which LaTeX would otherwise absorb into the
// command name. The alternation holds the full command vocabulary sorted
// longest name first, so a short command never splits a longer one
// (\int must not become \in t).
var commandBoundaryRe = regexp.MustCompile(`\\(` + commandAlternation() + `)([0-9a-zA-Z])`)

// commandAlternation collects every command name the emitter can produce
// into a regex alternation, longest first, ties alphabetical.
func commandAlternation() string {
	seen := make(map[string]bool)
	var names []string
	add := func(cmd string) {
		if !strings.HasPrefix(cmd, `\`) {
			// Table entries like plain "o" are not commands.
			return
		}
		name := cmd[1:]
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		names = append(names, name)
	}
	for _, cmd := range symbolTable {
		add(cmd)
	}
	for _, cmd := range naryOperators {
		add(cmd)
	}
	for _, cmd := range accentCommands {
		add(cmd)
	}
	for _, cmd := range structuralCommands {
		add(cmd)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	return strings.Join(names, "|")
}

// Normalize cleans emitted LaTeX: equation-number artifacts disappear,
// redundant brace pairs collapse, a command gets a separating space when
// an alphanumeric character would otherwise extend its name, and
// whitespace runs shrink to single spaces. The passes repeat until the
// string stops changing, so Normalize(Normalize(s)) == Normalize(s) by
// construction.
func Normalize(s string) string {
	for {
		next := normalizeOnce(s)
		if next == s {
			return next
		}
		s = next
	}
}

func normalizeOnce(s string) string {
	s = eqNumberRe.ReplaceAllString(s, "")
	s = eqNumberDelimRe.ReplaceAllString(s, "")
	s = strayHashRe.ReplaceAllString(s, "$1$2")
	s = doubleBraceRe.ReplaceAllString(s, "{$1}")
	s = commandBoundaryRe.ReplaceAllString(s, `\$1 $2`)
	s = trailingCommaRe.ReplaceAllString(s, "")
	s = spaceRunRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
