// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package markdown renders converted document content: headings, image
// references, math splices, pipe tables, and the block stream that makes
// up the output file.
package markdown

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// minColumnWidth keeps table columns readable even when every cell is
// shorter.
const minColumnWidth = 3

// Heading renders an ATX heading. Levels outside 1..6 clamp.
func Heading(level int, text string) string {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return strings.Repeat("#", level) + " " + text
}

// Image renders an image reference. The path keeps forward slashes on
// every platform.
func Image(alt, path string) string {
	return fmt.Sprintf("![%s](%s)", alt, strings.ReplaceAll(path, `\`, "/"))
}

// InlineMath wraps LaTeX for splicing into running text. The delimiters
// hug the content: renderers reject "$ x $" as math.
func InlineMath(latex string) string {
	return "$" + latex + "$"
}

// DisplayMath wraps LaTeX as a standalone block; the surrounding blank
// lines come from block joining.
func DisplayMath(latex string) string {
	return "$$\n" + latex + "\n$$"
}

// CollapseSpaces reduces every whitespace run in paragraph text to a
// single space and trims the ends.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// JoinBlocks assembles the final document: blocks separated by blank
// lines, skipping empties.
func JoinBlocks(blocks []string) string {
	kept := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b != "" {
			kept = append(kept, b)
		}
	}
	return strings.Join(kept, "\n\n")
}

// Table renders rows as a pipe table. The first row is the header;
// columns pad to the widest cell so the source stays aligned. Rows wider
// than the header lose their extra cells.
func Table(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	header := make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		header[i] = cellText(cell)
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = max(utf8.RuneCountInString(h), minColumnWidth)
	}
	for _, row := range rows[1:] {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			widths[i] = max(widths[i], utf8.RuneCountInString(cellText(cell)))
		}
	}

	var lines []string
	lines = append(lines, tableRow(header, widths))

	seps := make([]string, len(widths))
	for i, w := range widths {
		seps[i] = strings.Repeat("-", w+2)
	}
	lines = append(lines, "|"+strings.Join(seps, "|")+"|")

	for _, row := range rows[1:] {
		cells := make([]string, 0, len(widths))
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			cells = append(cells, cellText(cell))
		}
		lines = append(lines, tableRow(cells, widths))
	}

	return strings.Join(lines, "\n")
}

func tableRow(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = pad(cell, widths[i])
	}
	return "| " + strings.Join(padded, " | ") + " |"
}

// cellText normalizes a cell: trimmed, with a single space standing in
// for empty content so the table shape survives.
func cellText(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return " "
	}
	return s
}

func pad(s string, width int) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(" ", n)
}
