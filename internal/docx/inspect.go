// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// Outline renders an element subtree as an indented sketch using local
// tag and attribute names, two spaces per level. Namespace declarations
// are omitted to keep formula structure readable.
func Outline(el *etree.Element) string {
	var b strings.Builder
	outlineInto(&b, el, 0)
	return strings.TrimRight(b.String(), "\n")
}

func outlineInto(b *strings.Builder, el *etree.Element, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString("<" + el.Tag)
	for _, attr := range el.Attr {
		if attr.Space == "xmlns" || attr.Key == "xmlns" {
			continue
		}
		fmt.Fprintf(b, " %s=%q", attr.Key, attr.Value)
	}
	b.WriteString(">")
	if text := strings.TrimSpace(el.Text()); text != "" {
		b.WriteString(" " + text)
	}
	b.WriteString("\n")
	for _, child := range el.ChildElements() {
		outlineInto(b, child, depth+1)
	}
}
