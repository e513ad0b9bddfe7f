// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package omml

import "github.com/beevik/etree"

// parseElement builds the math tree for an OMML element. It is total:
// whatever the element contains, some MathNode comes back, with unknown
// structure degrading to groups of whatever did parse.
func parseElement(el *etree.Element) *MathNode {
	if el == nil {
		return &MathNode{Kind: KindGroup}
	}
	switch classifyTag(el.Tag) {
	case KindRun:
		return parseRun(el)
	case KindFraction:
		return &MathNode{
			Kind:     KindFraction,
			Children: []*MathNode{parseSlot(el, "num"), parseSlot(el, "den")},
		}
	case KindRadical:
		return &MathNode{
			Kind:     KindRadical,
			Children: []*MathNode{parseSlot(el, "deg"), parseSlot(el, "e")},
		}
	case KindSuperscript:
		return &MathNode{
			Kind:     KindSuperscript,
			Children: []*MathNode{parseSlot(el, "e"), parseSlot(el, "sup")},
		}
	case KindSubscript:
		return &MathNode{
			Kind:     KindSubscript,
			Children: []*MathNode{parseSlot(el, "e"), parseSlot(el, "sub")},
		}
	case KindSubSup:
		return &MathNode{
			Kind:     KindSubSup,
			Children: []*MathNode{parseSlot(el, "e"), parseSlot(el, "sub"), parseSlot(el, "sup")},
		}
	case KindNary:
		return parseNary(el)
	case KindDelimiter:
		return parseDelimiter(el)
	case KindMatrix:
		return parseMatrix(el)
	case KindFunction:
		name := parseSlot(el, "fName")
		clearStyles(name)
		return &MathNode{
			Kind:     KindFunction,
			Children: []*MathNode{name, parseSlot(el, "e")},
		}
	case KindAccent:
		return parseAccent(el)
	case KindBar:
		return parseBar(el)
	case KindBorderBox:
		return &MathNode{
			Kind:     KindBorderBox,
			Children: []*MathNode{parseSlot(el, "e")},
		}
	case KindGroupChr:
		return parseGroupChr(el)
	case KindLimLow:
		return &MathNode{
			Kind:     KindLimLow,
			Children: []*MathNode{parseSlot(el, "e"), parseSlot(el, "lim")},
		}
	case KindLimUpp:
		return &MathNode{
			Kind:     KindLimUpp,
			Children: []*MathNode{parseSlot(el, "e"), parseSlot(el, "lim")},
		}
	}
	return parseGroup(el)
}

// parseGroup parses every child element in document order.
func parseGroup(el *etree.Element) *MathNode {
	n := &MathNode{Kind: KindGroup}
	for _, child := range el.ChildElements() {
		n.Children = append(n.Children, parseElement(child))
	}
	return n
}

// parseSlot parses a named child container (num, den, e, sub, sup, deg,
// lim, fName) into a group of its children. A missing container is an
// absent slot, reported as nil.
func parseSlot(el *etree.Element, tag string) *MathNode {
	child := childByTag(el, tag)
	if child == nil {
		return nil
	}
	return parseGroup(child)
}

func parseRun(el *etree.Element) *MathNode {
	n := &MathNode{Kind: KindRun}
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "t":
			n.Text += child.Text()
		case "rPr":
			if sty := childByTag(child, "sty"); sty != nil {
				n.Style = attrVal(sty, "val")
			}
		}
	}
	return n
}

func parseNary(el *etree.Element) *MathNode {
	// The integral sign is the construct's default operator.
	n := &MathNode{Kind: KindNary, Chr: "∫"}
	if pr := childByTag(el, "naryPr"); pr != nil {
		if chr := childByTag(pr, "chr"); chr != nil {
			n.Chr = attrVal(chr, "val")
		}
	}
	n.Children = []*MathNode{parseSlot(el, "sub"), parseSlot(el, "sup"), parseSlot(el, "e")}
	return n
}

func parseDelimiter(el *etree.Element) *MathNode {
	n := &MathNode{Kind: KindDelimiter, BegChr: "(", EndChr: ")"}
	if pr := childByTag(el, "dPr"); pr != nil {
		if beg := childByTag(pr, "begChr"); beg != nil {
			n.BegChr = attrVal(beg, "val")
		}
		if end := childByTag(pr, "endChr"); end != nil {
			n.EndChr = attrVal(end, "val")
		}
	}
	for _, child := range el.ChildElements() {
		if child.Tag == "e" {
			n.Children = append(n.Children, parseGroup(child))
		}
	}

	// A delimiter that wraps nothing but a matrix becomes the matrix's
	// bracket style: ( ) around m yields pmatrix instead of
	// \left( \begin{matrix} ... \end{matrix} \right).
	if len(n.Children) == 1 {
		if mat := soleMatrix(n.Children[0]); mat != nil {
			if env := matrixEnv(n.BegChr, n.EndChr); env != "" {
				mat.Bracket = env
				return mat
			}
		}
	}
	return n
}

// soleMatrix returns the matrix node when the group holds exactly one
// child and that child is a matrix, else nil.
func soleMatrix(n *MathNode) *MathNode {
	if n == nil || n.Kind != KindGroup || len(n.Children) != 1 {
		return nil
	}
	if m := n.Children[0]; m.Kind == KindMatrix {
		return m
	}
	return nil
}

func parseMatrix(el *etree.Element) *MathNode {
	n := &MathNode{Kind: KindMatrix}
	for _, child := range el.ChildElements() {
		if child.Tag != "mr" {
			continue
		}
		var row []*MathNode
		for _, cell := range child.ChildElements() {
			if cell.Tag == "e" {
				row = append(row, parseGroup(cell))
			}
		}
		n.Rows = append(n.Rows, row)
	}
	return n
}

func parseAccent(el *etree.Element) *MathNode {
	n := &MathNode{Kind: KindAccent}
	if pr := childByTag(el, "accPr"); pr != nil {
		if chr := childByTag(pr, "chr"); chr != nil {
			n.Chr = attrVal(chr, "val")
		}
	}
	n.Children = []*MathNode{parseSlot(el, "e")}
	return n
}

func parseBar(el *etree.Element) *MathNode {
	n := &MathNode{Kind: KindBar}
	if pr := childByTag(el, "barPr"); pr != nil {
		if pos := childByTag(pr, "pos"); pos != nil {
			n.Pos = attrVal(pos, "val")
		}
	}
	n.Children = []*MathNode{parseSlot(el, "e")}
	return n
}

func parseGroupChr(el *etree.Element) *MathNode {
	n := &MathNode{Kind: KindGroupChr}
	if pr := childByTag(el, "groupChrPr"); pr != nil {
		if chr := childByTag(pr, "chr"); chr != nil {
			n.Chr = attrVal(chr, "val")
		}
		if pos := childByTag(pr, "pos"); pos != nil {
			n.Pos = attrVal(pos, "val")
		}
	}
	n.Children = []*MathNode{parseSlot(el, "e")}
	return n
}

// clearStyles removes run styles below a function name. Word marks name
// runs as upright text, but the command spelling (\sin, \lim) already
// carries that, and a \mathrm wrapper would corrupt the command.
func clearStyles(n *MathNode) {
	if n == nil {
		return
	}
	n.Style = ""
	for _, child := range n.Children {
		clearStyles(child)
	}
	for _, row := range n.Rows {
		for _, cell := range row {
			clearStyles(cell)
		}
	}
}

// childByTag returns the first child element with the given local tag
// name, ignoring the namespace prefix.
func childByTag(el *etree.Element, tag string) *etree.Element {
	for _, child := range el.ChildElements() {
		if child.Tag == tag {
			return child
		}
	}
	return nil
}

// attrVal returns the value of the attribute with the given local key,
// ignoring the namespace prefix (m:val and val are the same attribute to
// the math vocabulary).
func attrVal(el *etree.Element, key string) string {
	for _, attr := range el.Attr {
		if attr.Key == key {
			return attr.Value
		}
	}
	return ""
}
