// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package omml

// NodeKind identifies the structural variant of a MathNode. The set is
// closed: the emitter dispatches over it with an exhaustive switch, and
// anything outside it is a conversion failure.
type NodeKind int

const (
	// KindGroup concatenates its children with no surrounding markup.
	// Unrecognized tags classify as groups so their content survives.
	KindGroup NodeKind = iota

	// KindRun is a literal text run.
	KindRun

	KindFraction
	KindRadical
	KindSuperscript
	KindSubscript
	KindSubSup
	KindNary
	KindDelimiter
	KindMatrix
	KindFunction
	KindAccent
	KindBar
	KindBorderBox
	KindGroupChr
	KindLimLow
	KindLimUpp
)

// MathNode is one node of the parsed math tree. The meaning of the
// Children slots is fixed per kind, with nil marking an absent part:
//
//	Fraction     [numerator, denominator]
//	Radical      [degree, radicand]
//	Superscript  [base, superscript]
//	Subscript    [base, subscript]
//	SubSup       [base, subscript, superscript]
//	Nary         [lower limit, upper limit, operand]
//	Function     [name, argument]
//	LimLow       [base, limit]
//	LimUpp       [base, limit]
//	Accent       [base]
//	Bar          [base]
//	BorderBox    [base]
//	GroupChr     [base]
//	Group        all children in document order
//	Delimiter    all enclosed expressions in document order
//
// Matrix nodes keep their cells in Rows instead of Children.
type MathNode struct {
	Kind     NodeKind
	Children []*MathNode
	Rows     [][]*MathNode

	// Text is the literal content of a Run node.
	Text string

	// Style is the run script style: "b", "i", "bi", or "p". Empty means
	// the document default (math italic).
	Style string

	// Chr is the operator character of a Nary node, the diacritic of an
	// Accent node, or the grouping character of a GroupChr node.
	Chr string

	// Pos is the "top" or "bot" placement of Bar and GroupChr nodes.
	Pos string

	// BegChr and EndChr are the fence characters of a Delimiter node.
	// Empty strings mean an invisible fence, not a default one; the
	// parser fills in the parenthesis defaults.
	BegChr string
	EndChr string

	// Bracket is the matrix environment name when an enclosing delimiter
	// collapsed into the Matrix node (e.g. "pmatrix"). Empty means the
	// plain matrix environment.
	Bracket string
}

// child returns the i'th child slot, or nil when the slot is absent or
// the node is too short for it.
func (n *MathNode) child(i int) *MathNode {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}
