// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package omml

import "unicode/utf8"

// defaultDisplayThreshold is the normalized LaTeX length above which a
// formula renders poorly inline. Empirical, not a contract; tunable
// through Converter.DisplayLengthThreshold.
const defaultDisplayThreshold = 40

// classifyDisplay reports whether a converted formula should render as a
// standalone display block. The decision is a structural score over the
// math tree: one point each for a matrix anywhere, an n-ary operator
// carrying both limits, a fraction nested inside another fraction, and
// normalized LaTeX longer than the threshold. Any point promotes the
// formula to display; a zero score stays inline.
func classifyDisplay(latex string, root *MathNode, threshold int) bool {
	score := 0
	if anyNode(root, isMatrix) {
		score++
	}
	if anyNode(root, hasBothLimits) {
		score++
	}
	if anyNode(root, hasInnerFraction) {
		score++
	}
	if utf8.RuneCountInString(latex) > threshold {
		score++
	}
	return score >= 1
}

// anyNode reports whether pred holds for n or any node below it,
// including matrix cells.
func anyNode(n *MathNode, pred func(*MathNode) bool) bool {
	if n == nil {
		return false
	}
	if pred(n) {
		return true
	}
	for _, child := range n.Children {
		if anyNode(child, pred) {
			return true
		}
	}
	for _, row := range n.Rows {
		for _, cell := range row {
			if anyNode(cell, pred) {
				return true
			}
		}
	}
	return false
}

func isMatrix(n *MathNode) bool {
	return n.Kind == KindMatrix
}

func isFraction(n *MathNode) bool {
	return n.Kind == KindFraction
}

// hasBothLimits reports an n-ary node with both its lower and upper limit
// slots present.
func hasBothLimits(n *MathNode) bool {
	return n.Kind == KindNary && n.child(0) != nil && n.child(1) != nil
}

// hasInnerFraction reports a fraction with another fraction anywhere in
// its numerator or denominator.
func hasInnerFraction(n *MathNode) bool {
	if n.Kind != KindFraction {
		return false
	}
	for _, child := range n.Children {
		if anyNode(child, isFraction) {
			return true
		}
	}
	return false
}
