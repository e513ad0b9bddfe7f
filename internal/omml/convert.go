// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package omml converts Office Math Markup Language subtrees to LaTeX.
// The converter classifies each element of a parsed math subtree into a
// closed set of structural kinds, emits LaTeX recursively from templates,
// normalizes the result, and decides whether the formula reads better
// inline or as a display block. Conversion is best-effort by design: a
// formula that cannot be converted degrades to a literal placeholder and
// the rest of the document is unaffected.
package omml

import (
	"github.com/beevik/etree"

	"github.com/xiongbear2005/docx2md/pkg/types"
)

// Placeholder is the literal text substituted for a formula whose
// conversion failed completely. It is spliced into Markdown verbatim,
// without math delimiters.
const Placeholder = "[Math Formula]"

// Converter turns OMML subtrees into LaTeX one formula at a time and
// accumulates per-document statistics. One Converter serves one document
// pass; it is not safe for concurrent use.
type Converter struct {
	// DisplayLengthThreshold overrides the default display length
	// threshold when positive.
	DisplayLengthThreshold int

	stats types.ConversionStatistics
}

// NewConverter returns a Converter with default settings.
func NewConverter() *Converter {
	return &Converter{}
}

// ConvertFormula converts one math subtree, typically an m:oMath element,
// into LaTeX and classifies it as inline or display. It never fails: any
// unexpected condition degrades the formula to the placeholder text,
// counted as inline. A subtree with no renderable content returns a zero
// ConvertedFormula and is not counted.
func (c *Converter) ConvertFormula(el *etree.Element) (out types.ConvertedFormula) {
	defer func() {
		if r := recover(); r != nil {
			out = c.recordFallback()
		}
	}()

	return c.ConvertNode(parseElement(el))
}

// ConvertNode converts an already-built math tree. It backs ConvertFormula
// and is the entry point for callers that construct trees directly.
func (c *Converter) ConvertNode(node *MathNode) (out types.ConvertedFormula) {
	defer func() {
		if r := recover(); r != nil {
			out = c.recordFallback()
		}
	}()

	latex, err := emit(node)
	if err != nil {
		return c.recordFallback()
	}
	latex = Normalize(latex)
	if latex == "" {
		return types.ConvertedFormula{}
	}

	isDisplay := classifyDisplay(latex, node, c.threshold())
	if isDisplay {
		c.stats.DisplayCount++
	} else {
		c.stats.InlineCount++
	}
	return types.ConvertedFormula{LaTeX: latex, IsDisplay: isDisplay}
}

// Statistics returns a snapshot of the counters accumulated so far. The
// image count stays zero here; the document walker owns it.
func (c *Converter) Statistics() types.ConversionStatistics {
	return c.stats
}

func (c *Converter) recordFallback() types.ConvertedFormula {
	c.stats.InlineCount++
	c.stats.PlaceholderCount++
	return types.ConvertedFormula{LaTeX: Placeholder, RawFallbackUsed: true}
}

func (c *Converter) threshold() int {
	if c.DisplayLengthThreshold > 0 {
		return c.DisplayLengthThreshold
	}
	return defaultDisplayThreshold
}
