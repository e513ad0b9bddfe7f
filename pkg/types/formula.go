// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConvertedFormula is the result of converting one OMML subtree to LaTeX.
type ConvertedFormula struct {
	// LaTeX is the normalized LaTeX source, without math delimiters.
	LaTeX string `json:"latex" yaml:"latex"`

	// IsDisplay reports whether the formula should be rendered as a
	// standalone display block rather than inline math.
	IsDisplay bool `json:"is_display" yaml:"is_display"`

	// RawFallbackUsed reports that conversion failed and LaTeX holds the
	// literal placeholder text instead of converted markup.
	RawFallbackUsed bool `json:"raw_fallback_used" yaml:"raw_fallback_used"`
}

// ConversionStatistics accumulates per-document conversion counters.
// Inline, display, and placeholder counts are owned by the formula
// converter; the image count is owned by the document walker.
type ConversionStatistics struct {
	// InlineCount is the number of formulas emitted as inline math.
	// Placeholder formulas are counted here.
	InlineCount int `json:"inline_count" yaml:"inline_count"`

	// DisplayCount is the number of formulas emitted as display blocks.
	DisplayCount int `json:"display_count" yaml:"display_count"`

	// PlaceholderCount is the number of formulas that degraded to the
	// literal placeholder text.
	PlaceholderCount int `json:"placeholder_count" yaml:"placeholder_count"`

	// ImageCount is the number of embedded images saved alongside the
	// Markdown output.
	ImageCount int `json:"image_count" yaml:"image_count"`
}

// TotalFormulas returns the number of formulas converted, inline plus display.
func (s ConversionStatistics) TotalFormulas() int {
	return s.InlineCount + s.DisplayCount
}
