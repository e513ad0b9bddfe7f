// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package omml

import (
	"strings"
	"testing"
)

func TestConvertNodeInlineDisplayAccounting(t *testing.T) {
	c := NewConverter()

	// Inline: a short plain run.
	c.ConvertNode(run("x"))
	// Display: a matrix.
	c.ConvertNode(&MathNode{Kind: KindMatrix, Rows: [][]*MathNode{{run("1")}}})
	// Display: long output.
	c.ConvertNode(run(strings.Repeat("x+", 30)))
	// Inline again.
	c.ConvertNode(run("y"))

	stats := c.Statistics()
	if stats.InlineCount != 2 {
		t.Errorf("InlineCount = %d, want 2", stats.InlineCount)
	}
	if stats.DisplayCount != 2 {
		t.Errorf("DisplayCount = %d, want 2", stats.DisplayCount)
	}
	if got := stats.TotalFormulas(); got != 4 {
		t.Errorf("TotalFormulas = %d, want 4", got)
	}
	if stats.PlaceholderCount != 0 {
		t.Errorf("PlaceholderCount = %d, want 0", stats.PlaceholderCount)
	}
}

func TestConvertNodeFallback(t *testing.T) {
	c := NewConverter()
	got := c.ConvertNode(&MathNode{Kind: NodeKind(99)})

	if got.LaTeX != Placeholder {
		t.Errorf("LaTeX = %q, want %q", got.LaTeX, Placeholder)
	}
	if !got.RawFallbackUsed {
		t.Error("RawFallbackUsed should be set")
	}
	if got.IsDisplay {
		t.Error("fallback formulas count as inline")
	}

	stats := c.Statistics()
	if stats.InlineCount != 1 || stats.PlaceholderCount != 1 {
		t.Errorf("stats = %+v, want one inline placeholder", stats)
	}
}

func TestConvertNodeFallbackBuriedInTree(t *testing.T) {
	// A bad kind anywhere in the tree degrades the whole formula.
	c := NewConverter()
	n := &MathNode{
		Kind: KindFraction,
		Children: []*MathNode{
			run("a"),
			{Kind: NodeKind(-1)},
		},
	}
	got := c.ConvertNode(n)
	if got.LaTeX != Placeholder || !got.RawFallbackUsed {
		t.Errorf("got %+v, want placeholder fallback", got)
	}
}

func TestClassifyDisplayRules(t *testing.T) {
	tests := []struct {
		name string
		node *MathNode
		want bool
	}{
		{
			"short plain run stays inline",
			run("x"),
			false,
		},
		{
			"matrix is display regardless of length",
			&MathNode{Kind: KindMatrix, Rows: [][]*MathNode{{run("1")}}},
			true,
		},
		{
			"nary with both limits is display",
			&MathNode{Kind: KindNary, Chr: "∑", Children: []*MathNode{run("i=1"), run("n"), run("x")}},
			true,
		},
		{
			"nary with one limit stays inline",
			&MathNode{Kind: KindNary, Chr: "∑", Children: []*MathNode{run("i"), nil, run("x")}},
			false,
		},
		{
			"plain fraction stays inline",
			&MathNode{Kind: KindFraction, Children: []*MathNode{run("a"), run("b")}},
			false,
		},
		{
			"nested fraction is display",
			&MathNode{
				Kind: KindFraction,
				Children: []*MathNode{
					&MathNode{Kind: KindFraction, Children: []*MathNode{run("a"), run("b")}},
					run("c"),
				},
			},
			true,
		},
		{
			"matrix buried in a subtree is display",
			group(run("A="), &MathNode{Kind: KindMatrix, Rows: [][]*MathNode{{run("1")}}}),
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConverter()
			got := c.ConvertNode(tt.node)
			if got.IsDisplay != tt.want {
				t.Errorf("IsDisplay = %v, want %v (latex %q)", got.IsDisplay, tt.want, got.LaTeX)
			}
		})
	}
}

func TestClassifyDisplayLengthThreshold(t *testing.T) {
	// 41 characters crosses the default threshold, 40 does not.
	over := run(strings.Repeat("x", 41))
	under := run(strings.Repeat("x", 40))

	c := NewConverter()
	if got := c.ConvertNode(over); !got.IsDisplay {
		t.Error("41 characters should be display")
	}
	if got := c.ConvertNode(under); got.IsDisplay {
		t.Error("40 characters should stay inline")
	}
}

func TestClassifyDisplayThresholdOverride(t *testing.T) {
	c := NewConverter()
	c.DisplayLengthThreshold = 5
	if got := c.ConvertNode(run("x+y+z+w")); !got.IsDisplay {
		t.Error("threshold override should lower the display cutoff")
	}
}

func TestClassifyDisplayThresholdCountsRunes(t *testing.T) {
	// Multi-byte output must be measured in characters, not bytes.
	c := NewConverter()
	c.DisplayLengthThreshold = 10
	got := c.ConvertNode(run("《》《》《》")) // 6 runes, 18 bytes
	if got.IsDisplay {
		t.Errorf("6 runes should stay inline, latex %q", got.LaTeX)
	}
}

func TestStatisticsSnapshotIsolated(t *testing.T) {
	c := NewConverter()
	c.ConvertNode(run("x"))

	snap := c.Statistics()
	snap.InlineCount = 100

	if got := c.Statistics().InlineCount; got != 1 {
		t.Errorf("mutating a snapshot leaked into the converter: %d", got)
	}
}
