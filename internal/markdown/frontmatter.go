// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markdown

import (
	"fmt"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/xiongbear2005/docx2md/pkg/types"
)

// Frontmatter is the YAML block optionally prepended to converted output.
type Frontmatter struct {
	// Source is the path of the document the Markdown came from.
	Source string `yaml:"source"`

	// ConvertedAt is the conversion time, RFC 3339, UTC.
	ConvertedAt string `yaml:"converted_at"`

	// InlineFormulas and DisplayFormulas count converted math.
	InlineFormulas  int `yaml:"inline_formulas"`
	DisplayFormulas int `yaml:"display_formulas"`

	// Images counts extracted image files.
	Images int `yaml:"images"`

	// Placeholders counts formulas that degraded to placeholder text.
	Placeholders int `yaml:"placeholders,omitempty"`
}

// NewFrontmatter builds the frontmatter for one conversion run.
func NewFrontmatter(source string, at time.Time, stats types.ConversionStatistics) Frontmatter {
	return Frontmatter{
		Source:          source,
		ConvertedAt:     at.UTC().Format(time.RFC3339),
		InlineFormulas:  stats.InlineCount,
		DisplayFormulas: stats.DisplayCount,
		Images:          stats.ImageCount,
		Placeholders:    stats.PlaceholderCount,
	}
}

// Render returns the frontmatter as a fenced YAML block, ready to be
// prepended to the document body.
func (f Frontmatter) Render() (string, error) {
	data, err := yaml.Marshal(f)
	if err != nil {
		return "", fmt.Errorf("marshal frontmatter: %w", err)
	}
	return "---\n" + string(data) + "---\n\n", nil
}
