// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ConversionStatus indicates the outcome of a document conversion.
type ConversionStatus string

const (
	// ConversionDone means every formula converted cleanly.
	ConversionDone ConversionStatus = "converted"

	// ConversionPartial means the document converted but one or more
	// formulas degraded to the literal placeholder.
	ConversionPartial ConversionStatus = "partial"

	// ConversionFailed means the document could not be read or written.
	ConversionFailed ConversionStatus = "failed"
)

// DocumentRecord describes one converted document as stored in the catalog.
type DocumentRecord struct {
	// Path is the path of the source document as given on the command line.
	Path string `json:"path" yaml:"path"`

	// OutputPath is the path of the generated Markdown file.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// ModTime is the source document's modification time when it was converted.
	ModTime time.Time `json:"mod_time" yaml:"mod_time"`

	// ConvertedAt is when the conversion ran.
	ConvertedAt time.Time `json:"converted_at" yaml:"converted_at"`

	// Status records the conversion outcome.
	Status ConversionStatus `json:"status" yaml:"status"`

	// Stats holds the formula and image counters for the run.
	Stats ConversionStatistics `json:"stats" yaml:"stats"`
}
