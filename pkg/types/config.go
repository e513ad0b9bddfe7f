package types

// ConvertConfig holds settings for document conversion.
type ConvertConfig struct {
	// OutDir is the directory for generated Markdown files. Empty means
	// next to the source document.
	OutDir string `json:"out_dir" yaml:"out_dir"`

	// ImageDir is the directory embedded images are saved to, resolved
	// relative to the output file (default "images").
	ImageDir string `json:"image_dir" yaml:"image_dir"`

	// Frontmatter controls whether a YAML frontmatter block is prepended
	// to the Markdown output.
	Frontmatter bool `json:"frontmatter" yaml:"frontmatter"`

	// DisplayLengthThreshold is the normalized LaTeX length above which a
	// formula is promoted to a display block (default 40).
	DisplayLengthThreshold int `json:"display_length_threshold" yaml:"display_length_threshold"`
}

// CatalogConfig holds settings for the conversion catalog.
type CatalogConfig struct {
	// Path is the SQLite database file (default "docx2md.db" in the
	// output directory).
	Path string `json:"path" yaml:"path"`

	// Disabled turns catalog recording off entirely.
	Disabled bool `json:"disabled" yaml:"disabled"`
}

// Config describes the full config file: conversion settings sit at the
// top level, catalog settings under the catalog key.
type Config struct {
	ConvertConfig `yaml:",inline"`

	Catalog CatalogConfig `json:"catalog" yaml:"catalog"`
}
