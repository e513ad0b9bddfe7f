// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/xiongbear2005/docx2md/internal/markdown"
	"github.com/xiongbear2005/docx2md/internal/omml"
)

// Walker converts document blocks to Markdown blocks in document
// order. Embedded images are saved as they are encountered, numbered
// by appearance.
type Walker struct {
	doc       *Document
	converter *omml.Converter
	imageDir  string // link prefix inside the Markdown
	imageRoot string // filesystem directory images are written to
	warn      io.Writer
	imageN    int
}

// NewWalker binds a walker to an open document. Image files go under
// imageRoot and are referenced through imageDir; warnings about media
// that cannot be extracted go to warn.
func NewWalker(doc *Document, converter *omml.Converter, imageDir, imageRoot string, warn io.Writer) *Walker {
	return &Walker{
		doc:       doc,
		converter: converter,
		imageDir:  imageDir,
		imageRoot: imageRoot,
		warn:      warn,
	}
}

// Images returns how many image files were written so far.
func (w *Walker) Images() int {
	return w.imageN
}

// Blocks converts the whole document body. Paragraphs may yield several
// blocks when display formulas split the surrounding text.
func (w *Walker) Blocks() []string {
	var blocks []string
	for _, block := range w.doc.Blocks() {
		switch block.Tag {
		case "p":
			blocks = append(blocks, w.paragraphBlocks(block)...)
		case "tbl":
			if t := w.tableBlock(block); t != "" {
				blocks = append(blocks, t)
			}
		}
	}
	return blocks
}

// paraState accumulates one paragraph's output. Text gathers until a
// display formula forces a block boundary.
type paraState struct {
	blocks []string
	text   strings.Builder
}

func (st *paraState) flush() {
	if s := markdown.CollapseSpaces(st.text.String()); s != "" {
		st.blocks = append(st.blocks, s)
	}
	st.text.Reset()
}

func (w *Walker) paragraphBlocks(p *etree.Element) []string {
	if level, ok := headingLevel(p); ok {
		if text := strings.TrimSpace(plainText(p)); text != "" {
			return []string{markdown.Heading(level, text)}
		}
		return nil
	}

	st := &paraState{}
	w.walkInline(p, st)
	st.flush()

	for _, id := range imageIDs(p) {
		if ref, ok := w.saveImage(id); ok {
			st.blocks = append(st.blocks, ref)
		}
	}
	return st.blocks
}

// walkInline gathers a paragraph's text and formulas. Runs need no
// special casing: recursing to the w:t leaves collects their text, and
// math containers are handled before recursion reaches their insides.
func (w *Walker) walkInline(el *etree.Element, st *paraState) {
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "t":
			if child.Space == "w" {
				st.text.WriteString(child.Text())
			}
		case "oMath":
			w.spliceFormula(child, st)
		case "oMathPara":
			for _, m := range findDescendants(child, "oMath") {
				w.spliceFormula(m, st)
			}
		case "pPr", "rPr", "drawing":
			// properties carry no content; drawings are collected
			// after the text
		default:
			w.walkInline(child, st)
		}
	}
}

func (w *Walker) spliceFormula(el *etree.Element, st *paraState) {
	f := w.converter.ConvertFormula(el)
	switch {
	case f.LaTeX == "":
	case f.RawFallbackUsed:
		st.text.WriteString(" " + f.LaTeX + " ")
	case f.IsDisplay:
		st.flush()
		st.blocks = append(st.blocks, markdown.DisplayMath(f.LaTeX))
	default:
		st.text.WriteString(" " + markdown.InlineMath(f.LaTeX) + " ")
	}
}

// saveImage extracts one embedded image, writes it under the image
// directory and returns its Markdown reference. Media that cannot be
// extracted is skipped with a warning.
func (w *Walker) saveImage(relID string) (string, bool) {
	data, ext, err := w.doc.ImageData(relID)
	if err != nil {
		fmt.Fprintf(w.warn, "warning: skipping image %s: %v\n", relID, err)
		return "", false
	}
	if err := os.MkdirAll(w.imageRoot, 0o755); err != nil {
		fmt.Fprintf(w.warn, "warning: skipping image %s: %v\n", relID, err)
		return "", false
	}
	name := fmt.Sprintf("image_%d%s", w.imageN+1, ext)
	if err := os.WriteFile(filepath.Join(w.imageRoot, name), data, 0o644); err != nil {
		fmt.Fprintf(w.warn, "warning: skipping image %s: %v\n", relID, err)
		return "", false
	}
	w.imageN++
	alt := strings.TrimSuffix(name, ext)
	return markdown.Image(alt, path.Join(w.imageDir, name)), true
}

func (w *Walker) tableBlock(tbl *etree.Element) string {
	var rows [][]string
	for _, tr := range tbl.ChildElements() {
		if tr.Tag != "tr" {
			continue
		}
		var cells []string
		for _, tc := range tr.ChildElements() {
			if tc.Tag != "tc" {
				continue
			}
			cells = append(cells, plainText(tc))
		}
		if len(cells) > 0 {
			rows = append(rows, cells)
		}
	}
	return markdown.Table(rows)
}

// headingLevel reads the paragraph style. Styles named HeadingN map to
// Markdown heading levels; everything else is body text.
func headingLevel(p *etree.Element) (int, bool) {
	pPr := childByTag(p, "pPr")
	if pPr == nil {
		return 0, false
	}
	style := childByTag(pPr, "pStyle")
	if style == nil {
		return 0, false
	}
	val := attrVal(style, "val")
	if !strings.HasPrefix(val, "Heading") {
		return 0, false
	}
	level := 1
	if n, err := strconv.Atoi(strings.TrimPrefix(val, "Heading")); err == nil && n >= 1 {
		level = n
	}
	return level, true
}

// imageIDs returns the relationship ids of the images embedded in a
// paragraph, in order of appearance.
func imageIDs(p *etree.Element) []string {
	var ids []string
	for _, drawing := range findDescendants(p, "drawing") {
		for _, blip := range findDescendants(drawing, "blip") {
			if id := attrVal(blip, "embed"); id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids
}
