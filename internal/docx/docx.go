// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package docx reads .docx archives and converts their content to
// Markdown in document order, delegating math to the omml converter.
package docx

import (
	"archive/zip"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/beevik/etree"
)

// documentPart is the archive member holding the document body.
const documentPart = "word/document.xml"

// relsPart is the archive member mapping relationship ids to targets,
// including embedded media.
const relsPart = "word/_rels/document.xml.rels"

// Document is an opened .docx archive with its body parsed and its
// relationships resolved. Close releases the archive.
type Document struct {
	path    string
	body    *etree.Element
	rels    map[string]Relationship
	parts   map[string]*zip.File
	archive *zip.ReadCloser
}

// Open reads a .docx archive and parses its document body. A corrupt
// archive or a missing body is a hard error; math and media problems
// later degrade per formula or image instead.
func Open(docPath string) (*Document, error) {
	archive, err := zip.OpenReader(docPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", docPath, err)
	}

	d := &Document{
		path:    docPath,
		parts:   make(map[string]*zip.File, len(archive.File)),
		archive: archive,
	}
	for _, f := range archive.File {
		d.parts[f.Name] = f
	}

	data, err := d.readPart(documentPart)
	if err != nil {
		archive.Close()
		return nil, err
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		archive.Close()
		return nil, fmt.Errorf("parse %s: %w", documentPart, err)
	}
	root := doc.Root()
	if root == nil {
		archive.Close()
		return nil, fmt.Errorf("%s: empty %s", docPath, documentPart)
	}
	d.body = childByTag(root, "body")
	if d.body == nil {
		archive.Close()
		return nil, fmt.Errorf("%s: document has no body", docPath)
	}

	// A document without relationships has no embedded media; that is
	// not an error.
	if relData, err := d.readPart(relsPart); err == nil {
		rels, err := parseRelationships(relData)
		if err != nil {
			archive.Close()
			return nil, err
		}
		d.rels = rels
	} else {
		d.rels = map[string]Relationship{}
	}

	return d, nil
}

// Close releases the underlying archive.
func (d *Document) Close() error {
	return d.archive.Close()
}

// Path returns the path the document was opened from.
func (d *Document) Path() string {
	return d.path
}

// Blocks returns the body's block-level children (paragraphs and tables,
// among whatever else the body carries) in document order.
func (d *Document) Blocks() []*etree.Element {
	return d.body.ChildElements()
}

// Formulas returns every math subtree in the body in document order.
func (d *Document) Formulas() []*etree.Element {
	return findDescendants(d.body, "oMath")
}

// ImageData returns the bytes and file extension of the media part
// behind an image relationship id.
func (d *Document) ImageData(relID string) ([]byte, string, error) {
	rel, ok := d.rels[relID]
	if !ok {
		return nil, "", fmt.Errorf("no relationship %q", relID)
	}
	if rel.TargetMode == "External" {
		return nil, "", fmt.Errorf("image %q is externally linked", relID)
	}
	name := resolveTarget(rel.Target)
	data, err := d.readPart(name)
	if err != nil {
		return nil, "", err
	}
	ext := path.Ext(name)
	if ext == "" {
		ext = ".png"
	}
	return data, ext, nil
}

func (d *Document) readPart(name string) ([]byte, error) {
	f, ok := d.parts[name]
	if !ok {
		return nil, fmt.Errorf("%s: missing part %s", d.path, name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("read part %s: %w", name, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read part %s: %w", name, err)
	}
	return data, nil
}

// resolveTarget maps a relationship target, which is relative to the
// word/ directory, onto an archive member name.
func resolveTarget(target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Join("word", target)
}

// childByTag returns the first child element with the local tag name,
// whatever its namespace prefix.
func childByTag(el *etree.Element, tag string) *etree.Element {
	for _, child := range el.ChildElements() {
		if child.Tag == tag {
			return child
		}
	}
	return nil
}

// attrVal returns the value of the attribute with the local key name,
// whatever its namespace prefix.
func attrVal(el *etree.Element, key string) string {
	for _, attr := range el.Attr {
		if attr.Key == key {
			return attr.Value
		}
	}
	return ""
}

// findDescendants returns every element below el with the local tag
// name, in document order.
func findDescendants(el *etree.Element, tag string) []*etree.Element {
	var out []*etree.Element
	var walk func(*etree.Element)
	walk = func(e *etree.Element) {
		if e.Tag == tag {
			out = append(out, e)
		}
		for _, child := range e.ChildElements() {
			walk(child)
		}
	}
	for _, child := range el.ChildElements() {
		walk(child)
	}
	return out
}

// plainText concatenates the document text (w:t) below an element,
// skipping math text so formulas do not leak into plain contexts.
func plainText(el *etree.Element) string {
	var b strings.Builder
	var walk func(*etree.Element)
	walk = func(e *etree.Element) {
		if e.Tag == "t" && e.Space == "w" {
			b.WriteString(e.Text())
		}
		for _, child := range e.ChildElements() {
			walk(child)
		}
	}
	walk(el)
	return b.String()
}
