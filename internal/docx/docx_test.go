// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeDocx builds a .docx archive from part name to content in a
// temporary directory and returns its path.
func writeDocx(t *testing.T, parts map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	for name, data := range parts {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(data))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return path
}

// docWith wraps body XML in a minimal WordprocessingML document.
func docWith(body string) string {
	return fmt.Sprintf(`<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" xmlns:m="http://schemas.openxmlformats.org/officeDocument/2006/math" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
<w:body>%s</w:body>
</w:document>`, body)
}

const sampleRels = `<?xml version="1.0"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId5" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="media/image1.png"/>
<Relationship Id="rId6" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink" Target="https://example.com/" TargetMode="External"/>
</Relationships>`

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.docx"))
	assert.Error(t, err)
}

func TestOpenNotAnArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.docx")
	require.NoError(t, os.WriteFile(path, []byte("not a zip"), 0o644))
	_, err := Open(path)
	assert.Error(t, err)
}

func TestOpenMissingDocumentPart(t *testing.T) {
	path := writeDocx(t, map[string]string{"word/other.xml": "<x/>"})
	_, err := Open(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing part word/document.xml")
}

func TestOpenMalformedDocument(t *testing.T) {
	path := writeDocx(t, map[string]string{documentPart: "<w:document><unclosed"})
	_, err := Open(path)
	assert.Error(t, err)
}

func TestOpenNoBody(t *testing.T) {
	path := writeDocx(t, map[string]string{documentPart: `<w:document xmlns:w="x"></w:document>`})
	_, err := Open(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no body")
}

func TestOpenWithoutRelationships(t *testing.T) {
	path := writeDocx(t, map[string]string{documentPart: docWith("<w:p/>")})
	doc, err := Open(path)
	require.NoError(t, err)
	defer doc.Close()

	_, _, err = doc.ImageData("rId1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no relationship "rId1"`)
}

func TestParseRelationships(t *testing.T) {
	rels, err := parseRelationships([]byte(sampleRels))
	require.NoError(t, err)
	require.Len(t, rels, 2)
	assert.Equal(t, "media/image1.png", rels["rId5"].Target)
	assert.Equal(t, "", rels["rId5"].TargetMode)
	assert.Equal(t, "External", rels["rId6"].TargetMode)
}

func TestParseRelationshipsMalformed(t *testing.T) {
	_, err := parseRelationships([]byte("<Relationships><Relationship"))
	assert.Error(t, err)
}

func TestResolveTarget(t *testing.T) {
	tests := []struct {
		target string
		want   string
	}{
		{"media/image1.png", "word/media/image1.png"},
		{"/word/media/image1.png", "word/media/image1.png"},
		{"../media/image2.jpeg", "media/image2.jpeg"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, resolveTarget(tt.target), "target %q", tt.target)
	}
}

func TestImageData(t *testing.T) {
	path := writeDocx(t, map[string]string{
		documentPart:            docWith("<w:p/>"),
		relsPart:                sampleRels,
		"word/media/image1.png": "PNGDATA",
	})
	doc, err := Open(path)
	require.NoError(t, err)
	defer doc.Close()

	data, ext, err := doc.ImageData("rId5")
	require.NoError(t, err)
	assert.Equal(t, "PNGDATA", string(data))
	assert.Equal(t, ".png", ext)

	_, _, err = doc.ImageData("rId6")
	assert.Error(t, err, "external targets are not embedded media")

	_, _, err = doc.ImageData("rId404")
	assert.Error(t, err)
}

func TestFormulasInDocumentOrder(t *testing.T) {
	body := `<w:p>
<m:oMath><m:r><m:t>a</m:t></m:r></m:oMath>
</w:p>
<w:p>
<m:oMathPara><m:oMath><m:r><m:t>b</m:t></m:r></m:oMath></m:oMathPara>
</w:p>`
	path := writeDocx(t, map[string]string{documentPart: docWith(body)})
	doc, err := Open(path)
	require.NoError(t, err)
	defer doc.Close()

	formulas := doc.Formulas()
	require.Len(t, formulas, 2)
	assert.Equal(t, "a", plainMathText(formulas[0]))
	assert.Equal(t, "b", plainMathText(formulas[1]))
}

// plainMathText concatenates m:t content for fixture assertions.
func plainMathText(el *etree.Element) string {
	out := ""
	for _, tEl := range findDescendants(el, "t") {
		out += tEl.Text()
	}
	return out
}

func TestOutline(t *testing.T) {
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(`<m:f><m:num><m:r><m:t>1</m:t></m:r></m:num></m:f>`))

	want := "<f>\n" +
		"  <num>\n" +
		"    <r>\n" +
		"      <t> 1"
	assert.Equal(t, want, Outline(doc.Root()))
}

func TestOutlineAttributes(t *testing.T) {
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(`<m:chr m:val="&#8721;"/>`))
	assert.Equal(t, `<chr val="∑">`, Outline(doc.Root()))
}
