package docx

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildPackage assembles a minimal .docx zip in memory.
func buildPackage(t *testing.T, parts map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range parts {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func readPart(t *testing.T, pkg []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(pkg), int64(len(pkg)))
	require.NoError(t, err)
	for _, part := range zr.File {
		if part.Name != name {
			continue
		}
		rc, err := part.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		return string(data)
	}
	t.Fatalf("part %s not found", name)
	return ""
}

func TestOpenBytes_And_Write(t *testing.T) {
	docXML := wrapDoc(`<w:p><w:r><w:t xml:space="preserve">Hello</w:t></w:r></w:p>`)
	pkg := buildPackage(t, map[string]string{
		"[Content_Types].xml": `<Types/>`,
		"word/document.xml":   docXML,
		"word/styles.xml":     `<w:styles/>`,
	})

	f, err := OpenBytes(pkg)
	require.NoError(t, err)
	require.Len(t, f.Document.Paragraphs(), 1)
	assert.Equal(t, "Hello", f.Document.Paragraphs()[0].Text())

	// Edit the model, then re-emit the package.
	f.Document.Paragraphs()[0].Runs()[0].Text = "Goodbye"
	out, err := f.Bytes()
	require.NoError(t, err)

	assert.Contains(t, readPart(t, out, "word/document.xml"), "Goodbye")
	// Untouched parts are copied through as they were.
	assert.Equal(t, `<Types/>`, readPart(t, out, "[Content_Types].xml"))
	assert.Equal(t, `<w:styles/>`, readPart(t, out, "word/styles.xml"))

	// The rewritten package is itself a loadable document.
	f2, err := OpenBytes(out)
	require.NoError(t, err)
	assert.Equal(t, "Goodbye", f2.Document.Paragraphs()[0].Text())
}

func TestOpenBytes_MissingDocumentPart(t *testing.T) {
	pkg := buildPackage(t, map[string]string{
		"[Content_Types].xml": `<Types/>`,
	})
	_, err := OpenBytes(pkg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "word/document.xml")
}

func TestOpenBytes_NotAZip(t *testing.T) {
	_, err := OpenBytes([]byte("this is not a docx"))
	require.Error(t, err)
}
