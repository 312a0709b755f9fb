package store

import (
	"archive/zip"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.TestWriter{T: t}).With().Timestamp().Logger()
	return logger.WithContext(context.Background())
}

// minimalDocx builds a one-paragraph .docx package in memory.
func minimalDocx(t *testing.T, text string) []byte {
	t.Helper()
	docXML := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\r\n" +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body><w:p><w:r><w:t xml:space="preserve">` + text + `</w:t></w:r></w:p></w:body></w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range map[string]string{
		"[Content_Types].xml": `<Types/>`,
		"word/document.xml":   docXML,
	} {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestFileStore_LoadAndSave(t *testing.T) {
	ctx := testCtx(t)
	path := filepath.Join(t.TempDir(), "doc.docx")
	require.NoError(t, os.WriteFile(path, minimalDocx(t, "Hello"), 0o644))

	st := NewFileStore(path)
	assert.Equal(t, path, st.Path())

	f, err := st.Load(ctx)
	require.NoError(t, err)
	require.Len(t, f.Document.Paragraphs(), 1)
	assert.Equal(t, "Hello", f.Document.Paragraphs()[0].Text())

	f.Document.Paragraphs()[0].Runs()[0].Text = "Changed"
	require.NoError(t, st.Save(ctx, f))

	// The save replaced the file wholesale; a fresh load sees the edit.
	reloaded, err := st.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Changed", reloaded.Document.Paragraphs()[0].Text())

	// No temp files left behind by the atomic rename.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "doc.docx", entries[0].Name())
}

func TestFileStore_LoadMissing(t *testing.T) {
	st := NewFileStore(filepath.Join(t.TempDir(), "absent.docx"))
	_, err := st.Load(testCtx(t))
	require.Error(t, err)
}

func TestFileStore_SaveIntoMissingDirectory(t *testing.T) {
	ctx := testCtx(t)
	src := filepath.Join(t.TempDir(), "doc.docx")
	require.NoError(t, os.WriteFile(src, minimalDocx(t, "x"), 0o644))

	f, err := NewFileStore(src).Load(ctx)
	require.NoError(t, err)

	st := NewFileStore(filepath.Join(t.TempDir(), "nope", "doc.docx"))
	err = st.Save(ctx, f)
	require.Error(t, err)
}

func TestSnapshotStore_RoundTrip(t *testing.T) {
	ctx := testCtx(t)
	seed := minimalDocx(t, "live content")

	st := NewSnapshotStore(seed)
	f, err := st.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "live content", f.Document.Paragraphs()[0].Text())

	f.Document.Paragraphs()[0].Runs()[0].Text = "edited"
	require.NoError(t, st.Save(ctx, f))

	// The snapshot now holds the edited package.
	again, err := st.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "edited", again.Document.Paragraphs()[0].Text())
	assert.NotEqual(t, seed, st.CurrentContent())
}

func TestSnapshotStore_ExternalUpdate(t *testing.T) {
	ctx := testCtx(t)
	st := NewSnapshotStore(minimalDocx(t, "stale"))

	// The hosted editor pushes a newer revision.
	st.SetCurrentContent(minimalDocx(t, "fresh"))

	f, err := st.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "fresh", f.Document.Paragraphs()[0].Text())
}

func TestSnapshotStore_Empty(t *testing.T) {
	st := NewSnapshotStore(nil)
	_, err := st.Load(testCtx(t))
	require.Error(t, err)
}
