package ingestion

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile_PlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	err := os.WriteFile(path, []byte("John Doe\r\nSkills:   Go, Python\n"), 0644)
	require.NoError(t, err)

	text, meta, err := ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "John Doe\nSkills: Go, Python", text)
	assert.Equal(t, "resume.txt", meta.Source)
	assert.Equal(t, ".txt", meta.Format)
	assert.Equal(t, 2, meta.Lines)
	assert.NotEmpty(t, meta.Hash)
}

func TestReadFile_NotFound(t *testing.T) {
	_, _, err := ReadFile("/nonexistent/resume.txt")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}

func TestFromBytes_DOCX(t *testing.T) {
	doc := `<?xml version="1.0"?><w:document><w:body>` +
		`<w:p><w:r><w:t>John Doe</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Skills: Go, Python</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte(doc))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	text, meta, err := FromBytes("resume.docx", buf.Bytes())
	require.NoError(t, err)

	assert.Equal(t, "John Doe\nSkills: Go, Python", text)
	assert.Equal(t, ".docx", meta.Format)
}

func TestFromBytes_DOCXWithoutDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	_, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, _, err = FromBytes("resume.docx", buf.Bytes())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no document.xml")
}

func TestFromBytes_CorruptPDF(t *testing.T) {
	_, _, err := FromBytes("resume.pdf", []byte("not a pdf"))

	assert.Error(t, err)
}
