package pdftext

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRunner struct {
	out, errb []byte
	err       error
	name      string
	args      []string
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.name = name
	s.args = args
	return s.out, s.errb, s.err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestExtract_PlainText(t *testing.T) {
	path := writeFile(t, "hours.txt", "2025-01-27  10:00   18:30   x  8.5\n")
	res, err := NewExtractor(Config{}, nil).Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, MethodPlainText, res.Method)
	assert.Equal(t, 1, res.Pages)
	assert.Contains(t, res.Text, "18:30")
}

func TestExtract_PDFUsesRunner(t *testing.T) {
	path := writeFile(t, "hours.pdf", "%PDF-1.4")
	stub := &stubRunner{out: []byte("page one\fpage two\f")}
	res, err := NewExtractor(Config{Pdftotext: "/opt/bin/pdftotext"}, nil).WithRunner(stub).Extract(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "/opt/bin/pdftotext", stub.name)
	assert.Equal(t, []string{"-layout", "-enc", "UTF-8", "-eol", "unix", path, "-"}, stub.args)
	assert.Equal(t, MethodPDFText, res.Method)
	assert.Equal(t, 2, res.Pages)
	assert.Equal(t, "page one\npage two", res.Text)
}

func TestExtract_RunnerFailure(t *testing.T) {
	path := writeFile(t, "broken.pdf", "garbage")
	stub := &stubRunner{errb: []byte("Syntax Error: Couldn't find trailer dictionary"), err: errors.New("exit status 1")}
	_, err := NewExtractor(Config{}, nil).WithRunner(stub).Extract(context.Background(), path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInputUnavailable)
	assert.Contains(t, err.Error(), "trailer dictionary")
}

func TestExtract_MissingFile(t *testing.T) {
	_, err := NewExtractor(Config{}, nil).Extract(context.Background(), filepath.Join(t.TempDir(), "nope.pdf"))
	assert.ErrorIs(t, err, ErrInputUnavailable)
}

func TestExtract_UnsupportedExtension(t *testing.T) {
	path := writeFile(t, "hours.docx", "x")
	_, err := NewExtractor(Config{}, nil).Extract(context.Background(), path)
	assert.ErrorIs(t, err, ErrInputUnavailable)
}

func TestExtract_EmptyTextIsNotAnError(t *testing.T) {
	path := writeFile(t, "empty.txt", "")
	res, err := NewExtractor(Config{}, nil).Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, res.Text)
}
