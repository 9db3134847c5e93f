package telegram

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileChecksum(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("2025-01-27  10:00  18:30  x  8"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("2025-01-27  10:00  18:30  x  8"), 0o644))

	sa, err := fileChecksum(a)
	require.NoError(t, err)
	sb, err := fileChecksum(b)
	require.NoError(t, err)
	assert.Equal(t, sa, sb)
	assert.Len(t, sa, 64)

	_, err = fileChecksum(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestWaitingPayout(t *testing.T) {
	h := &Handler{}
	assert.False(t, h.isWaitingPayout(1))
	h.setWaitingPayout(1, true)
	assert.True(t, h.isWaitingPayout(1))
	assert.False(t, h.isWaitingPayout(2))
	h.setWaitingPayout(1, false)
	assert.False(t, h.isWaitingPayout(1))
}
