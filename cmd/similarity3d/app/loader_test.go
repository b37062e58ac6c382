package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoSlices = `1, 2, 3
4, 5, 6
---
7, 8, 9
10, 11, 12
`

func TestReadVolume(t *testing.T) {
	v, err := readVolume(strings.NewReader(twoSlices))
	require.NoError(t, err)

	assert.Equal(t, 2, v.Width)
	assert.Equal(t, 3, v.Height)
	assert.Equal(t, 2, v.Depth)
	assert.Equal(t, 12.0, v.At(1, 2, 1))
}

func TestReadVolumeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not a number", "1, x\n"},
		{"ragged rows", "1, 2\n3\n"},
		{"empty", ""},
		{"only separators", "---\n---\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := readVolume(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestVolumeLoaderCaches(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.csv")
	require.NoError(t, os.WriteFile(path, []byte(twoSlices), 0o644))

	l, err := newVolumeLoader(2)
	require.NoError(t, err)

	first, err := l.Load(path)
	require.NoError(t, err)

	// A cached volume survives removal of its file.
	require.NoError(t, os.Remove(path))
	second, err := l.Load(path)
	require.NoError(t, err)
	assert.Same(t, first, second)

	_, _, err = l.Pair(path, filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestVolumeLoaderSize(t *testing.T) {
	_, err := newVolumeLoader(0)
	assert.Error(t, err)
}
