package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	similarity "github.com/VersusProject/similarity-3d"
)

func TestPairs(t *testing.T) {
	files := []string{"a", "b", "c"}

	inline := pairs(modeInline, files)
	assert.Equal(t, []filePair{{"a", "a"}, {"a", "b"}, {"a", "c"}}, inline)

	all := pairs(modeAllPairs, files)
	assert.Len(t, all, 9)
	assert.Equal(t, filePair{"b", "c"}, all[5])

	assert.Empty(t, pairs(modeInline, nil))
}

func TestSplitList(t *testing.T) {
	got := splitList([]string{"euclidean, cosine", "", " tee "})
	assert.Equal(t, []string{"euclidean", "cosine", "tee"}, got)
}

func TestReadList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "measures.txt")
	require.NoError(t, os.WriteFile(path, []byte("euclidean\n\n# skipped\n  cosine  \n"), 0o644))

	got, err := readList(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"euclidean", "cosine"}, got)

	_, err = readList(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestFormatRow(t *testing.T) {
	ok := formatRow("a", "b", similarity.Result{Measure: "euclidean", Value: 0.5, Elapsed: 2 * time.Millisecond})
	assert.Equal(t, []string{"a", "b", "euclidean", "0.5", "2ms", "None"}, ok)

	failed := formatRow("a", "b", similarity.Result{Measure: "cosine", Err: errors.New("boom")})
	assert.Equal(t, []string{"a", "b", "cosine", "None", "boom"}, failed)
}

func TestResultWriter(t *testing.T) {
	var buf bytes.Buffer
	rw := newResultWriter(&buf, nil)
	require.NoError(t, rw.Write("a", "b", similarity.Result{Measure: "tee", Value: 1}))
	require.NoError(t, rw.Close())
	assert.Equal(t, "a\tb\ttee\t1\t0s\tNone\n", buf.String())
}

func TestCompareCommand(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.csv")
	b := filepath.Join(dir, "b.csv")
	out := filepath.Join(dir, "results.tsv")
	require.NoError(t, os.WriteFile(a, []byte("0, 1\n1, 0\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("0, 1, 1, 0\n"), 0o644))

	cmd := NewRootCmd()
	cmd.SetArgs([]string{
		"compare", a, b,
		"--measures", "city-block,dice-voxel",
		"--bins", "2",
		"--results", out,
	})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)

	fields := func(i int) []string { return strings.Split(lines[i], "\t") }

	// a against itself
	assert.Equal(t, []string{a, a, "city-block", "0"}, fields(0)[:4])
	assert.Equal(t, []string{a, a, "dice-voxel", "1"}, fields(1)[:4])

	// a against b: same histogram, different grid
	assert.Equal(t, []string{a, b, "city-block", "0"}, fields(2)[:4])
	row := fields(3)
	require.Len(t, row, 5)
	assert.Equal(t, []string{a, b, "dice-voxel", "None"}, row[:4])
	assert.Contains(t, row[4], "features must have the same")
	assert.Len(t, fields(2), 6)
}
