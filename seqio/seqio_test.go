package seqio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/nwalign/seqgen"
	"github.com/katalvlaran/nwalign/seqio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates name inside dir with the given raw content.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))

	return p
}

// writeTwoLine creates name inside dir in the two-line format.
func writeTwoLine(t *testing.T, dir, name, seq string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	f, err := os.Create(p)
	require.NoError(t, err)
	require.NoError(t, seqgen.WriteTwoLine(f, name, seq))
	require.NoError(t, f.Close())

	return p
}

func TestReadSequenceFile(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unix", "> s\nACGCTG\n", "ACGCTG"},
		{"no trailing newline", "> s\nACGCTG", "ACGCTG"},
		{"windows", "> s\r\nACGCTG\r\n", "ACGCTG"},
		{"extra lines ignored", "> s\nCATGT\nTTTT\n", "CATGT"},
		{"empty sequence line", "> s\n\n", ""},
		{"unicode", "> s\nαβγ\n", "αβγ"},
	}
	for i, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := writeFile(t, dir, "f"+string(rune('a'+i))+".txt", tc.content)
			got, err := seqio.ReadSequenceFile(p)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestReadSequenceFile_MissingLine(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string]string{
		"empty.txt":  "",
		"header.txt": "> only a header\n",
		"noeol.txt":  "> only a header",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := seqio.ReadSequenceFile(writeFile(t, dir, name, content))
			assert.ErrorIs(t, err, seqio.ErrMissingSequenceLine)
		})
	}
}

func TestReadSequenceFile_Missing(t *testing.T) {
	_, err := seqio.ReadSequenceFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, seqio.ErrMissingFile)
}

func TestReadPair(t *testing.T) {
	dir := t.TempDir()
	g, err := seqgen.New(7, seqgen.DNA)
	require.NoError(t, err)
	a, b, err := g.Pair(40, 0.1, 3)
	require.NoError(t, err)

	sPath, tPath := seqio.DefaultPaths(dir)
	writeTwoLine(t, dir, seqio.DefaultFirstFile, a)
	writeTwoLine(t, dir, seqio.DefaultSecondFile, b)

	first, second, err := seqio.ReadPair(sPath, tPath)
	require.NoError(t, err)
	assert.Equal(t, a, first)
	assert.Equal(t, b, second)
}

func TestReadPair_MissingEither(t *testing.T) {
	dir := t.TempDir()
	sPath, tPath := seqio.DefaultPaths(dir)
	writeTwoLine(t, dir, seqio.DefaultFirstFile, "ACGT")

	_, _, err := seqio.ReadPair(sPath, tPath)
	assert.ErrorIs(t, err, seqio.ErrMissingFile)
	assert.Contains(t, err.Error(), seqio.DefaultSecondFile)

	_, _, err = seqio.ReadPair(tPath, sPath)
	assert.ErrorIs(t, err, seqio.ErrMissingFile)
}

func TestReadPair_PropagatesFormatError(t *testing.T) {
	dir := t.TempDir()
	sPath := writeTwoLine(t, dir, "s.txt", "ACGT")
	tPath := writeFile(t, dir, "t.txt", "> header only\n")

	_, _, err := seqio.ReadPair(sPath, tPath)
	assert.ErrorIs(t, err, seqio.ErrMissingSequenceLine)
}
