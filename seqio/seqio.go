// Package seqio reads the two-line sequence files consumed by the nwalign CLI.
//
// File format:
//
//	line 1: free-form header (usually "> name"), ignored
//	line 2: the raw sequence, one symbol per code point
//	further lines are ignored
//
// Files are memory-mapped read-only, so very long sequences are not copied
// through a read buffer before the sequence line is located.
package seqio

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/edsrzf/mmap-go"
)

// Default file names for the row (first) and column (second) sequence.
const (
	DefaultFirstFile  = "seqS.txt"
	DefaultSecondFile = "seqT.txt"
)

var (
	// ErrMissingFile indicates that a sequence file does not exist.
	ErrMissingFile = errors.New("seqio: sequence file does not exist")

	// ErrMissingSequenceLine indicates a file with fewer than two lines.
	ErrMissingSequenceLine = errors.New("seqio: file has no sequence line")
)

// DefaultPaths returns the default pair of sequence files inside dir.
func DefaultPaths(dir string) (first, second string) {
	return filepath.Join(dir, DefaultFirstFile), filepath.Join(dir, DefaultSecondFile)
}

// ReadSequenceFile returns line 2 of the file at path with its line ending
// removed. An empty second line yields the empty sequence.
func ReadSequenceFile(path string) (string, error) {
	fp, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrMissingFile, path)
		}

		return "", fmt.Errorf("seqio: open %s: %w", path, err)
	}
	defer fp.Close()

	info, err := fp.Stat()
	if err != nil {
		return "", fmt.Errorf("seqio: stat %s: %w", path, err)
	}
	// a zero-length file cannot be mapped and has no lines anyway
	if info.Size() == 0 {
		return "", fmt.Errorf("%w: %s is empty", ErrMissingSequenceLine, path)
	}

	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return "", fmt.Errorf("seqio: mmap %s: %w", path, err)
	}
	// the sequence is copied out before unmapping, so a failed unmap loses nothing
	defer func() { _ = mm.Unmap() }()

	seq, ok := sequenceLine(mm)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingSequenceLine, path)
	}

	return seq, nil
}

// ReadPair reads the first and second sequence. Both files must exist before
// either is read.
func ReadPair(firstPath, secondPath string) (first, second string, err error) {
	var missing []string
	for _, p := range []string{firstPath, secondPath} {
		if _, statErr := os.Stat(p); errors.Is(statErr, fs.ErrNotExist) {
			missing = append(missing, p)
		}
	}
	if len(missing) > 0 {
		return "", "", fmt.Errorf("%w: both %s and %s must exist (missing %v)",
			ErrMissingFile, firstPath, secondPath, missing)
	}

	if first, err = ReadSequenceFile(firstPath); err != nil {
		return "", "", err
	}
	if second, err = ReadSequenceFile(secondPath); err != nil {
		return "", "", err
	}

	return first, second, nil
}

// sequenceLine extracts the second line of data. The returned string owns its
// bytes, so it outlives the mapping.
func sequenceLine(data []byte) (string, bool) {
	nl := bytes.IndexByte(data, '\n')
	if nl < 0 || nl == len(data)-1 {
		return "", false
	}
	rest := data[nl+1:]
	if end := bytes.IndexByte(rest, '\n'); end >= 0 {
		rest = rest[:end]
	}

	return string(bytes.TrimSuffix(rest, []byte{'\r'})), true
}
