package nw

import "errors"

var (
	// ErrNilMatrix indicates a nil or never-filled Matrix was passed in.
	ErrNilMatrix = errors.New("nw: matrix is nil or not filled")

	// ErrPathLimit indicates WithMaxPaths was exceeded; the paths found so far are returned with it.
	ErrPathLimit = errors.New("nw: optimal path limit exceeded")

	// ErrNoValidMove indicates an interior cell with no predecessor matching its score.
	ErrNoValidMove = errors.New("nw: cell has no valid predecessor move")

	// ErrInvalidPath indicates a trace path with an illegal step or one that does not fit the sequences.
	ErrInvalidPath = errors.New("nw: invalid trace path")

	// ErrBadOption indicates a nonsensical option value, such as a negative path cap.
	ErrBadOption = errors.New("nw: invalid option")
)
