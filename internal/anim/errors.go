package anim

import "errors"

// Construction errors. Nothing in this package fails after construction.
var (
	// ErrEmptyFrame indicates a frame whose source text was zero-length.
	ErrEmptyFrame = errors.New("anim: empty frame")

	// ErrEmptyAnimation indicates source text that produced no frames.
	ErrEmptyAnimation = errors.New("anim: animation has no frames")

	// ErrInvalidSpeed indicates a speed below one tick per frame.
	ErrInvalidSpeed = errors.New("anim: invalid animation speed")
)
