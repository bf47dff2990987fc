package train

import (
	"errors"
	"fmt"
)

var (
	// ErrNoTrainsFound indicates a directory without any *.train files.
	ErrNoTrainsFound = errors.New("train: no trains found")

	// ErrInvalidIndex indicates a catalog index that does not parse or is out of range.
	ErrInvalidIndex = errors.New("train: invalid train index")
)

// IndexError reports a catalog index outside the built-in list.
type IndexError struct {
	Index int
	Count int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("train: index %d out of range (0-%d)", e.Index, e.Count-1)
}

func (e *IndexError) Unwrap() error {
	return ErrInvalidIndex
}
