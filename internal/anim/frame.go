package anim

import "strings"

// Frame is a single static image, one string per row.
type Frame struct {
	Lines []string
}

// NewFrame splits text into rows. Leading and trailing whitespace is kept.
func NewFrame(text string) (Frame, error) {
	if len(text) == 0 {
		return Frame{}, ErrEmptyFrame
	}
	return Frame{Lines: strings.Split(text, "\n")}, nil
}

// Width is the length of the longest row.
func (f Frame) Width() int {
	w := 0
	for _, line := range f.Lines {
		if len(line) > w {
			w = len(line)
		}
	}
	return w
}

// Height is the number of rows.
func (f Frame) Height() int {
	return len(f.Lines)
}

// String joins the rows back into the source text.
func (f Frame) String() string {
	return strings.Join(f.Lines, "\n")
}
