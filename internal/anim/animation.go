package anim

import (
	"fmt"
	"strings"
)

// FrameDelimiter separates frames in an animation source: the end of one
// frame's last row followed by two blank lines.
const FrameDelimiter = "\n\n\n"

// Animation is a looping sequence of frames advanced by ticks.
type Animation struct {
	frames  []Frame
	speed   int
	current int
	tick    int
}

// New builds an animation from text. speed is the number of ticks each frame
// is shown for; lower is faster.
func New(speed int, text string) (*Animation, error) {
	if speed < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSpeed, speed)
	}

	blocks := strings.Split(text, FrameDelimiter)
	frames := make([]Frame, 0, len(blocks))
	for i, block := range blocks {
		f, err := NewFrame(block)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		frames = append(frames, f)
	}
	if len(frames) == 0 {
		return nil, ErrEmptyAnimation
	}

	return &Animation{frames: frames, speed: speed}, nil
}

// Step advances the tick counter, moving to the next frame every speed ticks.
func (a *Animation) Step() {
	a.tick++
	if a.tick == a.speed {
		a.current = (a.current + 1) % len(a.frames)
		a.tick = 0
	}
}

// CurrentFrame returns the frame to display now.
func (a *Animation) CurrentFrame() Frame {
	return a.frames[a.current]
}

// Index is the position of the current frame.
func (a *Animation) Index() int { return a.current }

// Len is the number of frames.
func (a *Animation) Len() int { return len(a.frames) }

// Speed is the number of ticks per frame.
func (a *Animation) Speed() int { return a.speed }

// Frame returns frame i. It panics if i is out of range.
func (a *Animation) Frame(i int) Frame { return a.frames[i] }

// Width is the widest frame's width, so the bounding box does not change
// while the animation plays.
func (a *Animation) Width() int {
	w := 0
	for _, f := range a.frames {
		w = max(w, f.Width())
	}
	return w
}

// Height is the tallest frame's height.
func (a *Animation) Height() int {
	h := 0
	for _, f := range a.frames {
		h = max(h, f.Height())
	}
	return h
}
