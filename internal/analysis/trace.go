package analysis

import (
	"errors"
	"fmt"

	"github.com/san-kum/sl/internal/render"
	"github.com/san-kum/sl/internal/state"
)

// ErrTraceLimit indicates the train was still on screen after the tick limit.
var ErrTraceLimit = errors.New("analysis: tick limit reached")

// Sample is the body's top-left screen cell at a tick.
type Sample struct {
	Tick   int
	Column int
	Row    int
}

// Path is a recorded run.
type Path struct {
	Width, Height int
	Samples       []Sample
}

// Trace sets the viewport on a fresh state and steps it until it completes.
// The first sample is taken before any step; the last one on the tick the
// train leaves.
func Trace(st *state.State, width, height, limit int) (Path, error) {
	if st.Ticks() != 0 {
		return Path{}, errors.New("analysis: state already stepped")
	}
	st.SetViewport(width, height)

	p := Path{Width: width, Height: height}
	for {
		x, y := render.Origin(st)
		p.Samples = append(p.Samples, Sample{Tick: st.Ticks(), Column: x, Row: y})
		if st.Complete() {
			return p, nil
		}
		if st.Ticks() >= limit {
			return p, fmt.Errorf("%w: %d", ErrTraceLimit, limit)
		}
		st.Step()
	}
}

// Ticks is the number of steps until completion.
func (p Path) Ticks() int {
	if len(p.Samples) == 0 {
		return 0
	}
	return p.Samples[len(p.Samples)-1].Tick
}

// Altitude is the height of the body's top row above the bottom edge.
func (p Path) Altitude() []float64 {
	out := make([]float64, len(p.Samples))
	for i, s := range p.Samples {
		out[i] = float64(p.Height - s.Row)
	}
	return out
}

// Visible counts the ticks on which some column of the body is on screen.
func (p Path) Visible(bodyWidth, bodyHeight int) int {
	n := 0
	for _, s := range p.Samples {
		if s.Column < p.Width && s.Column+bodyWidth > 0 && s.Row < p.Height && s.Row+bodyHeight > 0 {
			n++
		}
	}
	return n
}
