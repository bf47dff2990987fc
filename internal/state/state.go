// Package state tracks a train as it crosses the viewport.
//
// A [State] owns the body animation, the optional smoke animation and the
// train's position. Positions are viewport cells relative to the right edge:
// x = 0 places the train just past the right border and every [State.Step]
// moves it one cell left.
//
// The driver must call [State.SetViewport] before the first Step, Complete or
// render. State is not safe for concurrent use; it belongs to the single
// redraw loop.
package state

import (
	"fmt"

	"github.com/san-kum/sl/internal/anim"
	"github.com/san-kum/sl/internal/train"
)

// DefaultClimbRate is how many columns a flying train travels per row it
// climbs. Terminal cells are roughly twice as tall as they are wide.
const DefaultClimbRate = 10

// Smoke is the optional animation drawn above the body.
type Smoke struct {
	Animation *anim.Animation
	Offset    int
}

// Viewport is the drawable area in cells.
type Viewport struct {
	Width, Height int
}

// State is a positioned, animated train.
type State struct {
	x, y      int
	ticks     int
	body      *anim.Animation
	smoke     *Smoke
	flying    bool
	climbRate int
	view      *Viewport
}

// Option configures a State.
type Option func(*State)

// WithClimbRate overrides DefaultClimbRate. Values below one are ignored.
func WithClimbRate(n int) Option {
	return func(s *State) {
		if n >= 1 {
			s.climbRate = n
		}
	}
}

// New validates def into animations.
func New(def train.Definition, flying bool, opts ...Option) (*State, error) {
	body, err := anim.New(def.TrainSpeed, def.Train)
	if err != nil {
		return nil, fmt.Errorf("train %q: %w", def.Name, err)
	}

	var smoke *Smoke
	if def.Smoke != nil {
		speed, offset := 1, 0
		if def.SmokeSpeed != nil {
			speed = *def.SmokeSpeed
		}
		if def.SmokeOffset != nil {
			offset = *def.SmokeOffset
		}
		a, err := anim.New(speed, *def.Smoke)
		if err != nil {
			return nil, fmt.Errorf("train %q smoke: %w", def.Name, err)
		}
		smoke = &Smoke{Animation: a, Offset: offset}
	}

	s := &State{
		body:      body,
		smoke:     smoke,
		flying:    flying,
		climbRate: DefaultClimbRate,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// SetViewport records the viewport size. On the first call a flying train is
// moved to the bottom edge, lifted by its full height so it starts visible.
func (s *State) SetViewport(width, height int) {
	if s.view == nil && s.flying {
		// Smoke is drawn above the body, so the stack's top row is the
		// smoke's and the body follows it.
		top := height - (s.body.Height() + s.smokeHeight())
		s.y = top + s.smokeHeight() - s.baseRow(height)
	}
	s.view = &Viewport{Width: width, Height: height}
}

// BaseRow is the row the body's top sits on when y is zero: the body is
// centred vertically. It panics if the viewport is unknown.
func (s *State) BaseRow() int {
	return s.baseRow(s.mustView().Height)
}

func (s *State) baseRow(height int) int {
	return height/2 - s.body.Height()/2
}

// Step advances one tick.
func (s *State) Step() {
	s.x--
	s.ticks++
	s.body.Step()

	if s.flying && s.ticks%s.climbRate == 0 {
		s.y--
	}

	if s.smoke != nil {
		s.smoke.Animation.Step()
	}
}

// Complete reports whether the whole train has left through the left edge.
// It panics if the viewport is unknown.
func (s *State) Complete() bool {
	v := s.mustView()
	w := max(s.body.Width(), s.smokeWidth())
	return s.x < -(v.Width + w)
}

// Position returns the offset from the right edge and the offset from BaseRow.
func (s *State) Position() (x, y int) { return s.x, s.y }

// Viewport returns the cached size and whether it is known yet.
func (s *State) Viewport() (Viewport, bool) {
	if s.view == nil {
		return Viewport{}, false
	}
	return *s.view, true
}

// Body returns the train animation.
func (s *State) Body() *anim.Animation { return s.body }

// Smoke returns the smoke animation, or nil for a smokeless train.
func (s *State) Smoke() *Smoke { return s.smoke }

// Flying reports whether the train climbs while it moves.
func (s *State) Flying() bool { return s.flying }

// Ticks is the number of steps taken.
func (s *State) Ticks() int { return s.ticks }

func (s *State) mustView() Viewport {
	if s.view == nil {
		panic("state: viewport unknown")
	}
	return *s.view
}

func (s *State) smokeWidth() int {
	if s.smoke == nil {
		return 0
	}
	return s.smoke.Animation.Width()
}

func (s *State) smokeHeight() int {
	if s.smoke == nil {
		return 0
	}
	return s.smoke.Animation.Height()
}
