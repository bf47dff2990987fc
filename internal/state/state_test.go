package state_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sl/internal/anim"
	"github.com/san-kum/sl/internal/state"
	"github.com/san-kum/sl/internal/train"
)

func definition(body string, speed int) train.Definition {
	return train.Definition{Name: "test", Train: body, TrainSpeed: speed}
}

var _ = Describe("State", func() {
	Describe("New", func() {
		It("starts at the origin with an unknown viewport", func() {
			s, err := state.New(definition("X", 1), false)
			Expect(err).NotTo(HaveOccurred())

			x, y := s.Position()
			Expect(x).To(BeZero())
			Expect(y).To(BeZero())
			_, known := s.Viewport()
			Expect(known).To(BeFalse())
			Expect(s.Smoke()).To(BeNil())
		})

		It("rejects a zero body speed", func() {
			_, err := state.New(definition("X", 0), false)
			Expect(err).To(MatchError(anim.ErrInvalidSpeed))
		})

		It("rejects an empty body", func() {
			_, err := state.New(definition("", 1), false)
			Expect(err).To(MatchError(anim.ErrEmptyFrame))
		})

		It("rejects broken smoke", func() {
			def := definition("X", 1).WithSmoke("", 0, 1)
			_, err := state.New(def, false)
			Expect(err).To(MatchError(anim.ErrEmptyFrame))

			def = definition("X", 1).WithSmoke("o", 0, 0)
			_, err = state.New(def, false)
			Expect(err).To(MatchError(anim.ErrInvalidSpeed))
		})

		It("defaults smoke speed and offset", func() {
			smoke := "o\n\n\nO"
			def := definition("X", 1)
			def.Smoke = &smoke

			s, err := state.New(def, false)
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Smoke()).NotTo(BeNil())
			Expect(s.Smoke().Offset).To(Equal(0))
			Expect(s.Smoke().Animation.Speed()).To(Equal(1))
		})
	})

	Describe("SetViewport", func() {
		It("leaves a grounded train on the centre line", func() {
			s, _ := state.New(definition("X", 1), false)
			s.SetViewport(80, 24)

			_, y := s.Position()
			Expect(y).To(BeZero())
			v, known := s.Viewport()
			Expect(known).To(BeTrue())
			Expect(v).To(Equal(state.Viewport{Width: 80, Height: 24}))
		})

		It("lifts a flying train by its body and smoke height", func() {
			def := definition("a\nb\nc", 1).WithSmoke("o\no", 0, 1)
			s, _ := state.New(def, true)
			s.SetViewport(80, 24)

			// Smoke on rows 19-20, body on 21-23.
			_, y := s.Position()
			Expect(s.BaseRow() + y).To(Equal(24 - 3))
		})

		It("places a flying train only once", func() {
			s, _ := state.New(definition("a\nb", 1), true)
			s.SetViewport(80, 24)
			for i := 0; i < 10; i++ {
				s.Step()
			}
			s.SetViewport(100, 40)

			// Placed at 22 - 11 on the 24 row viewport, then one climb.
			_, y := s.Position()
			Expect(y).To(Equal(10))
			v, _ := s.Viewport()
			Expect(v.Width).To(Equal(100))
		})
	})

	Describe("Step", func() {
		It("drifts left one cell per tick", func() {
			s, _ := state.New(definition("X", 1), false)
			s.SetViewport(10, 5)
			for i := 0; i < 7; i++ {
				s.Step()
			}
			x, y := s.Position()
			Expect(x).To(Equal(-7))
			Expect(y).To(BeZero())
			Expect(s.Ticks()).To(Equal(7))
		})

		It("climbs one row every ten ticks when flying", func() {
			s, _ := state.New(definition("X", 1), true)
			s.SetViewport(10, 20)
			_, start := s.Position()

			for i := 1; i <= 35; i++ {
				s.Step()
				_, y := s.Position()
				Expect(y).To(Equal(start-i/10), "tick %d", i)
			}
		})

		It("honours a custom climb rate", func() {
			s, _ := state.New(definition("X", 1), true, state.WithClimbRate(3))
			s.SetViewport(10, 20)
			_, start := s.Position()
			for i := 0; i < 9; i++ {
				s.Step()
			}
			_, y := s.Position()
			Expect(y).To(Equal(start - 3))
		})

		It("advances body and smoke at their own speeds", func() {
			def := definition("1\n\n\n2", 1).WithSmoke("a\n\n\nb", 0, 3)
			s, _ := state.New(def, false)
			s.SetViewport(10, 10)

			s.Step()
			Expect(s.Body().Index()).To(Equal(1))
			Expect(s.Smoke().Animation.Index()).To(Equal(0))

			s.Step()
			s.Step()
			Expect(s.Body().Index()).To(Equal(1))
			Expect(s.Smoke().Animation.Index()).To(Equal(1))
		})
	})

	Describe("Complete", func() {
		It("panics before the viewport is known", func() {
			s, _ := state.New(definition("X", 1), false)
			Expect(func() { s.Complete() }).To(Panic())
		})

		It("completes once x passes -(width + train width)", func() {
			s, _ := state.New(definition("X", 1), false)
			s.SetViewport(10, 5)

			steps := 0
			for !s.Complete() {
				x, _ := s.Position()
				Expect(x + 1).To(BeNumerically(">=", -10))
				s.Step()
				steps++
			}
			x, _ := s.Position()
			Expect(x).To(Equal(-12))
			Expect(steps).To(Equal(12))
		})

		It("uses the wider of body and smoke", func() {
			def := definition("XX", 1).WithSmoke(strings.Repeat("o", 6), 0, 1)
			s, _ := state.New(def, false)
			s.SetViewport(4, 5)

			for i := 0; i < 10; i++ {
				s.Step()
				Expect(s.Complete()).To(BeFalse())
			}
			s.Step()
			Expect(s.Complete()).To(BeTrue())
		})
	})
})
