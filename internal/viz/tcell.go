package viz

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/san-kum/sl/internal/render"
	"github.com/san-kum/sl/internal/state"
)

// screenSurface draws onto a tcell screen, which drops out-of-range cells.
type screenSurface struct {
	screen tcell.Screen
	body   tcell.Style
	smoke  []tcell.Style
	top    int
}

func newScreenSurface(s tcell.Screen, t Theme, smokeRows int) *screenSurface {
	ss := &screenSurface{screen: s, body: tcell.StyleDefault}
	if t.Body != "" {
		ss.body = tcell.StyleDefault.Foreground(tcell.GetColor(string(t.Body)))
	}
	for _, c := range t.SmokeShades(smokeRows) {
		ss.smoke = append(ss.smoke, tcell.StyleDefault.Foreground(tcell.GetColor(string(c))))
	}
	return ss
}

func (ss *screenSurface) style(y int, layer render.Layer) tcell.Style {
	if layer != render.LayerSmoke || len(ss.smoke) == 0 {
		if layer == render.LayerBody {
			return ss.body
		}
		return tcell.StyleDefault
	}
	i := min(max(ss.top-y-1, 0), len(ss.smoke)-1)
	return ss.smoke[i]
}

func (ss *screenSurface) Print(x, y int, text string, layer render.Layer) {
	st := ss.style(y, layer)
	col := x
	for _, r := range text {
		ss.screen.SetContent(col, y, r, nil, st)
		col++
	}
}

// RunTcell animates st on the real terminal through tcell.
func RunTcell(st *state.State, opts Options) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcell: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("tcell: %w", err)
	}
	defer s.Fini()
	return runScreen(s, st, opts)
}

// runScreen is the tcell redraw loop. Events are drained between ticks on
// the same goroutine.
func runScreen(s tcell.Screen, st *state.State, opts Options) error {
	logger := opts.logger()
	s.HideCursor()
	s.Clear()

	smokeRows := 0
	if sm := st.Smoke(); sm != nil {
		smokeRows = sm.Animation.Height()
	}
	surface := newScreenSurface(s, opts.Theme, smokeRows)

	w, h := s.Size()
	st.SetViewport(w, h)
	logger.Debug("viewport", "width", w, "height", h)

	ticker := time.NewTicker(opts.interval())
	defer ticker.Stop()

	done := false
	for range ticker.C {
		for s.HasPendingEvent() {
			switch ev := s.PollEvent().(type) {
			case *tcell.EventResize:
				w, h := ev.Size()
				st.SetViewport(w, h)
				s.Sync()
				logger.Debug("viewport", "width", w, "height", h)
			case *tcell.EventKey:
				if opts.Escapable && isQuitKey(ev) {
					logger.Info("escaped", "tick", st.Ticks())
					return nil
				}
			}
		}

		if done {
			return nil
		}
		st.Step()
		if st.Complete() {
			done = true
			logger.Info("train gone", "ticks", st.Ticks())
		}

		s.Clear()
		_, surface.top = render.Origin(st)
		render.Render(st, surface)
		s.Show()
	}
	return nil
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
