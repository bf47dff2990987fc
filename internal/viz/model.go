package viz

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/san-kum/sl/internal/config"
	"github.com/san-kum/sl/internal/logging"
	"github.com/san-kum/sl/internal/render"
	"github.com/san-kum/sl/internal/state"
)

type TickMsg time.Time

// Options configure both drivers.
type Options struct {
	FPS       int
	Theme     Theme
	Backend   string
	Escapable bool
	Logger    *log.Logger
}

func (o Options) interval() time.Duration {
	fps := o.FPS
	if fps < 1 {
		fps = config.DefaultFPS
	}
	return time.Second / time.Duration(fps)
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return logging.Discard()
	}
	return o.Logger
}

// Model drives a train state from bubbletea ticks and window size messages.
type Model struct {
	st        *state.State
	canvas    *render.Canvas
	palette   palette
	interval  time.Duration
	escapable bool
	done      bool
	log       *log.Logger
}

// NewModel wraps st. The state must not have been stepped yet.
func NewModel(st *state.State, opts Options) Model {
	smokeRows := 0
	if sm := st.Smoke(); sm != nil {
		smokeRows = sm.Animation.Height()
	}
	return Model{
		st:        st,
		canvas:    render.NewCanvas(0, 0),
		palette:   newPalette(opts.Theme, smokeRows),
		interval:  opts.interval(),
		escapable: opts.Escapable,
		log:       opts.logger(),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Done reports whether the train has left the screen.
func (m Model) Done() bool { return m.done }

// Update steps the train on every tick. Quitting waits for the tick after
// completion so the last frame is drawn.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.st.SetViewport(msg.Width, msg.Height)
		m.canvas.Resize(msg.Width, msg.Height)
		m.log.Debug("viewport", "width", msg.Width, "height", msg.Height)
	case tea.KeyMsg:
		if !m.escapable {
			return m, nil
		}
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.log.Info("escaped", "tick", m.st.Ticks())
			return m, tea.Quit
		}
	case TickMsg:
		if _, ok := m.st.Viewport(); !ok {
			return m, m.tick()
		}
		if m.done {
			return m, tea.Quit
		}
		m.st.Step()
		if m.st.Complete() {
			m.done = true
			m.log.Info("train gone", "ticks", m.st.Ticks())
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	if _, ok := m.st.Viewport(); !ok {
		return ""
	}
	m.canvas.Clear()
	render.Render(m.st, m.canvas)
	if m.palette.plain {
		return m.canvas.String()
	}

	_, bodyTop := render.Origin(m.st)
	lines := make([]string, m.canvas.Height)
	for y := range lines {
		var sb strings.Builder
		for _, run := range m.canvas.Runs(y) {
			switch run.Layer {
			case render.LayerBody:
				sb.WriteString(m.palette.body.Render(run.Text))
			case render.LayerSmoke:
				sb.WriteString(m.palette.smokeStyle(bodyTop - y).Render(run.Text))
			default:
				sb.WriteString(run.Text)
			}
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}
