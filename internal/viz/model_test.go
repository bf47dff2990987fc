package viz

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/sl/internal/state"
	"github.com/san-kum/sl/internal/train"
)

func newTestState(t *testing.T, def train.Definition) *state.State {
	t.Helper()
	st, err := state.New(def, false)
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	return st
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return nm, cmd
}

func TestModel_WaitsForLayout(t *testing.T) {
	st := newTestState(t, train.Definition{Train: "X", TrainSpeed: 1})
	m := NewModel(st, Options{FPS: 18})

	if m.View() != "" {
		t.Error("expected empty view before layout")
	}
	m, cmd := update(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Error("expected another tick")
	}
	if st.Ticks() != 0 {
		t.Errorf("stepped before layout: %d ticks", st.Ticks())
	}
	if m.Done() {
		t.Error("should not be done")
	}
}

func TestModel_RunsToCompletion(t *testing.T) {
	st := newTestState(t, train.Definition{Train: "X", TrainSpeed: 1})
	m := NewModel(st, Options{FPS: 18})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 10, Height: 3})

	var cmd tea.Cmd
	ticks := 0
	for !m.Done() {
		m, cmd = update(t, m, TickMsg(time.Now()))
		ticks++
		if ticks > 100 {
			t.Fatal("train never left")
		}
	}
	if ticks != 12 {
		t.Errorf("expected 12 ticks, got %d", ticks)
	}
	if cmd == nil || isQuit(cmd) {
		t.Error("the completing tick should still schedule a redraw")
	}

	_, cmd = update(t, m, TickMsg(time.Now()))
	if !isQuit(cmd) {
		t.Error("expected quit on the tick after completion")
	}
}

func TestModel_IgnoresKeys(t *testing.T) {
	st := newTestState(t, train.Definition{Train: "X", TrainSpeed: 1})
	m := NewModel(st, Options{})

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if isQuit(cmd) {
		t.Error("ctrl+c should be ignored")
	}
}

func TestModel_EscapableQuits(t *testing.T) {
	st := newTestState(t, train.Definition{Train: "X", TrainSpeed: 1})
	m := NewModel(st, Options{Escapable: true})

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Error("expected quit")
	}
	_, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if isQuit(cmd) {
		t.Error("unexpected quit on x")
	}
}

func TestModel_ViewPlain(t *testing.T) {
	def := train.Definition{Train: "<o>", TrainSpeed: 1}.WithSmoke("~", 1, 1)
	st := newTestState(t, def)
	m := NewModel(st, Options{Theme: ThemeDefault})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 6, Height: 4})
	for i := 0; i < 4; i++ {
		m, _ = update(t, m, TickMsg(time.Now()))
	}

	want := strings.Join([]string{
		"      ",
		"   ~  ",
		"  <o> ",
		"      ",
	}, "\n")
	if got := m.View(); got != want {
		t.Errorf("view:\n%s\nwant:\n%s", got, want)
	}
}

func TestModel_ViewThemedKeepsText(t *testing.T) {
	st := newTestState(t, train.Definition{Train: "<o>", TrainSpeed: 1})
	m := NewModel(st, Options{Theme: ThemeOcean})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 6, Height: 3})
	for i := 0; i < 4; i++ {
		m, _ = update(t, m, TickMsg(time.Now()))
	}

	if !strings.Contains(m.View(), "<o>") {
		t.Errorf("expected train text in view %q", m.View())
	}
}

func TestModel_ResizeKeepsPosition(t *testing.T) {
	st := newTestState(t, train.Definition{Train: "X", TrainSpeed: 1})
	m := NewModel(st, Options{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 10, Height: 3})
	m, _ = update(t, m, TickMsg(time.Now()))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 5})

	x, _ := st.Position()
	if x != -1 {
		t.Errorf("x = %d, want -1", x)
	}
	if len(strings.Split(m.View(), "\n")) != 5 {
		t.Error("view should follow the new height")
	}
}

func TestOptions_Interval(t *testing.T) {
	if got := (Options{FPS: 20}).interval(); got != 50*time.Millisecond {
		t.Errorf("interval = %v", got)
	}
	if got := (Options{}).interval(); got != time.Second/18 {
		t.Errorf("default interval = %v", got)
	}
}
