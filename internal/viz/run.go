package viz

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/sl/internal/config"
	"github.com/san-kum/sl/internal/state"
)

// Run animates st until it leaves the screen, using the configured backend.
func Run(st *state.State, opts Options) error {
	switch opts.Backend {
	case config.BackendTcell:
		return RunTcell(st, opts)
	case config.BackendTea, "":
		p := tea.NewProgram(NewModel(st, opts), tea.WithAltScreen())
		_, err := p.Run()
		return err
	default:
		return fmt.Errorf("unknown backend %q", opts.Backend)
	}
}
