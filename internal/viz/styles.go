package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// SmokeShades returns n colours fading from the theme's smoke colour (just
// above the chimney) to its fade colour (the highest puff).
func (t Theme) SmokeShades(n int) []lipgloss.Color {
	if n <= 0 || t.Smoke == "" {
		return nil
	}
	start, err := colorful.Hex(string(t.Smoke))
	if err != nil {
		return nil
	}
	end := start
	if t.SmokeFade != "" {
		if c, err := colorful.Hex(string(t.SmokeFade)); err == nil {
			end = c
		}
	}

	shades := make([]lipgloss.Color, n)
	shades[0] = lipgloss.Color(start.Hex())
	for i := 1; i < n; i++ {
		f := float64(i) / float64(n-1)
		shades[i] = lipgloss.Color(start.BlendLab(end, f).Clamped().Hex())
	}
	if n > 1 {
		shades[n-1] = lipgloss.Color(end.Hex())
	}
	return shades
}

// palette holds the lipgloss styles for one theme.
type palette struct {
	plain bool
	body  lipgloss.Style
	smoke []lipgloss.Style
}

func newPalette(t Theme, smokeRows int) palette {
	p := palette{plain: t.Plain()}
	if p.plain {
		return p
	}
	p.body = lipgloss.NewStyle().Foreground(t.Body)
	for _, c := range t.SmokeShades(smokeRows) {
		p.smoke = append(p.smoke, lipgloss.NewStyle().Foreground(c))
	}
	return p
}

// smokeStyle picks the shade for a cell dist rows above the body.
func (p palette) smokeStyle(dist int) lipgloss.Style {
	if len(p.smoke) == 0 {
		return lipgloss.NewStyle()
	}
	i := min(max(dist-1, 0), len(p.smoke)-1)
	return p.smoke[i]
}
