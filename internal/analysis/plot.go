package analysis

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
)

// Plot charts the altitude over ticks.
func Plot(p Path, name string, height int) string {
	data := p.Altitude()
	if len(data) == 0 {
		return ""
	}
	if len(data) == 1 {
		data = append(data, data[0])
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Precision(0),
		asciigraph.Caption(fmt.Sprintf("%s: altitude over %d ticks (%dx%d)", name, p.Ticks(), p.Width, p.Height)),
	)
}
