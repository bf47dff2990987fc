package render

// Layer tells a surface which part of the train a run of text belongs to.
type Layer uint8

const (
	LayerNone Layer = iota
	LayerBody
	LayerSmoke
)

func (l Layer) String() string {
	switch l {
	case LayerBody:
		return "body"
	case LayerSmoke:
		return "smoke"
	default:
		return "none"
	}
}

// Surface is a drawing target measured in cells. Implementations must drop
// anything that falls outside their bounds.
type Surface interface {
	Print(x, y int, text string, layer Layer)
}

// PrintClipped prints text at (x, y), keeping the visible tail when x is
// negative. Plain Print implementations tend to drop or mangle such lines.
func PrintClipped(s Surface, x, y int, text string, layer Layer) {
	if x >= 0 {
		s.Print(x, y, text, layer)
		return
	}
	hidden := -x
	if hidden >= len(text) {
		return
	}
	s.Print(0, y, text[hidden:], layer)
}
