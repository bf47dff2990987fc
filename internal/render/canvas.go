package render

import "strings"

// Cell is one character position on a Canvas.
type Cell struct {
	Rune  rune
	Layer Layer
}

const blank = ' '

// Canvas is an in-memory Surface.
type Canvas struct {
	Width, Height int
	Grid          [][]Cell
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

// Resize reallocates the grid; the content is cleared.
func (c *Canvas) Resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	c.Width = w
	c.Height = h
	c.Grid = make([][]Cell, h)
	for i := range c.Grid {
		c.Grid[i] = make([]Cell, w)
	}
	c.Clear()
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = Cell{Rune: blank}
		}
	}
}

// Print writes text starting at (x, y), one cell per rune. Cells outside the
// grid are skipped. Spaces are drawn too, so later layers cover earlier ones.
func (c *Canvas) Print(x, y int, text string, layer Layer) {
	if y < 0 || y >= c.Height {
		return
	}
	col := x
	for _, r := range text {
		if col >= c.Width {
			return
		}
		if col >= 0 {
			c.Grid[y][col] = Cell{Rune: r, Layer: layer}
		}
		col++
	}
}

// Cell returns the cell at (x, y) and false when out of bounds.
func (c *Canvas) Cell(x, y int) (Cell, bool) {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return Cell{}, false
	}
	return c.Grid[y][x], true
}

// Lines returns each row as plain text.
func (c *Canvas) Lines() []string {
	lines := make([]string, c.Height)
	for i, row := range c.Grid {
		var sb strings.Builder
		for _, cell := range row {
			sb.WriteRune(cell.Rune)
		}
		lines[i] = sb.String()
	}
	return lines
}

// String returns the canvas rows joined by newlines.
func (c *Canvas) String() string {
	return strings.Join(c.Lines(), "\n")
}

// Runs splits row y into maximal spans of one layer, for styled output.
func (c *Canvas) Runs(y int) []Run {
	if y < 0 || y >= c.Height {
		return nil
	}
	var runs []Run
	var sb strings.Builder
	start := 0
	for x, cell := range c.Grid[y] {
		if x > 0 && cell.Layer != c.Grid[y][x-1].Layer {
			runs = append(runs, Run{Text: sb.String(), Layer: c.Grid[y][x-1].Layer, X: start})
			sb.Reset()
			start = x
		}
		sb.WriteRune(cell.Rune)
	}
	if c.Width > 0 {
		runs = append(runs, Run{Text: sb.String(), Layer: c.Grid[y][c.Width-1].Layer, X: start})
	}
	return runs
}

// Run is a horizontal span of cells sharing a layer.
type Run struct {
	Text  string
	Layer Layer
	X     int
}
