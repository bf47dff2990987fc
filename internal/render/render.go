// Package render draws train states onto cell surfaces.
//
// Left-edge clipping happens here; right and vertical clipping are left to
// the [Surface].
package render

import "github.com/san-kum/sl/internal/state"

// Origin is where the top-left corner of the body lands on the surface.
// It panics if the viewport is unknown.
func Origin(st *state.State) (x, y int) {
	v, ok := st.Viewport()
	if !ok {
		panic("render: viewport unknown")
	}
	sx, sy := st.Position()
	x = v.Width + sx
	y = st.BaseRow() + sy
	return x, y
}

// Render draws the current frame of the smoke, then the body.
func Render(st *state.State, s Surface) {
	ox, oy := Origin(st)

	if smoke := st.Smoke(); smoke != nil {
		top := oy - smoke.Animation.Height()
		for i, line := range smoke.Animation.CurrentFrame().Lines {
			PrintClipped(s, ox+smoke.Offset, top+i, line, LayerSmoke)
		}
	}

	for i, line := range st.Body().CurrentFrame().Lines {
		PrintClipped(s, ox, oy+i, line, LayerBody)
	}
}
