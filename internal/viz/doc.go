// Package viz runs the train animation on a terminal.
//
// Two drivers are provided, both honouring the same contract with the train
// state: the viewport is set before the first step, set again on every
// resize, the state is stepped once per tick and redrawn after each step, and
// the loop exits on the tick after [state.State.Complete] first reports true.
//
//   - [Model]: Bubble Tea program (default backend)
//   - [RunTcell]: direct tcell screen loop
//
// Keys are ignored unless Escapable is set; the train does not stop for
// anyone.
//
// # Themes
//
// [Themes] colour the body and fade the smoke from its base colour to a
// muted one as it rises. The default theme keeps the terminal's colours.
package viz
