// Package analysis replays a train state headlessly.
//
// [Trace] follows the same driver contract as the terminal drivers but
// records where the body is drawn on each tick instead of drawing it. [Plot]
// turns the recorded altitude into an ASCII chart.
package analysis
