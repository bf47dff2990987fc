// Package anim provides frames and looping frame animations for ASCII art.
//
// An [Animation] is built from a single string in which frames are separated
// by two fully blank lines:
//
//	frame one
//
//
//	frame two
//
// Animations advance on discrete ticks. With speed n the current frame
// changes every n calls to [Animation.Step] and wraps back to the first frame
// after the last one.
package anim
