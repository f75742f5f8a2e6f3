// Package viz plays animations in the terminal.
//
// The package implements a small Bubble Tea player that drives an
// animation's frame callback at its native rate and draws each frame as
// a terminal chart:
//
//   - line transitions render through asciigraph
//   - scatter transitions render on a Braille pixel [Canvas]
//   - bar transitions render as block-character columns
//
// # Key Bindings
//
//	Space - Pause/Resume playback
//	R     - Restart from frame 0
//	L     - Toggle looping
//	Q     - Quit
package viz
