// Package viz renders sorting traces in the terminal.
//
// Each step is drawn as one horizontal bar per item, in trace order, with the
// step's highlighted items picked out in the theme's accent color:
//
//   - [Frame]: a single step with header and narration
//   - [Plot]: inversions remaining over the whole trace
//   - [Player]: interactive Bubble Tea player that pulls steps lazily
//
// # Key Bindings
//
//	Space   - Play/Pause
//	→ / l   - Next step
//	← / h   - Previous step
//	g / G   - First / last step
//	a       - Next algorithm (restarts on the same input)
//	t       - Cycle color themes
//	r       - Restart
//	q       - Quit
package viz
