// Package viz provides terminal output for twin-prime palindrome runs.
//
//   - [Console]: streams per-length progress and the ASCII rug
//   - [PlotProportions]: asciigraph chart of the qualifying fraction
//   - [Viewer]: interactive Bubble Tea viewer for a stored run
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	j/k, ↑/↓   - Scroll
//	PgUp/PgDn  - Scroll by page
//	o          - Cycle ordering policy
//	t          - Cycle color themes
//	q          - Quit
package viz
