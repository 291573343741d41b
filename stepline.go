// Package stepline computes the pixels of straight line segments with the
// DDA and Bresenham algorithms, and reveals the resulting pixel sequences
// one point at a time for side-by-side animation.
//
// The frontends which draw the animation live in the sub-packages viz
// (event loop abstraction, image frames), term (terminal) and pdfsnap
// (PDF snapshots).
package stepline

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf
