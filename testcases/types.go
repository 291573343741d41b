// seehuhn.de/go/stepline - animated line rasterization
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.
package testcases

// TestCase defines a single line segment to rasterize.
type TestCase struct {
	Name   string // lowercase a-z, 0-9 and _ only
	X1, Y1 int    // start pixel
	X2, Y2 int    // end pixel
	Width  int    // canvas width in pixels
	Height int    // canvas height in pixels
}

// IsDegenerate reports whether both endpoints of the segment coincide.
func (tc TestCase) IsDegenerate() bool {
	return tc.X1 == tc.X2 && tc.Y1 == tc.Y2
}

// line is a helper to create a test case on a 64x64 canvas.
func line(name string, x1, y1, x2, y2 int) TestCase {
	return TestCase{
		Name:   name,
		X1:     x1,
		Y1:     y1,
		X2:     x2,
		Y2:     y2,
		Width:  64,
		Height: 64,
	}
}
