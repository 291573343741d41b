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

package stepline

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// RasterizeDDA computes the pixels of the line from (x1, y1) to (x2, y2)
// using a digital differential analyzer.
//
// The line is walked in max(|dx|, |dy|) equal steps along the dominant
// axis.  The position is kept in floating point and each visited position
// is rounded to the nearest pixel, with halves rounded away from zero.
// The result has max(|dx|, |dy|)+1 points, starts at (x1, y1) and ends at
// (x2, y2).  If both endpoints coincide, the single point (x1, y1) is
// returned.
func RasterizeDDA(x1, y1, x2, y2 int) Sequence {
	dx := x2 - x1
	dy := y2 - y1
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		return Sequence{{x1, y1}}
	}

	inc := vec.Vec2{X: float64(dx), Y: float64(dy)}.Mul(1 / float64(steps))
	pos := vec.Vec2{X: float64(x1), Y: float64(y1)}

	points := make(Sequence, steps+1)
	for i := range steps {
		points[i] = Point{int(math.Round(pos.X)), int(math.Round(pos.Y))}
		pos = pos.Add(inc)
	}
	// Accumulated rounding error in pos could move the final pixel.
	points[steps] = Point{x2, y2}

	return points
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
