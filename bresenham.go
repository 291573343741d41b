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

// RasterizeBresenham computes the pixels of the line from (x1, y1) to
// (x2, y2) using Bresenham's integer algorithm.
//
// The result has max(|dx|, |dy|)+1 points, starts at (x1, y1) and ends at
// (x2, y2).  Consecutive points are 8-connected: each coordinate changes
// by at most one from one point to the next.
func RasterizeBresenham(x1, y1, x2, y2 int) Sequence {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := -1
	if x1 < x2 {
		sx = 1
	}
	sy := -1
	if y1 < y2 {
		sy = 1
	}

	points := make(Sequence, 0, max(dx, dy)+1)

	err := dx - dy
	for {
		points = append(points, Point{x1, y1})
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
	return points
}
