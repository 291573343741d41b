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
package viz

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// Projection maps world coordinates to device pixels.
// World y points up, device y points down.
type Projection struct {
	// World is the visible part of world space.
	World rect.Rect

	// M transforms world coordinates to device coordinates.
	M matrix.Matrix
}

// NewProjection returns the projection which maps the world rectangle
// [left, right] x [bottom, top] onto a device of width x height pixels.
func NewProjection(left, right, bottom, top float64, width, height int) Projection {
	sx := float64(width) / (right - left)
	sy := float64(height) / (top - bottom)
	return Projection{
		World: rect.Rect{LLx: left, LLy: bottom, URx: right, URy: top},
		M:     matrix.Matrix{sx, 0, 0, -sy, -left * sx, float64(height) + bottom*sy},
	}
}

// Apply transforms the world point (x, y) to device coordinates.
func (p Projection) Apply(x, y float64) (float64, float64) {
	m := p.M
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
