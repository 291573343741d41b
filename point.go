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
	"errors"
	"fmt"
)

// Point is a pixel location.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Sequence is an ordered list of pixels.  The order is the order in which
// the rasterization algorithm generated the pixels, and is the order in which
// they are revealed on screen.
//
// Sequences returned by this package must not be modified.
type Sequence []Point

// First returns the first point of the sequence.
// The sequence must not be empty.
func (s Sequence) First() Point {
	return s[0]
}

// Last returns the last point of the sequence.
// The sequence must not be empty.
func (s Sequence) Last() Point {
	return s[len(s)-1]
}

// Segment is a straight line segment between two pixel centres.
type Segment struct {
	A, B Point
}

// Seg is a shorthand for constructing a Segment from four coordinates.
func Seg(x1, y1, x2, y2 int) Segment {
	return Segment{A: Point{x1, y1}, B: Point{x2, y2}}
}

// Offset returns a copy of the segment, translated by (dx, dy).
func (s Segment) Offset(dx, dy int) Segment {
	return Segment{
		A: Point{s.A.X + dx, s.A.Y + dy},
		B: Point{s.B.X + dx, s.B.Y + dy},
	}
}

// ErrInvalidSegment reports a segment whose two endpoints coincide.
// Such a segment has no direction, so no per-step increment can be derived
// from it.
var ErrInvalidSegment = errors.New("invalid segment: endpoints coincide")

// CheckSegment returns ErrInvalidSegment (wrapped with the coordinates) if
// both endpoints of s are the same pixel.
//
// The rasterizers in this package do not fail on such segments; they return
// a one-point sequence instead.  CheckSegment allows callers to detect the
// condition up front.
func CheckSegment(s Segment) error {
	if s.A == s.B {
		return fmt.Errorf("%v-%v: %w", s.A, s.B, ErrInvalidSegment)
	}
	return nil
}
