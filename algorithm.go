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
	"fmt"
	"strings"
)

// Algorithm selects a line rasterization method.
type Algorithm int

// These are the supported algorithms.
const (
	DDA Algorithm = iota
	Bresenham
)

func (a Algorithm) String() string {
	switch a {
	case DDA:
		return "DDA"
	case Bresenham:
		return "Bresenham"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm converts a case-insensitive algorithm name
// ("dda" or "bresenham") to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dda":
		return DDA, nil
	case "bresenham":
		return Bresenham, nil
	}
	return 0, fmt.Errorf("unknown line algorithm %q", s)
}

// Rasterize computes the pixels of s using algorithm a.
func (a Algorithm) Rasterize(s Segment) Sequence {
	switch a {
	case DDA:
		return RasterizeDDA(s.A.X, s.A.Y, s.B.X, s.B.Y)
	case Bresenham:
		return RasterizeBresenham(s.A.X, s.A.Y, s.B.X, s.B.Y)
	default:
		panic("unknown line algorithm " + a.String())
	}
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (a Algorithm) MarshalText() ([]byte, error) {
	if a != DDA && a != Bresenham {
		return nil, fmt.Errorf("unknown line algorithm %d", int(a))
	}
	return []byte(strings.ToLower(a.String())), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (a *Algorithm) UnmarshalText(text []byte) error {
	v, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
