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
	"fmt"
	"image/color"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Colours used by the default configuration.
var (
	Black = color.RGBA{0, 0, 0, 255}
	White = color.RGBA{255, 255, 255, 255}
	Red   = color.RGBA{255, 0, 0, 255}
	Green = color.RGBA{0, 255, 0, 255}
)

var namedColors = map[string]color.RGBA{
	"black":   Black,
	"white":   White,
	"red":     Red,
	"green":   Green,
	"blue":    {0, 0, 255, 255},
	"yellow":  {255, 255, 0, 255},
	"cyan":    {0, 255, 255, 255},
	"magenta": {255, 0, 255, 255},
	"gray":    {128, 128, 128, 255},
}

// ParseColor converts a colour name or a hex specification of the form
// "#rrggbb" or "#rgb" to an opaque colour.  The names "red", "green",
// "blue" and their mixes denote the pure primaries; all other W3C colour
// names are understood as well.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}

	if hex, ok := strings.CutPrefix(s, "#"); ok {
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) != 6 || strings.Trim(hex, "0123456789abcdef") != "" {
			return color.RGBA{}, fmt.Errorf("malformed colour %q", s)
		}
		s = "#" + hex
	}

	r, g, b := tcell.GetColor(s).RGB()
	if r < 0 {
		return color.RGBA{}, fmt.Errorf("unknown colour %q", s)
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}, nil
}

// ColorName returns a human readable name for c: the capitalised
// colour name if c is one of the named colours, and "#rrggbb" otherwise.
func ColorName(c color.RGBA) string {
	for _, name := range []string{"red", "green", "blue", "yellow", "cyan", "magenta", "white", "black", "gray"} {
		if namedColors[name] == c {
			return strings.ToUpper(name[:1]) + name[1:]
		}
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
