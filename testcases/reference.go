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

// referenceCases are the two segments of the default animation:
// segment A, and segment A offset by (+50,+50).
var referenceCases = []TestCase{
	{
		Name:   "segment_a",
		X1:     50,
		Y1:     50,
		X2:     400,
		Y2:     300,
		Width:  500,
		Height: 500,
	},
	{
		Name:   "segment_b",
		X1:     100,
		Y1:     100,
		X2:     450,
		Y2:     350,
		Width:  500,
		Height: 500,
	},
}
