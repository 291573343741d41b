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

// largeCases contain long segments on a large canvas, to check that no
// drift accumulates in the DDA position.
var largeCases = []TestCase{
	{
		Name:   "long_shallow",
		X1:     0,
		Y1:     0,
		X2:     4093,
		Y2:     1777,
		Width:  4096,
		Height: 4096,
	},
	{
		Name:   "long_steep",
		X1:     4000,
		Y1:     10,
		X2:     17,
		Y2:     4095,
		Width:  4096,
		Height: 4096,
	},
	{
		Name:   "long_thin",
		X1:     0,
		Y1:     2048,
		X2:     4095,
		Y2:     2049,
		Width:  4096,
		Height: 4096,
	},
}
