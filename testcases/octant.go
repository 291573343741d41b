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

// octantCases contains one shallow and one steep segment per quadrant,
// all starting at the canvas centre, so that every combination of step
// direction and dominant axis is covered.
var octantCases = []TestCase{
	line("east_shallow", 32, 32, 60, 43),
	line("east_steep", 32, 32, 43, 60),
	line("west_shallow", 32, 32, 4, 43),
	line("west_steep", 32, 32, 21, 60),
	line("south_shallow", 32, 32, 4, 21),
	line("south_steep", 32, 32, 21, 4),
	line("north_shallow", 32, 32, 60, 21),
	line("north_steep", 32, 32, 43, 4),
}

// diagonalCases have |dx| == |dy|, where both algorithms must produce
// the exact diagonal.
var diagonalCases = []TestCase{
	line("diagonal_ne", 4, 4, 60, 60),
	line("diagonal_nw", 60, 4, 4, 60),
	line("diagonal_sw", 60, 60, 4, 4),
	line("diagonal_se", 4, 60, 60, 4),
}
