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

// precisionCases exercise rounding of positions exactly halfway between
// two pixels, where DDA rounds away from zero and Bresenham's error term
// decides the other way.
var precisionCases = []TestCase{
	line("half_step_up", 0, 0, 2, 1),
	line("half_step_down", 0, 0, -2, -1),
	line("half_steps_long", 10, 10, 50, 30),
	line("thirds", 0, 0, 1, 3),
	line("fifths", 0, 0, 5, 2),
	line("negative_coordinates", -20, -7, 13, 9),
}
