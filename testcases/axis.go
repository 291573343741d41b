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

var axisCases = []TestCase{
	line("horizontal_right", 4, 32, 60, 32),
	line("horizontal_left", 60, 32, 4, 32),
	line("vertical_up", 32, 4, 32, 60),
	line("vertical_down", 32, 60, 32, 4),
	line("single_step_x", 31, 31, 32, 31),
	line("single_step_diag", 31, 31, 32, 32),
}
