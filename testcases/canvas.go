// seehuhn.de/go/qrstyle - styled QR code rendering
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

// canvasCases vary the canvas shape for a fixed content.
var canvasCases = []TestCase{
	{
		Name:    "square",
		Content: "A",
		Width:   400,
		Height:  400,
	},
	{
		Name:    "wide",
		Content: "A",
		Width:   600,
		Height:  200,
	},
	{
		Name:    "tall",
		Content: "A",
		Width:   200,
		Height:  600,
	},
	// The rounded up module pitch makes the grid wider than the canvas.
	{
		Name:    "overflow",
		Content: "A",
		Width:   63,
		Height:  63,
	},
	// Smaller than the grid: the canvas grows to one pixel per module.
	// Point is 0, so nothing is drawn and the image is plain background.
	{
		Name:    "tiny",
		Content: "A",
		Width:   5,
		Height:  5,
	},
	// The smallest canvas on which the dots and finders are visible.
	{
		Name:    "minimal",
		Content: "A",
		Width:   42,
		Height:  42,
	},
	{
		Name:    "odd_scale",
		Content: "A",
		Width:   399,
		Height:  399,
	},
}
