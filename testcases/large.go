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

import "strings"

// largeCases contains requests whose finder patterns cover more than
// 65536 pixels, so that the rasteriser uses its active edge list.
var largeCases = []TestCase{
	{
		Name:    "poster",
		Content: "https://seehuhn.de/",
		Width:   2048,
		Height:  2048,
	},
	{
		Name:    "banner",
		Content: "https://seehuhn.de/",
		Width:   4000,
		Height:  1200,
	},
	{
		Name:    "dense_poster",
		Content: strings.Repeat("0123456789abcdef", 40),
		Width:   3000,
		Height:  3000,
	},
}
