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

// contentCases vary the encoded text, and with it the grid size and the
// quiet zone, for a fixed canvas.
var contentCases = []TestCase{
	{
		Name:    "short",
		Content: "hello",
		Width:   300,
		Height:  300,
	},
	{
		Name:    "url",
		Content: "https://example.com/path?query=1",
		Width:   300,
		Height:  300,
	},
	{
		Name:    "unicode",
		Content: "Grüße aus Zürich ünd Köln",
		Width:   300,
		Height:  300,
	},
	{
		Name:    "paragraph",
		Content: strings.Repeat("The quick brown fox jumps over the lazy dog. ", 6),
		Width:   300,
		Height:  300,
	},
	{
		Name:    "numeric",
		Content: strings.Repeat("0123456789", 12),
		Width:   300,
		Height:  300,
	},
}
