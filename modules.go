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

package qrstyle

import "image"

// drawModules paints one square dot for every dark module outside the
// finder zones. The dot is 2*Point pixels wide, centred on the module.
func drawModules(s Surface, grid *ModuleGrid, g *Geometry, st Style) {
	n := grid.Size()
	for y := range n {
		for x := range n {
			if !grid.Dark(x, y) || g.inFinderZone(x, y) {
				continue
			}
			cx, cy := g.ModuleCentre(x, y)
			dot := image.Rect(cx-g.Point, cy-g.Point, cx+g.Point, cy+g.Point)
			s.FillRect(dot, st.Foreground)
		}
	}
}
