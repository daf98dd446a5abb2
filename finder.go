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

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// finderExtents gives the size of the rounded corner of the outer, middle
// and inner finder square, in units of the finder pitch 2*Point.
var finderExtents = [3]float64{4, 3, 2}

// drawFinders paints the three finder patterns. Each pattern is a stack of
// three squares, each inset by one finder pitch from the previous one:
// foreground, background, foreground.
func drawFinders(s Surface, g *Geometry, st Style) {
	pitch := float64(2 * g.Point)
	for _, a := range g.Finders {
		x, y := float64(a.X), float64(a.Y)
		size := finderModules * pitch
		for i, extent := range finderExtents {
			col := st.Foreground
			if i == 1 {
				col = st.Background
			}
			s.FillPath(finderPath(x, y, size, extent*pitch, a.Corner), col)

			x += pitch
			y += pitch
			size -= 2 * pitch
		}
	}
}

// finderPath returns the outline of the size×size square at (x, y) with
// corner c replaced by a quarter circle inscribed in an extent×extent
// square. The outline runs clockwise on screen, starting at the top-left.
func finderPath(x, y, size, extent float64, c Corner) *path.Data {
	r := extent / 2

	vertices := [4]struct {
		pt, centre vec.Vec2
		rounded    bool
	}{
		{vec.Vec2{X: x, Y: y}, vec.Vec2{X: x + r, Y: y + r}, c == TopLeft},
		{vec.Vec2{X: x + size, Y: y}, vec.Vec2{X: x + size - r, Y: y + r}, c == TopRight},
		{vec.Vec2{X: x + size, Y: y + size}, vec.Vec2{}, false},
		{vec.Vec2{X: x, Y: y + size}, vec.Vec2{X: x + r, Y: y + size - r}, c == BottomLeft},
	}

	b := &pathBuilder{p: &path.Data{}}
	for _, v := range vertices {
		if v.rounded && r > 0 {
			b.quarterArc(v.centre, r, c.StartAngle())
		} else {
			b.lineTo(v.pt)
		}
	}
	b.close()
	return b.p
}

// pathBuilder appends drawing commands to a path.Data.
type pathBuilder struct {
	p    *path.Data
	open bool
}

// lineTo starts a new subpath at pt, or extends the current one.
func (b *pathBuilder) lineTo(pt vec.Vec2) {
	cmd := path.CmdLineTo
	if !b.open {
		cmd = path.CmdMoveTo
		b.open = true
	}
	b.p.Cmds = append(b.p.Cmds, cmd)
	b.p.Coords = append(b.p.Coords, pt)
}

func (b *pathBuilder) cubeTo(c1, c2, end vec.Vec2) {
	b.p.Cmds = append(b.p.Cmds, path.CmdCubeTo)
	b.p.Coords = append(b.p.Coords, c1, c2, end)
}

func (b *pathBuilder) close() {
	if b.open {
		b.p.Cmds = append(b.p.Cmds, path.CmdClose)
		b.open = false
	}
}

// arcKappa places the control points of a cubic Bézier approximating a
// quarter circle of radius 1.
const arcKappa = 0.5522847498

// quarterArc draws a line to the start of a 90° clockwise arc around
// centre, beginning at angle start (in degrees), followed by the arc.
func (b *pathBuilder) quarterArc(centre vec.Vec2, r, start float64) {
	u0 := unitVector(start)
	u1 := unitVector(start + 90)
	p0 := centre.Add(u0.Mul(r))
	p3 := centre.Add(u1.Mul(r))

	// on a circle, the clockwise tangent at u is u rotated by +90°
	t0 := vec.Vec2{X: -u0.Y, Y: u0.X}
	t1 := vec.Vec2{X: -u1.Y, Y: u1.X}

	b.lineTo(p0)
	b.cubeTo(p0.Add(t0.Mul(arcKappa*r)), p3.Sub(t1.Mul(arcKappa*r)), p3)
}

// unitVector returns the direction at angle deg, with y pointing down.
// Multiples of 90° are exact.
func unitVector(deg float64) vec.Vec2 {
	switch math.Mod(deg, 360) {
	case 0:
		return vec.Vec2{X: 1, Y: 0}
	case 90:
		return vec.Vec2{X: 0, Y: 1}
	case 180:
		return vec.Vec2{X: -1, Y: 0}
	case 270:
		return vec.Vec2{X: 0, Y: -1}
	}
	s, c := math.Sincos(deg * math.Pi / 180)
	return vec.Vec2{X: c, Y: s}
}
