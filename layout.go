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

import "fmt"

// finderModules is the edge length of a finder pattern, in modules.
const finderModules = 7

// Corner identifies one of the three finder pattern positions.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
)

func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	default:
		return fmt.Sprintf("Corner(%d)", int(c))
	}
}

// StartAngle is the angle in degrees, measured clockwise from the
// positive x-axis with y pointing down, at which the finder's rounded
// corner arc begins. The arc always sweeps 90° clockwise.
func (c Corner) StartAngle() float64 {
	switch c {
	case TopLeft:
		return 180
	case TopRight:
		return 270
	default:
		return 90
	}
}

// FinderAnchor is the pixel origin of the outer square of a finder pattern.
type FinderAnchor struct {
	X, Y   int
	Corner Corner
}

// Geometry describes where a module grid is placed on the output canvas.
// All values are in pixels unless noted otherwise.
type Geometry struct {
	Side      int // grid side length in modules
	QuietZone int // margin in modules, added to the footprint once per axis

	Width, Height int // size of the output canvas

	Scale    int // pixels per module before rounding
	Multiple int // module pitch, Scale rounded up to an even number
	Point    int // half the module edge, floor(Scale/2)

	LeftPadding, TopPadding int // centre of module (0, 0)

	Finders [3]FinderAnchor
}

// ComputeGeometry lays out a grid of gridSide×gridSide modules for content
// of contentLength characters on a canvas of at least targetW×targetH
// pixels. gridSide must be positive.
//
// The quiet zone is a tenth of the content length, not the usual four
// modules, and Point is derived from the raw Scale while Multiple is
// rounded up. Both choices are part of the look and are kept as they are.
func ComputeGeometry(gridSide, contentLength, targetW, targetH int) Geometry {
	quiet := contentLength / 10
	footprint := gridSide + quiet

	g := Geometry{
		Side:      gridSide,
		QuietZone: quiet,
		Width:     max(targetW, footprint),
		Height:    max(targetH, footprint),
	}

	g.Scale = min(g.Width/footprint, g.Height/footprint)
	g.Multiple = g.Scale
	if g.Multiple%2 != 0 {
		g.Multiple++
	}
	g.Point = g.Scale / 2

	// Go's integer division truncates towards zero, which matters when the
	// rounded-up pitch makes the grid wider than the canvas.
	g.TopPadding = (g.Height-gridSide*g.Multiple)/2 + g.Point
	g.LeftPadding = (g.Width-gridSide*g.Multiple)/2 + g.Point

	x0 := g.LeftPadding - g.Point
	y0 := g.TopPadding - g.Point
	far := (gridSide - finderModules) * g.Multiple
	g.Finders = [3]FinderAnchor{
		{X: x0, Y: y0, Corner: TopLeft},
		{X: g.LeftPadding + far - g.Point, Y: y0, Corner: TopRight},
		{X: x0, Y: g.TopPadding + far - g.Point, Corner: BottomLeft},
	}
	return g
}

// ModuleCentre returns the pixel position of the centre of module (x, y).
func (g *Geometry) ModuleCentre(x, y int) (cx, cy int) {
	return g.LeftPadding + x*g.Multiple, g.TopPadding + y*g.Multiple
}

// inFinderZone reports whether module (x, y) belongs to one of the three
// corner blocks that are drawn as finder patterns instead of dots.
// The blocks include the separator row and column.
func (g *Geometry) inFinderZone(x, y int) bool {
	near := func(i int) bool { return i <= finderModules }
	far := func(i int) bool { return i >= g.Side-finderModules }

	return near(x) && near(y) || far(x) && near(y) || near(x) && far(y)
}
