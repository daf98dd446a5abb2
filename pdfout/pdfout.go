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

// Package pdfout draws styled QR codes as vector graphics on a PDF page.
//
// One pixel of the raster output corresponds to one PDF point.
// Colors are emitted in DeviceRGB. Fully transparent fills are skipped,
// other alpha values are ignored.
package pdfout

import (
	"image"
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/qrstyle"
)

// Surface draws onto a PDF page using top-left pixel coordinates.
type Surface struct {
	page *document.Page
}

// NewSurface prepares page for drawing. The page must be height points
// tall. NewSurface changes the current transformation matrix so that the
// origin is at the top-left and y points down.
func NewSurface(page *document.Page, height int) *Surface {
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(height)})
	return &Surface{page: page}
}

// FillRect implements the qrstyle.Surface interface.
func (s *Surface) FillRect(r image.Rectangle, col color.Color) {
	c, ok := deviceRGB(col)
	if r.Empty() || !ok {
		return
	}
	s.page.SetFillColor(c)
	s.page.Rectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	s.page.Fill()
}

// FillPath implements the qrstyle.Surface interface.
// Quadratic segments are converted to cubic ones.
func (s *Surface) FillPath(p *path.Data, col color.Color) {
	c, ok := deviceRGB(col)
	if len(p.Cmds) == 0 || !ok {
		return
	}
	s.page.SetFillColor(c)

	var cur, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			cur = p.Coords[k]
			start = cur
			s.page.MoveTo(cur.X, cur.Y)
			k++
		case path.CmdLineTo:
			cur = p.Coords[k]
			s.page.LineTo(cur.X, cur.Y)
			k++
		case path.CmdQuadTo:
			q, end := p.Coords[k], p.Coords[k+1]
			c1 := cur.Add(q.Sub(cur).Mul(2.0 / 3))
			c2 := end.Add(q.Sub(end).Mul(2.0 / 3))
			s.page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
			cur = end
			k += 2
		case path.CmdCubeTo:
			c1, c2, end := p.Coords[k], p.Coords[k+1], p.Coords[k+2]
			s.page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
			cur = end
			k += 3
		case path.CmdClose:
			s.page.ClosePath()
			cur = start
		}
	}
	s.page.Fill()
}

// WriteFile renders content as a single page PDF file of size
// Geometry.Width × Geometry.Height points.
func WriteFile(fname, content string, cfg qrstyle.Config) error {
	sym, err := qrstyle.Prepare(content, cfg)
	if err != nil {
		return err
	}
	g := &sym.Geometry

	paper := &pdf.Rectangle{URx: float64(g.Width), URy: float64(g.Height)}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	s := NewSurface(page, g.Height)
	s.FillRect(image.Rect(0, 0, g.Width, g.Height), sym.Style.Background)
	sym.Draw(s)

	return page.Close()
}

// deviceRGB converts col to a PDF color, undoing the alpha
// premultiplication of the color.Color interface. The second return value
// is false if col is fully transparent.
func deviceRGB(col color.Color) (pdfcolor.DeviceRGB, bool) {
	r, g, b, a := col.RGBA()
	if a == 0 {
		return pdfcolor.DeviceRGB{}, false
	}
	fa := float64(a)
	return pdfcolor.DeviceRGB{float64(r) / fa, float64(g) / fa, float64(b) / fa}, true
}
