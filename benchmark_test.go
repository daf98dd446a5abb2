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
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/qrstyle/raster"
)

// vectorSurface draws using golang.org/x/image/vector.
type vectorSurface struct {
	img *image.RGBA
	r   *vector.Rasterizer
}

func newVectorSurface(w, h int, bg color.Color) *vectorSurface {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)
	return &vectorSurface{img: img, r: vector.NewRasterizer(w, h)}
}

func (s *vectorSurface) FillRect(r image.Rectangle, col color.Color) {
	draw.Draw(s.img, r.Intersect(s.img.Rect), &image.Uniform{C: col}, image.Point{}, draw.Over)
}

func (s *vectorSurface) FillPath(p *path.Data, col color.Color) {
	b := s.img.Bounds()
	s.r.Reset(b.Dx(), b.Dy())

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			s.r.MoveTo(float32(p.Coords[k].X), float32(p.Coords[k].Y))
			k++
		case path.CmdLineTo:
			s.r.LineTo(float32(p.Coords[k].X), float32(p.Coords[k].Y))
			k++
		case path.CmdQuadTo:
			q, e := p.Coords[k], p.Coords[k+1]
			s.r.QuadTo(float32(q.X), float32(q.Y), float32(e.X), float32(e.Y))
			k += 2
		case path.CmdCubeTo:
			c1, c2, e := p.Coords[k], p.Coords[k+1], p.Coords[k+2]
			s.r.CubeTo(float32(c1.X), float32(c1.Y), float32(c2.X), float32(c2.Y), float32(e.X), float32(e.Y))
			k += 3
		case path.CmdClose:
			s.r.ClosePath()
		}
	}
	s.r.Draw(s.img, b, &image.Uniform{C: col}, image.Point{})
}

// TestAgainstVector compares the output of raster.Canvas with the
// output of x/image/vector for the same symbol.
func TestAgainstVector(t *testing.T) {
	for _, size := range []int{97, 430, 1000} {
		t.Run(fmt.Sprintf("%d", size), func(t *testing.T) {
			cfg := Config{Width: size, Height: size}
			sym, err := Prepare("https://seehuhn.de/", cfg)
			if err != nil {
				t.Fatal(err)
			}
			if sym.Geometry.LeftPadding < sym.Geometry.Point {
				t.Skip("symbol does not fit the canvas")
			}

			got := sym.Image()
			ref := newVectorSurface(size, size, sym.Style.Background)
			sym.Draw(ref)

			bad := 0
			for i := range got.Pix {
				d := int(got.Pix[i]) - int(ref.img.Pix[i])
				if d < -32 || d > 32 {
					bad++
				}
			}
			// the two rasterisers flatten curves differently, so only
			// pixels along the arcs may differ
			if bad > len(got.Pix)/400 {
				t.Errorf("%d of %d channel values differ", bad, len(got.Pix))
			}
		})
	}
}

func BenchmarkRender(b *testing.B) {
	sizes := []int{200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			cfg := Config{Width: size, Height: size}
			b.ReportAllocs()
			for b.Loop() {
				if _, err := Render("https://seehuhn.de/", cfg); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkFindersRaster draws the finder patterns on a raster.Canvas.
func BenchmarkFindersRaster(b *testing.B) {
	sizes := []int{200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			g := ComputeGeometry(29, 19, size, size)
			st := Style{Foreground: color.Black, Background: color.White}
			c := raster.NewCanvas(size, size, color.White)

			b.ReportAllocs()
			for b.Loop() {
				drawFinders(c, &g, st)
			}
		})
	}
}

// BenchmarkFindersVector draws the finder patterns using x/image/vector.
func BenchmarkFindersVector(b *testing.B) {
	sizes := []int{200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			g := ComputeGeometry(29, 19, size, size)
			st := Style{Foreground: color.Black, Background: color.White}
			s := newVectorSurface(size, size, color.White)

			b.ReportAllocs()
			for b.Loop() {
				drawFinders(s, &g, st)
			}
		})
	}
}
