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

package raster

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// approaches forces each of the two fill strategies.
var approaches = []struct {
	name      string
	threshold int
}{
	{"small", 1 << 30},
	{"large", 0},
}

// polygon builds a closed polygonal path.
func polygon(pts ...vec.Vec2) *path.Data {
	p := &path.Data{}
	for i, pt := range pts {
		if i == 0 {
			p.Cmds = append(p.Cmds, path.CmdMoveTo)
		} else {
			p.Cmds = append(p.Cmds, path.CmdLineTo)
		}
		p.Coords = append(p.Coords, pt)
	}
	p.Cmds = append(p.Cmds, path.CmdClose)
	return p
}

func square(x, y, size float64, clockwise bool) []vec.Vec2 {
	pts := []vec.Vec2{{X: x, Y: y}, {X: x + size, Y: y}, {X: x + size, Y: y + size}, {X: x, Y: y + size}}
	if !clockwise {
		pts[1], pts[3] = pts[3], pts[1]
	}
	return pts
}

// render collects the coverage of one fill into a dense w×h buffer.
func render(r *Rasteriser, w, h int, fill func(*path.Data, func(int, int, []float32)), p *path.Data) []float32 {
	buf := make([]float32, w*h)
	fill(p, func(y, xMin int, coverage []float32) {
		copy(buf[y*w+xMin:], coverage)
	})
	return buf
}

// TestTriangleCoverage checks exact coverage for the triangle
// (0,0)→(10,0)→(10,1), whose diagonal is y = x/10: pixel X must have
// coverage (2X+1)/20.
func TestTriangleCoverage(t *testing.T) {
	tri := polygon(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 0}, vec.Vec2{X: 10, Y: 1})

	for _, ap := range approaches {
		t.Run(ap.name, func(t *testing.T) {
			r := NewRasteriser(rect.Rect{URx: 10, URy: 1})
			r.smallPathThreshold = ap.threshold
			got := render(r, 10, 1, r.FillNonZero, tri)

			for x := range 10 {
				want := float32(2*x+1) / 20
				if math.Abs(float64(got[x]-want)) > 1e-6 {
					t.Errorf("pixel %d: coverage %.4f, want %.4f", x, got[x], want)
				}
			}
		})
	}
}

// TestAlignedSquare checks that an integer-aligned square covers exactly
// its own pixels.
func TestAlignedSquare(t *testing.T) {
	const w, h = 12, 12
	sq := polygon(square(2, 3, 5, true)...)

	for _, ap := range approaches {
		t.Run(ap.name, func(t *testing.T) {
			r := NewRasteriser(rect.Rect{URx: w, URy: h})
			r.smallPathThreshold = ap.threshold
			got := render(r, w, h, r.FillNonZero, sq)

			for y := range h {
				for x := range w {
					want := float32(0)
					if x >= 2 && x < 7 && y >= 3 && y < 8 {
						want = 1
					}
					if got[y*w+x] != want {
						t.Fatalf("pixel (%d,%d): coverage %g, want %g", x, y, got[y*w+x], want)
					}
				}
			}
		})
	}
}

// TestFillRules fills two nested squares with the same orientation: the
// inner square is a hole under the even-odd rule only.
func TestFillRules(t *testing.T) {
	const w, h = 10, 10
	p := polygon(square(0, 0, 10, true)...)
	inner := polygon(square(3, 3, 4, true)...)
	p.Cmds = append(p.Cmds, inner.Cmds...)
	p.Coords = append(p.Coords, inner.Coords...)

	r := NewRasteriser(rect.Rect{URx: w, URy: h})
	nz := render(r, w, h, r.FillNonZero, p)
	eo := render(r, w, h, r.FillEvenOdd, p)

	if nz[5*w+5] != 1 {
		t.Errorf("nonzero: centre coverage %g, want 1", nz[5*w+5])
	}
	if eo[5*w+5] != 0 {
		t.Errorf("even-odd: centre coverage %g, want 0", eo[5*w+5])
	}
	if eo[1*w+1] != 1 {
		t.Errorf("even-odd: ring coverage %g, want 1", eo[1*w+1])
	}
}

// TestClip checks that no coverage is emitted outside the clip rectangle.
func TestClip(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 8, URy: 8})
	p := polygon(square(-20, -20, 60, true)...)
	r.FillNonZero(p, func(y, xMin int, coverage []float32) {
		if y < 0 || y >= 8 || xMin < 0 || xMin+len(coverage) > 8 {
			t.Errorf("row %d [%d, %d) outside clip", y, xMin, xMin+len(coverage))
		}
	})
}

// TestCubicCircle fills a circle made of four cubic arcs and compares the
// total coverage to the exact area.
func TestCubicCircle(t *testing.T) {
	const size = 64
	const k = 0.5522847498
	cx, cy, rad := 32.0, 32.0, 20.0
	kr := k * rad

	p := &path.Data{}
	p.Cmds = append(p.Cmds, path.CmdMoveTo, path.CmdCubeTo, path.CmdCubeTo, path.CmdCubeTo, path.CmdCubeTo, path.CmdClose)
	p.Coords = append(p.Coords,
		vec.Vec2{X: cx + rad, Y: cy},
		vec.Vec2{X: cx + rad, Y: cy + kr}, vec.Vec2{X: cx + kr, Y: cy + rad}, vec.Vec2{X: cx, Y: cy + rad},
		vec.Vec2{X: cx - kr, Y: cy + rad}, vec.Vec2{X: cx - rad, Y: cy + kr}, vec.Vec2{X: cx - rad, Y: cy},
		vec.Vec2{X: cx - rad, Y: cy - kr}, vec.Vec2{X: cx - kr, Y: cy - rad}, vec.Vec2{X: cx, Y: cy - rad},
		vec.Vec2{X: cx + kr, Y: cy - rad}, vec.Vec2{X: cx + rad, Y: cy - kr}, vec.Vec2{X: cx + rad, Y: cy},
	)

	for _, ap := range approaches {
		t.Run(ap.name, func(t *testing.T) {
			r := NewRasteriser(rect.Rect{URx: size, URy: size})
			r.smallPathThreshold = ap.threshold
			got := render(r, size, size, r.FillNonZero, p)

			var total float64
			for _, c := range got {
				total += float64(c)
			}
			want := math.Pi * rad * rad
			if math.Abs(total-want)/want > 0.02 {
				t.Errorf("area %.2f, want %.2f", total, want)
			}
		})
	}
}

func TestReuse(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 100, URy: 100})
	big := polygon(square(0, 0, 100, true)...)
	render(r, 100, 100, r.FillNonZero, big)

	r.Reset(rect.Rect{URx: 4, URy: 4})
	got := render(r, 4, 4, r.FillNonZero, polygon(square(1, 1, 2, false)...))
	for y := range 4 {
		for x := range 4 {
			want := float32(0)
			if x >= 1 && x < 3 && y >= 1 && y < 3 {
				want = 1
			}
			if got[y*4+x] != want {
				t.Errorf("pixel (%d,%d): coverage %g, want %g", x, y, got[y*4+x], want)
			}
		}
	}
}
