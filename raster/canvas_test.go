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
	"image"
	"image/color"
	"testing"

	"seehuhn.de/go/geom/vec"
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	red   = color.RGBA{R: 255, A: 255}
)

func TestNewCanvas(t *testing.T) {
	c := NewCanvas(7, 5, white)
	img := c.Image()
	if img.Bounds() != image.Rect(0, 0, 7, 5) {
		t.Fatalf("bounds %v", img.Bounds())
	}
	if got := img.RGBAAt(6, 4); got != white {
		t.Errorf("background %v, want %v", got, white)
	}

	empty := NewCanvas(3, 3, nil)
	if got := empty.Image().RGBAAt(1, 1); got != (color.RGBA{}) {
		t.Errorf("nil background gives %v, want transparent", got)
	}
}

func TestFillRect(t *testing.T) {
	c := NewCanvas(10, 10, white)
	c.FillRect(image.Rect(8, -3, 14, 2), red) // partly outside
	img := c.Image()

	for y := range 10 {
		for x := range 10 {
			want := white
			if x >= 8 && y < 2 {
				want = red
			}
			if got := img.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}

	c.FillRect(image.Rect(20, 20, 30, 30), red) // fully outside, no panic
}

func TestFillPath(t *testing.T) {
	c := NewCanvas(10, 10, white)
	c.FillPath(polygon(square(2, 2, 4, true)...), red)
	img := c.Image()

	if got := img.RGBAAt(3, 3); got != red {
		t.Errorf("inside: %v, want %v", got, red)
	}
	if got := img.RGBAAt(7, 7); got != white {
		t.Errorf("outside: %v, want %v", got, white)
	}
}

// TestFillPathPartial checks source-over blending for half-covered pixels.
func TestFillPathPartial(t *testing.T) {
	c := NewCanvas(4, 1, white)
	c.FillPath(polygon(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 1.5, Y: 0}, vec.Vec2{X: 1.5, Y: 1}, vec.Vec2{X: 0, Y: 1}), red)
	got := c.Image().RGBAAt(1, 0)

	if got.R != 255 || got.A != 255 {
		t.Errorf("blended pixel %v: red and alpha must stay saturated", got)
	}
	if got.G < 120 || got.G > 135 {
		t.Errorf("blended pixel %v: green %d, want about 128", got, got.G)
	}
}
