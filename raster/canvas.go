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

// Package raster draws filled rectangles and anti-aliased filled paths
// into an RGBA pixel buffer.
package raster

import (
	"image"
	"image/color"
	"image/draw"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
)

// Canvas is an RGBA pixel buffer with fill operations.
// Paint colors are given per call; a Canvas keeps no paint state.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	img *image.RGBA
	r   *Rasteriser
}

// NewCanvas allocates a width×height canvas. If bg is non-nil, every pixel
// is set to bg, otherwise the canvas starts out transparent.
func NewCanvas(width, height int, bg color.Color) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if bg != nil {
		draw.Draw(img, img.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)
	}
	clip := rect.Rect{URx: float64(width), URy: float64(height)}
	return &Canvas{img: img, r: NewRasteriser(clip)}
}

// Image returns the underlying pixel buffer.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// FillRect paints the pixels of rectangle r, clipped to the canvas,
// with col composited source-over.
func (c *Canvas) FillRect(r image.Rectangle, col color.Color) {
	r = r.Intersect(c.img.Rect)
	if r.Empty() {
		return
	}
	draw.Draw(c.img, r, &image.Uniform{C: col}, image.Point{}, draw.Over)
}

// FillPath fills p using the nonzero winding rule and composites col
// source-over, weighted by pixel coverage.
func (c *Canvas) FillPath(p *path.Data, col color.Color) {
	const m = 1<<16 - 1
	sr, sg, sb, sa := col.RGBA()

	c.r.FillNonZero(p, func(y, xMin int, coverage []float32) {
		i := c.img.PixOffset(xMin, y)
		row := c.img.Pix[i : i+4*len(coverage) : i+4*len(coverage)]
		for j, cov := range coverage {
			ma := uint32(cov*m + 0.5)
			if ma == 0 {
				continue
			}
			a := (m - sa*ma/m) * 0x101
			px := row[4*j : 4*j+4 : 4*j+4]
			px[0] = uint8((uint32(px[0])*a/m + sr*ma/m) >> 8)
			px[1] = uint8((uint32(px[1])*a/m + sg*ma/m) >> 8)
			px[2] = uint8((uint32(px[2])*a/m + sb*ma/m) >> 8)
			px[3] = uint8((uint32(px[3])*a/m + sa*ma/m) >> 8)
		}
	})
}
