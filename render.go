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

// Package qrstyle renders QR codes with square dot modules and rounded
// finder patterns, centred on a canvas of a requested size.
package qrstyle

//go:generate go run ./testcases/export

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"unicode/utf16"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/qrstyle/raster"
)

var (
	// ErrInvalidConfiguration is returned when the requested canvas size
	// is not positive.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrEncodingUnavailable is returned when the content cannot be
	// encoded as a QR code.
	ErrEncodingUnavailable = errors.New("encoding unavailable")
)

// Surface is a drawing target for a styled QR code.
// Coordinates are in pixels, with the origin at the top-left corner and
// y pointing down.
type Surface interface {
	FillRect(r image.Rectangle, col color.Color)
	FillPath(p *path.Data, col color.Color)
}

// Style holds the two colors a symbol is drawn with.
type Style struct {
	Foreground color.Color
	Background color.Color
}

// Config describes a render request.
type Config struct {
	// Width and Height give the minimum size of the output canvas.
	// Both must be positive.
	Width, Height int

	// Foreground is the color of dark modules. If nil, opaque black is used.
	Foreground color.Color

	// Background fills the canvas and the gap inside the finder patterns.
	// If nil, opaque white is used.
	Background color.Color

	// Encoder converts the content into a module grid. If nil,
	// DefaultEncoder is used.
	Encoder Encoder
}

func (cfg *Config) style() Style {
	st := Style{Foreground: cfg.Foreground, Background: cfg.Background}
	if st.Foreground == nil {
		st.Foreground = color.Black
	}
	if st.Background == nil {
		st.Background = color.White
	}
	return st
}

// Symbol is an encoded QR code together with its placement on the canvas.
type Symbol struct {
	Grid     *ModuleGrid
	Geometry Geometry
	Style    Style
}

// Prepare checks cfg, encodes content and computes the layout.
func Prepare(content string, cfg Config) (*Symbol, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("qrstyle: canvas size %dx%d: %w",
			cfg.Width, cfg.Height, ErrInvalidConfiguration)
	}

	enc := cfg.Encoder
	if enc == nil {
		enc = DefaultEncoder
	}
	grid, err := enc.Encode(content)
	if err != nil {
		return nil, fmt.Errorf("qrstyle: %w: %w", ErrEncodingUnavailable, err)
	}
	if grid == nil || grid.Size() == 0 {
		return nil, fmt.Errorf("qrstyle: encoder returned no modules: %w", ErrEncodingUnavailable)
	}

	geom := ComputeGeometry(grid.Size(), contentLength(content), cfg.Width, cfg.Height)
	sym := &Symbol{
		Grid:     grid,
		Geometry: geom,
		Style:    cfg.style(),
	}
	return sym, nil
}

// contentLength returns the length of s in UTF-16 code units. This is the
// length the quiet zone is derived from: characters outside the Basic
// Multilingual Plane count twice.
func contentLength(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// Draw paints the dot modules and then the finder patterns onto s.
// The background is not painted.
func (sym *Symbol) Draw(s Surface) {
	drawModules(s, sym.Grid, &sym.Geometry, sym.Style)
	drawFinders(s, &sym.Geometry, sym.Style)
}

// Render encodes content and draws it onto a new image of size
// Geometry.Width × Geometry.Height, filled with the background color.
func Render(content string, cfg Config) (*image.RGBA, error) {
	sym, err := Prepare(content, cfg)
	if err != nil {
		return nil, err
	}
	return sym.Image(), nil
}

// Image draws the symbol onto a new image filled with the background color.
func (sym *Symbol) Image() *image.RGBA {
	c := raster.NewCanvas(sym.Geometry.Width, sym.Geometry.Height, sym.Style.Background)
	sym.Draw(c)
	return c.Image()
}
