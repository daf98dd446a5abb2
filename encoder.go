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
	"image/color"
	"maps"
	"slices"

	bqr "github.com/boombuler/barcode/qr"
	"github.com/skip2/go-qrcode"
	rscqr "rsc.io/qr"
)

// An Encoder turns text into a QR code module grid, without quiet zone.
// All encoders in this package use the highest error correction level.
type Encoder interface {
	Encode(content string) (*ModuleGrid, error)
}

// DefaultEncoder is used when Config.Encoder is nil.
var DefaultEncoder Encoder = Skip2Encoder{}

// Skip2Encoder encodes using github.com/skip2/go-qrcode.
// go-qrcode refuses empty content, so the empty string is passed on to
// RSCEncoder, which produces a version 1 symbol.
type Skip2Encoder struct{}

// Encode implements the Encoder interface.
func (Skip2Encoder) Encode(content string) (*ModuleGrid, error) {
	if content == "" {
		return RSCEncoder{}.Encode(content)
	}
	q, err := qrcode.New(content, qrcode.Highest)
	if err != nil {
		return nil, err
	}
	q.DisableBorder = true
	return NewModuleGrid(q.Bitmap())
}

// RSCEncoder encodes using rsc.io/qr.
type RSCEncoder struct{}

// Encode implements the Encoder interface.
func (RSCEncoder) Encode(content string) (*ModuleGrid, error) {
	code, err := rscqr.Encode(content, rscqr.H)
	if err != nil {
		return nil, err
	}

	rows := make([][]bool, code.Size)
	for y := range rows {
		rows[y] = make([]bool, code.Size)
		for x := range rows[y] {
			rows[y][x] = code.Black(x, y)
		}
	}
	return NewModuleGrid(rows)
}

// BoombulerEncoder encodes using github.com/boombuler/barcode/qr, always
// in byte mode so that arbitrary UTF-8 text is accepted.
type BoombulerEncoder struct{}

// Encode implements the Encoder interface.
func (BoombulerEncoder) Encode(content string) (*ModuleGrid, error) {
	code, err := bqr.Encode(content, bqr.H, bqr.Unicode)
	if err != nil {
		return nil, err
	}

	b := code.Bounds()
	rows := make([][]bool, b.Dy())
	for y := range rows {
		rows[y] = make([]bool, b.Dx())
		for x := range rows[y] {
			g := color.GrayModel.Convert(code.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			rows[y][x] = g.Y < 0x80
		}
	}
	return NewModuleGrid(rows)
}

var encoders = map[string]Encoder{
	"skip2":     Skip2Encoder{},
	"rsc":       RSCEncoder{},
	"boombuler": BoombulerEncoder{},
}

// EncoderNames lists the names accepted by EncoderByName, sorted.
func EncoderNames() []string {
	return slices.Sorted(maps.Keys(encoders))
}

// EncoderByName returns the encoder with the given name.
// See EncoderNames for the list of valid names.
func EncoderByName(name string) (Encoder, error) {
	enc, ok := encoders[name]
	if !ok {
		return nil, fmt.Errorf("qrstyle: unknown encoder %q", name)
	}
	return enc, nil
}
