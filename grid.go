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
	"errors"
	"fmt"
)

// ModuleGrid is a square grid of QR code modules, without quiet zone.
// A ModuleGrid is immutable.
type ModuleGrid struct {
	side int
	dark []bool // row-major
}

// NewModuleGrid copies rows into a new grid. rows[y][x] is true for a dark
// module. The rows must form a non-empty square.
func NewModuleGrid(rows [][]bool) (*ModuleGrid, error) {
	n := len(rows)
	if n == 0 {
		return nil, errors.New("qrstyle: empty module grid")
	}

	g := &ModuleGrid{side: n, dark: make([]bool, 0, n*n)}
	for y, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("qrstyle: grid row %d has %d modules, want %d", y, len(row), n)
		}
		g.dark = append(g.dark, row...)
	}
	return g, nil
}

// Size returns the number of modules along each side.
func (g *ModuleGrid) Size() int {
	return g.side
}

// Dark reports whether module (x, y) is dark. Modules outside the grid
// are light.
func (g *ModuleGrid) Dark(x, y int) bool {
	if x < 0 || y < 0 || x >= g.side || y >= g.side {
		return false
	}
	return g.dark[y*g.side+x]
}
