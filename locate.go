// seehuhn.de/go/vcanvas - a tiled virtual canvas for very large surfaces
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

package vcanvas

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Location is a position on the canvas, expressed relative to the tile
// containing it.
type Location struct {
	Tile  TileID
	Local vec.Vec2
}

// Locate finds the tile containing the logical point (x, y) and the
// point's position relative to the tile origin.
// The second return value is false if the point lies outside
// [0,Width)×[0,Height) or if the grid is closed.
func (g *Grid) Locate(x, y float64) (Location, bool) {
	if g.closed {
		return Location{}, false
	}
	// the negated comparisons also reject NaN
	if !(x >= 0 && x < float64(g.width) && y >= 0 && y < float64(g.height)) {
		return Location{}, false
	}
	s := float64(g.tileSize)
	col := min(int(math.Floor(x/s)), g.cols-1)
	row := min(int(math.Floor(y/s)), g.rows-1)
	return Location{
		Tile: TileID{Row: row, Col: col},
		Local: vec.Vec2{
			X: x - float64(col*g.tileSize),
			Y: y - float64(row*g.tileSize),
		},
	}, true
}

// origin returns the logical position of a tile's top-left corner.
func (g *Grid) origin(id TileID) vec.Vec2 {
	return vec.Vec2{
		X: float64(id.Col * g.tileSize),
		Y: float64(id.Row * g.tileSize),
	}
}

// TileRange returns the inclusive ranges of tile rows and columns which
// overlap the rectangle with top-left corner (x, y) and size w×h.
// ok is false if the rectangle does not overlap the canvas.
func (g *Grid) TileRange(x, y, w, h int) (rows, cols [2]int, ok bool) {
	if w <= 0 || h <= 0 {
		return rows, cols, false
	}
	// clamp before adding, so that x+w and y+h cannot overflow
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := g.width, g.height
	if x <= g.width-w {
		x1 = x + w
	}
	if y <= g.height-h {
		y1 = y + h
	}
	if x0 >= x1 || y0 >= y1 {
		return rows, cols, false
	}
	s := g.tileSize
	rows = [2]int{y0 / s, (y1 - 1) / s}
	cols = [2]int{x0 / s, (x1 - 1) / s}
	return rows, cols, true
}
