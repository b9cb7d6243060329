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
	"fmt"
	"image"
	"iter"

	"seehuhn.de/go/vcanvas/raster"
)

// DefaultTileSize is the tile edge length used by most callers.
// Tiles of this size stay well within the raster limits of [HeapPool].
const DefaultTileSize = 4096

// TileID identifies a tile by its position in the grid.
type TileID struct {
	Row, Col int
}

func (id TileID) String() string {
	return fmt.Sprintf("(%d,%d)", id.Row, id.Col)
}

// Tile is one cell of a [Grid]. Each tile owns its raster and the drawing
// context bound to it.
type Tile struct {
	ID TileID

	// Origin is the position of the tile's top-left pixel in logical
	// coordinates.
	Origin image.Point

	size image.Point
	img  *image.RGBA
	ctx *raster.Context
}

// Width returns the width of the tile in pixels.
func (t *Tile) Width() int { return t.size.X }

// Height returns the height of the tile in pixels.
func (t *Tile) Height() int { return t.size.Y }

// Bounds returns the area covered by the tile, in logical coordinates.
func (t *Tile) Bounds() image.Rectangle {
	return image.Rectangle{Min: t.Origin, Max: t.Origin.Add(t.size)}
}

// Image returns the raster of the tile. Pixel (0,0) of the raster is
// located at Origin on the logical surface.
// After [Grid.Close] the result is nil.
func (t *Tile) Image() *image.RGBA { return t.img }

// Context returns the drawing context of the tile, which uses tile-local
// coordinates.
// After [Grid.Close] the result is nil.
func (t *Tile) Context() *raster.Context { return t.ctx }

// Grid is a virtual canvas of Width×Height pixels, stored as a grid of
// square tiles. Edge tiles are clipped to the canvas size.
//
// A Grid is not safe for concurrent drawing. Read-only operations, such as
// [Grid.Plan], [Grid.RenderTo] and [Grid.Flatten], may run concurrently
// while nothing is drawn.
type Grid struct {
	width, height int
	tileSize      int
	rows, cols    int

	tiles  []*Tile // row-major
	cfg    config
	closed bool
}

// New allocates a grid for a width×height canvas with the given tile size.
func New(width, height, tileSize int, opts ...Option) (*Grid, error) {
	if width <= 0 || height <= 0 || tileSize <= 0 {
		return nil, fmt.Errorf("%w: %dx%d canvas with tile size %d",
			ErrInvalidDimension, width, height, tileSize)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Grid{
		width:    width,
		height:   height,
		tileSize: tileSize,
		rows:     ceilDiv(height, tileSize),
		cols:     ceilDiv(width, tileSize),
		cfg:      cfg,
	}
	if err := cfg.checkCanvas(width, height, g.rows, g.cols); err != nil {
		Logger().Warn("canvas too large",
			"width", width, "height", height, "tileSize", tileSize, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrSurfaceAllocation, err)
	}
	g.tiles = make([]*Tile, 0, g.rows*g.cols)
	for row := range g.rows {
		for col := range g.cols {
			x, y := col*tileSize, row*tileSize
			w := min(tileSize, width-x)
			h := min(tileSize, height-y)

			img, err := cfg.acquire(w, h)
			if err != nil {
				Logger().Warn("tile allocation failed",
					"row", row, "col", col, "width", w, "height", h, "error", err)
				g.release()
				return nil, fmt.Errorf("%w: tile (%d,%d): %w", ErrSurfaceAllocation, row, col, err)
			}
			g.tiles = append(g.tiles, &Tile{
				ID:     TileID{Row: row, Col: col},
				Origin: image.Pt(x, y),
				size:   image.Pt(w, h),
				img:    img,
				ctx:    raster.NewContext(img),
			})
		}
	}

	Logger().Debug("grid created",
		"width", width, "height", height, "tileSize", tileSize,
		"rows", g.rows, "cols", g.cols)
	return g, nil
}

func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 {
		q++
	}
	return q
}

// Width returns the logical width of the canvas.
func (g *Grid) Width() int { return g.width }

// Height returns the logical height of the canvas.
func (g *Grid) Height() int { return g.height }

// TileSize returns the edge length of a full tile.
func (g *Grid) TileSize() int { return g.tileSize }

// Rows returns the number of tile rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of tile columns.
func (g *Grid) Cols() int { return g.cols }

// Bounds returns the logical area of the canvas.
func (g *Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.width, g.height)
}

// Pool returns the surface pool of the grid.
func (g *Grid) Pool() SurfacePool { return g.cfg.pool }

// Tile returns the tile at the given grid position.
func (g *Grid) Tile(row, col int) (*Tile, error) {
	if g.closed {
		return nil, ErrUseAfterTeardown
	}
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return nil, fmt.Errorf("%w: tile (%d,%d) of a %dx%d grid",
			ErrOutOfBounds, row, col, g.rows, g.cols)
	}
	return g.tile(TileID{Row: row, Col: col}), nil
}

func (g *Grid) tile(id TileID) *Tile {
	return g.tiles[id.Row*g.cols+id.Col]
}

// Tiles iterates over all tiles in row-major order.
// The sequence is empty once the grid is closed.
func (g *Grid) Tiles() iter.Seq[*Tile] {
	return func(yield func(*Tile) bool) {
		if g.closed {
			return
		}
		for _, t := range g.tiles {
			if !yield(t) {
				return
			}
		}
	}
}

// Clear makes every tile transparent. The tile rasters are kept.
func (g *Grid) Clear() error {
	if g.closed {
		return ErrUseAfterTeardown
	}
	for _, t := range g.tiles {
		t.ctx.Clear()
	}
	return nil
}

// Close releases all tile rasters to the surface pool. Afterwards every
// operation on the grid fails with [ErrUseAfterTeardown], apart from the
// dimension accessors. Calling Close again has no effect.
func (g *Grid) Close() error {
	if g.closed {
		return nil
	}
	n := len(g.tiles)
	g.release()
	g.closed = true
	Logger().Debug("grid closed", "tiles", n)
	return nil
}

func (g *Grid) release() {
	for _, t := range g.tiles {
		g.cfg.pool.Release(t.img)
		t.img = nil
		t.ctx = nil
	}
	g.tiles = nil
}
