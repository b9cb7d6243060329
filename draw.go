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
	"errors"
	"fmt"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/vcanvas/raster"
)

// Mode selects whether tiles are cleared before they are painted.
type Mode int

const (
	// RepaintAll clears each tile immediately before its painter runs.
	RepaintAll Mode = iota

	// Overlay keeps the existing tile content.
	Overlay

	// ChunkedAppend is the mode of path drawing through [DrawPath] and
	// [Grid.DrawChunks]: tiles are never cleared. [Grid.Draw] does not
	// accept this mode.
	ChunkedAppend
)

func (m Mode) String() string {
	switch m {
	case RepaintAll:
		return "repaint-all"
	case Overlay:
		return "overlay"
	case ChunkedAppend:
		return "chunked-append"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// TilePainter paints onto one tile.
type TilePainter func(ctx *raster.Context, id TileID) error

// PathPainter paints the part of a path which falls into one tile.
// The chunk coordinates are tile-local.
type PathPainter func(ctx *raster.Context, c *Chunk) error

var errForeignChunks = errors.New("vcanvas: chunk map belongs to a different grid")

// Draw calls paint once for every tile, in row-major order, with the
// tile's context in tile-local coordinates. The graphics state is saved
// before and restored after every call.
//
// If paint returns an error, the iteration stops and the error is
// returned.
func (g *Grid) Draw(mode Mode, paint TilePainter) error {
	return g.draw(mode, false, paint)
}

// DrawLogical is like [Grid.Draw], but the context of every tile is set up
// so that paint can use logical coordinates. Each tile receives the part of
// the drawing which falls inside it.
func (g *Grid) DrawLogical(mode Mode, paint TilePainter) error {
	return g.draw(mode, true, paint)
}

func (g *Grid) draw(mode Mode, logical bool, paint TilePainter) error {
	if g.closed {
		return ErrUseAfterTeardown
	}
	if mode != RepaintAll && mode != Overlay {
		return fmt.Errorf("%w: %s", ErrInvalidMode, mode)
	}
	for _, t := range g.tiles {
		if mode == RepaintAll {
			t.ctx.Clear()
		}
		t.ctx.Save()
		if logical {
			t.ctx.Translate(-float64(t.Origin.X), -float64(t.Origin.Y))
		}
		err := paint(t.ctx, t.ID)
		t.ctx.Restore()
		if err != nil {
			return fmt.Errorf("tile %s: %w", t.ID, err)
		}
	}
	return nil
}

// DrawPath splits the path into per-tile chunks and calls paint once for
// every tile the path touches, in the order the path first enters the
// tiles. Tiles are not cleared. The chunk map is returned so that callers
// can inspect skipped and outside points.
func DrawPath[T any](g *Grid, data []T, x, y Selector[T], paint PathPainter, opts ...ChunkOption) (*ChunkMap, error) {
	m, err := ChunkPath(g, data, x, y, opts...)
	if err != nil {
		return nil, err
	}
	if err := g.DrawChunks(m, paint); err != nil {
		return m, err
	}
	return m, nil
}

// DrawChunks calls paint for every chunk of m, in the order the path
// first enters the tiles. The graphics state is saved before and restored
// after every call.
func (g *Grid) DrawChunks(m *ChunkMap, paint PathPainter) error {
	if g.closed {
		return ErrUseAfterTeardown
	}
	if m.grid != g {
		return errForeignChunks
	}
	for id, c := range m.All() {
		ctx := g.tile(id).ctx
		ctx.Save()
		err := paint(ctx, c)
		ctx.Restore()
		if err != nil {
			return fmt.Errorf("tile %s: %w", id, err)
		}
	}
	return nil
}

// ContextAt returns the context of the tile containing the logical point
// (x, y), together with the point in tile-local coordinates.
func (g *Grid) ContextAt(x, y float64) (*raster.Context, vec.Vec2, error) {
	if g.closed {
		return nil, vec.Vec2{}, ErrUseAfterTeardown
	}
	loc, ok := g.Locate(x, y)
	if !ok {
		return nil, vec.Vec2{}, fmt.Errorf("%w: (%g,%g) on a %dx%d canvas",
			ErrOutOfBounds, x, y, g.width, g.height)
	}
	return g.tile(loc.Tile).ctx, loc.Local, nil
}
