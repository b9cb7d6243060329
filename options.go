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

// Option configures a [Grid] during creation.
//
// Example:
//
//	g, err := vcanvas.New(500, 10000, 500,
//		vcanvas.WithMaxSurfacePixels(1<<24))
type Option func(*config)

type config struct {
	pool      SurfacePool
	maxSide   int
	maxPixels int

	maxCanvasPixels int64
	maxTiles        int
}

func defaultConfig() config {
	return config{
		pool:      HeapPool{},
		maxSide:   DefaultMaxSurfaceSide,
		maxPixels: DefaultMaxSurfacePixels,

		maxCanvasPixels: DefaultMaxCanvasPixels,
		maxTiles:        DefaultMaxTiles,
	}
}

// WithSurfacePool sets the pool which provides the tile rasters and the
// export raster. A nil pool selects [HeapPool].
func WithSurfacePool(p SurfacePool) Option {
	return func(c *config) {
		if p == nil {
			p = HeapPool{}
		}
		c.pool = p
	}
}

// WithMaxSurfaceSide limits the width and height of every raster the grid
// allocates. Values n ≤ 0 restore [DefaultMaxSurfaceSide].
func WithMaxSurfaceSide(n int) Option {
	return func(c *config) {
		if n <= 0 {
			n = DefaultMaxSurfaceSide
		}
		c.maxSide = n
	}
}

// WithMaxSurfacePixels limits the area of every raster the grid allocates.
// Values n ≤ 0 restore [DefaultMaxSurfacePixels].
func WithMaxSurfacePixels(n int) Option {
	return func(c *config) {
		if n <= 0 {
			n = DefaultMaxSurfacePixels
		}
		c.maxPixels = n
	}
}

// WithMaxCanvasPixels limits the logical area of the canvas.
// Values n ≤ 0 restore [DefaultMaxCanvasPixels].
func WithMaxCanvasPixels(n int64) Option {
	return func(c *config) {
		if n <= 0 {
			n = DefaultMaxCanvasPixels
		}
		c.maxCanvasPixels = n
	}
}

// WithMaxTiles limits the number of tiles of the grid.
// Values n ≤ 0 restore [DefaultMaxTiles].
func WithMaxTiles(n int) Option {
	return func(c *config) {
		if n <= 0 {
			n = DefaultMaxTiles
		}
		c.maxTiles = n
	}
}
