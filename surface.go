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
)

// SurfacePool provides the rasters backing the tiles of a grid and the
// full size raster returned by [Grid.Flatten].
type SurfacePool interface {
	// Acquire returns a raster with bounds (0,0)-(width,height).
	Acquire(width, height int) (*image.RGBA, error)

	// Release returns a raster obtained from Acquire. The caller must not
	// use img afterwards.
	Release(img *image.RGBA)
}

// Limits for a single raster surface, matching the canvas size limits of
// common browsers.
const (
	DefaultMaxSurfaceSide   = 32767
	DefaultMaxSurfacePixels = 268435456
)

// Limits for the whole canvas.
const (
	DefaultMaxCanvasPixels = 1 << 36
	DefaultMaxTiles        = 1 << 20
)

// HeapPool allocates rasters on the Go heap.
// Released rasters are left to the garbage collector.
type HeapPool struct{}

// Acquire implements the [SurfacePool] interface.
func (HeapPool) Acquire(width, height int) (img *image.RGBA, err error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid raster size %dx%d", width, height)
	}
	// image.NewRGBA panics when the buffer size overflows
	defer func() {
		if r := recover(); r != nil {
			img = nil
			err = fmt.Errorf("allocating %dx%d raster: %v", width, height, r)
		}
	}()
	return image.NewRGBA(image.Rect(0, 0, width, height)), nil
}

// Release implements the [SurfacePool] interface.
func (HeapPool) Release(*image.RGBA) {}

// checkSurface verifies that a width×height raster lies within the limits.
func (c *config) checkSurface(width, height int) error {
	if width > c.maxSide || height > c.maxSide {
		return fmt.Errorf("%dx%d raster exceeds the maximum side length %d",
			width, height, c.maxSide)
	}
	if int64(width)*int64(height) > int64(c.maxPixels) {
		return fmt.Errorf("%dx%d raster exceeds the maximum area of %d pixels",
			width, height, c.maxPixels)
	}
	return nil
}

// checkCanvas verifies that a width×height canvas split into rows×cols
// tiles lies within the limits. All arguments must be positive.
func (c *config) checkCanvas(width, height, rows, cols int) error {
	if int64(width) > c.maxCanvasPixels/int64(height) {
		return fmt.Errorf("%dx%d canvas exceeds the maximum area of %d pixels",
			width, height, c.maxCanvasPixels)
	}
	if rows > c.maxTiles/cols {
		return fmt.Errorf("%dx%d tiles exceed the maximum of %d tiles",
			rows, cols, c.maxTiles)
	}
	return nil
}

// acquire obtains a cleared width×height raster from the pool.
func (c *config) acquire(width, height int) (*image.RGBA, error) {
	if err := c.checkSurface(width, height); err != nil {
		return nil, err
	}
	img, err := c.pool.Acquire(width, height)
	if err != nil {
		return nil, err
	}
	if img == nil || img.Bounds() != image.Rect(0, 0, width, height) {
		if img != nil {
			c.pool.Release(img)
		}
		return nil, fmt.Errorf("pool returned a raster of the wrong size for %dx%d", width, height)
	}
	clear(img.Pix)
	return img, nil
}
