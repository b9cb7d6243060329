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

	"golang.org/x/image/draw"
)

// Flatten composites all tiles into a single raster of the canvas size.
// The raster is obtained from the grid's [SurfacePool]; callers may hand
// it back through Pool().Release once it has been encoded.
func (g *Grid) Flatten() (*image.RGBA, error) {
	if g.closed {
		return nil, ErrUseAfterTeardown
	}
	img, err := g.cfg.acquire(g.width, g.height)
	if err != nil {
		Logger().Warn("export allocation failed",
			"width", g.width, "height", g.height, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrExportAllocation, err)
	}
	for _, t := range g.tiles {
		draw.Draw(img, t.Bounds(), t.img, image.Point{}, draw.Src)
	}
	return img, nil
}
