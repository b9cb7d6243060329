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

// Destination is a surface onto which [Grid.RenderTo] composites tiles.
// Coordinates are destination pixels.
type Destination interface {
	// ClearRect makes the pixels in r transparent.
	ClearRect(r image.Rectangle)

	// Blit copies the sr part of src to dp, unscaled and replacing the
	// destination pixels.
	Blit(dp image.Point, src image.Image, sr image.Rectangle)
}

// ImageDestination adapts a [draw.Image] to the [Destination] interface.
type ImageDestination struct {
	Image draw.Image
}

// ClearRect implements the [Destination] interface.
func (d ImageDestination) ClearRect(r image.Rectangle) {
	draw.Draw(d.Image, r, image.Transparent, image.Point{}, draw.Src)
}

// Blit implements the [Destination] interface.
func (d ImageDestination) Blit(dp image.Point, src image.Image, sr image.Rectangle) {
	draw.Copy(d.Image, dp, src, sr, draw.Src, nil)
}

// Blit describes the copy of one tile region to the destination.
type Blit struct {
	Tile TileID
	Src  image.Rectangle // in tile-local pixels
	Dst  image.Point     // destination position of Src.Min
}

// Plan computes the tile regions visible in the viewport with top-left
// corner (vx, vy) and size vw×vh, in row-major order.
// A viewport outside the canvas gives an empty plan.
func (g *Grid) Plan(vx, vy, vw, vh int) ([]Blit, error) {
	if g.closed {
		return nil, ErrUseAfterTeardown
	}
	if vw < 0 || vh < 0 {
		return nil, fmt.Errorf("%w: viewport %dx%d", ErrInvalidDimension, vw, vh)
	}
	rows, cols, ok := g.TileRange(vx, vy, vw, vh)
	if !ok {
		return nil, nil
	}

	var plan []Blit
	for row := rows[0]; row <= rows[1]; row++ {
		for col := cols[0]; col <= cols[1]; col++ {
			t := g.tile(TileID{Row: row, Col: col})
			sx := max(0, vx-t.Origin.X)
			sy := max(0, vy-t.Origin.Y)
			sw := min(t.Width()-sx, vw-(t.Origin.X+sx-vx))
			sh := min(t.Height()-sy, vh-(t.Origin.Y+sy-vy))
			if sw <= 0 || sh <= 0 {
				continue
			}
			plan = append(plan, Blit{
				Tile: t.ID,
				Src:  image.Rect(sx, sy, sx+sw, sy+sh),
				Dst:  image.Pt(t.Origin.X+sx-vx, t.Origin.Y+sy-vy),
			})
		}
	}
	return plan, nil
}

// RenderTo clears the region (0,0)-(vw,vh) of dst and copies the visible
// part of every tile into it, so that dst shows the canvas area with
// top-left corner (vx, vy).
func (g *Grid) RenderTo(dst Destination, vx, vy, vw, vh int) error {
	plan, err := g.Plan(vx, vy, vw, vh)
	if err != nil {
		return err
	}
	dst.ClearRect(image.Rect(0, 0, vw, vh))
	for _, b := range plan {
		dst.Blit(b.Dst, g.tile(b.Tile).img, b.Src)
	}
	Logger().Debug("render",
		"x", vx, "y", vy, "width", vw, "height", vh, "blits", len(plan))
	return nil
}
