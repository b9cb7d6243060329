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

// Package vcanvas implements a virtual canvas for drawing surfaces which
// are too large for a single raster.
//
// A [Grid] splits a logical Width×Height surface into square tiles of a
// fixed size. Every tile has its own raster and its own
// [raster.Context]. Drawing happens either per tile ([Grid.Draw],
// [Grid.DrawLogical]), along paths which are split into per-tile chunks
// ([DrawPath], [ChunkPath]), or at single points ([Grid.ContextAt]).
//
// [Grid.RenderTo] copies the tiles visible in a viewport onto a
// [Destination], so that the result is identical to the corresponding
// part of one large raster. [Grid.Flatten] assembles the whole canvas for
// export; package [seehuhn.de/go/vcanvas/export] encodes the result.
//
// A minimal session:
//
//	g, err := vcanvas.New(500, 10000, 500)
//	if err != nil {
//		return err
//	}
//	defer g.Close()
//
//	err = g.DrawLogical(vcanvas.RepaintAll, func(ctx *raster.Context, _ vcanvas.TileID) error {
//		ctx.FillColor = colornames.Blue
//		ctx.FillRect(0, 0, 100, 600)
//		return nil
//	})
//
//	view := image.NewRGBA(image.Rect(0, 0, 500, 800))
//	err = g.RenderTo(vcanvas.ImageDestination{Image: view}, 0, 300, 500, 800)
package vcanvas

//go:generate go run ./testcases/genpdf
