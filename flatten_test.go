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
	"image/color"
	"testing"

	"seehuhn.de/go/vcanvas/raster"
)

func TestFlattenTwoTiles(t *testing.T) {
	g := newTestGrid(t, 20, 10, 10)
	colors := map[TileID]color.RGBA{
		{0, 0}: {R: 255, A: 255},
		{0, 1}: {B: 255, A: 255},
	}
	err := g.Draw(RepaintAll, func(ctx *raster.Context, id TileID) error {
		ctx.FillColor = colors[id]
		ctx.FillRect(0, 0, 10, 10)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	img, err := g.Flatten()
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 20 || img.Bounds().Dy() != 10 {
		t.Fatalf("export is %v", img.Bounds())
	}
	if got := img.RGBAAt(0, 0); got != colors[TileID{0, 0}] {
		t.Errorf("first pixel %v, want %v", got, colors[TileID{0, 0}])
	}
	if got := img.RGBAAt(19, 9); got != colors[TileID{0, 1}] {
		t.Errorf("last pixel %v, want %v", got, colors[TileID{0, 1}])
	}
}

func TestFlattenMatchesTiles(t *testing.T) {
	g := newTestGrid(t, 53, 31, 8)
	paintTiles(t, g)

	img, err := g.Flatten()
	if err != nil {
		t.Fatal(err)
	}
	for tile := range g.Tiles() {
		for y := range tile.Height() {
			for x := range tile.Width() {
				want := tile.Image().RGBAAt(x, y)
				if got := img.RGBAAt(tile.Origin.X+x, tile.Origin.Y+y); got != want {
					t.Fatalf("tile %s pixel (%d,%d): got %v, want %v", tile.ID, x, y, got, want)
				}
			}
		}
	}
}

func TestFlattenAllocation(t *testing.T) {
	// the tiles fit, the full raster does not
	g, err := New(100, 100, 50, WithMaxSurfacePixels(50*50))
	if err != nil {
		t.Fatal(err)
	}
	defer g.Close()
	if _, err := g.Flatten(); !errors.Is(err, ErrExportAllocation) {
		t.Errorf("got %v, want ErrExportAllocation", err)
	}

	// the pool fails on the fifth request, after the four tiles
	pool := newCountingPool(5)
	g2, err := New(100, 100, 50, WithSurfacePool(pool))
	if err != nil {
		t.Fatal(err)
	}
	defer g2.Close()
	_, err = g2.Flatten()
	if !errors.Is(err, ErrExportAllocation) {
		t.Errorf("got %v, want ErrExportAllocation", err)
	}
	if errors.Is(err, ErrSurfaceAllocation) {
		t.Error("export failure reported as tile failure")
	}
}

func TestFlattenRelease(t *testing.T) {
	pool := newCountingPool(0)
	g, err := New(30, 30, 10, WithSurfacePool(pool))
	if err != nil {
		t.Fatal(err)
	}
	img, err := g.Flatten()
	if err != nil {
		t.Fatal(err)
	}
	g.Pool().Release(img)
	g.Close()
	if len(pool.live) != 0 {
		t.Errorf("%d rasters still live", len(pool.live))
	}
}
