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
	"image"
	"image/color"
	"image/draw"
	"math/rand/v2"
	"slices"
	"testing"
)

// recorder is a destination which records the calls it receives.
type recorder struct {
	cleared []image.Rectangle
	blits   []Blit
}

func (r *recorder) ClearRect(rect image.Rectangle) {
	r.cleared = append(r.cleared, rect)
}

func (r *recorder) Blit(dp image.Point, _ image.Image, sr image.Rectangle) {
	r.blits = append(r.blits, Blit{Src: sr, Dst: dp})
}

func TestPlanTallCanvas(t *testing.T) {
	g := newTestGrid(t, 500, 2500, 500)

	plan, err := g.Plan(0, 0, 500, 500)
	if err != nil {
		t.Fatal(err)
	}
	want := []Blit{{Tile: TileID{0, 0}, Src: image.Rect(0, 0, 500, 500), Dst: image.Pt(0, 0)}}
	if !slices.Equal(plan, want) {
		t.Errorf("plan %v, want %v", plan, want)
	}

	plan, err = g.Plan(0, 480, 500, 500)
	if err != nil {
		t.Fatal(err)
	}
	want = []Blit{
		{Tile: TileID{0, 0}, Src: image.Rect(0, 480, 500, 500), Dst: image.Pt(0, 0)},
		{Tile: TileID{1, 0}, Src: image.Rect(0, 0, 500, 480), Dst: image.Pt(0, 20)},
	}
	if !slices.Equal(plan, want) {
		t.Errorf("plan %v, want %v", plan, want)
	}
	if plan[0].Src.Dy() != 20 || plan[1].Src.Dy() != 480 {
		t.Errorf("bands of %d and %d pixels, want 20 and 480", plan[0].Src.Dy(), plan[1].Src.Dy())
	}
}

func TestRenderFullCanvas(t *testing.T) {
	g := newTestGrid(t, 70, 45, 20)
	paintTiles(t, g)

	dst := image.NewRGBA(image.Rect(0, 0, 70, 45))
	if err := g.RenderTo(ImageDestination{Image: dst}, 0, 0, 70, 45); err != nil {
		t.Fatal(err)
	}
	for tile := range g.Tiles() {
		b := tile.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				want := tile.Image().RGBAAt(x-tile.Origin.X, y-tile.Origin.Y)
				if got := dst.RGBAAt(x, y); got != want {
					t.Fatalf("pixel (%d,%d) = %v, tile %s has %v", x, y, got, tile.ID, want)
				}
			}
		}
	}
}

func TestRenderSingleTile(t *testing.T) {
	g := newTestGrid(t, 70, 45, 20)
	paintTiles(t, g)
	tile, _ := g.Tile(1, 2)

	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))
	if err := g.RenderTo(ImageDestination{Image: dst}, 40, 20, 20, 20); err != nil {
		t.Fatal(err)
	}
	for i := range dst.Pix {
		if dst.Pix[i] != tile.Image().Pix[i] {
			t.Fatalf("byte %d differs from tile (1,2)", i)
		}
	}

	plan, _ := g.Plan(40, 20, 20, 20)
	if len(plan) != 1 || plan[0].Tile != tile.ID || plan[0].Dst != (image.Point{}) {
		t.Errorf("plan %v", plan)
	}
}

func TestRenderOutside(t *testing.T) {
	g := newTestGrid(t, 70, 45, 20)
	paintTiles(t, g)

	cases := []image.Rectangle{
		image.Rect(-100, 0, -50, 30),
		image.Rect(70, 0, 100, 45),
		image.Rect(0, 45, 70, 90),
		image.Rect(-30, -30, 0, 0),
	}
	for _, v := range cases {
		dst := image.NewRGBA(image.Rect(0, 0, v.Dx(), v.Dy()))
		draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)

		rec := &recorder{}
		if err := g.RenderTo(rec, v.Min.X, v.Min.Y, v.Dx(), v.Dy()); err != nil {
			t.Fatal(err)
		}
		if len(rec.blits) != 0 {
			t.Errorf("viewport %v: %d blits", v, len(rec.blits))
		}
		if len(rec.cleared) != 1 || rec.cleared[0] != image.Rect(0, 0, v.Dx(), v.Dy()) {
			t.Errorf("viewport %v: cleared %v", v, rec.cleared)
		}

		if err := g.RenderTo(ImageDestination{Image: dst}, v.Min.X, v.Min.Y, v.Dx(), v.Dy()); err != nil {
			t.Fatal(err)
		}
		for _, b := range dst.Pix {
			if b != 0 {
				t.Fatalf("viewport %v: destination not cleared", v)
			}
		}
	}
}

// TestRenderMatchesCrop compares random viewports with the corresponding
// crop of the flattened canvas.
func TestRenderMatchesCrop(t *testing.T) {
	g := newTestGrid(t, 123, 77, 16)
	paintTiles(t, g)
	// add some detail which crosses tile edges
	ctx, _, _ := g.ContextAt(20, 20)
	ctx.FillColor = color.RGBA{R: 255, A: 255}
	ctx.FillRect(3.5, 3.5, 20, 20)

	flat, err := g.Flatten()
	if err != nil {
		t.Fatal(err)
	}

	rng := rand.New(rand.NewPCG(7, 8))
	for range 200 {
		vx, vy := rng.IntN(200)-40, rng.IntN(140)-30
		vw, vh := rng.IntN(80)+1, rng.IntN(80)+1
		dst := image.NewRGBA(image.Rect(0, 0, vw, vh))
		draw.Draw(dst, dst.Bounds(), image.Black, image.Point{}, draw.Src)
		if err := g.RenderTo(ImageDestination{Image: dst}, vx, vy, vw, vh); err != nil {
			t.Fatal(err)
		}
		for y := range vh {
			for x := range vw {
				var want color.RGBA
				if p := image.Pt(vx+x, vy+y); p.In(flat.Bounds()) {
					want = flat.RGBAAt(p.X, p.Y)
				}
				if got := dst.RGBAAt(x, y); got != want {
					t.Fatalf("viewport (%d,%d,%d,%d): pixel (%d,%d) = %v, want %v",
						vx, vy, vw, vh, x, y, got, want)
				}
			}
		}
	}
}

func TestPlanInvalidViewport(t *testing.T) {
	g := newTestGrid(t, 10, 10, 5)
	if _, err := g.Plan(0, 0, -1, 5); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("got %v, want ErrInvalidDimension", err)
	}
	plan, err := g.Plan(0, 0, 0, 5)
	if err != nil || len(plan) != 0 {
		t.Errorf("empty viewport: plan %v, error %v", plan, err)
	}
}
