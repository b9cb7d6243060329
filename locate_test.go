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
	"math/rand/v2"
	"testing"
)

func TestLocateRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, dims := range [][3]int{{500, 2500, 500}, {1000, 700, 300}, {37, 11, 5}, {4096 * 3, 100, 4096}} {
		g, err := New(dims[0], dims[1], dims[2])
		if err != nil {
			t.Fatal(err)
		}
		for range 1000 {
			x := rng.Float64() * float64(g.Width())
			y := rng.Float64() * float64(g.Height())
			loc, ok := g.Locate(x, y)
			if !ok {
				t.Fatalf("Locate(%g, %g) failed inside a %dx%d canvas", x, y, g.Width(), g.Height())
			}
			tile, err := g.Tile(loc.Tile.Row, loc.Tile.Col)
			if err != nil {
				t.Fatal(err)
			}
			if float64(tile.Origin.X)+loc.Local.X != x || float64(tile.Origin.Y)+loc.Local.Y != y {
				t.Errorf("Locate(%g, %g) = %v: does not map back", x, y, loc)
			}
			if loc.Local.X < 0 || loc.Local.X >= float64(tile.Width()) ||
				loc.Local.Y < 0 || loc.Local.Y >= float64(tile.Height()) {
				t.Errorf("Locate(%g, %g) = %v: outside the tile", x, y, loc)
			}
		}
		g.Close()
	}
}

func TestLocate(t *testing.T) {
	g, err := New(1000, 700, 300)
	if err != nil {
		t.Fatal(err)
	}
	defer g.Close()

	cases := []struct {
		x, y     float64
		ok       bool
		row, col int
	}{
		{0, 0, true, 0, 0},
		{299.5, 0, true, 0, 0},
		{300, 0, true, 0, 1},
		{999.999, 699.999, true, 2, 3},
		{600, 300, true, 1, 2},
		{-0.001, 5, false, 0, 0},
		{5, -0.001, false, 0, 0},
		{1000, 5, false, 0, 0},
		{5, 700, false, 0, 0},
		{math.NaN(), 5, false, 0, 0},
		{5, math.Inf(1), false, 0, 0},
	}
	for _, tc := range cases {
		loc, ok := g.Locate(tc.x, tc.y)
		if ok != tc.ok {
			t.Errorf("Locate(%g, %g): ok=%t, want %t", tc.x, tc.y, ok, tc.ok)
			continue
		}
		if ok && (loc.Tile != TileID{Row: tc.row, Col: tc.col}) {
			t.Errorf("Locate(%g, %g) in tile %s, want (%d,%d)", tc.x, tc.y, loc.Tile, tc.row, tc.col)
		}
	}
}

func TestTileRange(t *testing.T) {
	g, err := New(1000, 700, 300)
	if err != nil {
		t.Fatal(err)
	}
	defer g.Close()

	cases := []struct {
		x, y, w, h int
		rows, cols [2]int
		ok         bool
	}{
		{0, 0, 1000, 700, [2]int{0, 2}, [2]int{0, 3}, true},
		{0, 0, 300, 300, [2]int{0, 0}, [2]int{0, 0}, true},
		{299, 299, 2, 2, [2]int{0, 1}, [2]int{0, 1}, true},
		{-500, -500, 501, 501, [2]int{0, 0}, [2]int{0, 0}, true},
		{-500, 0, 500, 10, [2]int{}, [2]int{}, false},
		{900, 650, 5000, 5000, [2]int{2, 2}, [2]int{3, 3}, true},
		{1000, 0, 10, 10, [2]int{}, [2]int{}, false},
		{0, 0, 0, 10, [2]int{}, [2]int{}, false},

		// offsets and sizes where x+w overflows
		{math.MaxInt - 5, 0, 10, 10, [2]int{}, [2]int{}, false},
		{0, math.MaxInt - 5, 10, 10, [2]int{}, [2]int{}, false},
		{-10, -10, math.MaxInt, math.MaxInt, [2]int{0, 2}, [2]int{0, 3}, true},
		{math.MinInt, 0, math.MaxInt, 10, [2]int{}, [2]int{}, false},
	}
	for _, tc := range cases {
		rows, cols, ok := g.TileRange(tc.x, tc.y, tc.w, tc.h)
		if ok != tc.ok {
			t.Errorf("TileRange(%d,%d,%d,%d): ok=%t, want %t", tc.x, tc.y, tc.w, tc.h, ok, tc.ok)
			continue
		}
		if ok && (rows != tc.rows || cols != tc.cols) {
			t.Errorf("TileRange(%d,%d,%d,%d) = %v %v, want %v %v",
				tc.x, tc.y, tc.w, tc.h, rows, cols, tc.rows, tc.cols)
		}
	}
}
