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

package raster

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

func horizontalLine(x1, y, x2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x1, Y: y}).
		LineTo(vec.Vec2{X: x2, Y: y})
}

func TestStrokeCaps(t *testing.T) {
	cases := []struct {
		name  string
		cap   graphics.LineCapStyle
		left  int // first fully covered column
		right int // last fully covered column
	}{
		{"butt", graphics.LineCapButt, 10, 53},
		{"square", graphics.LineCapSquare, 6, 57},
		{"round", graphics.LineCapRound, 7, 56},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			img, r := newTarget(64, 64)
			r.Width = 8
			r.Cap = tc.cap
			r.Stroke(horizontalLine(10, 32, 54), img, opaque)

			// the line covers rows 28..35 at full strength
			for y := 28; y < 36; y++ {
				if got := img.RGBAAt(32, y).A; got != 255 {
					t.Errorf("(32,%d): alpha %d, want 255", y, got)
				}
			}
			for _, y := range []int{26, 37} {
				if got := img.RGBAAt(32, y).A; got != 0 {
					t.Errorf("(32,%d): alpha %d, want 0", y, got)
				}
			}
			if got := img.RGBAAt(tc.left, 32).A; got != 255 {
				t.Errorf("left end (%d,32): alpha %d, want 255", tc.left, got)
			}
			if got := img.RGBAAt(tc.right, 32).A; got != 255 {
				t.Errorf("right end (%d,32): alpha %d, want 255", tc.right, got)
			}
			if got := img.RGBAAt(tc.left-2, 32).A; got != 0 {
				t.Errorf("beyond left end (%d,32): alpha %d, want 0", tc.left-2, got)
			}
		})
	}
}

func TestStrokeJoins(t *testing.T) {
	// a right angle corner at (32,16); the outer corner points to the
	// top right, towards (36,12)
	corner := (&path.Data{}).
		MoveTo(vec.Vec2{X: 8, Y: 16}).
		LineTo(vec.Vec2{X: 32, Y: 16}).
		LineTo(vec.Vec2{X: 32, Y: 48})

	cases := []struct {
		name    string
		join    graphics.LineJoinStyle
		covered bool // whether the outer corner pixel is painted
	}{
		{"miter", graphics.LineJoinMiter, true},
		{"bevel", graphics.LineJoinBevel, false},
		{"round", graphics.LineJoinRound, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			img, r := newTarget(64, 64)
			r.Width = 8
			r.Join = tc.join
			r.Stroke(corner, img, opaque)

			got := img.RGBAAt(35, 12).A
			if tc.covered && got != 255 {
				t.Errorf("outer corner: alpha %d, want 255", got)
			}
			if !tc.covered && got > 128 {
				t.Errorf("outer corner: alpha %d, want mostly empty", got)
			}
			// inside of the corner is always covered
			if got := img.RGBAAt(30, 18).A; got != 255 {
				t.Errorf("inner corner: alpha %d, want 255", got)
			}
		})
	}
}

func TestStrokeMiterLimit(t *testing.T) {
	// a sharp spike, far beyond the default miter limit
	spike := (&path.Data{}).
		MoveTo(vec.Vec2{X: 4, Y: 60}).
		LineTo(vec.Vec2{X: 32, Y: 20}).
		LineTo(vec.Vec2{X: 36, Y: 60})
	img, r := newTarget(64, 64)
	r.Width = 6
	r.MiterLimit = 1.5
	r.Stroke(spike, img, opaque)

	for y := range 14 {
		for x := range 64 {
			if img.RGBAAt(x, y).A != 0 {
				t.Fatalf("miter tip drawn at (%d,%d) despite limit", x, y)
			}
		}
	}
}

func TestStrokeClosedSquare(t *testing.T) {
	img, r := newTarget(32, 32)
	r.Width = 2
	r.Stroke(Rect(8, 8, 16, 16), img, opaque)

	// all four corners are joined
	for _, p := range [][2]int{{7, 7}, {24, 7}, {7, 24}, {24, 24}} {
		if got := img.RGBAAt(p[0], p[1]).A; got != 255 {
			t.Errorf("corner (%d,%d): alpha %d, want 255", p[0], p[1], got)
		}
	}
	if got := img.RGBAAt(16, 16).A; got != 0 {
		t.Errorf("centre: alpha %d, want 0", got)
	}
}

func TestStrokeDash(t *testing.T) {
	img, r := newTarget(64, 8)
	r.Width = 2
	r.Dash = []float64{4, 4}
	r.Stroke(horizontalLine(0, 4, 64), img, opaque)

	for x := range 64 {
		on := (x/4)%2 == 0
		got := img.RGBAAt(x, 4).A
		if on && got != 255 || !on && got != 0 {
			t.Errorf("x=%d: alpha %d, dash on=%t", x, got, on)
		}
	}
}

func TestStrokeDashPhase(t *testing.T) {
	img, r := newTarget(64, 8)
	r.Width = 2
	r.Dash = []float64{4, 4}
	r.DashPhase = 2
	r.Stroke(horizontalLine(0, 4, 64), img, opaque)

	// the first dash is shortened to 2 units
	for x := range 64 {
		on := ((x+2)/4)%2 == 0
		got := img.RGBAAt(x, 4).A
		if on && got != 255 || !on && got != 0 {
			t.Errorf("x=%d: alpha %d, dash on=%t", x, got, on)
		}
	}
}

func TestStrokeDegenerate(t *testing.T) {
	dot := (&path.Data{}).
		MoveTo(vec.Vec2{X: 16, Y: 16}).
		LineTo(vec.Vec2{X: 16, Y: 16})

	img, r := newTarget(32, 32)
	r.Width = 8
	r.Stroke(dot, img, opaque)
	for _, v := range img.Pix {
		if v != 0 {
			t.Fatal("butt capped zero-length line was drawn")
		}
	}

	r.Cap = graphics.LineCapRound
	r.Stroke(dot, img, opaque)
	var area float64
	for y := range 32 {
		for x := range 32 {
			area += alphaAt(img, x, y)
		}
	}
	if want := math.Pi * 16; math.Abs(area-want)/want > 0.05 {
		t.Errorf("round dot area %.2f, want %.2f", area, want)
	}
}

func TestStrokeOverlapDoesNotCancel(t *testing.T) {
	// a path that doubles back over itself must stay fully covered
	back := (&path.Data{}).
		MoveTo(vec.Vec2{X: 4, Y: 16}).
		LineTo(vec.Vec2{X: 28, Y: 16}).
		LineTo(vec.Vec2{X: 8, Y: 16})
	img, r := newTarget(32, 32)
	r.Width = 4
	r.Stroke(back, img, opaque)

	for x := 8; x < 28; x++ {
		if got := img.RGBAAt(x, 16).A; got != 255 {
			t.Errorf("x=%d: alpha %d, want 255", x, got)
		}
	}
}
