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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/vcanvas/raster"
)

var fillCases = []Scenario{
	{
		// the layout of the two coloured blocks in the scrolling demo,
		// scaled down
		Name:     "demo_blocks",
		Width:    50,
		Height:   100,
		TileSize: 24,
		Shapes: []Shape{
			fill(raster.Rect(0, 0, 10, 60)),
			fill(raster.Rect(15, 70, 20, 60)),
		},
	},
	{
		Name:     "triangle",
		Width:    64,
		Height:   64,
		TileSize: 20,
		Shapes: []Shape{
			fill(triangle(10, 50, 32, 10, 54, 50)),
		},
	},
	{
		Name:     "star",
		Width:    64,
		Height:   64,
		TileSize: 24,
		Shapes: []Shape{
			fill(fivePointStar(32, 32, 25)),
		},
	},
	{
		Name:     "tile_corner",
		Width:    64,
		Height:   64,
		TileSize: 32,
		Shapes: []Shape{
			fill(raster.Rect(20.5, 20.5, 23, 23)),
		},
	},
	{
		Name:     "clipped_edge",
		Width:    70,
		Height:   45,
		TileSize: 32,
		Shapes: []Shape{
			fill(raster.Rect(-10, -10, 30, 30)),
			fill(raster.Rect(50, 30, 40, 40)),
		},
	},
	{
		Name:     "ring",
		Width:    64,
		Height:   64,
		TileSize: 16,
		Shapes: []Shape{
			fill(ring(32, 32, 26, 14)),
		},
	},
}

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return raster.Polygon([]vec.Vec2{pt(x1, y1), pt(x2, y2), pt(x3, y3)})
}

// fivePointStar builds a five-pointed star (self-intersecting).
func fivePointStar(cx, cy, r float64) *path.Data {
	pts := make([]vec.Vec2, 5)
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}

	// draw star: 0 -> 2 -> 4 -> 1 -> 3 -> 0
	order := []int{0, 2, 4, 1, 3}
	star := make([]vec.Vec2, len(order))
	for i, k := range order {
		star[i] = pts[k]
	}
	return raster.Polygon(star)
}

// ring builds an annulus: the outer circle runs counter-clockwise in
// device space, the inner circle clockwise.
func ring(cx, cy, outer, inner float64) *path.Data {
	p := raster.Circle(cx, cy, outer)
	k := inner * 0.5522847498307936
	return p.
		MoveTo(pt(cx+inner, cy)).
		CubeTo(pt(cx+inner, cy-k), pt(cx+k, cy-inner), pt(cx, cy-inner)).
		CubeTo(pt(cx-k, cy-inner), pt(cx-inner, cy-k), pt(cx-inner, cy)).
		CubeTo(pt(cx-inner, cy+k), pt(cx-k, cy+inner), pt(cx, cy+inner)).
		CubeTo(pt(cx+k, cy+inner), pt(cx+inner, cy+k), pt(cx+inner, cy)).
		Close()
}
