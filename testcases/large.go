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

// largeCases use tall canvases with many tiles, like the scrolling demo.
var largeCases = []Scenario{
	{
		Name:     "grid",
		Width:    96,
		Height:   400,
		TileSize: 64,
		Shapes: []Shape{
			fill(rectangleGrid(20, 4, 96, 400, 3)),
		},
	},
	{
		Name:     "wave",
		Width:    100,
		Height:   480,
		TileSize: 50,
		Shapes: []Shape{
			stroke(wave(50, 0, 480, 40, 60), 2),
		},
	},
}

// rectangleGrid builds a grid of rectangles.
func rectangleGrid(rows, cols, width, height int, gap float64) *path.Data {
	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)

	p := &path.Data{}
	for row := range rows {
		for col := range cols {
			x1 := float64(col)*cellW + gap
			y1 := float64(row)*cellH + gap
			x2 := float64(col+1)*cellW - gap
			y2 := float64(row+1)*cellH - gap

			p = p.
				MoveTo(pt(x1, y1)).
				LineTo(pt(x2, y1)).
				LineTo(pt(x2, y2)).
				LineTo(pt(x1, y2)).
				Close()
		}
	}

	return p
}

// wave builds a vertical sine polyline around x = cx, sampled every pixel.
func wave(cx, y0, y1, amplitude, period float64) *path.Data {
	var pts []vec.Vec2
	for y := y0; y <= y1; y++ {
		pts = append(pts, pt(cx+amplitude*math.Sin(2*math.Pi*y/period), y))
	}
	return raster.Polyline(pts)
}
