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
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/vcanvas/raster"
)

var curveCases = []Scenario{
	{
		Name:     "quadratic",
		Width:    64,
		Height:   64,
		TileSize: 20,
		Shapes: []Shape{
			fill(quadraticCurve(10, 50, 32, 10, 54, 50)),
		},
	},
	{
		Name:     "cubic",
		Width:    64,
		Height:   64,
		TileSize: 20,
		Shapes: []Shape{
			fill(cubicCurve(10, 50, 20, 10, 44, 10, 54, 50)),
		},
	},
	{
		Name:     "circle",
		Width:    64,
		Height:   64,
		TileSize: 32,
		Shapes: []Shape{
			fill(raster.Circle(32, 32, 25)),
		},
	},
	{
		Name:     "stroked_s_curve",
		Width:    80,
		Height:   64,
		TileSize: 24,
		Shapes: []Shape{
			stroke((&path.Data{}).
				MoveTo(pt(8, 56)).
				CubeTo(pt(8, 0), pt(72, 64), pt(72, 8)), 4),
		},
	},
}

// quadraticCurve builds a closed shape with a quadratic Bézier upper edge.
func quadraticCurve(x0, y0, cx, cy, x1, y1 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x0, y0)).
		QuadTo(pt(cx, cy), pt(x1, y1)).
		Close()
}

// cubicCurve builds a closed shape with a cubic Bézier upper edge.
func cubicCurve(x0, y0, c1x, c1y, c2x, c2y, x1, y1 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x0, y0)).
		CubeTo(pt(c1x, c1y), pt(c2x, c2y), pt(x1, y1)).
		Close()
}
