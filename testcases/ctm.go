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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/vcanvas/raster"
)

var ctmCases = []Scenario{
	{
		Name:     "scale",
		Width:    64,
		Height:   64,
		TileSize: 24,
		CTM:      matrix.Scale(2, 2).Translate(24, 24),
		Shapes: []Shape{
			fill(raster.Rect(-4, -4, 8, 8)),
		},
	},
	{
		Name:     "rotate",
		Width:    64,
		Height:   64,
		TileSize: 24,
		CTM:      matrix.RotateDeg(30).Translate(32, 32),
		Shapes: []Shape{
			fill(raster.Rect(-15, -10, 30, 20)),
		},
	},
	{
		Name:     "rotate_stroke",
		Width:    64,
		Height:   64,
		TileSize: 20,
		CTM:      matrix.RotateDeg(45).Translate(32, 32),
		Shapes: []Shape{
			withJoin(stroke(raster.Rect(-12, -12, 24, 24), 3), graphics.LineJoinRound),
		},
	},
	{
		Name:     "anisotropic",
		Width:    96,
		Height:   48,
		TileSize: 32,
		CTM:      matrix.Scale(2, 1).Translate(48, 24),
		Shapes: []Shape{
			fill(raster.Circle(0, 0, 18)),
		},
	},
}
