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
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/vcanvas/raster"
)

var strokeCases = []Scenario{
	{
		Name:     "line_caps",
		Width:    64,
		Height:   64,
		TileSize: 24,
		Shapes: []Shape{
			withCap(stroke(horizontalLine(10, 12, 54), 8), graphics.LineCapButt),
			withCap(stroke(horizontalLine(10, 32, 54), 8), graphics.LineCapRound),
			withCap(stroke(horizontalLine(10, 52, 54), 8), graphics.LineCapSquare),
		},
	},
	{
		Name:     "corner_miter",
		Width:    64,
		Height:   64,
		TileSize: 20,
		Shapes: []Shape{
			withJoin(stroke(corner(10, 50, 32, 14, 54, 50), 6), graphics.LineJoinMiter),
		},
	},
	{
		Name:     "corner_round",
		Width:    64,
		Height:   64,
		TileSize: 20,
		Shapes: []Shape{
			withJoin(stroke(corner(10, 50, 32, 14, 54, 50), 6), graphics.LineJoinRound),
		},
	},
	{
		Name:     "corner_bevel",
		Width:    64,
		Height:   64,
		TileSize: 20,
		Shapes: []Shape{
			withJoin(stroke(corner(10, 50, 32, 14, 54, 50), 6), graphics.LineJoinBevel),
		},
	},
	{
		Name:     "closed_square",
		Width:    64,
		Height:   64,
		TileSize: 32,
		Shapes: []Shape{
			stroke(raster.Rect(16, 16, 32, 32), 5),
		},
	},
	{
		// a zig-zag line crossing many tile edges, as drawn by the path
		// drawing demo
		Name:     "zigzag",
		Width:    90,
		Height:   60,
		TileSize: 16,
		Shapes: []Shape{
			withJoin(stroke(raster.Polyline([]vec.Vec2{
				pt(5, 50), pt(20, 10), pt(35, 50), pt(50, 10), pt(65, 50), pt(85, 10),
			}), 3), graphics.LineJoinRound),
		},
	},
}

// horizontalLine builds an open horizontal segment.
func horizontalLine(x1, y, x2 float64) *path.Data {
	return raster.Polyline([]vec.Vec2{pt(x1, y), pt(x2, y)})
}

// corner builds an open path with one corner.
func corner(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return raster.Polyline([]vec.Vec2{pt(x1, y1), pt(x2, y2), pt(x3, y3)})
}

func withCap(s Shape, c graphics.LineCapStyle) Shape {
	op := s.Op.(Stroke)
	op.Cap = c
	s.Op = op
	return s
}

func withJoin(s Shape, j graphics.LineJoinStyle) Shape {
	op := s.Op.(Stroke)
	op.Join = j
	s.Op = op
	return s
}

func withDash(s Shape, phase float64, dash ...float64) Shape {
	op := s.Op.(Stroke)
	op.Dash = dash
	op.DashPhase = phase
	s.Op = op
	return s
}
