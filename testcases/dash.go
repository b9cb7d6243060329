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
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/vcanvas/raster"
)

var dashCases = []Scenario{
	{
		Name:     "simple",
		Width:    64,
		Height:   64,
		TileSize: 20,
		Shapes: []Shape{
			withDash(stroke(horizontalLine(5, 32, 59), 4), 0, 8, 4),
		},
	},
	{
		Name:     "phase",
		Width:    64,
		Height:   64,
		TileSize: 20,
		Shapes: []Shape{
			withDash(stroke(horizontalLine(5, 32, 59), 4), 5, 8, 4),
		},
	},
	{
		// odd length patterns repeat with alternating on/off roles
		Name:     "three_element",
		Width:    64,
		Height:   64,
		TileSize: 24,
		Shapes: []Shape{
			withDash(stroke(horizontalLine(5, 32, 59), 4), 0, 5, 3, 8),
		},
	},
	{
		Name:     "round_caps_square",
		Width:    64,
		Height:   64,
		TileSize: 24,
		Shapes: []Shape{
			withCap(withDash(stroke(raster.Rect(12, 12, 40, 40), 4), 0, 10, 6),
				graphics.LineCapRound),
		},
	},
}
