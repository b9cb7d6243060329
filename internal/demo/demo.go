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

// Package demo builds the sample scene shown by the command line tools.
package demo

import (
	"fmt"
	"math"

	"golang.org/x/image/colornames"

	"seehuhn.de/go/vcanvas"
	"seehuhn.de/go/vcanvas/raster"
)

// Size of the sample canvas.
const (
	Width  = 500
	Height = 10000
)

// Series returns n records of a damped wave running down the canvas.
// Each record has numeric fields "x" and "y" in canvas coordinates.
func Series(n int) []map[string]any {
	res := make([]map[string]any, n)
	if n == 0 {
		return res
	}
	step := float64(Height-1) / float64(max(n-1, 1))
	for i := range n {
		y := float64(i) * step
		amp := 200 * math.Exp(-y/8000)
		res[i] = map[string]any{
			"x": Width/2 + amp*math.Sin(y/180),
			"y": y,
		}
	}
	return res
}

// Build creates the sample canvas: two filled rectangles near the top and
// the wave from [Series] drawn across all tiles.
func Build(tileSize, points int, opts ...vcanvas.Option) (*vcanvas.Grid, error) {
	g, err := vcanvas.New(Width, Height, tileSize, opts...)
	if err != nil {
		return nil, err
	}

	err = g.DrawLogical(vcanvas.Overlay, func(ctx *raster.Context, _ vcanvas.TileID) error {
		ctx.FillColor = colornames.Blue
		ctx.FillRect(0, 0, 100, 600)
		ctx.FillColor = colornames.Red
		ctx.FillRect(150, 700, 200, 600)
		return nil
	})
	if err != nil {
		g.Close()
		return nil, err
	}

	_, err = vcanvas.DrawPath(g, Series(points),
		vcanvas.AnyField("x"), vcanvas.AnyField("y"),
		strokeRuns,
		vcanvas.WithBoundary(vcanvas.Interpolate), vcanvas.Lenient())
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("drawing series: %w", err)
	}
	return g, nil
}

func strokeRuns(ctx *raster.Context, c *vcanvas.Chunk) error {
	ctx.StrokeColor = colornames.Darkgreen
	ctx.LineWidth = 3
	for _, run := range c.Runs {
		ctx.StrokePolyline(run)
	}
	return nil
}
