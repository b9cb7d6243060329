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

// Package testcases provides drawings for checking the tiled canvas.
//
// Every [Scenario] describes a drawing in logical coordinates together with
// the tile size used to split it. Painting a scenario onto a tiled grid and
// onto a single raster of the full size must give the same pixels.
package testcases

import (
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/vcanvas/raster"
)

// Scenario is a drawing on a canvas of Width×Height pixels.
type Scenario struct {
	Name     string        // lowercase a-z and _ only
	Width    int           // canvas width in pixels
	Height   int           // canvas height in pixels
	TileSize int           // tile edge length for the tiled rendering
	CTM      matrix.Matrix // transformation matrix (zero-value means no transform)
	Shapes   []Shape
}

// Shape is a single painted path.
type Shape struct {
	Path *path.Data
	Op   Operation
}

// Operation is the rendering operation to apply to a path.
type Operation interface {
	isOperation()
}

// Fill fills a path using the nonzero winding rule.
type Fill struct{}

func (Fill) isOperation() {}

// Stroke specifies a stroke operation.
type Stroke struct {
	Width      float64                // line width (>0)
	Cap        graphics.LineCapStyle  // LineCapButt, LineCapRound, LineCapSquare
	Join       graphics.LineJoinStyle // LineJoinMiter, LineJoinRound, LineJoinBevel
	MiterLimit float64                // miter limit
	Dash       []float64              // dash pattern (nil for solid)
	DashPhase  float64                // dash phase offset
}

func (Stroke) isOperation() {}

// Paint draws the scenario onto ctx with the paint colour c.
// The context must map logical canvas coordinates to its pixels.
func (s *Scenario) Paint(ctx *raster.Context, c color.Color) {
	ctx.Save()
	defer ctx.Restore()

	if s.CTM != (matrix.Matrix{}) {
		ctx.Transform(s.CTM)
	}
	ctx.FillColor = c
	ctx.StrokeColor = c
	for _, sh := range s.Shapes {
		switch op := sh.Op.(type) {
		case Fill:
			ctx.Fill(sh.Path)
		case Stroke:
			ctx.LineWidth = op.Width
			ctx.Cap = op.Cap
			ctx.Join = op.Join
			ctx.MiterLimit = op.MiterLimit
			ctx.Dash = op.Dash
			ctx.DashPhase = op.DashPhase
			ctx.Stroke(sh.Path)
		}
	}
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func fill(p *path.Data) Shape {
	return Shape{Path: p, Op: Fill{}}
}

func stroke(p *path.Data, width float64) Shape {
	return Shape{Path: p, Op: Stroke{
		Width:      width,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: 10,
	}}
}
