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
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// State is the graphics state of a [Context].
type State struct {
	// CTM maps user space to the pixel grid of the context's image.
	CTM matrix.Matrix

	FillColor   color.Color
	StrokeColor color.Color

	LineWidth  float64
	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64
	Dash       []float64
	DashPhase  float64
}

// DefaultState returns the state of a fresh context: identity transform,
// opaque black paint, 1 unit wide lines with butt caps and miter joins.
func DefaultState() State {
	return State{
		CTM:         matrix.Identity,
		FillColor:   color.Black,
		StrokeColor: color.Black,
		LineWidth:   1,
		Cap:         graphics.LineCapButt,
		Join:        graphics.LineJoinMiter,
		MiterLimit:  defaultMiterLimit,
	}
}

// Context draws onto a single RGBA image.
// A Context is not safe for concurrent use.
type Context struct {
	State

	img   *image.RGBA
	r     *Rasteriser
	saved []State
}

// NewContext returns a context drawing onto img.
func NewContext(img *image.RGBA) *Context {
	b := img.Bounds()
	clip := rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
	return &Context{
		State: DefaultState(),
		img:   img,
		r:     NewRasteriser(clip),
	}
}

// Image returns the image the context draws onto.
func (c *Context) Image() *image.RGBA {
	return c.img
}

// Bounds returns the bounds of the underlying image.
func (c *Context) Bounds() image.Rectangle {
	return c.img.Bounds()
}

// Save pushes a copy of the current graphics state.
func (c *Context) Save() {
	s := c.State
	s.Dash = append([]float64(nil), c.Dash...)
	c.saved = append(c.saved, s)
}

// Restore pops the most recently saved graphics state.
// Without a matching Save, Restore does nothing.
func (c *Context) Restore() {
	n := len(c.saved)
	if n == 0 {
		return
	}
	c.State = c.saved[n-1]
	c.saved = c.saved[:n-1]
}

// Reset discards all saved states and restores the default state.
func (c *Context) Reset() {
	c.saved = c.saved[:0]
	c.State = DefaultState()
}

// Translate moves the user space origin to (dx, dy).
func (c *Context) Translate(dx, dy float64) {
	m := c.CTM
	m[4] += m[0]*dx + m[2]*dy
	m[5] += m[1]*dx + m[3]*dy
	c.CTM = m
}

// Scale scales user space by sx horizontally and sy vertically.
func (c *Context) Scale(sx, sy float64) {
	m := c.CTM
	m[0] *= sx
	m[1] *= sx
	m[2] *= sy
	m[3] *= sy
	c.CTM = m
}

// Transform applies m to user space: points are mapped by m before the
// current transformation.
func (c *Context) Transform(m matrix.Matrix) {
	t := c.CTM
	c.CTM = matrix.Matrix{
		t[0]*m[0] + t[2]*m[1],
		t[1]*m[0] + t[3]*m[1],
		t[0]*m[2] + t[2]*m[3],
		t[1]*m[2] + t[3]*m[3],
		t[0]*m[4] + t[2]*m[5] + t[4],
		t[1]*m[4] + t[3]*m[5] + t[5],
	}
}

// Clear makes every pixel of the image transparent.
func (c *Context) Clear() {
	clear(c.img.Pix)
}

// ClearRect makes the pixels covered by the given user space rectangle
// transparent. Under a rotating transform the device space bounding box
// of the rectangle is cleared.
func (c *Context) ClearRect(x, y, w, h float64) {
	c.r.CTM = c.CTM
	corners := []vec.Vec2{
		c.r.apply(vec.Vec2{X: x, Y: y}),
		c.r.apply(vec.Vec2{X: x + w, Y: y}),
		c.r.apply(vec.Vec2{X: x, Y: y + h}),
		c.r.apply(vec.Vec2{X: x + w, Y: y + h}),
	}
	xMin, yMin := corners[0].X, corners[0].Y
	xMax, yMax := xMin, yMin
	for _, p := range corners[1:] {
		xMin, xMax = min(xMin, p.X), max(xMax, p.X)
		yMin, yMax = min(yMin, p.Y), max(yMax, p.Y)
	}
	box := image.Rect(
		int(math.Round(xMin)), int(math.Round(yMin)),
		int(math.Round(xMax)), int(math.Round(yMax)),
	).Intersect(c.img.Bounds())
	if box.Empty() {
		return
	}
	for py := box.Min.Y; py < box.Max.Y; py++ {
		start := c.img.PixOffset(box.Min.X, py)
		clear(c.img.Pix[start : start+4*box.Dx()])
	}
}

// Fill fills the path with FillColor using the nonzero winding rule.
func (c *Context) Fill(p *path.Data) {
	c.r.CTM = c.CTM
	c.r.Fill(p, c.img, image.NewUniform(c.FillColor))
}

// Stroke strokes the path with StrokeColor.
func (c *Context) Stroke(p *path.Data) {
	c.r.CTM = c.CTM
	c.r.Width = c.LineWidth
	c.r.Cap = c.Cap
	c.r.Join = c.Join
	c.r.MiterLimit = c.MiterLimit
	c.r.Dash = c.Dash
	c.r.DashPhase = c.DashPhase
	c.r.Stroke(p, c.img, image.NewUniform(c.StrokeColor))
}

// FillRect fills a rectangle given in user space.
func (c *Context) FillRect(x, y, w, h float64) {
	c.Fill(Rect(x, y, w, h))
}

// StrokeRect strokes the outline of a rectangle given in user space.
func (c *Context) StrokeRect(x, y, w, h float64) {
	c.Stroke(Rect(x, y, w, h))
}

// StrokePolyline strokes straight segments through the given points.
func (c *Context) StrokePolyline(pts []vec.Vec2) {
	if len(pts) == 0 {
		return
	}
	c.Stroke(Polyline(pts))
}
