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

// Package raster paints filled and stroked paths onto RGBA images.
//
// A [Rasteriser] converts geometry into coverage and composites a source
// image through that coverage onto a destination. A [Context] wraps one
// destination image together with a graphics state, and is the drawing
// surface handed out for every tile of a virtual canvas.
package raster

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Rasteriser converts vector paths to pixels. Only the device space
// bounding box of each path is rasterised, so a single Rasteriser can serve
// a large image without paying for its full area on every call.
//
// Internal buffers grow as needed but never shrink.
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM transforms from user space to device space. Must be non-singular.
	CTM matrix.Matrix

	// Clip bounds output to this device-coordinate rectangle.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	// Flatness controls curve approximation accuracy in device pixels.
	// Typical values: 0.25–1.0. Must be positive.
	Flatness float64

	// Width sets stroke thickness in user-space units.
	Width float64

	// Cap sets the style for stroke endpoints (butt, round, or square).
	Cap graphics.LineCapStyle

	// Join sets the style for stroke corners (miter, round, or bevel).
	Join graphics.LineJoinStyle

	// MiterLimit caps miter join length. Must be at least 1.0.
	MiterLimit float64

	// Dash specifies alternating on/off lengths in user-space units.
	// Nil means solid.
	Dash []float64

	// DashPhase offsets into the dash pattern in user-space units.
	DashPhase float64

	z vector.Rasterizer

	dev []vec.Vec2 // path coordinates in device space

	// stroke outline pieces in device space, all pieces contiguous
	stroke        []vec.Vec2
	strokeOffsets []int

	// flattened subpaths in user space
	flat          []vec.Vec2
	flatOffsets   []int
	subpathClosed []bool
	dots          []vec.Vec2 // zero-length subpaths

	dashed []vec.Vec2 // scratch buffer for one dash
}

// NewRasteriser returns a Rasteriser with the given clip rectangle and
// PDF default values for all other parameters.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:        matrix.Identity,
		Clip:       clip,
		Flatness:   defaultFlatness,
		Width:      1.0,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: defaultMiterLimit,
	}
}

// apply maps a user space point to device space.
func (r *Rasteriser) apply(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*p.X + r.CTM[2]*p.Y + r.CTM[4],
		Y: r.CTM[1]*p.X + r.CTM[3]*p.Y + r.CTM[5],
	}
}

// transformLinear applies only the 2×2 linear part of CTM to a vector.
func (r *Rasteriser) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// scale returns the largest factor by which the CTM stretches a unit vector.
func (r *Rasteriser) scale() float64 {
	sx := r.transformLinear(vec.Vec2{X: 1}).Length()
	sy := r.transformLinear(vec.Vec2{Y: 1}).Length()
	return max(sx, sy)
}

// clipRect returns the integer clip rectangle, restricted to the
// destination bounds.
func (r *Rasteriser) clipRect(dst draw.Image) image.Rectangle {
	c := image.Rect(
		int(math.Floor(r.Clip.LLx)), int(math.Floor(r.Clip.LLy)),
		int(math.Ceil(r.Clip.URx)), int(math.Ceil(r.Clip.URy)),
	)
	return c.Intersect(dst.Bounds())
}

// deviceBounds returns the pixel rectangle touched by the given device
// space points, clipped. The second result is false if nothing is left.
func (r *Rasteriser) deviceBounds(pts []vec.Vec2, dst draw.Image) (image.Rectangle, bool) {
	if len(pts) == 0 {
		return image.Rectangle{}, false
	}
	xMin, yMin := pts[0].X, pts[0].Y
	xMax, yMax := xMin, yMin
	for _, p := range pts[1:] {
		xMin = min(xMin, p.X)
		xMax = max(xMax, p.X)
		yMin = min(yMin, p.Y)
		yMax = max(yMax, p.Y)
	}
	if math.IsNaN(xMin+xMax+yMin+yMax) || math.IsInf(xMin+xMax+yMin+yMax, 0) {
		return image.Rectangle{}, false
	}
	box := image.Rect(
		int(math.Floor(xMin)), int(math.Floor(yMin)),
		int(math.Ceil(xMax)), int(math.Ceil(yMax)),
	).Intersect(r.clipRect(dst))
	return box, !box.Empty()
}

// Fill fills the path using the nonzero winding rule, compositing src over
// dst. Open subpaths are closed implicitly.
func (r *Rasteriser) Fill(p *path.Data, dst draw.Image, src image.Image) {
	r.dev = r.dev[:0]
	for _, c := range p.Coords {
		r.dev = append(r.dev, r.apply(c))
	}
	box, ok := r.deviceBounds(r.dev, dst)
	if !ok {
		return
	}

	r.z.Reset(box.Dx(), box.Dy())
	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	x := func(v vec.Vec2) float32 { return float32(v.X - ox) }
	y := func(v vec.Vec2) float32 { return float32(v.Y - oy) }

	idx := 0
	started := false
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if started {
				r.z.ClosePath()
			}
			a := r.dev[idx]
			r.z.MoveTo(x(a), y(a))
			started = true
			idx++
		case path.CmdLineTo:
			a := r.dev[idx]
			r.z.LineTo(x(a), y(a))
			idx++
		case path.CmdQuadTo:
			a, b := r.dev[idx], r.dev[idx+1]
			r.z.QuadTo(x(a), y(a), x(b), y(b))
			idx += 2
		case path.CmdCubeTo:
			a, b, c := r.dev[idx], r.dev[idx+1], r.dev[idx+2]
			r.z.CubeTo(x(a), y(a), x(b), y(b), x(c), y(c))
			idx += 3
		case path.CmdClose:
			r.z.ClosePath()
		}
	}
	if started {
		r.z.ClosePath()
	}
	r.z.Draw(dst, box, src, box.Min)
}

// fillOutline fills the pieces collected in r.stroke. Every piece is
// convex; pieces are emitted with positive orientation so that their
// coverage adds up instead of cancelling where they overlap.
func (r *Rasteriser) fillOutline(dst draw.Image, src image.Image) {
	box, ok := r.deviceBounds(r.stroke, dst)
	if !ok {
		return
	}

	r.z.Reset(box.Dx(), box.Dy())
	ox, oy := float64(box.Min.X), float64(box.Min.Y)

	for i, start := range r.strokeOffsets {
		end := len(r.stroke)
		if i+1 < len(r.strokeOffsets) {
			end = r.strokeOffsets[i+1]
		}
		piece := r.stroke[start:end]
		if len(piece) < 3 {
			continue
		}

		n := len(piece)
		at := func(k int) vec.Vec2 { return piece[k] }
		if signedArea(piece) < 0 {
			at = func(k int) vec.Vec2 { return piece[n-1-k] }
		}
		p := at(0)
		r.z.MoveTo(float32(p.X-ox), float32(p.Y-oy))
		for k := 1; k < n; k++ {
			p = at(k)
			r.z.LineTo(float32(p.X-ox), float32(p.Y-oy))
		}
		r.z.ClosePath()
	}
	r.z.Draw(dst, box, src, box.Min)
}

// signedArea returns twice the signed area of a polygon.
func signedArea(pts []vec.Vec2) float64 {
	var a float64
	prev := pts[len(pts)-1]
	for _, p := range pts {
		a += prev.X*p.Y - p.X*prev.Y
		prev = p
	}
	return a
}

// flattenQuadratic flattens a quadratic Bézier and calls emit for each line segment.
// p0 is the start point, p1 is control, p2 is endpoint, all in user space.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// deviation of the control polygon, measured in device space
	e := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))

	n := 1
	if dev := e.Length(); dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic flattens a cubic Bézier using Wang's formula for the
// number of segments.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))

	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if k := math.Sqrt(3 * m / (4 * r.Flatness)); k > 1 {
			n = int(math.Ceil(k))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

// Default values for rasteriser parameters.
const (
	// defaultFlatness is the default curve flattening tolerance in device
	// pixels.
	defaultFlatness = 0.25

	// defaultMiterLimit matches PDF/PostScript and the HTML canvas.
	defaultMiterLimit = 10.0
)

// Numerical tolerances.
const (
	// zeroLengthThreshold is the minimum length for a stroke segment.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is used to detect nearly collinear segments
	// where no join is needed.
	collinearityThreshold = 1e-6
)
