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
	"image/draw"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke renders the outline of the path using Width, Cap, Join,
// MiterLimit, Dash and DashPhase, compositing src over dst.
//
// The outline is assembled from convex pieces: one quadrilateral per
// segment plus join and cap geometry. The pieces are filled together, so
// overlaps never double the coverage.
func (r *Rasteriser) Stroke(p *path.Data, dst draw.Image, src image.Image) {
	if r.Width <= 0 {
		return
	}
	r.flattenPath(p)

	r.stroke = r.stroke[:0]
	r.strokeOffsets = r.strokeOffsets[:0]
	d := r.Width / 2

	if r.Cap == graphics.LineCapRound {
		for _, pt := range r.dots {
			r.addCircle(pt, d)
		}
	}

	for i, start := range r.flatOffsets {
		end := len(r.flat)
		if i+1 < len(r.flatOffsets) {
			end = r.flatOffsets[i+1]
		}
		pts := r.flat[start:end]
		if len(r.Dash) > 0 {
			r.strokeDashed(pts, r.subpathClosed[i], d)
		} else {
			r.strokePolyline(pts, r.subpathClosed[i], d)
		}
	}

	r.fillOutline(dst, src)
}

// flattenPath walks the path and stores every subpath as a polyline in
// user space. Subpaths consisting of a single point are collected in
// r.dots, since only round caps make them visible.
func (r *Rasteriser) flattenPath(p *path.Data) {
	r.flat = r.flat[:0]
	r.flatOffsets = r.flatOffsets[:0]
	r.subpathClosed = r.subpathClosed[:0]
	r.dots = r.dots[:0]

	var current, start vec.Vec2
	startIdx := -1 // index into r.flat where the current subpath starts
	drawn := false // a drawing command was seen in the current subpath

	emit := func(_, to vec.Vec2) {
		if last := r.flat[len(r.flat)-1]; to.Sub(last).Length() < zeroLengthThreshold {
			return
		}
		r.flat = append(r.flat, to)
	}
	finish := func(closed bool) {
		if startIdx < 0 {
			return
		}
		switch {
		case len(r.flat)-startIdx >= 2:
			r.flatOffsets = append(r.flatOffsets, startIdx)
			r.subpathClosed = append(r.subpathClosed, closed)
		case drawn || closed:
			r.dots = append(r.dots, start)
			r.flat = r.flat[:startIdx]
		default:
			r.flat = r.flat[:startIdx]
		}
		startIdx = -1
		drawn = false
	}
	begin := func(pt vec.Vec2) {
		finish(false)
		current, start = pt, pt
		startIdx = len(r.flat)
		r.flat = append(r.flat, pt)
	}

	idx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			begin(p.Coords[idx])
			idx++
		case path.CmdLineTo:
			if startIdx < 0 {
				begin(current)
			}
			drawn = true
			emit(current, p.Coords[idx])
			current = p.Coords[idx]
			idx++
		case path.CmdQuadTo:
			if startIdx < 0 {
				begin(current)
			}
			drawn = true
			r.flattenQuadratic(current, p.Coords[idx], p.Coords[idx+1], emit)
			current = p.Coords[idx+1]
			idx += 2
		case path.CmdCubeTo:
			if startIdx < 0 {
				begin(current)
			}
			drawn = true
			r.flattenCubic(current, p.Coords[idx], p.Coords[idx+1], p.Coords[idx+2], emit)
			current = p.Coords[idx+2]
			idx += 3
		case path.CmdClose:
			if startIdx < 0 {
				continue
			}
			// drop a closing point that duplicates the start
			if n := len(r.flat); n-startIdx > 2 && r.flat[n-1].Sub(start).Length() < zeroLengthThreshold {
				r.flat = r.flat[:n-1]
			}
			finish(true)
			current = start
		}
	}
	finish(false)
}

// strokePolyline adds the outline pieces of one polyline.
func (r *Rasteriser) strokePolyline(pts []vec.Vec2, closed bool, d float64) {
	n := len(pts)
	if n < 2 {
		return
	}
	segments := n - 1
	if closed && n > 2 {
		segments = n
	} else {
		closed = false
	}

	for i := range segments {
		a, b := pts[i], pts[(i+1)%n]
		t, ok := unit(b.Sub(a))
		if !ok {
			continue
		}
		nrm := vec.Vec2{X: -t.Y, Y: t.X}.Mul(d)
		r.addPiece(a.Add(nrm), b.Add(nrm), b.Sub(nrm), a.Sub(nrm))
	}

	// joins at interior vertices, and at the start vertex of closed paths
	for i := range n {
		if !closed && (i == 0 || i == n-1) {
			continue
		}
		prev, next := pts[(i+n-1)%n], pts[(i+1)%n]
		t1, ok1 := unit(pts[i].Sub(prev))
		t2, ok2 := unit(next.Sub(pts[i]))
		if ok1 && ok2 {
			r.addJoin(pts[i], t1, t2, d)
		}
	}

	if !closed {
		if t, ok := unit(pts[1].Sub(pts[0])); ok {
			r.addCap(pts[0], t.Mul(-1), d)
		}
		if t, ok := unit(pts[n-1].Sub(pts[n-2])); ok {
			r.addCap(pts[n-1], t, d)
		}
	}
}

// strokeDashed splits a polyline into dashes and strokes each dash.
// Dashed subpaths are never closed.
func (r *Rasteriser) strokeDashed(pts []vec.Vec2, closed bool, d float64) {
	var total float64
	for _, l := range r.Dash {
		total += l
	}
	if total <= 0 {
		r.strokePolyline(pts, closed, d)
		return
	}
	if len(r.Dash)%2 == 1 {
		total *= 2
	}
	dash := func(k int) float64 { return r.Dash[k%len(r.Dash)] }

	// locate the phase within the pattern
	phase := math.Mod(r.DashPhase, total)
	if phase < 0 {
		phase += total
	}
	k := 0
	on := true
	left := dash(0)
	for phase > 0 {
		if phase < left {
			left -= phase
			break
		}
		phase -= left
		k++
		on = !on
		left = dash(k)
	}

	if closed && len(pts) > 2 {
		pts = append(pts[:len(pts):len(pts)], pts[0])
	}

	r.dashed = r.dashed[:0]
	if on {
		r.dashed = append(r.dashed, pts[0])
	}
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		segLen := b.Sub(a).Length()
		pos := 0.0
		for segLen-pos > left {
			pos += left
			pt := a.Add(b.Sub(a).Mul(pos / segLen))
			if on {
				r.dashed = append(r.dashed, pt)
				r.strokeDash(d)
			} else {
				r.dashed = append(r.dashed[:0], pt)
			}
			on = !on
			k++
			left = dash(k)
		}
		left -= segLen - pos
		if on {
			r.dashed = append(r.dashed, b)
		}
	}
	if on {
		r.strokeDash(d)
	}
}

// strokeDash strokes the dash collected in r.dashed and resets the buffer.
func (r *Rasteriser) strokeDash(d float64) {
	dash := r.dashed
	if len(dash) > 0 {
		degenerate := true
		for _, p := range dash[1:] {
			if p.Sub(dash[0]).Length() >= zeroLengthThreshold {
				degenerate = false
				break
			}
		}
		switch {
		case !degenerate:
			r.strokePolyline(dash, false, d)
		case r.Cap == graphics.LineCapRound:
			r.addCircle(dash[0], d)
		}
	}
	r.dashed = r.dashed[:0]
}

// addJoin adds the join geometry on the outer side of the corner at p,
// where the direction changes from t1 to t2.
func (r *Rasteriser) addJoin(p, t1, t2 vec.Vec2, d float64) {
	cross := t1.X*t2.Y - t1.Y*t2.X
	cos := t1.Dot(t2)
	if math.Abs(cross) < collinearityThreshold && cos > 0 {
		return
	}

	if r.Join == graphics.LineJoinRound {
		r.addCircle(p, d)
		return
	}

	// the outer side lies opposite to the turn direction
	side := 1.0
	if cross > 0 {
		side = -1
	}
	n1 := vec.Vec2{X: -t1.Y, Y: t1.X}.Mul(side * d)
	n2 := vec.Vec2{X: -t2.Y, Y: t2.X}.Mul(side * d)

	if r.Join == graphics.LineJoinMiter {
		// miter length relative to the line width is 1/sin(φ/2), with φ the
		// interior angle; sin(φ/2) = cos(θ/2) for the turning angle θ.
		sinHalf := math.Sqrt((1 + cos) / 2)
		if sinHalf > 0 && 1/sinHalf <= r.MiterLimit+1e-10 {
			if bis, ok := unit(n1.Add(n2)); ok {
				tip := p.Add(bis.Mul(d / sinHalf))
				r.addPiece(p, p.Add(n1), tip, p.Add(n2))
				return
			}
		}
	}

	r.addPiece(p, p.Add(n1), p.Add(n2))
}

// addCap adds a line cap at p. t points away from the line.
func (r *Rasteriser) addCap(p, t vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapSquare:
		n := vec.Vec2{X: -t.Y, Y: t.X}.Mul(d)
		ext := p.Add(t.Mul(d))
		r.addPiece(p.Add(n), ext.Add(n), ext.Sub(n), p.Sub(n))
	case graphics.LineCapRound:
		r.addCircle(p, d)
	}
}

// addCircle adds a polygonal disc of radius rad around c. The number of
// vertices keeps the chord error below the flatness in device space.
func (r *Rasteriser) addCircle(c vec.Vec2, rad float64) {
	devRad := rad * r.scale()
	n := 8
	if devRad > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRad)
		n = max(n, int(math.Ceil(2*math.Pi/step)))
	}
	start := len(r.stroke)
	for i := range n {
		phi := 2 * math.Pi * float64(i) / float64(n)
		pt := vec.Vec2{X: c.X + rad*math.Cos(phi), Y: c.Y + rad*math.Sin(phi)}
		r.stroke = append(r.stroke, r.apply(pt))
	}
	r.strokeOffsets = append(r.strokeOffsets, start)
}

// addPiece appends a convex polygon given in user space.
func (r *Rasteriser) addPiece(pts ...vec.Vec2) {
	start := len(r.stroke)
	for _, p := range pts {
		r.stroke = append(r.stroke, r.apply(p))
	}
	r.strokeOffsets = append(r.strokeOffsets, start)
}

// unit returns v scaled to length one. The second result is false for
// vectors too short to have a direction.
func unit(v vec.Vec2) (vec.Vec2, bool) {
	l := v.Length()
	if l < zeroLengthThreshold {
		return vec.Vec2{}, false
	}
	return v.Mul(1 / l), true
}
