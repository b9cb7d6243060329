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

package vcanvas

import (
	"iter"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Selector extracts one coordinate from a path point of type T.
// The second result is false if the point has no usable value.
type Selector[T any] func(p T) (float64, bool)

// PointX and PointY select the coordinates of a [vec.Vec2].
var (
	PointX Selector[vec.Vec2] = func(p vec.Vec2) (float64, bool) { return p.X, true }
	PointY Selector[vec.Vec2] = func(p vec.Vec2) (float64, bool) { return p.Y, true }
)

// Index selects element i of a positional point such as [x, y].
func Index(i int) Selector[[]float64] {
	return func(p []float64) (float64, bool) {
		if i < 0 || i >= len(p) {
			return 0, false
		}
		return p[i], true
	}
}

// Field selects a named value from a record.
func Field(name string) Selector[map[string]float64] {
	return func(p map[string]float64) (float64, bool) {
		v, ok := p[name]
		return v, ok
	}
}

// AnyField selects a named numeric value from a loosely typed record, as
// produced by decoding JSON into map[string]any. Values of any Go integer
// or floating point type are accepted, as well as values with a
// Float64() (float64, error) method such as json.Number.
func AnyField(name string) Selector[map[string]any] {
	return func(p map[string]any) (float64, bool) {
		switch v := p[name].(type) {
		case float64:
			return v, true
		case float32:
			return float64(v), true
		case int:
			return float64(v), true
		case int8:
			return float64(v), true
		case int16:
			return float64(v), true
		case int32:
			return float64(v), true
		case int64:
			return float64(v), true
		case uint:
			return float64(v), true
		case uint8:
			return float64(v), true
		case uint16:
			return float64(v), true
		case uint32:
			return float64(v), true
		case uint64:
			return float64(v), true
		case interface{ Float64() (float64, error) }:
			f, err := v.Float64()
			return f, err == nil
		default:
			return 0, false
		}
	}
}

// Boundary selects how [ChunkPath] treats path segments which cross from one
// tile into another.
type Boundary int

const (
	// Truncate gives every tile only the points located inside it.
	// Segments between points in different tiles are not drawn.
	Truncate Boundary = iota

	// Interpolate splits segments at the tile edges, so that every tile
	// receives the pieces of the path passing through it.
	Interpolate
)

func (b Boundary) String() string {
	switch b {
	case Truncate:
		return "truncate"
	case Interpolate:
		return "interpolate"
	default:
		return "Boundary(?)"
	}
}

// ChunkOption configures [ChunkPath] and [DrawPath].
type ChunkOption func(*chunkConfig)

type chunkConfig struct {
	lenient  bool
	boundary Boundary
}

// Lenient makes the chunker skip malformed points instead of failing.
// The indices of skipped points are listed in [ChunkMap.Skipped].
func Lenient() ChunkOption {
	return func(c *chunkConfig) { c.lenient = true }
}

// WithBoundary selects how segments crossing tile edges are handled.
// The default is [Truncate].
func WithBoundary(b Boundary) ChunkOption {
	return func(c *chunkConfig) { c.boundary = b }
}

// A Chunk is the part of a path which falls into one tile.
// All coordinates are relative to the tile origin.
type Chunk struct {
	Tile TileID

	// Points lists the input points located in the tile, in input order.
	Points []vec.Vec2

	// Runs lists the continuous pieces of the path inside the tile.
	// In Truncate mode this is Points as a single run. In Interpolate mode
	// runs start and end at tile edges where the path crosses them, and
	// a point lying exactly on a tile edge may leave its chunk without
	// runs.
	Runs [][]vec.Vec2
}

// ChunkMap groups the points of a path by tile.
type ChunkMap struct {
	grid   *Grid
	order  []TileID
	chunks map[TileID]*Chunk

	// Skipped lists the indices of malformed points dropped in lenient
	// mode.
	Skipped []int

	// Outside lists the indices of points outside the canvas.
	Outside []int
}

// Len returns the number of tiles touched by the path.
func (m *ChunkMap) Len() int { return len(m.order) }

// Get returns the chunk for the given tile.
func (m *ChunkMap) Get(id TileID) (*Chunk, bool) {
	c, ok := m.chunks[id]
	return c, ok
}

// Tiles returns the touched tiles in the order the path first enters them.
func (m *ChunkMap) Tiles() []TileID {
	return slices.Clone(m.order)
}

// All iterates over the chunks in the order the path first enters their
// tiles.
func (m *ChunkMap) All() iter.Seq2[TileID, *Chunk] {
	return func(yield func(TileID, *Chunk) bool) {
		for _, id := range m.order {
			if !yield(id, m.chunks[id]) {
				return
			}
		}
	}
}

func (m *ChunkMap) chunk(id TileID) *Chunk {
	c, ok := m.chunks[id]
	if !ok {
		c = &Chunk{Tile: id}
		m.chunks[id] = c
		m.order = append(m.order, id)
	}
	return c
}

// ChunkPath splits a path, given as a sequence of points in logical
// coordinates, into per-tile chunks in tile-local coordinates.
//
// By default the first point for which a selector fails aborts the call
// with a [*MalformedPointError]; see [Lenient]. Points with a NaN
// coordinate count as malformed. Points outside the canvas are never
// assigned to a tile and are reported in [ChunkMap.Outside].
func ChunkPath[T any](g *Grid, data []T, x, y Selector[T], opts ...ChunkOption) (*ChunkMap, error) {
	if g.closed {
		return nil, ErrUseAfterTeardown
	}
	var cfg chunkConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	m := &ChunkMap{
		grid:   g,
		chunks: make(map[TileID]*Chunk),
	}
	ip := interpolator{g: g, m: m}

	valid := 0
	var prev vec.Vec2
	for i, item := range data {
		px, ok := x(item)
		if !ok || math.IsNaN(px) {
			if !cfg.lenient {
				return nil, &MalformedPointError{Index: i, Axis: AxisX}
			}
			m.Skipped = append(m.Skipped, i)
			continue
		}
		py, ok := y(item)
		if !ok || math.IsNaN(py) {
			if !cfg.lenient {
				return nil, &MalformedPointError{Index: i, Axis: AxisY}
			}
			m.Skipped = append(m.Skipped, i)
			continue
		}
		p := vec.Vec2{X: px, Y: py}

		if cfg.boundary == Interpolate && valid > 0 {
			ip.segment(prev, p)
		}
		prev = p
		valid++

		loc, ok := g.Locate(p.X, p.Y)
		if !ok {
			m.Outside = append(m.Outside, i)
			continue
		}
		c := m.chunk(loc.Tile)
		c.Points = append(c.Points, loc.Local)
	}

	switch cfg.boundary {
	case Interpolate:
		if valid == 1 && len(m.order) == 1 {
			c := m.chunks[m.order[0]]
			c.Runs = [][]vec.Vec2{slices.Clone(c.Points)}
		}
	default:
		for _, c := range m.chunks {
			c.Runs = [][]vec.Vec2{c.Points}
		}
	}
	return m, nil
}

// interpolator assigns the pieces of path segments to tiles.
type interpolator struct {
	g *Grid
	m *ChunkMap

	cur  *Chunk // chunk holding the run in progress, nil if none
	cuts []cut
}

// cut is a point where a segment crosses a grid line.
type cut struct {
	t    float64 // position along the segment
	axis Axis
	v    float64 // exact coordinate of the grid line
}

// segment splits the segment from p to q at every tile edge and appends
// each piece inside the canvas to the run of its tile.
func (ip *interpolator) segment(p, q vec.Vec2) {
	g := ip.g
	ip.cuts = append(ip.cuts[:0], cut{t: 0}, cut{t: 1})
	ip.addCuts(AxisX, p.X, q.X, g.width, g.cols)
	ip.addCuts(AxisY, p.Y, q.Y, g.height, g.rows)
	slices.SortFunc(ip.cuts, func(a, b cut) int {
		switch {
		case a.t < b.t:
			return -1
		case a.t > b.t:
			return 1
		default:
			return 0
		}
	})

	at := func(c cut) vec.Vec2 {
		var pt vec.Vec2
		switch c.t {
		case 0:
			pt = p
		case 1:
			pt = q
		default:
			pt = p.Add(q.Sub(p).Mul(c.t))
			if c.axis == AxisX {
				pt.X = c.v
			} else {
				pt.Y = c.v
			}
		}
		return pt
	}

	for k := 0; k+1 < len(ip.cuts); k++ {
		c0, c1 := ip.cuts[k], ip.cuts[k+1]
		if c1.t-c0.t < 1e-12 && !(c0.t == 0 && c1.t == 1) {
			continue
		}
		mid := p.Add(q.Sub(p).Mul((c0.t + c1.t) / 2))
		loc, ok := g.Locate(mid.X, mid.Y)
		if !ok {
			ip.cur = nil
			continue
		}
		o := g.origin(loc.Tile)
		a, b := at(c0).Sub(o), at(c1).Sub(o)

		if ip.cur != nil && ip.cur.Tile == loc.Tile {
			run := ip.cur.Runs[len(ip.cur.Runs)-1]
			ip.cur.Runs[len(ip.cur.Runs)-1] = append(run, b)
			continue
		}
		c := ip.m.chunk(loc.Tile)
		c.Runs = append(c.Runs, []vec.Vec2{a, b})
		ip.cur = c
	}
}

// addCuts records where the coordinate running from a to b crosses one of
// the grid lines 0, s, 2s, ... and the canvas edge at size.
func (ip *interpolator) addCuts(axis Axis, a, b float64, size, n int) {
	if a == b {
		return
	}
	lo, hi := min(a, b), max(a, b)
	s := float64(ip.g.tileSize)
	add := func(v float64) {
		t := (v - a) / (b - a)
		if t > 0 && t < 1 {
			ip.cuts = append(ip.cuts, cut{t: t, axis: axis, v: v})
		}
	}
	first := max(0, math.Ceil(lo/s))
	last := min(float64(n-1), math.Floor(hi/s))
	for k := first; k <= last; k++ {
		add(k * s)
	}
	if float64(size) > lo && float64(size) < hi {
		add(float64(size))
	}
}
