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
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension is returned by [New] when the width, the height
	// or the tile size is not positive.
	ErrInvalidDimension = errors.New("vcanvas: invalid dimension")

	// ErrSurfaceAllocation is returned by [New] when the raster of a tile
	// cannot be allocated.
	ErrSurfaceAllocation = errors.New("vcanvas: cannot allocate tile surface")

	// ErrExportAllocation is returned by [Grid.Flatten] when the full size
	// raster cannot be allocated.
	ErrExportAllocation = errors.New("vcanvas: cannot allocate export surface")

	// ErrUseAfterTeardown is returned by every method of a closed [Grid].
	ErrUseAfterTeardown = errors.New("vcanvas: grid used after Close")

	// ErrEmptyField indicates that an axis selector could not read a
	// numeric coordinate from a path point.
	ErrEmptyField = errors.New("vcanvas: empty field")

	// ErrOutOfBounds indicates a logical position outside the surface.
	ErrOutOfBounds = errors.New("vcanvas: position outside the surface")

	// ErrInvalidMode is returned when a drawing mode is not valid for the
	// requested operation.
	ErrInvalidMode = errors.New("vcanvas: invalid drawing mode")
)

// Axis names a coordinate of a path point.
type Axis int

// These are the axes of a path point.
const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// MalformedPointError reports a path point whose coordinate could not be
// selected.
type MalformedPointError struct {
	Index int  // position of the point in the input
	Axis  Axis // the coordinate which failed
	Err   error
}

func (e *MalformedPointError) Error() string {
	msg := fmt.Sprintf("vcanvas: malformed point %d: no numeric %s coordinate", e.Index, e.Axis)
	if e.Err != nil && !errors.Is(e.Err, ErrEmptyField) {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the wrapped errors. Every MalformedPointError matches
// [ErrEmptyField].
func (e *MalformedPointError) Unwrap() []error {
	if e.Err == nil || errors.Is(e.Err, ErrEmptyField) {
		return []error{ErrEmptyField}
	}
	return []error{ErrEmptyField, e.Err}
}
