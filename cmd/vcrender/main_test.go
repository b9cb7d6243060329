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

package main

import (
	"slices"
	"testing"
)

func TestParseOffsets(t *testing.T) {
	got, err := parseOffsets(" 0, 2000,,5000 ")
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 2000, 5000}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, err := parseOffsets("10,abc"); err == nil {
		t.Error("invalid offset accepted")
	}
}
