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

// Vcview shows the sample canvas in the terminal.
//
// Use the arrow keys, PgUp/PgDn or the mouse wheel to scroll and +/- to
// zoom.  Every scroll composites the visible tiles afresh.
package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"seehuhn.de/go/vcanvas/internal/demo"
	"seehuhn.de/go/vcanvas/internal/view"
)

func main() {
	tileSize := flag.Int("tile", 1024, "tile size in pixels")
	points := flag.Int("points", 2000, "number of points in the sample series")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("vcview: ")

	g, err := demo.Build(*tileSize, *points)
	if err != nil {
		log.Fatal(err)
	}
	defer g.Close()

	p := tea.NewProgram(view.New(g), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	if err != nil {
		log.Fatal(err)
	}
}

