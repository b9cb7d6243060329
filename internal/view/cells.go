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

package view

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// upperHalf is the glyph used for every cell.
const upperHalf = "▀"

// Cells converts an image to lines of half block cells.
// Transparent pixels are shown on a white background.
// An odd last pixel row is paired with white.
func Cells(img *image.RGBA) string {
	b := img.Bounds()
	styles := make(map[[2]color.RGBA]string)

	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteByte('\n')
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			top := onWhite(img.RGBAAt(x, y))
			bottom := color.RGBA{R: 255, G: 255, B: 255, A: 255}
			if y+1 < b.Max.Y {
				bottom = onWhite(img.RGBAAt(x, y+1))
			}

			key := [2]color.RGBA{top, bottom}
			cell, ok := styles[key]
			if !ok {
				cell = lipgloss.NewStyle().
					Foreground(lipgloss.Color(hex(top))).
					Background(lipgloss.Color(hex(bottom))).
					Render(upperHalf)
				styles[key] = cell
			}
			sb.WriteString(cell)
		}
	}
	return sb.String()
}

// onWhite composites a premultiplied colour over opaque white.
func onWhite(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: c.R + (255 - c.A),
		G: c.G + (255 - c.A),
		B: c.B + (255 - c.A),
		A: 255,
	}
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
