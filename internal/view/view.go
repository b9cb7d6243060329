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

// Package view implements a terminal viewer which scrolls a viewport over a
// tiled canvas.
//
// Every terminal cell shows two canvas pixels stacked vertically, using the
// upper half block character with the upper pixel as foreground colour and
// the lower pixel as background colour.
package view

import (
	"fmt"
	"image"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xdraw "golang.org/x/image/draw"

	"seehuhn.de/go/vcanvas"
)

// Zoom levels, in canvas pixels per terminal column.
var zoomLevels = []int{1, 2, 4, 8, 16}

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// Model is a bubbletea model showing part of a canvas.
type Model struct {
	grid *vcanvas.Grid

	width  int // terminal size in cells
	height int

	offsetX int // top left corner of the viewport, in canvas pixels
	offsetY int
	zoom    int // index into zoomLevels

	frame  *image.RGBA // viewport at canvas resolution
	screen *image.RGBA // viewport scaled to terminal resolution
	cells  string
	status string
}

// New returns a viewer for g.  The viewer does not take ownership of g.
func New(g *vcanvas.Grid) Model {
	return Model{grid: g, status: "ready"}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Offset returns the canvas position of the top left corner of the view.
func (m Model) Offset() image.Point {
	return image.Pt(m.offsetX, m.offsetY)
}

// Scale returns the number of canvas pixels per terminal column.
func (m Model) Scale() int {
	return zoomLevels[m.zoom]
}

// mapSize returns the size of the drawing area in cells.
func (m Model) mapSize() (int, int) {
	return max(m.width, 1), max(m.height-2, 1)
}

// viewport returns the size of the visible canvas area in canvas pixels.
func (m Model) viewport() (int, int) {
	w, h := m.mapSize()
	s := m.Scale()
	return w * s, 2 * h * s
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cellRows := m.mapSize()
	line := 2 * m.Scale()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			m.offsetY -= 3 * line
		case "down", "j":
			m.offsetY += 3 * line
		case "pgup":
			m.offsetY -= cellRows * line
		case "pgdown", " ":
			m.offsetY += cellRows * line
		case "left", "h":
			m.offsetX -= 4 * m.Scale()
		case "right", "l":
			m.offsetX += 4 * m.Scale()
		case "home", "g":
			m.offsetY = 0
		case "end", "G":
			m.offsetY = m.grid.Height()
		case "+", "=":
			m.zoom = max(m.zoom-1, 0)
		case "-", "_":
			m.zoom = min(m.zoom+1, len(zoomLevels)-1)
		default:
			return m, nil
		}
	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.offsetY -= 3 * line
		case tea.MouseButtonWheelDown:
			m.offsetY += 3 * line
		default:
			return m, nil
		}
	default:
		return m, nil
	}

	m.clamp()
	m.refresh()
	return m, nil
}

// clamp keeps the viewport inside the canvas where possible.
func (m *Model) clamp() {
	vw, vh := m.viewport()
	m.offsetX = max(min(m.offsetX, m.grid.Width()-vw), 0)
	m.offsetY = max(min(m.offsetY, m.grid.Height()-vh), 0)
}

// refresh composites the visible tiles and converts them to cells.
func (m *Model) refresh() {
	vw, vh := m.viewport()
	if m.frame == nil || m.frame.Rect.Dx() != vw || m.frame.Rect.Dy() != vh {
		m.frame = image.NewRGBA(image.Rect(0, 0, vw, vh))
	}
	err := m.grid.RenderTo(vcanvas.ImageDestination{Image: m.frame}, m.offsetX, m.offsetY, vw, vh)
	if err != nil {
		m.status = err.Error()
		m.cells = ""
		return
	}

	src := m.frame
	if s := m.Scale(); s > 1 {
		sw, sh := vw/s, vh/s
		if m.screen == nil || m.screen.Rect.Dx() != sw || m.screen.Rect.Dy() != sh {
			m.screen = image.NewRGBA(image.Rect(0, 0, sw, sh))
		}
		xdraw.ApproxBiLinear.Scale(m.screen, m.screen.Rect, m.frame, m.frame.Rect, xdraw.Src, nil)
		src = m.screen
	}
	m.cells = Cells(src)
	m.status = m.statusLine(vw, vh)
}

// statusLine describes the position of a vw×vh viewport at the current
// offset.
func (m *Model) statusLine(vw, vh int) string {
	pos := fmt.Sprintf("y=%d/%d  zoom 1:%d", m.offsetY, m.grid.Height(), m.Scale())
	rows, _, ok := m.grid.TileRange(m.offsetX, m.offsetY, vw, vh)
	if !ok {
		return pos + "  no tiles visible"
	}
	return fmt.Sprintf("%s  tile rows %d-%d", pos, rows[0], rows[1])
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	header := titleStyle.Render(" vcview ") + dimStyle.Render(fmt.Sprintf(" %dx%d canvas", m.grid.Width(), m.grid.Height()))
	footer := dimStyle.Render(" " + m.status + "  ↑↓ PgUp/PgDn scroll  +/- zoom  q quit")
	return lipgloss.JoinVertical(lipgloss.Left, header, m.cells, footer)
}
