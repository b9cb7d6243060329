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

// Vcrender draws a scene onto a tiled canvas and writes viewport snapshots
// together with the flattened canvas.
//
// Usage:
//
//	vcrender [flags]
//
// By default the sample scene is drawn.  With -scenario, one of the test
// scenarios (for example "curve_circle") is drawn instead.  Use "-out -" to
// write only the flattened image to a pipe.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"seehuhn.de/go/vcanvas"
	"seehuhn.de/go/vcanvas/export"
	"seehuhn.de/go/vcanvas/internal/demo"
	"seehuhn.de/go/vcanvas/raster"
	"seehuhn.de/go/vcanvas/testcases"
)

// pipeName is the output name that selects stdout.
const pipeName = "-"

var (
	outDir   = flag.String("out", ".", "output directory, or - for stdout")
	tileSize = flag.Int("tile", vcanvas.DefaultTileSize, "tile size in pixels")
	points   = flag.Int("points", 2000, "number of points in the sample series")
	scenario = flag.String("scenario", "", "draw a test scenario instead of the sample scene")
	views    = flag.String("views", "0,2000,5000", "comma separated vertical scroll offsets for snapshots")
	viewW    = flag.Int("vw", 500, "snapshot width")
	viewH    = flag.Int("vh", 500, "snapshot height")
	format   = flag.String("type", export.TypePNG, "image type, image/png or image/jpeg")
	quality  = flag.Float64("quality", 1, "JPEG quality in (0,1]")
	name     = flag.String("name", "canvas", "file name of the flattened image, without extension")
	workers  = flag.Int("conc", runtime.NumCPU(), "number of snapshots to encode concurrently")
	verbose  = flag.Bool("v", false, "log progress to stderr")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("vcrender: ")
	flag.Parse()

	if *verbose {
		vcanvas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	offsets, err := parseOffsets(*views)
	if err != nil {
		return err
	}

	g, err := buildGrid()
	if err != nil {
		return err
	}
	defer g.Close()

	opts := &export.Options{Name: *name, Type: *format, Quality: *quality}

	if *outDir == pipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("`-` should be used with a pipe for stdout")
		}
		img, err := g.Flatten()
		if err != nil {
			return err
		}
		defer g.Pool().Release(img)
		return export.Encode(os.Stdout, img, opts)
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		return err
	}

	// RenderTo only reads the tiles, so snapshots can be taken in parallel.
	var group errgroup.Group
	group.SetLimit(max(*workers, 1))
	for _, y := range offsets {
		group.Go(func() error {
			return writeSnapshot(g, y, opts)
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	img, err := g.Flatten()
	if err != nil {
		return err
	}
	defer g.Pool().Release(img)
	fname, err := export.WriteFile(*outDir, img, opts)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, "wrote", fname)
	return nil
}

// buildGrid draws either the sample scene or the selected scenario.
func buildGrid() (*vcanvas.Grid, error) {
	if *scenario == "" {
		return demo.Build(*tileSize, *points)
	}

	sc, ok := testcases.Find(*scenario)
	if !ok {
		return nil, fmt.Errorf("unknown scenario %q", *scenario)
	}
	size := *tileSize
	if !isFlagSet("tile") {
		size = sc.TileSize
	}
	g, err := vcanvas.New(sc.Width, sc.Height, size)
	if err != nil {
		return nil, err
	}
	err = g.DrawLogical(vcanvas.RepaintAll, func(ctx *raster.Context, _ vcanvas.TileID) error {
		sc.Paint(ctx, color.Black)
		return nil
	})
	if err != nil {
		g.Close()
		return nil, err
	}
	return g, nil
}

func writeSnapshot(g *vcanvas.Grid, y int, opts *export.Options) error {
	img := image.NewRGBA(image.Rect(0, 0, *viewW, *viewH))
	if err := g.RenderTo(vcanvas.ImageDestination{Image: img}, 0, y, *viewW, *viewH); err != nil {
		return fmt.Errorf("view at y=%d: %w", y, err)
	}

	o := *opts
	o.Name = fmt.Sprintf("%s-view-%05d", opts.Name, y)
	fname, err := export.WriteFile(*outDir, img, &o)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, "wrote", fname)
	return nil
}

func parseOffsets(s string) ([]int, error) {
	var res []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		y, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid view offset %q", field)
		}
		res = append(res, y)
	}
	return res, nil
}

func isFlagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
