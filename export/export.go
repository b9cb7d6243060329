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

// Package export encodes flattened canvas images for download or storage.
//
// The encoder follows the conventions of the browser canvas export: the
// image type is given as a MIME tag, the quality as a fraction in (0,1],
// and files are named after the type, "canvas.png" or "canvas.jpg" by
// default.
package export

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// Image types understood by [Encode].
const (
	TypePNG  = "image/png"
	TypeJPEG = "image/jpeg"
)

// ErrUnsupportedType is returned for image types other than PNG and JPEG.
var ErrUnsupportedType = errors.New("export: unsupported image type")

// Options control how an image is encoded.
// The zero value selects the defaults.
type Options struct {
	// Name is the file name without extension.  Default: "canvas".
	Name string

	// Type is the MIME type of the encoded image.  Default: TypePNG.
	Type string

	// Quality is the JPEG quality in (0,1].  Values outside this
	// range select the maximum quality.  PNG output ignores the quality.
	Quality float64
}

func (o *Options) withDefaults() Options {
	res := Options{Name: "canvas", Type: TypePNG, Quality: 1}
	if o == nil {
		return res
	}
	if o.Name != "" {
		res.Name = o.Name
	}
	if o.Type != "" {
		res.Type = o.Type
	}
	if o.Quality > 0 && o.Quality <= 1 {
		res.Quality = o.Quality
	}
	return res
}

// format maps the MIME type to an imaging format.
func (o *Options) format() (imaging.Format, error) {
	switch o.Type {
	case TypePNG:
		return imaging.PNG, nil
	case TypeJPEG:
		return imaging.JPEG, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedType, o.Type)
	}
}

// jpegQuality converts a quality fraction to the 1-100 scale.
func jpegQuality(q float64) int {
	return min(max(int(math.Round(q*100)), 1), 100)
}

// Filename returns the file name for an export: the name followed by
// ".png" for PNG images and ".jpg" for everything else.
// opts may be nil.
func Filename(opts *Options) string {
	o := opts.withDefaults()
	if o.Type == TypePNG {
		return o.Name + ".png"
	}
	return o.Name + ".jpg"
}

// Encode writes img to w.  opts may be nil.
// JPEG images have no alpha channel, transparent pixels come out black.
func Encode(w io.Writer, img image.Image, opts *Options) error {
	o := opts.withDefaults()
	f, err := o.format()
	if err != nil {
		return err
	}
	return imaging.Encode(w, img, f, imaging.JPEGQuality(jpegQuality(o.Quality)))
}

// WriteFile encodes img into dir, using the name from [Filename].
// It returns the path of the new file.
func WriteFile(dir string, img image.Image, opts *Options) (fname string, err error) {
	o := opts.withDefaults()
	if _, err := o.format(); err != nil {
		return "", err
	}

	fname = filepath.Join(dir, Filename(&o))
	fd, err := os.Create(fname)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := fd.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(fname)
			fname = ""
		}
	}()

	err = Encode(fd, img, &o)
	return fname, err
}
