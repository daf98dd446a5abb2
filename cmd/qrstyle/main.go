// seehuhn.de/go/qrstyle - styled QR code rendering
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

// Command qrstyle writes a styled QR code to an image or PDF file.
// The content argument may be empty, which gives the smallest symbol.
//
// Default colors and the default encoder are read from the environment
// variables QRSTYLE_FOREGROUND, QRSTYLE_BACKGROUND and QRSTYLE_ENCODER,
// or from a .env file in the current directory.
package main

import (
	"cmp"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/sirupsen/logrus"
	"github.com/tdewolff/argp"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"seehuhn.de/go/qrstyle"
	"seehuhn.de/go/qrstyle/pdfout"
)

var log = logrus.WithField("component", "qrstyle")

// Generate is the root command.
type Generate struct {
	Output     string `short:"o" desc:"Output file (.png, .bmp, .tif, .tiff or .pdf)"`
	Width      int    `short:"W" default:"512" desc:"Minimum width in pixels"`
	Height     int    `short:"H" default:"512" desc:"Minimum height in pixels"`
	Foreground string `short:"f" desc:"Foreground color as #rrggbb"`
	Background string `short:"b" desc:"Background color as #rrggbb"`
	Encoder    string `short:"e" desc:"Encoder: boombuler, rsc or skip2"`
	Verbose    bool   `short:"v" desc:"Log layout details"`
	Content    string `index:"0" desc:"Text to encode, may be empty"`
}

// defaults holds the settings taken from the environment.
type defaults struct {
	Foreground string `env:"QRSTYLE_FOREGROUND" envDefault:"#000000"`
	Background string `env:"QRSTYLE_BACKGROUND" envDefault:"#ffffff"`
	Encoder    string `env:"QRSTYLE_ENCODER" envDefault:"skip2"`
}

func main() {
	root := argp.NewCmd(&Generate{}, "Styled QR code generator")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Generate) Run() error {
	if cmd.Output == "" {
		fmt.Println("ERROR: must specify output filename")
		return argp.ShowUsage
	}
	if cmd.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	cfg, err := cmd.config()
	if err != nil {
		log.WithError(err).Error("bad options")
		return err
	}

	sym, err := qrstyle.Prepare(cmd.Content, cfg)
	if err != nil {
		log.WithError(err).Error("cannot encode content")
		return err
	}
	g := sym.Geometry
	log.WithFields(logrus.Fields{
		"side":     g.Side,
		"quiet":    g.QuietZone,
		"multiple": g.Multiple,
		"point":    g.Point,
		"width":    g.Width,
		"height":   g.Height,
	}).Debug("layout")

	if err := writeOutput(cmd.Output, cmd.Content, cfg, sym); err != nil {
		log.WithError(err).WithField("file", cmd.Output).Error("cannot write output")
		return err
	}
	log.WithField("file", cmd.Output).Info("written")
	return nil
}

// config combines the command line options with the environment defaults.
func (cmd *Generate) config() (qrstyle.Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return qrstyle.Config{}, err
	}
	var d defaults
	if err := env.Parse(&d); err != nil {
		return qrstyle.Config{}, err
	}

	fg, err := parseColor(cmp.Or(cmd.Foreground, d.Foreground))
	if err != nil {
		return qrstyle.Config{}, err
	}
	bg, err := parseColor(cmp.Or(cmd.Background, d.Background))
	if err != nil {
		return qrstyle.Config{}, err
	}
	enc, err := qrstyle.EncoderByName(cmp.Or(cmd.Encoder, d.Encoder))
	if err != nil {
		return qrstyle.Config{}, err
	}

	cfg := qrstyle.Config{
		Width:      cmd.Width,
		Height:     cmd.Height,
		Foreground: fg,
		Background: bg,
		Encoder:    enc,
	}
	return cfg, nil
}

func parseColor(s string) (colorful.Color, error) {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}

// writeOutput writes sym to fname. The file format is chosen by the file
// name extension.
func writeOutput(fname, content string, cfg qrstyle.Config, sym *qrstyle.Symbol) error {
	ext := strings.ToLower(filepath.Ext(fname))
	if ext == ".pdf" {
		return pdfout.WriteFile(fname, content, cfg)
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = encodeImage(f, ext, sym.Image())
	if err2 := f.Close(); err == nil {
		err = err2
	}
	if err != nil {
		os.Remove(fname)
	}
	return err
}

func encodeImage(w io.Writer, ext string, img image.Image) error {
	switch ext {
	case ".png":
		return png.Encode(w, img)
	case ".bmp":
		return bmp.Encode(w, img)
	case ".tif", ".tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}
}
