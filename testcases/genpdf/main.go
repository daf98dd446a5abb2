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

// Command genpdf renders every test case as PNG and as PDF, for visual
// inspection. If Ghostscript is installed, the PDF files are also
// rasterised, so that both outputs can be compared side by side.
// Run from the module root directory.
package main

import (
	"fmt"
	"image/png"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"github.com/sirupsen/logrus"

	"seehuhn.de/go/qrstyle"
	"seehuhn.de/go/qrstyle/pdfout"
	"seehuhn.de/go/qrstyle/testcases"
)

const outDir = "testdata/scenarios"

var log = logrus.WithField("component", "genpdf")

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		log.Fatal(err)
	}

	gs, err := exec.LookPath("gs")
	if err != nil {
		log.Warn("Ghostscript not found, skipping PDF rasterisation")
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			cfg := qrstyle.Config{Width: tc.Width, Height: tc.Height}

			pngPath := filepath.Join(outDir, name+".png")
			if err := writePNG(pngPath, tc.Content, cfg); err != nil {
				log.Fatal(fmt.Errorf("%s: %w", name, err))
			}

			pdfPath := filepath.Join(outDir, name+".pdf")
			if err := pdfout.WriteFile(pdfPath, tc.Content, cfg); err != nil {
				log.Fatal(fmt.Errorf("%s: %w", name, err))
			}

			if gs != "" {
				gsPath := filepath.Join(outDir, name+"_gs.png")
				if err := renderPNG(gs, pdfPath, gsPath); err != nil {
					log.Fatal(fmt.Errorf("%s: %w", name, err))
				}
			}
			log.WithField("case", name).Info("written")
		}
	}
}

func writePNG(fname, content string, cfg qrstyle.Config) error {
	img, err := qrstyle.Render(content, cfg)
	if err != nil {
		return err
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func renderPNG(gs, pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		gs, "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
