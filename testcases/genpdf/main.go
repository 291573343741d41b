// seehuhn.de/go/stepline - animated line rasterization
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
// Command genpdf generates PDF pictures of the pixels chosen by the two
// line algorithms, one file per test case.  Bresenham pixels are drawn
// as white squares, with slightly smaller grey squares on top for the
// DDA pixels, so that pixels where the algorithms disagree stand out.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/stepline"
	"seehuhn.de/go/stepline/pdfsnap"
	"seehuhn.de/go/stepline/testcases"
	"seehuhn.de/go/stepline/viz"
)

const outDir = "testdata/pdf"

// pixel is the size of one raster pixel on the page, in PDF points
const pixel = 8

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")
			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	// Some cases leave the canvas; grow the picture to show all pixels.
	xMin, xMax := min(0, tc.X1, tc.X2), max(tc.Width-1, tc.X1, tc.X2)
	yMin, yMax := min(0, tc.Y1, tc.Y2), max(tc.Height-1, tc.Y1, tc.Y2)
	cols, rows := xMax-xMin+1, yMax-yMin+1

	scale := pixel
	if cols*pixel > 2048 || rows*pixel > 2048 {
		scale = 1
	}
	w, h := cols*scale, rows*scale

	// pixel (x, y) covers the unit square centred at (x, y)
	proj := viz.NewProjection(
		float64(xMin)-0.5, float64(xMax)+0.5,
		float64(yMin)-0.5, float64(yMax)+0.5,
		w, h)

	layers := []pdfsnap.Layer{
		{
			Gray:   1,
			Size:   float64(scale),
			Points: stepline.RasterizeBresenham(tc.X1, tc.Y1, tc.X2, tc.Y2),
		},
		{
			Gray:   0.5,
			Size:   0.6 * float64(scale),
			Points: stepline.RasterizeDDA(tc.X1, tc.Y1, tc.X2, tc.Y2),
		},
	}
	return pdfsnap.Write(pdfPath, w, h, proj, layers)
}
