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
// Package pdfsnap writes the state of a line animation to a PDF file.
//
// Each revealed pixel is drawn as a filled square, so that the picture can
// be zoomed in on without losing the individual steps of the algorithms.
package pdfsnap

import (
	"errors"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/stepline"
	"seehuhn.de/go/stepline/viz"
)

// Layer is a set of points drawn in one shade of grey.
type Layer struct {
	Gray   float64 // 0 = black, 1 = white
	Size   float64 // side length of a point, in PDF units
	Points []stepline.Point
}

// Write creates a single page PDF of width x height units with a black
// background, and draws the layers in order.  proj maps world coordinates
// to page coordinates, with y pointing down as for images.
func Write(fname string, width, height int, proj viz.Projection, layers []Layer) error {
	if width <= 0 || height <= 0 {
		return errors.New("page size must be positive")
	}
	paper := &pdf.Rectangle{
		URx: float64(width),
		URy: float64(height),
	}

	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(width), float64(height))
	page.Fill()

	// PDF origin is bottom-left; the projection assumes top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(height)})

	for _, layer := range layers {
		if len(layer.Points) == 0 {
			continue
		}
		half := layer.Size / 2
		page.SetFillColor(color.DeviceGray(layer.Gray))
		for _, p := range layer.Points {
			x, y := proj.Apply(float64(p.X), float64(p.Y))
			page.Rectangle(x-half, y-half, layer.Size, layer.Size)
		}
		page.Fill()
	}

	return page.Close()
}

// Shades used for the two tracks of an animation.
const (
	GrayA = 1.0
	GrayB = 0.55
)

// Snapshot writes the currently revealed points of s, as seen through the
// projection of cfg, to a PDF file of the window size of cfg.
func Snapshot(fname string, cfg viz.Config, s *stepline.Scheduler) error {
	proj := viz.NewProjection(cfg.Left, cfg.Right, cfg.Bottom, cfg.Top, cfg.Width, cfg.Height)
	layers := []Layer{
		{Gray: GrayA, Size: cfg.PointSize, Points: s.Visible(stepline.TrackA)},
		{Gray: GrayB, Size: cfg.PointSize, Points: s.Visible(stepline.TrackB)},
	}
	return Write(fname, cfg.Width, cfg.Height, proj, layers)
}
