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
package viz

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"seehuhn.de/go/stepline"
)

// ImageCanvas is a [Canvas] which draws into an RGBA image.
type ImageCanvas struct {
	// Img holds the current frame.
	Img *image.RGBA

	// Present, if set, is called by Flush with the finished frame.
	// The image is reused for the next frame and must be copied if it
	// is retained.
	Present func(img *image.RGBA) error

	proj   Projection
	r      *vector.Rasterizer
	face   font.Face
	frames int
}

// NewImageCanvas returns a canvas of the given size.  Until SetProjection
// is called, world coordinates equal device coordinates with y pointing up.
func NewImageCanvas(width, height int) *ImageCanvas {
	return &ImageCanvas{
		Img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		proj: NewProjection(0, float64(width), 0, float64(height), width, height),
		r:    vector.NewRasterizer(width, height),
		face: basicfont.Face7x13,
	}
}

// SetProjection sets the mapping from world to device coordinates.
func (c *ImageCanvas) SetProjection(p Projection) {
	c.proj = p
}

// Frames returns the number of frames presented so far.
func (c *ImageCanvas) Frames() int {
	return c.frames
}

// Clear implements the [Canvas] interface.
func (c *ImageCanvas) Clear(bg color.RGBA) {
	draw.Draw(c.Img, c.Img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
}

// Points implements the [Canvas] interface.
func (c *ImageCanvas) Points(col color.RGBA, size float64, pts []stepline.Point) {
	if len(pts) == 0 {
		return
	}

	b := c.Img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	half := size / 2

	c.r.Reset(b.Dx(), b.Dy())
	n := 0
	for _, p := range pts {
		x, y := c.proj.Apply(float64(p.X), float64(p.Y))
		x0, y0 := max(x-half, 0), max(y-half, 0)
		x1, y1 := min(x+half, w), min(y+half, h)
		if x0 >= x1 || y0 >= y1 {
			continue
		}
		c.r.MoveTo(float32(x0), float32(y0))
		c.r.LineTo(float32(x1), float32(y0))
		c.r.LineTo(float32(x1), float32(y1))
		c.r.LineTo(float32(x0), float32(y1))
		c.r.ClosePath()
		n++
	}
	if n == 0 {
		return
	}
	c.r.Draw(c.Img, b, image.NewUniform(col), image.Point{})
}

// Text implements the [Canvas] interface.
func (c *ImageCanvas) Text(col color.RGBA, x, y float64, s string) {
	dx, dy := c.proj.Apply(x, y)
	d := &font.Drawer{
		Dst:  c.Img,
		Src:  image.NewUniform(col),
		Face: c.face,
		Dot:  fixed.P(int(dx), int(dy)),
	}
	d.DrawString(s)
}

// Flush implements the [Canvas] interface.
func (c *ImageCanvas) Flush() error {
	c.frames++
	if c.Present == nil {
		return nil
	}
	return c.Present(c.Img)
}
