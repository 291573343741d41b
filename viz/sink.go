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
	"errors"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"image/png"
	"io"
	"time"

	"golang.org/x/image/draw"
)

// GIFSink collects frames into an animated GIF.
type GIFSink struct {
	// Delay is the display time of each frame.
	Delay time.Duration

	// Palette is used for all frames.  If nil, the Plan 9 palette is used.
	Palette color.Palette

	// Every keeps only every n-th frame, to limit the file size.
	// Zero or one keeps all frames.
	Every int

	anim gif.GIF
	seen int
}

// AddFrame implements the [FrameSink] interface.
func (s *GIFSink) AddFrame(img *image.RGBA, at time.Duration) error {
	s.seen++
	if s.Every > 1 && (s.seen-1)%s.Every != 0 {
		return nil
	}

	pal := s.Palette
	if pal == nil {
		pal = palette.Plan9
	}
	frame := image.NewPaletted(img.Bounds(), pal)
	draw.Draw(frame, frame.Bounds(), img, img.Bounds().Min, draw.Src)

	delay := s.Delay * time.Duration(max(s.Every, 1))
	s.anim.Image = append(s.anim.Image, frame)
	s.anim.Delay = append(s.anim.Delay, int(delay/(10*time.Millisecond)))
	return nil
}

// Len returns the number of frames collected.
func (s *GIFSink) Len() int {
	return len(s.anim.Image)
}

// Encode writes the animation to w.  The animation plays once and then
// stays on the last frame.
func (s *GIFSink) Encode(w io.Writer) error {
	if len(s.anim.Image) == 0 {
		return errors.New("no frames")
	}
	s.anim.LoopCount = -1
	return gif.EncodeAll(w, &s.anim)
}

// PNGSink keeps a copy of the most recent frame.
type PNGSink struct {
	last *image.RGBA
	at   time.Duration
}

// AddFrame implements the [FrameSink] interface.
func (s *PNGSink) AddFrame(img *image.RGBA, at time.Duration) error {
	if s.last == nil || s.last.Bounds() != img.Bounds() {
		s.last = image.NewRGBA(img.Bounds())
	}
	copy(s.last.Pix, img.Pix)
	s.at = at
	return nil
}

// Last returns the most recent frame and its simulated time,
// or nil if no frame has been presented.
func (s *PNGSink) Last() (*image.RGBA, time.Duration) {
	return s.last, s.at
}

// Encode writes the most recent frame to w in PNG format.
func (s *PNGSink) Encode(w io.Writer) error {
	if s.last == nil {
		return errors.New("no frames")
	}
	return png.Encode(w, s.last)
}
