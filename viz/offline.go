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
	"cmp"
	"context"
	"errors"
	"image"
	"log/slog"
	"slices"
	"time"
)

// FrameSink receives the frames rendered by an [OfflineHost].
type FrameSink interface {
	// AddFrame is called for every presented frame, with the simulated
	// time of the redraw.  The image is reused for the next frame.
	AddFrame(img *image.RGBA, at time.Duration) error
}

// OfflineHost is a [Host] which runs on a simulated clock, without a
// window.  Timers fire in order of their due time, without waiting, and
// the clock jumps to the due time of each timer as it fires.
type OfflineHost struct {
	// MaxTimers stops Run after this many timer callbacks.
	// Zero means no limit; Run then stops when no timer is pending.
	MaxTimers int

	// Sink, if not nil, receives the frames drawn on the default
	// image canvas.
	Sink FrameSink

	// Canvas is the canvas passed to the redraw function.  If nil,
	// RequestWindow allocates an [ImageCanvas] of the window size.
	Canvas Canvas

	title         string
	width, height int
	proj          Projection

	now    time.Duration
	seq    int
	timers []pendingTimer
	fired  int

	redraw        func(Canvas)
	redrawPending bool
	err           error
}

type pendingTimer struct {
	due time.Duration
	seq int // breaks ties between timers with equal due time
	fn  func()
}

// RequestWindow implements the [Host] interface.
// A new window needs to be painted, so a redraw is scheduled.
func (h *OfflineHost) RequestWindow(title string, width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.New("window size must be positive")
	}
	h.title = title
	h.width, h.height = width, height
	h.proj = NewProjection(0, float64(width), 0, float64(height), width, height)
	if h.Canvas == nil {
		ic := NewImageCanvas(width, height)
		ic.Present = h.present
		h.Canvas = ic
	}
	h.redrawPending = true
	return nil
}

// SetProjection implements the [Host] interface.
func (h *OfflineHost) SetProjection(left, right, bottom, top float64) {
	h.proj = NewProjection(left, right, bottom, top, h.width, h.height)
	if pc, ok := h.Canvas.(interface{ SetProjection(Projection) }); ok {
		pc.SetProjection(h.proj)
	}
}

// OnRedraw implements the [Host] interface.
func (h *OfflineHost) OnRedraw(fn func(Canvas)) {
	h.redraw = fn
}

// OnTimer implements the [Host] interface.
func (h *OfflineHost) OnTimer(interval time.Duration, fn func()) {
	h.seq++
	t := pendingTimer{due: h.now + max(interval, 0), seq: h.seq, fn: fn}
	i, _ := slices.BinarySearchFunc(h.timers, t, func(a, b pendingTimer) int {
		if c := cmp.Compare(a.due, b.due); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})
	h.timers = slices.Insert(h.timers, i, t)
}

// PostRedisplay implements the [Host] interface.
func (h *OfflineHost) PostRedisplay() {
	h.redrawPending = true
}

// Now returns the simulated time since the start of Run.
func (h *OfflineHost) Now() time.Duration {
	return h.now
}

// Fired returns the number of timer callbacks run so far.
func (h *OfflineHost) Fired() int {
	return h.fired
}

// Run implements the [Host] interface.  It returns nil once MaxTimers
// timers have fired (or no timers are left) and the last requested redraw
// has been done, ctx.Err() if ctx is cancelled, and the first error
// returned by the frame sink otherwise.
func (h *OfflineHost) Run(ctx context.Context) error {
	log := Logger()
	log.Info("offline host started", slog.String("title", h.title))
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if h.redrawPending {
			h.redrawPending = false
			if h.redraw != nil && h.Canvas != nil {
				h.redraw(h.Canvas)
			}
			if h.err != nil {
				return h.err
			}
		}

		if len(h.timers) == 0 || (h.MaxTimers > 0 && h.fired >= h.MaxTimers) {
			log.Info("offline host stopped",
				slog.Int("timers", h.fired),
				slog.Duration("elapsed", h.now))
			return nil
		}

		t := h.timers[0]
		h.timers = h.timers[1:]
		h.now = t.due
		h.fired++
		t.fn()
	}
}

func (h *OfflineHost) present(img *image.RGBA) error {
	if h.Sink == nil {
		return nil
	}
	err := h.Sink.AddFrame(img, h.now)
	if err != nil && h.err == nil {
		h.err = err
	}
	return err
}
