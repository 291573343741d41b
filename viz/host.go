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
// Package viz animates two pixel sequences side by side.
//
// The animation is driven through a [Host], an abstraction of a window
// system event loop with a one-shot timer and redraw requests.  [App]
// installs a timer handler, which advances a [stepline.Scheduler], and a
// redraw handler, which draws the revealed points onto a [Canvas].
// [OfflineHost] runs the same handlers against a simulated clock and
// records the frames.
package viz

import (
	"context"
	"image/color"
	"time"

	"seehuhn.de/go/stepline"
)

// Host is the event loop and window system used to show an animation.
//
// All callbacks registered with a Host are called from the goroutine
// which called Run, one at a time.
type Host interface {
	// RequestWindow creates the drawing surface.
	// It is called once, before any other method.
	RequestWindow(title string, width, height int) error

	// SetProjection sets the world coordinates visible in the window.
	// The point (left, bottom) is mapped to the lower left corner of the
	// window and (right, top) to the upper right corner.
	SetProjection(left, right, bottom, top float64)

	// OnRedraw registers the function which repaints the window.
	OnRedraw(fn func(Canvas))

	// OnTimer arranges for fn to be called once, after the given interval.
	// Callbacks which want to be called again must call OnTimer again.
	OnTimer(interval time.Duration, fn func())

	// PostRedisplay requests a call of the redraw function.  Several
	// requests before the next redraw result in a single redraw.
	PostRedisplay()

	// Run dispatches events until the host stops or ctx is cancelled.
	Run(ctx context.Context) error
}

// Canvas is the drawing surface passed to the redraw function.
// All coordinates are world coordinates, as set by
// [Host.SetProjection].
type Canvas interface {
	// Clear fills the whole canvas with bg.
	Clear(bg color.RGBA)

	// Points draws each point as a square of the given size, measured in
	// device pixels, centred on the point.
	Points(col color.RGBA, size float64, pts []stepline.Point)

	// Text draws s with the left end of its baseline at (x, y).
	Text(col color.RGBA, x, y float64, s string)

	// Flush presents the frame.
	Flush() error
}
