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
// Package term shows the line animation in a terminal.
//
// Each terminal cell stands for a rectangle of world coordinates; a cell
// is painted when at least one revealed point falls into it.  The top
// row shows the window title.
package term

import (
	"context"
	"errors"
	"image/color"
	"log/slog"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"seehuhn.de/go/stepline"
	"seehuhn.de/go/stepline/viz"
)

// pointRune is drawn for every cell containing a point.
const pointRune = '█'

// Host is a [viz.Host] which draws into a tcell screen.
//
// Timer callbacks and the redraw function are run on the goroutine
// which calls Run.  Pressing Esc, Ctrl-C or q stops Run.
type Host struct {
	// Screen is the terminal screen to draw on.  If nil, RequestWindow
	// opens the controlling terminal.
	Screen tcell.Screen

	title                    string
	left, right, bottom, top float64

	redraw        func(viz.Canvas)
	redrawPending bool

	fire chan func()
	quit chan struct{}
}

// RequestWindow implements the [viz.Host] interface.
// The window size is ignored; the whole terminal is used.
func (h *Host) RequestWindow(title string, width, height int) error {
	if h.Screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		h.Screen = s
	}
	if err := h.Screen.Init(); err != nil {
		return err
	}

	h.title = title
	h.left, h.right = 0, float64(width)
	h.bottom, h.top = 0, float64(height)
	h.fire = make(chan func(), 1)
	h.quit = make(chan struct{})
	h.redrawPending = true

	w, ht := h.Screen.Size()
	viz.Logger().Info("terminal opened", slog.Int("cols", w), slog.Int("rows", ht))
	return nil
}

// SetProjection implements the [viz.Host] interface.
func (h *Host) SetProjection(left, right, bottom, top float64) {
	h.left, h.right, h.bottom, h.top = left, right, bottom, top
}

// OnRedraw implements the [viz.Host] interface.
func (h *Host) OnRedraw(fn func(viz.Canvas)) {
	h.redraw = fn
}

// OnTimer implements the [viz.Host] interface.
func (h *Host) OnTimer(interval time.Duration, fn func()) {
	fire, quit := h.fire, h.quit
	time.AfterFunc(interval, func() {
		select {
		case fire <- fn:
		case <-quit:
		}
	})
}

// PostRedisplay implements the [viz.Host] interface.
func (h *Host) PostRedisplay() {
	h.redrawPending = true
}

// Run implements the [viz.Host] interface.  It returns nil when the user
// quits, and ctx.Err() when ctx is cancelled.  The screen is finalised
// before Run returns.
func (h *Host) Run(ctx context.Context) error {
	if h.quit == nil {
		return errors.New("term: RequestWindow has not been called")
	}
	defer func() {
		close(h.quit)
		h.Screen.Fini()
		viz.Logger().Info("terminal closed")
	}()

	events := make(chan tcell.Event, 16)
	go func(quit <-chan struct{}) {
		for {
			ev := h.Screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}(h.quit)

	for {
		if h.redrawPending {
			h.redrawPending = false
			h.draw()
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-h.fire:
			fn()
		case ev := <-events:
			if h.handleEvent(ev) {
				return nil
			}
		}
	}
}

// handleEvent processes a terminal event and reports whether the user
// asked to quit.
func (h *Host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return true
			}
		}
	case *tcell.EventResize:
		h.Screen.Sync()
		h.redrawPending = true
	}
	return false
}

func (h *Host) draw() {
	if h.redraw == nil {
		return
	}
	w, ht := h.Screen.Size()
	c := &screenCanvas{
		screen: h.Screen,
		title:  h.title,
		proj:   viz.NewProjection(h.left, h.right, h.bottom, h.top, w, max(ht-1, 1)),
		cols:   w,
		rows:   ht,
	}
	h.redraw(c)
}

// screenCanvas implements [viz.Canvas] on a tcell screen.  Row 0 holds
// the title; the projection maps the world onto rows 1 and below.
type screenCanvas struct {
	screen     tcell.Screen
	title      string
	proj       viz.Projection
	cols, rows int
	bg         tcell.Color
}

func (c *screenCanvas) Clear(bg color.RGBA) {
	c.bg = tcellColor(bg)
	c.screen.SetStyle(tcell.StyleDefault.Background(c.bg))
	c.screen.Clear()
	c.put(0, 0, c.title, tcell.StyleDefault.Background(c.bg).Bold(true))
}

// Points draws one block per cell.  The point size is ignored, since a
// cell is already larger than a pixel.
func (c *screenCanvas) Points(col color.RGBA, size float64, pts []stepline.Point) {
	style := tcell.StyleDefault.Foreground(tcellColor(col)).Background(c.bg)
	for _, p := range pts {
		x, y, ok := c.cell(float64(p.X), float64(p.Y))
		if !ok {
			continue
		}
		c.screen.SetContent(x, y, pointRune, nil, style)
	}
}

func (c *screenCanvas) Text(col color.RGBA, x, y float64, s string) {
	cx, cy, ok := c.cell(x, y)
	if !ok {
		return
	}
	c.put(cx, cy, s, tcell.StyleDefault.Foreground(tcellColor(col)).Background(c.bg))
}

func (c *screenCanvas) Flush() error {
	c.screen.Show()
	return nil
}

// cell returns the screen cell containing the world point (x, y).
func (c *screenCanvas) cell(x, y float64) (int, int, bool) {
	dx, dy := c.proj.Apply(x, y)
	cx := int(math.Floor(dx))
	cy := int(math.Floor(dy)) + 1
	if cx < 0 || cx >= c.cols || cy < 1 || cy >= c.rows {
		return 0, 0, false
	}
	return cx, cy, true
}

func (c *screenCanvas) put(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		if x >= c.cols {
			return
		}
		c.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.FromImageColor(c)
}
