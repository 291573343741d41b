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
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"seehuhn.de/go/stepline"
)

// TrackStyle describes how one of the two animated lines is computed and
// drawn.
type TrackStyle struct {
	Algorithm stepline.Algorithm
	Color     color.RGBA

	// Label is drawn at (LabelX, LabelY) in world coordinates.  If Label
	// is empty, a label naming the algorithm and the colour is used.
	Label          string
	LabelX, LabelY float64
}

// Config describes an animation.
type Config struct {
	Title         string
	Width, Height int // window size in pixels

	// Visible world rectangle.
	Left, Right, Bottom, Top float64

	Interval   time.Duration // time between reveal steps
	PointSize  float64       // side length of a point, in pixels
	Background color.RGBA

	// Track A shows Segment, track B shows Segment translated by
	// (OffsetX, OffsetY).
	Segment          stepline.Segment
	OffsetX, OffsetY int

	Tracks [2]TrackStyle
}

// DefaultConfig returns the configuration of the classic comparison:
// DDA in red and Bresenham in green, stepping every 50ms.
func DefaultConfig() Config {
	return Config{
		Title:      "Step-by-Step DDA vs Bresenham Line Drawing",
		Width:      600,
		Height:     600,
		Left:       0,
		Right:      500,
		Bottom:     0,
		Top:        500,
		Interval:   50 * time.Millisecond,
		PointSize:  4,
		Background: Black,
		Segment:    stepline.Seg(50, 50, 400, 300),
		OffsetX:    50,
		OffsetY:    50,
		Tracks: [2]TrackStyle{
			{Algorithm: stepline.DDA, Color: Red, LabelX: 50, LabelY: 480},
			{Algorithm: stepline.Bresenham, Color: Green, LabelX: 50, LabelY: 460},
		},
	}
}

// label returns the text drawn for the track.
func (s TrackStyle) label() string {
	if s.Label != "" {
		return s.Label
	}
	return fmt.Sprintf("%s (%s)", s.Algorithm, ColorName(s.Color))
}

// App is the line drawing animation.  It owns the scheduler which decides
// how much of each line is visible.
type App struct {
	cfg   Config
	sched *stepline.Scheduler
	host  Host

	ticks int
	done  bool
}

// NewApp rasterizes both lines of cfg and returns an App which reveals
// them step by step.
//
// A segment with coincident endpoints is accepted and shows as a single
// point; a warning is logged for it.
func NewApp(cfg Config) *App {
	segs := [2]stepline.Segment{cfg.Segment, cfg.Segment.Offset(cfg.OffsetX, cfg.OffsetY)}
	for i, seg := range segs {
		if err := stepline.CheckSegment(seg); err != nil {
			Logger().Warn("degenerate line",
				slog.String("track", stepline.Tracks[i].String()),
				slog.Any("error", err))
		}
	}
	a := cfg.Tracks[0].Algorithm.Rasterize(segs[0])
	b := cfg.Tracks[1].Algorithm.Rasterize(segs[1])
	return &App{
		cfg:   cfg,
		sched: stepline.NewScheduler(a, b),
	}
}

// Scheduler returns the scheduler driven by the app.
func (a *App) Scheduler() *stepline.Scheduler {
	return a.sched
}

// Ticks returns the number of timer events handled so far.
func (a *App) Ticks() int {
	return a.ticks
}

// Install creates the window on h and registers the redraw and timer
// handlers.  The first timer event fires immediately.
func (a *App) Install(h Host) error {
	cfg := &a.cfg
	if err := h.RequestWindow(cfg.Title, cfg.Width, cfg.Height); err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	Logger().Info("window created",
		slog.String("title", cfg.Title),
		slog.Int("width", cfg.Width),
		slog.Int("height", cfg.Height))

	h.SetProjection(cfg.Left, cfg.Right, cfg.Bottom, cfg.Top)
	h.OnRedraw(a.redraw)
	a.host = h
	h.OnTimer(0, a.tick)
	return nil
}

// tick is the timer handler.  It re-arms itself for as long as the host
// runs, also after all points have been revealed.
func (a *App) tick() {
	a.sched.Tick()
	a.ticks++

	log := Logger()
	log.Debug("tick",
		slog.Int("n", a.ticks),
		slog.Int("a", a.sched.Cursor(stepline.TrackA)),
		slog.Int("b", a.sched.Cursor(stepline.TrackB)))
	if !a.done && a.sched.Done() {
		a.done = true
		log.Info("animation complete",
			slog.Int("ticks", a.ticks),
			slog.Int("points_a", a.sched.Len(stepline.TrackA)),
			slog.Int("points_b", a.sched.Len(stepline.TrackB)))
	}

	a.host.PostRedisplay()
	a.host.OnTimer(a.cfg.Interval, a.tick)
}

// redraw is the redraw handler.
func (a *App) redraw(c Canvas) {
	cfg := &a.cfg
	c.Clear(cfg.Background)
	for i, tr := range stepline.Tracks {
		c.Points(cfg.Tracks[i].Color, cfg.PointSize, a.sched.Visible(tr))
	}
	for _, style := range cfg.Tracks {
		c.Text(style.Color, style.LabelX, style.LabelY, style.label())
	}
	if err := c.Flush(); err != nil {
		Logger().Warn("frame not presented", slog.Any("error", err))
	}
}
