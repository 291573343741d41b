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
package term

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/stepline"
	"seehuhn.de/go/stepline/viz"
)

func newSimHost(t *testing.T) (*Host, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	screen.SetSize(80, 24)
	return &Host{Screen: screen}, screen
}

func smallConfig() viz.Config {
	cfg := viz.DefaultConfig()
	cfg.Interval = time.Millisecond
	// keep the two lines in separate terminal rows
	cfg.OffsetX, cfg.OffsetY = 0, 150
	return cfg
}

func countRune(screen tcell.SimulationScreen, r rune, fg tcell.Color) int {
	w, h := screen.Size()
	n := 0
	for y := range h {
		for x := range w {
			mainc, _, style, _ := screen.GetContent(x, y)
			if mainc != r {
				continue
			}
			f, _, _ := style.Decompose()
			if f == fg {
				n++
			}
		}
	}
	return n
}

func rowText(screen tcell.SimulationScreen, y, n int) string {
	var runes []rune
	for x := range n {
		mainc, _, _, _ := screen.GetContent(x, y)
		runes = append(runes, mainc)
	}
	return string(runes)
}

func TestDrawRevealedPoints(t *testing.T) {
	h, screen := newSimHost(t)
	app := viz.NewApp(smallConfig())
	require.NoError(t, app.Install(h))
	defer screen.Fini()

	red := tcell.NewRGBColor(255, 0, 0)
	green := tcell.NewRGBColor(0, 255, 0)

	h.draw()
	assert.Zero(t, countRune(screen, pointRune, red))

	for range 400 {
		app.Scheduler().Tick()
	}
	h.draw()

	// Both lines span 350 world units horizontally; with 80 columns for
	// 500 units, each covers 56 or 57 columns.
	nRed := countRune(screen, pointRune, red)
	nGreen := countRune(screen, pointRune, green)
	assert.GreaterOrEqual(t, nRed, 56)
	assert.GreaterOrEqual(t, nGreen, 56)

	title := "Step-by-Step DDA vs Bresenham Line Drawing"
	assert.Equal(t, title, rowText(screen, 0, len(title)))
}

func TestDrawLabels(t *testing.T) {
	h, screen := newSimHost(t)
	require.NoError(t, viz.NewApp(smallConfig()).Install(h))
	defer screen.Fini()
	h.draw()

	w, ht := screen.Size()
	found := map[string]bool{}
	for y := 1; y < ht; y++ {
		line := rowText(screen, y, w)
		for _, label := range []string{"DDA (Red)", "Bresenham (Green)"} {
			if strings.Contains(line, label) {
				found[label] = true
			}
		}
	}
	assert.True(t, found["DDA (Red)"])
	assert.True(t, found["Bresenham (Green)"])
}

func TestRunQuitKey(t *testing.T) {
	h, screen := newSimHost(t)
	require.NoError(t, viz.NewApp(smallConfig()).Install(h))

	done := make(chan error, 1)
	go func() {
		done <- h.Run(context.Background())
	}()

	require.NoError(t, screen.PostEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop")
	}
}

func TestRunAnimates(t *testing.T) {
	h, _ := newSimHost(t)
	cfg := smallConfig()
	cfg.Segment = stepline.Seg(0, 0, 10, 4)
	app := viz.NewApp(cfg)
	require.NoError(t, app.Install(h))

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	err := h.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	assert.True(t, app.Scheduler().Done())
	assert.Greater(t, app.Ticks(), 11)
}

func TestRunWithoutWindow(t *testing.T) {
	h := &Host{}
	assert.Error(t, h.Run(context.Background()))
}
