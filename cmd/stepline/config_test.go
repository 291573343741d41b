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
package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/stepline"
	"seehuhn.de/go/stepline/viz"
)

func TestEmptyConfig(t *testing.T) {
	cfg, err := parseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, viz.DefaultConfig(), cfg)

	cfg, err = loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, viz.DefaultConfig(), cfg)
}

func TestFullConfig(t *testing.T) {
	data := []byte(`
title = "Lines"
width = 300
height = 200
interval = "10ms"
point_size = 2.5
background = "white"

[projection]
left = -10.0
right = 90.0
bottom = 0.0
top = 50.0

[segment]
x1 = 0
y1 = 0
x2 = 20
y2 = 7

[offset]
dx = 0
dy = 20

[track_a]
algorithm = "bresenham"
color = "#00f"
label = "first"

[track_b]
algorithm = "DDA"
color = "yellow"
label_x = 5.0
label_y = 45.0
`)
	cfg, err := parseConfig(data)
	require.NoError(t, err)

	assert.Equal(t, "Lines", cfg.Title)
	assert.Equal(t, 300, cfg.Width)
	assert.Equal(t, 200, cfg.Height)
	assert.Equal(t, 10*time.Millisecond, cfg.Interval)
	assert.Equal(t, 2.5, cfg.PointSize)
	assert.Equal(t, viz.White, cfg.Background)
	assert.Equal(t, []float64{-10, 90, 0, 50}, []float64{cfg.Left, cfg.Right, cfg.Bottom, cfg.Top})
	assert.Equal(t, stepline.Seg(0, 0, 20, 7), cfg.Segment)
	assert.Equal(t, 0, cfg.OffsetX)
	assert.Equal(t, 20, cfg.OffsetY)

	a, b := cfg.Tracks[0], cfg.Tracks[1]
	assert.Equal(t, stepline.Bresenham, a.Algorithm)
	assert.Equal(t, uint8(255), a.Color.B)
	assert.Equal(t, "first", a.Label)
	assert.Equal(t, 50.0, a.LabelX) // default kept
	assert.Equal(t, stepline.DDA, b.Algorithm)
	assert.Equal(t, 5.0, b.LabelX)
	assert.Equal(t, 45.0, b.LabelY)
}

func TestPartialConfig(t *testing.T) {
	cfg, err := parseConfig([]byte("[segment]\nx2 = 100\n"))
	require.NoError(t, err)

	def := viz.DefaultConfig()
	assert.Equal(t, stepline.Seg(50, 50, 100, 300), cfg.Segment)
	assert.Equal(t, def.Tracks, cfg.Tracks)
	assert.Equal(t, def.Interval, cfg.Interval)
}

func TestConfigErrors(t *testing.T) {
	cases := []struct {
		in    string
		field string
	}{
		{"width = 0", "width"},
		{"height = -5", "width"},
		{`interval = "soon"`, "interval"},
		{`interval = "0s"`, "interval"},
		{"point_size = 0.0", "point_size"},
		{`background = "plaid"`, "background"},
		{"[projection]\nleft = 10.0\nright = 10.0", "projection"},
		{"[projection]\nbottom = 1.0\ntop = 1.0", "projection"},
		{"[track_a]\nalgorithm = \"wu\"", "track_a.algorithm"},
		{"[track_b]\ncolor = \"#12\"", "track_b.color"},
	}
	for _, c := range cases {
		t.Run(c.field, func(t *testing.T) {
			_, err := parseConfig([]byte(c.in))
			var cerr *ConfigError
			require.True(t, errors.As(err, &cerr), "%q: got %v", c.in, err)
			assert.Equal(t, c.field, cerr.Field)
			assert.NotEmpty(t, cerr.Reason)
		})
	}
}

func TestMalformedConfig(t *testing.T) {
	_, err := parseConfig([]byte("width = = 3"))
	require.Error(t, err)

	var cerr *ConfigError
	assert.False(t, errors.As(err, &cerr))
}

func TestLoadConfigFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "stepline.toml")
	require.NoError(t, os.WriteFile(fname, []byte("title = \"from file\"\n"), 0o644))

	cfg, err := loadConfig(fname)
	require.NoError(t, err)
	assert.Equal(t, "from file", cfg.Title)

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
