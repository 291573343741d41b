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
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"seehuhn.de/go/stepline"
	"seehuhn.de/go/stepline/viz"
)

// ConfigError describes an invalid setting in the configuration file.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "config: " + e.Field + ": " + e.Reason
}

type fileConfig struct {
	Title      string  `toml:"title"`
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	Interval   string  `toml:"interval"`
	PointSize  float64 `toml:"point_size"`
	Background string  `toml:"background"`

	Projection struct {
		Left   float64 `toml:"left"`
		Right  float64 `toml:"right"`
		Bottom float64 `toml:"bottom"`
		Top    float64 `toml:"top"`
	} `toml:"projection"`

	Segment struct {
		X1 int `toml:"x1"`
		Y1 int `toml:"y1"`
		X2 int `toml:"x2"`
		Y2 int `toml:"y2"`
	} `toml:"segment"`

	Offset struct {
		DX int `toml:"dx"`
		DY int `toml:"dy"`
	} `toml:"offset"`

	TrackA trackConfig `toml:"track_a"`
	TrackB trackConfig `toml:"track_b"`
}

type trackConfig struct {
	Algorithm string  `toml:"algorithm"`
	Color     string  `toml:"color"`
	Label     string  `toml:"label"`
	LabelX    float64 `toml:"label_x"`
	LabelY    float64 `toml:"label_y"`
}

// defaultFileConfig returns the file representation of [viz.DefaultConfig].
// Settings missing from a configuration file keep these values.
func defaultFileConfig() *fileConfig {
	def := viz.DefaultConfig()

	fc := &fileConfig{
		Title:      def.Title,
		Width:      def.Width,
		Height:     def.Height,
		Interval:   def.Interval.String(),
		PointSize:  def.PointSize,
		Background: hexColor(def.Background.R, def.Background.G, def.Background.B),
	}
	fc.Projection.Left = def.Left
	fc.Projection.Right = def.Right
	fc.Projection.Bottom = def.Bottom
	fc.Projection.Top = def.Top
	fc.Segment.X1, fc.Segment.Y1 = def.Segment.A.X, def.Segment.A.Y
	fc.Segment.X2, fc.Segment.Y2 = def.Segment.B.X, def.Segment.B.Y
	fc.Offset.DX, fc.Offset.DY = def.OffsetX, def.OffsetY

	for i, tc := range []*trackConfig{&fc.TrackA, &fc.TrackB} {
		style := def.Tracks[i]
		alg, _ := style.Algorithm.MarshalText()
		tc.Algorithm = string(alg)
		tc.Color = hexColor(style.Color.R, style.Color.G, style.Color.B)
		tc.Label = style.Label
		tc.LabelX, tc.LabelY = style.LabelX, style.LabelY
	}
	return fc
}

func hexColor(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// loadConfig reads the configuration file fname.
// If fname is empty, the default configuration is returned.
func loadConfig(fname string) (viz.Config, error) {
	if fname == "" {
		return viz.DefaultConfig(), nil
	}
	data, err := os.ReadFile(fname)
	if err != nil {
		return viz.Config{}, err
	}
	cfg, err := parseConfig(data)
	if err != nil {
		return viz.Config{}, fmt.Errorf("%s: %w", fname, err)
	}
	return cfg, nil
}

// parseConfig decodes a TOML configuration and checks it for consistency.
func parseConfig(data []byte) (viz.Config, error) {
	fc := defaultFileConfig()
	if err := toml.Unmarshal(data, fc); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return viz.Config{}, fmt.Errorf("line %d, column %d: %w", row, col, err)
		}
		return viz.Config{}, err
	}
	return fc.toViz()
}

func (fc *fileConfig) toViz() (viz.Config, error) {
	cfg := viz.DefaultConfig()

	cfg.Title = fc.Title
	if fc.Width <= 0 || fc.Height <= 0 {
		return cfg, &ConfigError{"width", "window size must be positive"}
	}
	cfg.Width, cfg.Height = fc.Width, fc.Height

	interval, err := time.ParseDuration(fc.Interval)
	if err != nil {
		return cfg, &ConfigError{"interval", err.Error()}
	}
	if interval <= 0 {
		return cfg, &ConfigError{"interval", "must be positive"}
	}
	cfg.Interval = interval

	if fc.PointSize <= 0 {
		return cfg, &ConfigError{"point_size", "must be positive"}
	}
	cfg.PointSize = fc.PointSize

	cfg.Background, err = viz.ParseColor(fc.Background)
	if err != nil {
		return cfg, &ConfigError{"background", err.Error()}
	}

	p := fc.Projection
	if p.Left == p.Right || p.Bottom == p.Top {
		return cfg, &ConfigError{"projection", "visible area is empty"}
	}
	cfg.Left, cfg.Right, cfg.Bottom, cfg.Top = p.Left, p.Right, p.Bottom, p.Top

	s := fc.Segment
	cfg.Segment = stepline.Seg(s.X1, s.Y1, s.X2, s.Y2)
	cfg.OffsetX, cfg.OffsetY = fc.Offset.DX, fc.Offset.DY

	for i, tc := range []*trackConfig{&fc.TrackA, &fc.TrackB} {
		section := "track_a"
		if i == 1 {
			section = "track_b"
		}

		alg, err := stepline.ParseAlgorithm(tc.Algorithm)
		if err != nil {
			return cfg, &ConfigError{section + ".algorithm", err.Error()}
		}
		col, err := viz.ParseColor(tc.Color)
		if err != nil {
			return cfg, &ConfigError{section + ".color", err.Error()}
		}
		cfg.Tracks[i] = viz.TrackStyle{
			Algorithm: alg,
			Color:     col,
			Label:     tc.Label,
			LabelX:    tc.LabelX,
			LabelY:    tc.LabelY,
		}
	}

	return cfg, nil
}
