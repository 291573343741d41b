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
// Command stepline animates the DDA and Bresenham line drawing algorithms
// side by side, revealing one pixel of each line per time step.
//
// By default the animation is shown in the terminal; press q or Esc to
// quit.  The gif, png and pdf backends render the animation offline
// and write the result to a file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"seehuhn.de/go/stepline"
	"seehuhn.de/go/stepline/pdfsnap"
	"seehuhn.de/go/stepline/term"
	"seehuhn.de/go/stepline/viz"
)

type options struct {
	config  string
	backend string
	out     string
	frames  int
	every   int
	verbose bool
	logFile string
}

func main() {
	var opt options
	flag.StringVar(&opt.config, "config", "", "read settings from this TOML `file`")
	flag.StringVar(&opt.backend, "backend", "term", "output backend: term, gif, png or pdf")
	flag.StringVar(&opt.out, "o", "", "output `file` for the gif, png and pdf backends")
	flag.IntVar(&opt.frames, "frames", 20, "extra time steps after the animation is complete")
	flag.IntVar(&opt.every, "every", 1, "keep only every `n`-th frame in gif output")
	flag.BoolVar(&opt.verbose, "v", false, "enable debug logging")
	flag.StringVar(&opt.logFile, "log", "", "write log messages to this `file` instead of stderr")
	flag.Parse()

	os.Exit(mainWithStatus(opt))
}

// mainWithStatus sets up logging, runs the animation and returns the
// exit status of the command.
func mainWithStatus(opt options) int {
	var logOut io.Writer = os.Stderr
	if opt.logFile != "" {
		f, err := os.OpenFile(opt.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, "stepline:", err)
			return 1
		}
		defer f.Close()
		logOut = f
	}
	level := slog.LevelInfo
	if opt.verbose {
		level = slog.LevelDebug
	} else if opt.backend == "term" && opt.logFile == "" {
		// keep the terminal clean while the animation is running
		level = slog.LevelWarn
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))
	viz.SetLogger(logger)
	defer viz.SetLogger(nil)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opt); err != nil {
		logger.Error("stepline failed", slog.Any("error", err))
		if logOut != os.Stderr {
			fmt.Fprintln(os.Stderr, "stepline:", err)
		}
		return 1
	}
	return 0
}

func run(ctx context.Context, opt options) error {
	cfg, err := loadConfig(opt.config)
	if err != nil {
		return err
	}
	if opt.frames < 0 {
		return errors.New("number of extra frames must not be negative")
	}
	if opt.every < 0 {
		return errors.New("frame decimation must not be negative")
	}

	app := viz.NewApp(cfg)

	if opt.backend == "term" {
		h := &term.Host{}
		if err := app.Install(h); err != nil {
			return err
		}
		return h.Run(ctx)
	}

	out := opt.out
	if out == "" {
		out = "stepline." + opt.backend
	}

	sched := app.Scheduler()
	steps := max(sched.Len(stepline.TrackA), sched.Len(stepline.TrackB))
	h := &viz.OfflineHost{MaxTimers: steps + opt.frames}

	var encode func(io.Writer) error
	switch opt.backend {
	case "gif":
		sink := &viz.GIFSink{Delay: cfg.Interval, Palette: gifPalette(cfg), Every: opt.every}
		h.Sink = sink
		encode = sink.Encode
	case "png":
		sink := &viz.PNGSink{}
		h.Sink = sink
		encode = sink.Encode
	case "pdf":
	default:
		return fmt.Errorf("unknown backend %q", opt.backend)
	}

	if err := app.Install(h); err != nil {
		return err
	}
	if err := h.Run(ctx); err != nil {
		return err
	}

	if encode == nil {
		err = pdfsnap.Snapshot(out, cfg, sched)
	} else {
		err = writeFile(out, encode)
	}
	if err != nil {
		return err
	}
	viz.Logger().Info("output written",
		slog.String("file", out),
		slog.String("backend", opt.backend),
		slog.Duration("simulated", h.Now()))
	return nil
}

func writeFile(fname string, encode func(io.Writer) error) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = encode(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// gifPalette returns the colours used in the animation.  Pixels at the
// edge of points are mapped to the nearest of these.
func gifPalette(cfg viz.Config) color.Palette {
	pal := color.Palette{cfg.Background}
	for _, style := range cfg.Tracks {
		pal = append(pal, style.Color)
	}
	return append(pal, viz.White)
}
