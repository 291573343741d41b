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
package stepline

import (
	"slices"
	"testing"
)

func TestSchedulerStartsEmpty(t *testing.T) {
	s := NewScheduler(RasterizeDDA(0, 0, 4, 2), RasterizeBresenham(0, 0, 2, 4))
	for _, tr := range Tracks {
		if n := s.Cursor(tr); n != 0 {
			t.Errorf("track %s: cursor %d, want 0", tr, n)
		}
		if v := s.Visible(tr); len(v) != 0 {
			t.Errorf("track %s: %d visible points, want 0", tr, len(v))
		}
	}
	if s.Done() {
		t.Error("new scheduler is done")
	}
}

func TestSchedulerPrefix(t *testing.T) {
	a := RasterizeDDA(50, 50, 400, 300)
	b := RasterizeBresenham(100, 100, 450, 350)
	s := NewScheduler(a, b)

	for k := 1; k <= len(a); k++ {
		s.Tick()
		if got := s.Visible(TrackA); !slices.Equal(got, a[:k]) {
			t.Fatalf("after %d ticks: track A prefix differs", k)
		}
		if got := s.Visible(TrackB); !slices.Equal(got, b[:k]) {
			t.Fatalf("after %d ticks: track B prefix differs", k)
		}
	}
}

func TestSchedulerTerminal(t *testing.T) {
	a := RasterizeDDA(0, 0, 10, 3)        // 11 points
	b := RasterizeBresenham(0, 0, 25, 30) // 31 points
	s := NewScheduler(a, b)

	n := max(len(a), len(b))
	for range n {
		s.Tick()
	}
	if !s.Done() {
		t.Fatal("not done after enough ticks")
	}

	for range 100 {
		s.Tick()
	}
	if got := s.Cursor(TrackA); got != len(a) {
		t.Errorf("track A cursor %d, want %d", got, len(a))
	}
	if got := s.Cursor(TrackB); got != len(b) {
		t.Errorf("track B cursor %d, want %d", got, len(b))
	}
	if !slices.Equal(s.Visible(TrackA), a) || !slices.Equal(s.Visible(TrackB), b) {
		t.Error("visible sequences differ from full sequences")
	}
}

func TestSchedulerUnevenLengths(t *testing.T) {
	a := RasterizeBresenham(0, 0, 2, 0) // 3 points
	b := RasterizeBresenham(0, 0, 6, 0) // 7 points
	s := NewScheduler(a, b)

	for range 5 {
		s.Tick()
	}
	if got := s.Cursor(TrackA); got != 3 {
		t.Errorf("track A cursor %d, want 3", got)
	}
	if got := s.Cursor(TrackB); got != 5 {
		t.Errorf("track B cursor %d, want 5", got)
	}
	if s.Done() {
		t.Error("done before track B is complete")
	}
}

func TestSchedulerEmptySequence(t *testing.T) {
	s := NewScheduler(nil, Sequence{{1, 1}})
	s.Tick()
	if s.Cursor(TrackA) != 0 || s.Cursor(TrackB) != 1 {
		t.Errorf("cursors %d, %d", s.Cursor(TrackA), s.Cursor(TrackB))
	}
	if !s.Done() {
		t.Error("not done")
	}
}

func TestSchedulerUnknownTrack(t *testing.T) {
	s := NewScheduler(Sequence{{0, 0}}, Sequence{{1, 1}})
	s.Tick()
	bad := Track(7)
	if s.Visible(bad) != nil || s.Cursor(bad) != 0 || s.Len(bad) != 0 || s.Sequence(bad) != nil {
		t.Error("unknown track returned data")
	}
	if bad.String() != "Track(7)" {
		t.Errorf("unexpected name %q", bad.String())
	}
}

func TestSchedulerVisibleAppend(t *testing.T) {
	seq := RasterizeBresenham(0, 0, 5, 0)
	orig := slices.Clone(seq)
	s := NewScheduler(seq, nil)
	s.Tick()
	s.Tick()

	v := append(s.Visible(TrackA), Point{99, 99})
	if len(v) != 3 || v[2] != (Point{99, 99}) {
		t.Fatalf("append gave %v", v)
	}
	if got := s.Sequence(TrackA); !slices.Equal(got, orig) {
		t.Errorf("sequence changed to %v, want %v", got, orig)
	}
	if got := s.Visible(TrackA); len(got) != 2 {
		t.Errorf("%d visible points, want 2", len(got))
	}
}
