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

import "fmt"

// Track identifies one of the two sequences held by a Scheduler.
type Track int

// These are the two tracks of a Scheduler.
const (
	TrackA Track = iota
	TrackB

	numTracks
)

func (t Track) String() string {
	switch t {
	case TrackA:
		return "A"
	case TrackB:
		return "B"
	default:
		return fmt.Sprintf("Track(%d)", int(t))
	}
}

// Tracks lists all tracks in drawing order.
var Tracks = [numTracks]Track{TrackA, TrackB}

// Scheduler reveals two precomputed pixel sequences step by step.
//
// Each track has a cursor, starting at zero.  Every call to Tick advances
// each cursor by one until it reaches the length of its sequence, after
// which the cursor stays put.  The visible part of a track is the prefix of
// its sequence up to the cursor.
//
// A Scheduler is not safe for concurrent use.  Hosts call Tick and Visible
// from the same goroutine.
type Scheduler struct {
	seq    [numTracks]Sequence
	cursor [numTracks]int
}

// NewScheduler returns a Scheduler for the sequences a (TrackA) and
// b (TrackB), with nothing revealed yet.
func NewScheduler(a, b Sequence) *Scheduler {
	return &Scheduler{
		seq: [numTracks]Sequence{a, b},
	}
}

// Tick advances every cursor which has not yet reached the end of its
// sequence by one point.
func (s *Scheduler) Tick() {
	for i := range s.cursor {
		if s.cursor[i] < len(s.seq[i]) {
			s.cursor[i]++
		}
	}
}

// Visible returns the revealed prefix of track t, in generation order.
// The returned slice shares storage with the scheduler and must not be
// modified.  Its capacity is capped, so that appending to it copies.
// For an unknown track, nil is returned.
func (s *Scheduler) Visible(t Track) Sequence {
	if !t.valid() {
		return nil
	}
	c := s.cursor[t]
	return s.seq[t][:c:c]
}

// Cursor returns the number of revealed points of track t.
func (s *Scheduler) Cursor(t Track) int {
	if !t.valid() {
		return 0
	}
	return s.cursor[t]
}

// Len returns the total number of points of track t.
func (s *Scheduler) Len(t Track) int {
	if !t.valid() {
		return 0
	}
	return len(s.seq[t])
}

// Sequence returns the complete sequence of track t.
func (s *Scheduler) Sequence(t Track) Sequence {
	if !t.valid() {
		return nil
	}
	return s.seq[t]
}

// Done reports whether all points of both tracks have been revealed.
// Further calls to Tick have no effect once Done returns true.
func (s *Scheduler) Done() bool {
	for i := range s.cursor {
		if s.cursor[i] < len(s.seq[i]) {
			return false
		}
	}
	return true
}

func (t Track) valid() bool {
	return t >= 0 && t < numTracks
}
