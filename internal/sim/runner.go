// Package sim runs a room headlessly: each frame is one Update followed by
// one Render, with counters for what happened.
package sim

import (
	"context"
	"time"

	"github.com/vovakirdan/tui-collide/internal/room"
)

// Stats summarizes a run.
type Stats struct {
	Frames   int           // Frames completed
	Updates  int           // Updater calls across all frames
	Renders  int           // Drawer calls across all frames
	Peak     int           // Largest member count seen
	Final    int           // Member count after the last frame
	Duration time.Duration // Wall time spent in Run
}

// Runner drives one room. It is not safe for concurrent use.
type Runner struct {
	room  *room.Room
	stats Stats
}

// NewRunner wraps r.
func NewRunner(r *room.Room) *Runner {
	return &Runner{room: r, stats: Stats{Peak: r.Len(), Final: r.Len()}}
}

// Room returns the driven room.
func (s *Runner) Room() *room.Room {
	return s.room
}

// Stats returns the counters so far.
func (s *Runner) Stats() Stats {
	return s.stats
}

// Step runs one frame.
func (s *Runner) Step() {
	s.stats.Updates += s.room.Update()
	s.stats.Renders += s.room.Render()

	s.stats.Frames++
	s.stats.Final = s.room.Len()
	s.stats.Peak = max(s.stats.Peak, s.stats.Final)
}

// Run advances n frames, checking ctx between frames.
// On cancellation it returns the stats so far and ctx.Err().
func (s *Runner) Run(ctx context.Context, n int) (Stats, error) {
	start := time.Now()
	defer func() { s.stats.Duration += time.Since(start) }()

	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return s.snapshot(start), err
		}
		s.Step()
	}
	return s.snapshot(start), nil
}

// snapshot returns the stats with the in-flight run's time included.
func (s *Runner) snapshot(start time.Time) Stats {
	st := s.stats
	st.Duration += time.Since(start)
	return st
}
