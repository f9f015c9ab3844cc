package fishing

import (
	"time"

	"github.com/vovakirdan/tui-fishing/internal/core"
)

// TimerID identifies a scheduled action. Zero is never issued.
type TimerID uint64

type timer struct {
	id  TimerID
	due time.Time
	seq uint64
	fn  func()
}

// Scheduler runs delayed actions on the simulation thread. Nothing sleeps:
// Fire is called once per tick and runs whatever the clock says is due.
type Scheduler struct {
	clock  core.Clock
	next   TimerID
	seq    uint64
	timers []timer
}

// NewScheduler creates a scheduler reading the given clock.
func NewScheduler(clock core.Clock) *Scheduler {
	return &Scheduler{clock: clock}
}

// After schedules fn to run once d has elapsed.
func (s *Scheduler) After(d time.Duration, fn func()) TimerID {
	s.next++
	s.seq++
	s.timers = append(s.timers, timer{
		id:  s.next,
		due: s.clock.Now().Add(d),
		seq: s.seq,
		fn:  fn,
	})
	return s.next
}

// Cancel removes a pending timer. Reports whether it was pending.
func (s *Scheduler) Cancel(id TimerID) bool {
	for i, t := range s.timers {
		if t.id == id {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return true
		}
	}
	return false
}

// CancelAll drops every pending timer.
func (s *Scheduler) CancelAll() {
	s.timers = s.timers[:0]
}

// Pending returns the number of timers waiting to fire.
func (s *Scheduler) Pending() int {
	return len(s.timers)
}

// Fire runs every due timer in due order and returns how many ran.
// Timers scheduled by a callback wait for the next Fire; timers cancelled
// by a callback do not run.
func (s *Scheduler) Fire() int {
	now := s.clock.Now()
	limit := s.seq
	ran := 0
	for {
		idx := -1
		for i, t := range s.timers {
			if t.seq > limit || t.due.After(now) {
				continue
			}
			if idx < 0 || t.due.Before(s.timers[idx].due) ||
				(t.due.Equal(s.timers[idx].due) && t.seq < s.timers[idx].seq) {
				idx = i
			}
		}
		if idx < 0 {
			return ran
		}
		t := s.timers[idx]
		s.timers = append(s.timers[:idx], s.timers[idx+1:]...)
		t.fn()
		ran++
	}
}
