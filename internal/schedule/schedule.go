// Package schedule runs deferred callbacks on the caller's goroutine.
//
// Nothing here starts goroutines: callbacks only run inside RunDue or Drain,
// so they never overlap with the event handling that scheduled them.
package schedule

import (
	"context"
	"sort"
	"time"
)

// Clock abstracts time for tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the wall clock.
var SystemClock Clock = systemClock{}

// Token identifies a scheduled callback and can cancel it.
type Token struct {
	due       time.Time
	seq       uint64
	fn        func()
	cancelled bool
	fired     bool
}

// Cancel drops the callback if it has not run yet. Safe to call more than once.
func (t *Token) Cancel() {
	if t != nil {
		t.cancelled = true
	}
}

// Pending reports whether the callback is still waiting to run.
func (t *Token) Pending() bool {
	return t != nil && !t.cancelled && !t.fired
}

// Scheduler is a single-threaded timer queue. Not safe for concurrent use.
type Scheduler struct {
	clock Clock
	queue []*Token
	seq   uint64
}

// New returns a scheduler on clock; nil means SystemClock.
func New(clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock
	}
	return &Scheduler{clock: clock}
}

// Now returns the scheduler's current time.
func (s *Scheduler) Now() time.Time { return s.clock.Now() }

// After schedules fn to run once d has elapsed.
func (s *Scheduler) After(d time.Duration, fn func()) *Token {
	s.seq++
	t := &Token{due: s.clock.Now().Add(d), seq: s.seq, fn: fn}
	i := sort.Search(len(s.queue), func(i int) bool { return s.queue[i].after(t) })
	s.queue = append(s.queue, nil)
	copy(s.queue[i+1:], s.queue[i:])
	s.queue[i] = t
	return t
}

func (t *Token) after(o *Token) bool {
	if t.due.Equal(o.due) {
		return t.seq > o.seq
	}
	return t.due.After(o.due)
}

// Pending returns the number of callbacks still waiting to run.
func (s *Scheduler) Pending() int {
	s.compact()
	return len(s.queue)
}

// NextDue returns the due time of the earliest pending callback.
func (s *Scheduler) NextDue() (time.Time, bool) {
	s.compact()
	if len(s.queue) == 0 {
		return time.Time{}, false
	}
	return s.queue[0].due, true
}

// RunDue runs every callback due at or before now, in due order, and
// returns how many ran. Callbacks scheduled by a callback with zero delay
// run in the same pass.
func (s *Scheduler) RunDue() int {
	ran := 0
	for {
		s.compact()
		if len(s.queue) == 0 || s.queue[0].due.After(s.clock.Now()) {
			return ran
		}
		t := s.queue[0]
		s.queue = s.queue[1:]
		t.fired = true
		t.fn()
		ran++
	}
}

// Drain sleeps until every pending callback has run or ctx is done.
func (s *Scheduler) Drain(ctx context.Context) error {
	for {
		s.RunDue()
		due, ok := s.NextDue()
		if !ok {
			return nil
		}
		timer := time.NewTimer(due.Sub(s.clock.Now()))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

func (s *Scheduler) compact() {
	n := 0
	for _, t := range s.queue {
		if !t.cancelled {
			s.queue[n] = t
			n++
		}
	}
	for i := n; i < len(s.queue); i++ {
		s.queue[i] = nil
	}
	s.queue = s.queue[:n]
}
