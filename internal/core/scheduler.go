package core

import "time"

// TimerID identifies a callback registered with a Scheduler.
type TimerID uint64

type timer struct {
	id    TimerID
	due   uint64
	epoch uint64
	fn    func()
}

// Scheduler runs delayed callbacks on the game tick.
//
// Every callback is tagged with the epoch it was scheduled in. Reset bumps the
// epoch, so a callback queued before a restart is dropped instead of firing
// into the new round.
type Scheduler struct {
	now     uint64
	epoch   uint64
	nextID  TimerID
	pending []timer
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// TicksFor converts a display delay into a tick count at the given rate.
// Any positive delay lasts at least one tick.
func TicksFor(d time.Duration, tickRate int) int {
	if d <= 0 {
		return 0
	}
	if tickRate <= 0 {
		tickRate = DefaultConfig().TickRate
	}
	ticks := int(d * time.Duration(tickRate) / time.Second)
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// After schedules fn to run once ticks calls to Advance have happened.
// A zero or negative delay fires on the next Advance.
func (s *Scheduler) After(ticks int, fn func()) TimerID {
	if ticks < 1 {
		ticks = 1
	}
	s.nextID++
	s.pending = append(s.pending, timer{
		id:    s.nextID,
		due:   s.now + uint64(ticks),
		epoch: s.epoch,
		fn:    fn,
	})
	return s.nextID
}

// Cancel removes a pending callback. Unknown ids are ignored.
func (s *Scheduler) Cancel(id TimerID) {
	for i, t := range s.pending {
		if t.id == id {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}

// Advance moves time forward by one tick and runs every due callback in the
// order it was scheduled. Callbacks may schedule further callbacks; those run
// on a later tick.
func (s *Scheduler) Advance() {
	s.now++

	var due []timer
	kept := s.pending[:0]
	for _, t := range s.pending {
		if t.due <= s.now {
			due = append(due, t)
		} else {
			kept = append(kept, t)
		}
	}
	s.pending = kept

	for _, t := range due {
		// A callback earlier in this batch may have reset the scheduler.
		if t.epoch != s.epoch {
			continue
		}
		t.fn()
	}
}

// Reset drops every pending callback and invalidates any that are mid-flight.
func (s *Scheduler) Reset() {
	s.epoch++
	s.pending = s.pending[:0]
}

// Pending returns the number of callbacks waiting to fire.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// Now returns the number of ticks advanced so far.
func (s *Scheduler) Now() uint64 {
	return s.now
}
