package core

import (
	"testing"
	"time"
)

func TestTicksFor(t *testing.T) {
	tests := []struct {
		name     string
		d        time.Duration
		rate     int
		expected int
	}{
		{"half second at 60fps", 500 * time.Millisecond, 60, 30},
		{"one second at 60fps", time.Second, 60, 60},
		{"two seconds at 30fps", 2 * time.Second, 30, 60},
		{"tiny delay rounds up", time.Millisecond, 60, 1},
		{"zero delay", 0, 60, 0},
		{"default rate", time.Second, 0, 60},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := TicksFor(tc.d, tc.rate); got != tc.expected {
				t.Errorf("TicksFor(%v, %d) = %d, expected %d", tc.d, tc.rate, got, tc.expected)
			}
		})
	}
}

func TestSchedulerFiresAfterDelay(t *testing.T) {
	s := NewScheduler()
	fired := 0
	s.After(3, func() { fired++ })

	s.Advance()
	s.Advance()
	if fired != 0 {
		t.Fatal("callback fired too early")
	}

	s.Advance()
	if fired != 1 {
		t.Fatalf("callback should fire on third tick, fired=%d", fired)
	}

	s.Advance()
	if fired != 1 {
		t.Error("callback should fire only once")
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", s.Pending())
	}
}

func TestSchedulerOrder(t *testing.T) {
	s := NewScheduler()
	var order []int
	s.After(2, func() { order = append(order, 1) })
	s.After(1, func() { order = append(order, 2) })
	s.After(2, func() { order = append(order, 3) })

	s.Advance()
	s.Advance()

	expected := []int{2, 1, 3}
	if len(order) != len(expected) {
		t.Fatalf("order = %v, expected %v", order, expected)
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Fatalf("order = %v, expected %v", order, expected)
		}
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	fired := false
	id := s.After(1, func() { fired = true })
	s.Cancel(id)
	s.Cancel(999) // unknown id is ignored

	s.Advance()
	if fired {
		t.Error("cancelled callback should not fire")
	}
}

func TestSchedulerResetDropsPending(t *testing.T) {
	s := NewScheduler()
	fired := false
	s.After(1, func() { fired = true })

	s.Reset()
	s.Advance()

	if fired {
		t.Error("callback scheduled before Reset must not fire")
	}
}

func TestSchedulerResetFromCallback(t *testing.T) {
	s := NewScheduler()
	second := false
	s.After(1, func() { s.Reset() })
	s.After(1, func() { second = true })

	s.Advance()

	if second {
		t.Error("callback from the previous epoch fired after Reset inside the same tick")
	}
}

func TestSchedulerCallbackSchedulesMore(t *testing.T) {
	s := NewScheduler()
	fired := 0
	s.After(1, func() {
		fired++
		s.After(1, func() { fired++ })
	})

	s.Advance()
	if fired != 1 {
		t.Fatalf("fired = %d after first tick, expected 1", fired)
	}
	s.Advance()
	if fired != 2 {
		t.Fatalf("fired = %d after second tick, expected 2", fired)
	}
}
