package fishing

import (
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/tui-fishing/internal/core"
)

func TestSchedulerFiresInDueOrder(t *testing.T) {
	clock := core.NewManualClock(time.Unix(0, 0))
	s := NewScheduler(clock)

	var order []string
	s.After(2*time.Second, func() { order = append(order, "b") })
	s.After(time.Second, func() { order = append(order, "a") })
	s.After(2*time.Second, func() { order = append(order, "c") })

	if n := s.Fire(); n != 0 {
		t.Fatalf("Fire() ran %d timers before any were due", n)
	}

	clock.Advance(2 * time.Second)
	if n := s.Fire(); n != 3 {
		t.Fatalf("Fire() ran %d timers, expected 3", n)
	}
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, expected %v", order, want)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", s.Pending())
	}
}

func TestSchedulerCancel(t *testing.T) {
	clock := core.NewManualClock(time.Unix(0, 0))
	s := NewScheduler(clock)

	fired := false
	id := s.After(time.Second, func() { fired = true })
	if !s.Cancel(id) {
		t.Fatal("Cancel() of a pending timer returned false")
	}
	if s.Cancel(id) {
		t.Error("second Cancel() should return false")
	}

	clock.Advance(time.Hour)
	s.Fire()
	if fired {
		t.Error("cancelled timer fired")
	}
}

func TestSchedulerCallbackInteractions(t *testing.T) {
	clock := core.NewManualClock(time.Unix(0, 0))
	s := NewScheduler(clock)

	var ran []string
	var victim TimerID
	s.After(0, func() {
		ran = append(ran, "first")
		s.Cancel(victim)
		s.After(0, func() { ran = append(ran, "scheduled") })
	})
	victim = s.After(0, func() { ran = append(ran, "victim") })

	s.Fire()
	if want := []string{"first"}; !reflect.DeepEqual(ran, want) {
		t.Fatalf("first Fire() ran %v, expected %v", ran, want)
	}

	s.Fire()
	if want := []string{"first", "scheduled"}; !reflect.DeepEqual(ran, want) {
		t.Errorf("second Fire() ran %v, expected %v", ran, want)
	}
}

func TestSchedulerCancelAll(t *testing.T) {
	clock := core.NewManualClock(time.Unix(0, 0))
	s := NewScheduler(clock)
	for i := 0; i < 5; i++ {
		s.After(time.Duration(i)*time.Second, func() { t.Error("timer fired after CancelAll") })
	}
	s.CancelAll()
	clock.Advance(time.Minute)
	if n := s.Fire(); n != 0 || s.Pending() != 0 {
		t.Errorf("Fire() = %d, Pending() = %d after CancelAll", n, s.Pending())
	}
}
