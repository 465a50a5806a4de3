package engine

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ElizabethCF01/system-monitor-cli/model"
)

// buildFunc adapts a function to the Builder interface.
type buildFunc func() (*model.Snapshot, error)

func (f buildFunc) Build() (*model.Snapshot, error) { return f() }

func TestRefresherInitialStatePending(t *testing.T) {
	r := NewRefresher(buildFunc(func() (*model.Snapshot, error) { return nil, nil }), time.Second)
	if got := r.State().Phase; got != PhasePending {
		t.Errorf("initial phase = %v, want %v", got, PhasePending)
	}
}

func TestRefresherPublishesSuccessAndFailure(t *testing.T) {
	var fail bool
	r := NewRefresher(buildFunc(func() (*model.Snapshot, error) {
		if fail {
			return nil, errors.New("provider down")
		}
		return &model.Snapshot{UptimeSeconds: 42}, nil
	}), time.Second)
	r.mu.Lock()
	r.active = true
	r.mu.Unlock()

	r.runCycle()
	st := r.State()
	if st.Phase != PhaseReady {
		t.Fatalf("phase = %v, want %v", st.Phase, PhaseReady)
	}
	if st.Snapshot == nil || st.Snapshot.UptimeSeconds != 42 {
		t.Errorf("snapshot not published: %+v", st.Snapshot)
	}

	fail = true
	r.runCycle()
	st = r.State()
	if st.Phase != PhaseFailed {
		t.Fatalf("phase = %v, want %v", st.Phase, PhaseFailed)
	}
	if st.Err != "provider down" {
		t.Errorf("err = %q, want %q", st.Err, "provider down")
	}
	if st.Snapshot != nil {
		t.Errorf("failed state kept a stale snapshot: %+v", st.Snapshot)
	}

	// Recovery: Failed -> Ready on the next successful cycle.
	fail = false
	r.runCycle()
	if got := r.State().Phase; got != PhaseReady {
		t.Errorf("phase after recovery = %v, want %v", got, PhaseReady)
	}
}

func TestRefresherLastCompletedWins(t *testing.T) {
	slowStarted := make(chan struct{})
	slowRelease := make(chan struct{})
	slowDone := make(chan struct{})

	var calls atomic.Int32
	r := NewRefresher(buildFunc(nil), time.Second)
	r.builder = buildFunc(func() (*model.Snapshot, error) {
		if calls.Add(1) == 1 {
			// First cycle: blocks until the second has published.
			close(slowStarted)
			<-slowRelease
			return &model.Snapshot{UptimeSeconds: 1}, nil
		}
		return &model.Snapshot{UptimeSeconds: 2}, nil
	})
	r.mu.Lock()
	r.active = true
	r.mu.Unlock()

	go func() {
		r.runCycle() // slow cycle, started first
		close(slowDone)
	}()
	<-slowStarted
	r.runCycle() // fast cycle, started second, completes first
	close(slowRelease)
	<-slowDone

	// The slow cycle completed last, so its snapshot is current even
	// though it started earlier.
	st := r.State()
	if st.Snapshot == nil || st.Snapshot.UptimeSeconds != 1 {
		t.Errorf("state = %+v, want last-completed cycle's snapshot (uptime 1)", st.Snapshot)
	}
}

func TestRefresherDiscardsAfterStop(t *testing.T) {
	release := make(chan struct{})
	r := NewRefresher(buildFunc(func() (*model.Snapshot, error) {
		<-release
		return &model.Snapshot{UptimeSeconds: 99}, nil
	}), time.Second)
	r.Start()

	done := make(chan struct{})
	go func() {
		r.runCycle()
		close(done)
	}()

	r.Stop()
	close(release)
	<-done

	st := r.State()
	if st.Phase == PhaseReady && st.Snapshot != nil && st.Snapshot.UptimeSeconds == 99 {
		t.Errorf("late cycle mutated state after Stop: %+v", st)
	}
}

func TestRefresherStopIdempotent(t *testing.T) {
	r := NewRefresher(buildFunc(func() (*model.Snapshot, error) { return nil, nil }), time.Second)
	r.Start()
	r.Stop()
	r.Stop() // second Stop must not panic on the closed channel
}
