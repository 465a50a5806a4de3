package engine

import (
	"sync"
	"time"

	"github.com/ElizabethCF01/system-monitor-cli/model"
)

// Phase is the lifecycle state of the refresh loop.
type Phase int

const (
	// PhasePending means no cycle has completed yet.
	PhasePending Phase = iota
	// PhaseReady means the last completed cycle produced a snapshot.
	PhaseReady
	// PhaseFailed means the last completed cycle failed.
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	}
	return "pending"
}

// RefreshState is the single display-worthy result. Exactly one of
// Snapshot or Err is meaningful, selected by Phase; a failure fully
// replaces any previously held snapshot.
type RefreshState struct {
	Phase    Phase
	Snapshot *model.Snapshot
	Err      string
}

// Refresher drives a Builder on a fixed interval. Cycles are not
// serialized: a tick fires a new cycle regardless of whether earlier
// ones are still in flight, and whichever cycle completes last wins the
// state slot. After Stop, in-flight cycles discard their results.
type Refresher struct {
	builder  Builder
	interval time.Duration

	mu     sync.Mutex
	active bool
	state  RefreshState

	ticker *time.Ticker
	done   chan struct{}
}

// NewRefresher creates a stopped refresher in the pending state.
func NewRefresher(b Builder, interval time.Duration) *Refresher {
	return &Refresher{
		builder:  b,
		interval: interval,
		state:    RefreshState{Phase: PhasePending},
	}
}

// Start fires an immediate cycle and then one per interval until Stop.
func (r *Refresher) Start() {
	r.mu.Lock()
	r.active = true
	r.mu.Unlock()

	r.ticker = time.NewTicker(r.interval)
	r.done = make(chan struct{})

	go r.runCycle()
	go func() {
		for {
			select {
			case <-r.ticker.C:
				go r.runCycle()
			case <-r.done:
				return
			}
		}
	}()
}

// Stop deactivates the refresher. Results from cycles still in flight
// are discarded, never published.
func (r *Refresher) Stop() {
	r.mu.Lock()
	if !r.active {
		r.mu.Unlock()
		return
	}
	r.active = false
	r.mu.Unlock()

	if r.ticker != nil {
		r.ticker.Stop()
	}
	if r.done != nil {
		close(r.done)
	}
}

// State returns the result of the most recently completed cycle.
func (r *Refresher) State() RefreshState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *Refresher) runCycle() {
	snap, err := r.builder.Build()

	r.mu.Lock()
	defer r.mu.Unlock()
	// Checked after the build: a cycle resolving after Stop must not
	// mutate the state slot.
	if !r.active {
		return
	}
	if err != nil {
		r.state = RefreshState{Phase: PhaseFailed, Err: err.Error()}
		return
	}
	r.state = RefreshState{Phase: PhaseReady, Snapshot: snap}
}
