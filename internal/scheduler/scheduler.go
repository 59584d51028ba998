// Package scheduler drives capture cycles on a fixed cadence.
package scheduler

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

// State of the scheduler loop.
type State int32

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// Cycle performs one pass of work. Failures are its own business; the
// scheduler only isolates panics.
type Cycle func(ctx context.Context)

// Scheduler runs a Cycle immediately, then again one interval after each
// cycle completes. Cycles never overlap.
type Scheduler struct {
	clock    clockwork.Clock
	interval time.Duration
	log      logrus.FieldLogger

	state  atomic.Int32
	cycles atomic.Int64
}

func New(clock clockwork.Clock, interval time.Duration, log logrus.FieldLogger) *Scheduler {
	s := &Scheduler{clock: clock, interval: interval, log: log}
	s.state.Store(int32(Running))
	return s
}

func (s *Scheduler) State() State {
	return State(s.state.Load())
}

// Cycles returns the number of completed cycles.
func (s *Scheduler) Cycles() int64 {
	return s.cycles.Load()
}

// Run loops until ctx is cancelled and returns ctx.Err().
func (s *Scheduler) Run(ctx context.Context, cycle Cycle) error {
	for {
		s.state.Store(int32(Running))
		s.runOnce(ctx, cycle)
		s.cycles.Add(1)
		s.state.Store(int32(Idle))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.clock.After(s.interval):
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context, cycle Cycle) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Errorf("cycle panicked: %v", r)
		}
	}()
	start := s.clock.Now()
	cycle(ctx)
	s.log.Debugf("cycle finished in %s", s.clock.Since(start))
}
