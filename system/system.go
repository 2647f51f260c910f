// Package system provides a minimal insertion-order runner for code built
// on top of an ecs.Registry. Unlike rdtc8822-debug-L1JGO-Whale's own
// system.Runner — which sorts registered systems into fixed phases
// (input/update/output/persist/...) for a networked game-server tick — a
// registry core has no opinion on tick phases, so Runner keeps only
// registration order (spec §6/§9: systems are application-level code built
// atop the registry, not something the registry itself schedules).
package system

import (
	"context"
	"time"
)

// System is anything a Runner can tick. dt is the elapsed time since the
// previous tick.
type System interface {
	Update(ctx context.Context, dt time.Duration) error
}

// Runner executes registered systems once per tick, in the order they were
// registered. It stops and returns the first error a system produces.
type Runner struct {
	systems []System
}

// NewRunner returns an empty Runner.
func NewRunner() *Runner {
	return &Runner{systems: make([]System, 0, 8)}
}

// Register appends s to the end of the run order.
func (r *Runner) Register(s System) {
	r.systems = append(r.systems, s)
}

// Tick runs every registered system once, in registration order, stopping
// at the first error.
func (r *Runner) Tick(ctx context.Context, dt time.Duration) error {
	for _, s := range r.systems {
		if err := s.Update(ctx, dt); err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return nil
}

// Len reports how many systems are registered.
func (r *Runner) Len() int {
	return len(r.systems)
}
