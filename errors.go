package ecs

import (
	"github.com/rotisserie/eris"

	"github.com/tiger-punch-sports-club/ecsreg/sparse"
)

// Error kinds surfaced to callers, per spec §7. "Not found" on predicate and
// find operations (Has, FindComponent, ExistsComponent, IsAlive) is never an
// error — these three are the only kinds that ever leave this package.
var (
	// ErrComponentNotFound is returned by GetComponent when the entity is
	// dead or lacks the requested component type.
	ErrComponentNotFound = eris.New("ecs: component not found")

	// ErrIndexSpaceExhausted is returned by CreateEntity when the 22-bit
	// entity index space is full and no free index can be recycled.
	ErrIndexSpaceExhausted = eris.New("ecs: entity index space exhausted")

	// ErrCapacityExceeded is the same sentinel sparse.ErrCapacityExceeded is
	// wrapped around, re-exported so callers can classify errors returned
	// from this package's API with eris.Is without importing sparse.
	ErrCapacityExceeded = sparse.ErrCapacityExceeded
)
