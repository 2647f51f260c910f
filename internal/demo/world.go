// Package demo builds a sample world over an ecs.Registry from a
// scenario.Scenario, for the ecsreg CLI's run and bench subcommands to
// exercise. It defines a handful of toy component types and a
// MovementSystem that advances position by velocity each tick — just
// enough domain content to demonstrate CreateEntity, AssignComponent and
// Each2 against a config-driven entity count, the way
// rdtc8822-debug-L1JGO-Whale's own cmd/l1jgo/main.go wires its config into
// concrete server state before entering its tick loop.
package demo

import (
	"context"
	"math/rand"
	"time"

	"github.com/tiger-punch-sports-club/ecsreg"
	"github.com/tiger-punch-sports-club/ecsreg/internal/scenario"
)

// Position is a 2D position component.
type Position struct{ X, Y float64 }

// Velocity is a 2D velocity component, in units per second.
type Velocity struct{ DX, DY float64 }

// Health is a simple hit-point component.
type Health struct{ HP int }

// Build constructs entities per sc and scatters components across them
// according to sc.Components, using rng for fraction-based selection.
// Unknown component names in sc.Components are ignored — a scenario file
// authored against a future component set should degrade gracefully rather
// than fail the whole run.
func Build(r *ecs.Registry, sc *scenario.Scenario, rng *rand.Rand) ([]ecs.Entity, error) {
	entities := make([]ecs.Entity, 0, sc.Entities)
	for i := 0; i < sc.Entities; i++ {
		e, err := r.CreateEntity()
		if err != nil {
			return entities, err
		}
		entities = append(entities, e)
	}

	for _, mix := range sc.Components {
		for _, e := range entities {
			if rng.Float64() >= mix.Fraction {
				continue
			}
			if err := assignByName(r, e, mix.Name, rng); err != nil {
				return entities, err
			}
		}
	}
	return entities, nil
}

func assignByName(r *ecs.Registry, e ecs.Entity, name string, rng *rand.Rand) error {
	var err error
	switch name {
	case "position":
		_, err = ecs.AssignComponent(r, e, Position{X: rng.Float64() * 100, Y: rng.Float64() * 100})
	case "velocity":
		_, err = ecs.AssignComponent(r, e, Velocity{DX: rng.Float64()*2 - 1, DY: rng.Float64()*2 - 1})
	case "health":
		_, err = ecs.AssignComponent(r, e, Health{HP: 100})
	}
	return err
}

// MovementSystem advances every (Position, Velocity) entity once per tick.
type MovementSystem struct {
	Registry *ecs.Registry
}

// Update implements system.System.
func (m MovementSystem) Update(ctx context.Context, dt time.Duration) error {
	seconds := dt.Seconds()
	ecs.Each2(m.Registry, func(e ecs.Entity, p *Position, v *Velocity) bool {
		p.X += v.DX * seconds
		p.Y += v.DY * seconds
		return true
	})
	return nil
}
