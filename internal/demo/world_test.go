package demo_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tiger-punch-sports-club/ecsreg"
	"github.com/tiger-punch-sports-club/ecsreg/internal/demo"
	"github.com/tiger-punch-sports-club/ecsreg/internal/scenario"
)

func TestBuildCreatesRequestedEntityCount(t *testing.T) {
	r := ecs.NewRegistry()
	sc := &scenario.Scenario{Entities: 50}
	entities, err := demo.Build(r, sc, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Len(t, entities, 50)
	for _, e := range entities {
		require.True(t, r.IsAlive(e))
	}
}

func TestBuildAssignsFullFractionToEveryEntity(t *testing.T) {
	r := ecs.NewRegistry()
	sc := &scenario.Scenario{
		Entities: 30,
		Components: []scenario.ComponentMix{
			{Name: "position", Fraction: 1.0},
		},
	}
	entities, err := demo.Build(r, sc, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	for _, e := range entities {
		require.True(t, ecs.ExistsComponent[demo.Position](r, e))
	}
}

func TestBuildIgnoresUnknownComponentName(t *testing.T) {
	r := ecs.NewRegistry()
	sc := &scenario.Scenario{
		Entities: 5,
		Components: []scenario.ComponentMix{
			{Name: "does-not-exist", Fraction: 1.0},
		},
	}
	_, err := demo.Build(r, sc, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
}

func TestMovementSystemAdvancesPosition(t *testing.T) {
	r := ecs.NewRegistry()
	e, err := r.CreateEntity()
	require.NoError(t, err)
	_, err = ecs.AssignComponent(r, e, demo.Position{X: 0, Y: 0})
	require.NoError(t, err)
	_, err = ecs.AssignComponent(r, e, demo.Velocity{DX: 2, DY: 0})
	require.NoError(t, err)

	sys := demo.MovementSystem{Registry: r}
	require.NoError(t, sys.Update(context.Background(), time.Second))

	p, ok := ecs.FindComponent[demo.Position](r, e)
	require.True(t, ok)
	require.InDelta(t, 2.0, p.X, 1e-9)
}
