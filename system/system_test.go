package system_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tiger-punch-sports-club/ecsreg/system"
)

type recorder struct {
	calls *[]int
	id    int
}

func (r recorder) Update(ctx context.Context, dt time.Duration) error {
	*r.calls = append(*r.calls, r.id)
	return nil
}

type failing struct{ err error }

func (f failing) Update(ctx context.Context, dt time.Duration) error { return f.err }

func TestRunnerTicksInRegistrationOrder(t *testing.T) {
	var calls []int
	r := system.NewRunner()
	r.Register(recorder{calls: &calls, id: 1})
	r.Register(recorder{calls: &calls, id: 2})
	r.Register(recorder{calls: &calls, id: 3})

	require.NoError(t, r.Tick(context.Background(), time.Millisecond))
	require.Equal(t, []int{1, 2, 3}, calls)
}

func TestRunnerStopsAtFirstError(t *testing.T) {
	var calls []int
	r := system.NewRunner()
	boom := errors.New("boom")
	r.Register(recorder{calls: &calls, id: 1})
	r.Register(failing{err: boom})
	r.Register(recorder{calls: &calls, id: 2})

	err := r.Tick(context.Background(), time.Millisecond)
	require.ErrorIs(t, err, boom)
	require.Equal(t, []int{1}, calls)
}

func TestRunnerLen(t *testing.T) {
	r := system.NewRunner()
	require.Equal(t, 0, r.Len())
	r.Register(recorder{calls: &[]int{}})
	require.Equal(t, 1, r.Len())
}
