package scenario_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tiger-punch-sports-club/ecsreg/internal/scenario"
)

func TestLoadParsesScenario(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "s.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: stress
entities: 200
ticks: 50
components:
  - name: position
    fraction: 1.0
  - name: velocity
    fraction: 0.3
`), 0o644))

	s, err := scenario.Load(path)
	require.NoError(t, err)
	require.Equal(t, "stress", s.Name)
	require.Equal(t, 200, s.Entities)
	require.Len(t, s.Components, 2)
	require.Equal(t, "velocity", s.Components[1].Name)
}

func TestLoadRejectsOutOfRangeFraction(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: bad
entities: 10
components:
  - name: position
    fraction: 1.5
`), 0o644))

	_, err := scenario.Load(path)
	require.Error(t, err)
}

func TestLoadRejectsNegativeEntityCount(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "neg.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: neg
entities: -1
`), 0o644))

	_, err := scenario.Load(path)
	require.Error(t, err)
}

func TestDefaultScenarioIsUsable(t *testing.T) {
	s := scenario.Default()
	require.Greater(t, s.Entities, 0)
	require.NotEmpty(t, s.Components)
}
