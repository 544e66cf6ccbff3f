package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valvenet/config"
	"github.com/katalvlaran/valvenet/distance"
	"github.com/katalvlaran/valvenet/search"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, "AA", cfg.Start)
	require.Equal(t, 30, cfg.Budget)
	require.Equal(t, distance.MethodBFS, cfg.Method())
	require.Equal(t, []search.Agent{{Start: "AA", Budget: 26}, {Start: "AA", Budget: 26}}, cfg.Agents())
}

func TestParse(t *testing.T) {
	cfg, err := config.Parse([]byte(`
start: BB
budget: 12
team:
  budget: 10
  members:
    - start: CC
    - budget: 4
distance:
  method: floyd-warshall
`))
	require.NoError(t, err)
	require.Equal(t, "BB", cfg.Start)
	require.Equal(t, 12, cfg.Budget)
	require.Equal(t, distance.MethodFloydWarshall, cfg.Method())
	require.Equal(t, []search.Agent{{Start: "CC", Budget: 10}, {Start: "BB", Budget: 4}}, cfg.Agents())
}

func TestParse_PartialKeepsDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte("team:\n  agents: 3\n"))
	require.NoError(t, err)
	require.Equal(t, 30, cfg.Budget)
	require.Len(t, cfg.Agents(), 3)
	require.Equal(t, 26, cfg.Agents()[2].Budget)

	empty, err := config.Parse(nil)
	require.NoError(t, err)
	require.Equal(t, config.Default(), empty)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"negative budget":      "budget: -1\n",
		"negative team budget": "team:\n  budget: -5\n",
		"no agents":            "team:\n  agents: 0\n",
		"negative member":      "team:\n  members:\n    - budget: -2\n",
		"unknown method":       "distance:\n  method: dijkstra\n",
		"empty start":          "start: \"\"\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	_, err := config.Parse([]byte("budget: [1, 2\n"))
	require.Error(t, err)
	require.NotErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Parse([]byte("budgte: 3\n"))
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "valvenet.yaml")
	require.NoError(t, os.WriteFile(path, []byte("budget: 20\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 20, cfg.Budget)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
