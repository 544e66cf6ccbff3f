package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valvenet/builder"
	"github.com/katalvlaran/valvenet/config"
	"github.com/katalvlaran/valvenet/internal/fixture"
	"github.com/katalvlaran/valvenet/parse"
)

// run executes the CLI with stdin and returns stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestSolve(t *testing.T) {
	stdout, _, err := run(t, fixture.Sample, "solve")
	require.NoError(t, err)
	require.Equal(t, "1651\n", stdout)

	path := writeFile(t, "net.txt", fixture.Sample)
	stdout, _, err = run(t, "", "solve", path, "--budget", "30")
	require.NoError(t, err)
	require.Equal(t, "1651\n", stdout)
}

func TestSolve_Plan(t *testing.T) {
	stdout, _, err := run(t, fixture.Sample, "solve", "--plan")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Equal(t, "1651", lines[0])
	require.Greater(t, len(lines), 1)
	for _, l := range lines[1:] {
		require.Contains(t, l, "open ")
	}
}

func TestSolve_Stepwise(t *testing.T) {
	stdout, _, err := run(t, fixture.Sample, "solve", "--stepwise", "-t", "20")
	require.NoError(t, err)
	want, _, err := run(t, fixture.Sample, "solve", "-t", "20")
	require.NoError(t, err)
	require.Equal(t, want, stdout)
}

func TestSolve_MethodFlag(t *testing.T) {
	stdout, _, err := run(t, fixture.Sample, "--method", "floyd-warshall", "solve")
	require.NoError(t, err)
	require.Equal(t, "1651\n", stdout)

	_, _, err = run(t, fixture.Sample, "--method", "astar", "solve")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestTeam(t *testing.T) {
	stdout, _, err := run(t, fixture.Sample, "team")
	require.NoError(t, err)
	require.Equal(t, "1707\n", stdout)

	stdout, _, err = run(t, fixture.Sample, "team", "--agents", "2", "--budget", "26", "--no-symmetry")
	require.NoError(t, err)
	require.Equal(t, "1707\n", stdout)

	_, _, err = run(t, fixture.Sample, "team", "--agents", "0")
	require.Error(t, err)
}

func TestTeam_Plan(t *testing.T) {
	stdout, _, err := run(t, fixture.Sample, "team", "--plan")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Equal(t, "1707", lines[0])
	for _, l := range lines[1:] {
		require.Contains(t, l, "agent ")
	}
}

func TestConfigFile(t *testing.T) {
	cfg := writeFile(t, "valvenet.yaml", "budget: 30\nteam:\n  agents: 1\n  budget: 30\n")
	stdout, _, err := run(t, fixture.Sample, "--config", cfg, "team")
	require.NoError(t, err)
	require.Equal(t, "1651\n", stdout)

	// Flags win over the file.
	stdout, _, err = run(t, fixture.Sample, "-c", cfg, "team", "--agents", "2", "--budget", "26")
	require.NoError(t, err)
	require.Equal(t, "1707\n", stdout)

	bad := writeFile(t, "bad.yaml", "budget: -4\n")
	_, _, err = run(t, fixture.Sample, "-c", bad, "solve")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestGreedy(t *testing.T) {
	stdout, _, err := run(t, fixture.Sample, "greedy")
	require.NoError(t, err)
	score, err := strconv.Atoi(strings.TrimSpace(stdout))
	require.NoError(t, err)
	require.Positive(t, score)
	require.LessOrEqual(t, score, fixture.SampleSolo)
}

func TestDistances(t *testing.T) {
	input := "Valve AA has flow rate=0; tunnel leads to valve BB\n" +
		"Valve BB has flow rate=3; tunnels lead to valves AA, CC\n" +
		"Valve CC has flow rate=5; tunnel leads to valve BB\n" +
		"Valve DD has flow rate=1; tunnel leads to valve CC\n"
	stdout, _, err := run(t, input, "distances")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.Len(t, lines, 5)
	require.Equal(t, []string{"BB", "CC", "DD"}, strings.Fields(lines[0]))
	require.Equal(t, []string{"BB", "0", "1", "-"}, strings.Fields(lines[1]))
	require.Equal(t, []string{"AA", "1", "2", "-"}, strings.Fields(lines[4]))
}

func TestRender(t *testing.T) {
	stdout, _, err := run(t, fixture.Sample, "render")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stdout, "digraph valves {"))

	stdout, _, err = run(t, fixture.Sample, "render", "--plan", "solo")
	require.NoError(t, err)
	require.Contains(t, stdout, `label="solo plan: 1651"`)

	path := filepath.Join(t.TempDir(), "net.dot")
	stdout, _, err = run(t, fixture.Sample, "render", "--plan", "team", "-o", path)
	require.NoError(t, err)
	require.Empty(t, stdout)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `label="team plan: 1707"`)

	_, _, err = run(t, fixture.Sample, "render", "--format", "png")
	require.Error(t, err)
	_, _, err = run(t, fixture.Sample, "render", "--plan", "all")
	require.Error(t, err)
}

func TestInputErrors(t *testing.T) {
	_, _, err := run(t, "Valve AA has flow rate=x; tunnel leads to valve BB\n", "solve")
	require.ErrorIs(t, err, parse.ErrMalformedRecord)

	_, _, err = run(t, "Valve AA has flow rate=0; tunnel leads to valve ZZ\n", "solve")
	require.ErrorIs(t, err, builder.ErrUnknownNeighborReference)

	_, _, err = run(t, fixture.Sample, "solve", "--start", "QQ")
	require.ErrorIs(t, err, builder.ErrStartNotFound)

	_, _, err = run(t, "", "solve", filepath.Join(t.TempDir(), "missing.txt"))
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestVerboseLogsToStderr(t *testing.T) {
	stdout, stderr, err := run(t, fixture.Sample, "-v", "solve")
	require.NoError(t, err)
	require.Equal(t, "1651\n", stdout)
	require.Contains(t, stderr, "search finished")
	require.Contains(t, stderr, "loaded network")
}

func TestSolve_SelfTunnelInput(t *testing.T) {
	input := "Valve AA has flow rate=0; tunnels lead to valves AA, BB\n" +
		"Valve BB has flow rate=5; tunnel leads to valve AA\n"
	stdout, _, err := run(t, input, "solve", "-t", "5")
	require.NoError(t, err)
	require.Equal(t, "15\n", stdout)
}
