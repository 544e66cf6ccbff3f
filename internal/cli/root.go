package cli

import (
	"context"
	"fmt"
	"io"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/valvenet/config"
)

// version is set with -ldflags "-X github.com/katalvlaran/valvenet/internal/cli.version=...".
var version = "dev"

// Log levels exported for use in main.go.
const (
	LogDebug = charmlog.DebugLevel
	LogInfo  = charmlog.InfoLevel
)

// app holds state shared by all commands of one invocation.
type app struct {
	verbose    bool
	configPath string
	method     string
	cfg        config.Config
}

// NewRootCommand builds the valvenet command tree. Output and logs go to
// the writers set on the returned command (stdout and stderr by default).
func NewRootCommand() *cobra.Command {
	a := &app{cfg: config.Default()}

	root := &cobra.Command{
		Use:   "valvenet",
		Short: "valvenet finds the best order to open valves in a tunnel network",
		Long: `valvenet reads a valve network, one "Valve XX has flow rate=N; tunnels lead to valves ..."
line per valve, and computes the largest total pressure release reachable within a time budget
by one agent or by a team of agents.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := LogInfo
			if a.verbose {
				level = LogDebug
			}
			logger := newLogger(cmd.ErrOrStderr(), level)
			cmd.SetContext(withLogger(cmd.Context(), logger))
			return a.loadConfig(logger)
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	flags.StringVarP(&a.configPath, "config", "c", "", "YAML run configuration")
	flags.StringVar(&a.method, "method", "", "distance method: bfs or floyd-warshall (overrides config)")

	root.AddCommand(a.solveCommand())
	root.AddCommand(a.teamCommand())
	root.AddCommand(a.greedyCommand())
	root.AddCommand(a.distancesCommand())
	root.AddCommand(a.renderCommand())

	return root
}

// Execute runs the CLI with ctx; cancelling ctx stops a running search.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func (a *app) loadConfig(logger *charmlog.Logger) error {
	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
		logger.Debug("loaded config", "path", a.configPath)
	}
	if a.method != "" {
		a.cfg.Distance.Method = a.method
		if err := a.cfg.Validate(); err != nil {
			return fmt.Errorf("--method: %w", err)
		}
	}
	return nil
}

// out returns the command's result writer.
func out(cmd *cobra.Command) io.Writer { return cmd.OutOrStdout() }
