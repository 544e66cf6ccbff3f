package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/valvenet/search"
)

// teamAgents resolves the team from config, with --agents, --budget and
// --start taking precedence. Any of those flags replaces configured members.
func (a *app) teamAgents(cmd *cobra.Command, agents, budget int, start string) []search.Agent {
	f := cmd.Flags()
	if !f.Changed("agents") && !f.Changed("budget") && !f.Changed("start") {
		return a.cfg.Agents()
	}
	if !f.Changed("agents") {
		agents = len(a.cfg.Agents())
	}
	if !f.Changed("budget") {
		budget = a.cfg.Team.Budget
	}
	if start == "" {
		start = a.cfg.Start
	}
	team := make([]search.Agent, agents)
	for i := range team {
		team[i] = search.Agent{Start: start, Budget: budget}
	}
	return team
}

func (a *app) teamCommand() *cobra.Command {
	var (
		agents     int
		budget     int
		start      string
		plan       bool
		noSymmetry bool
	)
	cmd := &cobra.Command{
		Use:   "team [file]",
		Short: "Print the best combined release of several agents",
		Long: `Team searches for the best combined release of agents that move and open valves in
parallel. A valve opened by one agent is opened for all.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("agents") && agents < 1 {
				return fmt.Errorf("--agents: %w: %d", search.ErrInvalidAgentCount, agents)
			}
			team := a.teamAgents(cmd, agents, budget, start)
			origins := make([]string, len(team))
			for i, ag := range team {
				origins[i] = ag.Start
			}

			ctx := cmd.Context()
			g, err := readGraph(cmd, args, origins...)
			if err != nil {
				return err
			}
			var opts []search.Option
			if noSymmetry {
				opts = append(opts, search.WithoutSymmetryReduction())
			}
			e, err := a.engine(ctx, g, origins, opts...)
			if err != nil {
				return err
			}

			loggerFromContext(ctx).Debug("team", "agents", len(team))
			p := newProgress(loggerFromContext(ctx))
			res, err := e.Multi(team)
			if err != nil {
				return err
			}
			logResult(ctx, p, "team search finished", res)

			fmt.Fprintln(out(cmd), res.Score)
			if plan {
				writePlan(out(cmd), res.Plan, true)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&agents, "agents", "n", 2, "number of identical agents (overrides config)")
	cmd.Flags().IntVarP(&budget, "budget", "t", 26, "minutes per agent (overrides config)")
	cmd.Flags().StringVarP(&start, "start", "s", "", "start valve for every agent (overrides config)")
	cmd.Flags().BoolVarP(&plan, "plan", "p", false, "print the opening order after the score")
	cmd.Flags().BoolVar(&noSymmetry, "no-symmetry", false, "do not merge states that differ only in agent order")
	return cmd
}
