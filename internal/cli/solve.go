package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/valvenet/search"
)

// soloFlags are shared by solve and greedy.
type soloFlags struct {
	budget int
	start  string
	plan   bool
}

func (f *soloFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.budget, "budget", "t", 30, "minutes available (overrides config)")
	cmd.Flags().StringVarP(&f.start, "start", "s", "", "start valve (overrides config)")
	cmd.Flags().BoolVarP(&f.plan, "plan", "p", false, "print the opening order after the score")
}

// resolve fills unset flags from the config.
func (f *soloFlags) resolve(cmd *cobra.Command, a *app) {
	if !cmd.Flags().Changed("budget") {
		f.budget = a.cfg.Budget
	}
	if f.start == "" {
		f.start = a.cfg.Start
	}
}

func (a *app) solveCommand() *cobra.Command {
	var (
		flags    soloFlags
		stepwise bool
	)
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Print the best release of a single agent",
		Long: `Solve reads a valve network and prints the largest total pressure release one agent
can achieve, starting on the start valve, within the budget.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.resolve(cmd, a)
			ctx := cmd.Context()
			g, err := readGraph(cmd, args, flags.start)
			if err != nil {
				return err
			}

			p := newProgress(loggerFromContext(ctx))
			if stepwise {
				score, err := search.Stepwise(g, flags.start, flags.budget, search.WithContext(ctx))
				if err != nil {
					return err
				}
				p.done("stepwise search finished", "score", score)
				fmt.Fprintln(out(cmd), score)
				return nil
			}

			e, err := a.engine(ctx, g, []string{flags.start})
			if err != nil {
				return err
			}
			res, err := e.Single(flags.start, flags.budget)
			if err != nil {
				return err
			}
			logResult(ctx, p, "search finished", res)

			fmt.Fprintln(out(cmd), res.Score)
			if flags.plan {
				writePlan(out(cmd), res.Plan, false)
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&stepwise, "stepwise", false, "use the minute-by-minute reference search (slow, no plan)")
	return cmd
}

func (a *app) greedyCommand() *cobra.Command {
	var flags soloFlags
	cmd := &cobra.Command{
		Use:   "greedy [file]",
		Short: "Print the release of the greedy single-agent walk",
		Long: `Greedy always opens the valve with the largest immediate release next. The result is a
lower bound on what solve prints.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.resolve(cmd, a)
			ctx := cmd.Context()
			g, err := readGraph(cmd, args, flags.start)
			if err != nil {
				return err
			}
			e, err := a.engine(ctx, g, []string{flags.start})
			if err != nil {
				return err
			}

			p := newProgress(loggerFromContext(ctx))
			res, err := e.Greedy(flags.start, flags.budget)
			if err != nil {
				return err
			}
			logResult(ctx, p, "greedy walk finished", res)

			fmt.Fprintln(out(cmd), res.Score)
			if flags.plan {
				writePlan(out(cmd), res.Plan, false)
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
