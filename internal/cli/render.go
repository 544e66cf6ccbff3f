package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/valvenet/render"
	"github.com/katalvlaran/valvenet/search"
)

const (
	planNone = "none"
	planSolo = "solo"
	planTeam = "team"
)

func (a *app) renderCommand() *cobra.Command {
	var (
		format string
		output string
		plan   string
	)
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Draw the network as Graphviz DOT or SVG",
		Long: `Render draws every valve and tunnel. With --plan solo or --plan team the valves opened
by the best plan for the configured budget are highlighted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "dot" && format != "svg" {
				return fmt.Errorf("--format: unknown format %q (want dot or svg)", format)
			}
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			var team []search.Agent
			switch plan {
			case planNone:
			case planSolo:
				team = []search.Agent{{Start: a.cfg.Start, Budget: a.cfg.Budget}}
			case planTeam:
				team = a.cfg.Agents()
			default:
				return fmt.Errorf("--plan: unknown plan %q (want none, solo or team)", plan)
			}
			origins := make([]string, len(team))
			for i, ag := range team {
				origins[i] = ag.Start
			}

			g, err := readGraph(cmd, args, origins...)
			if err != nil {
				return err
			}

			opts := render.Options{}
			if len(team) > 0 {
				e, err := a.engine(ctx, g, origins)
				if err != nil {
					return err
				}
				p := newProgress(logger)
				res, err := e.Multi(team)
				if err != nil {
					return err
				}
				logResult(ctx, p, "plan search finished", res)
				opts.Plan = res.Plan
				opts.Title = fmt.Sprintf("%s plan: %d", plan, res.Score)
			}

			dot, err := render.ToDOT(g, opts)
			if err != nil {
				return err
			}
			data := []byte(dot)
			if format == "svg" {
				if data, err = render.RenderSVG(ctx, dot); err != nil {
					return err
				}
			}

			if output == "" || output == "-" {
				_, err = out(cmd).Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return err
			}
			logger.Info("wrote diagram", "path", output, "format", format)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "dot", "output format: dot or svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&plan, "plan", "p", planNone, "highlight a plan: none, solo or team")
	return cmd
}
