package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/valvenet/builder"
	"github.com/katalvlaran/valvenet/core"
	"github.com/katalvlaran/valvenet/distance"
	"github.com/katalvlaran/valvenet/search"
)

// readGraph builds the network from args[0], or stdin when no file or "-"
// is given. Every start valve must exist.
func readGraph(cmd *cobra.Command, args []string, starts ...string) (*core.Graph, error) {
	logger := loggerFromContext(cmd.Context())

	var (
		r    io.Reader = cmd.InOrStdin()
		name           = "stdin"
	)
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r, name = f, args[0]
	}

	opts := make([]builder.Option, 0, len(starts))
	for _, s := range starts {
		opts = append(opts, builder.WithStart(s))
	}
	g, err := builder.FromReader(r, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	st := g.Stats()
	logger.Debug("loaded network", "source", name, "valves", st.ValveCount, "useful", st.UsefulCount,
		"tunnels", st.TunnelCount, "total_rate", st.TotalRate)
	return g, nil
}

// engine builds the distance table for origins and wraps it in a search
// engine bound to ctx.
func (a *app) engine(ctx context.Context, g *core.Graph, origins []string, opts ...search.Option) (*search.Engine, error) {
	logger := loggerFromContext(ctx)

	t, err := distance.Build(g, origins, distance.WithMethod(a.cfg.Method()), distance.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	logger.Debug("distance table", "method", a.cfg.Method(), "rows", t.Len(), "useful", t.UsefulCount())
	if t.UsefulCount() == 0 {
		logger.Warn("network has no valve with a positive flow rate")
	}

	return search.New(t, append([]search.Option{search.WithContext(ctx)}, opts...)...), nil
}

func logResult(ctx context.Context, p *progress, what string, res search.Result) {
	loggerFromContext(ctx).Debug("search effort", "states", res.Stats.States, "expansions", res.Stats.Expansions)
	p.done(what, "score", res.Score, "opened", len(res.Plan))
}

// writePlan prints one line per opening.
func writePlan(w io.Writer, plan []search.Step, team bool) {
	for _, st := range plan {
		if team {
			fmt.Fprintf(w, "minute %2d  agent %d  open %s  releases %d\n", st.Minute, st.Agent, st.Valve, st.Release)
			continue
		}
		fmt.Fprintf(w, "minute %2d  open %s  releases %d\n", st.Minute, st.Valve, st.Release)
	}
}
