package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/valvenet/distance"
)

func (a *app) distancesCommand() *cobra.Command {
	var start string
	cmd := &cobra.Command{
		Use:   "distances [file]",
		Short: "Print the hop-count table between useful valves",
		Long: `Distances prints one row per useful valve plus the start valve and one column per
useful valve. Unreachable pairs print as "-".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if start == "" {
				start = a.cfg.Start
			}
			g, err := readGraph(cmd, args, start)
			if err != nil {
				return err
			}
			t, err := distance.Build(g, []string{start},
				distance.WithMethod(a.cfg.Method()), distance.WithContext(cmd.Context()))
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(out(cmd), 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintf(tw, "\t%s\t\n", strings.Join(t.Useful(), "\t"))
			for row := 0; row < t.Len(); row++ {
				cells := make([]string, t.UsefulCount())
				for col := range cells {
					if d := t.Hop(row, col); d != distance.Unreachable {
						cells[col] = fmt.Sprint(d)
					} else {
						cells[col] = "-"
					}
				}
				fmt.Fprintf(tw, "%s\t%s\t\n", t.ID(row), strings.Join(cells, "\t"))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVarP(&start, "start", "s", "", "extra origin row (overrides config)")
	return cmd
}
