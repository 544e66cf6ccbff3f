package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/valvenet/core"
	"github.com/katalvlaran/valvenet/search"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("render: graph is nil")

// Options configures diagram output.
type Options struct {
	// Plan highlights the valves it opens. Nil draws the bare network.
	Plan []search.Step
	// Title is drawn above the diagram when non-empty.
	Title string
}

// agent fill colours, cycled by Step.Agent.
var palette = []string{"gold", "lightskyblue", "palegreen", "plum"}

// ToDOT converts g to Graphviz DOT. Output is deterministic: valves and
// tunnels are emitted in ID order.
func ToDOT(g *core.Graph, opts Options) (string, error) {
	if g == nil {
		return "", ErrGraphNil
	}

	opened := make(map[string]int, len(opts.Plan))
	for i, st := range opts.Plan {
		opened[st.Valve] = i
	}

	var buf bytes.Buffer
	buf.WriteString("digraph valves {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n", opts.Title)
	}
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	buf.WriteString("  edge [arrowsize=0.6];\n")
	buf.WriteString("\n")

	for _, id := range g.Valves() {
		v, err := g.Valve(id)
		if err != nil {
			return "", err
		}
		var step *search.Step
		if i, ok := opened[id]; ok {
			step = &opts.Plan[i]
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", id, strings.Join(valveAttrs(v, step, opened[id]), ", "))
	}

	buf.WriteString("\n")
	for _, from := range g.Valves() {
		targets, err := g.Tunnels(from)
		if err != nil {
			return "", err
		}
		for _, to := range targets {
			back := g.HasTunnel(to, from)
			switch {
			case back && from > to:
				// drawn from the other end
			case back:
				fmt.Fprintf(&buf, "  %q -> %q [dir=both];\n", from, to)
			default:
				fmt.Fprintf(&buf, "  %q -> %q;\n", from, to)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

func valveAttrs(v core.Valve, step *search.Step, order int) []string {
	label := fmt.Sprintf("%s\\nrate %d", v.ID, v.Rate)
	if step != nil {
		label += fmt.Sprintf("\\n#%d a%d @%d +%d", order+1, step.Agent, step.Minute, step.Release)
	}
	attrs := []string{fmt.Sprintf("label=\"%s\"", label)}

	switch {
	case step != nil:
		attrs = append(attrs, "fillcolor="+palette[step.Agent%len(palette)], "penwidth=2")
	case !v.Useful():
		attrs = append(attrs, "fillcolor=lightgrey", "fontcolor=dimgrey")
	}
	return attrs
}

// RenderSVG lays out a DOT graph and returns SVG bytes.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("render: init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("render: parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
