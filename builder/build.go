// SPDX-License-Identifier: MIT
// Package: valvenet/builder

package builder

import (
	"errors"
	"io"

	"github.com/katalvlaran/valvenet/core"
	"github.com/katalvlaran/valvenet/parse"
)

const (
	methodBuild      = "Build"
	methodSymmetrize = "Symmetrize"
)

// Build constructs the valve network described by records.
//
// Errors:
//   - ErrDuplicateValve: two records share an ID.
//   - ErrUnknownNeighborReference: a tunnel names an undeclared valve.
//   - ErrStartNotFound: WithStart names an undeclared valve.
//   - ErrInvalidRecord: empty ID or negative rate.
//
// Complexity: O(V + T) plus O(V + T) for WithSymmetricTunnels.
func Build(records []parse.Record, opts ...Option) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)
	g := core.NewGraph(cfg.graphOptions()...)

	// Pass 1: valves.
	for i, rec := range records {
		if err := g.AddValve(rec.ID, rec.Rate); err != nil {
			if errors.Is(err, core.ErrDuplicateValve) {
				return nil, builderErrorf(methodBuild, ErrDuplicateValve, "record %d: %s", i, rec.ID)
			}
			return nil, builderErrorf(methodBuild, ErrInvalidRecord, "record %d: %v", i, err)
		}
	}

	// Pass 2: tunnels. A repeated target on one line is tolerated.
	for _, rec := range records {
		for _, to := range rec.Tunnels {
			if !g.HasValve(to) {
				return nil, builderErrorf(methodBuild, ErrUnknownNeighborReference, "%s -> %s", rec.ID, to)
			}
			err := g.AddTunnel(rec.ID, to)
			if err != nil && !errors.Is(err, core.ErrDuplicateTunnel) {
				return nil, builderErrorf(methodBuild, ErrInvalidRecord, "%s -> %s: %v", rec.ID, to, err)
			}
		}
	}

	if cfg.start != "" && !g.HasValve(cfg.start) {
		return nil, builderErrorf(methodBuild, ErrStartNotFound, "%s", cfg.start)
	}
	if cfg.symmetric {
		return Symmetrize(g)
	}

	return g, nil
}

// FromReader parses r and builds the graph in one call.
func FromReader(r io.Reader, opts ...Option) (*core.Graph, error) {
	records, err := parse.Parse(r)
	if err != nil {
		return nil, err
	}
	return Build(records, opts...)
}

// Symmetrize returns a copy of g where every tunnel also exists in reverse.
// The input graph is not mutated.
func Symmetrize(g *core.Graph) (*core.Graph, error) {
	out := g.Clone()
	for _, from := range g.Valves() {
		targets, err := g.Tunnels(from)
		if err != nil {
			return nil, builderErrorf(methodSymmetrize, ErrInvalidRecord, "%v", err)
		}
		for _, to := range targets {
			if out.HasTunnel(to, from) {
				continue
			}
			if err = out.AddTunnel(to, from); err != nil {
				return nil, builderErrorf(methodSymmetrize, ErrInvalidRecord, "%s -> %s: %v", to, from, err)
			}
		}
	}
	return out, nil
}
