// SPDX-License-Identifier: MIT
// Package: valvenet/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors panic on meaningless inputs; Build itself never panics.

package builder

import "github.com/katalvlaran/valvenet/core"

// Option customizes Build by mutating a builderConfig before construction.
type Option func(*builderConfig)

// builderConfig aggregates all knobs used by Build.
type builderConfig struct {
	start     string // "" means no start check
	symmetric bool
}

// WithStart requires valve id to be declared. Panics on an empty id.
func WithStart(id string) Option {
	if id == "" {
		panic("builder: WithStart(\"\")")
	}
	return func(c *builderConfig) { c.start = id }
}

// WithSymmetricTunnels adds the reverse of every tunnel that is listed in
// only one direction.
func WithSymmetricTunnels() Option {
	return func(c *builderConfig) { c.symmetric = true }
}

// newBuilderConfig applies options in order (later overrides earlier).
func newBuilderConfig(opts ...Option) builderConfig {
	var c builderConfig
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// graphOptions maps builder knobs onto core graph options. Input lines
// may list a valve as its own neighbour, so loops are always allowed.
func (c builderConfig) graphOptions() []core.GraphOption {
	return []core.GraphOption{core.WithLoops()}
}
