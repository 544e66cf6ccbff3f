// Package core defines the Valve and Graph types, sentinel errors,
// and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyValveID indicates that the provided valve ID is the empty string.
	ErrEmptyValveID = errors.New("core: valve ID is empty")

	// ErrNegativeRate indicates a valve was declared with a negative flow rate.
	ErrNegativeRate = errors.New("core: negative flow rate")

	// ErrDuplicateValve indicates a valve ID was declared twice.
	ErrDuplicateValve = errors.New("core: duplicate valve")

	// ErrValveNotFound indicates an operation referenced a non-existent valve.
	ErrValveNotFound = errors.New("core: valve not found")

	// ErrLoopNotAllowed indicates a self-tunnel was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-tunnel not allowed")

	// ErrDuplicateTunnel indicates the same From→To tunnel was added twice.
	ErrDuplicateTunnel = errors.New("core: duplicate tunnel")
)

// Valve is a node of the network.
type Valve struct {
	// ID uniquely identifies this Valve within its Graph.
	ID string

	// Rate is the pressure released per minute once the valve is open.
	Rate int
}

// Useful reports whether opening the valve can ever release pressure.
func (v Valve) Useful() bool { return v.Rate > 0 }

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-tunnels (a valve linked to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the valve network.
//
// muValve protects valves; muTunnel protects tunnels.
// Lock order is always muValve then muTunnel.
type Graph struct {
	muValve  sync.RWMutex // guards valves
	muTunnel sync.RWMutex // guards tunnels

	allowLoops bool

	valves map[string]*Valve // valve ID → Valve

	// tunnels[from][to] = struct{}{}
	tunnels map[string]map[string]struct{}
}

// GraphStats is a read-only snapshot of catalog sizes.
type GraphStats struct {
	ValveCount  int
	UsefulCount int
	TunnelCount int
	TotalRate   int
	AllowsLoops bool
}

// NewGraph creates an empty Graph. By default self-tunnels are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		valves:  make(map[string]*Valve),
		tunnels: make(map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
