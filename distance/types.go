package distance

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for table construction.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("distance: graph is nil")

	// ErrOriginNotFound indicates a requested origin valve does not exist.
	ErrOriginNotFound = errors.New("distance: origin valve not found")

	// ErrTooManyValves indicates more useful valves than an opened-valve mask can hold.
	ErrTooManyValves = errors.New("distance: too many useful valves")

	// ErrUnknownMethod indicates an unsupported Method value.
	ErrUnknownMethod = errors.New("distance: unknown method")
)

// MaxUseful is the largest number of useful valves a Table supports.
const MaxUseful = 64

// Unreachable marks a pair with no tunnel path.
const Unreachable = -1

// Method selects the all-pairs algorithm.
type Method int

const (
	// MethodBFS runs one breadth-first search per table row.
	MethodBFS Method = iota
	// MethodFloydWarshall runs a dense all-pairs closure.
	MethodFloydWarshall
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case MethodBFS:
		return "bfs"
	case MethodFloydWarshall:
		return "floyd-warshall"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps a name ("bfs", "floyd-warshall") to a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "", "bfs":
		return MethodBFS, nil
	case "floyd-warshall", "fw":
		return MethodFloydWarshall, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// Option configures Build.
type Option func(*options)

type options struct {
	ctx    context.Context
	method Method
}

// WithMethod selects the all-pairs algorithm.
func WithMethod(m Method) Option {
	return func(o *options) { o.method = m }
}

// WithContext sets a context checked between rows.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
