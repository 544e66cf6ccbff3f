// SPDX-License-Identifier: MIT
// Package: valvenet/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (record index, IDs) is attached with %w wrapping at the call site.

package builder

import (
	"errors"
	"fmt"
)

// ErrDuplicateValve indicates that two records declare the same valve ID.
var ErrDuplicateValve = errors.New("builder: duplicate valve")

// ErrUnknownNeighborReference indicates that a record lists a tunnel to a
// valve that no record declares.
var ErrUnknownNeighborReference = errors.New("builder: unknown neighbor reference")

// ErrStartNotFound indicates that the valve requested via WithStart is absent.
var ErrStartNotFound = errors.New("builder: start valve not found")

// ErrInvalidRecord indicates a record that core rejected for a reason other
// than a duplicate or dangling reference (empty ID, negative rate, loop).
var ErrInvalidRecord = errors.New("builder: invalid record")

// builderErrorf wraps err with the sentinel and a method context of the form
// "<method>: <sentinel>: <detail>".
func builderErrorf(method string, sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", method, sentinel, fmt.Sprintf(format, args...))
}
