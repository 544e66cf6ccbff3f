// SPDX-License-Identifier: MIT
// Package: valvenet/builder
//
// Package builder turns parsed valve records into a core.Graph.
//
// Construction runs in two passes so that record order never matters:
//
//  1. Register every valve with its flow rate (duplicates are rejected).
//  2. Add every listed tunnel; a target that was never declared is an
//     ErrUnknownNeighborReference. Self-tunnels are kept; traversals never
//     follow them.
//
// Usage:
//
//	g, err := builder.FromReader(os.Stdin, builder.WithStart("AA"))
//	if errors.Is(err, parse.ErrMalformedRecord) { ... }
//	if errors.Is(err, builder.ErrUnknownNeighborReference) { ... }
//
// Options:
//
//	WithStart(id)            require the entry valve to be declared
//	WithSymmetricTunnels()   mirror tunnels listed in only one direction
package builder
