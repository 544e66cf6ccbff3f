// Package parse turns valve report lines into Records.
//
// Grammar (one valve per line):
//
//	Valve <ID> has flow rate=<int>; tunnel(s) lead(s) to valve(s) <ID>[, <ID>]*
//
// where <ID> is two uppercase ASCII letters. The singular and plural forms of
// "tunnel", "lead" and "valve" are accepted independently. Spaces around
// neighbor IDs are ignored. Flow rates above MaxRate are rejected so that
// scores (rate × minutes, summed) stay within int. Anything else, blank
// lines included, is ErrMalformedRecord.
package parse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// MaxRate is the largest accepted flow rate.
const MaxRate = math.MaxInt32

// ErrMalformedRecord is returned when a line does not match the valve grammar.
var ErrMalformedRecord = errors.New("parse: malformed record")

var (
	linePattern = regexp.MustCompile(`^Valve ([A-Z][A-Z]) has flow rate=(\d+); tunnels? leads? to valves? (.+)$`)
	idPattern   = regexp.MustCompile(`^[A-Z][A-Z]$`)
)

// Record is one parsed valve line.
type Record struct {
	// ID is the valve identifier.
	ID string

	// Rate is the flow rate, always >= 0.
	Rate int

	// Tunnels lists neighbor IDs in input order.
	Tunnels []string
}

// ParseLine parses a single line. One trailing "\n" (optionally preceded
// by "\r") is removed before matching.
func ParseLine(line string) (Record, error) {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		return Record{}, fmt.Errorf("%w: %q", ErrMalformedRecord, line)
	}
	rate, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil || rate > MaxRate {
		return Record{}, fmt.Errorf("%w: flow rate %s out of range [0, %d]", ErrMalformedRecord, m[2], MaxRate)
	}

	parts := strings.Split(m[3], ",")
	tunnels := make([]string, 0, len(parts))
	for _, p := range parts {
		id := strings.TrimSpace(p)
		if !idPattern.MatchString(id) {
			return Record{}, fmt.Errorf("%w: bad tunnel target %q in %q", ErrMalformedRecord, p, line)
		}
		tunnels = append(tunnels, id)
	}

	return Record{ID: m[1], Rate: int(rate), Tunnels: tunnels}, nil
}

// Parse reads every line of r. The first malformed line aborts parsing;
// no partial result is returned.
func Parse(r io.Reader) ([]Record, error) {
	var (
		out []Record
		n   int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		n++
		rec, err := ParseLine(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		out = append(out, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parse: read: %w", err)
	}

	return out, nil
}
