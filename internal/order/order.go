// Package order arranges twin-prime middles for display.
//
// A policy only changes the order in which middles are drawn, never which
// ones qualify. Every policy sorts by a visual key length first and by
// value second.
package order

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/twinpal/internal/bitstring"
	"github.com/san-kum/twinpal/internal/twin"
)

type Policy string

const (
	// Raw orders strictly by value; edges of the resulting figure are fuzzy.
	Raw Policy = "raw"
	// TrimStart groups by length without leading zeros.
	TrimStart Policy = "trim-start"
	// TrimBoth groups by length without leading and trailing zeros, which
	// gives clean edges and distinct figures.
	TrimBoth Policy = "trim-both"
)

const Default = TrimBoth

var ErrNotImplemented = errors.New("order: policy not implemented")

var keys = map[Policy]func(string) string{
	Raw:       func(string) string { return "" },
	TrimStart: bitstring.TrimStart,
	TrimBoth:  bitstring.TrimBoth,
}

// Policies lists the known policy names in cycling order.
func Policies() []Policy {
	return []Policy{Raw, TrimStart, TrimBoth}
}

func Parse(s string) (Policy, error) {
	p := Policy(s)
	if _, ok := keys[p]; !ok {
		return "", fmt.Errorf("%w: %q (available: %v)", ErrNotImplemented, s, Policies())
	}
	return p, nil
}

// Next returns the policy after p in Policies, wrapping around.
func (p Policy) Next() Policy {
	all := Policies()
	for i, q := range all {
		if q == p {
			return all[(i+1)%len(all)]
		}
	}
	return Default
}

// Key returns the string whose length is p's primary sort key.
func (p Policy) Key(bits string) (string, error) {
	fn, ok := keys[p]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotImplemented, string(p))
	}
	return fn(bits), nil
}

// Sort returns a new slice ordered by (len(p.Key(bits)), value).
func Sort(middles []twin.Middle, p Policy) ([]twin.Middle, error) {
	fn, ok := keys[p]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotImplemented, string(p))
	}

	type keyed struct {
		m   twin.Middle
		key int
	}
	items := make([]keyed, len(middles))
	for i, m := range middles {
		items[i] = keyed{m: m, key: len(fn(m.Bits))}
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].key != items[j].key {
			return items[i].key < items[j].key
		}
		return items[i].m.Value.Cmp(items[j].m.Value) < 0
	})

	out := make([]twin.Middle, len(items))
	for i, it := range items {
		out[i] = it.m
	}
	return out, nil
}
