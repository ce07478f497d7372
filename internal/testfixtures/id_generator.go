package testfixtures

import (
	"fmt"
	"sync"
)

// IDGenerator yields "<prefix>-<n>" identifiers in sequence, standing in for
// the uuid-backed reference generators so tests can assert on exact booking
// and card identifiers.
type IDGenerator struct {
	mu      sync.Mutex
	prefix  string
	counter uint64
}

// NewIDGenerator constructs a generator for the given prefix; an empty prefix
// becomes "ref".
func NewIDGenerator(prefix string) *IDGenerator {
	if prefix == "" {
		prefix = "ref"
	}
	return &IDGenerator{prefix: prefix}
}

// Next returns the next identifier in the sequence, starting at "<prefix>-1".
func (g *IDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter++
	return fmt.Sprintf("%s-%d", g.prefix, g.counter)
}

// NextFunc exposes Next in the shape services accept for injection.
func (g *IDGenerator) NextFunc() func() string {
	return g.Next
}
