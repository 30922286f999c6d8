package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/baditaflorin/go_newsletter_extract/internal/ports"
)

// SequentialGenerator produces monotonically increasing identifiers with a
// fixed prefix. Extraction stays deterministic under test when this generator
// is injected instead of the UUID one.
type SequentialGenerator struct {
	prefix  string
	counter atomic.Uint64
}

// NewSequentialGenerator creates a deterministic ID generator.
func NewSequentialGenerator(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// NewID returns "<prefix><n>" with n starting at 1.
func (g *SequentialGenerator) NewID() string {
	return g.prefix + strconv.FormatUint(g.counter.Add(1), 10)
}

var _ ports.IDGenerator = (*SequentialGenerator)(nil)
