package idgen

import (
	"github.com/google/uuid"

	"github.com/baditaflorin/go_newsletter_extract/internal/ports"
)

// UUIDGenerator produces random UUIDv4 identifiers.
type UUIDGenerator struct{}

// NewUUIDGenerator creates the default production ID generator.
func NewUUIDGenerator() ports.IDGenerator {
	return &UUIDGenerator{}
}

// NewID returns a fresh UUIDv4 string.
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}
