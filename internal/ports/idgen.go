package ports

// IDGenerator produces opaque unique identifiers for extracted entities.
// Injecting it keeps extraction deterministic under test.
type IDGenerator interface {
	NewID() string
}
