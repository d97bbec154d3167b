// Package idgen adapts github.com/google/uuid to the IDGenerator port.
package idgen

import (
	"github.com/google/uuid"

	"naskah/internal/ports"
)

// Generator issues UUIDv4 identifier strings
type Generator struct{}

// Ensure Generator implements IDGenerator
var _ ports.IDGenerator = Generator{}

// NewGenerator creates a new Generator
func NewGenerator() Generator {
	return Generator{}
}

// NewID returns a fresh globally-unique identifier
func (Generator) NewID() string {
	return uuid.NewString()
}
