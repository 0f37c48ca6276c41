package idgen

import (
	"github.com/adelahmadi/fintrack/internal/domain/port/core"
	"github.com/rs/xid"
)

// XIDGenerator produces globally unique, time-sortable identifiers.
// It replaces the millisecond-timestamp scheme, which collides under
// rapid creation for the same owner.
type XIDGenerator struct{}

// NewXIDGenerator creates a new xid-based generator
func NewXIDGenerator() core.IDGenerator {
	return &XIDGenerator{}
}

// NewID returns a fresh identifier
func (g *XIDGenerator) NewID() string {
	return xid.New().String()
}
