package uuidgen

import (
	"github.com/google/uuid"
	"github.com/mikiasgoitom/portfolio/internal/domain/contract"
)

// Generator issues document ids.
type Generator struct{}

func NewGenerator() contract.IUUIDGenerator {
	return &Generator{}
}

// NewUUID returns a random (version 4) UUID string.
func (g *Generator) NewUUID() string {
	return uuid.NewString()
}

var _ contract.IUUIDGenerator = (*Generator)(nil)
