package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered unique identifiers for run events.
// Hosts use these ids to deduplicate events delivered more than once.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
