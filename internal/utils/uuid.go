package utils

import "github.com/google/uuid"

// UUIDGenerator issues identifiers for groups and entries. Version 7 ids
// sort by creation time; if the v7 clock source fails a random v4 id is
// returned instead.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() uuid.UUID {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return v7
}
