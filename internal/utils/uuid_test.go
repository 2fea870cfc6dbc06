package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	seen := make(map[uuid.UUID]bool)
	for range 100 {
		id := g.Generate()
		assert.NotEqual(t, uuid.Nil, id)
		assert.Equal(t, uuid.Version(7), id.Version())
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
