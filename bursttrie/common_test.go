package bursttrie

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
)

// getKeys returns pseudo-random sentences (there are duplicates among them).
func getKeys(total int) []string {
	const seed = 1234567890

	var (
		faker = gofakeit.New(seed)
		keys  = make([]string, total)
	)

	for i := range keys {
		keys[i] = faker.Sentence(4)
	}

	return keys
}

// requireValid checks the structural invariants of the map.
func requireValid[V any](t *testing.T, m *Map[V]) {
	t.Helper()

	require.NoError(t, m.Verify())
	require.Equal(t, m.Len(), m.Stats().Values)
}

// childOf returns a node stored at the byte of the given branch.
func childOf[V any](t *testing.T, b *branch[V], c byte) node[V] {
	t.Helper()

	n := b.children.get(c)
	require.NotNil(t, n, "no child at %q", c)

	return n
}
