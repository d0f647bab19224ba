package dsu_test

import (
	"testing"

	"github.com/hareeshbabu82ns/sanskrit-parser/dsu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func universe() []string {
	return []string{"a", "b", "c", "d", "e"}
}

func TestDisjointSet_InitiallySingletons(t *testing.T) {
	d := dsu.New(universe())
	assert.False(t, d.Connected("a", "b"))
	assert.Equal(t, "a", d.Find("a"))
}

func TestDisjointSet_UnionConnects(t *testing.T) {
	d := dsu.New(universe())
	d.Union("a", "b")
	assert.True(t, d.Connected("a", "b"))
	assert.False(t, d.Connected("a", "c"))

	d.Union("b", "c")
	assert.True(t, d.Connected("a", "c"), "union should be transitive")
}

func TestDisjointSet_UnionIsIdempotent(t *testing.T) {
	d := dsu.New(universe())
	d.Union("a", "b")
	d.Union("a", "b") // no-op, already connected
	assert.True(t, d.Connected("a", "b"))
}

// TestDisjointSet_CopyIsIndependent verifies the round-trip property from
// spec §8: DisjointSet.Copy followed by identical operations on original
// and copy yields identical Connected answers, and further mutation of one
// never leaks into the other.
func TestDisjointSet_CopyIsIndependent(t *testing.T) {
	d := dsu.New(universe())
	d.Union("a", "b")

	clone := d.Copy()
	require.True(t, clone.Connected("a", "b"))

	// Mutate the clone only.
	clone.Union("c", "d")
	assert.True(t, clone.Connected("c", "d"))
	assert.False(t, d.Connected("c", "d"), "mutating the clone must not affect the original")

	// Mutate the original only.
	d.Union("d", "e")
	assert.True(t, d.Connected("d", "e"))
	assert.False(t, clone.Connected("d", "e"), "mutating the original must not affect the clone")
}

func TestDisjointSet_FindPanicsOutsideUniverse(t *testing.T) {
	d := dsu.New(universe())
	assert.Panics(t, func() { d.Find("z") })
}
