package poset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmptySet(t *testing.T) {
	p := NewPartiallyOrderedSet[string]()
	require.Equal(t, 0, p.Len())
	require.False(t, p.Contains("a"))
}

func TestAddElement(t *testing.T) {
	p := NewPartiallyOrderedSet[string]()
	p.AddElement("a")
	require.Equal(t, 1, p.Len())
	require.True(t, p.Contains("a"))

	// Re-adding is a no-op.
	p.AddElement("a")
	require.Equal(t, 1, p.Len())
}

func TestElementsAreUnorderedByDefault(t *testing.T) {
	p := NewPartiallyOrderedSet[string]()
	p.AddElement("a")
	p.AddElement("b")

	require.False(t, p.IsLessThan("a", "b"))
	require.False(t, p.IsLessThan("b", "a"))
	require.False(t, p.IsGreaterThan("a", "b"))
	require.False(t, p.IsGreaterThan("b", "a"))
}

func TestAddOrder(t *testing.T) {
	p := NewPartiallyOrderedSet[string]()
	p.AddElement("a")
	p.AddElement("b")

	require.NoError(t, p.AddOrder("a", "b"))
	require.True(t, p.IsLessThan("a", "b"))
	require.False(t, p.IsLessThan("b", "a"))
	require.True(t, p.IsGreaterThan("b", "a"))
	require.False(t, p.IsGreaterThan("a", "b"))
}

func TestOrderIsStrict(t *testing.T) {
	p := NewPartiallyOrderedSet[string]()
	p.AddElement("a")

	require.False(t, p.IsLessThan("a", "a"))
	require.False(t, p.IsGreaterThan("a", "a"))

	var violation *OrderViolationError
	require.ErrorAs(t, p.AddOrder("a", "a"), &violation)
}

func TestOrderIsTransitive(t *testing.T) {
	p := NewPartiallyOrderedSet[int]()
	for i := 1; i <= 4; i++ {
		p.AddElement(i)
	}
	require.NoError(t, p.AddOrder(1, 2))
	require.NoError(t, p.AddOrder(3, 4))
	// Linking the two chains closes 1<4 transitively.
	require.NoError(t, p.AddOrder(2, 3))

	require.True(t, p.IsLessThan(1, 3))
	require.True(t, p.IsLessThan(1, 4))
	require.True(t, p.IsLessThan(2, 4))
	require.True(t, p.IsGreaterThan(4, 1))
}

func TestContradictionIsRejected(t *testing.T) {
	p := NewPartiallyOrderedSet[string]()
	p.AddElement("a")
	p.AddElement("b")
	require.NoError(t, p.AddOrder("a", "b"))

	var violation *OrderViolationError
	require.ErrorAs(t, p.AddOrder("b", "a"), &violation)

	// The original relation survives the failed insert.
	require.True(t, p.IsLessThan("a", "b"))
	require.False(t, p.IsLessThan("b", "a"))
}

func TestTransitiveContradictionIsRejected(t *testing.T) {
	p := NewPartiallyOrderedSet[string]()
	for _, e := range []string{"a", "b", "c"} {
		p.AddElement(e)
	}
	require.NoError(t, p.AddOrder("a", "b"))
	require.NoError(t, p.AddOrder("b", "c"))

	var violation *OrderViolationError
	require.ErrorAs(t, p.AddOrder("c", "a"), &violation)
}

func TestAddOrderUnknownElement(t *testing.T) {
	p := NewPartiallyOrderedSet[string]()
	p.AddElement("a")

	var unknown *UnknownElementError
	require.ErrorAs(t, p.AddOrder("a", "missing"), &unknown)
	require.ErrorAs(t, p.AddOrder("missing", "a"), &unknown)
}

func TestQueryUnknownElementPanics(t *testing.T) {
	p := NewPartiallyOrderedSet[string]()
	p.AddElement("a")

	require.Panics(t, func() { p.IsLessThan("a", "missing") })
	require.Panics(t, func() { p.IsGreaterThan("missing", "a") })
}

func TestIncomparableBranches(t *testing.T) {
	p := NewPartiallyOrderedSet[string]()
	for _, e := range []string{"root", "left", "right"} {
		p.AddElement(e)
	}
	require.NoError(t, p.AddOrder("root", "left"))
	require.NoError(t, p.AddOrder("root", "right"))

	require.False(t, p.IsLessThan("left", "right"))
	require.False(t, p.IsLessThan("right", "left"))
}
