package txn

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetRollbackUndoesAdd(t *testing.T) {
	a := NewArena()
	s := NewSet[string](a)
	s.Add("a")
	s.Add("b")
	require.Equal(t, 2, s.Len())

	txn := a.Begin()
	s.Add("x")
	require.True(t, s.Contains("x"))
	a.Rollback(txn)

	require.False(t, s.Contains("x"))
	require.Equal(t, 2, s.Len())
}

func TestMapRollbackRestoresPriorValue(t *testing.T) {
	a := NewArena()
	m := NewMap[string, int](a)
	m.Set("k", 1)

	txn := a.Begin()
	m.Set("k", 2)
	v, ok := m.Get("k")
	require.True(t, ok)
	require.Equal(t, 2, v)

	a.Rollback(txn)
	v, ok = m.Get("k")
	require.True(t, ok)
	require.Equal(t, 1, v)
}

func TestNestedCommitTopToBottomMergesAll(t *testing.T) {
	a := NewArena()
	s := NewSet[string](a)
	s.Add("a")

	t1 := a.Begin()
	s.Add("b")
	t2 := a.Begin()
	s.Add("c")

	a.Commit(t2)
	a.Commit(t1)

	require.ElementsMatch(t, []string{"a", "b", "c"}, s.Items())
	require.Equal(t, 1, a.Depth())
}

func TestAddDiscardAddRollbackScenario(t *testing.T) {
	// preload {a,b,c}; add(d); discard(a); (nested) discard(b); rollback
	// outer transaction -> back to {a,b,c}.
	a := NewArena()
	s := NewSet[string](a)
	s.Add("a")
	s.Add("b")
	s.Add("c")

	outer := a.Begin()
	s.Add("d")
	s.Discard("a")

	_ = a.Begin()
	s.Discard("b")

	a.Rollback(outer)

	require.ElementsMatch(t, []string{"a", "b", "c"}, s.Items())
}

func TestSetCommitCancelsAddThenRemove(t *testing.T) {
	a := NewArena()
	s := NewSet[string](a)

	t1 := a.Begin()
	s.Add("x")
	t2 := a.Begin()
	s.Discard("x")

	a.Commit(t2)
	a.Commit(t1)

	require.False(t, s.Contains("x"))
	require.Equal(t, 0, s.Len())
}

func TestMapOverridingThenRemoveThenReAddCollapses(t *testing.T) {
	a := NewArena()
	m := NewMap[string, int](a)
	m.Set("k", 1)

	t1 := a.Begin()
	m.Delete("k")
	t2 := a.Begin()
	m.Set("k", 2)

	a.Commit(t2)
	a.Commit(t1)

	v, ok := m.Get("k")
	require.True(t, ok)
	require.Equal(t, 2, v)
}

func TestVectorPushPopRollback(t *testing.T) {
	a := NewArena()
	v := NewVector[string](a)
	v.Push("a")
	v.Push("b")

	tx := a.Begin()
	v.Push("c")
	require.Equal(t, 3, v.Len())
	a.Rollback(tx)

	require.Equal(t, 2, v.Len())
	require.Equal(t, []string{"a", "b"}, v.Items())
}

func TestCellWriteIsolatedToOwnTransaction(t *testing.T) {
	a := NewArena()
	c := NewCellWithBase(a, 10)

	tx := a.Begin()
	c.Set(20)
	v, _ := c.Get()
	require.Equal(t, 20, v)

	a.Rollback(tx)
	v, _ = c.Get()
	require.Equal(t, 10, v)
}
