package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/storefront-bot/internal/catalog"
)

const testCatalog = `
- name: 'Тоники'
  products:
    - {id: 'p1', name: 'Тоник А', price: '1 000 ₽'}
    - {id: 'p2', name: 'Тоник Б', price: '500 ₽'}
`

func testStore(t *testing.T) (*Store, *catalog.Store) {
	t.Helper()
	cat, err := catalog.Load([]byte(testCatalog))
	require.NoError(t, err)
	return NewStore(), cat
}

// ============================================
// Add Tests
// ============================================

func TestStore_Add_NewEntry(t *testing.T) {
	s, _ := testStore(t)

	s.Add(1, "p1", 1)

	entries := s.Entries(1)
	require.Len(t, entries, 1)
	assert.Equal(t, Entry{ProductID: "p1", Quantity: 1}, entries[0])
}

func TestStore_Add_MergesQuantity(t *testing.T) {
	s, _ := testStore(t)

	s.Add(1, "p1", 2)
	s.Add(1, "p1", 3)

	entries := s.Entries(1)
	require.Len(t, entries, 1)
	assert.Equal(t, 5, entries[0].Quantity)
}

func TestStore_Add_NonPositiveQuantityIgnored(t *testing.T) {
	s, _ := testStore(t)

	s.Add(1, "p1", 0)
	s.Add(1, "p1", -2)

	assert.True(t, s.IsEmpty(1))
}

func TestStore_Add_PreservesInsertionOrder(t *testing.T) {
	s, _ := testStore(t)

	s.Add(1, "p2", 1)
	s.Add(1, "p1", 1)

	entries := s.Entries(1)
	require.Len(t, entries, 2)
	assert.Equal(t, "p2", entries[0].ProductID)
	assert.Equal(t, "p1", entries[1].ProductID)
}

func TestStore_Add_UsersAreIndependent(t *testing.T) {
	s, _ := testStore(t)

	s.Add(1, "p1", 1)
	s.Add(2, "p2", 4)

	assert.Equal(t, 1, s.Quantity(1, "p1"))
	assert.Equal(t, 0, s.Quantity(2, "p1"))
	assert.Equal(t, 4, s.Quantity(2, "p2"))
}

// ============================================
// SetQuantity Tests
// ============================================

func TestStore_SetQuantity_Overwrites(t *testing.T) {
	s, _ := testStore(t)

	s.Add(1, "p1", 2)
	s.SetQuantity(1, "p1", 7)

	assert.Equal(t, 7, s.Quantity(1, "p1"))
}

func TestStore_SetQuantity_CreatesEntry(t *testing.T) {
	s, _ := testStore(t)

	s.SetQuantity(1, "p1", 3)

	assert.Equal(t, 3, s.Quantity(1, "p1"))
}

func TestStore_SetQuantity_ZeroRemoves(t *testing.T) {
	s, _ := testStore(t)

	s.Add(1, "p1", 2)
	s.SetQuantity(1, "p1", 0)

	assert.True(t, s.IsEmpty(1))
}

// Quantities never persist at or below zero, whatever the call sequence.
func TestStore_NoNonPositiveQuantities(t *testing.T) {
	s, _ := testStore(t)

	s.Add(1, "p1", 1)
	s.SetQuantity(1, "p1", -5)
	s.Add(1, "p2", 2)
	s.SetQuantity(1, "p2", 1)
	s.Add(1, "p2", 0)

	for _, e := range s.Entries(1) {
		assert.GreaterOrEqual(t, e.Quantity, 1)
	}
}

// ============================================
// Remove / Clear Tests
// ============================================

func TestStore_Remove(t *testing.T) {
	s, _ := testStore(t)

	s.Add(1, "p1", 2)
	s.Add(1, "p2", 1)
	s.Remove(1, "p1")

	entries := s.Entries(1)
	require.Len(t, entries, 1)
	assert.Equal(t, "p2", entries[0].ProductID)
}

func TestStore_Remove_AbsentIsNoop(t *testing.T) {
	s, _ := testStore(t)

	s.Remove(1, "ghost")

	assert.True(t, s.IsEmpty(1))
}

func TestStore_AddThenRemoveRoundTrip(t *testing.T) {
	s, _ := testStore(t)

	s.Add(1, "p1", 2)
	s.Remove(1, "p1")

	for _, e := range s.Entries(1) {
		assert.NotEqual(t, "p1", e.ProductID)
	}
}

func TestStore_Clear_Idempotent(t *testing.T) {
	s, _ := testStore(t)

	s.Add(1, "p1", 2)
	s.Clear(1)
	assert.True(t, s.IsEmpty(1))

	s.Clear(1)
	assert.True(t, s.IsEmpty(1))
}

// ============================================
// Total Tests
// ============================================

func TestStore_Total(t *testing.T) {
	s, cat := testStore(t)

	s.Add(1, "p1", 2)
	s.Add(1, "p2", 3)

	lines, total := s.Total(1, cat)
	require.Len(t, lines, 2)
	assert.Equal(t, "Тоник А — 2 шт. = 2000 ₽", lines[0])
	assert.Equal(t, "Тоник Б — 3 шт. = 1500 ₽", lines[1])
	assert.Equal(t, 3500, total)
}

func TestStore_Total_EmptyCart(t *testing.T) {
	s, cat := testStore(t)

	lines, total := s.Total(1, cat)
	assert.Empty(t, lines)
	assert.Equal(t, 0, total)
}

func TestStore_Total_SkipsDanglingIDs(t *testing.T) {
	s, cat := testStore(t)

	s.Add(1, "p1", 1)
	s.Add(1, "discontinued", 5)

	lines, total := s.Total(1, cat)
	require.Len(t, lines, 1)
	assert.Equal(t, 1000, total)
}

// Increment/decrement scenario: add, inc to 2, dec to 1, dec removes.
func TestStore_IncrementDecrementSequence(t *testing.T) {
	s, cat := testStore(t)

	s.Add(1, "p1", 1)
	s.Add(1, "p1", 1)
	_, total := s.Total(1, cat)
	assert.Equal(t, 2000, total)

	s.SetQuantity(1, "p1", s.Quantity(1, "p1")-1)
	_, total = s.Total(1, cat)
	assert.Equal(t, 1000, total)

	s.SetQuantity(1, "p1", s.Quantity(1, "p1")-1)
	assert.True(t, s.IsEmpty(1))
}
