package cart

import (
	"fmt"
	"sync"

	"github.com/example/storefront-bot/internal/catalog"
)

// Entry is one cart line: a product and how many of it. Quantity is always
// at least 1; a decrement to zero removes the entry instead.
type Entry struct {
	ProductID string
	Quantity  int
}

// Store holds every user's cart in memory. Carts do not survive a restart;
// that is documented, accepted behavior. The outer map is mutex-guarded so
// the store stays correct if the transport ever dispatches users in
// parallel.
type Store struct {
	mu    sync.Mutex
	carts map[int64][]Entry
}

func NewStore() *Store {
	return &Store{carts: make(map[int64][]Entry)}
}

// Add increments the quantity of productID in the user's cart by qty,
// appending a new entry if none exists. qty < 1 is a no-op.
func (s *Store) Add(userID int64, productID string, qty int) {
	if qty < 1 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := s.carts[userID]
	for i := range entries {
		if entries[i].ProductID == productID {
			entries[i].Quantity += qty
			return
		}
	}
	s.carts[userID] = append(entries, Entry{ProductID: productID, Quantity: qty})
}

// SetQuantity creates or overwrites the entry's quantity. qty < 1 removes
// the entry.
func (s *Store) SetQuantity(userID int64, productID string, qty int) {
	if qty < 1 {
		s.Remove(userID, productID)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := s.carts[userID]
	for i := range entries {
		if entries[i].ProductID == productID {
			entries[i].Quantity = qty
			return
		}
	}
	s.carts[userID] = append(entries, Entry{ProductID: productID, Quantity: qty})
}

// Quantity returns the current quantity of productID in the user's cart,
// 0 if absent.
func (s *Store) Quantity(userID int64, productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.carts[userID] {
		if e.ProductID == productID {
			return e.Quantity
		}
	}
	return 0
}

// Remove deletes the entry for productID if present.
func (s *Store) Remove(userID int64, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := s.carts[userID]
	for i, e := range entries {
		if e.ProductID == productID {
			s.carts[userID] = append(entries[:i], entries[i+1:]...)
			return
		}
	}
}

// Clear empties the user's cart. The cart itself persists, now empty, so
// clearing twice in a row is fine.
func (s *Store) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[userID] = nil
}

// Entries returns a copy of the user's cart in insertion order.
func (s *Store) Entries(userID int64) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := make([]Entry, len(s.carts[userID]))
	copy(entries, s.carts[userID])
	return entries
}

// IsEmpty reports whether the user's cart has no entries.
func (s *Store) IsEmpty(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.carts[userID]) == 0
}

// Total renders one display line per entry and sums the grand total in
// integer currency units. Entries whose product id no longer resolves in
// the catalog are skipped rather than failing the whole cart.
func (s *Store) Total(userID int64, cat *catalog.Store) ([]string, int) {
	entries := s.Entries(userID)
	lines := make([]string, 0, len(entries))
	total := 0
	for _, e := range entries {
		p, ok := cat.FindProduct(e.ProductID)
		if !ok {
			continue
		}
		subtotal := p.PriceAmount * e.Quantity
		total += subtotal
		lines = append(lines, fmt.Sprintf("%s — %d шт. = %d ₽", p.Name, e.Quantity, subtotal))
	}
	return lines, total
}
