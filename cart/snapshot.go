package cart

// Snapshot is the durable wire form of a cart, the same shape the
// storefront keeps in local storage.
type Snapshot struct {
	Items              []Item `json:"items"`
	DiscountCode       string `json:"discountCode"`
	DiscountPercentage int    `json:"discountPercentage"`
}

// Snapshot copies the current state for persistence.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]Item, len(s.items))
	copy(items, s.items)
	return Snapshot{
		Items:              items,
		DiscountCode:       s.discountCode,
		DiscountPercentage: s.discountPercentage,
	}
}

// Restore replaces the store's state with a previously saved snapshot.
// Quantities below 1 are clamped on the way in, the same rule
// UpdateQuantity enforces.
func (s *Store) Restore(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make([]Item, len(snap.Items))
	copy(s.items, snap.Items)
	for i := range s.items {
		if s.items[i].Quantity < 1 {
			s.items[i].Quantity = 1
		}
	}
	s.discountCode = snap.DiscountCode
	s.discountPercentage = snap.DiscountPercentage
}
