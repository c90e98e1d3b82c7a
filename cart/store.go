// Package cart holds the client cart state: line items, an optional
// discount, and the derived totals. All monetary values are in minor
// currency units (cents).
package cart

import (
	"math"
	"sync"
)

// Item is a single product line in the cart. Product name, price and
// image are denormalized at add time so the cart renders without a
// catalog round trip.
type Item struct {
	ProductID   int    `json:"productId"`
	ProductName string `json:"productName"`
	Price       int    `json:"price"`
	ImageUrl    string `json:"imageUrl"`
	Quantity    int    `json:"quantity"`
	Size        string `json:"size"`
}

// Store is an explicit cart state object with a mutation interface and
// selector methods. It is safe for concurrent use.
type Store struct {
	mu                 sync.Mutex
	items              []Item
	discountCode       string
	discountPercentage int
}

func NewStore() *Store {
	return &Store{}
}

// AddItem appends a new line, or increments the quantity of the existing
// line for the same product. The merge key is the product id alone: adding
// the same product in a different size folds into the existing line rather
// than creating a second one.
func (s *Store) AddItem(item Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == item.ProductID {
			s.items[i].Quantity += item.Quantity
			return
		}
	}
	s.items = append(s.items, item)
}

// RemoveItem drops the line for productID. Removing an absent product is
// a no-op.
func (s *Store) RemoveItem(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, item := range s.items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	s.items = kept
}

// UpdateQuantity sets the quantity for productID, clamped to a minimum
// of 1.
func (s *Store) UpdateQuantity(productID, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity < 1 {
		quantity = 1
	}
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = quantity
			return
		}
	}
}

// UpdateSize replaces the size string for productID. Sizes are not
// validated at this layer.
func (s *Store) UpdateSize(productID int, size string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Size = size
			return
		}
	}
}

// Clear empties the cart and resets the discount together.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.discountCode = ""
	s.discountPercentage = 0
}

// ApplyDiscount attaches a code and its percentage to the cart. Both
// values must come from a trusted lookup, see Lookup.
func (s *Store) ApplyDiscount(code string, percentage int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.discountCode = code
	s.discountPercentage = percentage
}

// RemoveDiscount clears the code and percentage together.
func (s *Store) RemoveDiscount() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.discountCode = ""
	s.discountPercentage = 0
}

// Items returns a copy of the current lines.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]Item, len(s.items))
	copy(items, s.items)
	return items
}

// AppliedDiscount returns the current code and percentage.
func (s *Store) AppliedDiscount() (string, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.discountCode, s.discountPercentage
}

// Subtotal is the sum of price * quantity over all lines.
func (s *Store) Subtotal() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subtotalLocked()
}

func (s *Store) subtotalLocked() int {
	total := 0
	for _, item := range s.items {
		total += item.Price * item.Quantity
	}
	return total
}

// Discount is round(subtotal * percentage / 100), rounding half away
// from zero.
func (s *Store) Discount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.discountLocked()
}

func (s *Store) discountLocked() int {
	return int(math.Round(float64(s.subtotalLocked()) * float64(s.discountPercentage) / 100))
}

// Total is subtotal minus discount. It is not clamped, so a percentage
// above 100 yields a negative total.
func (s *Store) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subtotalLocked() - s.discountLocked()
}
