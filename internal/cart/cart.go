// Package cart maintains one visitor's cart and its consistency rules:
// one line per product, quantities clamped to at least 1, stable
// insertion order, and totals recomputed from the lines on every read.
//
// Every operation is a total function. Bad input is clamped or silently
// ignored; nothing here returns an error or panics.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/irikhenry/topbreeze/internal/catalog"
)

var (
	freeShippingOver = decimal.NewFromInt(200)
	shippingFee      = decimal.NewFromInt(15)
)

// Line pairs a catalog product with the requested quantity.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// LineTotal is the line's price contribution in base currency.
func (l Line) LineTotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Totals are the aggregates derived from the current lines. Shipping is
// free only when the subtotal is strictly greater than 200; an empty cart
// has nothing to ship and totals to zero.
type Totals struct {
	ItemCount int             `json:"item_count"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Shipping  decimal.Decimal `json:"shipping"`
	Total     decimal.Decimal `json:"total"`
}

// Store holds the cart lines for a single session. Callers are expected
// to serialize access; the store itself does no locking because UI-driven
// mutations arrive one at a time per visitor.
type Store struct {
	catalog *catalog.Catalog
	lines   []*Line
	index   map[string]*Line // product ID -> line
}

// NewStore returns an empty cart backed by the given catalog.
func NewStore(cat *catalog.Catalog) *Store {
	return &Store{
		catalog: cat,
		index:   make(map[string]*Line),
	}
}

// Add puts quantity units of a product into the cart. A product already
// present has the quantity added to its line; a new product is appended
// at the end. Quantities below 1 are clamped to 1. IDs that do not
// resolve in the catalog are ignored.
func (s *Store) Add(productID string, quantity int) []Line {
	product, ok := s.catalog.Get(productID)
	if !ok {
		return s.Lines()
	}
	if quantity < 1 {
		quantity = 1
	}

	if line, exists := s.index[productID]; exists {
		line.Quantity += quantity
		return s.Lines()
	}

	line := &Line{Product: product, Quantity: quantity}
	s.lines = append(s.lines, line)
	s.index[productID] = line
	return s.Lines()
}

// UpdateQuantity sets a line's quantity to max(1, quantity). It never
// removes the line; deletion only happens through Remove. Unknown product
// IDs are ignored.
func (s *Store) UpdateQuantity(productID string, quantity int) []Line {
	if line, exists := s.index[productID]; exists {
		if quantity < 1 {
			quantity = 1
		}
		line.Quantity = quantity
	}
	return s.Lines()
}

// Remove deletes the line for productID if present.
func (s *Store) Remove(productID string) []Line {
	if _, exists := s.index[productID]; !exists {
		return s.Lines()
	}
	delete(s.index, productID)

	kept := make([]*Line, 0, len(s.lines)-1)
	for _, line := range s.lines {
		if line.Product.ID != productID {
			kept = append(kept, line)
		}
	}
	s.lines = kept
	return s.Lines()
}

// Lines returns a copy of the cart in insertion order.
func (s *Store) Lines() []Line {
	out := make([]Line, len(s.lines))
	for i, line := range s.lines {
		out[i] = *line
	}
	return out
}

// IsEmpty reports whether the cart has no lines.
func (s *Store) IsEmpty() bool {
	return len(s.lines) == 0
}

// Totals recomputes the aggregates from the current lines. There is no
// caching: the inputs are tiny and a stale total would be worse than the
// recompute.
func (s *Store) Totals() Totals {
	t := Totals{
		Subtotal: decimal.Zero,
		Shipping: decimal.Zero,
		Total:    decimal.Zero,
	}
	if len(s.lines) == 0 {
		return t
	}

	for _, line := range s.lines {
		t.ItemCount += line.Quantity
		t.Subtotal = t.Subtotal.Add(line.LineTotal())
	}
	if !t.Subtotal.GreaterThan(freeShippingOver) {
		t.Shipping = shippingFee
	}
	t.Total = t.Subtotal.Add(t.Shipping)
	return t
}
