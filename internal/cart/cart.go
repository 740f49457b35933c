// Package cart maintains a single customer's in-progress order: an ordered
// list of product lines with quantities, and totals recomputed from the lines
// after every mutation. Nothing here touches storage; a cart lives exactly as
// long as its session.
package cart

import (
	"github.com/shashiranjanraj/laziz/app/models"
	"github.com/shashiranjanraj/laziz/pkg/collection"
)

// Line is one product/quantity pairing. The display fields are captured at
// add-time so later product edits don't rewrite an open cart.
type Line struct {
	ProductID      string  `json:"productId"`
	TitlePrimary   string  `json:"titlePrimary"`
	TitleSecondary string  `json:"titleSecondary"`
	Price          float64 `json:"price"`
	Image          string  `json:"image,omitempty"`
	Quantity       int     `json:"quantity"`
}

// Cart holds one session's lines plus the derived ItemCount and Total.
// The derived values are never written directly; recompute rebuilds them from
// the line list after every transition, so they cannot drift.
type Cart struct {
	Lines     []Line  `json:"lines"`
	ItemCount int     `json:"itemCount"`
	Total     float64 `json:"total"`
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{Lines: []Line{}}
}

// AddItem appends a quantity-1 line for the product, or bumps the quantity of
// an existing line for the same product id.
func (c *Cart) AddItem(p models.Product) {
	id := p.ID.Hex()
	for i := range c.Lines {
		if c.Lines[i].ProductID == id {
			c.Lines[i].Quantity++
			c.recompute()
			return
		}
	}

	c.Lines = append(c.Lines, Line{
		ProductID:      id,
		TitlePrimary:   p.TitlePrimary,
		TitleSecondary: p.TitleSecondary,
		Price:          p.Price,
		Image:          p.Image,
		Quantity:       1,
	})
	c.recompute()
}

// UpdateQuantity sets the quantity of the line matching productID.
// A quantity <= 0 removes the line. An unknown id is a silent no-op so stale
// UI state never surfaces as an error.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity = quantity
			break
		}
	}
	c.recompute()
}

// RemoveItem drops the line matching productID. No-op when absent.
func (c *Cart) RemoveItem(productID string) {
	c.Lines = collection.Filter(c.Lines, func(l Line) bool { return l.ProductID != productID })
	if c.Lines == nil {
		c.Lines = []Line{}
	}
	c.recompute()
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Lines = []Line{}
	c.recompute()
}

func (c *Cart) recompute() {
	c.ItemCount = collection.Reduce(c.Lines, 0, func(n int, l Line) int { return n + l.Quantity })
	c.Total = collection.Reduce(c.Lines, 0.0, func(t float64, l Line) float64 {
		return t + l.Price*float64(l.Quantity)
	})
}
