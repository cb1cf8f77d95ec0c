// Package cart is the server-side twin of the site's shopping cart: lines
// keyed by product id, quantities only. Checkout rebuilds a Cart from the
// submitted lines to recompute totals instead of trusting client math.
package cart

import (
	"github.com/kiwiflowai-ai/totalcare-website/catalog"
	"github.com/kiwiflowai-ai/totalcare-website/models"
	"github.com/samber/lo"
)

type Line struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// Cart preserves the order items were added in. Product id is the only
// identity: adding the same id again bumps the existing line.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// Add puts one unit of the product in the cart, incrementing the existing
// line when the id is already present.
func (c *Cart) Add(p models.Product) {
	for i := range c.lines {
		if c.lines[i].Product.ID == p.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{Product: p, Quantity: 1})
}

// UpdateQuantity sets a line's quantity. Zero or negative removes the line;
// an unknown id is a no-op.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	if quantity <= 0 {
		c.Remove(id)
		return
	}
	for i := range c.lines {
		if c.lines[i].Product.ID == id {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) Remove(id string) {
	c.lines = lo.Reject(c.lines, func(l Line, _ int) bool {
		return l.Product.ID == id
	})
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) Lines() []Line {
	return c.lines
}

func (c *Cart) TotalItems() int {
	return lo.SumBy(c.lines, func(l Line) int { return l.Quantity })
}

// TotalPrice sums quantity times the leading dollar amount of each line's
// price string, the same parse checkout uses for line totals.
func (c *Cart) TotalPrice() int {
	return lo.SumBy(c.lines, func(l Line) int {
		return l.Quantity * catalog.LeadingDollarAmount(l.Product.Price)
	})
}
