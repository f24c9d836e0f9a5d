package domain

import (
	"errors"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// MaxLineQuantity caps the units a single cart line may hold
const MaxLineQuantity = 999

var (
	ErrProductOutOfStock = errors.New("product is out of stock")
	ErrQuantityLimit     = errors.New("cart line quantity limit reached")
)

// CartLine is one product's aggregated quantity within the cart
type CartLine struct {
	Product  Product
	Quantity int
}

// Subtotal is price times quantity, unrounded
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is an immutable snapshot of the cart lines in first-added order.
// Every mutation returns a new Cart and leaves the receiver untouched.
type Cart struct {
	lines []CartLine
}

// NewCart returns an empty cart
func NewCart() Cart {
	return Cart{}
}

// Lines returns a copy of the cart lines
func (c Cart) Lines() []CartLine {
	return slices.Clone(c.lines)
}

// Line returns the line for productID, if any
func (c Cart) Line(productID string) (CartLine, bool) {
	if i := c.index(productID); i >= 0 {
		return c.lines[i], true
	}
	return CartLine{}, false
}

// Len is the number of distinct products in the cart
func (c Cart) Len() int {
	return len(c.lines)
}

// IsEmpty reports whether the cart has no lines
func (c Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Add puts one unit of p into the cart. Out of stock products are rejected
// with ErrProductOutOfStock, and a line already at MaxLineQuantity with
// ErrQuantityLimit. A rejected add returns the cart unchanged.
func (c Cart) Add(p Product) (Cart, error) {
	if !p.InStock {
		return c, ErrProductOutOfStock
	}

	lines := slices.Clone(c.lines)
	if i := c.index(p.ID); i >= 0 {
		if lines[i].Quantity >= MaxLineQuantity {
			return c, fmt.Errorf("%w: %d", ErrQuantityLimit, MaxLineQuantity)
		}
		lines[i].Quantity++
		return Cart{lines: lines}, nil
	}
	return Cart{lines: append(lines, CartLine{Product: p, Quantity: 1})}, nil
}

// Remove deletes the line for productID. Unknown ids are a no-op.
func (c Cart) Remove(productID string) Cart {
	i := c.index(productID)
	if i < 0 {
		return c
	}
	return Cart{lines: slices.Delete(slices.Clone(c.lines), i, i+1)}
}

// UpdateQuantity sets the quantity of an existing line. A quantity of zero or
// less removes the line, quantities above MaxLineQuantity are clamped to it,
// and unknown ids are a no-op.
func (c Cart) UpdateQuantity(productID string, quantity int) Cart {
	if quantity <= 0 {
		return c.Remove(productID)
	}
	quantity = min(quantity, MaxLineQuantity)
	i := c.index(productID)
	if i < 0 {
		return c
	}
	lines := slices.Clone(c.lines)
	lines[i].Quantity = quantity
	return Cart{lines: lines}
}

// Total sums price times quantity over all lines. The result is not rounded.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// ItemCount sums the quantities of all lines
func (c Cart) ItemCount() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c Cart) index(productID string) int {
	return slices.IndexFunc(c.lines, func(l CartLine) bool {
		return l.Product.ID == productID
	})
}
