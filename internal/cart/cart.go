// Package cart is the mutable staging list of menu entries before an order
// is placed. A cart belongs to one customer interaction; it is not safe for
// concurrent use.
package cart

import (
	"fmt"

	"foodflex/internal/domain"
)

type Cart struct {
	items []domain.MenuItem
}

func New() *Cart { return &Cart{} }

// Add appends the item. Unavailable items are rejected with
// domain.ErrItemUnavailable and the cart is left as it was.
func (c *Cart) Add(item domain.MenuItem) error {
	if !item.Available {
		return fmt.Errorf("%s: %w", item.Name, domain.ErrItemUnavailable)
	}
	c.items = append(c.items, item)
	return nil
}

// Remove drops the first entry with the given item id and reports whether
// anything was removed.
func (c *Cart) Remove(itemID string) bool {
	for i, it := range c.items {
		if it.ID == itemID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Cart) Clear() { c.items = c.items[:0] }

func (c *Cart) Empty() bool { return len(c.items) == 0 }

func (c *Cart) Len() int { return len(c.items) }

// Items returns a copy of the staged entries in insertion order.
func (c *Cart) Items() []domain.MenuItem {
	out := make([]domain.MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

// TotalPrice sums item prices only; the delivery fee belongs to the order.
func (c *Cart) TotalPrice() float64 {
	var total float64
	for _, it := range c.items {
		total += it.Price
	}
	return total
}

func (c *Cart) TotalCalories() int {
	var total int
	for _, it := range c.items {
		total += it.Calories
	}
	return total
}

// Recommend suggests a pairing based on what is already staged. Main courses
// win over desserts when both are present.
func (c *Cart) Recommend() string {
	hasMain, hasDessert := false, false
	for _, it := range c.items {
		switch it.Category {
		case domain.CategoryMainCourse:
			hasMain = true
		case domain.CategoryDessert:
			hasDessert = true
		}
	}
	switch {
	case hasMain:
		return "Try our Masala Lemonade with your meal!"
	case hasDessert:
		return "How about a hot Masala Chai to go with your sweets?"
	default:
		return "Our Butter Chicken is today's special!"
	}
}
