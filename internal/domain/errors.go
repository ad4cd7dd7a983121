package domain

import "errors"

var (
	// ErrItemUnavailable rejects adding a menu entry whose availability flag
	// is off. The cart stays untouched.
	ErrItemUnavailable = errors.New("menu item is unavailable")

	// ErrEmptyOrder rejects processing an order with no items.
	ErrEmptyOrder = errors.New("order has no items")

	// ErrOrderClaimed rejects binding a second processor to an order.
	ErrOrderClaimed = errors.New("order is already bound to a processor")
)
