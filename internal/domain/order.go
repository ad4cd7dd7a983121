package domain

import (
	"sync/atomic"
	"time"
)

// OrderStatus is the kitchen-side lifecycle of an order. Values are ordered:
// an order only ever moves to a larger status, never back.
type OrderStatus int32

const (
	StatusPreparing OrderStatus = iota
	StatusCooking
	StatusPackaging
	StatusReady
	StatusDelivered
)

func (s OrderStatus) String() string {
	switch s {
	case StatusPreparing:
		return "preparing"
	case StatusCooking:
		return "cooking"
	case StatusPackaging:
		return "packaging"
	case StatusReady:
		return "ready"
	case StatusDelivered:
		return "delivered"
	}
	return "unknown"
}

// orderSeq hands out order ids for the whole process. The first order gets 1000.
var orderSeq atomic.Int64

func init() { orderSeq.Store(999) }

// Order is a purchase snapshot against one restaurant. Items are copied at
// construction, so the originating cart can be cleared or mutated freely.
// Status is mutated only by the single processor that claims the order.
type Order struct {
	ID         int64
	Restaurant *Restaurant
	CreatedAt  time.Time

	items   []MenuItem
	status  atomic.Int32
	claimed atomic.Bool
}

func NewOrder(items []MenuItem, r *Restaurant) *Order {
	o := &Order{
		ID:         orderSeq.Add(1),
		Restaurant: r,
		CreatedAt:  time.Now().UTC(),
	}
	o.items = make([]MenuItem, len(items))
	copy(o.items, items)
	return o
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []MenuItem {
	out := make([]MenuItem, len(o.items))
	copy(out, o.items)
	return out
}

func (o *Order) ItemCount() int { return len(o.items) }

func (o *Order) Status() OrderStatus { return OrderStatus(o.status.Load()) }

// Advance moves the order forward to the given status. Regressions and
// same-status calls are ignored, which keeps the lifecycle monotonic no
// matter how callers race.
func (o *Order) Advance(to OrderStatus) bool {
	for {
		cur := o.status.Load()
		if int32(to) <= cur {
			return false
		}
		if o.status.CompareAndSwap(cur, int32(to)) {
			return true
		}
	}
}

// Claim binds the order to exactly one processor. The first caller wins;
// every later call reports false.
func (o *Order) Claim() bool { return o.claimed.CompareAndSwap(false, true) }

// TotalPrice is the sum of item prices plus the restaurant's delivery fee,
// computed on demand.
func (o *Order) TotalPrice() float64 {
	total := o.Restaurant.DeliveryFee
	for _, it := range o.items {
		total += it.Price
	}
	return total
}
