// Package service wires the catalog, carts, persistence, history log and the
// order processor behind one API used by the HTTP handlers and the demo mode.
package service

import (
	"context"
	"errors"
	"fmt"

	"foodflex/internal/cart"
	"foodflex/internal/cartstore"
	"foodflex/internal/catalog"
	"foodflex/internal/domain"
	"foodflex/internal/history"
	"foodflex/internal/logger"
	"foodflex/internal/order"
	"foodflex/internal/repository"
)

var ErrUnknownRestaurant = errors.New("unknown restaurant")
var ErrUnknownItem = errors.New("unknown menu item")

// CartStoreInterface is what OrderService needs from the cart persistence.
type CartStoreInterface interface {
	Add(ctx context.Context, customer string, e cartstore.Entry) error
	Remove(ctx context.Context, customer string, e cartstore.Entry) (bool, error)
	Entries(ctx context.Context, customer string) ([]cartstore.Entry, error)
	Clear(ctx context.Context, customer string) error
}

type OrderService struct {
	catalog *catalog.Catalog
	carts   CartStoreInterface
	repo    repository.OrdersInterface
	hist    *history.Log
	proc    *order.Processor
	obs     order.Observer
	lg      *logger.Logger

	// runCtx outlives individual HTTP requests so an order keeps processing
	// after the placing request returns.
	runCtx context.Context
}

func NewOrderService(runCtx context.Context, cat *catalog.Catalog, carts CartStoreInterface,
	repo repository.OrdersInterface, hist *history.Log, proc *order.Processor,
	obs order.Observer, lg *logger.Logger) *OrderService {
	return &OrderService{
		catalog: cat,
		carts:   carts,
		repo:    repo,
		hist:    hist,
		proc:    proc,
		obs:     obs,
		lg:      lg,
		runCtx:  runCtx,
	}
}

func (s *OrderService) Restaurants() []*domain.Restaurant { return s.catalog.Restaurants() }

// Menu returns a restaurant's menu, optionally filtered by category.
func (s *OrderService) Menu(restaurantID, category string) ([]domain.MenuItem, error) {
	r, ok := s.catalog.Restaurant(restaurantID)
	if !ok {
		return nil, ErrUnknownRestaurant
	}
	if category == "" {
		return r.Menu, nil
	}
	cat, ok := domain.ParseCategory(category)
	if !ok {
		return nil, fmt.Errorf("unknown category %q", category)
	}
	return catalog.ByCategory(r, cat), nil
}

func (s *OrderService) BestSellers(restaurantID string) ([]domain.MenuItem, error) {
	r, ok := s.catalog.Restaurant(restaurantID)
	if !ok {
		return nil, ErrUnknownRestaurant
	}
	return catalog.BestSellers(r), nil
}

// AddToCart validates the item against the catalog before staging it, so an
// unavailable item is rejected immediately rather than at order time.
func (s *OrderService) AddToCart(ctx context.Context, customer, restaurantID, itemID string) error {
	it, ok := s.catalog.Item(restaurantID, itemID)
	if !ok {
		return ErrUnknownItem
	}
	if !it.Available {
		return fmt.Errorf("%s: %w", it.Name, domain.ErrItemUnavailable)
	}
	return s.carts.Add(ctx, customer, cartstore.Entry{RestaurantID: restaurantID, ItemID: itemID})
}

func (s *OrderService) RemoveFromCart(ctx context.Context, customer, restaurantID, itemID string) (bool, error) {
	return s.carts.Remove(ctx, customer, cartstore.Entry{RestaurantID: restaurantID, ItemID: itemID})
}

type CartView struct {
	Items          []domain.MenuItem `json:"items"`
	TotalPrice     float64           `json:"total_price"`
	TotalCalories  int               `json:"total_calories"`
	Recommendation string            `json:"recommendation"`
}

func (s *OrderService) Cart(ctx context.Context, customer string) (CartView, error) {
	items, err := s.cartItems(ctx, customer)
	if err != nil {
		return CartView{}, err
	}
	c := cart.New()
	for _, it := range items {
		if err := c.Add(it); err != nil {
			return CartView{}, err
		}
	}
	return CartView{
		Items:          c.Items(),
		TotalPrice:     c.TotalPrice(),
		TotalCalories:  c.TotalCalories(),
		Recommendation: c.Recommend(),
	}, nil
}

type PlaceOrderResponse struct {
	OrderID    int64   `json:"order_id"`
	Status     string  `json:"status"`
	TotalPrice float64 `json:"total_price"`
}

// PlaceOrder snapshots the customer's cart into an Order, persists it, writes
// the history line, starts the processor and clears the cart. It returns as
// soon as the processor is scheduled; nothing here waits for delivery.
func (s *OrderService) PlaceOrder(ctx context.Context, customer, restaurantID string) (PlaceOrderResponse, error) {
	r, ok := s.catalog.Restaurant(restaurantID)
	if !ok {
		return PlaceOrderResponse{}, ErrUnknownRestaurant
	}

	items, err := s.cartItems(ctx, customer)
	if err != nil {
		return PlaceOrderResponse{}, err
	}
	if len(items) == 0 {
		return PlaceOrderResponse{}, domain.ErrEmptyOrder
	}

	o := domain.NewOrder(items, r)
	// Snapshot the placement-time view before the processor can advance it.
	resp := PlaceOrderResponse{OrderID: o.ID, Status: o.Status().String(), TotalPrice: o.TotalPrice()}

	if err := s.repo.CreateOrder(ctx, o); err != nil {
		return PlaceOrderResponse{}, fmt.Errorf("persist order: %w", err)
	}
	if err := s.hist.Append(o); err != nil {
		// History is best-effort bookkeeping; the order is already placed.
		s.lg.Error("history_append_failed", err, map[string]any{"order_id": o.ID})
	}

	if err := s.proc.Start(s.runCtx, o, s.obs); err != nil {
		return PlaceOrderResponse{}, err
	}

	if err := s.carts.Clear(ctx, customer); err != nil {
		s.lg.Error("cart_clear_failed", err, map[string]any{"customer": customer})
	}

	s.lg.Info("order_placed", map[string]any{
		"order_id":   o.ID,
		"restaurant": r.Name,
		"items":      o.ItemCount(),
		"total":      o.TotalPrice(),
	})
	return resp, nil
}

type OrderView struct {
	Order     repository.OrderRow    `json:"order"`
	Items     []repository.ItemRow   `json:"items"`
	StatusLog []repository.StatusRow `json:"status_log"`
}

func (s *OrderService) Order(ctx context.Context, orderID int64) (OrderView, error) {
	row, items, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return OrderView{}, err
	}
	log, err := s.repo.StatusLog(ctx, orderID)
	if err != nil {
		return OrderView{}, err
	}
	return OrderView{Order: row, Items: items, StatusLog: log}, nil
}

func (s *OrderService) cartItems(ctx context.Context, customer string) ([]domain.MenuItem, error) {
	entries, err := s.carts.Entries(ctx, customer)
	if err != nil {
		return nil, err
	}
	items := make([]domain.MenuItem, 0, len(entries))
	for _, e := range entries {
		it, ok := s.catalog.Item(e.RestaurantID, e.ItemID)
		if !ok {
			return nil, fmt.Errorf("%w: %s/%s", ErrUnknownItem, e.RestaurantID, e.ItemID)
		}
		items = append(items, it)
	}
	return items, nil
}
