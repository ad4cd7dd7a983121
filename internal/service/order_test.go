package service

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"foodflex/internal/cartstore"
	"foodflex/internal/catalog"
	"foodflex/internal/domain"
	"foodflex/internal/history"
	"foodflex/internal/logger"
	"foodflex/internal/order"
	"foodflex/internal/repository"
)

// fakeRepo is an in-memory stand-in for the Postgres order store.
type fakeRepo struct {
	mu     sync.Mutex
	orders map[int64]repository.OrderRow
	items  map[int64][]repository.ItemRow
	log    map[int64][]repository.StatusRow
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		orders: make(map[int64]repository.OrderRow),
		items:  make(map[int64][]repository.ItemRow),
		log:    make(map[int64][]repository.StatusRow),
	}
}

func (f *fakeRepo) CreateOrder(_ context.Context, o *domain.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orders[o.ID] = repository.OrderRow{
		ID:             o.ID,
		RestaurantID:   o.Restaurant.ID,
		RestaurantName: o.Restaurant.Name,
		TotalPrice:     o.TotalPrice(),
		Status:         o.Status().String(),
		CreatedAt:      o.CreatedAt,
	}
	for _, it := range o.Items() {
		f.items[o.ID] = append(f.items[o.ID], repository.ItemRow{
			ItemID: it.ID, Name: it.Name, Category: string(it.Category), Price: it.Price, Calories: it.Calories,
		})
	}
	f.log[o.ID] = append(f.log[o.ID], repository.StatusRow{Status: o.Status().String(), ChangedAt: time.Now()})
	return nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, orderID int64, status domain.OrderStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.orders[orderID]
	if !ok {
		return repository.ErrNotFound
	}
	row.Status = status.String()
	f.orders[orderID] = row
	f.log[orderID] = append(f.log[orderID], repository.StatusRow{Status: status.String(), ChangedAt: time.Now()})
	return nil
}

func (f *fakeRepo) GetOrder(_ context.Context, orderID int64) (repository.OrderRow, []repository.ItemRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.orders[orderID]
	if !ok {
		return repository.OrderRow{}, nil, repository.ErrNotFound
	}
	return row, f.items[orderID], nil
}

func (f *fakeRepo) StatusLog(_ context.Context, orderID int64) ([]repository.StatusRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.log[orderID], nil
}

func (f *fakeRepo) status(orderID int64) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.orders[orderID].Status
}

// fakeCarts is an in-memory stand-in for the Redis cart store.
type fakeCarts struct {
	mu    sync.Mutex
	carts map[string][]cartstore.Entry
}

func newFakeCarts() *fakeCarts { return &fakeCarts{carts: make(map[string][]cartstore.Entry)} }

func (f *fakeCarts) Add(_ context.Context, customer string, e cartstore.Entry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.carts[customer] = append(f.carts[customer], e)
	return nil
}

func (f *fakeCarts) Remove(_ context.Context, customer string, e cartstore.Entry) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, have := range f.carts[customer] {
		if have == e {
			f.carts[customer] = append(f.carts[customer][:i], f.carts[customer][i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCarts) Entries(_ context.Context, customer string) ([]cartstore.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]cartstore.Entry(nil), f.carts[customer]...), nil
}

func (f *fakeCarts) Clear(_ context.Context, customer string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.carts, customer)
	return nil
}

func newTestService(t *testing.T) (*OrderService, *fakeRepo, *fakeCarts, *order.Processor) {
	t.Helper()
	lg := logger.NewWriter("test", io.Discard)
	repo := newFakeRepo()
	carts := newFakeCarts()
	proc := order.NewProcessor(lg, order.WithTick(time.Millisecond))
	obs := order.Multi{NewStatusSync(repo, lg)}
	hist := history.NewLog(filepath.Join(t.TempDir(), "history.txt"))

	svc := NewOrderService(context.Background(), catalog.New(), carts, repo, hist, proc, obs, lg)
	return svc, repo, carts, proc
}

func TestPlaceOrder(t *testing.T) {
	svc, repo, carts, proc := newTestService(t)
	ctx := context.Background()

	if err := svc.AddToCart(ctx, "alice", "R001", "MC001"); err != nil {
		t.Fatalf("AddToCart: %v", err)
	}
	if err := svc.AddToCart(ctx, "alice", "R001", "BV001"); err != nil {
		t.Fatalf("AddToCart: %v", err)
	}

	resp, err := svc.PlaceOrder(ctx, "alice", "R001")
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if resp.TotalPrice != 477 {
		t.Errorf("total = %v, want 477", resp.TotalPrice)
	}
	if resp.Status != "preparing" {
		t.Errorf("status = %q, want preparing", resp.Status)
	}

	// The cart is cleared synchronously with placement.
	entries, err := carts.Entries(ctx, "alice")
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("cart not cleared: %d entries", len(entries))
	}

	proc.Wait()
	if got := repo.status(resp.OrderID); got != "delivered" {
		t.Errorf("persisted status after processing = %q, want delivered", got)
	}

	log, err := svc.Order(ctx, resp.OrderID)
	if err != nil {
		t.Fatalf("Order: %v", err)
	}
	wantLog := []string{"preparing", "cooking", "packaging", "ready", "delivered"}
	if len(log.StatusLog) != len(wantLog) {
		t.Fatalf("status log has %d rows, want %d: %+v", len(log.StatusLog), len(wantLog), log.StatusLog)
	}
	for i, want := range wantLog {
		if log.StatusLog[i].Status != want {
			t.Errorf("status log[%d] = %q, want %q", i, log.StatusLog[i].Status, want)
		}
	}
	if len(log.Items) != 2 {
		t.Errorf("persisted items = %d, want 2", len(log.Items))
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	svc, repo, _, _ := newTestService(t)

	_, err := svc.PlaceOrder(context.Background(), "bob", "R001")
	if !errors.Is(err, domain.ErrEmptyOrder) {
		t.Fatalf("PlaceOrder on empty cart = %v, want ErrEmptyOrder", err)
	}
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if len(repo.orders) != 0 {
		t.Error("an order was persisted despite the empty cart")
	}
}

func TestPlaceOrderUnknownRestaurant(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	if _, err := svc.PlaceOrder(context.Background(), "bob", "R999"); !errors.Is(err, ErrUnknownRestaurant) {
		t.Fatalf("PlaceOrder = %v, want ErrUnknownRestaurant", err)
	}
}

func TestAddToCartUnknownItem(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	if err := svc.AddToCart(context.Background(), "bob", "R001", "ZZ999"); !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("AddToCart = %v, want ErrUnknownItem", err)
	}
}

func TestCartView(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	if err := svc.AddToCart(ctx, "carol", "R001", "MC001"); err != nil {
		t.Fatalf("AddToCart: %v", err)
	}
	view, err := svc.Cart(ctx, "carol")
	if err != nil {
		t.Fatalf("Cart: %v", err)
	}
	if view.TotalPrice != 349 {
		t.Errorf("cart total = %v, want 349", view.TotalPrice)
	}
	if view.TotalCalories != 450 {
		t.Errorf("cart calories = %v, want 450", view.TotalCalories)
	}
	if view.Recommendation != "Try our Masala Lemonade with your meal!" {
		t.Errorf("recommendation = %q", view.Recommendation)
	}
}

func TestMenuFiltering(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	all, err := svc.Menu("R001", "")
	if err != nil {
		t.Fatalf("Menu: %v", err)
	}
	starters, err := svc.Menu("R001", "starter")
	if err != nil {
		t.Fatalf("Menu starter: %v", err)
	}
	if len(starters) == 0 || len(starters) >= len(all) {
		t.Errorf("starters = %d of %d items", len(starters), len(all))
	}
	if _, err := svc.Menu("R001", "fusion"); err == nil {
		t.Error("Menu accepted an unknown category")
	}
	if _, err := svc.Menu("R999", ""); !errors.Is(err, ErrUnknownRestaurant) {
		t.Errorf("Menu = %v, want ErrUnknownRestaurant", err)
	}
}

func TestBestSellersEndpointShape(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	best, err := svc.BestSellers("R001")
	if err != nil {
		t.Fatalf("BestSellers: %v", err)
	}
	if len(best) != 5 {
		t.Errorf("best sellers = %d, want 5", len(best))
	}
}
