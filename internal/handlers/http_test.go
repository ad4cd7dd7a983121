package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
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
	"foodflex/internal/service"
)

type memRepo struct {
	mu     sync.Mutex
	orders map[int64]repository.OrderRow
}

func (m *memRepo) CreateOrder(_ context.Context, o *domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders[o.ID] = repository.OrderRow{
		ID: o.ID, RestaurantID: o.Restaurant.ID, RestaurantName: o.Restaurant.Name,
		TotalPrice: o.TotalPrice(), Status: o.Status().String(), CreatedAt: o.CreatedAt,
	}
	return nil
}

func (m *memRepo) UpdateStatus(_ context.Context, orderID int64, status domain.OrderStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.orders[orderID]
	if !ok {
		return repository.ErrNotFound
	}
	row.Status = status.String()
	m.orders[orderID] = row
	return nil
}

func (m *memRepo) GetOrder(_ context.Context, orderID int64) (repository.OrderRow, []repository.ItemRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.orders[orderID]
	if !ok {
		return repository.OrderRow{}, nil, repository.ErrNotFound
	}
	return row, nil, nil
}

func (m *memRepo) StatusLog(_ context.Context, _ int64) ([]repository.StatusRow, error) {
	return nil, nil
}

type memCarts struct {
	mu    sync.Mutex
	carts map[string][]cartstore.Entry
}

func (m *memCarts) Add(_ context.Context, customer string, e cartstore.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.carts[customer] = append(m.carts[customer], e)
	return nil
}

func (m *memCarts) Remove(_ context.Context, customer string, e cartstore.Entry) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, have := range m.carts[customer] {
		if have == e {
			m.carts[customer] = append(m.carts[customer][:i], m.carts[customer][i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *memCarts) Entries(_ context.Context, customer string) ([]cartstore.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]cartstore.Entry(nil), m.carts[customer]...), nil
}

func (m *memCarts) Clear(_ context.Context, customer string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, customer)
	return nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	lg := logger.NewWriter("test", io.Discard)
	proc := order.NewProcessor(lg, order.WithTick(time.Millisecond))
	svc := service.NewOrderService(context.Background(), catalog.New(),
		&memCarts{carts: make(map[string][]cartstore.Entry)},
		&memRepo{orders: make(map[int64]repository.OrderRow)},
		history.NewLog(filepath.Join(t.TempDir(), "history.txt")),
		proc, order.Multi{}, lg)
	return New(svc, lg).Router()
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	req.Header.Set("X-Customer", "alice")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestListRestaurants(t *testing.T) {
	h := newTestRouter(t)
	w := do(t, h, http.MethodGet, "/restaurants", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var rs []domain.Restaurant
	if err := json.Unmarshal(w.Body.Bytes(), &rs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rs) != 9 {
		t.Errorf("restaurants = %d, want 9", len(rs))
	}
}

func TestMenuEndpoint(t *testing.T) {
	h := newTestRouter(t)

	w := do(t, h, http.MethodGet, "/restaurants/R001/menu?category=dessert", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var items []domain.MenuItem
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) != 10 {
		t.Errorf("desserts = %d, want 10", len(items))
	}

	if w := do(t, h, http.MethodGet, "/restaurants/R999/menu", ""); w.Code != http.StatusNotFound {
		t.Errorf("unknown restaurant status = %d, want 404", w.Code)
	}
}

func TestCartFlowAndPlaceOrder(t *testing.T) {
	h := newTestRouter(t)

	w := do(t, h, http.MethodPost, "/cart/items", `{"restaurant_id":"R001","item_id":"MC001"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("add to cart status = %d, body = %s", w.Code, w.Body.String())
	}
	w = do(t, h, http.MethodPost, "/cart/items", `{"restaurant_id":"R001","item_id":"BV001"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("add to cart status = %d", w.Code)
	}

	w = do(t, h, http.MethodGet, "/cart", "")
	var view service.CartView
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	if view.TotalPrice != 428 {
		t.Errorf("cart total = %v, want 428", view.TotalPrice)
	}

	w = do(t, h, http.MethodPost, "/orders", `{"restaurant_id":"R001"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("place order status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp service.PlaceOrderResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.TotalPrice != 477 || resp.Status != "preparing" {
		t.Errorf("unexpected response: %+v", resp)
	}

	// Placing again with the now-empty cart is rejected.
	if w := do(t, h, http.MethodPost, "/orders", `{"restaurant_id":"R001"}`); w.Code != http.StatusBadRequest {
		t.Errorf("empty cart status = %d, want 400", w.Code)
	}
}

func TestRemoveFromCartNotStaged(t *testing.T) {
	h := newTestRouter(t)
	w := do(t, h, http.MethodDelete, "/cart/items", `{"restaurant_id":"R001","item_id":"MC001"}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestGetOrderNotFound(t *testing.T) {
	h := newTestRouter(t)
	if w := do(t, h, http.MethodGet, "/orders/424242", ""); w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
	if w := do(t, h, http.MethodGet, "/orders/abc", ""); w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
