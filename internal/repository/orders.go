// Package repository persists placed orders and their status history in
// Postgres. The processor itself does no I/O; status rows are written by the
// repository-backed observer in the service layer.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"foodflex/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS orders (
    id BIGINT PRIMARY KEY,
    restaurant_id VARCHAR(16) NOT NULL,
    restaurant_name VARCHAR(255) NOT NULL,
    total_price NUMERIC(10,2) NOT NULL,
    status VARCHAR(32) NOT NULL,
    created_at TIMESTAMPTZ NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS order_items (
    id BIGSERIAL PRIMARY KEY,
    order_id BIGINT REFERENCES orders(id) ON DELETE CASCADE,
    item_id VARCHAR(16) NOT NULL,
    name VARCHAR(255) NOT NULL,
    category VARCHAR(32) NOT NULL,
    price NUMERIC(10,2) NOT NULL,
    calories INT NOT NULL
);

CREATE TABLE IF NOT EXISTS order_status_log (
    id BIGSERIAL PRIMARY KEY,
    order_id BIGINT REFERENCES orders(id) ON DELETE CASCADE,
    status VARCHAR(32) NOT NULL,
    changed_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items(order_id);
CREATE INDEX IF NOT EXISTS idx_order_status_log_order_id ON order_status_log(order_id);
`

var ErrNotFound = errors.New("order not found")

type OrdersInterface interface {
	CreateOrder(ctx context.Context, o *domain.Order) error
	UpdateStatus(ctx context.Context, orderID int64, status domain.OrderStatus) error
	GetOrder(ctx context.Context, orderID int64) (OrderRow, []ItemRow, error)
	StatusLog(ctx context.Context, orderID int64) ([]StatusRow, error)
}

type OrderRow struct {
	ID             int64     `json:"id"`
	RestaurantID   string    `json:"restaurant_id"`
	RestaurantName string    `json:"restaurant_name"`
	TotalPrice     float64   `json:"total_price"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

type ItemRow struct {
	ItemID   string  `json:"item_id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Calories int     `json:"calories"`
}

type StatusRow struct {
	Status    string    `json:"status"`
	ChangedAt time.Time `json:"changed_at"`
}

type Orders struct {
	pool *pgxpool.Pool
}

func NewOrders(pool *pgxpool.Pool) *Orders { return &Orders{pool: pool} }

// Init applies the schema. Idempotent.
func (r *Orders) Init(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// CreateOrder inserts the order, its items and the initial status row in one
// transaction.
func (r *Orders) CreateOrder(ctx context.Context, o *domain.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	status := o.Status().String()
	_, err = tx.Exec(ctx, `
		INSERT INTO orders (id, restaurant_id, restaurant_name, total_price, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		o.ID, o.Restaurant.ID, o.Restaurant.Name, o.TotalPrice(), status, o.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for _, it := range o.Items() {
		_, err = tx.Exec(ctx, `
			INSERT INTO order_items (order_id, item_id, name, category, price, calories)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			o.ID, it.ID, it.Name, string(it.Category), it.Price, it.Calories)
		if err != nil {
			return fmt.Errorf("insert order item %s: %w", it.Name, err)
		}
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO order_status_log (order_id, status) VALUES ($1, $2)`,
		o.ID, status)
	if err != nil {
		return fmt.Errorf("insert status log: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// UpdateStatus records a transition on the order row and in the status log.
func (r *Orders) UpdateStatus(ctx context.Context, orderID int64, status domain.OrderStatus) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE orders SET status = $2, updated_at = NOW() WHERE id = $1`,
		orderID, status.String())
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO order_status_log (order_id, status) VALUES ($1, $2)`,
		orderID, status.String())
	if err != nil {
		return fmt.Errorf("insert status log: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *Orders) GetOrder(ctx context.Context, orderID int64) (OrderRow, []ItemRow, error) {
	var row OrderRow
	err := r.pool.QueryRow(ctx, `
		SELECT id, restaurant_id, restaurant_name, total_price, status, created_at
		FROM orders WHERE id = $1`, orderID).
		Scan(&row.ID, &row.RestaurantID, &row.RestaurantName, &row.TotalPrice, &row.Status, &row.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return OrderRow{}, nil, ErrNotFound
		}
		return OrderRow{}, nil, fmt.Errorf("select order: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT item_id, name, category, price, calories
		FROM order_items WHERE order_id = $1 ORDER BY id`, orderID)
	if err != nil {
		return OrderRow{}, nil, fmt.Errorf("select order items: %w", err)
	}
	defer rows.Close()

	var items []ItemRow
	for rows.Next() {
		var it ItemRow
		if err := rows.Scan(&it.ItemID, &it.Name, &it.Category, &it.Price, &it.Calories); err != nil {
			return OrderRow{}, nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, it)
	}
	return row, items, rows.Err()
}

func (r *Orders) StatusLog(ctx context.Context, orderID int64) ([]StatusRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT status, changed_at FROM order_status_log
		WHERE order_id = $1 ORDER BY id`, orderID)
	if err != nil {
		return nil, fmt.Errorf("select status log: %w", err)
	}
	defer rows.Close()

	var out []StatusRow
	for rows.Next() {
		var s StatusRow
		if err := rows.Scan(&s.Status, &s.ChangedAt); err != nil {
			return nil, fmt.Errorf("scan status row: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
