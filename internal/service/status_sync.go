package service

import (
	"context"
	"sync"
	"time"

	"foodflex/internal/domain"
	"foodflex/internal/logger"
	"foodflex/internal/repository"
)

const syncTTL = 5 * time.Second

// StatusSync mirrors lifecycle transitions into Postgres. It only writes when
// the in-memory status actually moved, so of the eleven progress ticks only
// the three transition ticks reach the database.
type StatusSync struct {
	repo repository.OrdersInterface
	lg   *logger.Logger

	mu   sync.Mutex
	last map[int64]domain.OrderStatus
}

func NewStatusSync(repo repository.OrdersInterface, lg *logger.Logger) *StatusSync {
	return &StatusSync{repo: repo, lg: lg, last: make(map[int64]domain.OrderStatus)}
}

func (s *StatusSync) OrderStarted(o *domain.Order) {
	// The initial status row is written by CreateOrder.
	s.mu.Lock()
	s.last[o.ID] = o.Status()
	s.mu.Unlock()
}

func (s *StatusSync) OrderProgress(o *domain.Order, _ int) {
	cur := o.Status()
	s.mu.Lock()
	if prev, ok := s.last[o.ID]; ok && cur == prev {
		s.mu.Unlock()
		return
	}
	s.last[o.ID] = cur
	s.mu.Unlock()
	s.write(o.ID, cur)
}

func (s *StatusSync) OrderCompleted(o *domain.Order) {
	s.mu.Lock()
	delete(s.last, o.ID)
	s.mu.Unlock()
	s.write(o.ID, o.Status())
}

func (s *StatusSync) write(orderID int64, status domain.OrderStatus) {
	ctx, cancel := context.WithTimeout(context.Background(), syncTTL)
	defer cancel()
	if err := s.repo.UpdateStatus(ctx, orderID, status); err != nil {
		s.lg.Error("status_sync_failed", err, map[string]any{"order_id": orderID, "status": status.String()})
	}
}
