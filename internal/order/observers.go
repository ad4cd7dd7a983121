package order

import (
	"foodflex/internal/domain"
	"foodflex/internal/logger"
)

// Multi fans each notification out to several observers, in slice order.
type Multi []Observer

func (m Multi) OrderStarted(o *domain.Order) {
	for _, obs := range m {
		obs.OrderStarted(o)
	}
}

func (m Multi) OrderProgress(o *domain.Order, progress int) {
	for _, obs := range m {
		obs.OrderProgress(o, progress)
	}
}

func (m Multi) OrderCompleted(o *domain.Order) {
	for _, obs := range m {
		obs.OrderCompleted(o)
	}
}

// LogObserver writes lifecycle notifications to the structured log. The demo
// mode uses it as its only consumer.
type LogObserver struct {
	lg *logger.Logger
}

func NewLogObserver(lg *logger.Logger) *LogObserver { return &LogObserver{lg: lg} }

func (l *LogObserver) OrderStarted(o *domain.Order) {
	l.lg.Info("order_started", map[string]any{
		"order_id":   o.ID,
		"restaurant": o.Restaurant.Name,
		"status":     o.Status().String(),
	})
}

func (l *LogObserver) OrderProgress(o *domain.Order, progress int) {
	l.lg.Info("order_progress", map[string]any{
		"order_id": o.ID,
		"progress": progress,
		"status":   o.Status().String(),
	})
}

func (l *LogObserver) OrderCompleted(o *domain.Order) {
	l.lg.Info("order_completed", map[string]any{
		"order_id": o.ID,
		"status":   o.Status().String(),
		"total":    o.TotalPrice(),
	})
}
