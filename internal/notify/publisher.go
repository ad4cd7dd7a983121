// Package notify bridges order lifecycle notifications onto RabbitMQ. The
// publisher is an order.Observer; anything consuming the fanout queue sees
// the same event sequence an in-process observer would.
package notify

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"

	"foodflex/internal/connections/rabbitmq"
	"foodflex/internal/domain"
	"foodflex/internal/logger"
)

const publishTTL = 5 * time.Second

// Event is the wire form of one lifecycle notification.
type Event struct {
	Kind       string    `json:"kind"` // started | progress | completed
	OrderID    int64     `json:"order_id"`
	Restaurant string    `json:"restaurant"`
	Status     string    `json:"status"`
	Progress   int       `json:"progress"`
	TotalPrice float64   `json:"total_price"`
	Timestamp  time.Time `json:"timestamp"`
}

type Publisher struct {
	mq *rabbitmq.Client
	lg *logger.Logger
}

func NewPublisher(mq *rabbitmq.Client, lg *logger.Logger) *Publisher {
	return &Publisher{mq: mq, lg: lg}
}

func (p *Publisher) OrderStarted(o *domain.Order) { p.publish("started", o, 0) }

func (p *Publisher) OrderProgress(o *domain.Order, progress int) {
	p.publish("progress", o, progress)
}

func (p *Publisher) OrderCompleted(o *domain.Order) { p.publish("completed", o, 100) }

// publish never propagates an error: a broker hiccup must not derail the
// order lifecycle, so failures are logged and the sequence moves on.
func (p *Publisher) publish(kind string, o *domain.Order, progress int) {
	ev := Event{
		Kind:       kind,
		OrderID:    o.ID,
		Restaurant: o.Restaurant.Name,
		Status:     o.Status().String(),
		Progress:   progress,
		TotalPrice: o.TotalPrice(),
		Timestamp:  time.Now().UTC(),
	}
	body, err := json.Marshal(ev)
	if err != nil {
		p.lg.Error("event_marshal_failed", err, map[string]any{"order_id": o.ID, "kind": kind})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTTL)
	defer cancel()

	msgID := uuid.NewString()
	correlationID := strconv.FormatInt(o.ID, 10)
	if err := p.mq.Publish(ctx, rabbitmq.UpdatesExchange, "", msgID, correlationID, body); err != nil {
		p.lg.Error("event_publish_failed", err, map[string]any{"order_id": o.ID, "kind": kind})
	}
}
