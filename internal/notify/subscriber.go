package notify

import (
	"context"
	"encoding/json"

	"foodflex/internal/connections/rabbitmq"
	"foodflex/internal/logger"
)

// Subscriber drains the updates queue and logs every event. It is the
// headless counterpart of a UI progress bar.
type Subscriber struct {
	mq *rabbitmq.Client
	lg *logger.Logger
}

func NewSubscriber(mq *rabbitmq.Client, lg *logger.Logger) *Subscriber {
	return &Subscriber{mq: mq, lg: lg}
}

// Run consumes until ctx is canceled or the delivery channel closes.
func (s *Subscriber) Run(ctx context.Context) error {
	if err := s.mq.DeclareTopology(); err != nil {
		return err
	}
	msgs, err := s.mq.Consume(rabbitmq.UpdatesQueue, "notification-subscriber", 1)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			var ev Event
			if err := json.Unmarshal(d.Body, &ev); err != nil {
				// Unparseable payloads are dropped, not requeued.
				s.lg.Error("event_decode_failed", err, map[string]any{"message_id": d.MessageId})
				_ = d.Nack(false, false)
				continue
			}
			s.lg.Info("order_update", map[string]any{
				"kind":     ev.Kind,
				"order_id": ev.OrderID,
				"status":   ev.Status,
				"progress": ev.Progress,
			})
			_ = d.Ack(false)
		}
	}
}
