// Package order drives placed orders through their lifecycle and notifies an
// observer at each step. One processor serves the whole process; each started
// order runs on its own goroutine, bounded by a shared semaphore.
package order

import (
	"context"
	"sync"
	"time"

	"foodflex/internal/domain"
	"foodflex/internal/logger"
)

// Observer receives lifecycle notifications for one order. For a started
// order the calls arrive in a fixed sequence: one OrderStarted, then
// OrderProgress for 0,10,...,100 in increasing order, then one OrderCompleted.
// The order passed in reflects the status reached at that point. Sequences of
// different orders may interleave when observers are shared.
type Observer interface {
	OrderStarted(o *domain.Order)
	OrderProgress(o *domain.Order, progress int)
	OrderCompleted(o *domain.Order)
}

const (
	// DefaultTick paces processing at one progress step per 800ms.
	DefaultTick = 800 * time.Millisecond

	// DefaultMaxInFlight bounds concurrently processed orders.
	DefaultMaxInFlight = 50

	progressStep = 10
	progressMax  = 100
)

type Processor struct {
	tick time.Duration
	sem  chan struct{}
	lg   *logger.Logger
	wg   sync.WaitGroup
}

type Option func(*Processor)

// WithTick overrides the per-step delay. Tests use a short tick.
func WithTick(d time.Duration) Option {
	return func(p *Processor) { p.tick = d }
}

// WithMaxInFlight resizes the worker bound.
func WithMaxInFlight(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.sem = make(chan struct{}, n)
		}
	}
}

func NewProcessor(lg *logger.Logger, opts ...Option) *Processor {
	p := &Processor{
		tick: DefaultTick,
		sem:  make(chan struct{}, DefaultMaxInFlight),
		lg:   lg,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start claims the order and schedules its lifecycle run, returning without
// waiting for any notification. It fails synchronously, with no observer
// callback, when the order has no items or is already bound to a processor.
//
// Cancelling ctx stops the run cleanly between ticks: the order keeps its
// last-reached status and the observer hears nothing further.
func (p *Processor) Start(ctx context.Context, o *domain.Order, obs Observer) error {
	if o.ItemCount() == 0 {
		return domain.ErrEmptyOrder
	}
	if !o.Claim() {
		return domain.ErrOrderClaimed
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		select {
		case p.sem <- struct{}{}:
		case <-ctx.Done():
			p.lg.Error("order_processing_aborted", ctx.Err(), map[string]any{"order_id": o.ID, "status": o.Status().String()})
			return
		}
		defer func() { <-p.sem }()

		p.run(ctx, o, obs)
	}()
	return nil
}

// Wait blocks until every scheduled run has finished.
func (p *Processor) Wait() { p.wg.Wait() }

func (p *Processor) run(ctx context.Context, o *domain.Order, obs Observer) {
	obs.OrderStarted(o)

	timer := time.NewTimer(p.tick)
	defer timer.Stop()

	for progress := 0; progress <= progressMax; progress += progressStep {
		select {
		case <-timer.C:
		case <-ctx.Done():
			// The order stays in whatever status it last reached and the
			// observer gets no further calls, only a log line.
			p.lg.Error("order_processing_aborted", ctx.Err(), map[string]any{"order_id": o.ID, "status": o.Status().String(), "progress": progress})
			return
		}
		timer.Reset(p.tick)

		// Status transitions land before the progress callback for that
		// tick, so an observer at 30/60/90 already sees the new status.
		switch progress {
		case 30:
			o.Advance(domain.StatusCooking)
		case 60:
			o.Advance(domain.StatusPackaging)
		case 90:
			o.Advance(domain.StatusReady)
		}
		obs.OrderProgress(o, progress)
	}

	o.Advance(domain.StatusDelivered)
	obs.OrderCompleted(o)
	p.lg.Debug("order_delivered", map[string]any{"order_id": o.ID, "restaurant": o.Restaurant.Name})
}
