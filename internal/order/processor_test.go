package order

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"foodflex/internal/domain"
	"foodflex/internal/logger"
)

func testLogger() *logger.Logger { return logger.NewWriter("test", io.Discard) }

func testOrder(n int) *domain.Order {
	items := make([]domain.MenuItem, n)
	for i := range items {
		items[i] = domain.MenuItem{ID: "MC001", Name: "Butter Chicken", Price: 349, Available: true}
	}
	return domain.NewOrder(items, &domain.Restaurant{ID: "R001", Name: "Spice Trail", DeliveryFee: 49})
}

// recorder captures the callback sequence of one order.
type recorder struct {
	mu              sync.Mutex
	started         int
	completed       int
	progress        []int
	statusAt        map[int]domain.OrderStatus
	completedStatus domain.OrderStatus
	done            chan struct{}
}

func newRecorder() *recorder {
	return &recorder{statusAt: make(map[int]domain.OrderStatus), done: make(chan struct{})}
}

func (r *recorder) OrderStarted(o *domain.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started++
}

func (r *recorder) OrderProgress(o *domain.Order, progress int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.progress = append(r.progress, progress)
	r.statusAt[progress] = o.Status()
}

func (r *recorder) OrderCompleted(o *domain.Order) {
	r.mu.Lock()
	r.completed++
	r.completedStatus = o.Status()
	r.mu.Unlock()
	close(r.done)
}

func (r *recorder) waitDone(t *testing.T) {
	t.Helper()
	select {
	case <-r.done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for completion")
	}
}

func TestProcessorCallbackSequence(t *testing.T) {
	p := NewProcessor(testLogger(), WithTick(time.Millisecond))
	rec := newRecorder()
	o := testOrder(2)

	if err := p.Start(context.Background(), o, rec); err != nil {
		t.Fatalf("Start: %v", err)
	}
	rec.waitDone(t)
	p.Wait()

	if rec.started != 1 {
		t.Errorf("started calls = %d, want 1", rec.started)
	}
	if rec.completed != 1 {
		t.Errorf("completed calls = %d, want 1", rec.completed)
	}
	if len(rec.progress) != 11 {
		t.Fatalf("progress calls = %d, want 11", len(rec.progress))
	}
	for i, got := range rec.progress {
		if got != i*10 {
			t.Errorf("progress[%d] = %d, want %d", i, got, i*10)
		}
	}
}

func TestProcessorStatusTransitions(t *testing.T) {
	p := NewProcessor(testLogger(), WithTick(time.Millisecond))
	rec := newRecorder()
	o := testOrder(1)

	if err := p.Start(context.Background(), o, rec); err != nil {
		t.Fatalf("Start: %v", err)
	}
	rec.waitDone(t)
	p.Wait()

	floors := map[int]domain.OrderStatus{
		0:  domain.StatusPreparing,
		30: domain.StatusCooking,
		60: domain.StatusPackaging,
		90: domain.StatusReady,
	}
	for progress, want := range floors {
		if got := rec.statusAt[progress]; got < want {
			t.Errorf("status at progress %d = %v, want at least %v", progress, got, want)
		}
	}
	if rec.completedStatus != domain.StatusDelivered {
		t.Errorf("status in completed callback = %v, want delivered", rec.completedStatus)
	}
	if o.Status() != domain.StatusDelivered {
		t.Errorf("final order status = %v, want delivered", o.Status())
	}
}

func TestProcessorRejectsEmptyOrder(t *testing.T) {
	p := NewProcessor(testLogger(), WithTick(time.Millisecond))
	rec := newRecorder()
	o := testOrder(0)

	err := p.Start(context.Background(), o, rec)
	if !errors.Is(err, domain.ErrEmptyOrder) {
		t.Fatalf("Start on empty order = %v, want ErrEmptyOrder", err)
	}
	p.Wait()

	rec.mu.Lock()
	defer rec.mu.Unlock()
	if rec.started != 0 || rec.completed != 0 || len(rec.progress) != 0 {
		t.Errorf("observer was called for a rejected order: %+v", rec)
	}
}

func TestProcessorRejectsDoubleStart(t *testing.T) {
	p := NewProcessor(testLogger(), WithTick(time.Millisecond))
	rec := newRecorder()
	o := testOrder(1)

	if err := p.Start(context.Background(), o, rec); err != nil {
		t.Fatalf("first Start: %v", err)
	}
	if err := p.Start(context.Background(), o, newRecorder()); !errors.Is(err, domain.ErrOrderClaimed) {
		t.Fatalf("second Start = %v, want ErrOrderClaimed", err)
	}
	rec.waitDone(t)
	p.Wait()

	if rec.started != 1 || rec.completed != 1 {
		t.Errorf("observer counts after double start: started=%d completed=%d", rec.started, rec.completed)
	}
}

func TestProcessorCancellation(t *testing.T) {
	p := NewProcessor(testLogger(), WithTick(20*time.Millisecond))
	rec := newRecorder()
	o := testOrder(1)

	ctx, cancel := context.WithCancel(context.Background())
	if err := p.Start(ctx, o, rec); err != nil {
		t.Fatalf("Start: %v", err)
	}
	// Let a few ticks land, then pull the plug.
	time.Sleep(90 * time.Millisecond)
	cancel()
	p.Wait()

	rec.mu.Lock()
	completed := rec.completed
	calls := len(rec.progress)
	rec.mu.Unlock()

	if completed != 0 {
		t.Error("completed fired for a canceled order")
	}
	if calls == 11 {
		t.Error("cancellation did not interrupt the progress sequence")
	}
	if o.Status() == domain.StatusDelivered {
		t.Error("canceled order reached delivered")
	}

	// No stragglers after the run goroutine has exited.
	time.Sleep(60 * time.Millisecond)
	rec.mu.Lock()
	after := len(rec.progress)
	rec.mu.Unlock()
	if after != calls {
		t.Error("progress callbacks continued after cancellation")
	}
}

func TestConcurrentOrdersGetSequentialIDs(t *testing.T) {
	p := NewProcessor(testLogger(), WithTick(time.Millisecond))
	first := testOrder(1)
	second := testOrder(1)

	if second.ID != first.ID+1 {
		t.Fatalf("back-to-back ids = %d, %d; want consecutive", first.ID, second.ID)
	}

	recA, recB := newRecorder(), newRecorder()
	if err := p.Start(context.Background(), first, recA); err != nil {
		t.Fatalf("Start first: %v", err)
	}
	if err := p.Start(context.Background(), second, recB); err != nil {
		t.Fatalf("Start second: %v", err)
	}
	recA.waitDone(t)
	recB.waitDone(t)
	p.Wait()

	for name, rec := range map[string]*recorder{"first": recA, "second": recB} {
		if rec.started != 1 || rec.completed != 1 || len(rec.progress) != 11 {
			t.Errorf("%s order sequence corrupted: started=%d completed=%d progress=%d",
				name, rec.started, rec.completed, len(rec.progress))
		}
	}
}

func TestMultiObserverFansOut(t *testing.T) {
	p := NewProcessor(testLogger(), WithTick(time.Millisecond))
	recA, recB := newRecorder(), newRecorder()
	o := testOrder(1)

	if err := p.Start(context.Background(), o, Multi{recA, recB}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	recA.waitDone(t)
	recB.waitDone(t)
	p.Wait()

	for name, rec := range map[string]*recorder{"A": recA, "B": recB} {
		if rec.started != 1 || rec.completed != 1 || len(rec.progress) != 11 {
			t.Errorf("observer %s missed calls: started=%d completed=%d progress=%d",
				name, rec.started, rec.completed, len(rec.progress))
		}
	}
}
