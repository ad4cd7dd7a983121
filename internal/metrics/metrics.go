package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"foodflex/internal/domain"
)

type Metrics struct {
	OrdersPlaced   *prometheus.CounterVec
	OrdersInFlight prometheus.Gauge
	DeliverySecs   prometheus.Histogram

	reg    *prometheus.Registry
	starts sync.Map // order id -> time.Time
}

func New() *Metrics {
	m := &Metrics{
		OrdersPlaced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "foodflex_orders_placed_total",
			Help: "Orders placed, by restaurant.",
		}, []string{"restaurant"}),
		OrdersInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "foodflex_orders_in_flight",
			Help: "Orders currently moving through the lifecycle.",
		}),
		DeliverySecs: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "foodflex_order_delivery_seconds",
			Help:    "Wall time from start to delivered.",
			Buckets: prometheus.DefBuckets,
		}),
		reg: prometheus.NewRegistry(),
	}
	m.reg.MustRegister(m.OrdersPlaced, m.OrdersInFlight, m.DeliverySecs)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}

// Observer adapts the metrics to the order lifecycle callbacks.
func (m *Metrics) Observer() *Observer { return &Observer{m: m} }

type Observer struct {
	m *Metrics
}

func (o *Observer) OrderStarted(ord *domain.Order) {
	o.m.OrdersInFlight.Inc()
	o.m.starts.Store(ord.ID, time.Now())
}

func (o *Observer) OrderProgress(*domain.Order, int) {}

func (o *Observer) OrderCompleted(ord *domain.Order) {
	o.m.OrdersInFlight.Dec()
	if v, ok := o.m.starts.LoadAndDelete(ord.ID); ok {
		o.m.DeliverySecs.Observe(time.Since(v.(time.Time)).Seconds())
	}
}
