// Package metrics exposes Prometheus collectors for basket pricing and HTTP
// traffic.
package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder groups the collectors. A nil *Recorder records nothing.
type Recorder struct {
	BasketsPriced *prometheus.CounterVec
	DiscountTotal prometheus.Counter
	GiftsAdded    prometheus.Counter
	BasketLines   prometheus.Histogram
	ReqTotal      *prometheus.CounterVec
	ReqDur        *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg, or with the default
// registerer when reg is nil.
func New(namespace string, reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	r := &Recorder{
		BasketsPriced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "baskets_priced_total",
			Help:      "Number of basket pricing requests by outcome.",
		}, []string{"result"}),
		DiscountTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "basket_discount_total",
			Help:      "Sum of promotional discounts granted.",
		}),
		GiftsAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "basket_gifts_added_total",
			Help:      "Number of free gift units added to priced baskets.",
		}),
		BasketLines: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "basket_lines",
			Help:      "Distribution of line counts per priced basket.",
			Buckets:   []float64{1, 2, 5, 10, 25, 50, 100},
		}),
		ReqTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests handled by the server.",
		}, []string{"method", "route", "status"}),
		ReqDur: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	r.BasketsPriced = register(reg, r.BasketsPriced)
	r.DiscountTotal = register(reg, r.DiscountTotal)
	r.GiftsAdded = register(reg, r.GiftsAdded)
	r.BasketLines = register(reg, r.BasketLines)
	r.ReqTotal = register(reg, r.ReqTotal)
	r.ReqDur = register(reg, r.ReqDur)

	return r
}

// ObservePriced records a successfully priced basket.
func (r *Recorder) ObservePriced(lines, gifts int, discount float64) {
	if r == nil {
		return
	}
	r.BasketsPriced.WithLabelValues("ok").Inc()
	r.BasketLines.Observe(float64(lines))
	r.GiftsAdded.Add(float64(gifts))
	if discount > 0 {
		r.DiscountTotal.Add(discount)
	}
}

// ObserveRejected records a basket request that failed validation.
func (r *Recorder) ObserveRejected() {
	if r == nil {
		return
	}
	r.BasketsPriced.WithLabelValues("rejected").Inc()
}

// ObserveRequest records an HTTP request.
func (r *Recorder) ObserveRequest(method, route, status string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.ReqTotal.WithLabelValues(method, route, status).Inc()
	r.ReqDur.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// register registers c, reusing an identical collector that is already
// registered.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(fmt.Errorf("register collector: %w", err))
	}
	return c
}
