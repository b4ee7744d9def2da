package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder_ObservePriced(t *testing.T) {
	registry := prometheus.NewRegistry()
	rec := New("test", registry)

	rec.ObservePriced(2, 1, 3.5)
	rec.ObservePriced(1, 0, 0)

	assert.Equal(t, float64(2), testutil.ToFloat64(rec.BasketsPriced.WithLabelValues("ok")))
	assert.Equal(t, 3.5, testutil.ToFloat64(rec.DiscountTotal))
	assert.Equal(t, float64(1), testutil.ToFloat64(rec.GiftsAdded))
	assert.Equal(t, 1, testutil.CollectAndCount(rec.BasketLines))
}

func TestRecorder_ObserveRejected(t *testing.T) {
	registry := prometheus.NewRegistry()
	rec := New("test", registry)

	rec.ObserveRejected()

	assert.Equal(t, float64(1), testutil.ToFloat64(rec.BasketsPriced.WithLabelValues("rejected")))
}

func TestRecorder_ObserveRequest(t *testing.T) {
	registry := prometheus.NewRegistry()
	rec := New("test", registry)

	rec.ObserveRequest("POST", "/api/baskets/price", "200", 15*time.Millisecond)

	assert.Equal(t, float64(1), testutil.ToFloat64(rec.ReqTotal.WithLabelValues("POST", "/api/baskets/price", "200")))
	assert.Equal(t, 1, testutil.CollectAndCount(rec.ReqDur))
}

func TestNew_ReusesRegisteredCollectors(t *testing.T) {
	registry := prometheus.NewRegistry()

	first := New("test", registry)
	second := New("test", registry)

	second.ObserveRejected()

	assert.Same(t, first.BasketsPriced, second.BasketsPriced)
	assert.Equal(t, float64(1), testutil.ToFloat64(first.BasketsPriced.WithLabelValues("rejected")))
}

func TestRecorder_Nil(t *testing.T) {
	var rec *Recorder

	assert.NotPanics(t, func() {
		rec.ObservePriced(1, 1, 1)
		rec.ObserveRejected()
		rec.ObserveRequest("GET", "/health", "200", time.Millisecond)
	})
}
