package engine

import (
	"context"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

type promMetrics struct {
	requests *prometheus.CounterVec
	errors   *prometheus.CounterVec
}

// SetMetricsRegistry registers the engine's Prometheus collectors. The
// atomic counters stay authoritative for CollectMetrics; the registry
// carries the per-method and per-entity breakdown for scraping.
func (e *Engine) SetMetricsRegistry(registry *prometheus.Registry) {
	if registry == nil {
		return
	}

	e.prom = &promMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "luminet_requests_total",
			Help: "Total number of RPC requests processed.",
		}, []string{"method"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "luminet_errors_total",
			Help: "Total number of RPC requests that returned an error.",
		}, []string{"method"}),
	}
	registry.MustRegister(e.prom.requests, e.prom.errors)
	registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "luminet_ongoing_operations",
		Help: "Number of RPC operations currently in flight.",
	}, func() float64 {
		return float64(atomic.LoadInt32(&e.state.ongoingOperations))
	}))

	for entity, count := range map[string]func(context.Context) (int64, error){
		"asset":       func(ctx context.Context) (int64, error) { return e.store.Assets().Count(ctx) },
		"element":     func(ctx context.Context) (int64, error) { return e.store.Elements().Count(ctx) },
		"telecell":    func(ctx context.Context) (int64, error) { return e.store.Telecells().Count(ctx) },
		"basestation": func(ctx context.Context) (int64, error) { return e.store.Basestations().Count(ctx) },
		"user":        func(ctx context.Context) (int64, error) { return e.store.Users().Count(ctx) },
	} {
		count := count
		registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name:        "luminet_entities",
			Help:        "Number of stored records per entity type.",
			ConstLabels: prometheus.Labels{"entity": entity},
		}, func() float64 {
			if e.store == nil {
				return 0
			}
			n, err := count(context.Background())
			if err != nil {
				return 0
			}
			return float64(n)
		}))
	}
}
