package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricPrefix = "pm_backend_"

const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Metrics holds the Prometheus collectors of the service. A nil *Metrics is valid and records nothing.
type Metrics struct {
	storeCalls   *prometheus.CounterVec
	storeLatency *prometheus.HistogramVec
	storeRecords *prometheus.CounterVec
	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg (the default registerer when nil).
// Collectors that are already registered are reused.
func New(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		storeCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: metricPrefix + "record_store_calls_total",
			Help: "Record store calls by object, operation and result.",
		}, []string{"object", "operation", "result"}),
		storeLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    metricPrefix + "record_store_latency_seconds",
			Help:    "Record store call latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"object", "operation"}),
		storeRecords: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: metricPrefix + "record_store_records_fetched_total",
			Help: "Records returned by the record store by object.",
		}, []string{"object"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: metricPrefix + "http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    metricPrefix + "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	var err error
	if m.storeCalls, err = registerCounterVec(reg, m.storeCalls); err != nil {
		return nil, err
	}
	if m.storeLatency, err = registerHistogramVec(reg, m.storeLatency); err != nil {
		return nil, err
	}
	if m.storeRecords, err = registerCounterVec(reg, m.storeRecords); err != nil {
		return nil, err
	}
	if m.httpRequests, err = registerCounterVec(reg, m.httpRequests); err != nil {
		return nil, err
	}
	if m.httpLatency, err = registerHistogramVec(reg, m.httpLatency); err != nil {
		return nil, err
	}
	return m, nil
}

func registerCounterVec(reg prometheus.Registerer, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			existing, ok := already.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				return nil, fmt.Errorf("metrics: unexpected collector type %T", already.ExistingCollector)
			}
			return existing, nil
		}
		return nil, err
	}
	return c, nil
}

func registerHistogramVec(reg prometheus.Registerer, h *prometheus.HistogramVec) (*prometheus.HistogramVec, error) {
	if err := reg.Register(h); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			existing, ok := already.ExistingCollector.(*prometheus.HistogramVec)
			if !ok {
				return nil, fmt.Errorf("metrics: unexpected collector type %T", already.ExistingCollector)
			}
			return existing, nil
		}
		return nil, err
	}
	return h, nil
}

// ObserveStoreCall records one record store round trip.
func (m *Metrics) ObserveStoreCall(object, operation string, err error, duration time.Duration) {
	if m == nil {
		return
	}
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	m.storeCalls.WithLabelValues(object, operation, result).Inc()
	m.storeLatency.WithLabelValues(object, operation).Observe(duration.Seconds())
}

// AddRecordsFetched counts records returned for an object.
func (m *Metrics) AddRecordsFetched(object string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.storeRecords.WithLabelValues(object).Add(float64(n))
}

// ObserveHTTPRequest records one served request.
func (m *Metrics) ObserveHTTPRequest(method, route, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, status).Inc()
	m.httpLatency.WithLabelValues(method, route).Observe(duration.Seconds())
}
