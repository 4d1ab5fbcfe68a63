package metrics

import (
	"context"
	"reflect"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrescamacho/kinestep/internal/application/mediator"
	"github.com/andrescamacho/kinestep/internal/domain/kinematics"
)

const (
	// CodeOK labels requests that returned no error
	CodeOK = "OK"
	// CodeInternal labels errors that carry no kinematics error code
	CodeInternal = "INTERNAL"
)

// RequestMetricsCollector records every request dispatched through the mediator,
// labelled by request type and by the kinematics error code it ended with.
type RequestMetricsCollector struct {
	requestDuration *prometheus.HistogramVec
	requestsTotal   *prometheus.CounterVec
}

// NewRequestMetricsCollector creates a new request metrics collector
func NewRequestMetricsCollector(namespace string) *RequestMetricsCollector {
	if namespace == "" {
		namespace = DefaultNamespace
	}

	return &RequestMetricsCollector{
		// Steps are pure arithmetic, so buckets start in the microsecond range
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "request_duration_seconds",
				Help:      "Time spent handling a calculator request",
				Buckets:   []float64{0.00001, 0.0001, 0.001, 0.01, 0.1},
			},
			[]string{"request", "code"},
		),

		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "requests_total",
				Help:      "Total calculator requests by request type and result code",
			},
			[]string{"request", "code"},
		),
	}
}

// Register registers the request metrics with the global Prometheus registry
func (c *RequestMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	for _, metric := range []prometheus.Collector{c.requestDuration, c.requestsTotal} {
		if err := Registry.Register(metric); err != nil {
			return err
		}
	}
	return nil
}

// RecordRequest records one handled request
func (c *RequestMetricsCollector) RecordRequest(request string, duration time.Duration, err error) {
	code := resultCode(err)
	c.requestDuration.WithLabelValues(request, code).Observe(duration.Seconds())
	c.requestsTotal.WithLabelValues(request, code).Inc()
}

// RequestMetricsMiddleware times each request and records it on collector.
// A nil collector makes the middleware a pass-through.
func RequestMetricsMiddleware(collector *RequestMetricsCollector) mediator.Middleware {
	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		if collector == nil {
			return next(ctx, request)
		}

		start := time.Now()
		response, err := next(ctx, request)
		collector.RecordRequest(requestName(request), time.Since(start), err)

		return response, err
	}
}

// requestName returns the bare type name, e.g. CalculateStepCommand for *types.CalculateStepCommand
func requestName(request mediator.Request) string {
	t := reflect.TypeOf(request)
	if t == nil {
		return "Unknown"
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

func resultCode(err error) string {
	if err == nil {
		return CodeOK
	}
	if code := kinematics.CodeOf(err); code != "" {
		return string(code)
	}
	return CodeInternal
}
