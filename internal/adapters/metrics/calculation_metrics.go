package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels a finished calculation request
type Outcome string

const (
	OutcomeSuccess       Outcome = "success"
	OutcomeInvalidInput  Outcome = "invalid_input"
	OutcomeFuelExhausted Outcome = "fuel_exhausted"
)

// CalculationMetricsCollector handles all kinematic step metrics
type CalculationMetricsCollector struct {
	calculationsTotal       *prometheus.CounterVec
	validationFailuresTotal *prometheus.CounterVec
	fuelBurned              prometheus.Counter
	distanceTravelled       prometheus.Histogram
}

// NewCalculationMetricsCollector creates a new calculation metrics collector
func NewCalculationMetricsCollector(namespace string) *CalculationMetricsCollector {
	if namespace == "" {
		namespace = DefaultNamespace
	}

	return &CalculationMetricsCollector{
		// Calculation requests by outcome
		calculationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "calculations_total",
				Help:      "Total number of kinematic step calculations by outcome",
			},
			[]string{"outcome"},
		),

		// Rejected inputs by error code and field
		validationFailuresTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "validation_failures_total",
				Help:      "Total number of rejected inputs by error code and field",
			},
			[]string{"code", "field"},
		),

		fuelBurned: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "fuel_burned_kg_total",
				Help:      "Total fuel burned across successful calculations",
			},
		),

		distanceTravelled: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "distance_travelled_km",
				Help:      "Distance covered per successful kinematic step",
				Buckets:   []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
			},
		),
	}
}

// Register registers all calculation metrics with the global Prometheus registry
func (c *CalculationMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	metrics := []prometheus.Collector{
		c.calculationsTotal,
		c.validationFailuresTotal,
		c.fuelBurned,
		c.distanceTravelled,
	}

	for _, metric := range metrics {
		if err := Registry.Register(metric); err != nil {
			return err
		}
	}

	return nil
}

// RecordCalculation records a finished calculation
func (c *CalculationMetricsCollector) RecordCalculation(
	outcome Outcome,
	distanceTravelledKm float64,
	fuelBurnedKg float64,
) {
	c.calculationsTotal.WithLabelValues(string(outcome)).Inc()

	// Distance and fuel only for successful steps
	if outcome == OutcomeSuccess {
		c.distanceTravelled.Observe(distanceTravelledKm)
		c.fuelBurned.Add(fuelBurnedKg)
	}
}

// RecordValidationFailure records a rejected input
func (c *CalculationMetricsCollector) RecordValidationFailure(code string, field string) {
	c.validationFailuresTotal.WithLabelValues(code, field).Inc()
}
