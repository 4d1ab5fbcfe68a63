package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const (
	// DefaultNamespace for all metrics
	DefaultNamespace = "kinestep"
	// Subsystem for calculator metrics
	subsystem = "calculator"
)

var (
	// Registry is the global Prometheus registry for all metrics
	Registry *prometheus.Registry

	// globalCalculationCollector is the singleton calculation metrics collector
	// Set by SetGlobalCalculationCollector() when metrics are enabled
	globalCalculationCollector CalculationMetricsRecorder
)

// CalculationMetricsRecorder defines the interface for recording kinematic step metrics
// This interface is used by application code to record metrics
type CalculationMetricsRecorder interface {
	RecordCalculation(outcome Outcome, distanceTravelledKm float64, fuelBurnedKg float64)
	RecordValidationFailure(code string, field string)
}

// InitRegistry initializes the Prometheus registry
// Should be called once at application startup if metrics are enabled
func InitRegistry() {
	Registry = prometheus.NewRegistry()
}

// ResetRegistry disables metrics collection and clears the global collector
func ResetRegistry() {
	Registry = nil
	globalCalculationCollector = nil
}

// GetRegistry returns the global Prometheus registry
// Returns nil if metrics are not initialized
func GetRegistry() *prometheus.Registry {
	return Registry
}

// IsEnabled returns true if metrics collection is enabled
func IsEnabled() bool {
	return Registry != nil
}

// SetGlobalCalculationCollector sets the global calculation metrics collector
func SetGlobalCalculationCollector(collector CalculationMetricsRecorder) {
	globalCalculationCollector = collector
}

// RecordCalculation records a calculation outcome globally
func RecordCalculation(outcome Outcome, distanceTravelledKm float64, fuelBurnedKg float64) {
	if globalCalculationCollector != nil {
		globalCalculationCollector.RecordCalculation(outcome, distanceTravelledKm, fuelBurnedKg)
	}
}

// RecordValidationFailure records a rejected input globally
func RecordValidationFailure(code string, field string) {
	if globalCalculationCollector != nil {
		globalCalculationCollector.RecordValidationFailure(code, field)
	}
}

// WriteText writes every metric family in the registry in the Prometheus text format
func WriteText(w io.Writer) error {
	if Registry == nil {
		return fmt.Errorf("metrics are not enabled")
	}

	families, err := Registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return fmt.Errorf("failed to write metric %s: %w", family.GetName(), err)
		}
	}
	return nil
}
