package helpers

import (
	"sync"

	"github.com/andrescamacho/kinestep/internal/adapters/metrics"
)

// CalculationRecord is a single captured RecordCalculation call
type CalculationRecord struct {
	Outcome             metrics.Outcome
	DistanceTravelledKm float64
	FuelBurnedKg        float64
}

// ValidationFailureRecord is a single captured RecordValidationFailure call
type ValidationFailureRecord struct {
	Code  string
	Field string
}

// MockMetricsRecorder captures calculation metrics without a Prometheus registry
type MockMetricsRecorder struct {
	mu                 sync.Mutex
	Calculations       []CalculationRecord
	ValidationFailures []ValidationFailureRecord
}

// NewMockMetricsRecorder creates a recorder and installs it as the global collector.
// Callers should defer metrics.SetGlobalCalculationCollector(nil).
func NewMockMetricsRecorder() *MockMetricsRecorder {
	recorder := &MockMetricsRecorder{}
	metrics.SetGlobalCalculationCollector(recorder)
	return recorder
}

func (m *MockMetricsRecorder) RecordCalculation(outcome metrics.Outcome, distanceTravelledKm float64, fuelBurnedKg float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calculations = append(m.Calculations, CalculationRecord{
		Outcome:             outcome,
		DistanceTravelledKm: distanceTravelledKm,
		FuelBurnedKg:        fuelBurnedKg,
	})
}

func (m *MockMetricsRecorder) RecordValidationFailure(code string, field string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ValidationFailures = append(m.ValidationFailures, ValidationFailureRecord{Code: code, Field: field})
}

var _ metrics.CalculationMetricsRecorder = (*MockMetricsRecorder)(nil)
