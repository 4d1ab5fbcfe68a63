package kinematics

import (
	"fmt"
	"math"
)

// Expected units reported by ImplausibleUnitError.
const (
	UnitKmh  = "km/h"
	UnitSecs = "seconds"
	UnitMS2  = "m/s^2"
)

// InputValidator rejects numerically invalid or implausible kinematic inputs.
//
// Checks run in a fixed order and the first failure wins:
//
//  1. every field must be finite (NotANumberError)
//  2. every field must be >= 0 (NegativeValueError)
//  3. velocity, time and acceleration must not exceed the plausibility limits
//     (ImplausibleUnitError)
//
// The validator holds only immutable limits and is safe for concurrent use.
type InputValidator struct {
	limits PlausibilityLimits
}

// NewInputValidator creates a validator using the given limits.
// Limits that are not positive finite numbers are rejected.
func NewInputValidator(limits PlausibilityLimits) (*InputValidator, error) {
	if err := limits.Validate(); err != nil {
		return nil, fmt.Errorf("invalid plausibility limits: %w", err)
	}
	return &InputValidator{limits: limits}, nil
}

// NewDefaultInputValidator creates a validator using DefaultPlausibilityLimits
func NewDefaultInputValidator() *InputValidator {
	return &InputValidator{limits: DefaultPlausibilityLimits()}
}

// Limits returns the plausibility limits in effect
func (v *InputValidator) Limits() PlausibilityLimits {
	return v.limits
}

// Validate returns nil if the input may be used for a calculation.
func (v *InputValidator) Validate(input KinematicInput) error {
	fields := input.fields()

	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return NewNotANumberError(f.field)
		}
	}

	for _, f := range fields {
		if f.value < 0 {
			return NewNegativeValueError(f.field, f.value)
		}
	}

	return v.checkPlausibility(input)
}

func (v *InputValidator) checkPlausibility(input KinematicInput) error {
	if input.velocity > v.limits.MaxVelocityKmh {
		return NewImplausibleUnitError(FieldVelocity, UnitKmh, input.velocity, v.limits.MaxVelocityKmh)
	}
	if input.timeSeconds > v.limits.MaxTimeSeconds {
		return NewImplausibleUnitError(FieldTime, UnitSecs, input.timeSeconds, v.limits.MaxTimeSeconds)
	}
	if input.acceleration > v.limits.MaxAccelerationMS2 {
		return NewImplausibleUnitError(FieldAcceleration, UnitMS2, input.acceleration, v.limits.MaxAccelerationMS2)
	}
	return nil
}
