package kinematics

import (
	"fmt"
	"math"
)

const (
	DefaultMaxVelocityKmh     = 300000.0
	DefaultMaxTimeSeconds     = 86400.0
	DefaultMaxAccelerationMS2 = 100.0
)

// PlausibilityLimits are heuristic upper bounds used to catch values supplied in the
// wrong unit. They are not physical constraints.
type PlausibilityLimits struct {
	MaxVelocityKmh     float64
	MaxTimeSeconds     float64
	MaxAccelerationMS2 float64
}

// DefaultPlausibilityLimits returns 300000 km/h, one day and 100 m/s^2.
func DefaultPlausibilityLimits() PlausibilityLimits {
	return PlausibilityLimits{
		MaxVelocityKmh:     DefaultMaxVelocityKmh,
		MaxTimeSeconds:     DefaultMaxTimeSeconds,
		MaxAccelerationMS2: DefaultMaxAccelerationMS2,
	}
}

// NewPlausibilityLimits creates limits with validation
func NewPlausibilityLimits(maxVelocityKmh, maxTimeSeconds, maxAccelerationMS2 float64) (PlausibilityLimits, error) {
	limits := PlausibilityLimits{
		MaxVelocityKmh:     maxVelocityKmh,
		MaxTimeSeconds:     maxTimeSeconds,
		MaxAccelerationMS2: maxAccelerationMS2,
	}
	if err := limits.Validate(); err != nil {
		return PlausibilityLimits{}, err
	}
	return limits, nil
}

// Validate reports the first bound that is not a positive finite number. A zero bound
// would reject every positive input and a NaN bound would accept everything.
func (l PlausibilityLimits) Validate() error {
	bounds := []namedValue{
		{FieldVelocity, l.MaxVelocityKmh},
		{FieldTime, l.MaxTimeSeconds},
		{FieldAcceleration, l.MaxAccelerationMS2},
	}
	for _, b := range bounds {
		if math.IsNaN(b.value) || math.IsInf(b.value, 0) || b.value <= 0 {
			return fmt.Errorf("%s limit must be a positive finite number, got %v", b.field, b.value)
		}
	}
	return nil
}

func (l PlausibilityLimits) String() string {
	return fmt.Sprintf("PlausibilityLimits(velocity<=%gkm/h, time<=%gs, acceleration<=%gm/s^2)",
		l.MaxVelocityKmh, l.MaxTimeSeconds, l.MaxAccelerationMS2)
}
