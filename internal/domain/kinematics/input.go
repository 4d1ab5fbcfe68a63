package kinematics

import (
	"fmt"
	"strconv"
	"strings"
)

// Field names used in error values and parsed input maps.
const (
	FieldVelocity        = "velocity"
	FieldAcceleration    = "acceleration"
	FieldTime            = "time"
	FieldInitialDistance = "distance"
	FieldInitialFuel     = "fuel"
	FieldFuelBurnRate    = "fuel_burn_rate"
)

// KinematicInput represents the initial state of a body for a single kinematic step.
// Units are fixed by convention: km/h, m/s^2, s, km, kg, kg/s.
type KinematicInput struct {
	velocity        float64
	acceleration    float64
	timeSeconds     float64
	initialDistance float64
	initialFuel     float64
	fuelBurnRate    float64
}

// NewKinematicInput creates an input value object. It does not validate; pass the result to
// InputValidator.Validate or KinematicsCalculator.Calculate.
func NewKinematicInput(velocityKmh, accelerationMS2, timeSeconds, initialDistanceKm, initialFuelKg, fuelBurnRateKgS float64) KinematicInput {
	return KinematicInput{
		velocity:        velocityKmh,
		acceleration:    accelerationMS2,
		timeSeconds:     timeSeconds,
		initialDistance: initialDistanceKm,
		initialFuel:     initialFuelKg,
		fuelBurnRate:    fuelBurnRateKgS,
	}
}

func (i KinematicInput) Velocity() float64        { return i.velocity }
func (i KinematicInput) Acceleration() float64    { return i.acceleration }
func (i KinematicInput) TimeSeconds() float64     { return i.timeSeconds }
func (i KinematicInput) InitialDistance() float64 { return i.initialDistance }
func (i KinematicInput) InitialFuel() float64     { return i.initialFuel }
func (i KinematicInput) FuelBurnRate() float64    { return i.fuelBurnRate }

type namedValue struct {
	field string
	value float64
}

// fields returns every field in validation order.
func (i KinematicInput) fields() []namedValue {
	return []namedValue{
		{FieldVelocity, i.velocity},
		{FieldAcceleration, i.acceleration},
		{FieldTime, i.timeSeconds},
		{FieldInitialDistance, i.initialDistance},
		{FieldInitialFuel, i.initialFuel},
		{FieldFuelBurnRate, i.fuelBurnRate},
	}
}

func (i KinematicInput) String() string {
	return fmt.Sprintf(
		"KinematicInput(velocity=%gkm/h, acceleration=%gm/s^2, time=%gs, distance=%gkm, fuel=%gkg, burn=%gkg/s)",
		i.velocity, i.acceleration, i.timeSeconds, i.initialDistance, i.initialFuel, i.fuelBurnRate,
	)
}

// ParseKinematicInput builds an input from raw string values keyed by field name.
// A missing, blank or unparsable value is reported as a NotANumberError for that field,
// checked in validation order.
func ParseKinematicInput(raw map[string]string) (KinematicInput, error) {
	order := []string{
		FieldVelocity,
		FieldAcceleration,
		FieldTime,
		FieldInitialDistance,
		FieldInitialFuel,
		FieldFuelBurnRate,
	}

	values := make([]float64, len(order))
	for idx, field := range order {
		text, ok := raw[field]
		if !ok || strings.TrimSpace(text) == "" {
			return KinematicInput{}, NewNotANumberError(field)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return KinematicInput{}, NewNotANumberError(field)
		}
		values[idx] = v
	}

	return NewKinematicInput(values[0], values[1], values[2], values[3], values[4], values[5]), nil
}
