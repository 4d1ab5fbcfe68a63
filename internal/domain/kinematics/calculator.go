package kinematics

const (
	metersPerKilometer = 1000.0
	secondsPerHour     = 3600.0
)

// KmhToMs converts a speed from km/h to m/s
func KmhToMs(kmh float64) float64 {
	return kmh * metersPerKilometer / secondsPerHour
}

// MsToKmh converts a speed from m/s to km/h
func MsToKmh(ms float64) float64 {
	return ms * secondsPerHour / metersPerKilometer
}

// NewDistanceKm returns the distance after travelling at velocityKmh for timeSeconds.
// Time is expressed in hours so the product stays in km.
func NewDistanceKm(initialDistanceKm, velocityKmh, timeSeconds float64) float64 {
	return initialDistanceKm + velocityKmh*(timeSeconds/secondsPerHour)
}

// RemainingFuelKg returns the fuel left after burning at fuelBurnRate for timeSeconds.
// A burn larger than the available fuel yields a FuelExhaustedError, never a negative mass.
func RemainingFuelKg(initialFuelKg, fuelBurnRateKgS, timeSeconds float64) (float64, error) {
	burned := fuelBurnRateKgS * timeSeconds
	remaining := initialFuelKg - burned
	if remaining < 0 {
		return 0, NewFuelExhaustedError(burned, initialFuelKg)
	}
	return remaining, nil
}

// NewVelocityKmh applies constant acceleration (m/s^2) over timeSeconds to a velocity in km/h.
func NewVelocityKmh(velocityKmh, accelerationMS2, timeSeconds float64) float64 {
	vms := KmhToMs(velocityKmh)
	return MsToKmh(vms + accelerationMS2*timeSeconds)
}

// KinematicsCalculator derives the state of a body after a single kinematic step.
//
// Calculate re-validates its input, so calling it directly with an invalid input fails
// the same way InputValidator.Validate would. It holds no mutable state and is safe for
// concurrent use.
//
// # Usage
//
//	calc := NewKinematicsCalculator(NewDefaultInputValidator())
//	result, err := calc.Calculate(NewKinematicInput(10000, 3, 3600, 0, 5000, 0.5))
type KinematicsCalculator struct {
	validator *InputValidator
}

// NewKinematicsCalculator creates a calculator backed by the given validator.
// A nil validator falls back to the default plausibility limits.
func NewKinematicsCalculator(validator *InputValidator) *KinematicsCalculator {
	if validator == nil {
		validator = NewDefaultInputValidator()
	}
	return &KinematicsCalculator{validator: validator}
}

// Validator returns the validator used by the calculator
func (c *KinematicsCalculator) Validator() *InputValidator {
	return c.validator
}

// Calculate validates the input and derives new distance, remaining fuel and new velocity.
//
// Returns:
//   - the result, or nil with one of NotANumberError, NegativeValueError,
//     ImplausibleUnitError or FuelExhaustedError
func (c *KinematicsCalculator) Calculate(input KinematicInput) (*KinematicResult, error) {
	if err := c.validator.Validate(input); err != nil {
		return nil, err
	}

	remainingFuel, err := RemainingFuelKg(input.initialFuel, input.fuelBurnRate, input.timeSeconds)
	if err != nil {
		return nil, err
	}

	return &KinematicResult{
		NewVelocityKmh:  NewVelocityKmh(input.velocity, input.acceleration, input.timeSeconds),
		NewDistanceKm:   NewDistanceKm(input.initialDistance, input.velocity, input.timeSeconds),
		RemainingFuelKg: remainingFuel,
	}, nil
}
