package kinematics_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/kinestep/internal/domain/kinematics"
)

func validInput() kinematics.KinematicInput {
	return kinematics.NewKinematicInput(10000, 3, 3600, 0, 5000, 0.5)
}

// withField returns the valid input with one field replaced.
func withField(field string, value float64) kinematics.KinematicInput {
	v := []float64{10000, 3, 3600, 0, 5000, 0.5}
	switch field {
	case kinematics.FieldVelocity:
		v[0] = value
	case kinematics.FieldAcceleration:
		v[1] = value
	case kinematics.FieldTime:
		v[2] = value
	case kinematics.FieldInitialDistance:
		v[3] = value
	case kinematics.FieldInitialFuel:
		v[4] = value
	case kinematics.FieldFuelBurnRate:
		v[5] = value
	}
	return kinematics.NewKinematicInput(v[0], v[1], v[2], v[3], v[4], v[5])
}

var allFields = []string{
	kinematics.FieldVelocity,
	kinematics.FieldAcceleration,
	kinematics.FieldTime,
	kinematics.FieldInitialDistance,
	kinematics.FieldInitialFuel,
	kinematics.FieldFuelBurnRate,
}

func TestInputValidator_AcceptsValidInputs(t *testing.T) {
	validator := kinematics.NewDefaultInputValidator()

	cases := []kinematics.KinematicInput{
		validInput(),
		kinematics.NewKinematicInput(0, 0, 0, 0, 0, 0),
		kinematics.NewKinematicInput(300000, 100, 86400, 1e9, 1e9, 1e3), // bounds are inclusive
		kinematics.NewKinematicInput(0.001, 0.5, 1, 12.5, 0.1, 0),
	}

	for _, input := range cases {
		assert.NoError(t, validator.Validate(input), input.String())
	}
}

func TestInputValidator_NegativeValueNamesField(t *testing.T) {
	validator := kinematics.NewDefaultInputValidator()

	for _, field := range allFields {
		t.Run(field, func(t *testing.T) {
			err := validator.Validate(withField(field, -1))

			var negErr *kinematics.NegativeValueError
			require.ErrorAs(t, err, &negErr)
			assert.Equal(t, field, negErr.Field)
			assert.Equal(t, -1.0, negErr.Value)
			assert.ErrorIs(t, err, kinematics.ErrNegativeValue)
			assert.Equal(t, kinematics.CodeNegativeValue, kinematics.CodeOf(err))
		})
	}
}

func TestInputValidator_NonFiniteIsNotANumber(t *testing.T) {
	validator := kinematics.NewDefaultInputValidator()

	for _, field := range allFields {
		for _, value := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			err := validator.Validate(withField(field, value))

			var nanErr *kinematics.NotANumberError
			require.ErrorAs(t, err, &nanErr, "field %s value %v", field, value)
			assert.Equal(t, field, nanErr.Field)
			assert.True(t, errors.Is(err, kinematics.ErrNotANumber))
		}
	}
}

func TestInputValidator_ImplausibleUnits(t *testing.T) {
	validator := kinematics.NewDefaultInputValidator()

	tests := []struct {
		name         string
		input        kinematics.KinematicInput
		field        string
		expectedUnit string
	}{
		{"velocity", withField(kinematics.FieldVelocity, 400000), "velocity", "km/h"},
		{"time", withField(kinematics.FieldTime, 100000), "time", "seconds"},
		{"acceleration", withField(kinematics.FieldAcceleration, 150), "acceleration", "m/s^2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.Validate(tt.input)

			var unitErr *kinematics.ImplausibleUnitError
			require.ErrorAs(t, err, &unitErr)
			assert.Equal(t, tt.field, unitErr.Field)
			assert.Equal(t, tt.expectedUnit, unitErr.ExpectedUnit)
			assert.ErrorIs(t, err, kinematics.ErrImplausibleUnit)
			assert.Equal(t, tt.field, kinematics.FieldOf(err))
		})
	}
}

func TestInputValidator_CheckOrder(t *testing.T) {
	validator := kinematics.NewDefaultInputValidator()

	t.Run("not a number wins over negative", func(t *testing.T) {
		input := kinematics.NewKinematicInput(-5, 3, 3600, 0, math.NaN(), 0.5)
		err := validator.Validate(input)
		assert.ErrorIs(t, err, kinematics.ErrNotANumber)
		assert.Equal(t, kinematics.FieldInitialFuel, kinematics.FieldOf(err))
	})

	t.Run("negative wins over implausible", func(t *testing.T) {
		input := kinematics.NewKinematicInput(400000, 3, 3600, 0, 5000, -0.5)
		err := validator.Validate(input)
		assert.ErrorIs(t, err, kinematics.ErrNegativeValue)
		assert.Equal(t, kinematics.FieldFuelBurnRate, kinematics.FieldOf(err))
	})

	t.Run("velocity checked before time and acceleration", func(t *testing.T) {
		input := kinematics.NewKinematicInput(400000, 150, 100000, 0, 5000, 0.5)
		err := validator.Validate(input)
		assert.Equal(t, kinematics.FieldVelocity, kinematics.FieldOf(err))
	})

	t.Run("time checked before acceleration", func(t *testing.T) {
		input := kinematics.NewKinematicInput(10000, 150, 100000, 0, 5000, 0.5)
		err := validator.Validate(input)
		assert.Equal(t, kinematics.FieldTime, kinematics.FieldOf(err))
	})
}

func TestInputValidator_CustomLimits(t *testing.T) {
	limits, err := kinematics.NewPlausibilityLimits(1000, 60, 10)
	require.NoError(t, err)
	validator, err := kinematics.NewInputValidator(limits)
	require.NoError(t, err)

	assert.Equal(t, limits, validator.Limits())
	assert.NoError(t, validator.Validate(kinematics.NewKinematicInput(1000, 10, 60, 0, 100, 1)))

	err = validator.Validate(kinematics.NewKinematicInput(1001, 10, 60, 0, 100, 1))
	var unitErr *kinematics.ImplausibleUnitError
	require.ErrorAs(t, err, &unitErr)
	assert.Equal(t, 1000.0, unitErr.Limit)
	assert.Equal(t, 1001.0, unitErr.Value)
	assert.Equal(t, "velocity: value 1001 exceeds plausibility bound 1000, expected unit km/h", err.Error())
}

func TestNewPlausibilityLimits_RejectsInvalidBounds(t *testing.T) {
	for _, bad := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := kinematics.NewPlausibilityLimits(bad, 60, 10)
		assert.Error(t, err)
		_, err = kinematics.NewPlausibilityLimits(1000, bad, 10)
		assert.Error(t, err)
		_, err = kinematics.NewPlausibilityLimits(1000, 60, bad)
		assert.Error(t, err)
	}
}

func TestNewInputValidator_RejectsUncheckedLimits(t *testing.T) {
	tests := []struct {
		name   string
		limits kinematics.PlausibilityLimits
	}{
		{"zero value", kinematics.PlausibilityLimits{}},
		{"zero time", kinematics.PlausibilityLimits{MaxVelocityKmh: 1000, MaxTimeSeconds: 0, MaxAccelerationMS2: 10}},
		{"nan velocity", kinematics.PlausibilityLimits{MaxVelocityKmh: math.NaN(), MaxTimeSeconds: 60, MaxAccelerationMS2: 10}},
		{"infinite acceleration", kinematics.PlausibilityLimits{MaxVelocityKmh: 1000, MaxTimeSeconds: 60, MaxAccelerationMS2: math.Inf(1)}},
		{"negative velocity", kinematics.PlausibilityLimits{MaxVelocityKmh: -1, MaxTimeSeconds: 60, MaxAccelerationMS2: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validator, err := kinematics.NewInputValidator(tt.limits)

			assert.Nil(t, validator)
			assert.ErrorContains(t, err, "invalid plausibility limits")
		})
	}
}

func TestDefaultPlausibilityLimits(t *testing.T) {
	limits := kinematics.DefaultPlausibilityLimits()

	assert.Equal(t, 300000.0, limits.MaxVelocityKmh)
	assert.Equal(t, 86400.0, limits.MaxTimeSeconds)
	assert.Equal(t, 100.0, limits.MaxAccelerationMS2)
}
