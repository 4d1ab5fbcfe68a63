package kinematics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/kinestep/internal/domain/kinematics"
)

func rawInput() map[string]string {
	return map[string]string{
		"velocity":       "10000",
		"acceleration":   "3",
		"time":           "3600",
		"distance":       "0",
		"fuel":           "5000",
		"fuel_burn_rate": "0.5",
	}
}

func TestParseKinematicInput(t *testing.T) {
	input, err := kinematics.ParseKinematicInput(rawInput())

	require.NoError(t, err)
	assert.Equal(t, validInput(), input)
	assert.Equal(t, 10000.0, input.Velocity())
	assert.Equal(t, 3.0, input.Acceleration())
	assert.Equal(t, 3600.0, input.TimeSeconds())
	assert.Equal(t, 0.0, input.InitialDistance())
	assert.Equal(t, 5000.0, input.InitialFuel())
	assert.Equal(t, 0.5, input.FuelBurnRate())
}

func TestParseKinematicInput_NonNumeric(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value string
	}{
		{"word", "velocity", "fast"},
		{"blank", "time", "   "},
		{"unit suffix", "acceleration", "3m/s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := rawInput()
			raw[tt.field] = tt.value

			_, err := kinematics.ParseKinematicInput(raw)

			var nanErr *kinematics.NotANumberError
			require.ErrorAs(t, err, &nanErr)
			assert.Equal(t, tt.field, nanErr.Field)
			assert.Equal(t, tt.field+": value is not a finite number", err.Error())
		})
	}
}

func TestParseKinematicInput_MissingField(t *testing.T) {
	raw := rawInput()
	delete(raw, "fuel_burn_rate")

	_, err := kinematics.ParseKinematicInput(raw)

	assert.ErrorIs(t, err, kinematics.ErrNotANumber)
	assert.Equal(t, "fuel_burn_rate", kinematics.FieldOf(err))
}

func TestParseKinematicInput_NaNParsesThenFailsValidation(t *testing.T) {
	raw := rawInput()
	raw["distance"] = "NaN"

	input, err := kinematics.ParseKinematicInput(raw)
	require.NoError(t, err)

	err = kinematics.NewDefaultInputValidator().Validate(input)
	assert.ErrorIs(t, err, kinematics.ErrNotANumber)
	assert.Equal(t, "distance", kinematics.FieldOf(err))
}
