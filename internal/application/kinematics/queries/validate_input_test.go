package queries_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/kinestep/internal/adapters/metrics"
	"github.com/andrescamacho/kinestep/internal/application/kinematics/queries"
	"github.com/andrescamacho/kinestep/internal/application/kinematics/types"
	"github.com/andrescamacho/kinestep/internal/domain/kinematics"
	"github.com/andrescamacho/kinestep/test/helpers"
)

func TestValidateInputHandler(t *testing.T) {
	recorder := helpers.NewMockMetricsRecorder()
	defer metrics.SetGlobalCalculationCollector(nil)
	handler := queries.NewValidateInputHandler(kinematics.NewDefaultInputValidator())

	t.Run("valid", func(t *testing.T) {
		resp, err := handler.Handle(context.Background(), &types.ValidateInputQuery{Input: helpers.ReferenceInput()})

		require.NoError(t, err)
		response := resp.(*types.ValidateInputResponse)
		assert.True(t, response.Valid)
		assert.NoError(t, response.Err)
	})

	t.Run("not a number", func(t *testing.T) {
		input := kinematics.NewKinematicInput(math.NaN(), 3, 3600, 0, 5000, 0.5)
		resp, err := handler.Handle(context.Background(), &types.ValidateInputQuery{Input: input})

		require.NoError(t, err)
		response := resp.(*types.ValidateInputResponse)
		assert.False(t, response.Valid)
		assert.ErrorIs(t, response.Err, kinematics.ErrNotANumber)
	})

	require.Len(t, recorder.ValidationFailures, 1)
	assert.Equal(t, "velocity", recorder.ValidationFailures[0].Field)
}

func TestValidateInputHandler_DoesNotCheckFuel(t *testing.T) {
	handler := queries.NewValidateInputHandler(kinematics.NewDefaultInputValidator())

	resp, err := handler.Handle(context.Background(), &types.ValidateInputQuery{Input: helpers.FuelExhaustingInput()})

	require.NoError(t, err)
	assert.True(t, resp.(*types.ValidateInputResponse).Valid)
}

func TestGetLimitsHandler(t *testing.T) {
	limits, err := kinematics.NewPlausibilityLimits(1, 2, 3)
	require.NoError(t, err)
	validator, err := kinematics.NewInputValidator(limits)
	require.NoError(t, err)
	handler := queries.NewGetLimitsHandler(validator)

	resp, err := handler.Handle(context.Background(), &types.GetLimitsQuery{})

	require.NoError(t, err)
	assert.Equal(t, limits, resp.(*types.GetLimitsResponse).Limits)

	_, err = handler.Handle(context.Background(), &types.CalculateStepCommand{})
	assert.Error(t, err)
}
