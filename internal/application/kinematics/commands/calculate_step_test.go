package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/kinestep/internal/adapters/metrics"
	"github.com/andrescamacho/kinestep/internal/application/kinematics/commands"
	"github.com/andrescamacho/kinestep/internal/application/kinematics/types"
	"github.com/andrescamacho/kinestep/internal/application/logging"
	"github.com/andrescamacho/kinestep/internal/domain/kinematics"
	"github.com/andrescamacho/kinestep/test/helpers"
)

func newHandler() *commands.CalculateStepHandler {
	return commands.NewCalculateStepHandler(kinematics.NewKinematicsCalculator(nil))
}

func TestCalculateStepHandler_Success(t *testing.T) {
	// Arrange
	recorder := helpers.NewMockMetricsRecorder()
	defer metrics.SetGlobalCalculationCollector(nil)
	logger := helpers.NewMockLogger()
	ctx := logging.WithLogger(context.Background(), logger)

	// Act
	resp, err := newHandler().Handle(ctx, &types.CalculateStepCommand{Input: helpers.ReferenceInput()})

	// Assert
	require.NoError(t, err)
	response, ok := resp.(*types.CalculateStepResponse)
	require.True(t, ok)
	assert.NotEmpty(t, response.RequestID)
	assert.InDelta(t, 48880.0, response.Result.NewVelocityKmh, 1e-6)
	assert.InDelta(t, 10000.0, response.Result.NewDistanceKm, 1e-6)
	assert.InDelta(t, 3200.0, response.Result.RemainingFuelKg, 1e-6)

	require.Len(t, recorder.Calculations, 1)
	assert.Equal(t, metrics.OutcomeSuccess, recorder.Calculations[0].Outcome)
	assert.InDelta(t, 10000.0, recorder.Calculations[0].DistanceTravelledKm, 1e-6)
	assert.InDelta(t, 1800.0, recorder.Calculations[0].FuelBurnedKg, 1e-6)

	entry := logger.FindByMessage("Kinematic step calculated")
	require.NotNil(t, entry)
	assert.Equal(t, response.RequestID, entry.Metadata["request_id"])
}

func TestCalculateStepHandler_KeepsSuppliedRequestID(t *testing.T) {
	resp, err := newHandler().Handle(context.Background(), &types.CalculateStepCommand{
		Input:     helpers.ReferenceInput(),
		RequestID: "req-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "req-1", resp.(*types.CalculateStepResponse).RequestID)
}

func TestCalculateStepHandler_FuelExhausted(t *testing.T) {
	recorder := helpers.NewMockMetricsRecorder()
	defer metrics.SetGlobalCalculationCollector(nil)
	logger := helpers.NewMockLogger()
	ctx := logging.WithLogger(context.Background(), logger)

	resp, err := newHandler().Handle(ctx, &types.CalculateStepCommand{Input: helpers.FuelExhaustingInput()})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, kinematics.ErrFuelExhausted)
	require.Len(t, recorder.Calculations, 1)
	assert.Equal(t, metrics.OutcomeFuelExhausted, recorder.Calculations[0].Outcome)
	assert.Empty(t, recorder.ValidationFailures)
	assert.NotNil(t, logger.FindByMessage("Kinematic step exhausts fuel"))
}

func TestCalculateStepHandler_InvalidInput(t *testing.T) {
	recorder := helpers.NewMockMetricsRecorder()
	defer metrics.SetGlobalCalculationCollector(nil)

	input := kinematics.NewKinematicInput(10000, 150, 3600, 0, 5000, 0.5)
	resp, err := newHandler().Handle(context.Background(), &types.CalculateStepCommand{Input: input})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, kinematics.ErrImplausibleUnit)
	require.Len(t, recorder.ValidationFailures, 1)
	assert.Equal(t, helpers.ValidationFailureRecord{Code: "IMPLAUSIBLE_UNIT", Field: "acceleration"}, recorder.ValidationFailures[0])
	assert.Equal(t, metrics.OutcomeInvalidInput, recorder.Calculations[0].Outcome)
}

func TestCalculateStepHandler_RejectsWrongRequestType(t *testing.T) {
	_, err := newHandler().Handle(context.Background(), &types.ValidateInputQuery{})

	assert.ErrorContains(t, err, "invalid request type")
}
