package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/andrescamacho/kinestep/internal/adapters/metrics"
	"github.com/andrescamacho/kinestep/internal/application/kinematics/types"
	"github.com/andrescamacho/kinestep/internal/application/logging"
	"github.com/andrescamacho/kinestep/internal/application/mediator"
	"github.com/andrescamacho/kinestep/internal/domain/kinematics"
)

// CalculateStepHandler - Handles calculate step commands
type CalculateStepHandler struct {
	calculator *kinematics.KinematicsCalculator
}

// NewCalculateStepHandler creates a new calculate step handler
func NewCalculateStepHandler(calculator *kinematics.KinematicsCalculator) *CalculateStepHandler {
	return &CalculateStepHandler{
		calculator: calculator,
	}
}

// Handle executes the calculate step command
func (h *CalculateStepHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*types.CalculateStepCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	requestID := cmd.RequestID
	if requestID == "" {
		requestID = uuid.NewString()
	}

	logger := logging.LoggerFromContext(ctx)
	logger.Log("DEBUG", "Calculating kinematic step", map[string]interface{}{
		"request_id": requestID,
		"input":      cmd.Input.String(),
	})

	result, err := h.calculator.Calculate(cmd.Input)
	if err != nil {
		h.recordFailure(ctx, requestID, err)
		return nil, err
	}

	metrics.RecordCalculation(
		metrics.OutcomeSuccess,
		result.DistanceTravelledKm(cmd.Input),
		result.FuelBurnedKg(cmd.Input),
	)

	logger.Log("INFO", "Kinematic step calculated", map[string]interface{}{
		"request_id":        requestID,
		"new_velocity_kmh":  result.NewVelocityKmh,
		"new_distance_km":   result.NewDistanceKm,
		"remaining_fuel_kg": result.RemainingFuelKg,
	})

	return &types.CalculateStepResponse{
		RequestID: requestID,
		Result:    result,
	}, nil
}

func (h *CalculateStepHandler) recordFailure(ctx context.Context, requestID string, err error) {
	logger := logging.LoggerFromContext(ctx)
	metadata := map[string]interface{}{
		"request_id": requestID,
		"code":       string(kinematics.CodeOf(err)),
		"error":      err.Error(),
	}

	if errors.Is(err, kinematics.ErrFuelExhausted) {
		metrics.RecordCalculation(metrics.OutcomeFuelExhausted, 0, 0)
		logger.Log("WARN", "Kinematic step exhausts fuel", metadata)
		return
	}

	field := kinematics.FieldOf(err)
	metadata["field"] = field
	metrics.RecordCalculation(metrics.OutcomeInvalidInput, 0, 0)
	metrics.RecordValidationFailure(string(kinematics.CodeOf(err)), field)
	logger.Log("WARN", "Kinematic input rejected", metadata)
}
