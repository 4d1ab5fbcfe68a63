package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/kinestep/internal/adapters/metrics"
	"github.com/andrescamacho/kinestep/internal/application/kinematics/types"
	"github.com/andrescamacho/kinestep/internal/application/logging"
	"github.com/andrescamacho/kinestep/internal/application/mediator"
	"github.com/andrescamacho/kinestep/internal/domain/kinematics"
)

// ValidateInputHandler - Handles validate input queries
type ValidateInputHandler struct {
	validator *kinematics.InputValidator
}

// NewValidateInputHandler creates a new validate input handler
func NewValidateInputHandler(validator *kinematics.InputValidator) *ValidateInputHandler {
	return &ValidateInputHandler{validator: validator}
}

// Handle executes the validate input query
func (h *ValidateInputHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*types.ValidateInputQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	if err := h.validator.Validate(query.Input); err != nil {
		field := kinematics.FieldOf(err)
		metrics.RecordValidationFailure(string(kinematics.CodeOf(err)), field)
		logging.LoggerFromContext(ctx).Log("DEBUG", "Kinematic input rejected", map[string]interface{}{
			"field": field,
			"error": err.Error(),
		})
		return &types.ValidateInputResponse{Valid: false, Err: err}, nil
	}

	return &types.ValidateInputResponse{Valid: true}, nil
}

// GetLimitsHandler - Handles get limits queries
type GetLimitsHandler struct {
	validator *kinematics.InputValidator
}

// NewGetLimitsHandler creates a new get limits handler
func NewGetLimitsHandler(validator *kinematics.InputValidator) *GetLimitsHandler {
	return &GetLimitsHandler{validator: validator}
}

// Handle executes the get limits query
func (h *GetLimitsHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	if _, ok := request.(*types.GetLimitsQuery); !ok {
		return nil, fmt.Errorf("invalid request type")
	}
	return &types.GetLimitsResponse{Limits: h.validator.Limits()}, nil
}
