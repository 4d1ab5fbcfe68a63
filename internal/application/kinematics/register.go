package kinematics

import (
	"fmt"

	"github.com/andrescamacho/kinestep/internal/application/kinematics/commands"
	"github.com/andrescamacho/kinestep/internal/application/kinematics/queries"
	"github.com/andrescamacho/kinestep/internal/application/kinematics/types"
	"github.com/andrescamacho/kinestep/internal/application/mediator"
	domain "github.com/andrescamacho/kinestep/internal/domain/kinematics"
)

// RegisterHandlers registers every kinematics command and query handler on the mediator.
// The calculator's validator backs the validate and limits queries so all three share
// the same plausibility limits.
func RegisterHandlers(m mediator.Mediator, calculator *domain.KinematicsCalculator) error {
	validator := calculator.Validator()

	if err := mediator.RegisterHandler[*types.CalculateStepCommand](m, commands.NewCalculateStepHandler(calculator)); err != nil {
		return fmt.Errorf("failed to register CalculateStep handler: %w", err)
	}
	if err := mediator.RegisterHandler[*types.ValidateInputQuery](m, queries.NewValidateInputHandler(validator)); err != nil {
		return fmt.Errorf("failed to register ValidateInput handler: %w", err)
	}
	if err := mediator.RegisterHandler[*types.GetLimitsQuery](m, queries.NewGetLimitsHandler(validator)); err != nil {
		return fmt.Errorf("failed to register GetLimits handler: %w", err)
	}
	return nil
}
