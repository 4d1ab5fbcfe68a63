package types

import "github.com/andrescamacho/kinestep/internal/domain/kinematics"

// Kinematics command types - shared between handlers and adapters to avoid circular imports

// CalculateStepCommand - Command to derive the state of a body after one kinematic step
type CalculateStepCommand struct {
	Input     kinematics.KinematicInput
	RequestID string // generated when empty
}

// CalculateStepResponse - Response from calculate step command
type CalculateStepResponse struct {
	RequestID string
	Result    *kinematics.KinematicResult
}

// ValidateInputQuery - Query checking whether an input may be used for a calculation
type ValidateInputQuery struct {
	Input kinematics.KinematicInput
}

// ValidateInputResponse - Response from validate input query.
// Err holds the validation failure; the query itself only errors on dispatch problems.
type ValidateInputResponse struct {
	Valid bool
	Err   error
}

// GetLimitsQuery - Query returning the plausibility limits in effect
type GetLimitsQuery struct{}

// GetLimitsResponse - Response from get limits query
type GetLimitsResponse struct {
	Limits kinematics.PlausibilityLimits
}
