package config

import "github.com/andrescamacho/kinestep/internal/domain/kinematics"

// LimitsConfig holds the plausibility bounds used to detect unit mistakes
type LimitsConfig struct {
	// Upper bound for velocity in km/h
	MaxVelocityKmh float64 `mapstructure:"max_velocity_kmh" validate:"finite,gt=0"`

	// Upper bound for the step duration in seconds
	MaxTimeSeconds float64 `mapstructure:"max_time_seconds" validate:"finite,gt=0"`

	// Upper bound for acceleration in m/s^2
	MaxAccelerationMS2 float64 `mapstructure:"max_acceleration_ms2" validate:"finite,gt=0"`
}

// PlausibilityLimits converts the configuration into domain limits
func (c LimitsConfig) PlausibilityLimits() (kinematics.PlausibilityLimits, error) {
	return kinematics.NewPlausibilityLimits(c.MaxVelocityKmh, c.MaxTimeSeconds, c.MaxAccelerationMS2)
}
