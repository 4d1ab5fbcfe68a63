package config

import (
	"github.com/spf13/viper"

	"github.com/andrescamacho/kinestep/internal/domain/kinematics"
)

// setLimitDefaults registers the limit defaults on v. Numeric limits are defaulted
// before unmarshalling so an explicit 0 from a file or the environment reaches
// validation instead of being mistaken for an unset value.
func setLimitDefaults(v *viper.Viper) {
	v.SetDefault("limits.max_velocity_kmh", kinematics.DefaultMaxVelocityKmh)
	v.SetDefault("limits.max_time_seconds", kinematics.DefaultMaxTimeSeconds)
	v.SetDefault("limits.max_acceleration_ms2", kinematics.DefaultMaxAccelerationMS2)
}

// defaultLimits returns the limits used when nothing is configured
func defaultLimits() LimitsConfig {
	return LimitsConfig{
		MaxVelocityKmh:     kinematics.DefaultMaxVelocityKmh,
		MaxTimeSeconds:     kinematics.DefaultMaxTimeSeconds,
		MaxAccelerationMS2: kinematics.DefaultMaxAccelerationMS2,
	}
}

// SetDefaults fills empty string fields with their defaults. Limits are not
// touched here; see setLimitDefaults.
func SetDefaults(cfg *Config) {
	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "error"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}

	// Metrics defaults
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = "kinestep"
	}
}
