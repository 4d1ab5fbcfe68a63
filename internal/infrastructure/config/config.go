package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the main configuration struct combining all sub-configs
type Config struct {
	Limits  LimitsConfig  `mapstructure:"limits"`
	Logging LoggingConfig `mapstructure:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// LoadConfig loads configuration from multiple sources with priority:
// 1. Environment variables (highest priority)
// 2. Config file (kinestep.yaml)
// 3. Defaults (lowest priority)
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (doesn't error if missing)
	_ = godotenv.Load()

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("kinestep")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/kinestep")
	}

	// KS_LIMITS_MAX_VELOCITY_KMH etc.
	v.SetEnvPrefix("KS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvKeys(v)
	setLimitDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is OK - we'll use env vars and defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	SetDefaults(&cfg)

	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// bindEnvKeys registers every key so AutomaticEnv can populate values that
// are absent from the config file; viper.Unmarshal only sees known keys.
func bindEnvKeys(v *viper.Viper) {
	keys := []string{
		"limits.max_velocity_kmh",
		"limits.max_time_seconds",
		"limits.max_acceleration_ms2",
		"logging.level",
		"logging.format",
		"logging.output",
		"logging.include_caller",
		"metrics.enabled",
		"metrics.namespace",
	}
	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// DefaultConfig returns a configuration populated only with defaults
func DefaultConfig() *Config {
	cfg := &Config{Limits: defaultLimits()}
	SetDefaults(cfg)
	return cfg
}
