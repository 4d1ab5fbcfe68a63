package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/kinestep/internal/adapters/metrics"
	appKinematics "github.com/andrescamacho/kinestep/internal/application/kinematics"
	applogging "github.com/andrescamacho/kinestep/internal/application/logging"
	"github.com/andrescamacho/kinestep/internal/application/mediator"
	"github.com/andrescamacho/kinestep/internal/domain/kinematics"
	"github.com/andrescamacho/kinestep/internal/infrastructure/config"
	"github.com/andrescamacho/kinestep/internal/infrastructure/logging"
)

// application bundles the wired mediator with the context its handlers run in
type application struct {
	cfg      *config.Config
	mediator mediator.Mediator
	ctx      context.Context
}

// loadConfig loads configuration from --config or the default search paths
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

// newApplication wires logging, metrics, the calculator and the mediator from cfg
func newApplication(cmd *cobra.Command, cfg *config.Config) (*application, error) {
	out := cmd.ErrOrStderr()
	if cfg.Logging.Output == "stdout" {
		out = cmd.OutOrStdout()
	}
	logger := logging.NewLoggerWithWriter(cfg.Logging, out)

	limits, err := cfg.Limits.PlausibilityLimits()
	if err != nil {
		return nil, fmt.Errorf("invalid plausibility limits: %w", err)
	}
	validator, err := kinematics.NewInputValidator(limits)
	if err != nil {
		return nil, err
	}
	calculator := kinematics.NewKinematicsCalculator(validator)

	m := mediator.NewMediator()
	m.Use(mediator.LoggingMiddleware)

	metrics.ResetRegistry()
	if cfg.Metrics.Enabled {
		metrics.InitRegistry()

		requestCollector := metrics.NewRequestMetricsCollector(cfg.Metrics.Namespace)
		if err := requestCollector.Register(); err != nil {
			return nil, fmt.Errorf("failed to register request metrics: %w", err)
		}
		m.Use(metrics.RequestMetricsMiddleware(requestCollector))

		calculationCollector := metrics.NewCalculationMetricsCollector(cfg.Metrics.Namespace)
		if err := calculationCollector.Register(); err != nil {
			return nil, fmt.Errorf("failed to register calculation metrics: %w", err)
		}
		metrics.SetGlobalCalculationCollector(calculationCollector)
	}

	if err := appKinematics.RegisterHandlers(m, calculator); err != nil {
		return nil, err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = applogging.WithLogger(ctx, logging.NewZerologAdapter(logger))
	return &application{cfg: cfg, mediator: m, ctx: ctx}, nil
}

// setupApplication loads configuration and wires the application in one step
func setupApplication(cmd *cobra.Command) (*application, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return newApplication(cmd, cfg)
}
