package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration settings",
		Long: `Inspect kinestep configuration settings.

Configuration is loaded from multiple sources with priority:
1. Environment variables (KS_* prefix)
2. Config file (kinestep.yaml)
3. Default values

Examples:
  kinestep config show
  kinestep --config ./configs/kinestep.yaml config show`,
	}

	cmd.AddCommand(newConfigShowCommand())

	return cmd
}

// newConfigShowCommand creates the config show subcommand
func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "kinestep Configuration")
			fmt.Fprintln(out, "======================")
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Limits:")
			fmt.Fprintf(out, "  Max Velocity:     %g km/h\n", cfg.Limits.MaxVelocityKmh)
			fmt.Fprintf(out, "  Max Time:         %g s\n", cfg.Limits.MaxTimeSeconds)
			fmt.Fprintf(out, "  Max Acceleration: %g m/s^2\n", cfg.Limits.MaxAccelerationMS2)
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Logging:")
			fmt.Fprintf(out, "  Level:  %s\n", cfg.Logging.Level)
			fmt.Fprintf(out, "  Format: %s\n", cfg.Logging.Format)
			fmt.Fprintf(out, "  Output: %s\n", cfg.Logging.Output)
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Metrics:")
			fmt.Fprintf(out, "  Enabled:   %t\n", cfg.Metrics.Enabled)
			fmt.Fprintf(out, "  Namespace: %s\n", cfg.Metrics.Namespace)
			return nil
		},
	}
}
