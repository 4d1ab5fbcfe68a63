package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kinestep",
		Short: "kinestep - single-step kinematics calculator",
		Long: `kinestep computes the velocity, distance and remaining fuel of a body after a
single fixed time step, after checking that the inputs are finite, non-negative and
plausible for their units (km/h, m/s^2, seconds, km, kg, kg/s).

Examples:
  kinestep calculate
  kinestep calculate --velocity 10000 --acceleration 3 --time 3600 --fuel 5000 --burn-rate 0.5
  kinestep validate --velocity 400000
  kinestep limits
  kinestep config show`,
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: search ./kinestep.yaml, ./configs, /etc/kinestep)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")

	// Add command groups
	rootCmd.AddCommand(NewCalculateCommand())
	rootCmd.AddCommand(NewValidateCommand())
	rootCmd.AddCommand(NewLimitsCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// Run executes the root command with args and reports any error as a single
// "Error:" line on stderr. It returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}
	return 0
}

// Execute runs the root command
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}
