package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/kinestep/internal/adapters/metrics"
	"github.com/andrescamacho/kinestep/internal/application/kinematics/types"
	"github.com/andrescamacho/kinestep/internal/domain/kinematics"
)

// NewCalculateCommand creates the calculate command
func NewCalculateCommand() *cobra.Command {
	var (
		flags       inputFlags
		showMetrics bool
	)

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate velocity, distance and remaining fuel after one step",
		Long: `Calculate the state of a body after a single kinematic step.

Inputs are validated first; a NaN, negative or implausibly large value, or a burn that
would leave negative fuel, is reported as an error and no result is printed.

Examples:
  kinestep calculate
  kinestep calculate --velocity 900 --acceleration 0.5 --time 60 --distance 12 --fuel 300 --burn-rate 1.2
  kinestep calculate --metrics`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := flags.parse()
			if err != nil {
				return err
			}

			app, err := setupApplication(cmd)
			if err != nil {
				return err
			}
			if showMetrics && !metrics.IsEnabled() {
				metrics.InitRegistry()
				collector := metrics.NewCalculationMetricsCollector(app.cfg.Metrics.Namespace)
				if err := collector.Register(); err != nil {
					return fmt.Errorf("failed to register calculation metrics: %w", err)
				}
				metrics.SetGlobalCalculationCollector(collector)
			}

			resp, err := app.mediator.Send(app.ctx, &types.CalculateStepCommand{Input: input})
			if err != nil {
				return err
			}

			response, ok := resp.(*types.CalculateStepResponse)
			if !ok {
				return fmt.Errorf("unexpected response type %T", resp)
			}

			out := cmd.OutOrStdout()
			printResult(out, response.Result)

			if showMetrics {
				fmt.Fprintln(out)
				return metrics.WriteText(out)
			}
			return nil
		},
	}

	flags.bind(cmd)
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "Print collected metrics in Prometheus text format")

	return cmd
}

// printResult writes the three outputs rounded to two decimals
func printResult(w io.Writer, result *kinematics.KinematicResult) {
	fmt.Fprintf(w, "New Velocity: %.2f km/h\n", result.NewVelocityKmh)
	fmt.Fprintf(w, "New Distance: %.2f km\n", result.NewDistanceKm)
	fmt.Fprintf(w, "Remaining Fuel: %.2f kg\n", result.RemainingFuelKg)
}
