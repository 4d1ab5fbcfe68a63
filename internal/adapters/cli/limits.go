package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/kinestep/internal/application/kinematics/types"
)

// NewLimitsCommand creates the limits command
func NewLimitsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "limits",
		Short: "Show the active plausibility limits",
		Long: `Show the plausibility limits used to detect values given in the wrong unit.
Limits are heuristics, configurable under "limits" in the config file or through
KS_LIMITS_MAX_VELOCITY_KMH, KS_LIMITS_MAX_TIME_SECONDS and KS_LIMITS_MAX_ACCELERATION_MS2.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setupApplication(cmd)
			if err != nil {
				return err
			}

			resp, err := app.mediator.Send(app.ctx, &types.GetLimitsQuery{})
			if err != nil {
				return err
			}
			response, ok := resp.(*types.GetLimitsResponse)
			if !ok {
				return fmt.Errorf("unexpected response type %T", resp)
			}
			limits := response.Limits

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Max Velocity:     %g km/h\n", limits.MaxVelocityKmh)
			fmt.Fprintf(out, "Max Time:         %g seconds\n", limits.MaxTimeSeconds)
			fmt.Fprintf(out, "Max Acceleration: %g m/s^2\n", limits.MaxAccelerationMS2)
			return nil
		},
	}
}
