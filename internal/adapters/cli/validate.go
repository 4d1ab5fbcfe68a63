package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/kinestep/internal/application/kinematics/types"
)

// NewValidateCommand creates the validate command
func NewValidateCommand() *cobra.Command {
	var flags inputFlags

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check kinematic inputs without calculating",
		Long: `Check that the inputs are finite, non-negative and within the plausibility limits.
Fuel exhaustion is only detected by calculate.

Examples:
  kinestep validate --velocity 400000
  kinestep validate --time 100000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := flags.parse()
			if err != nil {
				return err
			}

			app, err := setupApplication(cmd)
			if err != nil {
				return err
			}

			resp, err := app.mediator.Send(app.ctx, &types.ValidateInputQuery{Input: input})
			if err != nil {
				return err
			}

			response, ok := resp.(*types.ValidateInputResponse)
			if !ok {
				return fmt.Errorf("unexpected response type %T", resp)
			}
			if !response.Valid {
				return response.Err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}

	flags.bind(cmd)

	return cmd
}
