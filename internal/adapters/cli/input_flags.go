package cli

import (
	"github.com/spf13/cobra"

	"github.com/andrescamacho/kinestep/internal/domain/kinematics"
)

// inputFlags holds the raw text of the six kinematic inputs. Values are kept as
// strings so malformed numbers surface as NotANumberError rather than flag errors.
type inputFlags struct {
	velocity     string
	acceleration string
	time         string
	distance     string
	fuel         string
	burnRate     string
}

// bind registers the input flags on cmd. Defaults describe a one-hour step at
// 10000 km/h with 3 m/s^2 acceleration and 5000 kg of fuel burning 0.5 kg/s.
func (f *inputFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.velocity, "velocity", "10000", "Initial velocity (km/h)")
	cmd.Flags().StringVar(&f.acceleration, "acceleration", "3", "Constant acceleration (m/s^2)")
	cmd.Flags().StringVar(&f.time, "time", "3600", "Step duration (seconds)")
	cmd.Flags().StringVar(&f.distance, "distance", "0", "Initial distance (km)")
	cmd.Flags().StringVar(&f.fuel, "fuel", "5000", "Initial fuel (kg)")
	cmd.Flags().StringVar(&f.burnRate, "burn-rate", "0.5", "Fuel burn rate (kg/s)")
}

// parse converts the flag values into a kinematic input
func (f *inputFlags) parse() (kinematics.KinematicInput, error) {
	return kinematics.ParseKinematicInput(map[string]string{
		kinematics.FieldVelocity:        f.velocity,
		kinematics.FieldAcceleration:    f.acceleration,
		kinematics.FieldTime:            f.time,
		kinematics.FieldInitialDistance: f.distance,
		kinematics.FieldInitialFuel:     f.fuel,
		kinematics.FieldFuelBurnRate:    f.burnRate,
	})
}
