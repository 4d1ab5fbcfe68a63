package helpers

import "github.com/andrescamacho/kinestep/internal/domain/kinematics"

// ReferenceInput is the reference scenario: 10000 km/h, 3 m/s^2 for one hour,
// starting at 0 km with 5000 kg of fuel burning 0.5 kg/s.
func ReferenceInput() kinematics.KinematicInput {
	return kinematics.NewKinematicInput(10000, 3, 3600, 0, 5000, 0.5)
}

// FuelExhaustingInput burns 200 kg with only 100 kg available.
func FuelExhaustingInput() kinematics.KinematicInput {
	return kinematics.NewKinematicInput(100, 1, 200, 0, 100, 1)
}
