package kinematics

import "fmt"

// KinematicResult is the state of the body after one kinematic step.
type KinematicResult struct {
	NewVelocityKmh  float64
	NewDistanceKm   float64
	RemainingFuelKg float64
}

// FuelBurnedKg returns the fuel consumed during the step relative to the given input
func (r *KinematicResult) FuelBurnedKg(input KinematicInput) float64 {
	return input.initialFuel - r.RemainingFuelKg
}

// DistanceTravelledKm returns the distance covered during the step relative to the given input
func (r *KinematicResult) DistanceTravelledKm(input KinematicInput) float64 {
	return r.NewDistanceKm - input.initialDistance
}

func (r *KinematicResult) String() string {
	return fmt.Sprintf("KinematicResult(velocity=%.2fkm/h, distance=%.2fkm, fuel=%.2fkg)",
		r.NewVelocityKmh, r.NewDistanceKm, r.RemainingFuelKg)
}
