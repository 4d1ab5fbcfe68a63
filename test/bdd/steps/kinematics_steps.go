package steps

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/kinestep/internal/domain/kinematics"
)

const tolerance = 0.005

// sharedInput is the input built by the Given steps, read by application-level steps
var sharedInput kinematics.KinematicInput

type kinematicsContext struct {
	input       kinematics.KinematicInput
	limits      kinematics.PlausibilityLimits
	result      *kinematics.KinematicResult
	otherResult *kinematics.KinematicResult
	err         error
}

func (kc *kinematicsContext) reset() {
	kc.input = kinematics.KinematicInput{}
	kc.limits = kinematics.DefaultPlausibilityLimits()
	kc.result = nil
	kc.otherResult = nil
	kc.err = nil
	sharedInput = kinematics.KinematicInput{}
}

func referenceValues() map[string]string {
	return map[string]string{
		kinematics.FieldVelocity:        "10000",
		kinematics.FieldAcceleration:    "3",
		kinematics.FieldTime:            "3600",
		kinematics.FieldInitialDistance: "0",
		kinematics.FieldInitialFuel:     "5000",
		kinematics.FieldFuelBurnRate:    "0.5",
	}
}

func (kc *kinematicsContext) setInput(raw map[string]string) {
	input, err := kinematics.ParseKinematicInput(raw)
	kc.input = input
	kc.err = err
	sharedInput = input
}

// Given steps

func (kc *kinematicsContext) theReferenceKinematicInput() error {
	kc.setInput(referenceValues())
	return kc.err
}

func (kc *kinematicsContext) theReferenceInputWithFieldSetTo(field, value string) error {
	raw := referenceValues()
	if _, ok := raw[field]; !ok {
		return fmt.Errorf("unknown field %q", field)
	}
	raw[field] = value
	kc.setInput(raw)
	return nil
}

func (kc *kinematicsContext) aKinematicInput(table *godog.Table) error {
	raw := referenceValues()
	for field, value := range tableToFieldMap(table) {
		raw[field] = value
	}
	kc.setInput(raw)
	return nil
}

func (kc *kinematicsContext) plausibilityLimitsOf(velocity, time, acceleration float64) error {
	limits, err := kinematics.NewPlausibilityLimits(velocity, time, acceleration)
	if err != nil {
		return err
	}
	kc.limits = limits
	return nil
}

// When steps

func (kc *kinematicsContext) iValidateTheInput() error {
	if kc.err != nil {
		return nil // parse failure already recorded
	}
	validator, err := kinematics.NewInputValidator(kc.limits)
	if err != nil {
		return err
	}
	kc.err = validator.Validate(kc.input)
	return nil
}

func (kc *kinematicsContext) iCalculateTheStep() error {
	if kc.err != nil {
		return nil
	}
	validator, err := kinematics.NewInputValidator(kc.limits)
	if err != nil {
		return err
	}
	kc.result, kc.err = kinematics.NewKinematicsCalculator(validator).Calculate(kc.input)
	return nil
}

func (kc *kinematicsContext) iCalculateTheStepTwice() error {
	if err := kc.iCalculateTheStep(); err != nil {
		return err
	}
	first := kc.result
	if err := kc.iCalculateTheStep(); err != nil {
		return err
	}
	kc.otherResult = kc.result
	kc.result = first
	return nil
}

// Then steps

func (kc *kinematicsContext) theOperationShouldSucceed() error {
	if kc.err != nil {
		return fmt.Errorf("expected success, got error: %v", kc.err)
	}
	return nil
}

func (kc *kinematicsContext) theOperationShouldFailWith(code string) error {
	if kc.err == nil {
		return fmt.Errorf("expected failure with %s, but it succeeded", code)
	}
	if got := string(kinematics.CodeOf(kc.err)); got != code {
		return fmt.Errorf("expected error code %s, got %s (%v)", code, got, kc.err)
	}
	return nil
}

func (kc *kinematicsContext) theErrorShouldNameField(field string) error {
	if got := kinematics.FieldOf(kc.err); got != field {
		return fmt.Errorf("expected error for field %q, got %q (%v)", field, got, kc.err)
	}
	return nil
}

func (kc *kinematicsContext) theErrorShouldExpectUnit(unit string) error {
	var unitErr *kinematics.ImplausibleUnitError
	if !errors.As(kc.err, &unitErr) {
		return fmt.Errorf("expected an implausible unit error, got %v", kc.err)
	}
	if unitErr.ExpectedUnit != unit {
		return fmt.Errorf("expected unit %q, got %q", unit, unitErr.ExpectedUnit)
	}
	return nil
}

func (kc *kinematicsContext) theErrorMessageShouldBe(message string) error {
	if kc.err == nil {
		return fmt.Errorf("expected error %q, got none", message)
	}
	if kc.err.Error() != message {
		return fmt.Errorf("expected error %q, got %q", message, kc.err.Error())
	}
	return nil
}

func (kc *kinematicsContext) noResultShouldBeReturned() error {
	if kc.result != nil {
		return fmt.Errorf("expected no result, got %s", kc.result)
	}
	return nil
}

func (kc *kinematicsContext) checkValue(name string, pick func(*kinematics.KinematicResult) float64, expected string) error {
	want, err := strconv.ParseFloat(expected, 64)
	if err != nil {
		return err
	}
	if kc.result == nil {
		return fmt.Errorf("no result available (error: %v)", kc.err)
	}
	if got := pick(kc.result); math.Abs(got-want) > tolerance {
		return fmt.Errorf("expected %s %.2f, got %f", name, want, got)
	}
	return nil
}

func (kc *kinematicsContext) theNewVelocityShouldBe(expected string) error {
	return kc.checkValue("new velocity", func(r *kinematics.KinematicResult) float64 { return r.NewVelocityKmh }, expected)
}

func (kc *kinematicsContext) theNewDistanceShouldBe(expected string) error {
	return kc.checkValue("new distance", func(r *kinematics.KinematicResult) float64 { return r.NewDistanceKm }, expected)
}

func (kc *kinematicsContext) theRemainingFuelShouldBe(expected string) error {
	return kc.checkValue("remaining fuel", func(r *kinematics.KinematicResult) float64 { return r.RemainingFuelKg }, expected)
}

func (kc *kinematicsContext) bothResultsShouldBeBitIdentical() error {
	if kc.result == nil || kc.otherResult == nil {
		return fmt.Errorf("expected two results (error: %v)", kc.err)
	}
	pairs := [][2]float64{
		{kc.result.NewVelocityKmh, kc.otherResult.NewVelocityKmh},
		{kc.result.NewDistanceKm, kc.otherResult.NewDistanceKm},
		{kc.result.RemainingFuelKg, kc.otherResult.RemainingFuelKg},
	}
	for _, p := range pairs {
		if math.Float64bits(p[0]) != math.Float64bits(p[1]) {
			return fmt.Errorf("results differ: %v vs %v", p[0], p[1])
		}
	}
	return nil
}

func InitializeKinematicsScenario(ctx *godog.ScenarioContext) {
	kc := &kinematicsContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		kc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^the reference kinematic input$`, kc.theReferenceKinematicInput)
	ctx.Step(`^the reference kinematic input with (\S+) set to (\S+)$`, kc.theReferenceInputWithFieldSetTo)
	ctx.Step(`^a kinematic input:$`, kc.aKinematicInput)
	ctx.Step(`^plausibility limits of ([0-9.]+) km/h, ([0-9.]+) seconds and ([0-9.]+) m/s\^2$`, kc.plausibilityLimitsOf)

	// When steps
	ctx.Step(`^I validate the input$`, kc.iValidateTheInput)
	ctx.Step(`^I calculate the step$`, kc.iCalculateTheStep)
	ctx.Step(`^I calculate the step twice$`, kc.iCalculateTheStepTwice)

	// Then steps
	ctx.Step(`^the operation should succeed$`, kc.theOperationShouldSucceed)
	ctx.Step(`^the operation should fail with ([A-Z_]+)$`, kc.theOperationShouldFailWith)
	ctx.Step(`^the error should name field "([^"]*)"$`, kc.theErrorShouldNameField)
	ctx.Step(`^the error should expect unit "([^"]*)"$`, kc.theErrorShouldExpectUnit)
	ctx.Step(`^the error message should be "([^"]*)"$`, kc.theErrorMessageShouldBe)
	ctx.Step(`^no result should be returned$`, kc.noResultShouldBeReturned)
	ctx.Step(`^the new velocity should be ([0-9.]+) km/h$`, kc.theNewVelocityShouldBe)
	ctx.Step(`^the new distance should be ([0-9.]+) km$`, kc.theNewDistanceShouldBe)
	ctx.Step(`^the remaining fuel should be ([0-9.]+) kg$`, kc.theRemainingFuelShouldBe)
	ctx.Step(`^both results should be bit-identical$`, kc.bothResultsShouldBeBitIdentical)
}
