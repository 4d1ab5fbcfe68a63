package kinematics

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/andrescamacho/kinestep/internal/domain/shared"
)

const (
	CodeNotANumber      shared.ErrorCode = "NOT_A_NUMBER"
	CodeNegativeValue   shared.ErrorCode = "NEGATIVE_VALUE"
	CodeImplausibleUnit shared.ErrorCode = "IMPLAUSIBLE_UNIT"
	CodeFuelExhausted   shared.ErrorCode = "FUEL_EXHAUSTED"
)

// Sentinels for errors.Is matching. Every typed error below reports Is(sentinel) == true
// for the sentinel of its own variant.
var (
	ErrNotANumber      = errors.New("not a number")
	ErrNegativeValue   = errors.New("negative value")
	ErrImplausibleUnit = errors.New("implausible unit")
	ErrFuelExhausted   = errors.New("fuel exhausted")
)

// NotANumberError is returned when a field is NaN, infinite, missing or unparsable.
type NotANumberError struct {
	*shared.ValidationError
}

func NewNotANumberError(field string) *NotANumberError {
	return &NotANumberError{
		ValidationError: shared.NewValidationError(CodeNotANumber, field, "value is not a finite number"),
	}
}

func (e *NotANumberError) Is(target error) bool { return target == ErrNotANumber }

type NegativeValueError struct {
	*shared.ValidationError
	Value float64
}

func NewNegativeValueError(field string, value float64) *NegativeValueError {
	return &NegativeValueError{
		ValidationError: shared.NewValidationError(
			CodeNegativeValue,
			field,
			fmt.Sprintf("value cannot be negative (got %s)", formatValue(value)),
		),
		Value: value,
	}
}

func (e *NegativeValueError) Is(target error) bool { return target == ErrNegativeValue }

// ImplausibleUnitError signals a magnitude so far outside the expected range that the
// caller most likely supplied the value in the wrong unit.
type ImplausibleUnitError struct {
	*shared.ValidationError
	ExpectedUnit string
	Value        float64
	Limit        float64
}

func NewImplausibleUnitError(field, expectedUnit string, value, limit float64) *ImplausibleUnitError {
	return &ImplausibleUnitError{
		ValidationError: shared.NewValidationError(
			CodeImplausibleUnit,
			field,
			fmt.Sprintf("value %s exceeds plausibility bound %s, expected unit %s",
				formatValue(value), formatValue(limit), expectedUnit),
		),
		ExpectedUnit: expectedUnit,
		Value:        value,
		Limit:        limit,
	}
}

func (e *ImplausibleUnitError) Is(target error) bool { return target == ErrImplausibleUnit }

// FuelExhaustedError is returned instead of a negative remaining fuel mass.
type FuelExhaustedError struct {
	*shared.DomainError
	Required  float64
	Available float64
}

func NewFuelExhaustedError(required, available float64) *FuelExhaustedError {
	return &FuelExhaustedError{
		DomainError: shared.NewDomainError(
			CodeFuelExhausted,
			fmt.Sprintf("fuel exhausted: burn requires %.2f kg, only %.2f kg available", required, available),
		),
		Required:  required,
		Available: available,
	}
}

func (e *FuelExhaustedError) Is(target error) bool { return target == ErrFuelExhausted }

// Deficit returns how many kg of fuel the step is short by.
func (e *FuelExhaustedError) Deficit() float64 {
	return e.Required - e.Available
}

// CodeOf returns the error code carried by err, or "" if err is not a kinematics error.
func CodeOf(err error) shared.ErrorCode {
	var nan *NotANumberError
	var neg *NegativeValueError
	var unit *ImplausibleUnitError
	var fuel *FuelExhaustedError

	switch {
	case errors.As(err, &nan):
		return nan.Code
	case errors.As(err, &neg):
		return neg.Code
	case errors.As(err, &unit):
		return unit.Code
	case errors.As(err, &fuel):
		return fuel.Code
	}
	return ""
}

// FieldOf returns the offending field name for validation errors, or "".
func FieldOf(err error) string {
	var nan *NotANumberError
	var neg *NegativeValueError
	var unit *ImplausibleUnitError

	switch {
	case errors.As(err, &nan):
		return nan.Field
	case errors.As(err, &neg):
		return neg.Field
	case errors.As(err, &unit):
		return unit.Field
	}
	return ""
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
