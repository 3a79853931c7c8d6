package exhibit

import (
	"errors"
	"fmt"
)

// ErrValidation is the kind shared by every validation failure in this
// package. errors.Is(err, ErrValidation) matches any rejected input.
var ErrValidation = errors.New("validation failed")

// Person validation errors.
var (
	ErrNameMalformed    = fmt.Errorf("%w: full name must include both first and last name", ErrValidation)
	ErrBirthYearInvalid = fmt.Errorf("%w: birth year must be positive", ErrValidation)
	ErrSalaryNegative   = fmt.Errorf("%w: base salary must be non-negative", ErrValidation)
	ErrBonusNotNumeric  = fmt.Errorf("%w: bonus must be a finite number", ErrValidation)
	ErrBonusRange       = fmt.Errorf("%w: bonus must be between 0 and 100", ErrValidation)
)

// Circle validation errors.
var (
	ErrRadiusInvalid   = fmt.Errorf("%w: radius must be a finite positive number", ErrValidation)
	ErrDiameterInvalid = fmt.Errorf("%w: diameter must be a finite positive number", ErrValidation)
)

// Vehicle validation errors.
var (
	ErrPowertrainUnknown  = fmt.Errorf("%w: unknown powertrain", ErrValidation)
	ErrVehicleTypeUnknown = fmt.Errorf("%w: vehicle type must be 'car', 'truck', or 'motorcycle'", ErrValidation)
)

// ValidatedNumber validation errors.
var ErrValueInvalid = fmt.Errorf("%w: value must be a finite positive number", ErrValidation)

// Container errors.
var (
	ErrFieldNotFound    = fmt.Errorf("%w: field not found", ErrValidation)
	ErrFieldTypeUnknown = fmt.Errorf("%w: unknown field type", ErrValidation)
)

// Config validation errors.
var (
	ErrLogLevelUnknown      = fmt.Errorf("%w: unknown log level", ErrValidation)
	ErrReferenceYearInvalid = fmt.Errorf("%w: reference year must be zero or positive", ErrValidation)
)
