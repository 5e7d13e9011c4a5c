package core

import "errors"

var (
	ErrDivisionByZero       = errors.New("rcf: division by zero")
	ErrZerothRootIndeterminate = errors.New("rcf: 0-th root is indeterminate")
	ErrEvenRootOfNegative   = errors.New("rcf: even root of negative number")
	ErrSignUndetermined     = errors.New("rcf: could not determine sign to requested precision")
	ErrAlgebraicUnsupported = errors.New("rcf: algebraic extension support is not implemented")
	ErrRefinementStalled    = errors.New("rcf: transcendental refiner made no progress")
)
