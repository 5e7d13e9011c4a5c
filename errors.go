package rcf

import (
	"github.com/LiuShellway/rcf/internal/checkpoint"
	"github.com/LiuShellway/rcf/internal/core"
)

// Sentinel errors returned by Manager and Numeral operations. Wrap/unwrap
// with the standard errors package; every operation that can fail returns
// one of these (or an error that wraps one) rather than a bespoke type.
var (
	ErrDivisionByZero          = core.ErrDivisionByZero
	ErrZerothRootIndeterminate = core.ErrZerothRootIndeterminate
	ErrEvenRootOfNegative      = core.ErrEvenRootOfNegative
	ErrSignUndetermined        = core.ErrSignUndetermined
	ErrAlgebraicUnsupported    = core.ErrAlgebraicUnsupported
	ErrRefinementStalled       = core.ErrRefinementStalled
	ErrCanceled                = checkpoint.ErrCanceled
)
