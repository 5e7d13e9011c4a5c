// Package checkpoint implements the cooperative cancellation primitive used
// by the long-running loops of the real closed field engine: refinement
// loops, and polynomial division and gcd when they are passed a non-nil
// Token, periodically call Token.Check to observe an externally-set cancel
// flag and return early.
//
// The design is a deliberately narrowed cousin of the AbortController /
// AbortSignal pattern (see the eventloop package's abort.go in the wider
// utility workspace this module grew out of): a single manager-owned flag,
// flipped from any goroutine, observed cooperatively from the goroutine
// running an RCF operation. There is no handler registry and no DOM-style
// reason value, since the engine only ever needs a boolean "stop now".
package checkpoint

import (
	"errors"
	"sync/atomic"
)

// ErrCanceled is returned by Check once the owning Token has been canceled.
var ErrCanceled = errors.New("rcf: canceled")

// Token is a cooperative cancellation flag. The zero value is a valid,
// not-yet-canceled token. A Token is safe for concurrent use: SetCanceled
// may be called from any goroutine while another goroutine is inside a
// long-running RCF operation calling Check at its suspension points.
type Token struct {
	canceled atomic.Bool
}

// SetCanceled flips the cancellation flag. The write is a release; every
// subsequent Check from any goroutine is guaranteed to observe it (acquire).
func (t *Token) SetCanceled(f bool) {
	t.canceled.Store(f)
}

// Canceled reports the current state of the flag without side effects.
func (t *Token) Canceled() bool {
	return t.canceled.Load()
}

// Check returns ErrCanceled if the token has been canceled, else nil. Every
// refinement loop calls Check, as does every polynomial division step and
// gcd iteration that is passed a non-nil Token, so that cancellation mid-operation unwinds promptly rather than spinning
// to completion first.
func (t *Token) Check() error {
	if t.canceled.Load() {
		return ErrCanceled
	}
	return nil
}
