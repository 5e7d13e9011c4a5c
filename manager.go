// Package rcf implements an exact real closed field: rationals, closed
// under addition, multiplication, and the algebraic operations needed to
// extend the field with transcendentals (pi, e, or any caller-supplied
// rational-interval generator), positive infinitesimals, and (to the
// extent implemented, see Manager.IsolateRoots) roots of polynomials.
//
// Every Numeral is represented exactly, either as a rational or as a
// rational function over the highest-ranked extension it depends on;
// no value is ever approximated until a caller explicitly asks for a
// decimal or interval rendering.
package rcf

import (
	"github.com/LiuShellway/rcf/internal/core"
)

// Params configures a Manager's refinement behavior. See core.Params for
// field documentation; this is a re-export so callers never need to
// import the internal package directly.
type Params = core.Params

// DefaultParams returns the engine's default precision knobs.
func DefaultParams() Params { return core.DefaultParams() }

type managerConfig struct {
	params core.Params
	logger *Logger
}

// Option configures a Manager at construction time.
type Option func(c *managerConfig)

// WithParams overrides the default refinement parameters.
func WithParams(p Params) Option {
	return func(c *managerConfig) { c.params = p }
}

// Manager evaluates every operation over the Numerals it or its children
// produce. A Manager is safe for single-goroutine use; SetCancel may be
// called concurrently from another goroutine to interrupt an in-flight
// operation cooperatively.
type Manager struct {
	core    *core.Manager
	logger  *Logger
	limiter *refinementLogLimiter
}

// NewManager constructs a Manager, applying any supplied Options over
// DefaultParams and a discard logger.
func NewManager(opts ...Option) *Manager {
	cfg := managerConfig{params: core.DefaultParams(), logger: newDiscardLogger()}
	for _, opt := range opts {
		opt(&cfg)
	}
	m := &Manager{
		core:    core.NewManager(cfg.params),
		logger:  cfg.logger,
		limiter: newRefinementLogLimiter(),
	}
	m.logger.Debug().
		Int(`initialPrecision`, int(cfg.params.InitialPrecision)).
		Int(`infinitesimalPrecision`, int(cfg.params.InfinitesimalPrecision)).
		Int(`minMagnitude`, cfg.params.MinMagnitude).
		Log(`manager initialized`)
	return m
}

// SetCancel flips the Manager's cooperative cancellation flag. Refinement
// loops and Power's loop observe it at their next checkpoint and unwind
// with an error wrapping checkpoint.ErrCanceled; the polynomial division
// and gcd steps run during normalization do not consult it.
func (m *Manager) SetCancel(canceled bool) {
	m.core.SetCancel(canceled)
	if canceled {
		m.logger.Notice().Log(`cancellation requested`)
	}
}

func (m *Manager) warnf(category string, build func(b *logBuilder)) {
	if !m.limiter.allow(category) {
		return
	}
	b := m.logger.Warning()
	build(b)
}
