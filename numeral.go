package rcf

import (
	"math/big"

	"github.com/LiuShellway/rcf/internal/core"
)

// Numeral is a handle to one value in the real closed field: a plain
// rational, or a rational function over some extension. Numerals have
// value semantics at the API boundary — Set and Swap copy/exchange which
// underlying value a handle denotes, rather than mutating the pointee in
// place — but arithmetic methods always build and return a new Numeral,
// never mutate their receiver or argument. There is no explicit destroy:
// Go's garbage collector reclaims a Numeral's backing Value once nothing
// references it (see DESIGN.md for why this replaces the source engine's
// manual inc_ref/dec_ref).
type Numeral struct {
	owner *Manager
	value *core.Value
}

func (m *Manager) wrap(v *core.Value) *Numeral {
	return &Numeral{owner: m, value: v}
}

// Set returns a Numeral equal in value to n but owned by m; used to move
// a Numeral produced by one Manager into another Manager's bookkeeping.
func (m *Manager) Set(n *Numeral) *Numeral { return m.wrap(n.value) }

// SetInt64 builds the rational Numeral n/1.
func (m *Manager) SetInt64(n int64) *Numeral { return m.wrap(m.core.SetInt(n)) }

// SetBigInt builds a rational Numeral from an arbitrary-precision integer.
func (m *Manager) SetBigInt(n *big.Int) *Numeral { return m.wrap(m.core.SetBigInt(n)) }

// SetRat builds a rational Numeral from an arbitrary-precision fraction.
func (m *Manager) SetRat(q *big.Rat) *Numeral { return m.wrap(m.core.SetRat(q)) }

// Refiner computes a rational interval of width <= 2^-k enclosing a
// transcendental's true value, for increasing k, and is the extension
// point for any transcendental beyond the bundled pi/e. Every call for a
// given k must return an interval at least as tight as, and consistent
// with, every previous call's interval. If a Refiner stops making
// progress, the refinement run by Sign, Compare or DisplayDecimal reports
// ErrRefinementStalled; MkTranscendental's own initial refinement ignores
// that error.
type Refiner = core.Refiner

// MkTranscendental registers a new transcendental extension named name,
// refined by refine, and returns the Numeral denoting it.
func (m *Manager) MkTranscendental(name string, refine Refiner) *Numeral {
	m.logger.Debug().Str(`name`, name).Log(`transcendental constructed`)
	return m.wrap(m.core.MkTranscendental(name, refine))
}

// MkPi returns the Numeral denoting pi.
func (m *Manager) MkPi() *Numeral {
	m.logger.Debug().Log(`pi constructed`)
	return m.wrap(m.core.MkPi())
}

// MkE returns the Numeral denoting e.
func (m *Manager) MkE() *Numeral {
	m.logger.Debug().Log(`e constructed`)
	return m.wrap(m.core.MkE())
}

// MkInfinitesimal registers a new positive infinitesimal extension named
// name, with defining enclosure (0, 2^-precision) (0 meaning "use the
// Manager's configured InfinitesimalPrecision"), and returns the Numeral
// denoting it. Every infinitesimal so constructed is smaller in absolute
// value than every positive rational, and distinct infinitesimals are
// algebraically independent of one another and of every transcendental.
func (m *Manager) MkInfinitesimal(name string, precision uint) *Numeral {
	m.logger.Debug().Str(`name`, name).Log(`infinitesimal constructed`)
	return m.wrap(m.core.MkInfinitesimal(name, precision))
}

// IsolateRoots is scaffolded: see core.Manager.IsolateRoots.
func (m *Manager) IsolateRoots(coeffs []*big.Rat) ([]*Numeral, error) {
	poly := make([]*core.Value, len(coeffs))
	for i, c := range coeffs {
		poly[i] = m.core.SetRat(c)
	}
	_, err := m.core.IsolateRoots(&core.Polynomial{Coeffs: poly})
	return nil, err
}

func (n *Numeral) manager() *Manager {
	if n.owner == nil {
		panic("rcf: Numeral has no owning Manager")
	}
	return n.owner
}

// Swap exchanges the values denoted by n and other.
func (n *Numeral) Swap(other *Numeral) {
	n.value, other.value = other.value, n.value
}

// Clone returns an independent Numeral denoting the same value as n.
func (n *Numeral) Clone() *Numeral {
	return &Numeral{owner: n.owner, value: n.value.Clone()}
}

// Add returns n + other.
func (n *Numeral) Add(other *Numeral) *Numeral {
	m := n.manager()
	return m.wrap(m.core.Add(n.value, other.value))
}

// Sub returns n - other.
func (n *Numeral) Sub(other *Numeral) *Numeral {
	m := n.manager()
	return m.wrap(m.core.Sub(n.value, other.value))
}

// Mul returns n * other.
func (n *Numeral) Mul(other *Numeral) *Numeral {
	m := n.manager()
	return m.wrap(m.core.Mul(n.value, other.value))
}

// Neg returns -n.
func (n *Numeral) Neg() *Numeral {
	m := n.manager()
	return m.wrap(m.core.Neg(n.value))
}

// Inv returns 1/n, or an error wrapping ErrDivisionByZero if n is zero.
func (n *Numeral) Inv() (*Numeral, error) {
	m := n.manager()
	v, err := m.core.Inv(n.value)
	if err != nil {
		return nil, err
	}
	return m.wrap(v), nil
}

// Div returns n / other.
func (n *Numeral) Div(other *Numeral) (*Numeral, error) {
	m := n.manager()
	v, err := m.core.Div(n.value, other.value)
	if err != nil {
		return nil, err
	}
	return m.wrap(v), nil
}

// Power returns n^exp.
func (n *Numeral) Power(exp uint) (*Numeral, error) {
	m := n.manager()
	v, err := m.core.Power(n.value, exp)
	if err != nil {
		return nil, err
	}
	return m.wrap(v), nil
}

// Root returns the real exp-th root of n.
func (n *Numeral) Root(exp uint) (*Numeral, error) {
	m := n.manager()
	v, err := m.core.Root(n.value, exp)
	if err != nil {
		m.warnf(`root-unsupported`, func(b *logBuilder) {
			b.Str(`reason`, err.Error()).Log(`root could not be resolved exactly`)
		})
		return nil, err
	}
	return m.wrap(v), nil
}

// Sign returns -1, 0, or 1.
func (n *Numeral) Sign() (int, error) {
	m := n.manager()
	s, err := m.core.Sign(n.value)
	if err != nil {
		m.warnf(`sign-stalled`, func(b *logBuilder) {
			b.Err(err).Log(`sign determination did not converge`)
		})
	}
	return s, err
}

func (n *Numeral) IsZero() (bool, error) {
	s, err := n.Sign()
	return s == 0, err
}

func (n *Numeral) IsPos() (bool, error) {
	s, err := n.Sign()
	return s > 0, err
}

func (n *Numeral) IsNeg() (bool, error) {
	s, err := n.Sign()
	return s < 0, err
}

// IsInt reports whether n denotes an integer.
func (n *Numeral) IsInt() bool { return n.manager().core.IsInt(n.value) }

// IsReal always returns true (see core.Manager.IsReal).
func (n *Numeral) IsReal() bool { return n.manager().core.IsReal(n.value) }

// Compare returns -1, 0, or 1 according to whether n < other, n == other,
// or n > other.
func (n *Numeral) Compare(other *Numeral) (int, error) {
	return n.manager().core.Compare(n.value, other.value)
}

func (n *Numeral) Eq(other *Numeral) (bool, error) {
	c, err := n.Compare(other)
	return c == 0, err
}

func (n *Numeral) Lt(other *Numeral) (bool, error) {
	c, err := n.Compare(other)
	return c < 0, err
}

func (n *Numeral) Gt(other *Numeral) (bool, error) {
	c, err := n.Compare(other)
	return c > 0, err
}

// Select returns n if cond, else other, without evaluating either's sign.
func (n *Numeral) Select(cond bool, other *Numeral) *Numeral {
	if cond {
		return n
	}
	return other
}

// String renders n as an exact symbolic expression (see DisplaySymbolic).
func (n *Numeral) String() string { return n.DisplaySymbolic() }

// DisplaySymbolic renders n as an exact algebraic expression, e.g.
// "2*pi + 1" or "(1)/(pi)".
func (n *Numeral) DisplaySymbolic() string { return core.DisplaySymbolic(n.value) }

// DisplayInterval renders n's current best-known rational enclosure, e.g.
// "(355/113, 22/7)".
func (n *Numeral) DisplayInterval() (string, error) {
	return n.manager().core.DisplayInterval(n.value)
}

// DisplayDecimal renders n's decimal expansion to digits places after the
// radix point, truncated toward zero.
func (n *Numeral) DisplayDecimal(digits int) (string, error) {
	return n.manager().core.DisplayDecimal(n.value, digits)
}
