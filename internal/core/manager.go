package core

import (
	"math/big"

	"github.com/LiuShellway/rcf/internal/checkpoint"
	"github.com/LiuShellway/rcf/internal/interval"
)

// Params mirrors the tunable knobs of the source engine's updt_params:
// InitialPrecision seeds a freshly constructed transcendental's interval
// width, InfinitesimalPrecision seeds an infinitesimal's (0, 2^-n) bound,
// and MinMagnitude is the narrowest a value's interval is allowed to sit
// at once a scoped operation finishes with it (wider intervals are left
// alone; narrower ones are the save/restore machinery's business).
type Params struct {
	InitialPrecision        uint
	InfinitesimalPrecision  uint
	MinMagnitude            int
}

// DefaultParams matches the source engine's defaults.
func DefaultParams() Params {
	return Params{InitialPrecision: 24, InfinitesimalPrecision: 24, MinMagnitude: -64}
}

// Manager owns the extension registry and evaluates every arithmetic and
// predicate operation over Values it or its caller constructed. It is the
// Go analogue of realclosure's manager class: values are plain data
// (*Value), and all the logic for combining, refining, and comparing them
// lives on the Manager, keyed by a cooperative checkpoint.Token for
// cancellation.
type Manager struct {
	params Params
	reg    Registry
	tok    checkpoint.Token

	one *Value
}

func NewManager(params Params) *Manager {
	return &Manager{params: params, one: NewRational(ratOne())}
}

// SetCancel flips the manager's cancellation flag; any in-flight or
// future operation on this Manager observes it at its next checkpoint.
func (m *Manager) SetCancel(canceled bool) { m.tok.SetCanceled(canceled) }

func (m *Manager) Params() Params { return m.params }

// --- construction ---

func (m *Manager) SetInt(n int64) *Value { return NewRational(ratFromInt64(n)) }

func (m *Manager) SetRat(q *big.Rat) *Value { return NewRational(q) }

func (m *Manager) SetBigInt(n *big.Int) *Value { return NewRational(new(big.Rat).SetInt(n)) }

// MkTranscendental registers a new transcendental extension with a custom
// refiner and returns the Value that denotes it.
func (m *Manager) MkTranscendental(name string, refine Refiner) *Value {
	ext := m.reg.NewTranscendental(name, refine)
	v := NewRationalFunction(ext, polyFromRats(ratZero(), ratOne()), nil) // value = x (identity over its own anchor)
	if err := RefineInterval(v, -int(m.params.InitialPrecision), m.params.InitialPrecision, &m.tok); err != nil {
		// an initial refinement failure just leaves a wider interval; the
		// value is still usable, subsequent operations will refine again.
		_ = err
	}
	return v
}

func (m *Manager) MkPi() *Value { return m.MkTranscendental("pi", PiRefiner) }

func (m *Manager) MkE() *Value { return m.MkTranscendental("e", ERefiner) }

// MkInfinitesimal registers a new infinitesimal extension and returns the
// Value denoting it. n defaults to the manager's InfinitesimalPrecision
// when zero.
func (m *Manager) MkInfinitesimal(name string, n uint) *Value {
	if n == 0 {
		n = m.params.InfinitesimalPrecision
	}
	ext := m.reg.NewInfinitesimal(name, n)
	v := NewRationalFunction(ext, polyFromRats(ratZero(), ratOne()), nil)
	_ = updateRFInterval(v, m.params.InitialPrecision)
	return v
}

// IsolateRoots is scaffolded: the engine's polynomial root isolation (Sturm
// sequence bisection producing Algebraic extensions with disjoint
// isolating intervals and sign tables) is not implemented. See
// DESIGN.md for why this is an accepted gap rather than an oversight.
func (m *Manager) IsolateRoots(p *Polynomial) ([]*Value, error) {
	return nil, ErrAlgebraicUnsupported
}

// --- arithmetic ---

// scoped runs fn, which combines one or two operand Values into a result,
// inside a WithScope: C9 requires every public operation to establish the
// scoped restore context, so that any interval narrowing fn triggers
// (directly, or via a nested Sign/Compare) is undone on return rather than
// leaking into the operands' Interval fields.
func (m *Manager) scoped(a, b *Value, fn func() *Value) *Value {
	var out *Value
	_ = m.WithScope(func(ctx *saveCtx) error {
		ctx.touch(a)
		ctx.touch(b)
		out = fn()
		return nil
	})
	return out
}

func (m *Manager) Add(a, b *Value) *Value { return m.scoped(a, b, func() *Value { return vAdd(a, b) }) }
func (m *Manager) Sub(a, b *Value) *Value { return m.scoped(a, b, func() *Value { return vSub(a, b) }) }
func (m *Manager) Mul(a, b *Value) *Value { return m.scoped(a, b, func() *Value { return vMul(a, b) }) }
func (m *Manager) Neg(a *Value) *Value    { return m.scoped(a, nil, func() *Value { return vNeg(a) }) }

// Inv returns 1/a, or ErrDivisionByZero if a is (determined to be) zero.
func (m *Manager) Inv(a *Value) (*Value, error) {
	var out *Value
	err := m.WithScope(func(ctx *saveCtx) error {
		ctx.touch(a)
		v, err := valueInv(a, m.params.InitialPrecision, &m.tok)
		out = v
		return err
	})
	return out, err
}

// Div returns a/b.
func (m *Manager) Div(a, b *Value) (*Value, error) {
	inv, err := m.Inv(b)
	if err != nil {
		return nil, err
	}
	return vMul(a, inv), nil
}

// Power raises a to the non-negative integer power n.
func (m *Manager) Power(a *Value, n uint) (*Value, error) {
	if n == 0 {
		sign, err := m.Sign(a)
		if err != nil {
			return nil, err
		}
		if sign == 0 {
			return nil, ErrZerothRootIndeterminate
		}
		return m.one, nil
	}
	result := a
	for i := uint(1); i < n; i++ {
		if err := m.tok.Check(); err != nil {
			return nil, err
		}
		result = vMul(result, a)
	}
	return result, nil
}

// Root returns the real n-th root of a when it can be resolved exactly
// over the rationals (a is rational and is a perfect n-th power) or when
// a is exactly zero. Irrational roots require root isolation over
// algebraic extensions, which Manager.IsolateRoots does not implement;
// that case is reported as ErrAlgebraicUnsupported rather than silently
// approximated.
func (m *Manager) Root(a *Value, n uint) (*Value, error) {
	if n == 0 {
		return nil, ErrZerothRootIndeterminate
	}
	sign, err := m.Sign(a)
	if err != nil {
		return nil, err
	}
	if sign == 0 {
		return a, nil
	}
	if sign < 0 && n%2 == 0 {
		return nil, ErrEvenRootOfNegative
	}
	if !a.Rational {
		return nil, ErrAlgebraicUnsupported
	}
	root, exact := rationalNthRoot(a.Rat, n)
	if !exact {
		return nil, ErrAlgebraicUnsupported
	}
	return NewRational(root), nil
}

// rationalNthRoot attempts an exact n-th root of a positive rational by
// taking integer n-th roots of its numerator and denominator separately.
func rationalNthRoot(q *big.Rat, n uint) (*big.Rat, bool) {
	num := new(big.Int).Abs(q.Num())
	den := new(big.Int).Abs(q.Denom())
	rn, okNum := intNthRoot(num, n)
	rd, okDen := intNthRoot(den, n)
	if !okNum || !okDen {
		return nil, false
	}
	r := new(big.Rat).SetFrac(rn, rd)
	if q.Sign() < 0 {
		r.Neg(r)
	}
	return r, true
}

func intNthRoot(n *big.Int, root uint) (*big.Int, bool) {
	if n.Sign() == 0 {
		return big.NewInt(0), true
	}
	// Newton's method on integers, then verify exactness.
	x := new(big.Int).Set(n)
	rootBig := new(big.Int).SetUint64(uint64(root))
	one := big.NewInt(1)
	for {
		// x_{k+1} = ((root-1)*x_k + n/x_k^(root-1)) / root
		xp := new(big.Int).Exp(x, new(big.Int).Sub(rootBig, one), nil)
		if xp.Sign() == 0 {
			break
		}
		t := new(big.Int).Div(n, xp)
		t.Add(t, new(big.Int).Mul(new(big.Int).Sub(rootBig, one), x))
		next := new(big.Int).Div(t, rootBig)
		if next.Cmp(x) >= 0 {
			break
		}
		x = next
	}
	for i := 0; i < 2; i++ {
		candidate := new(big.Int).Add(x, big.NewInt(int64(i)))
		if new(big.Int).Exp(candidate, rootBig, nil).Cmp(n) == 0 {
			return candidate, true
		}
	}
	for i := 1; i <= 2; i++ {
		candidate := new(big.Int).Sub(x, big.NewInt(int64(i)))
		if candidate.Sign() < 0 {
			continue
		}
		if new(big.Int).Exp(candidate, rootBig, nil).Cmp(n) == 0 {
			return candidate, true
		}
	}
	return nil, false
}

// --- predicates ---

func (m *Manager) Sign(a *Value) (int, error) {
	var sign int
	err := m.WithScope(func(ctx *saveCtx) error {
		ctx.touch(a)
		s, err := DetermineSign(a, m.params.InitialPrecision, &m.tok)
		sign = s
		return err
	})
	return sign, err
}

func (m *Manager) IsZero(a *Value) (bool, error) {
	s, err := m.Sign(a)
	return s == 0, err
}

func (m *Manager) IsPos(a *Value) (bool, error) {
	s, err := m.Sign(a)
	return s > 0, err
}

func (m *Manager) IsNeg(a *Value) (bool, error) {
	s, err := m.Sign(a)
	return s < 0, err
}

// IsInt reports whether a denotes an integer. Only decidable for
// rational values in this implementation: an irrational rational-function
// value is never an integer, and that is in fact always correct, since
// transcendentals and infinitesimals are irrational and integers are
// rational by definition.
func (m *Manager) IsInt(a *Value) bool {
	return a.Rational && a.Rat.IsInt()
}

// IsReal always returns true: every Value constructed by this package,
// including infinitesimal- and transcendental-anchored ones, denotes a
// real number (the package has no representation for complex algebraic
// roots).
func (m *Manager) IsReal(a *Value) bool { return true }

// Compare returns -1, 0, or 1 according to whether a is less than, equal
// to, or greater than b.
func (m *Manager) Compare(a, b *Value) (int, error) {
	var cmp int
	err := m.WithScope(func(ctx *saveCtx) error {
		ctx.touch(a)
		ctx.touch(b)
		c, err := m.Sign(vSub(a, b))
		cmp = c
		return err
	})
	return cmp, err
}

func (m *Manager) Eq(a, b *Value) (bool, error) {
	c, err := m.Compare(a, b)
	return c == 0, err
}

func (m *Manager) Lt(a, b *Value) (bool, error) {
	c, err := m.Compare(a, b)
	return c < 0, err
}

func (m *Manager) Gt(a, b *Value) (bool, error) {
	c, err := m.Compare(a, b)
	return c > 0, err
}

// Select returns a if cond, else b, without evaluating either's sign: a
// direct analogue of the source engine's select, useful for building
// branch-free expressions over values whose sign may be expensive to
// resolve.
func (m *Manager) Select(cond bool, a, b *Value) *Value {
	if cond {
		return a
	}
	return b
}

// RefineToMagnitude forces a's interval at least as tight as the
// manager's configured minimum magnitude, recording the prior interval in
// ctx so it can be restored once the caller's operation completes. Public
// Manager methods that need a tight enclosure (e.g. before rendering a
// decimal expansion) use this instead of mutating a's interval permanently.
func (m *Manager) RefineToMagnitude(ctx *saveCtx, a *Value) error {
	return ctx.ensureMagnitude(a, m.params.MinMagnitude, m.params.InitialPrecision, &m.tok)
}

// WithScope runs fn inside a fresh save/restore context, guaranteeing any
// interval narrowing fn triggers (directly or via RefineToMagnitude) is
// undone before WithScope returns, regardless of fn's outcome.
func (m *Manager) WithScope(fn func(ctx *saveCtx) error) error {
	ctx := newSaveCtx()
	defer ctx.close()
	return fn(ctx)
}

// EnsureInterval is a convenience wrapper combining WithScope and
// RefineToMagnitude for a single value, returning its resulting interval.
func (m *Manager) EnsureInterval(a *Value) (interval.Interval, error) {
	var out interval.Interval
	err := m.WithScope(func(ctx *saveCtx) error {
		if err := m.RefineToMagnitude(ctx, a); err != nil {
			return err
		}
		out = a.Interval
		return nil
	})
	return out, err
}
