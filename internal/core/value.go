package core

import (
	"math/big"

	"github.com/LiuShellway/rcf/internal/interval"
)

// Value is a single node of the real closed field value representation.
// It is either a plain rational (Rational true, Rat set) or a rational
// function Num(anchor)/Den(anchor) evaluated at Anchor, the highest-rank
// extension it depends on (Rational false). Den == nil means the
// denominator is the constant polynomial 1.
//
// This corresponds to the rational_value / rational_function_value split
// in the source engine, collapsed into one struct with a discriminating
// bool rather than a class hierarchy, matching the tagged-union style used
// throughout this package.
type Value struct {
	Rational bool
	Rat      *big.Rat

	Anchor *Extension
	Num    *Polynomial
	Den    *Polynomial // nil == constant 1

	Interval interval.Interval

	// saved is non-nil while a scoped refinement context (see refine.go)
	// has touched this value and holds its prior interval, to restore on
	// exit.
	saved *interval.Interval
}

// Polynomial is a dense coefficient list over Value, Coeffs[i] being the
// coefficient of x^i. The zero polynomial is represented by a nil or
// empty Coeffs slice; Coeffs is otherwise normalized so its last element
// is non-zero (see NormalizePoly).
type Polynomial struct {
	Coeffs []*Value
}

// Degree returns the polynomial's degree, or -1 for the zero polynomial.
func (p *Polynomial) Degree() int {
	if p == nil {
		return -1
	}
	return len(p.Coeffs) - 1
}

func (p *Polynomial) IsZero() bool {
	return p == nil || len(p.Coeffs) == 0
}

// NewRational builds a rational leaf value.
func NewRational(q *big.Rat) *Value {
	return &Value{
		Rational: true,
		Rat:      new(big.Rat).Set(q),
		Interval: interval.Point(q),
	}
}

// NewRationalFunction builds a rational-function value num(anchor)/den(anchor).
// den == nil denotes the constant denominator 1.
func NewRationalFunction(anchor *Extension, num, den *Polynomial) *Value {
	return &Value{Anchor: anchor, Num: num, Den: den}
}

// IsRationalZero reports whether v is the rational value 0.
func (v *Value) IsRationalZero() bool {
	return v.Rational && ratIsZero(v.Rat)
}

// CurrentInterval returns the value's current enclosure, computing it for
// a rational-function value by evaluating Num/Den at Anchor's interval if
// it has never been computed (zero Interval).
func (v *Value) CurrentInterval() interval.Interval {
	if !v.Rational && v.Interval.Lo == nil && v.Interval.Hi == nil && !v.Interval.LoInf && !v.Interval.HiInf {
		_ = updateRFInterval(v, defaultNormalizePrec)
	}
	return v.Interval
}

// Clone makes a shallow structural copy of v sufficient for independent
// mutation of its Interval/saved fields (used by mk_numeral-style copies).
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	c := *v
	if v.Rational {
		c.Rat = new(big.Rat).Set(v.Rat)
	}
	c.Interval = v.Interval.Clone()
	c.saved = nil
	return &c
}

// AnchorRank returns the rank extension v depends on, or nil for a
// rational value (rank -infinity in the ordering used by rankCompare,
// vAdd and vMul).
func (v *Value) AnchorRank() *Extension {
	if v.Rational {
		return nil
	}
	return v.Anchor
}
