package core

import (
	"math/big"

	"github.com/LiuShellway/rcf/internal/checkpoint"
)

// This file implements the arithmetic dispatcher: combining two arbitrary
// Values (each possibly a rational, or a rational function over some
// extension, recursively, since a rational function's own coefficients
// may in turn be values anchored at a lower-ranked extension) into their
// sum or product. The rank order over extensions (Kind, Idx) decides
// which operand's anchor becomes the result's anchor; the other operand,
// if anchored lower (or rational), is lifted to a constant coefficient of
// a degree-zero polynomial at that anchor. This mirrors mk_add_value /
// mk_mul_value in the source engine, generalized to an arbitrary-depth
// coefficient tower via straightforward recursion rather than a fixed
// two-level special case.

// liftConstant wraps v as a degree-zero coefficient polynomial.
func liftConstant(v *Value) *Polynomial {
	return &Polynomial{Coeffs: []*Value{v}}
}

func isValueZero(v *Value) bool {
	return v.Rational && ratIsZero(v.Rat)
}

func denOrOne(p *Polynomial) *Polynomial {
	if p == nil {
		return polyFromRats(ratOne())
	}
	return p
}

// normalizeValuePoly trims trailing zero-Value coefficients. Only
// syntactic (rational-zero) coefficients are stripped: deciding whether an
// arbitrary irrational subexpression is exactly zero is a sign-
// determination problem, not a normalization one, and is left to
// DetermineSign.
func normalizeValuePoly(p *Polynomial) *Polynomial {
	if p == nil {
		return &Polynomial{}
	}
	n := len(p.Coeffs)
	for n > 0 && isValueZero(p.Coeffs[n-1]) {
		n--
	}
	return &Polynomial{Coeffs: p.Coeffs[:n:n]}
}

func addValuePoly(a, b *Polynomial) *Polynomial {
	n := a.Degree() + 1
	if m := b.Degree() + 1; m > n {
		n = m
	}
	out := make([]*Value, n)
	for i := 0; i < n; i++ {
		var x, y *Value
		if i <= a.Degree() {
			x = a.Coeffs[i]
		} else {
			x = NewRational(ratZero())
		}
		if i <= b.Degree() {
			y = b.Coeffs[i]
		} else {
			y = NewRational(ratZero())
		}
		out[i] = vAdd(x, y)
	}
	return normalizeValuePoly(&Polynomial{Coeffs: out})
}

func negValuePoly(a *Polynomial) *Polynomial {
	out := make([]*Value, a.Degree()+1)
	for i := range out {
		out[i] = vNeg(a.Coeffs[i])
	}
	return normalizeValuePoly(&Polynomial{Coeffs: out})
}

func mulValuePoly(a, b *Polynomial) *Polynomial {
	if a.IsZero() || b.IsZero() {
		return &Polynomial{}
	}
	out := make([]*Value, a.Degree()+b.Degree()+1)
	for i := range out {
		out[i] = NewRational(ratZero())
	}
	for i, ac := range a.Coeffs {
		for j, bc := range b.Coeffs {
			out[i+j] = vAdd(out[i+j], vMul(ac, bc))
		}
	}
	return normalizeValuePoly(&Polynomial{Coeffs: out})
}

// vAdd is the generic recursive sum of two arbitrary values.
func vAdd(a, b *Value) *Value {
	if a.Rational && b.Rational {
		return NewRational(new(big.Rat).Add(a.Rat, b.Rat))
	}
	switch rankCompare(a, b) {
	case 0: // same anchor (both non-rational, equal rank)
		num := addValuePoly(mulValuePoly(a.Num, denOrOne(b.Den)), mulValuePoly(b.Num, denOrOne(a.Den)))
		den := mulValuePoly(denOrOne(a.Den), denOrOne(b.Den))
		return normalize(NewRationalFunction(a.Anchor, num, den))
	case 1: // a outranks b: lift b as a constant coefficient at a's anchor
		num := addValuePoly(a.Num, mulValuePoly(liftConstant(b), denOrOne(a.Den)))
		return normalize(NewRationalFunction(a.Anchor, num, a.Den))
	default: // b outranks a
		num := addValuePoly(b.Num, mulValuePoly(liftConstant(a), denOrOne(b.Den)))
		return normalize(NewRationalFunction(b.Anchor, num, b.Den))
	}
}

func vNeg(a *Value) *Value {
	if a.Rational {
		return NewRational(new(big.Rat).Neg(a.Rat))
	}
	return normalize(NewRationalFunction(a.Anchor, negValuePoly(a.Num), a.Den))
}

func vSub(a, b *Value) *Value { return vAdd(a, vNeg(b)) }

// valueInv returns 1/a, or an error if a is (determined to be) zero, at
// the given precision/cancellation token. Manager.Inv and vInv both
// recompose through this.
func valueInv(a *Value, prec uint, tok *checkpoint.Token) (*Value, error) {
	sign, err := DetermineSign(a, prec, tok)
	if err != nil {
		return nil, err
	}
	if sign == 0 {
		return nil, ErrDivisionByZero
	}
	if a.Rational {
		return NewRational(new(big.Rat).Inv(a.Rat)), nil
	}
	return normalize(NewRationalFunction(a.Anchor, denOrOne(a.Den), a.Num)), nil
}

// vInv is valueInv at the package's default precision, uncancellable:
// used by the value-coefficient polynomial arithmetic in poly.go (gcd
// reduction, GCDMonic's monic normalization), which operates below the
// level a checkpoint.Token is threaded.
func vInv(a *Value) (*Value, error) { return valueInv(a, defaultNormalizePrec, nil) }

// vDiv is a/b, recomposed from vMul and vInv.
func vDiv(a, b *Value) (*Value, error) {
	inv, err := vInv(b)
	if err != nil {
		return nil, err
	}
	return vMul(a, inv), nil
}

// vMul is the generic recursive product of two arbitrary values.
func vMul(a, b *Value) *Value {
	if a.Rational && b.Rational {
		return NewRational(new(big.Rat).Mul(a.Rat, b.Rat))
	}
	switch rankCompare(a, b) {
	case 0:
		num := mulValuePoly(a.Num, b.Num)
		den := mulValuePoly(denOrOne(a.Den), denOrOne(b.Den))
		return normalize(NewRationalFunction(a.Anchor, num, den))
	case 1:
		num := mulValuePoly(a.Num, liftConstant(b))
		return normalize(NewRationalFunction(a.Anchor, num, a.Den))
	default:
		num := mulValuePoly(b.Num, liftConstant(a))
		return normalize(NewRationalFunction(b.Anchor, num, b.Den))
	}
}

// rankCompare returns 0 if a and b share an anchor, 1 if a outranks b
// (including when b is rational, rank -infinity), -1 if b outranks a.
// Precondition: not both a and b are rational.
func rankCompare(a, b *Value) int {
	ra, rb := a.AnchorRank(), b.AnchorRank()
	switch {
	case ra == nil:
		return -1
	case rb == nil:
		return 1
	case ra.Equal(rb):
		return 0
	case ra.Less(rb):
		return -1
	default:
		return 1
	}
}

// normalize collapses a rational-function value down to a plain rational
// whenever its numerator is syntactically zero, or (after num/den are
// reduced by their gcd) both numerator and denominator are syntactically
// constant rationals; otherwise recomputes its interval. This is the Go
// analogue of the four-rule normalize() in the source engine: stripping
// high-order zero coefficients is handled incrementally by
// normalizeValuePoly and the constructors above, gcd reduction by
// reduceCoprime below, and when the numerator is a constant both are
// scaled by the inverse of the denominator's leading coefficient, so that
// denominator is monic.
func normalize(v *Value) *Value {
	if v.Rational {
		return v
	}
	if v.Num.IsZero() {
		return NewRational(ratZero())
	}
	v.Num, v.Den = reduceCoprime(v.Num, v.Den)
	if v.Den != nil && v.Num.Degree() == 0 && v.Den.Degree() > 0 {
		if inv, err := vInv(v.Den.Coeffs[v.Den.Degree()]); err == nil {
			v.Num = ScalarMulPoly(v.Num, inv)
			v.Den = ScalarMulPoly(v.Den, inv)
		}
	}
	if v.Num.Degree() == 0 && v.Num.Coeffs[0].Rational && (v.Den == nil || (v.Den.Degree() == 0 && v.Den.Coeffs[0].Rational)) {
		num := v.Num.Coeffs[0].Rat
		den := ratOne()
		if v.Den != nil {
			den = v.Den.Coeffs[0].Rat
		}
		return NewRational(new(big.Rat).Quo(num, den))
	}
	_ = updateRFInterval(v, defaultNormalizePrec)
	return v
}

// reduceCoprime divides num and den by their monic gcd, so the pair is
// left in lowest terms (e.g. 2x/x becomes 2/1, x/x becomes 1/1): invariant
// V2. Best-effort: if den is already constant (trivially coprime with
// anything), or computing the gcd needs a sign determination that errors
// or stalls, the pair is returned unreduced rather than propagating a
// failure through normalize, which has no error return.
func reduceCoprime(num, den *Polynomial) (*Polynomial, *Polynomial) {
	if den == nil || den.Degree() <= 0 {
		return num, den
	}
	g, err := GCDMonic(num, den, nil)
	if err != nil || g.Degree() <= 0 {
		return num, den
	}
	q1, r1, err := DivRem(num, g, nil)
	if err != nil || !r1.IsZero() {
		return num, den
	}
	q2, r2, err := DivRem(den, g, nil)
	if err != nil || !r2.IsZero() {
		return num, den
	}
	return q1, q2
}

const defaultNormalizePrec = 24
