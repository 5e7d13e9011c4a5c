// Package interval implements the binary-rational interval kernel that
// underlies the real closed field value layer: endpoints are arbitrary
// precision rationals, addition/subtraction/multiplication/negation are
// exact, and division is approximate, rounding outward to a caller-chosen
// precision.
//
// The package is the RCF analogue of the mpbq/mpbqi layer in the original
// realclosure engine: endpoints are ordinary [math/big.Rat] values rather
// than a dedicated binary-rational type, since Go's arbitrary-precision
// rational kernel (math/big) already plays the role the specification
// assigns to an external "unbounded-precision rational kernel" collaborator.
package interval

import (
	"fmt"
	"math/big"
)

// Magnitude sentinels, mirroring INT_MIN/INT_MAX use in the source engine:
// MagnitudeZero marks a zero-width (point) interval, MagnitudeInfinite marks
// an interval with an infinite endpoint.
const (
	MagnitudeZero    = int(-1) << 62
	MagnitudeInfinite = int(1) << 62
)

// Interval is a closed-or-open range [Lo, Hi] with rational endpoints.
// LoInf/HiInf mark an endpoint as -infinity/+infinity, in which case the
// corresponding Lo/Hi field is ignored. A point interval has Lo == Hi (by
// value) and both endpoints closed.
type Interval struct {
	Lo, Hi         *big.Rat
	LoOpen, HiOpen bool
	LoInf, HiInf   bool
}

// Full returns the unconstrained interval (-inf, +inf).
func Full() Interval {
	return Interval{LoInf: true, HiInf: true, LoOpen: true, HiOpen: true}
}

// Point returns the degenerate closed interval [q, q].
func Point(q *big.Rat) Interval {
	return Interval{Lo: new(big.Rat).Set(q), Hi: new(big.Rat).Set(q)}
}

// FromInt64 returns the degenerate closed interval [n, n].
func FromInt64(n int64) Interval {
	return Point(big.NewRat(n, 1))
}

// Clone returns a deep copy of i.
func (i Interval) Clone() Interval {
	out := i
	if i.Lo != nil {
		out.Lo = new(big.Rat).Set(i.Lo)
	}
	if i.Hi != nil {
		out.Hi = new(big.Rat).Set(i.Hi)
	}
	return out
}

// ContainsZero reports whether i contains the rational zero, open or closed.
func (i Interval) ContainsZero() bool {
	if !i.LoInf {
		switch i.Lo.Sign() {
		case 1:
			return false
		case 0:
			if i.LoOpen {
				return false
			}
		}
	}
	if !i.HiInf {
		switch i.Hi.Sign() {
		case -1:
			return false
		case 0:
			if i.HiOpen {
				return false
			}
		}
	}
	return true
}

// IsPositive reports whether every point of i is strictly positive.
func (i Interval) IsPositive() bool {
	return !i.LoInf && (i.Lo.Sign() > 0 || (i.Lo.Sign() == 0 && i.LoOpen))
}

// IsNegative reports whether every point of i is strictly negative.
func (i Interval) IsNegative() bool {
	return !i.HiInf && (i.Hi.Sign() < 0 || (i.Hi.Sign() == 0 && i.HiOpen))
}

// IsOpen reports whether both endpoints are open (possibly infinite).
func (i Interval) IsOpen() bool {
	return i.LoOpen && i.HiOpen
}

// Sign returns the common sign (-1, 0 or +1) of every point in i, and ok is
// false if i straddles (or touches) zero and no single sign applies.
func (i Interval) Sign() (sign int, ok bool) {
	if i.IsPositive() {
		return 1, true
	}
	if i.IsNegative() {
		return -1, true
	}
	if !i.LoInf && !i.HiInf && !i.LoOpen && !i.HiOpen && i.Lo.Sign() == 0 && i.Hi.Sign() == 0 {
		return 0, true
	}
	return 0, false
}

// Magnitude returns ceil(log2(width)); MagnitudeZero for a zero-width
// interval and MagnitudeInfinite when either endpoint is infinite.
func (i Interval) Magnitude() int {
	if i.LoInf || i.HiInf {
		return MagnitudeInfinite
	}
	w := new(big.Rat).Sub(i.Hi, i.Lo)
	if w.Sign() == 0 {
		return MagnitudeZero
	}
	return ceilLog2(w)
}

// ceilLog2 returns the smallest m such that w <= 2^m, for w > 0.
func ceilLog2(w *big.Rat) int {
	num, den := w.Num(), w.Denom()
	m := num.BitLen() - den.BitLen()
	// num.BitLen()-den.BitLen() approximates log2(w) within 1; refine exactly
	// by comparing w against 2^m.
	for {
		cmp := compareToPow2(num, den, m)
		if cmp <= 0 {
			if compareToPow2(num, den, m-1) <= 0 {
				m--
				continue
			}
			return m
		}
		m++
	}
}

// compareToPow2 compares num/den against 2^m, returning -1, 0 or +1.
func compareToPow2(num, den *big.Int, m int) int {
	lhs := new(big.Int).Set(num)
	rhs := new(big.Int).Set(den)
	if m >= 0 {
		rhs.Lsh(rhs, uint(m))
	} else {
		lhs.Lsh(lhs, uint(-m))
	}
	return lhs.Cmp(rhs)
}

// Neg returns -i.
func (i Interval) Neg() Interval {
	out := Interval{LoOpen: i.HiOpen, HiOpen: i.LoOpen, LoInf: i.HiInf, HiInf: i.LoInf}
	if !i.HiInf {
		out.Lo = new(big.Rat).Neg(i.Hi)
	}
	if !i.LoInf {
		out.Hi = new(big.Rat).Neg(i.Lo)
	}
	return out
}

// Add returns i+j, exactly.
func (i Interval) Add(j Interval) Interval {
	out := Interval{
		LoOpen: i.LoOpen || j.LoOpen,
		HiOpen: i.HiOpen || j.HiOpen,
		LoInf:  i.LoInf || j.LoInf,
		HiInf:  i.HiInf || j.HiInf,
	}
	if !out.LoInf {
		out.Lo = new(big.Rat).Add(i.Lo, j.Lo)
	}
	if !out.HiInf {
		out.Hi = new(big.Rat).Add(i.Hi, j.Hi)
	}
	return out
}

// Sub returns i-j, exactly.
func (i Interval) Sub(j Interval) Interval {
	return i.Add(j.Neg())
}

// Mul returns i*j, exactly, by taking the extremal product of the four
// corner combinations. Both operands finite is the common case and is
// computed precisely; if either operand has an infinite endpoint, the
// result falls back to sign-based reasoning, which is conservative (sound
// but not always tightest) when an operand straddles zero.
func (i Interval) Mul(j Interval) Interval {
	if !i.LoInf && !i.HiInf && !j.LoInf && !j.HiInf {
		return finiteMul(i, j)
	}
	return mulWithInfinities(i, j)
}

func finiteMul(i, j Interval) Interval {
	type corner struct {
		v    *big.Rat
		open bool
	}
	corners := [4]corner{
		{new(big.Rat).Mul(i.Lo, j.Lo), i.LoOpen || j.LoOpen},
		{new(big.Rat).Mul(i.Lo, j.Hi), i.LoOpen || j.HiOpen},
		{new(big.Rat).Mul(i.Hi, j.Lo), i.HiOpen || j.LoOpen},
		{new(big.Rat).Mul(i.Hi, j.Hi), i.HiOpen || j.HiOpen},
	}
	lo, hi := corners[0], corners[0]
	for _, c := range corners[1:] {
		if c.v.Cmp(lo.v) < 0 {
			lo = c
		}
		if c.v.Cmp(hi.v) > 0 {
			hi = c
		}
	}
	return Interval{Lo: lo.v, Hi: hi.v, LoOpen: lo.open, HiOpen: hi.open}
}

// mulWithInfinities handles a product where at least one operand has an
// unbounded endpoint. When both operands have a determinate, nonzero sign
// (entirely positive or entirely negative) the result is exact; otherwise
// it conservatively widens to the full line, which remains a sound
// enclosure.
func mulWithInfinities(i, j Interval) Interval {
	si, oki := i.Sign()
	sj, okj := j.Sign()
	if !oki || !okj || si == 0 || sj == 0 {
		return Full()
	}
	bound := func(a Interval, positive bool) *big.Rat {
		if positive {
			if a.LoInf {
				return nil
			}
			return a.Lo
		}
		if a.HiInf {
			return nil
		}
		return a.Hi
	}
	bi := bound(i, si > 0)
	bj := bound(j, sj > 0)
	if bi == nil || bj == nil {
		// one of the two near-zero finite bounds is itself unbounded
		if si*sj > 0 {
			return Interval{LoInf: false, Lo: big.NewRat(0, 1), HiInf: true, LoOpen: true, HiOpen: true}
		}
		return Interval{LoInf: true, HiInf: false, Hi: big.NewRat(0, 1), LoOpen: true, HiOpen: true}
	}
	b := new(big.Rat).Mul(bi, bj)
	// the finite endpoint is open if either factor's near-zero bound is open
	open := (si > 0 && i.LoOpen) || (si < 0 && i.HiOpen) || (sj > 0 && j.LoOpen) || (sj < 0 && j.HiOpen)
	if si*sj > 0 {
		return Interval{Lo: b, LoInf: false, HiInf: true, LoOpen: open, HiOpen: true}
	}
	return Interval{Hi: b, HiInf: false, LoInf: true, LoOpen: true, HiOpen: open}
}

// Div returns an enclosure of i/j whose finite endpoints are rounded
// outward to multiples of 2^-prec. j must be finite and exclude zero (an
// open endpoint at zero is allowed, and makes the quotient unbounded on
// that side); violating this precondition is a
// programmer error and panics, mirroring an assertion failure in the
// source engine (every division site in the RCF value layer divides by an
// already-bounded, sign-determined denominator interval).
func (i Interval) Div(j Interval, prec uint) Interval {
	if j.LoInf || j.HiInf {
		panic("interval: division by an unbounded interval is not supported")
	}
	if j.ContainsZero() {
		panic("interval: division by an interval containing zero")
	}
	touchesZero := j.Lo.Sign() == 0 || j.Hi.Sign() == 0
	if !i.LoInf && !i.HiInf && !touchesZero {
		candidates := [4]*big.Rat{
			new(big.Rat).Quo(i.Lo, j.Lo),
			new(big.Rat).Quo(i.Lo, j.Hi),
			new(big.Rat).Quo(i.Hi, j.Lo),
			new(big.Rat).Quo(i.Hi, j.Hi),
		}
		lo, hi := candidates[0], candidates[0]
		for _, c := range candidates[1:] {
			if c.Cmp(lo) < 0 {
				lo = c
			}
			if c.Cmp(hi) > 0 {
				hi = c
			}
		}
		return Interval{
			Lo:     RoundDyadic(lo, prec, false),
			Hi:     RoundDyadic(hi, prec, true),
			LoOpen: true,
			HiOpen: true,
		}
	}
	// i has an infinite endpoint, or j has an open endpoint at zero:
	// compute the exact reciprocal of the divisor (unbounded on the side
	// of a zero endpoint) and fall back to sign-based Mul.
	one := big.NewRat(1, 1)
	var recip Interval
	switch {
	case j.Lo.Sign() == 0:
		recip = Interval{Lo: new(big.Rat).Quo(one, j.Hi), LoOpen: j.HiOpen, HiInf: true, HiOpen: true}
	case j.Hi.Sign() == 0:
		recip = Interval{LoInf: true, LoOpen: true, Hi: new(big.Rat).Quo(one, j.Lo), HiOpen: j.LoOpen}
	default:
		recip = Interval{Lo: new(big.Rat).Quo(one, j.Hi), Hi: new(big.Rat).Quo(one, j.Lo), LoOpen: j.HiOpen, HiOpen: j.LoOpen}
	}
	out := i.Mul(recip)
	if !out.LoInf {
		out.Lo = RoundDyadic(out.Lo, prec, false)
	}
	if !out.HiInf {
		out.Hi = RoundDyadic(out.Hi, prec, true)
	}
	out.LoOpen, out.HiOpen = true, true
	return out
}

// RoundDyadic rounds v to the nearest multiple of 2^-prec, rounding up if
// roundUp is set, otherwise down (floor).
func RoundDyadic(v *big.Rat, prec uint, roundUp bool) *big.Rat {
	scale := new(big.Int).Lsh(big.NewInt(1), prec)
	num := new(big.Int).Mul(v.Num(), scale)
	den := v.Denom()
	q, r := new(big.Int).QuoRem(num, den, new(big.Int))
	if r.Sign() != 0 {
		one := big.NewInt(1)
		if num.Sign() > 0 {
			if roundUp {
				q.Add(q, one)
			}
		} else {
			if !roundUp {
				q.Sub(q, one)
			}
		}
	}
	return new(big.Rat).SetFrac(q, scale)
}

// String renders i using the bracket/parenthesis convention for
// open/closed endpoints, e.g. "(3/2, 2]" or "[-oo, 5)".
func (i Interval) String() string {
	open := "["
	if i.LoOpen {
		open = "("
	}
	close_ := "]"
	if i.HiOpen {
		close_ = ")"
	}
	lo := "-oo"
	if !i.LoInf {
		lo = i.Lo.RatString()
	}
	hi := "+oo"
	if !i.HiInf {
		hi = i.Hi.RatString()
	}
	return fmt.Sprintf("%s%s, %s%s", open, lo, hi, close_)
}
