package core

import (
	"math/big"

	"github.com/LiuShellway/rcf/internal/checkpoint"
)

// The polynomial arithmetic in this file operates over arbitrary *Value
// coefficients, recomposing every combination (add, multiply, divide,
// negate) through the same dispatcher vAdd/vSub/vMul/vDiv uses for any
// other pair of values (dispatch.go). This lets DivRem/GCDMonic/
// SquareFree/SturmSeq/SturmTarskiSeq run directly on a rational-function
// value's Num/Den (whose coefficients are themselves arbitrary Values,
// not necessarily rational), which is what the coprimality reduction in
// normalize (dispatch.go) needs. ratCoeff and EvalAt remain rational-only
// (ratCoeff panics on a non-rational coefficient); ratCoeff also backs
// firstNonZero (sign.go). EvalIntervalAt (refine.go) instead uses each
// coefficient's own interval.

func ratCoeff(v *Value) *big.Rat {
	if v == nil {
		return ratZero()
	}
	if !v.Rational {
		panic("core: polynomial arithmetic requires rational coefficients")
	}
	return v.Rat
}

// NormalizePoly trims trailing zero-Value coefficients so the last
// coefficient (if any) is non-zero. Delegates to normalizeValuePoly
// (dispatch.go) rather than duplicating its syntactic-zero trimming rule.
func NormalizePoly(p *Polynomial) *Polynomial {
	return normalizeValuePoly(p)
}

func polyFromRats(cs ...*big.Rat) *Polynomial {
	coeffs := make([]*Value, len(cs))
	for i, c := range cs {
		coeffs[i] = NewRational(c)
	}
	return NormalizePoly(&Polynomial{Coeffs: coeffs})
}

func valuesOf(p *Polynomial) []*Value {
	if p == nil {
		return nil
	}
	out := make([]*Value, len(p.Coeffs))
	copy(out, p.Coeffs)
	return out
}

func allValuesZero(vs []*Value) bool {
	for _, v := range vs {
		if !isValueZero(v) {
			return false
		}
	}
	return true
}

// AddPoly is the exported name for addValuePoly (dispatch.go), which
// already operates over general *Value coefficients.
func AddPoly(a, b *Polynomial) *Polynomial { return addValuePoly(a, b) }

func NegPoly(a *Polynomial) *Polynomial { return negValuePoly(a) }

func SubPoly(a, b *Polynomial) *Polynomial { return AddPoly(a, NegPoly(b)) }

// ScalarMulPoly multiplies every coefficient of a by the value s.
func ScalarMulPoly(a *Polynomial, s *Value) *Polynomial {
	out := make([]*Value, a.Degree()+1)
	for i := range out {
		out[i] = vMul(a.Coeffs[i], s)
	}
	return NormalizePoly(&Polynomial{Coeffs: out})
}

func MulPoly(a, b *Polynomial) *Polynomial { return mulValuePoly(a, b) }

// DivRem computes the unique q, r such that a = q*b + r and deg(r) <
// deg(b), over the field of values (each coefficient combination goes
// through vAdd/vMul/vDiv). b must be non-zero. tok, if non-nil, is
// checked between steps so a pathologically high-degree division can be
// canceled.
func DivRem(a, b *Polynomial, tok *checkpoint.Token) (q, r *Polynomial, err error) {
	b = NormalizePoly(b)
	if b.IsZero() {
		return nil, nil, ErrDivisionByZero
	}
	rem := valuesOf(a)
	lead := b.Coeffs[b.Degree()]
	degB := b.Degree()
	qc := make([]*Value, 0)
	for len(rem)-1 >= degB && !allValuesZero(rem) {
		if tok != nil {
			if cerr := tok.Check(); cerr != nil {
				return nil, nil, cerr
			}
		}
		degR := len(rem) - 1
		for degR >= 0 && isValueZero(rem[degR]) {
			degR--
		}
		if degR < degB {
			break
		}
		coef, derr := vDiv(rem[degR], lead)
		if derr != nil {
			return nil, nil, derr
		}
		shift := degR - degB
		for len(qc) <= shift {
			qc = append(qc, NewRational(ratZero()))
		}
		qc[shift] = coef
		for i := 0; i <= degB; i++ {
			term := vMul(coef, b.Coeffs[i])
			rem[shift+i] = vSub(rem[shift+i], term)
		}
	}
	return NormalizePoly(&Polynomial{Coeffs: qc}), NormalizePoly(&Polynomial{Coeffs: rem}), nil
}

func Rem(a, b *Polynomial, tok *checkpoint.Token) (*Polynomial, error) {
	_, r, err := DivRem(a, b, tok)
	return r, err
}

// SRem is the "signed" pseudo-remainder used by the Sturm-Habicht style
// sequence: -rem(a, b). Sturm sequences conventionally negate the plain
// remainder at each step so sign changes count roots rather than their
// complements.
func SRem(a, b *Polynomial, tok *checkpoint.Token) (*Polynomial, error) {
	r, err := Rem(a, b, tok)
	if err != nil {
		return nil, err
	}
	return NegPoly(r), nil
}

func Derivative(a *Polynomial) *Polynomial {
	if a.Degree() <= 0 {
		return &Polynomial{}
	}
	out := make([]*Value, a.Degree())
	for i := 1; i <= a.Degree(); i++ {
		out[i-1] = vMul(a.Coeffs[i], NewRational(ratFromInt64(int64(i))))
	}
	return NormalizePoly(&Polynomial{Coeffs: out})
}

// GCDMonic computes a monic generator of the ideal (a, b), i.e. the
// classical Euclidean gcd normalized so its leading coefficient is 1.
func GCDMonic(a, b *Polynomial, tok *checkpoint.Token) (*Polynomial, error) {
	a, b = NormalizePoly(a), NormalizePoly(b)
	for !b.IsZero() {
		if tok != nil {
			if err := tok.Check(); err != nil {
				return nil, err
			}
		}
		r, err := Rem(a, b, tok)
		if err != nil {
			return nil, err
		}
		a, b = b, r
	}
	if a.IsZero() {
		return a, nil
	}
	lead := a.Coeffs[a.Degree()]
	inv, err := vInv(lead)
	if err != nil {
		return nil, err
	}
	return ScalarMulPoly(a, inv), nil
}

// SquareFree returns p / gcd(p, p'), the square-free part of p.
func SquareFree(p *Polynomial, tok *checkpoint.Token) (*Polynomial, error) {
	p = NormalizePoly(p)
	if p.Degree() <= 0 {
		return p, nil
	}
	d := Derivative(p)
	g, err := GCDMonic(p, d, tok)
	if err != nil {
		return nil, err
	}
	if g.Degree() <= 0 {
		return p, nil
	}
	q, _, err := DivRem(p, g, tok)
	if err != nil {
		return nil, err
	}
	return q, nil
}

// SturmTarskiSeq builds the generalized Sturm sequence q0=p1, q1=p2,
// q_{i+1} = -rem(q_{i-1}, q_i), terminating at the first constant (or
// zero) polynomial. Unlike SturmSeq, which always starts from p and its
// derivative, this accepts an arbitrary second polynomial, as needed to
// count the roots of p1 at which p2 takes a particular sign.
func SturmTarskiSeq(p1, p2 *Polynomial, tok *checkpoint.Token) ([]*Polynomial, error) {
	p1 = NormalizePoly(p1)
	seq := []*Polynomial{p1, NormalizePoly(p2)}
	for seq[len(seq)-1].Degree() > 0 {
		if tok != nil {
			if err := tok.Check(); err != nil {
				return nil, err
			}
		}
		prev2, prev1 := seq[len(seq)-2], seq[len(seq)-1]
		next, err := SRem(prev2, prev1, tok)
		if err != nil {
			return nil, err
		}
		seq = append(seq, next)
		if next.IsZero() {
			break
		}
	}
	return seq, nil
}

// SturmSeq builds the classical Sturm sequence p0=p, p1=p', p_{i+1} =
// -rem(p_{i-1}, p_i), terminating at the first constant (or zero)
// polynomial: the p2 = p' specialization of SturmTarskiSeq.
func SturmSeq(p *Polynomial, tok *checkpoint.Token) ([]*Polynomial, error) {
	p = NormalizePoly(p)
	return SturmTarskiSeq(p, Derivative(p), tok)
}

// EvalAt evaluates p at the rational point x via Horner's method. Only
// meaningful for polynomials with rational coefficients, e.g. the
// isolating-interval endpoints root isolation would evaluate at; see
// EvalIntervalAt (refine.go) for the interval-valued counterpart used on
// a rational-function value's own Num/Den.
func EvalAt(p *Polynomial, x *big.Rat) *big.Rat {
	acc := ratZero()
	for i := p.Degree(); i >= 0; i-- {
		acc = new(big.Rat).Mul(acc, x)
		acc.Add(acc, ratCoeff(p.Coeffs[i]))
	}
	return acc
}
