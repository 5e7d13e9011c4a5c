package core

import (
	"github.com/LiuShellway/rcf/internal/checkpoint"
)

// firstNonZero returns the sign of the lowest-degree non-zero coefficient
// of p, i.e. the sign p(eps) takes as eps -> 0+. ok is false for the zero
// polynomial.
func firstNonZero(p *Polynomial) (sign int, ok bool) {
	if p == nil {
		return 0, false
	}
	for _, c := range p.Coeffs {
		s := ratCoeff(c).Sign()
		if s != 0 {
			return s, true
		}
	}
	return 0, false
}

// determineInfinitesimalSign resolves the sign of num(eps)/den(eps) as
// eps -> 0+ by comparing the signs of the lowest-order non-zero terms of
// num and den, rather than by any numeric interval refinement: eps has no
// numeric magnitude to refine toward, only an algebraic relationship to
// the rationals (0 < eps < every positive rational). This replaces the
// source engine's interval-bound-nudging technique (add_infinitesimal)
// with a direct symbolic comparison; see DESIGN.md.
func determineInfinitesimalSign(v *Value) (int, error) {
	numSign, numOk := firstNonZero(v.Num)
	if !numOk {
		return 0, nil
	}
	if v.Den == nil {
		return numSign, nil
	}
	denSign, denOk := firstNonZero(v.Den)
	if !denOk {
		return 0, ErrDivisionByZero
	}
	return numSign * denSign, nil
}

// DetermineSign resolves the sign of v, refining its interval as needed.
// Rational values resolve immediately; transcendental-anchored values
// refine until the enclosure excludes zero (guaranteed to terminate in
// finitely many steps, since distinct transcendentals are algebraically
// independent, modulo a misbehaving custom Refiner, reported as
// ErrRefinementStalled); infinitesimal-anchored values resolve
// symbolically via determineInfinitesimalSign; algebraic-anchored values
// are not implemented.
func DetermineSign(v *Value, prec uint, tok *checkpoint.Token) (int, error) {
	if v.Rational {
		return v.Rat.Sign(), nil
	}
	switch v.Anchor.Kind {
	case Infinitesimal:
		if err := updateRFInterval(v, prec); err != nil {
			return 0, err
		}
		return determineInfinitesimalSign(v)
	case Algebraic:
		return 0, ErrAlgebraicUnsupported
	}
	if err := updateRFInterval(v, prec); err != nil {
		return 0, err
	}
	if s, ok := v.Interval.Sign(); ok {
		return s, nil
	}
	k := v.Anchor.refineStep
	for step := 0; step < maxRefineSteps; step++ {
		if tok != nil {
			if err := tok.Check(); err != nil {
				return 0, err
			}
		}
		k++
		if err := refineTranscendental(v.Anchor, k); err != nil {
			return 0, err
		}
		if err := updateRFInterval(v, prec); err != nil {
			return 0, err
		}
		if s, ok := v.Interval.Sign(); ok {
			return s, nil
		}
	}
	return 0, ErrRefinementStalled
}
