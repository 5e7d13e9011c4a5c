package core

import (
	"fmt"
	"math/big"
	"strings"
)

// DisplaySymbolic renders v as an exact algebraic expression: a bare
// rational, or (num)/(den) with num and den written as polynomials in the
// name of v's anchor extension, recursing into any lower-rank coefficient
// values. This is the Go analogue of the source engine's symbolic
// display() — it never loses precision, unlike DisplayDecimal.
func (m *Manager) DisplaySymbolic(v *Value) string { return DisplaySymbolic(v) }

// DisplaySymbolic is the free-function form of (*Manager).DisplaySymbolic;
// it needs no Manager state, since rendering an already-built Value tree
// never refines or mutates it.
func DisplaySymbolic(v *Value) string {
	if v.Rational {
		return v.Rat.RatString()
	}
	numStr := polyValueString(v.Num, v.Anchor.String())
	if v.Den == nil {
		return numStr
	}
	return fmt.Sprintf("(%s)/(%s)", numStr, polyValueString(v.Den, v.Anchor.String()))
}

func polyValueString(p *Polynomial, varName string) string {
	if p.IsZero() {
		return "0"
	}
	var terms []string
	for i := p.Degree(); i >= 0; i-- {
		c := p.Coeffs[i]
		if isValueZero(c) {
			continue
		}
		terms = append(terms, termString(c, varName, i))
	}
	if len(terms) == 0 {
		return "0"
	}
	return strings.Join(terms, " + ")
}

func termString(c *Value, varName string, degree int) string {
	coeffStr := ""
	isOne := c.Rational && ratEqual(c.Rat, ratOne())
	if !isOne || degree == 0 {
		coeffStr = displayLeaf(c)
	}
	switch {
	case degree == 0:
		return coeffStr
	case degree == 1:
		if coeffStr == "" {
			return varName
		}
		return coeffStr + "*" + varName
	default:
		if coeffStr == "" {
			return fmt.Sprintf("%s^%d", varName, degree)
		}
		return fmt.Sprintf("%s*%s^%d", coeffStr, varName, degree)
	}
}

func displayLeaf(c *Value) string {
	s := DisplaySymbolic(c)
	if c.Rational && !strings.Contains(s, "/") {
		return s
	}
	return "(" + s + ")"
}

// DisplayInterval renders v's current best-known enclosure using the
// refined-to-MinMagnitude policy; it never touches v's saved interval
// permanently.
func (m *Manager) DisplayInterval(v *Value) (string, error) {
	iv, err := m.EnsureInterval(v)
	if err != nil {
		return "", err
	}
	return iv.String(), nil
}

// DisplayDecimal renders v's decimal expansion to the requested number of
// digits after the radix point, truncated toward zero. A non-rational v is
// first refined until its interval's Magnitude is at most
// -((digits+4)*4+8), and the digits are taken from that interval's
// midpoint. The digit extraction (scale by 10^digits, integer-divide)
// follows a rational-formatting utility this package's ancestry carried
// for presenting big.Rat amounts; see DESIGN.md.
func (m *Manager) DisplayDecimal(v *Value, digits int) (string, error) {
	if v.Rational {
		return decimalString(v.Rat, digits), nil
	}
	guardBits := (digits+4)*4 + 8
	var mid *big.Rat
	err := m.WithScope(func(ctx *saveCtx) error {
		if err := ctx.ensureMagnitude(v, -guardBits, m.params.InitialPrecision, &m.tok); err != nil {
			return err
		}
		mid = new(big.Rat).Add(v.Interval.Lo, v.Interval.Hi)
		mid.Quo(mid, big.NewRat(2, 1))
		return nil
	})
	if err != nil {
		return "", err
	}
	return decimalString(mid, digits), nil
}

func bigPow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// roundHalfToEven rounds q to digits decimal places, ties resolved toward
// the nearest even final digit.
func roundHalfToEven(q *big.Rat, digits int) *big.Int {
	scale := bigPow10(digits)
	numerator := new(big.Int).Mul(q.Num(), scale)
	quotient, remainder := new(big.Int).QuoRem(numerator, q.Denom(), new(big.Int))
	twice := new(big.Int).Abs(new(big.Int).Mul(remainder, big.NewInt(2)))
	cmp := twice.Cmp(q.Denom())
	roundAway := cmp > 0 || (cmp == 0 && quotient.Bit(0) == 1)
	if roundAway {
		if numerator.Sign() < 0 {
			quotient.Sub(quotient, big.NewInt(1))
		} else {
			quotient.Add(quotient, big.NewInt(1))
		}
	}
	return quotient
}

func decimalString(q *big.Rat, digits int) string {
	if digits < 0 {
		digits = 0
	}
	scaled := new(big.Int).Quo(new(big.Int).Mul(q.Num(), bigPow10(digits)), q.Denom())
	neg := scaled.Sign() < 0
	scaled.Abs(scaled)
	s := scaled.String()
	for len(s) <= digits {
		s = "0" + s
	}
	var out string
	if digits == 0 {
		out = s
	} else {
		intPart := s[:len(s)-digits]
		fracPart := s[len(s)-digits:]
		out = intPart + "." + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out
}
