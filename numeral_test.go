package rcf

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPiBounds(t *testing.T) {
	t.Parallel()
	m := NewManager()
	pi := m.MkPi()
	three := m.SetInt64(3)
	four := m.SetInt64(4)

	lt, err := three.Lt(pi)
	require.NoError(t, err)
	assert.True(t, lt)

	gt, err := four.Gt(pi)
	require.NoError(t, err)
	assert.True(t, gt)
}

func TestPiDecimalExpansion(t *testing.T) {
	t.Parallel()
	m := NewManager()
	pi := m.MkPi()
	s, err := pi.DisplayDecimal(10)
	require.NoError(t, err)
	assert.Equal(t, "3.1415926535", s[:len("3.1415926535")])
}

func TestSignOfFactoredQuadraticAtPi(t *testing.T) {
	t.Parallel()
	m := NewManager()
	pi := m.MkPi()
	threeLess := pi.Sub(m.SetInt64(3))
	fourLess := pi.Sub(m.SetInt64(4))
	product := threeLess.Mul(fourLess)
	s, err := product.Sign()
	require.NoError(t, err)
	assert.Equal(t, -1, s)
}

func TestEpsilonSign(t *testing.T) {
	t.Parallel()
	m := NewManager()
	eps := m.MkInfinitesimal("eps", 0)
	s, err := eps.Sign()
	require.NoError(t, err)
	assert.Equal(t, 1, s)
}

func TestEpsilonSmallerThanAnyPositiveRational(t *testing.T) {
	t.Parallel()
	m := NewManager()
	eps := m.MkInfinitesimal("eps", 0)
	tiny := m.SetRat(new(big.Rat).SetFrac(big.NewInt(1), new(big.Int).Exp(big.NewInt(10), big.NewInt(100), nil)))
	lt, err := eps.Lt(tiny)
	require.NoError(t, err)
	assert.True(t, lt)
}

func TestEpsilonTimesItsInverseIsOne(t *testing.T) {
	t.Parallel()
	m := NewManager()
	eps := m.MkInfinitesimal("eps", 0)
	inv, err := eps.Inv()
	require.NoError(t, err)
	prod := eps.Mul(inv)
	eq, err := prod.Eq(m.SetInt64(1))
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestPiPlusEpsilonMinusPiEqualsEpsilon(t *testing.T) {
	t.Parallel()
	m := NewManager()
	pi := m.MkPi()
	eps := m.MkInfinitesimal("eps", 0)

	diff := pi.Add(eps).Sub(pi)
	eq, err := diff.Eq(eps)
	require.NoError(t, err)
	assert.True(t, eq)

	s, err := diff.Sign()
	require.NoError(t, err)
	assert.Equal(t, 1, s)
}

func TestInverseEpsilonExceedsHugeRational(t *testing.T) {
	t.Parallel()
	m := NewManager()
	eps := m.MkInfinitesimal("eps", 0)
	invEps, err := eps.Inv()
	require.NoError(t, err)

	huge := m.SetBigInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(100), nil))
	cmp, err := invEps.Compare(huge)
	require.NoError(t, err)
	assert.Equal(t, 1, cmp)
}

func TestPiTimesPiMinusPiTimesPiIsExactlyZero(t *testing.T) {
	t.Parallel()
	m := NewManager()
	pi := m.MkPi()
	lhs := pi.Mul(pi).Sub(pi.Mul(pi))
	zero, err := lhs.IsZero()
	require.NoError(t, err)
	assert.True(t, zero)
	assert.Equal(t, "0", lhs.DisplaySymbolic())
}

func TestDivisionByZeroErrorsThroughPublicAPI(t *testing.T) {
	t.Parallel()
	m := NewManager()
	zero := m.SetInt64(0)
	_, err := zero.Inv()
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestDivByZeroDenominator(t *testing.T) {
	t.Parallel()
	m := NewManager()
	one := m.SetInt64(1)
	zero := m.SetInt64(0)
	_, err := one.Div(zero)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestEvenRootOfNegativeThroughPublicAPI(t *testing.T) {
	t.Parallel()
	m := NewManager()
	neg := m.SetInt64(-9)
	_, err := neg.Root(2)
	assert.ErrorIs(t, err, ErrEvenRootOfNegative)
}

func TestExactSquareRootThroughPublicAPI(t *testing.T) {
	t.Parallel()
	m := NewManager()
	nine := m.SetInt64(9)
	r, err := nine.Root(2)
	require.NoError(t, err)
	eq, err := r.Eq(m.SetInt64(3))
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestIrrationalRootReportsAlgebraicUnsupported(t *testing.T) {
	t.Parallel()
	m := NewManager()
	two := m.SetInt64(2)
	_, err := two.Root(2)
	assert.ErrorIs(t, err, ErrAlgebraicUnsupported)
}

func TestSelectDoesNotEvaluateEitherSign(t *testing.T) {
	t.Parallel()
	m := NewManager()
	a := m.SetInt64(1)
	b := m.SetInt64(2)
	assert.Same(t, a, a.Select(true, b))
	assert.Same(t, b, a.Select(false, b))
}

func TestDisplaySymbolicRendersRationalFunction(t *testing.T) {
	t.Parallel()
	m := NewManager()
	pi := m.MkPi()
	expr := pi.Mul(m.SetInt64(2)).Add(m.SetInt64(1))
	s := expr.DisplaySymbolic()
	assert.Contains(t, s, "pi")
}

func TestDisplayIntervalNarrowsAroundPi(t *testing.T) {
	t.Parallel()
	m := NewManager()
	pi := m.MkPi()
	s, err := pi.DisplayInterval()
	require.NoError(t, err)
	assert.Contains(t, s, "/")
}

func TestIsIntDistinguishesRationalsFromIrrationals(t *testing.T) {
	t.Parallel()
	m := NewManager()
	assert.True(t, m.SetInt64(5).IsInt())
	assert.False(t, m.MkPi().IsInt())
}

func TestSwapExchangesValues(t *testing.T) {
	t.Parallel()
	m := NewManager()
	a := m.SetInt64(7)
	b := m.SetInt64(9)
	a.Swap(b)

	eqA, err := a.Eq(m.SetInt64(9))
	require.NoError(t, err)
	assert.True(t, eqA)

	eqB, err := b.Eq(m.SetInt64(7))
	require.NoError(t, err)
	assert.True(t, eqB)
}

func TestCloneIsIndependentOfSubsequentSwaps(t *testing.T) {
	t.Parallel()
	m := NewManager()
	a := m.SetInt64(7)
	clone := a.Clone()
	a.Swap(m.SetInt64(9))

	eq, err := clone.Eq(m.SetInt64(7))
	require.NoError(t, err)
	assert.True(t, eq)
}
