package core

import (
	"math/big"

	"github.com/LiuShellway/rcf/internal/interval"
)

// PiRefiner and ERefiner are the two bundled rational-interval kernels for
// the transcendentals pi and e, each satisfying the Refiner contract: for
// a requested precision k, return a rational interval of width at most
// 2^-k strictly enclosing the true value. Both use plain big.Rat exact
// arithmetic (math/big is the designated external rational kernel
// collaborator for this package, see DESIGN.md) and grow the number of
// series terms with k rather than ever rounding intermediate sums.

// arctanBound computes a partial sum of the Leibniz arctan series
// arctan(1/x) = sum_{n=0}^{terms-1} (-1)^n * x^-(2n+1) / (2n+1), plus an
// exact bound on the remainder (valid because the series is alternating
// with strictly decreasing terms for x > 1).
func arctanBound(x int64, terms int) (sum, bound *big.Rat) {
	sum = new(big.Rat)
	xr := big.NewRat(x, 1)
	pow := new(big.Rat).Set(xr) // x^(2n+1), starts at x^1
	x2 := new(big.Rat).Mul(xr, xr)
	for n := 0; n < terms; n++ {
		term := new(big.Rat).Inv(pow)
		term.Quo(term, big.NewRat(int64(2*n+1), 1))
		if n%2 == 0 {
			sum.Add(sum, term)
		} else {
			sum.Sub(sum, term)
		}
		pow.Mul(pow, x2)
	}
	next := new(big.Rat).Inv(pow)
	next.Quo(next, big.NewRat(int64(2*terms+1), 1))
	return sum, next
}

func machinPi(terms int) (sum, bound *big.Rat) {
	s5, b5 := arctanBound(5, terms)
	s239, b239 := arctanBound(239, terms)
	sum = new(big.Rat).Mul(s5, big.NewRat(16, 1))
	t := new(big.Rat).Mul(s239, big.NewRat(4, 1))
	sum.Sub(sum, t)
	bound = new(big.Rat).Mul(b5, big.NewRat(16, 1))
	b := new(big.Rat).Mul(b239, big.NewRat(4, 1))
	bound.Add(bound, b)
	return sum, bound
}

// PiRefiner implements Refiner for pi via Machin's formula
// pi = 16*arctan(1/5) - 4*arctan(1/239).
func PiRefiner(k uint) interval.Interval {
	terms := 4
	for {
		sum, bound := machinPi(terms)
		// the returned interval is 2*bound wide
		if magnitudeOf(bound) <= -int(k)-1 {
			lo := new(big.Rat).Sub(sum, bound)
			hi := new(big.Rat).Add(sum, bound)
			return interval.Interval{Lo: lo, Hi: hi, LoOpen: true, HiOpen: true}
		}
		terms *= 2
	}
}

// ERefiner implements Refiner for e via its Taylor series at 0, using the
// standard remainder bound e - sum_{i=0}^{N} 1/i! < 3/(N+1)!.
func ERefiner(k uint) interval.Interval {
	n := 4
	for {
		sum := new(big.Rat)
		fact := big.NewInt(1)
		for i := 0; i <= n; i++ {
			if i > 0 {
				fact.Mul(fact, big.NewInt(int64(i)))
			}
			term := new(big.Rat).SetFrac(big.NewInt(1), fact)
			sum.Add(sum, term)
		}
		factNext := new(big.Int).Mul(fact, big.NewInt(int64(n+1)))
		bound := new(big.Rat).SetFrac(big.NewInt(3), factNext)
		if magnitudeOf(bound) <= -int(k) {
			hi := new(big.Rat).Add(sum, bound)
			return interval.Interval{Lo: sum, Hi: hi, LoOpen: true, HiOpen: true}
		}
		n *= 2
	}
}

// magnitudeOf computes ceil(log2(q)) for a positive rational q, as the
// Magnitude of the interval [0, q].
func magnitudeOf(q *big.Rat) int {
	return interval.Interval{Lo: new(big.Rat), Hi: q}.Magnitude()
}
