package core

import "math/big"

func ratZero() *big.Rat { return new(big.Rat) }

func ratOne() *big.Rat { return big.NewRat(1, 1) }

func ratFromInt64(n int64) *big.Rat { return big.NewRat(n, 1) }

func ratIsZero(q *big.Rat) bool { return q.Sign() == 0 }

func ratEqual(a, b *big.Rat) bool { return a.Cmp(b) == 0 }
