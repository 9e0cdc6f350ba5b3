package primality

import (
	"math/big"
	"math/rand"
)

// DefaultWitnesses bounds the false-positive rate at 4^-10.
const DefaultWitnesses = 10

// MillerRabin is a probabilistic test. Bases are drawn from a seeded source
// so a run is reproducible.
type MillerRabin struct {
	witnesses int
	rnd       *rand.Rand
}

func NewMillerRabin(witnesses int, seed int64) *MillerRabin {
	if witnesses < 1 {
		witnesses = DefaultWitnesses
	}
	return &MillerRabin{
		witnesses: witnesses,
		rnd:       rand.New(rand.NewSource(seed)),
	}
}

func (m *MillerRabin) Name() string { return KindMillerRabin }

func (m *MillerRabin) Witnesses() int { return m.witnesses }

func (m *MillerRabin) IsPrime(n *big.Int) bool {
	if n.Cmp(bigOne) <= 0 {
		return false
	}
	if n.Cmp(bigTwo) == 0 || n.Cmp(bigThree) == 0 {
		return true
	}
	if n.Bit(0) == 0 {
		return false
	}

	// n is odd and at least 5 here, so [2, n-2] is never empty.
	nMinusOne := new(big.Int).Sub(n, bigOne)
	d := new(big.Int).Set(nMinusOne)
	r := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		r++
	}

	span := new(big.Int).Sub(n, bigThree)
	a := new(big.Int)
	x := new(big.Int)

	for i := 0; i < m.witnesses; i++ {
		a.Rand(m.rnd, span)
		a.Add(a, bigTwo)

		x.Exp(a, d, n)
		if x.Cmp(bigOne) == 0 || x.Cmp(nMinusOne) == 0 {
			continue
		}

		passed := false
		for j := 0; j < r-1; j++ {
			x.Exp(x, bigTwo, n)
			if x.Cmp(nMinusOne) == 0 {
				passed = true
				break
			}
		}
		if !passed {
			return false
		}
	}
	return true
}
