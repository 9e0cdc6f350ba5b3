package primality

import "math/big"

var (
	bigOne   = big.NewInt(1)
	bigTwo   = big.NewInt(2)
	bigThree = big.NewInt(3)
	bigFour  = big.NewInt(4)
	bigSix   = big.NewInt(6)
)

// Exact is a deterministic trial-division test. It is only practical for
// values up to roughly 2^50.
type Exact struct {
	cache *Cache
}

// NewExact returns an exact tester memoizing into cache, which may be nil.
func NewExact(cache *Cache) *Exact {
	return &Exact{cache: cache}
}

func (e *Exact) Name() string { return KindExact }

func (e *Exact) IsPrime(n *big.Int) bool {
	if n.Cmp(bigOne) <= 0 {
		return false
	}
	if n.Cmp(bigTwo) == 0 || n.Cmp(bigThree) == 0 {
		return true
	}

	r := new(big.Int)
	if r.Mod(n, bigTwo).Sign() == 0 || r.Mod(n, bigThree).Sign() == 0 {
		return false
	}

	if prime, ok := e.cache.Lookup(n); ok {
		return prime
	}

	limit := Isqrt(n)
	i := big.NewInt(5)
	j := new(big.Int)
	for i.Cmp(limit) <= 0 {
		j.Add(i, bigTwo)
		if r.Mod(n, i).Sign() == 0 || r.Mod(n, j).Sign() == 0 {
			e.cache.Store(n, false)
			return false
		}
		i.Add(i, bigSix)
	}

	e.cache.Store(n, true)
	return true
}

// Isqrt returns floor(sqrt(n)) by binary search, without floating point.
// Non-positive inputs return 0.
func Isqrt(n *big.Int) *big.Int {
	if n.Sign() <= 0 {
		return new(big.Int)
	}
	if n.Cmp(bigFour) < 0 {
		return big.NewInt(1)
	}

	left := big.NewInt(1)
	right := new(big.Int).Set(n)
	mid := new(big.Int)
	sq := new(big.Int)

	for left.Cmp(right) <= 0 {
		mid.Add(left, right)
		mid.Rsh(mid, 1)
		sq.Mul(mid, mid)

		switch sq.Cmp(n) {
		case 0:
			return mid
		case -1:
			left.Add(mid, bigOne)
		default:
			right.Sub(mid, bigOne)
		}
	}
	return right
}
