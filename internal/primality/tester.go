package primality

import (
	"fmt"
	"math/big"
)

const (
	KindMillerRabin = "miller-rabin"
	KindExact       = "exact"
)

// Tester decides primality of non-negative integers.
type Tester interface {
	IsPrime(n *big.Int) bool
	Name() string
}

// New builds a tester by kind. The cache is only used by the exact test.
func New(kind string, witnesses int, seed int64, cache *Cache) (Tester, error) {
	switch kind {
	case "", KindMillerRabin:
		return NewMillerRabin(witnesses, seed), nil
	case KindExact:
		return NewExact(cache), nil
	default:
		return nil, fmt.Errorf("unknown oracle: %s (available: %v)", kind, Kinds())
	}
}

func Kinds() []string {
	return []string{KindMillerRabin, KindExact}
}
