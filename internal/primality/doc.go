// Package primality decides whether arbitrary precision integers are prime.
//
// Two interchangeable [Tester] implementations are provided:
//
//   - [Exact]: trial division by 6k±1 up to the integer square root,
//     memoized in an explicit [Cache]
//   - [MillerRabin]: probabilistic test with a configurable witness count;
//     a composite passes k rounds with probability at most 4^-k
//
// # Thread Safety
//
// [Cache] is safe for concurrent use. [MillerRabin] owns a math/rand source
// and is NOT; give each goroutine its own instance.
package primality
