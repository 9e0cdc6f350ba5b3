// Package twin filters binary palindromes down to twin-prime middles.
//
// A palindrome with value v qualifies when v-1 and v+1 are both prime
// according to a [primality.Tester]. [ProcessLength] runs the filter over
// every palindrome of one bit-length and folds the qualifiers into an
// [Accumulator] owned by the caller.
package twin
