// Package palindrome enumerates binary palindromes of a fixed bit-length.
//
// A palindrome of length n is fully determined by its first ceil(n/2)
// bits; the remaining bits mirror them, sharing the middle bit when n is
// odd. Enumeration order is the numeric order of that first half.
package palindrome

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MaxLength is the longest bit-length whose palindrome count fits a uint64.
const MaxLength = 126

// ErrInvalidLength is returned for lengths outside [1, MaxLength].
var ErrInvalidLength = errors.New("palindrome: invalid bit-length")

func validate(n int) error {
	if n < 1 || n > MaxLength {
		return fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidLength, n, MaxLength)
	}
	return nil
}

// HalfLength returns ceil(n/2).
func HalfLength(n int) int {
	return (n + 1) / 2
}

// Count returns the number of palindromes of length n, 2^ceil(n/2).
func Count(n int) (uint64, error) {
	if err := validate(n); err != nil {
		return 0, err
	}
	return 1 << uint(HalfLength(n)), nil
}

// Build mirrors a first half into a palindrome of length n.
func Build(firstHalf string, n int) string {
	var b strings.Builder
	b.Grow(n)
	b.WriteString(firstHalf)
	tail := firstHalf
	if n%2 == 1 {
		tail = firstHalf[:len(firstHalf)-1]
	}
	b.WriteString(Reverse(tail))
	return b.String()
}

// Nth returns the i-th palindrome of length n in generation order: the
// first half is i in binary, zero padded to HalfLength(n). The caller keeps
// n valid and i below Count(n).
func Nth(n int, i uint64) string {
	half := HalfLength(n)
	digits := strconv.FormatUint(i, 2)
	return Build(strings.Repeat("0", half-len(digits))+digits, n)
}

// Each calls fn with every palindrome of length n in order. It stops at the
// first error returned by fn.
func Each(n int, fn func(string) error) error {
	count, err := Count(n)
	if err != nil {
		return err
	}
	for i := uint64(0); i < count; i++ {
		if err := fn(Nth(n, i)); err != nil {
			return err
		}
	}
	return nil
}

// Generate returns every palindrome of length n.
func Generate(n int) ([]string, error) {
	count, err := Count(n)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, count)
	err = Each(n, func(s string) error {
		out = append(out, s)
		return nil
	})
	return out, err
}

// Reverse reverses an ASCII string.
func Reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// IsPalindrome reports whether s equals its reverse.
func IsPalindrome(s string) bool {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		if s[i] != s[j] {
			return false
		}
	}
	return true
}
