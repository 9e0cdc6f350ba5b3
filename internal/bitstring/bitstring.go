// Package bitstring converts between binary digit strings and arbitrary
// precision integers.
//
// Strings are read most significant bit first. The empty string is zero.
package bitstring

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrFormat matches every *FormatError via errors.Is.
var ErrFormat = errors.New("bitstring: invalid binary digit")

// FormatError reports the first character outside {0,1}.
type FormatError struct {
	Input string
	Pos   int
	Char  rune
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("bitstring: invalid binary character %q at position %d in %q", e.Char, e.Pos, e.Input)
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// Parse returns the value of s. Any character other than '0' or '1' yields
// a *FormatError.
func Parse(s string) (*big.Int, error) {
	v := new(big.Int)
	for i, c := range s {
		v.Lsh(v, 1)
		switch c {
		case '1':
			v.SetBit(v, 0, 1)
		case '0':
		default:
			return nil, &FormatError{Input: s, Pos: i, Char: c}
		}
	}
	return v, nil
}

// MustParse is Parse for constants; it panics on malformed input.
func MustParse(s string) *big.Int {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Format renders v in binary, left padded with zeros to at least width
// characters. Zero has no significant digits, so Format(0, 0) is "", which
// keeps Format(Parse(s), len(s)) == s for every binary s. Negative values
// are rendered with a leading '-'.
func Format(v *big.Int, width int) string {
	if v.Sign() < 0 {
		return "-" + Format(new(big.Int).Neg(v), width)
	}
	s := ""
	if v.Sign() > 0 {
		s = v.Text(2)
	}
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	return s
}

// TrimStart strips leading zeros.
func TrimStart(s string) string { return strings.TrimLeft(s, "0") }

// TrimBoth strips leading and trailing zeros.
func TrimBoth(s string) string { return strings.Trim(s, "0") }
