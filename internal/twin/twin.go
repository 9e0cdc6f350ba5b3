package twin

import (
	"fmt"
	"math/big"
	"sort"
	"strconv"

	"github.com/san-kum/twinpal/internal/bitstring"
	"github.com/san-kum/twinpal/internal/primality"
)

var one = big.NewInt(1)

// Middle is a value v with v-1 and v+1 both prime, and the palindrome it
// was found as.
type Middle struct {
	Value *big.Int
	Bits  string
}

// Qualifies reports whether the palindrome bits is a twin-prime middle.
// Malformed input returns an error wrapping bitstring.ErrFormat.
func Qualifies(t primality.Tester, bits string) (Middle, bool, error) {
	v, err := bitstring.Parse(bits)
	if err != nil {
		return Middle{}, false, fmt.Errorf("palindrome %q: %w", bits, err)
	}

	below := new(big.Int).Sub(v, one)
	if !t.IsPrime(below) {
		return Middle{}, false, nil
	}
	above := new(big.Int).Add(v, one)
	if !t.IsPrime(above) {
		return Middle{}, false, nil
	}
	return Middle{Value: v, Bits: bits}, true, nil
}

// Accumulator collects middles across bit-lengths, keyed by value. Adding a
// value again replaces the stored bit-string.
type Accumulator struct {
	byValue map[string]Middle
}

func NewAccumulator() *Accumulator {
	return &Accumulator{byValue: make(map[string]Middle)}
}

func (a *Accumulator) Add(m Middle) {
	a.byValue[m.Value.String()] = m
}

func (a *Accumulator) Len() int { return len(a.byValue) }

// Middles returns the collected middles in no particular order.
func (a *Accumulator) Middles() []Middle {
	out := make([]Middle, 0, len(a.byValue))
	for _, m := range a.byValue {
		out = append(out, m)
	}
	return out
}

// Contains reports whether v has been collected.
func (a *Accumulator) Contains(v *big.Int) bool {
	_, ok := a.byValue[v.String()]
	return ok
}

// LengthStat summarises one bit-length.
type LengthStat struct {
	Length     int     `json:"length"`
	Candidates int     `json:"candidates"`
	Qualified  int     `json:"qualified"`
	Fraction   float64 `json:"fraction"`
}

// Proportions maps bit-length to the fraction of its palindromes that
// qualified.
type Proportions map[int]float64

// Lengths returns the recorded lengths in increasing order.
func (p Proportions) Lengths() []int {
	out := make([]int, 0, len(p))
	for n := range p {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// Series returns the fractions in length order.
func (p Proportions) Series() []float64 {
	lengths := p.Lengths()
	out := make([]float64, len(lengths))
	for i, n := range lengths {
		out[i] = p[n]
	}
	return out
}

// FormatProportion renders one "length,fraction" record.
func FormatProportion(length int, fraction float64) string {
	return strconv.Itoa(length) + "," + strconv.FormatFloat(fraction, 'g', -1, 64)
}
