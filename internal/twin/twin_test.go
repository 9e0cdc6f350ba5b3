package twin

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/san-kum/twinpal/internal/bitstring"
	"github.com/san-kum/twinpal/internal/primality"
)

func exactFactory(cache *primality.Cache) TesterFactory {
	return func(int) primality.Tester { return primality.NewExact(cache) }
}

func TestQualifies(t *testing.T) {
	tester := primality.NewExact(nil)
	tests := []struct {
		bits string
		want bool
	}{
		{"0110", true},  // 6: 5 and 7
		{"1001", false}, // 9: 8 and 10
		{"0000", false},
		{"1111", false}, // 15: 14 and 16
		{"100", true},   // 4: 3 and 5
		{"11110", true},  // 30: 29 and 31
	}

	for _, tt := range tests {
		m, ok, err := Qualifies(tester, tt.bits)
		if err != nil {
			t.Fatalf("Qualifies(%q): %v", tt.bits, err)
		}
		if ok != tt.want {
			t.Errorf("Qualifies(%q) = %v, want %v", tt.bits, ok, tt.want)
		}
		if ok && m.Bits != tt.bits {
			t.Errorf("Qualifies(%q) bits = %q", tt.bits, m.Bits)
		}
	}
}

func TestQualifiesFormatError(t *testing.T) {
	_, _, err := Qualifies(primality.NewExact(nil), "01a0")
	if !errors.Is(err, bitstring.ErrFormat) {
		t.Fatalf("error = %v, want ErrFormat", err)
	}
	if got := err.Error(); !strings.HasPrefix(got, `palindrome "01a0"`) {
		t.Errorf("error %q should name the palindrome", got)
	}
}

func TestProcessLength4(t *testing.T) {
	acc := NewAccumulator()
	stat, err := ProcessLength(context.Background(), acc, 4, exactFactory(nil), 1)
	if err != nil {
		t.Fatal(err)
	}

	if stat.Candidates != 4 || stat.Qualified != 1 {
		t.Fatalf("stat = %+v, want 4 candidates 1 qualified", stat)
	}
	if stat.Fraction != 0.25 {
		t.Errorf("fraction = %v, want 0.25", stat.Fraction)
	}
	if !acc.Contains(big.NewInt(6)) {
		t.Error("6 should qualify")
	}
	if acc.Contains(big.NewInt(9)) {
		t.Error("9 should not qualify")
	}
}

func TestProcessLengthInvalid(t *testing.T) {
	_, err := ProcessLength(context.Background(), NewAccumulator(), 0, exactFactory(nil), 1)
	if err == nil {
		t.Fatal("expected error for length 0")
	}
}

func TestAccumulatorCollapsesLeadingZeros(t *testing.T) {
	acc := NewAccumulator()
	for n := 1; n <= 6; n++ {
		if _, err := ProcessLength(context.Background(), acc, n, exactFactory(nil), 1); err != nil {
			t.Fatal(err)
		}
	}

	acc.Add(Middle{Value: big.NewInt(6), Bits: "00110"})
	before := acc.Len()
	acc.Add(Middle{Value: big.NewInt(6), Bits: "0110"})
	if acc.Len() != before {
		t.Errorf("len changed from %d to %d on duplicate value", before, acc.Len())
	}
	for _, m := range acc.Middles() {
		if m.Value.Int64() == 6 && m.Bits != "0110" {
			t.Errorf("latest bit-string should win, got %q", m.Bits)
		}
	}
}

func TestProcessLengthParallelMatchesSequential(t *testing.T) {
	cache := primality.NewCache(0)
	for n := 1; n <= 22; n++ {
		seq := NewAccumulator()
		par := NewAccumulator()

		s1, err := ProcessLength(context.Background(), seq, n, exactFactory(cache), 1)
		if err != nil {
			t.Fatal(err)
		}
		s2, err := ProcessLength(context.Background(), par, n, exactFactory(cache), 4)
		if err != nil {
			t.Fatal(err)
		}

		if s1 != s2 {
			t.Errorf("n=%d: sequential %+v != parallel %+v", n, s1, s2)
		}
		if seq.Len() != par.Len() {
			t.Errorf("n=%d: sequential %d middles, parallel %d", n, seq.Len(), par.Len())
		}
	}
}

func TestProcessLengthCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ProcessLength(ctx, NewAccumulator(), 12, exactFactory(nil), 1)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestWorkerCount(t *testing.T) {
	tests := []struct {
		n, requested, want int
	}{
		{10, 8, 1},
		{1000, 1, 1},
		{1000, 0, 1},
		{1000, 8, 3},
		{100000, 8, 8},
	}
	for _, tt := range tests {
		if got := workerCount(tt.n, minChunk, tt.requested); got != tt.want {
			t.Errorf("workerCount(%d, %d) = %d, want %d", tt.n, tt.requested, got, tt.want)
		}
	}
}

func TestProportions(t *testing.T) {
	p := Proportions{3: 0.5, 1: 0, 2: 0.25}
	lengths := p.Lengths()
	if len(lengths) != 3 || lengths[0] != 1 || lengths[2] != 3 {
		t.Errorf("Lengths() = %v", lengths)
	}
	series := p.Series()
	if series[1] != 0.25 {
		t.Errorf("Series() = %v", series)
	}
	if got := FormatProportion(4, 0.25); got != "4,0.25" {
		t.Errorf("FormatProportion = %q", got)
	}
	if got := FormatProportion(1, 0); got != "1,0" {
		t.Errorf("FormatProportion = %q", got)
	}
}
