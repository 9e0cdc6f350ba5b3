package palindrome

import (
	"errors"
	"reflect"
	"testing"
)

func TestGenerateLength4(t *testing.T) {
	got, err := Generate(4)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"0000", "0110", "1001", "1111"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Generate(4) = %v, want %v", got, want)
	}
}

func TestGenerateOdd(t *testing.T) {
	tests := []struct {
		n    int
		want []string
	}{
		{1, []string{"0", "1"}},
		{2, []string{"00", "11"}},
		{3, []string{"000", "010", "101", "111"}},
		{5, []string{"00000", "00100", "01010", "01110", "10001", "10101", "11011", "11111"}},
	}

	for _, tt := range tests {
		got, err := Generate(tt.n)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Generate(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestGenerateProperties(t *testing.T) {
	for n := 1; n <= 18; n++ {
		got, err := Generate(n)
		if err != nil {
			t.Fatal(err)
		}

		want := 1 << uint((n+1)/2)
		if len(got) != want {
			t.Errorf("n=%d: got %d palindromes, want %d", n, len(got), want)
		}

		seen := make(map[string]bool, len(got))
		for _, s := range got {
			if len(s) != n {
				t.Fatalf("n=%d: %q has length %d", n, s, len(s))
			}
			if s != Reverse(s) || !IsPalindrome(s) {
				t.Fatalf("n=%d: %q is not a palindrome", n, s)
			}
			if seen[s] {
				t.Fatalf("n=%d: duplicate %q", n, s)
			}
			seen[s] = true
		}
	}
}

func TestInvalidLength(t *testing.T) {
	for _, n := range []int{0, -1, MaxLength + 1} {
		if _, err := Generate(n); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("Generate(%d) error = %v, want ErrInvalidLength", n, err)
		}
		if _, err := Count(n); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("Count(%d) error = %v, want ErrInvalidLength", n, err)
		}
	}
}

func TestEachStopsOnError(t *testing.T) {
	stop := errors.New("stop")
	calls := 0
	err := Each(8, func(string) error {
		calls++
		if calls == 3 {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Fatalf("Each error = %v, want stop", err)
	}
	if calls != 3 {
		t.Errorf("Each called fn %d times, want 3", calls)
	}
}

func TestIsPalindrome(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"", true},
		{"1", true},
		{"10", false},
		{"1001", true},
		{"10011", false},
	}
	for _, tt := range tests {
		if got := IsPalindrome(tt.s); got != tt.want {
			t.Errorf("IsPalindrome(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestNthMatchesGenerate(t *testing.T) {
	for n := 1; n <= 9; n++ {
		all, err := Generate(n)
		if err != nil {
			t.Fatal(err)
		}
		for i, want := range all {
			if got := Nth(n, uint64(i)); got != want {
				t.Errorf("Nth(%d, %d) = %q, want %q", n, i, got, want)
			}
		}
	}
}
