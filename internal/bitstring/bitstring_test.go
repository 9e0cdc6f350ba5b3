package bitstring

import (
	"errors"
	"math/big"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"", 0},
		{"0", 0},
		{"1", 1},
		{"0110", 6},
		{"1001", 9},
		{"00000101", 5},
		{"11111111", 255},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", tt.in, err)
		}
		if got.Cmp(big.NewInt(tt.want)) != 0 {
			t.Errorf("Parse(%q) = %s, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseLarge(t *testing.T) {
	s := "1000000000000000000000000000000000000000000000000000000000000000000000001"
	got, err := Parse(s)
	if err != nil {
		t.Fatal(err)
	}
	want := new(big.Int).Lsh(big.NewInt(1), uint(len(s)-1))
	want.Add(want, big.NewInt(1))
	if got.Cmp(want) != 0 {
		t.Errorf("Parse = %s, want %s", got, want)
	}
}

func TestParseFormatError(t *testing.T) {
	tests := []struct {
		in   string
		pos  int
		char rune
	}{
		{"2", 0, '2'},
		{"0102", 3, '2'},
		{"01 1", 2, ' '},
		{"1x", 1, 'x'},
	}

	for _, tt := range tests {
		_, err := Parse(tt.in)
		if !errors.Is(err, ErrFormat) {
			t.Fatalf("Parse(%q) error = %v, want ErrFormat", tt.in, err)
		}
		var fe *FormatError
		if !errors.As(err, &fe) {
			t.Fatalf("Parse(%q) error is not *FormatError", tt.in)
		}
		if fe.Pos != tt.pos || fe.Char != tt.char {
			t.Errorf("Parse(%q) = pos %d char %q, want pos %d char %q", tt.in, fe.Pos, fe.Char, tt.pos, tt.char)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for n := 0; n <= 10; n++ {
		for i := 0; i < 1<<n; i++ {
			s := Format(big.NewInt(int64(i)), n)
			if len(s) != n {
				t.Fatalf("Format(%d, %d) = %q, wrong length", i, n, s)
			}
			v, err := Parse(s)
			if err != nil {
				t.Fatal(err)
			}
			if got := Format(v, len(s)); got != s {
				t.Errorf("round trip %q -> %s -> %q", s, v, got)
			}
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		v     int64
		width int
		want  string
	}{
		{0, 0, ""},
		{0, 3, "000"},
		{5, 0, "101"},
		{5, 6, "000101"},
		{5, 2, "101"},
		{-5, 4, "-0101"},
	}

	for _, tt := range tests {
		if got := Format(big.NewInt(tt.v), tt.width); got != tt.want {
			t.Errorf("Format(%d, %d) = %q, want %q", tt.v, tt.width, got, tt.want)
		}
	}
}

func TestTrim(t *testing.T) {
	if got := TrimStart("0011000"); got != "11000" {
		t.Errorf("TrimStart = %q", got)
	}
	if got := TrimBoth("0011000"); got != "11" {
		t.Errorf("TrimBoth = %q", got)
	}
	if got := TrimBoth("0000"); got != "" {
		t.Errorf("TrimBoth = %q", got)
	}
}
