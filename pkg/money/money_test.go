package money

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		raw  string
		want Amount
	}{
		{"100", 10000},
		{"100.00", 10000},
		{"10.5", 1050},
		{"10,5", 1050},
		{"  25.30 ", 2530},
		{"0", 0},
		{"-3.25", -325},
		{"0.005", 1},
	}
	for _, tc := range cases {
		got, err := Parse(tc.raw)
		if err != nil {
			t.Fatalf("Parse(%q) returned %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("Parse(%q) = %d, want %d", tc.raw, got, tc.want)
		}
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, raw := range []string{"", "   ", "abc", "quarenta", "10.0.0", "NaN", "Inf"} {
		if _, err := Parse(raw); !errors.Is(err, ErrMalformed) {
			t.Fatalf("Parse(%q) must fail with ErrMalformed, got %v", raw, err)
		}
	}
}

func TestParseNonNegative(t *testing.T) {
	if _, err := ParseNonNegative("-1"); !errors.Is(err, ErrNegative) {
		t.Fatalf("expected ErrNegative, got %v", err)
	}
	if a, err := ParseNonNegative("0"); err != nil || a != 0 {
		t.Fatalf("zero must be accepted, got %d, %v", a, err)
	}
}

func TestParsePositive(t *testing.T) {
	if _, err := ParsePositive("0"); !errors.Is(err, ErrNotPositive) {
		t.Fatalf("expected ErrNotPositive for zero, got %v", err)
	}
	if _, err := ParsePositive("-5"); !errors.Is(err, ErrNotPositive) {
		t.Fatalf("expected ErrNotPositive for negative, got %v", err)
	}
	if a, err := ParsePositive("0.01"); err != nil || a != 1 {
		t.Fatalf("smallest positive amount rejected: %d, %v", a, err)
	}
}

func TestParseLenient(t *testing.T) {
	if got := ParseLenient("trinta reais"); got != 0 {
		t.Fatalf("malformed input must coerce to zero, got %d", got)
	}
	if got := ParseLenient("30.00"); got != 3000 {
		t.Fatalf("expected 3000, got %d", got)
	}
}

func TestDisplay(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"100", "100.00"},
		{"10,5", "10.50"},
		{"25.30", "25.30"},
		{"sem valor", "sem valor"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Display(tc.raw); got != tc.want {
			t.Fatalf("Display(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		a    Amount
		want string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{10000, "100.00"},
		{1050, "10.50"},
		{-325, "-3.25"},
	}
	for _, tc := range cases {
		if got := tc.a.String(); got != tc.want {
			t.Fatalf("Amount(%d).String() = %q, want %q", tc.a, got, tc.want)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	out, err := json.Marshal(Amount(4000))
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `"40.00"` {
		t.Fatalf("expected quoted two-decimal string, got %s", out)
	}

	var a Amount
	if err := json.Unmarshal([]byte(`"25.50"`), &a); err != nil || a != 2550 {
		t.Fatalf("string form: got %d, %v", a, err)
	}
	if err := json.Unmarshal([]byte(`25.5`), &a); err != nil || a != 2550 {
		t.Fatalf("number form: got %d, %v", a, err)
	}
	if err := json.Unmarshal([]byte(`"abc"`), &a); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}
