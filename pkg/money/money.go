package money

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrMalformed   = errors.New("malformed_amount")
	ErrNegative    = errors.New("negative_amount")
	ErrNotPositive = errors.New("amount_not_positive")
)

// Amount is a monetary value in hundredths of the currency unit.
type Amount int64

// Parse reads an operator-entered amount. Comma decimal separators are
// accepted, anything else that does not read as a number is rejected.
func Parse(raw string) (Amount, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, ErrMalformed
	}
	s = strings.ReplaceAll(s, ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrMalformed
	}
	return FromFloat(f), nil
}

func ParseNonNegative(raw string) (Amount, error) {
	a, err := Parse(raw)
	if err != nil {
		return 0, err
	}
	if a < 0 {
		return 0, ErrNegative
	}
	return a, nil
}

func ParsePositive(raw string) (Amount, error) {
	a, err := Parse(raw)
	if err != nil {
		return 0, err
	}
	if a <= 0 {
		return 0, ErrNotPositive
	}
	return a, nil
}

// ParseLenient coerces unreadable amounts to zero. Reserved for summing
// historical rows, where one bad cell must not poison the whole total.
func ParseLenient(raw string) Amount {
	a, err := Parse(raw)
	if err != nil {
		return 0
	}
	return a
}

// Display renders a stored amount with two decimals. Text that does
// not parse comes back unchanged; the caller keeps showing the raw
// value instead of rewriting it.
func Display(raw string) string {
	a, err := Parse(raw)
	if err != nil {
		return raw
	}
	return a.String()
}

// FromFloat rounds half away from zero to the nearest hundredth.
func FromFloat(f float64) Amount {
	cents := f * 100
	if cents < 0 {
		return Amount(cents - 0.5)
	}
	return Amount(cents + 0.5)
}

func (a Amount) String() string {
	sign := ""
	v := int64(a)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts either a quoted amount or a bare JSON number.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v, perr := Parse(s)
		if perr != nil {
			return perr
		}
		*a = v
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return ErrMalformed
	}
	*a = FromFloat(f)
	return nil
}
