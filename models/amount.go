package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Amount is a decimal value sent by the pricing service either as a JSON
// number or as a numeric string ("1299.00"). Missing, null or unparseable
// or non-finite values decode to an Amount with Valid == false instead of
// failing the whole payload.
type Amount struct {
	Value float64
	Valid bool
}

// NewAmount returns a valid Amount.
func NewAmount(v float64) Amount {
	return Amount{Value: v, Valid: true}
}

// ParseAmount parses a decimal string, tolerating surrounding spaces,
// thousands separators and a leading currency sign.
func ParseAmount(s string) Amount {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return Amount{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !finite(v) {
		return Amount{}
	}
	return NewAmount(v)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Ptr returns nil for an invalid Amount.
func (a Amount) Ptr() *float64 {
	if !a.Valid {
		return nil
	}
	v := a.Value
	return &v
}

// Positive reports whether the amount is set and greater than zero.
func (a Amount) Positive() bool {
	return a.Valid && a.Value > 0
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*a = Amount{}
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		*a = ParseAmount(s)
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil || !finite(v) {
		// booleans, objects and arrays are treated as missing
		return nil
	}
	*a = NewAmount(v)
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Valid || !finite(a.Value) {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(a.Value, 'f', -1, 64)), nil
}
