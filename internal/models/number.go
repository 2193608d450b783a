package models

import (
	"bytes"
	"math"
	"strconv"
)

// Number is a JSON numeric request field. Decoding never fails: it records
// whether the key was present and whether its value parsed as a finite float,
// so that validation can report every bad field at once.
// Quoted numbers ("6.5") are accepted.
type Number struct {
	Value   float64
	Present bool
	Valid   bool
}

// NewNumber returns a present, valid Number.
func NewNumber(v float64) Number {
	return Number{Value: v, Present: true, Valid: true}
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(b []byte) error {
	*n = Number{Present: true}

	raw := bytes.TrimSpace(b)
	if bytes.Equal(raw, []byte("null")) {
		return nil
	}
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		raw = bytes.TrimSpace(raw[1 : len(raw)-1])
	}

	v, err := strconv.ParseFloat(string(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}

	n.Value = v
	n.Valid = true
	return nil
}
