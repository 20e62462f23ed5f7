package journal

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PL is a signed profit/loss amount.
//
// Legacy files occasionally carry values that are not numbers. Those
// decode as invalid, count as zero in every total, and keep their
// original JSON token so a save does not rewrite what the user stored.
type PL struct {
	value float64
	valid bool
	raw   json.RawMessage
}

// NewPL returns a valid amount.
func NewPL(v float64) PL { return PL{value: v, valid: true} }

// Value returns the numeric amount and whether it is usable.
func (p PL) Value() (float64, bool) { return p.value, p.valid }

// Float64 returns the amount, or 0 when the stored value never parsed.
func (p PL) Float64() float64 {
	if !p.valid {
		return 0
	}
	return p.value
}

// UnmarshalJSON accepts a JSON number or a quoted numeric string, with
// either "," or "." as decimal separator. Anything else is kept verbatim
// and marked invalid rather than failing the whole load.
func (p *PL) UnmarshalJSON(data []byte) error {
	p.raw = append(json.RawMessage(nil), data...)
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		p.value, p.valid = f, true
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if f, err := parseAmount(s); err == nil {
			p.value, p.valid = f, true
			return nil
		}
	}
	p.value, p.valid = 0, false
	return nil
}

func (p PL) MarshalJSON() ([]byte, error) {
	if p.raw != nil {
		return p.raw, nil
	}
	return []byte(strconv.FormatFloat(p.value, 'f', -1, 64)), nil
}

func (p PL) String() string {
	if !p.valid {
		return string(p.raw)
	}
	return FormatTotal(p.value)
}

// ParseAmount parses a user-entered profit/loss value. Both "," and "."
// are accepted as decimal separator; an empty or non-numeric value is a
// classified validation failure.
func ParseAmount(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, ErrEmptyAmount
	}
	v, err := parseAmount(s)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrBadAmount, raw)
	}
	return v, nil
}

func parseAmount(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
}
