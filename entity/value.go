package entity

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Value wraps a cell value and provides type conversion helpers.
type Value struct {
	Raw any
}

// Text wraps a string as a Value.
func Text(s string) Value {
	return Value{Raw: s}
}

// String returns the value as a string.
func (v Value) String() string {
	if v.Raw == nil {
		return ""
	}
	return fmt.Sprintf("%v", v.Raw)
}

// Float returns the value as a float64, accepting any numeric raw.
func (v Value) Float() (float64, error) {
	switch n := v.Raw.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	}
	return 0, errors.Errorf("value is not numeric: %T", v.Raw)
}

// Bool returns the value as a bool.
func (v Value) Bool() (bool, error) {
	b, ok := v.Raw.(bool)
	if !ok {
		return false, errors.Errorf("value is not a bool: %T", v.Raw)
	}
	return b, nil
}

// Time returns the value as a time.Time.
func (v Value) Time() (time.Time, error) {
	t, ok := v.Raw.(time.Time)
	if !ok {
		return time.Time{}, errors.Errorf("value is not a time.Time: %T", v.Raw)
	}
	return t, nil
}

var timeLayouts = []string{time.RFC3339Nano, time.DateTime, time.DateOnly}

// Parse reads text as a value of the same kind as v.
// Text that does not parse, or a v holding a string or nothing, gives a string value.
func (v Value) Parse(text string) Value {

	trimmed := strings.TrimSpace(text)

	switch v.Raw.(type) {
	case int, int8, int16, int32, int64, uint8, uint16, uint32, uint64:
		if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
			return Value{Raw: n}
		}
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return Value{Raw: f}
		}
	case float32, float64:
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return Value{Raw: f}
		}
	case bool:
		if b, err := strconv.ParseBool(trimmed); err == nil {
			return Value{Raw: b}
		}
	case time.Time:
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, trimmed); err == nil {
				return Value{Raw: t}
			}
		}
	}

	return Text(text)
}

// Compare orders two values by their native type.
// A nil on either side compares equal, so rows missing a field hold their place.
// Values of differing kinds order by kind: numbers, times, bools and then text.
func (v Value) Compare(other Value) int {
	if v.Raw == nil || other.Raw == nil {
		return 0
	}

	ka, kb := v.kind(), other.kind()
	if ka != kb {
		return cmp.Compare(ka, kb)
	}

	switch ka {
	case kindNumber:
		a, _ := v.Float()
		b, _ := other.Float()
		return cmp.Compare(a, b)
	case kindTime:
		ta, _ := v.Time()
		tb, _ := other.Time()
		return ta.Compare(tb)
	case kindBool:
		ba, _ := v.Bool()
		bb, _ := other.Bool()
		switch {
		case ba == bb:
			return 0
		case bb:
			return -1
		}
		return 1
	}

	return cmp.Compare(v.String(), other.String())
}

// unexported

const (
	kindNumber = iota
	kindTime
	kindBool
	kindText
)

func (v Value) kind() int {

	if _, err := v.Float(); err == nil {
		return kindNumber
	}
	if _, err := v.Time(); err == nil {
		return kindTime
	}
	if _, err := v.Bool(); err == nil {
		return kindBool
	}
	return kindText
}
