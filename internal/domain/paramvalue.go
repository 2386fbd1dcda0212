package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// ParamValue holds a parameter value that is either a number or a string.
// Plan documents serialize it verbatim, so the JSON form is a bare number
// or a bare string, never an object.
type ParamValue struct {
	Num   float64
	Str   string
	IsStr bool
}

// Number returns a numeric ParamValue.
func Number(n float64) ParamValue {
	return ParamValue{Num: n}
}

// String returns a string ParamValue.
func String(s string) ParamValue {
	return ParamValue{Str: s, IsStr: true}
}

// Float returns the numeric value. For string values it attempts a parse
// and returns ok=false when the string is not a number.
func (v ParamValue) Float() (float64, bool) {
	if !v.IsStr {
		return v.Num, true
	}
	f, err := strconv.ParseFloat(v.Str, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Text returns the value as a string. Numbers format without a trailing
// ".0" for integral values.
func (v ParamValue) Text() string {
	if v.IsStr {
		return v.Str
	}
	if v.Num == math.Trunc(v.Num) && !math.IsInf(v.Num, 0) {
		return strconv.FormatInt(int64(v.Num), 10)
	}
	return strconv.FormatFloat(v.Num, 'f', -1, 64)
}

// Valid reports whether the value is usable: string values are always
// valid, numeric values must be finite.
func (v ParamValue) Valid() bool {
	if v.IsStr {
		return true
	}
	return !math.IsNaN(v.Num) && !math.IsInf(v.Num, 0)
}

func (v ParamValue) MarshalJSON() ([]byte, error) {
	if v.IsStr {
		return json.Marshal(v.Str)
	}
	if !v.Valid() {
		return nil, fmt.Errorf("parameter value is not a finite number")
	}
	return json.Marshal(v.Num)
}

func (v *ParamValue) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*v = Number(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("parameter value must be a number or a string: %w", err)
	}
	*v = String(s)
	return nil
}
