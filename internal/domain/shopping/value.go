package shopping

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Value is a loosely-typed scalar field as it arrives from upstream producers
// (user-entered records, OCR-extracted receipt lines): a JSON number, a JSON
// string, or absent. Presence and truthiness are tracked separately from the
// numeric value so that price fallthrough (price, then unitPrice, then
// estimatedPrice) treats the number 0 as absent but the string "0" as present.
type Value struct {
	str     string
	num     float64
	isNum   bool
	present bool
}

// Num builds a numeric Value.
func Num(v float64) Value {
	return Value{num: v, isNum: true, present: true}
}

// Str builds a string Value.
func Str(v string) Value {
	return Value{str: v, present: true}
}

// Present reports whether the field carried any value at all.
func (v Value) Present() bool {
	return v.present
}

// Truthy reports presence under loose-typing rules: a zero number and an
// empty string are both treated as absent.
func (v Value) Truthy() bool {
	if !v.present {
		return false
	}
	if v.isNum {
		return v.num != 0
	}
	return v.str != ""
}

// Number returns the numeric value and whether the field was a number.
func (v Value) Number() (float64, bool) {
	return v.num, v.isNum && v.present
}

// Text returns the string form and whether the field was a string.
func (v Value) Text() (string, bool) {
	return v.str, !v.isNum && v.present
}

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*v = Value{}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Str(s)
	case 't':
		*v = Num(1)
	case 'f':
		*v = Num(0)
	default:
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			// Arrays and objects degrade to absent rather than failing
			// the surrounding decode.
			*v = Value{}
			return nil
		}
		*v = Num(n)
	}
	return nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	if !v.present {
		return []byte("null"), nil
	}
	if v.isNum {
		return []byte(strconv.FormatFloat(v.num, 'f', -1, 64)), nil
	}
	return json.Marshal(v.str)
}
