package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ISODateLayout is the canonical text form of date values.
const ISODateLayout = "2006-01-02T15:04:05.000Z"

var (
	ErrInvalidFieldValue = errors.New("invalid field value")
	ErrInvalidDate       = errors.New("invalid date")
)

var _numericPattern = regexp.MustCompile(`^\s*[-+]?(\d+(\.\d*)?|\.\d+)([eE][-+]?\d+)?\s*$`)

type ValueKind uint8

const (
	ValueKindText ValueKind = iota
	ValueKindNumber
	ValueKindDate
	ValueKindBoolean
)

func (k ValueKind) String() string {
	switch k {
	case ValueKindNumber:
		return "number"
	case ValueKindDate:
		return "date"
	case ValueKindBoolean:
		return "boolean"
	default:
		return "text"
	}
}

// FieldValue is a loosely typed record value. Every variant keeps the text it
// renders as, so text operators work on any kind.
type FieldValue struct {
	kind    ValueKind
	raw     string
	number  float64
	date    time.Time
	boolean bool
}

func TextValue(value string) FieldValue {
	return FieldValue{kind: ValueKindText, raw: value}
}

func NumberValue(value float64) FieldValue {
	return FieldValue{kind: ValueKindNumber, raw: strconv.FormatFloat(value, 'f', -1, 64), number: value}
}

func DateValue(value time.Time) FieldValue {
	value = value.UTC()
	return FieldValue{kind: ValueKindDate, raw: value.Format(ISODateLayout), date: value}
}

func BooleanValue(value bool) FieldValue {
	return FieldValue{kind: ValueKindBoolean, raw: strconv.FormatBool(value), boolean: value}
}

func (v FieldValue) Kind() ValueKind {
	return v.kind
}

func (v FieldValue) AsText() string {
	return v.raw
}

// AsNumber succeeds for numbers and for text that is a plain decimal literal.
func (v FieldValue) AsNumber() (float64, bool) {
	switch v.kind {
	case ValueKindNumber:
		return v.number, true
	case ValueKindText:
		return ParseNumber(v.raw)
	}
	return 0, false
}

// AsTime succeeds for dates and for text holding an ISO date or date-time.
// Text without an offset is read as UTC.
func (v FieldValue) AsTime() (time.Time, bool) {
	return v.AsTimeIn(time.UTC)
}

// AsTimeIn is AsTime with text lacking an offset read in loc.
func (v FieldValue) AsTimeIn(loc *time.Location) (time.Time, bool) {
	switch v.kind {
	case ValueKindDate:
		return v.date, true
	case ValueKindText:
		t, _, err := ParseISODate(v.raw, loc)
		return t, err == nil
	}
	return time.Time{}, false
}

func (v FieldValue) AsBool() (bool, bool) {
	switch v.kind {
	case ValueKindBoolean:
		return v.boolean, true
	case ValueKindText:
		switch strings.ToLower(strings.TrimSpace(v.raw)) {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return false, false
}

func (v FieldValue) IsZero() bool {
	return v.kind == ValueKindText && v.raw == ""
}

// Native returns the JSON-friendly Go value stored in custom field bags.
func (v FieldValue) Native() any {
	switch v.kind {
	case ValueKindNumber:
		return v.number
	case ValueKindBoolean:
		return v.boolean
	default:
		return v.raw
	}
}

func (v FieldValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Native())
}

func (v *FieldValue) UnmarshalJSON(data []byte) error {
	var native any
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&native); err != nil {
		return err
	}
	*v = FieldValueFrom(native)
	return nil
}

// FieldValueFrom converts a decoded JSON value. Objects and arrays keep their
// JSON text.
func FieldValueFrom(native any) FieldValue {
	switch val := native.(type) {
	case nil:
		return TextValue("")
	case string:
		return TextValue(val)
	case bool:
		return BooleanValue(val)
	case float64:
		return NumberValue(val)
	case float32:
		return NumberValue(float64(val))
	case int:
		return NumberValue(float64(val))
	case int64:
		return NumberValue(float64(val))
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return TextValue(val.String())
		}
		return NumberValue(f)
	case time.Time:
		return DateValue(val)
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return TextValue(fmt.Sprint(val))
		}
		return TextValue(string(data))
	}
}

// CoerceTo converts the value to the declared type when possible and leaves it
// untouched otherwise. Dates without an offset are read in loc.
func (v FieldValue) CoerceTo(fieldType FieldType, loc *time.Location) FieldValue {
	coerced, err := CoerceValue(fieldType, v, loc)
	if err != nil {
		return v
	}
	return coerced
}

// CoerceValue converts the value to the declared type or fails with
// ErrInvalidFieldValue. Dates without an offset are read in loc, so a bare
// "2024-03-15" is midnight of that day where the user is.
func CoerceValue(fieldType FieldType, v FieldValue, loc *time.Location) (FieldValue, error) {
	switch fieldType {
	case FieldTypeText:
		if v.kind == ValueKindText {
			return v, nil
		}
		return TextValue(v.raw), nil
	case FieldTypeNumber:
		if n, ok := v.AsNumber(); ok {
			return NumberValue(n), nil
		}
	case FieldTypeDate:
		if t, ok := v.AsTimeIn(loc); ok {
			return DateValue(t), nil
		}
	case FieldTypeBoolean:
		if b, ok := v.AsBool(); ok {
			return BooleanValue(b), nil
		}
	default:
		return v, fmt.Errorf("%w: %s", ErrInvalidFieldType, fieldType)
	}
	return v, fmt.Errorf("%w: %q is not a %s", ErrInvalidFieldValue, v.raw, fieldType)
}

// ParseNumber accepts decimal literals with optional sign and exponent.
// Hexadecimal, infinities and NaN are rejected.
func ParseNumber(value string) (float64, bool) {
	if !_numericPattern.MatchString(value) {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

var _dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// ParseISODate parses an ISO 8601 date or date-time. Values without an offset
// are read in loc. dateOnly reports whether the input carried no time part.
func ParseISODate(value string, loc *time.Location) (t time.Time, dateOnly bool, err error) {
	value = strings.TrimSpace(value)
	if loc == nil {
		loc = time.UTC
	}
	if len(value) == len(time.DateOnly) {
		t, err = time.ParseInLocation(time.DateOnly, value, loc)
		if err != nil {
			return time.Time{}, false, fmt.Errorf("%w: %q", ErrInvalidDate, value)
		}
		return t, true, nil
	}
	for _, layout := range _dateTimeLayouts {
		t, err = time.ParseInLocation(layout, value, loc)
		if err == nil {
			return t, false, nil
		}
	}
	return time.Time{}, false, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}
