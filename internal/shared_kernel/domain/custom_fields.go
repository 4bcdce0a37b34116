package domain

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

var ErrUnknownCustomField = errors.New("unknown custom field")

// CustomFields is the open bag of user defined values attached to a record,
// keyed by field key.
type CustomFields map[string]FieldValue

func (c CustomFields) Get(key string) (FieldValue, bool) {
	value, found := c[key]
	return value, found
}

func (c CustomFields) Keys() []string {
	keys := make([]string, 0, len(c))
	for key := range c {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (c CustomFields) Clone() CustomFields {
	result := make(CustomFields, len(c))
	for key, value := range c {
		result[key] = value
	}
	return result
}

// ToMap returns the bag as plain JSON values.
func (c CustomFields) ToMap() map[string]any {
	result := make(map[string]any, len(c))
	for key, value := range c {
		result[key] = value.Native()
	}
	return result
}

func CustomFieldsFromMap(values map[string]any) CustomFields {
	result := make(CustomFields, len(values))
	for key, value := range values {
		result[key] = FieldValueFrom(value)
	}
	return result
}

// Validate coerces every value to its declared type, reading dates without an
// offset in loc. Keys without a declaration are rejected.
func (c CustomFields) Validate(types map[string]FieldType, loc *time.Location) (CustomFields, error) {
	return c.validate(types, loc, false)
}

// ValidatePatch validates a partial bag. Empty values clear their key and
// need no declaration.
func (c CustomFields) ValidatePatch(types map[string]FieldType, loc *time.Location) (CustomFields, error) {
	return c.validate(types, loc, true)
}

func (c CustomFields) validate(types map[string]FieldType, loc *time.Location, patch bool) (CustomFields, error) {
	result := make(CustomFields, len(c))
	for _, key := range c.Keys() {
		if patch && c[key].IsZero() {
			result[key] = c[key]
			continue
		}
		fieldType, found := types[key]
		if !found {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCustomField, key)
		}
		value, err := CoerceValue(fieldType, c[key], loc)
		if err != nil {
			return nil, fmt.Errorf("custom field %s: %w", key, err)
		}
		result[key] = value
	}
	return result, nil
}

// Normalize coerces values whose declared type is known and keeps the rest
// as stored.
func (c CustomFields) Normalize(types map[string]FieldType, loc *time.Location) CustomFields {
	result := make(CustomFields, len(c))
	for key, value := range c {
		if fieldType, found := types[key]; found {
			value = value.CoerceTo(fieldType, loc)
		}
		result[key] = value
	}
	return result
}
