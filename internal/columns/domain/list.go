package domain

import (
	"errors"
	"fmt"
	"slices"
)

var ErrUnknownList = errors.New("unknown column list")

// ListKey names a persisted column configuration.
type ListKey string

const (
	ContactListColumns ListKey = "contact-list-columns"
	DealListColumns    ListKey = "deal-list-columns"
)

func (k ListKey) String() string {
	return string(k)
}

func ParseListKey(value string) (ListKey, error) {
	key := ListKey(value)
	if _, ok := _defaults[key]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownList, value)
	}
	return key, nil
}

type defaultColumn struct {
	id    string
	label string
}

var _defaults = map[ListKey][]defaultColumn{
	ContactListColumns: {
		{"name", "Name"},
		{"email", "Email"},
		{"phone", "Phone"},
		{"company", "Company"},
		{"jobTitle", "Job Title"},
		{"tags", "Tags"},
		{"createdAt", "Created"},
	},
	DealListColumns: {
		{"name", "Deal Name"},
		{"stage", "Stage"},
		{"value", "Value"},
		{"expectedClose", "Expected Close"},
		{"contacts", "Contacts"},
		{"createdAt", "Created"},
	},
}

// DefaultColumns returns a fresh copy of the canonical columns of a list,
// all visible, unsorted and ordered by position.
func DefaultColumns(list ListKey) ([]ColumnConfig, error) {
	defaults, ok := _defaults[list]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownList, list)
	}
	columns := make([]ColumnConfig, len(defaults))
	for i, column := range defaults {
		columns[i] = ColumnConfig{
			ID:            column.id,
			Label:         column.label,
			Visible:       true,
			Order:         i,
			SortDirection: SortNone,
		}
	}
	return columns, nil
}

func IsDefaultColumn(list ListKey, id string) bool {
	return slices.ContainsFunc(_defaults[list], func(column defaultColumn) bool {
		return column.id == id
	})
}
