package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

type SortDirection string

const (
	SortNone SortDirection = "none"
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

var ErrInvalidSortDirection = errors.New("invalid sort direction")

// ParseSortDirection treats an empty value as SortNone.
func ParseSortDirection(value string) (SortDirection, error) {
	switch SortDirection(value) {
	case "", SortNone:
		return SortNone, nil
	case SortAsc, SortDesc:
		return SortDirection(value), nil
	}
	return SortNone, fmt.Errorf("%w: %s", ErrInvalidSortDirection, value)
}

// ColumnConfig is one column of a list view.
type ColumnConfig struct {
	ID            string
	Label         string
	Visible       bool
	Order         int
	SortDirection SortDirection
}

func (c ColumnConfig) IsSorted() bool {
	return c.SortDirection == SortAsc || c.SortDirection == SortDesc
}

type columnJSON struct {
	ID            string         `json:"id"`
	Label         string         `json:"label"`
	Visible       bool           `json:"visible"`
	Order         int            `json:"order"`
	SortDirection *SortDirection `json:"sortDirection"`
}

// MarshalJSON writes an unsorted column with a null sortDirection.
func (c ColumnConfig) MarshalJSON() ([]byte, error) {
	payload := columnJSON{
		ID:      c.ID,
		Label:   c.Label,
		Visible: c.Visible,
		Order:   c.Order,
	}
	if c.IsSorted() {
		direction := c.SortDirection
		payload.SortDirection = &direction
	}
	return json.Marshal(payload)
}

func (c *ColumnConfig) UnmarshalJSON(data []byte) error {
	var payload columnJSON
	if err := json.Unmarshal(data, &payload); err != nil {
		return err
	}
	if payload.ID == "" {
		return errors.New("column without id")
	}

	direction := SortNone
	if payload.SortDirection != nil {
		parsed, err := ParseSortDirection(string(*payload.SortDirection))
		if err != nil {
			return err
		}
		direction = parsed
	}

	*c = ColumnConfig{
		ID:            payload.ID,
		Label:         payload.Label,
		Visible:       payload.Visible,
		Order:         payload.Order,
		SortDirection: direction,
	}
	return nil
}
