package domain

import (
	"cmp"
	"slices"
)

// ColumnSet is the ordered column configuration of one list. SetSort is the
// only way to sort a column, so at most one column carries a direction.
type ColumnSet struct {
	columns []ColumnConfig
}

func NewColumnSet(columns []ColumnConfig) ColumnSet {
	set := ColumnSet{columns: slices.Clone(columns)}
	set.sortByOrder()
	return set
}

// Reconcile merges persisted columns into the defaults. Defaults keep their
// persisted state or take their catalog position, persisted columns unknown
// to the defaults are appended as they are. Only the first sorted column in
// display order keeps its direction.
func Reconcile(defaults, persisted []ColumnConfig) ColumnSet {
	if len(persisted) == 0 {
		return NewColumnSet(defaults)
	}

	stored := make(map[string]ColumnConfig, len(persisted))
	for _, column := range persisted {
		stored[column.ID] = column
	}

	merged := make([]ColumnConfig, 0, len(defaults)+len(persisted))
	known := make(map[string]bool, len(defaults))
	for i, column := range defaults {
		known[column.ID] = true
		if saved, ok := stored[column.ID]; ok {
			column.Visible = saved.Visible
			column.Order = saved.Order
			if saved.Label != "" {
				column.Label = saved.Label
			}
			column.SortDirection = saved.SortDirection
		} else {
			column.Order = i
			column.SortDirection = SortNone
		}
		merged = append(merged, column)
	}
	for _, column := range persisted {
		if !known[column.ID] {
			merged = append(merged, column)
		}
	}

	set := NewColumnSet(merged)
	set.keepFirstSort()
	return set
}

func (s *ColumnSet) keepFirstSort() {
	sorted := false
	for i := range s.columns {
		if !s.columns[i].IsSorted() {
			continue
		}
		if sorted {
			s.columns[i].SortDirection = SortNone
		}
		sorted = true
	}
}

func (s *ColumnSet) sortByOrder() {
	slices.SortStableFunc(s.columns, func(a, b ColumnConfig) int {
		return cmp.Compare(a.Order, b.Order)
	})
}

func (s *ColumnSet) index(id string) int {
	return slices.IndexFunc(s.columns, func(column ColumnConfig) bool {
		return column.ID == id
	})
}

// Columns returns every column in display order.
func (s ColumnSet) Columns() []ColumnConfig {
	return slices.Clone(s.columns)
}

func (s ColumnSet) Visible() []ColumnConfig {
	visible := make([]ColumnConfig, 0, len(s.columns))
	for _, column := range s.columns {
		if column.Visible {
			visible = append(visible, column)
		}
	}
	return visible
}

func (s ColumnSet) Sorted() []ColumnConfig {
	sorted := make([]ColumnConfig, 0, 1)
	for _, column := range s.columns {
		if column.IsSorted() {
			sorted = append(sorted, column)
		}
	}
	return sorted
}

// ActiveSort returns the first sorted column.
func (s ColumnSet) ActiveSort() (ColumnConfig, bool) {
	for _, column := range s.columns {
		if column.IsSorted() {
			return column, true
		}
	}
	return ColumnConfig{}, false
}

func (s ColumnSet) Has(id string) bool {
	return s.index(id) >= 0
}

func (s ColumnSet) Column(id string) (ColumnConfig, bool) {
	i := s.index(id)
	if i < 0 {
		return ColumnConfig{}, false
	}
	return s.columns[i], true
}

func (s *ColumnSet) ToggleVisibility(id string) {
	if i := s.index(id); i >= 0 {
		s.columns[i].Visible = !s.columns[i].Visible
	}
}

func (s *ColumnSet) Rename(id, label string) {
	if i := s.index(id); i >= 0 {
		s.columns[i].Label = label
	}
}

// Reorder applies the given positions; columns not mentioned keep theirs.
func (s *ColumnSet) Reorder(orders map[string]int) {
	for i, column := range s.columns {
		if order, ok := orders[column.ID]; ok {
			s.columns[i].Order = order
		}
	}
	s.sortByOrder()
}

// SetSort sets the direction of one column and clears every other direction
// unless the new direction is none.
func (s *ColumnSet) SetSort(id string, direction SortDirection) {
	target := s.index(id)
	if target < 0 {
		return
	}
	for i := range s.columns {
		switch {
		case i == target:
			s.columns[i].SortDirection = direction
		case direction != SortNone:
			s.columns[i].SortDirection = SortNone
		}
	}
}

func (s *ColumnSet) ClearSort() {
	for i := range s.columns {
		s.columns[i].SortDirection = SortNone
	}
}

// Reset replaces the set with the defaults in catalog order.
func (s *ColumnSet) Reset(defaults []ColumnConfig) {
	columns := make([]ColumnConfig, len(defaults))
	for i, column := range defaults {
		column.Order = i
		column.SortDirection = SortNone
		columns[i] = column
	}
	s.columns = columns
}

// Add appends a column after the last position, unsorted. Known ids are ignored.
func (s *ColumnSet) Add(column ColumnConfig) bool {
	if s.Has(column.ID) {
		return false
	}
	last := -1
	for _, existing := range s.columns {
		last = max(last, existing.Order)
	}
	column.Order = last + 1
	column.SortDirection = SortNone
	s.columns = append(s.columns, column)
	return true
}

func (s *ColumnSet) Remove(id string) {
	s.columns = slices.DeleteFunc(s.columns, func(column ColumnConfig) bool {
		return column.ID == id
	})
}
