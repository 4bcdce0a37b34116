package internal

import "crm-server/internal/columns/domain"

type ColumnResponse struct {
	ID            string  `json:"id"`
	Label         string  `json:"label"`
	Visible       bool    `json:"visible"`
	Order         int     `json:"order"`
	SortDirection *string `json:"sortDirection"`
}

type ColumnSetResponse struct {
	List    string           `json:"list"`
	Columns []ColumnResponse `json:"columns"`
	Visible []ColumnResponse `json:"visible"`
	Sorted  []ColumnResponse `json:"sorted"`
}

type AddColumnRequest struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Visible *bool  `json:"visible"`
}

type RenameColumnRequest struct {
	Label string `json:"label"`
}

type SortColumnRequest struct {
	Direction string `json:"direction"`
}

type ColumnOrder struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}

type ReorderColumnsRequest struct {
	Columns []ColumnOrder `json:"columns"`
}

func (r ReorderColumnsRequest) Orders() map[string]int {
	orders := make(map[string]int, len(r.Columns))
	for _, column := range r.Columns {
		orders[column.ID] = column.Order
	}
	return orders
}

func (r AddColumnRequest) ToDomain() domain.ColumnConfig {
	visible := true
	if r.Visible != nil {
		visible = *r.Visible
	}
	return domain.ColumnConfig{
		ID:            r.ID,
		Label:         r.Label,
		Visible:       visible,
		SortDirection: domain.SortNone,
	}
}

func toColumnResponses(columns []domain.ColumnConfig) []ColumnResponse {
	responses := make([]ColumnResponse, len(columns))
	for i, column := range columns {
		responses[i] = ColumnResponse{
			ID:      column.ID,
			Label:   column.Label,
			Visible: column.Visible,
			Order:   column.Order,
		}
		if column.IsSorted() {
			direction := string(column.SortDirection)
			responses[i].SortDirection = &direction
		}
	}
	return responses
}

func ToColumnSetResponse(list domain.ListKey, set domain.ColumnSet) ColumnSetResponse {
	return ColumnSetResponse{
		List:    list.String(),
		Columns: toColumnResponses(set.Columns()),
		Visible: toColumnResponses(set.Visible()),
		Sorted:  toColumnResponses(set.Sorted()),
	}
}
