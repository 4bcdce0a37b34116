package httpapi

import (
	"crm-server/internal/infra/httpserver"
	"crm-server/internal/query/filter"
	"crm-server/internal/query/sorting"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrInvalidFilters = errors.New("filters must be a JSON array of column filters")
	ErrInvalidSort    = errors.New("sort must be <columnId>[:asc|desc|none]")
)

// ListParams is the query of one list view page.
type ListParams struct {
	Search     string
	Filters    []filter.ColumnFilter
	Sort       *sorting.Directive
	Pagination httpserver.PaginationParams
}

// ParseListParams reads search, filters, sort, page and limit from the
// query string.
func ParseListParams(r *http.Request) (ListParams, error) {
	filters, err := ParseFilters(httpserver.GetQueryParam(r, "filters"))
	if err != nil {
		return ListParams{}, err
	}
	sort, err := ParseSort(httpserver.GetQueryParam(r, "sort"))
	if err != nil {
		return ListParams{}, err
	}

	return ListParams{
		Search:     httpserver.GetQueryParam(r, "search"),
		Filters:    filters,
		Sort:       sort,
		Pagination: httpserver.ExtractPaginationParams(r),
	}, nil
}

func ParseFilters(raw string) ([]filter.ColumnFilter, error) {
	if raw == "" {
		return nil, nil
	}
	var filters []filter.ColumnFilter
	if err := json.Unmarshal([]byte(raw), &filters); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFilters, err)
	}
	return filters, nil
}

// ParseSort reads "<columnId>" or "<columnId>:<direction>". A missing
// direction sorts ascending and an empty value yields nil.
func ParseSort(raw string) (*sorting.Directive, error) {
	if raw == "" {
		return nil, nil
	}
	columnID, direction, found := strings.Cut(raw, ":")
	columnID = strings.TrimSpace(columnID)
	if columnID == "" {
		return nil, ErrInvalidSort
	}
	if !found {
		return &sorting.Directive{ColumnID: columnID, Direction: sorting.DirectionAsc}, nil
	}
	parsed, ok := sorting.ParseDirection(strings.ToLower(strings.TrimSpace(direction)))
	if !ok {
		return nil, ErrInvalidSort
	}
	return &sorting.Directive{ColumnID: columnID, Direction: parsed}, nil
}
