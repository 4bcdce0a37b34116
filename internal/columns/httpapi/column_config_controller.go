package httpapi

import (
	"crm-server/internal/columns/domain"
	"crm-server/internal/columns/httpapi/internal"
	"crm-server/internal/columns/usecases"
	"crm-server/internal/infra/httpserver"
	"errors"
	"log/slog"
	"net/http"
)

const (
	unauthorizedErrMessage   = "missing user"
	unknownListErrMessage    = "unknown column list"
	columnNotFoundErrMessage = "column not found"
	defaultColumnErrMessage  = "default columns cannot be removed"
	invalidColumnErrMessage  = "invalid column request"
	updateColumnsErrMessage  = "failed to update columns"
)

func NewColumnConfigController(service usecases.ColumnConfigService) *ColumnConfigController {
	return &ColumnConfigController{
		service: service,
	}
}

var _ httpserver.Controller = &ColumnConfigController{}

type ColumnConfigController struct {
	service usecases.ColumnConfigService
}

func (c *ColumnConfigController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/column-configs/{list}", c.getColumns())
	router.Handle("POST /v1/column-configs/{list}/columns", c.addColumn())
	router.Handle("DELETE /v1/column-configs/{list}/columns/{id}", c.removeColumn())
	router.Handle("POST /v1/column-configs/{list}/columns/{id}/visibility", c.toggleVisibility())
	router.Handle("PUT /v1/column-configs/{list}/columns/{id}/label", c.renameColumn())
	router.Handle("PUT /v1/column-configs/{list}/columns/{id}/sort", c.setSort())
	router.Handle("PUT /v1/column-configs/{list}/order", c.reorderColumns())
	router.Handle("DELETE /v1/column-configs/{list}/sort", c.clearSort())
	router.Handle("POST /v1/column-configs/{list}/reset", c.resetColumns())
}

type columnRequest struct {
	owner string
	list  domain.ListKey
}

// parseRequest writes the error response itself and reports whether the
// handler may continue.
func parseRequest(w http.ResponseWriter, r *http.Request) (columnRequest, bool) {
	owner, err := httpserver.OwnerID(r)
	if err != nil {
		http.Error(w, unauthorizedErrMessage, http.StatusUnauthorized)
		return columnRequest{}, false
	}
	list, err := domain.ParseListKey(r.PathValue("list"))
	if err != nil {
		http.Error(w, unknownListErrMessage, http.StatusNotFound)
		return columnRequest{}, false
	}
	return columnRequest{owner: owner, list: list}, true
}

func reply(w http.ResponseWriter, list domain.ListKey, set domain.ColumnSet, err error) {
	switch {
	case err == nil:
		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToColumnSetResponse(list, set))
	case errors.Is(err, domain.ErrUnknownList):
		http.Error(w, unknownListErrMessage, http.StatusNotFound)
	case errors.Is(err, usecases.ErrColumnNotFound):
		http.Error(w, columnNotFoundErrMessage, http.StatusNotFound)
	case errors.Is(err, usecases.ErrDefaultColumnRemoval):
		http.Error(w, defaultColumnErrMessage, http.StatusConflict)
	case errors.Is(err, usecases.ErrInvalidColumn):
		http.Error(w, invalidColumnErrMessage, http.StatusBadRequest)
	default:
		slog.Error("updating columns", slog.String("error", err.Error()))
		http.Error(w, updateColumnsErrMessage, http.StatusInternalServerError)
	}
}

func (c *ColumnConfigController) getColumns() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := parseRequest(w, r)
		if !ok {
			return
		}
		set, err := c.service.Get(r.Context(), req.owner, req.list)
		reply(w, req.list, set, err)
	}
}

func (c *ColumnConfigController) addColumn() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := parseRequest(w, r)
		if !ok {
			return
		}
		var body internal.AddColumnRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, invalidColumnErrMessage, http.StatusBadRequest)
			return
		}
		set, err := c.service.AddColumn(r.Context(), req.owner, req.list, body.ToDomain())
		reply(w, req.list, set, err)
	}
}

func (c *ColumnConfigController) removeColumn() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := parseRequest(w, r)
		if !ok {
			return
		}
		set, err := c.service.RemoveColumn(r.Context(), req.owner, req.list, r.PathValue("id"))
		reply(w, req.list, set, err)
	}
}

func (c *ColumnConfigController) toggleVisibility() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := parseRequest(w, r)
		if !ok {
			return
		}
		set, err := c.service.ToggleVisibility(r.Context(), req.owner, req.list, r.PathValue("id"))
		reply(w, req.list, set, err)
	}
}

func (c *ColumnConfigController) renameColumn() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := parseRequest(w, r)
		if !ok {
			return
		}
		var body internal.RenameColumnRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, invalidColumnErrMessage, http.StatusBadRequest)
			return
		}
		set, err := c.service.Rename(r.Context(), req.owner, req.list, r.PathValue("id"), body.Label)
		reply(w, req.list, set, err)
	}
}

func (c *ColumnConfigController) setSort() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := parseRequest(w, r)
		if !ok {
			return
		}
		var body internal.SortColumnRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, invalidColumnErrMessage, http.StatusBadRequest)
			return
		}
		direction, err := domain.ParseSortDirection(body.Direction)
		if err != nil {
			http.Error(w, invalidColumnErrMessage, http.StatusBadRequest)
			return
		}
		set, err := c.service.SetSort(r.Context(), req.owner, req.list, r.PathValue("id"), direction)
		reply(w, req.list, set, err)
	}
}

func (c *ColumnConfigController) reorderColumns() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := parseRequest(w, r)
		if !ok {
			return
		}
		var body internal.ReorderColumnsRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, invalidColumnErrMessage, http.StatusBadRequest)
			return
		}
		set, err := c.service.Reorder(r.Context(), req.owner, req.list, body.Orders())
		reply(w, req.list, set, err)
	}
}

func (c *ColumnConfigController) clearSort() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := parseRequest(w, r)
		if !ok {
			return
		}
		set, err := c.service.ClearSort(r.Context(), req.owner, req.list)
		reply(w, req.list, set, err)
	}
}

func (c *ColumnConfigController) resetColumns() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := parseRequest(w, r)
		if !ok {
			return
		}
		set, err := c.service.Reset(r.Context(), req.owner, req.list)
		reply(w, req.list, set, err)
	}
}
