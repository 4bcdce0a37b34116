package httpapi

import (
	"crm-server/internal/deals/domain"
	"crm-server/internal/deals/httpapi/internal"
	"crm-server/internal/deals/usecases"
	"crm-server/internal/infra/httpserver"
	shareddomain "crm-server/internal/shared_kernel/domain"
	sharedhttpapi "crm-server/internal/shared_kernel/httpapi"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

const (
	unauthorizedErrMessage  = "missing user"
	invalidDealErrMessage   = "invalid deal"
	invalidStageErrMessage  = "invalid stage"
	invalidDateErrMessage   = "invalid expected close date"
	notFoundErrMessage      = "deal not found"
	listErrMessage          = "failed to list deals"
	pipelineErrMessage      = "failed to load pipeline"
	statsErrMessage         = "failed to compute deal stats"
	getErrMessage           = "failed to get deal"
	createErrMessage        = "failed to create deal"
	updateErrMessage        = "failed to update deal"
	moveErrMessage          = "failed to move deal"
	deleteErrMessage        = "failed to delete deal"
	includeContactsQueryKey = "includeContacts"
)

// NewDealController reads expected close dates without an offset in loc.
func NewDealController(service usecases.DealService, loc *time.Location) *DealController {
	if loc == nil {
		loc = time.UTC
	}
	return &DealController{
		service:  service,
		location: loc,
	}
}

var _ httpserver.Controller = &DealController{}

type DealController struct {
	service  usecases.DealService
	location *time.Location
}

func (c *DealController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/deals", c.listDeals())
	router.Handle("POST /v1/deals", c.createDeal())
	router.Handle("GET /v1/deals/stats", c.dealStats())
	router.Handle("GET /v1/deals/pipeline", c.pipeline())
	router.Handle("GET /v1/deals/stages/{stage}", c.listByStage())
	router.Handle("GET /v1/deals/{id}", c.getDeal())
	router.Handle("PUT /v1/deals/{id}", c.updateDeal())
	router.Handle("DELETE /v1/deals/{id}", c.deleteDeal())
	router.Handle("PUT /v1/deals/{id}/stage", c.moveDeal())
}

func (c *DealController) listDeals() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, err := httpserver.OwnerID(r)
		if err != nil {
			http.Error(w, unauthorizedErrMessage, http.StatusUnauthorized)
			return
		}
		params, err := sharedhttpapi.ParseListParams(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		query := ToListQuery(params)
		query.IncludeContacts = httpserver.GetQueryParamBool(r, includeContactsQueryKey)
		if value := httpserver.GetQueryParam(r, "stage"); value != "" {
			stage, err := domain.ParseStage(value)
			if err != nil {
				http.Error(w, invalidStageErrMessage, http.StatusBadRequest)
				return
			}
			query.Stage = stage
		}

		deals, total, err := c.service.List(r.Context(), shareddomain.ID(owner), query)
		if err != nil {
			http.Error(w, listErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, internal.ToDealResponses(deals), total, params.Pagination)
	}
}

func (c *DealController) listByStage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, err := httpserver.OwnerID(r)
		if err != nil {
			http.Error(w, unauthorizedErrMessage, http.StatusUnauthorized)
			return
		}
		stage, err := domain.ParseStage(r.PathValue("stage"))
		if err != nil {
			http.Error(w, invalidStageErrMessage, http.StatusBadRequest)
			return
		}

		deals, err := c.service.ListByStage(r.Context(), shareddomain.ID(owner), stage)
		if err != nil {
			http.Error(w, listErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.DealListResponse{Data: internal.ToDealResponses(deals)})
	}
}

func (c *DealController) pipeline() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, err := httpserver.OwnerID(r)
		if err != nil {
			http.Error(w, unauthorizedErrMessage, http.StatusUnauthorized)
			return
		}

		columns, err := c.service.Pipeline(r.Context(), shareddomain.ID(owner))
		if err != nil {
			http.Error(w, pipelineErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToPipelineResponse(columns))
	}
}

func (c *DealController) dealStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, err := httpserver.OwnerID(r)
		if err != nil {
			http.Error(w, unauthorizedErrMessage, http.StatusUnauthorized)
			return
		}

		stats, err := c.service.Stats(r.Context(), shareddomain.ID(owner))
		if err != nil {
			http.Error(w, statsErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToStatsResponse(stats))
	}
}

func (c *DealController) getDeal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, err := httpserver.OwnerID(r)
		if err != nil {
			http.Error(w, unauthorizedErrMessage, http.StatusUnauthorized)
			return
		}

		deal, err := c.service.Get(r.Context(), shareddomain.ID(owner), shareddomain.ID(r.PathValue("id")))
		if errors.Is(err, usecases.ErrDealNotFound) {
			http.Error(w, notFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, getErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToDealResponse(deal))
	}
}

func (c *DealController) createDeal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, err := httpserver.OwnerID(r)
		if err != nil {
			http.Error(w, unauthorizedErrMessage, http.StatusUnauthorized)
			return
		}

		var body internal.DealCreateRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, invalidDealErrMessage, http.StatusBadRequest)
			return
		}
		expectedClose, err := internal.ParseExpectedClose(body.ExpectedClose, c.location)
		if err != nil {
			http.Error(w, invalidDateErrMessage, http.StatusBadRequest)
			return
		}

		deal, err := domain.NewDealBuilder().
			WithOwnerID(shareddomain.ID(owner)).
			WithName(body.Name).
			WithStage(body.Stage).
			WithValue(body.Value).
			WithCurrency(body.Currency).
			WithExpectedClose(expectedClose).
			WithNotes(body.Notes).
			WithContactIDs(internal.ToIDs(body.ContactIDs)).
			WithCustomFields(body.CustomFields).
			Build()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		err = c.service.Create(r.Context(), deal)
		if isValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err != nil {
			http.Error(w, createErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.DealCreateResponse{ID: deal.ID.String()})
	}
}

func (c *DealController) updateDeal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, err := httpserver.OwnerID(r)
		if err != nil {
			http.Error(w, unauthorizedErrMessage, http.StatusUnauthorized)
			return
		}

		var body internal.DealUpdateRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, invalidDealErrMessage, http.StatusBadRequest)
			return
		}
		changes, err := body.ToChanges(c.location)
		if err != nil {
			http.Error(w, invalidDateErrMessage, http.StatusBadRequest)
			return
		}

		deal, err := c.service.Update(r.Context(), shareddomain.ID(owner), shareddomain.ID(r.PathValue("id")), changes)
		switch {
		case err == nil:
			httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToDealResponse(deal))
		case errors.Is(err, usecases.ErrDealNotFound):
			http.Error(w, notFoundErrMessage, http.StatusNotFound)
		case isValidationError(err):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			slog.Error("updating deal", slog.String("error", err.Error()))
			http.Error(w, updateErrMessage, http.StatusInternalServerError)
		}
	}
}

func (c *DealController) moveDeal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, err := httpserver.OwnerID(r)
		if err != nil {
			http.Error(w, unauthorizedErrMessage, http.StatusUnauthorized)
			return
		}

		var body internal.StageRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, invalidDealErrMessage, http.StatusBadRequest)
			return
		}
		stage, err := domain.ParseStage(body.Stage)
		if err != nil {
			http.Error(w, invalidStageErrMessage, http.StatusBadRequest)
			return
		}

		deal, err := c.service.UpdateStage(r.Context(), shareddomain.ID(owner), shareddomain.ID(r.PathValue("id")), stage)
		switch {
		case err == nil:
			httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToDealResponse(deal))
		case errors.Is(err, usecases.ErrDealNotFound):
			http.Error(w, notFoundErrMessage, http.StatusNotFound)
		default:
			slog.Error("moving deal", slog.String("error", err.Error()))
			http.Error(w, moveErrMessage, http.StatusInternalServerError)
		}
	}
}

func (c *DealController) deleteDeal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, err := httpserver.OwnerID(r)
		if err != nil {
			http.Error(w, unauthorizedErrMessage, http.StatusUnauthorized)
			return
		}

		err = c.service.Delete(r.Context(), shareddomain.ID(owner), shareddomain.ID(r.PathValue("id")))
		if errors.Is(err, usecases.ErrDealNotFound) {
			http.Error(w, notFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, deleteErrMessage, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func isValidationError(err error) bool {
	return errors.Is(err, domain.ErrNameRequired) ||
		errors.Is(err, domain.ErrInvalidStage) ||
		errors.Is(err, domain.ErrInvalidValue) ||
		errors.Is(err, usecases.ErrUnknownContacts) ||
		errors.Is(err, shareddomain.ErrUnknownCustomField) ||
		errors.Is(err, shareddomain.ErrInvalidFieldValue)
}

func ToListQuery(params sharedhttpapi.ListParams) usecases.ListQuery {
	return usecases.ListQuery{
		Search:  params.Search,
		Filters: params.Filters,
		Sort:    params.Sort,
		Pagination: usecases.Pagination{
			Limit:  params.Pagination.Limit,
			Offset: params.Pagination.Offset(),
		},
	}
}
