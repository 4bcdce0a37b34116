package httpapi

import (
	"crm-server/internal/contacts/domain"
	"crm-server/internal/contacts/httpapi/internal"
	"crm-server/internal/contacts/usecases"
	"crm-server/internal/infra/httpserver"
	shareddomain "crm-server/internal/shared_kernel/domain"
	sharedhttpapi "crm-server/internal/shared_kernel/httpapi"
	"errors"
	"log/slog"
	"net/http"
)

const (
	unauthorizedErrMessage   = "missing user"
	invalidContactErrMessage = "invalid contact"
	emptySearchErrMessage    = "q is required"
	notFoundErrMessage       = "contact not found"
	listErrMessage           = "failed to list contacts"
	searchErrMessage         = "failed to search contacts"
	statsErrMessage          = "failed to compute contact stats"
	getErrMessage            = "failed to get contact"
	createErrMessage         = "failed to create contact"
	updateErrMessage         = "failed to update contact"
	deleteErrMessage         = "failed to delete contact"
)

func NewContactController(service usecases.ContactService) *ContactController {
	return &ContactController{
		service: service,
	}
}

var _ httpserver.Controller = &ContactController{}

type ContactController struct {
	service usecases.ContactService
}

func (c *ContactController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/contacts", c.listContacts())
	router.Handle("POST /v1/contacts", c.createContact())
	router.Handle("GET /v1/contacts/search", c.searchContacts())
	router.Handle("GET /v1/contacts/stats", c.contactStats())
	router.Handle("GET /v1/contacts/{id}", c.getContact())
	router.Handle("PUT /v1/contacts/{id}", c.updateContact())
	router.Handle("DELETE /v1/contacts/{id}", c.deleteContact())
}

func (c *ContactController) listContacts() http.HandlerFunc {
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

		contacts, total, err := c.service.List(r.Context(), shareddomain.ID(owner), ToListQuery(params))
		if err != nil {
			http.Error(w, listErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, internal.ToContactResponses(contacts), total, params.Pagination)
	}
}

func (c *ContactController) searchContacts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, err := httpserver.OwnerID(r)
		if err != nil {
			http.Error(w, unauthorizedErrMessage, http.StatusUnauthorized)
			return
		}
		term := httpserver.GetQueryParam(r, "q")
		if term == "" {
			http.Error(w, emptySearchErrMessage, http.StatusBadRequest)
			return
		}
		limit := httpserver.GetQueryParamInt(r, "limit", usecases.DefaultSearchLimit)

		contacts, err := c.service.Search(r.Context(), shareddomain.ID(owner), term, limit)
		if err != nil {
			http.Error(w, searchErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ContactSearchResponse{Data: internal.ToContactResponses(contacts)})
	}
}

func (c *ContactController) contactStats() http.HandlerFunc {
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

func (c *ContactController) getContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, err := httpserver.OwnerID(r)
		if err != nil {
			http.Error(w, unauthorizedErrMessage, http.StatusUnauthorized)
			return
		}

		contact, err := c.service.Get(r.Context(), shareddomain.ID(owner), shareddomain.ID(r.PathValue("id")))
		if errors.Is(err, usecases.ErrContactNotFound) {
			http.Error(w, notFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, getErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToContactResponse(contact))
	}
}

func (c *ContactController) createContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, err := httpserver.OwnerID(r)
		if err != nil {
			http.Error(w, unauthorizedErrMessage, http.StatusUnauthorized)
			return
		}

		var body internal.ContactCreateRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, invalidContactErrMessage, http.StatusBadRequest)
			return
		}

		contact, err := domain.NewContactBuilder().
			WithOwnerID(shareddomain.ID(owner)).
			WithFirstName(body.FirstName).
			WithLastName(body.LastName).
			WithEmail(body.Email).
			WithPhone(body.Phone).
			WithCompany(body.Company).
			WithJobTitle(body.JobTitle).
			WithNotes(body.Notes).
			WithTags(body.Tags).
			WithCustomFields(body.CustomFields).
			Build()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		err = c.service.Create(r.Context(), contact)
		if isValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err != nil {
			http.Error(w, createErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ContactCreateResponse{ID: contact.ID.String()})
	}
}

func (c *ContactController) updateContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, err := httpserver.OwnerID(r)
		if err != nil {
			http.Error(w, unauthorizedErrMessage, http.StatusUnauthorized)
			return
		}

		var body internal.ContactUpdateRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, invalidContactErrMessage, http.StatusBadRequest)
			return
		}

		contact, err := c.service.Update(r.Context(), shareddomain.ID(owner), shareddomain.ID(r.PathValue("id")), body.ToChanges())
		switch {
		case err == nil:
			httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToContactResponse(contact))
		case errors.Is(err, usecases.ErrContactNotFound):
			http.Error(w, notFoundErrMessage, http.StatusNotFound)
		case isValidationError(err):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			slog.Error("updating contact", slog.String("error", err.Error()))
			http.Error(w, updateErrMessage, http.StatusInternalServerError)
		}
	}
}

func (c *ContactController) deleteContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, err := httpserver.OwnerID(r)
		if err != nil {
			http.Error(w, unauthorizedErrMessage, http.StatusUnauthorized)
			return
		}

		err = c.service.Delete(r.Context(), shareddomain.ID(owner), shareddomain.ID(r.PathValue("id")))
		if errors.Is(err, usecases.ErrContactNotFound) {
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
	return errors.Is(err, domain.ErrInvalidEmail) ||
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
