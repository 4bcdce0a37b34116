package httpapi

import (
	"crm-server/internal/customfields/domain"
	"crm-server/internal/customfields/httpapi/internal"
	"crm-server/internal/customfields/usecases"
	"crm-server/internal/infra/httpserver"
	shareddomain "crm-server/internal/shared_kernel/domain"
	"errors"
	"log/slog"
	"net/http"
)

const (
	unauthorizedErrMessage       = "missing user"
	invalidEntityTypeErrMessage  = "entityType must be contact or deal"
	invalidCustomFieldErrMessage = "invalid custom field"
	duplicateKeyErrMessage       = "a custom field with this key already exists for this entity type"
	notFoundErrMessage           = "custom field definition not found"
	listErrMessage               = "failed to list custom fields"
	createErrMessage             = "failed to create custom field"
	updateErrMessage             = "failed to update custom field"
	deleteErrMessage             = "failed to delete custom field"
)

func NewCustomFieldController(service usecases.CustomFieldService) *CustomFieldController {
	return &CustomFieldController{
		service: service,
	}
}

var _ httpserver.Controller = &CustomFieldController{}

type CustomFieldController struct {
	service usecases.CustomFieldService
}

func (c *CustomFieldController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/custom-fields", c.listCustomFields())
	router.Handle("POST /v1/custom-fields", c.createCustomField())
	router.Handle("PUT /v1/custom-fields/{id}", c.updateCustomField())
	router.Handle("DELETE /v1/custom-fields/{id}", c.deleteCustomField())
}

func (c *CustomFieldController) listCustomFields() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, err := httpserver.OwnerID(r)
		if err != nil {
			http.Error(w, unauthorizedErrMessage, http.StatusUnauthorized)
			return
		}
		entityType, err := shareddomain.ParseEntityType(httpserver.GetQueryParam(r, "entityType"))
		if err != nil {
			http.Error(w, invalidEntityTypeErrMessage, http.StatusBadRequest)
			return
		}

		definitions, err := c.service.List(r.Context(), shareddomain.ID(owner), entityType)
		if err != nil {
			http.Error(w, listErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToCustomFieldListResponse(definitions))
	}
}

func (c *CustomFieldController) createCustomField() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, err := httpserver.OwnerID(r)
		if err != nil {
			http.Error(w, unauthorizedErrMessage, http.StatusUnauthorized)
			return
		}

		var body internal.CustomFieldCreateRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, invalidCustomFieldErrMessage, http.StatusBadRequest)
			return
		}

		definition, err := domain.NewDefinitionBuilder().
			WithOwnerID(shareddomain.ID(owner)).
			WithEntityType(body.EntityType).
			WithKey(body.FieldKey).
			WithLabel(body.Label).
			WithType(body.FieldType).
			Build()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		err = c.service.Create(r.Context(), definition)
		if errors.Is(err, usecases.ErrDuplicateFieldKey) {
			http.Error(w, duplicateKeyErrMessage, http.StatusConflict)
			return
		}
		if err != nil {
			http.Error(w, createErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.CustomFieldCreateResponse{ID: definition.ID.String()})
	}
}

func (c *CustomFieldController) updateCustomField() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, err := httpserver.OwnerID(r)
		if err != nil {
			http.Error(w, unauthorizedErrMessage, http.StatusUnauthorized)
			return
		}

		var body internal.CustomFieldUpdateRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, invalidCustomFieldErrMessage, http.StatusBadRequest)
			return
		}
		changes, err := body.ToChanges()
		if err != nil {
			http.Error(w, invalidCustomFieldErrMessage, http.StatusBadRequest)
			return
		}

		definition, err := c.service.Update(r.Context(), shareddomain.ID(owner), shareddomain.ID(r.PathValue("id")), changes)
		switch {
		case err == nil:
			httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToCustomFieldResponse(definition))
		case errors.Is(err, usecases.ErrCustomFieldNotFound):
			http.Error(w, notFoundErrMessage, http.StatusNotFound)
		case errors.Is(err, domain.ErrInvalidLabel), errors.Is(err, shareddomain.ErrInvalidFieldType):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			slog.Error("updating custom field", slog.String("error", err.Error()))
			http.Error(w, updateErrMessage, http.StatusInternalServerError)
		}
	}
}

func (c *CustomFieldController) deleteCustomField() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, err := httpserver.OwnerID(r)
		if err != nil {
			http.Error(w, unauthorizedErrMessage, http.StatusUnauthorized)
			return
		}

		err = c.service.Delete(r.Context(), shareddomain.ID(owner), shareddomain.ID(r.PathValue("id")))
		if errors.Is(err, usecases.ErrCustomFieldNotFound) {
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
