package internal

import (
	"crm-server/internal/customfields/domain"
	"crm-server/internal/customfields/usecases"
	"crm-server/internal/infra/utils"
	shareddomain "crm-server/internal/shared_kernel/domain"
)

type CustomFieldResponse struct {
	ID         string     `json:"id"`
	EntityType string     `json:"entityType"`
	FieldKey   string     `json:"fieldKey"`
	Label      string     `json:"label"`
	FieldType  string     `json:"fieldType"`
	CreatedAt  utils.Time `json:"createdAt"`
	UpdatedAt  utils.Time `json:"updatedAt"`
}

type CustomFieldListResponse struct {
	Data []CustomFieldResponse `json:"data"`
}

type CustomFieldCreateRequest struct {
	EntityType string `json:"entityType"`
	FieldKey   string `json:"fieldKey"`
	Label      string `json:"label"`
	FieldType  string `json:"fieldType"`
}

type CustomFieldCreateResponse struct {
	ID string `json:"id"`
}

type CustomFieldUpdateRequest struct {
	Label     *string `json:"label,omitempty"`
	FieldType *string `json:"fieldType,omitempty"`
}

func (r CustomFieldUpdateRequest) ToChanges() (usecases.DefinitionChanges, error) {
	changes := usecases.DefinitionChanges{Label: r.Label}
	if r.FieldType != nil {
		fieldType, err := shareddomain.ParseFieldType(*r.FieldType)
		if err != nil {
			return usecases.DefinitionChanges{}, err
		}
		changes.Type = &fieldType
	}
	return changes, nil
}

func ToCustomFieldResponse(definition domain.Definition) CustomFieldResponse {
	return CustomFieldResponse{
		ID:         definition.ID.String(),
		EntityType: definition.EntityType.String(),
		FieldKey:   definition.Key,
		Label:      definition.Label,
		FieldType:  string(definition.Type),
		CreatedAt:  utils.Time{Time: definition.CreatedAt},
		UpdatedAt:  utils.Time{Time: definition.UpdatedAt},
	}
}

func ToCustomFieldListResponse(definitions []domain.Definition) CustomFieldListResponse {
	data := make([]CustomFieldResponse, len(definitions))
	for i, definition := range definitions {
		data[i] = ToCustomFieldResponse(definition)
	}
	return CustomFieldListResponse{Data: data}
}
