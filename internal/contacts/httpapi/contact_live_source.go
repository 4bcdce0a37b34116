package httpapi

import (
	"context"
	"crm-server/internal/contacts/httpapi/internal"
	"crm-server/internal/contacts/usecases"
	shareddomain "crm-server/internal/shared_kernel/domain"
	sharedhttpapi "crm-server/internal/shared_kernel/httpapi"
)

// NewContactLiveSource answers live list sessions on /v1/contacts/live.
func NewContactLiveSource(service usecases.ContactService) *ContactLiveSource {
	return &ContactLiveSource{service: service}
}

var _ sharedhttpapi.LiveQuerySource = (*ContactLiveSource)(nil)

type ContactLiveSource struct {
	service usecases.ContactService
}

func (s *ContactLiveSource) LiveQuery(ctx context.Context, ownerID shareddomain.ID, params sharedhttpapi.ListParams) (any, int, error) {
	contacts, total, err := s.service.List(ctx, ownerID, ToListQuery(params))
	if err != nil {
		return nil, 0, err
	}
	return internal.ToContactResponses(contacts), total, nil
}
