package httpapi

import (
	"context"
	"crm-server/internal/deals/httpapi/internal"
	"crm-server/internal/deals/usecases"
	shareddomain "crm-server/internal/shared_kernel/domain"
	sharedhttpapi "crm-server/internal/shared_kernel/httpapi"
)

// NewDealLiveSource answers live list sessions on /v1/deals/live. Linked
// contacts are always included.
func NewDealLiveSource(service usecases.DealService) *DealLiveSource {
	return &DealLiveSource{service: service}
}

var _ sharedhttpapi.LiveQuerySource = (*DealLiveSource)(nil)

type DealLiveSource struct {
	service usecases.DealService
}

func (s *DealLiveSource) LiveQuery(ctx context.Context, ownerID shareddomain.ID, params sharedhttpapi.ListParams) (any, int, error) {
	query := ToListQuery(params)
	query.IncludeContacts = true
	deals, total, err := s.service.List(ctx, ownerID, query)
	if err != nil {
		return nil, 0, err
	}
	return internal.ToDealResponses(deals), total, nil
}
