package internal

import (
	"crm-server/internal/deals/domain"
	"crm-server/internal/infra/utils"
	shareddomain "crm-server/internal/shared_kernel/domain"
	"strings"
	"time"
)

type ContactSummaryResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Company   string `json:"company"`
}

type DealResponse struct {
	ID            string                    `json:"id"`
	Name          string                    `json:"name"`
	Stage         string                    `json:"stage"`
	Value         string                    `json:"value"`
	Currency      string                    `json:"currency"`
	ExpectedClose *utils.Time               `json:"expectedClose"`
	Notes         string                    `json:"notes"`
	ContactIDs    []string                  `json:"contactIds"`
	Contacts      []ContactSummaryResponse  `json:"contacts"`
	CustomFields  shareddomain.CustomFields `json:"customFields"`
	CreatedAt     utils.Time                `json:"createdAt"`
	UpdatedAt     utils.Time                `json:"updatedAt"`
}

type DealCreateRequest struct {
	Name          string                    `json:"name"`
	Stage         string                    `json:"stage"`
	Value         string                    `json:"value"`
	Currency      string                    `json:"currency"`
	ExpectedClose string                    `json:"expectedClose"`
	Notes         string                    `json:"notes"`
	ContactIDs    []string                  `json:"contactIds"`
	CustomFields  shareddomain.CustomFields `json:"customFields"`
}

type DealCreateResponse struct {
	ID string `json:"id"`
}

// DealUpdateRequest leaves absent fields untouched. An empty expectedClose
// clears the date.
type DealUpdateRequest struct {
	Name          *string                   `json:"name,omitempty"`
	Stage         *string                   `json:"stage,omitempty"`
	Value         *string                   `json:"value,omitempty"`
	Currency      *string                   `json:"currency,omitempty"`
	ExpectedClose *string                   `json:"expectedClose,omitempty"`
	Notes         *string                   `json:"notes,omitempty"`
	ContactIDs    *[]string                 `json:"contactIds,omitempty"`
	CustomFields  shareddomain.CustomFields `json:"customFields,omitempty"`
}

type StageRequest struct {
	Stage string `json:"stage"`
}

type StatsResponse struct {
	TotalDeals   int64            `json:"totalDeals"`
	DealsByStage map[string]int64 `json:"dealsByStage"`
	TotalValue   string           `json:"totalValue"`
	WonValue     string           `json:"wonValue"`
}

type PipelineColumnResponse struct {
	Stage string         `json:"stage"`
	Total string         `json:"total"`
	Count int            `json:"count"`
	Deals []DealResponse `json:"deals"`
}

type PipelineResponse struct {
	Stages []PipelineColumnResponse `json:"stages"`
}

type DealListResponse struct {
	Data []DealResponse `json:"data"`
}

// ParseExpectedClose reads an ISO date or date-time in loc. Blank means no
// date.
func ParseExpectedClose(value string, loc *time.Location) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, _, err := shareddomain.ParseISODate(value, loc)
	if err != nil {
		return nil, err
	}
	return utils.TimePtr(t.UTC()), nil
}

func ToIDs(values []string) []shareddomain.ID {
	ids := make([]shareddomain.ID, len(values))
	for i, value := range values {
		ids[i] = shareddomain.ID(value)
	}
	return ids
}

func (r DealUpdateRequest) ToChanges(loc *time.Location) (domain.Changes, error) {
	changes := domain.Changes{
		Name:         r.Name,
		Stage:        r.Stage,
		Value:        r.Value,
		Currency:     r.Currency,
		Notes:        r.Notes,
		CustomFields: r.CustomFields,
	}
	if r.ExpectedClose != nil {
		expectedClose, err := ParseExpectedClose(*r.ExpectedClose, loc)
		if err != nil {
			return domain.Changes{}, err
		}
		changes.ExpectedClose = expectedClose
		changes.ClearExpectedClose = expectedClose == nil
	}
	if r.ContactIDs != nil {
		ids := ToIDs(*r.ContactIDs)
		changes.ContactIDs = &ids
	}
	return changes, nil
}

func ToDealResponse(deal domain.Deal) DealResponse {
	var expectedClose *utils.Time
	if deal.ExpectedClose != nil {
		expectedClose = &utils.Time{Time: *deal.ExpectedClose}
	}
	custom := deal.Custom
	if custom == nil {
		custom = shareddomain.CustomFields{}
	}
	contactIDs := make([]string, len(deal.ContactIDs))
	for i, id := range deal.ContactIDs {
		contactIDs[i] = id.String()
	}
	contacts := make([]ContactSummaryResponse, len(deal.Contacts))
	for i, contact := range deal.Contacts {
		contacts[i] = ContactSummaryResponse{
			ID:        contact.ID.String(),
			FirstName: contact.FirstName,
			LastName:  contact.LastName,
			Email:     contact.Email,
			Company:   contact.Company,
		}
	}
	return DealResponse{
		ID:            deal.ID.String(),
		Name:          deal.Name,
		Stage:         deal.Stage.String(),
		Value:         deal.ValueText(),
		Currency:      deal.Currency,
		ExpectedClose: expectedClose,
		Notes:         deal.Notes,
		ContactIDs:    contactIDs,
		Contacts:      contacts,
		CustomFields:  custom,
		CreatedAt:     utils.Time{Time: deal.CreatedAt},
		UpdatedAt:     utils.Time{Time: deal.UpdatedAt},
	}
}

func ToDealResponses(deals []domain.Deal) []DealResponse {
	result := make([]DealResponse, len(deals))
	for i, deal := range deals {
		result[i] = ToDealResponse(deal)
	}
	return result
}

func ToPipelineResponse(columns []domain.PipelineColumn) PipelineResponse {
	stages := make([]PipelineColumnResponse, len(columns))
	for i, column := range columns {
		stages[i] = PipelineColumnResponse{
			Stage: column.Stage.String(),
			Total: column.Total.String(),
			Count: len(column.Deals),
			Deals: ToDealResponses(column.Deals),
		}
	}
	return PipelineResponse{Stages: stages}
}

func ToStatsResponse(stats domain.Stats) StatsResponse {
	return StatsResponse{
		TotalDeals:   stats.TotalDeals,
		DealsByStage: stats.DealsByStage,
		TotalValue:   stats.TotalValue.String(),
		WonValue:     stats.WonValue.String(),
	}
}

// PipelineEventResponse is one message on the pipeline stream.
type PipelineEventResponse struct {
	Type          string        `json:"type"`
	DealID        string        `json:"dealId"`
	PreviousStage string        `json:"previousStage,omitempty"`
	Stage         string        `json:"stage,omitempty"`
	Deal          *DealResponse `json:"deal,omitempty"`
	OccurredAt    utils.Time    `json:"occurredAt"`
}

func ToPipelineEventResponse(update domain.PipelineUpdate) PipelineEventResponse {
	response := PipelineEventResponse{
		Type:          string(update.Event),
		DealID:        update.DealID.String(),
		PreviousStage: update.PreviousStage.String(),
		Stage:         update.Stage.String(),
		OccurredAt:    utils.Time{Time: update.OccurredAt},
	}
	if update.Deal != nil {
		deal := ToDealResponse(*update.Deal)
		response.Deal = &deal
	}
	return response
}
