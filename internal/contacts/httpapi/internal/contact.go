package internal

import (
	"crm-server/internal/contacts/domain"
	"crm-server/internal/infra/utils"
	shareddomain "crm-server/internal/shared_kernel/domain"
)

type ContactResponse struct {
	ID           string                    `json:"id"`
	FirstName    string                    `json:"firstName"`
	LastName     string                    `json:"lastName"`
	Email        string                    `json:"email"`
	Phone        string                    `json:"phone"`
	Company      string                    `json:"company"`
	JobTitle     string                    `json:"jobTitle"`
	Notes        string                    `json:"notes"`
	Tags         []string                  `json:"tags"`
	CustomFields shareddomain.CustomFields `json:"customFields"`
	CreatedAt    utils.Time                `json:"createdAt"`
	UpdatedAt    utils.Time                `json:"updatedAt"`
}

type ContactCreateRequest struct {
	FirstName    string                    `json:"firstName"`
	LastName     string                    `json:"lastName"`
	Email        string                    `json:"email"`
	Phone        string                    `json:"phone"`
	Company      string                    `json:"company"`
	JobTitle     string                    `json:"jobTitle"`
	Notes        string                    `json:"notes"`
	Tags         []string                  `json:"tags"`
	CustomFields shareddomain.CustomFields `json:"customFields"`
}

type ContactCreateResponse struct {
	ID string `json:"id"`
}

type ContactUpdateRequest struct {
	FirstName    *string                   `json:"firstName,omitempty"`
	LastName     *string                   `json:"lastName,omitempty"`
	Email        *string                   `json:"email,omitempty"`
	Phone        *string                   `json:"phone,omitempty"`
	Company      *string                   `json:"company,omitempty"`
	JobTitle     *string                   `json:"jobTitle,omitempty"`
	Notes        *string                   `json:"notes,omitempty"`
	Tags         *[]string                 `json:"tags,omitempty"`
	CustomFields shareddomain.CustomFields `json:"customFields,omitempty"`
}

func (r ContactUpdateRequest) ToChanges() domain.Changes {
	return domain.Changes{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		Phone:        r.Phone,
		Company:      r.Company,
		JobTitle:     r.JobTitle,
		Notes:        r.Notes,
		Tags:         r.Tags,
		CustomFields: r.CustomFields,
	}
}

type StatsResponse struct {
	TotalContacts  int64 `json:"totalContacts"`
	TotalCompanies int64 `json:"totalCompanies"`
	RecentContacts int64 `json:"recentContacts"`
}

type ContactSearchResponse struct {
	Data []ContactResponse `json:"data"`
}

func ToContactResponse(contact domain.Contact) ContactResponse {
	tags := contact.Tags
	if tags == nil {
		tags = []string{}
	}
	custom := contact.Custom
	if custom == nil {
		custom = shareddomain.CustomFields{}
	}
	return ContactResponse{
		ID:           contact.ID.String(),
		FirstName:    contact.FirstName,
		LastName:     contact.LastName,
		Email:        contact.Email,
		Phone:        contact.Phone,
		Company:      contact.Company,
		JobTitle:     contact.JobTitle,
		Notes:        contact.Notes,
		Tags:         tags,
		CustomFields: custom,
		CreatedAt:    utils.Time{Time: contact.CreatedAt},
		UpdatedAt:    utils.Time{Time: contact.UpdatedAt},
	}
}

func ToContactResponses(contacts []domain.Contact) []ContactResponse {
	result := make([]ContactResponse, len(contacts))
	for i, contact := range contacts {
		result[i] = ToContactResponse(contact)
	}
	return result
}

func ToStatsResponse(stats domain.Stats) StatsResponse {
	return StatsResponse{
		TotalContacts:  stats.TotalContacts,
		TotalCompanies: stats.TotalCompanies,
		RecentContacts: stats.RecentContacts,
	}
}
