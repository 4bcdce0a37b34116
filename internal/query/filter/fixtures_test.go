package filter_test

import (
	"crm-server/internal/shared_kernel/domain"
	"time"
)

type testRecord struct {
	id     string
	fields map[string]domain.FieldValue
	custom domain.CustomFields
}

func (r testRecord) FieldValue(id string) (domain.FieldValue, bool) {
	value, found := r.fields[id]
	return value, found
}

func (r testRecord) CustomFields() domain.CustomFields {
	return r.custom
}

type contactFixture struct {
	ID        string
	OwnerID   string
	FirstName string
	LastName  string
	Email     string
	Company   string
	CreatedAt time.Time
	Custom    domain.CustomFields
}

func (c contactFixture) record() testRecord {
	custom := c.Custom
	if custom == nil {
		custom = domain.CustomFields{}
	}
	return testRecord{
		id: c.ID,
		fields: map[string]domain.FieldValue{
			"ownerId":   domain.TextValue(c.OwnerID),
			"firstName": domain.TextValue(c.FirstName),
			"lastName":  domain.TextValue(c.LastName),
			"email":     domain.TextValue(c.Email),
			"company":   domain.TextValue(c.Company),
			"createdAt": domain.DateValue(c.CreatedAt),
		},
		custom: custom,
	}
}

func contactFixtures() []contactFixture {
	return []contactFixture{
		{
			ID: "c1", OwnerID: "owner-1", FirstName: "Ada", LastName: "Lovelace", Email: "ada@acme.test",
			Company: "Acme Corp", CreatedAt: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			Custom: domain.CustomFields{"budget": domain.NumberValue(150), "vip": domain.BooleanValue(true), "renewal": domain.DateValue(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))},
		},
		{
			ID: "c2", OwnerID: "owner-1", FirstName: "Grace", LastName: "Hopper", Email: "grace@navy.test",
			Company: "The Acme Co", CreatedAt: time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC),
			Custom: domain.CustomFields{"budget": domain.TextValue("N/A"), "vip": domain.BooleanValue(false)},
		},
		{
			ID: "c3", OwnerID: "owner-1", FirstName: "Alan", LastName: "Turing", Email: "alan@bletchley.test",
			Company: "Bletchley 100%", CreatedAt: time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC),
			Custom: domain.CustomFields{"budget": domain.NumberValue(99.5), "region": domain.TextValue("north_east")},
		},
		{
			ID: "c4", OwnerID: "owner-1", FirstName: "Edsger", LastName: "Acmeson", Email: "",
			Company: "", CreatedAt: time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC),
		},
		{
			ID: "c5", OwnerID: "owner-2", FirstName: "Ada", LastName: "Other", Email: "ada@other.test",
			Company: "Acme Corp", CreatedAt: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
			Custom: domain.CustomFields{"budget": domain.NumberValue(500)},
		},
	}
}
