package domain_test

import (
	"crm-server/internal/contacts/domain"
	"crm-server/internal/query/filter"
	shareddomain "crm-server/internal/shared_kernel/domain"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Contact", func() {
	text := func(value string) *string { return &value }

	build := func(company string) domain.Contact {
		contact, err := domain.NewContactBuilder().
			WithOwnerID("user-1").
			WithFirstName("Ada").
			WithLastName("Lovelace").
			WithCompany(company).
			Build()
		Expect(err).NotTo(HaveOccurred())
		return contact
	}

	Context("Build", func() {
		It("should trim names and start with empty tags and fields", func() {
			contact, err := domain.NewContactBuilder().
				WithOwnerID("user-1").
				WithFirstName("  Ada ").
				WithTags([]string{"vip", " vip", "", "lead"}).
				Build()

			Expect(err).NotTo(HaveOccurred())
			Expect(contact.FirstName).To(Equal("Ada"))
			Expect(contact.Tags).To(Equal([]string{"vip", "lead"}))
			Expect(contact.Custom).To(BeEmpty())
			Expect(contact.ID).NotTo(BeEmpty())
		})

		It("should require an owner", func() {
			_, err := domain.NewContactBuilder().WithFirstName("Ada").Build()
			Expect(err).To(MatchError(domain.ErrOwnerRequired))
		})

		It("should reject a malformed email", func() {
			_, err := domain.NewContactBuilder().WithOwnerID("user-1").WithEmail("ada@").Build()
			Expect(err).To(MatchError(domain.ErrInvalidEmail))
		})

		It("should accept a blank email", func() {
			contact, err := domain.NewContactBuilder().WithOwnerID("user-1").WithEmail("  ").Build()
			Expect(err).NotTo(HaveOccurred())
			Expect(contact.Email).To(BeEmpty())
		})
	})

	Context("Apply", func() {
		It("should only touch the given fields", func() {
			contact := build("Acme Corp")
			contact.Email = "ada@example.com"

			Expect(contact.Apply(domain.Changes{JobTitle: text("CTO")})).To(Succeed())

			Expect(contact.JobTitle).To(Equal("CTO"))
			Expect(contact.Company).To(Equal("Acme Corp"))
			Expect(contact.Email).To(Equal("ada@example.com"))
		})

		It("should clear the email when given an empty one", func() {
			contact := build("Acme Corp")
			contact.Email = "ada@example.com"

			Expect(contact.Apply(domain.Changes{Email: text("")})).To(Succeed())

			Expect(contact.Email).To(BeEmpty())
		})

		It("should keep the contact unchanged on an invalid email", func() {
			contact := build("Acme Corp")

			err := contact.Apply(domain.Changes{Email: text("nope"), Company: text("Other")})

			Expect(err).To(MatchError(domain.ErrInvalidEmail))
			Expect(contact.Company).To(Equal("Acme Corp"))
		})

		It("should merge custom fields and drop emptied keys", func() {
			contact := build("Acme Corp")
			contact.Custom = shareddomain.CustomFields{"region": shareddomain.TextValue("north"), "budget": shareddomain.NumberValue(10)}

			err := contact.Apply(domain.Changes{CustomFields: shareddomain.CustomFields{
				"region": shareddomain.TextValue(""),
				"tier":   shareddomain.TextValue("gold"),
			}})

			Expect(err).NotTo(HaveOccurred())
			Expect(contact.Custom.Keys()).To(Equal([]string{"budget", "tier"}))
		})
	})

	Context("FieldValue", func() {
		It("should expose the full name", func() {
			value, found := build("").FieldValue("name")
			Expect(found).To(BeTrue())
			Expect(value.AsText()).To(Equal("Ada Lovelace"))
		})

		It("should treat empty columns as missing", func() {
			_, found := build("").FieldValue("company")
			Expect(found).To(BeFalse())
		})

		It("should expose timestamps as dates", func() {
			created := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
			contact, err := domain.NewContactBuilder().WithOwnerID("user-1").WithCreatedAt(created).Build()
			Expect(err).NotTo(HaveOccurred())

			value, found := contact.FieldValue("createdAt")

			Expect(found).To(BeTrue())
			Expect(value.Kind()).To(Equal(shareddomain.ValueKindDate))
		})
	})

	Context("filtering", func() {
		compile := func(filters ...filter.ColumnFilter) filter.Expr {
			return filter.NewCompiler(filter.ContactCatalog(), time.UTC).Compile(filter.Query{OwnerID: "user-1", Filters: filters}, nil)
		}

		It("should match company prefixes only at the start", func() {
			predicate := compile(filter.ColumnFilter{ColumnID: "company", Operator: filter.OperatorStartsWith, Value: "Acme"})

			Expect(filter.Matches(predicate, build("Acme Corp"))).To(BeTrue())
			Expect(filter.Matches(predicate, build("The Acme Co"))).To(BeFalse())
		})

		It("should match the name filter on first or last name", func() {
			predicate := compile(filter.ColumnFilter{ColumnID: "name", Operator: filter.OperatorEquals, Value: "lovelace"})

			Expect(filter.Matches(predicate, build(""))).To(BeTrue())
		})

		It("should not match contacts of another owner", func() {
			contact := build("Acme Corp")
			contact.OwnerID = "user-2"

			Expect(filter.Matches(compile(), contact)).To(BeFalse())
		})
	})
})
