package domain_test

import (
	"crm-server/internal/customfields/domain"
	shareddomain "crm-server/internal/shared_kernel/domain"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Definition", func() {
	Context("Build", func() {
		It("should build a definition with a text type by default", func() {
			definition, err := domain.NewDefinitionBuilder().
				WithOwnerID("user-1").
				WithEntityType("contact").
				WithKey("region").
				WithLabel("  Region ").
				Build()

			Expect(err).NotTo(HaveOccurred())
			Expect(definition.ID).NotTo(BeEmpty())
			Expect(definition.EntityType).To(Equal(shareddomain.EntityTypeContact))
			Expect(definition.Label).To(Equal("Region"))
			Expect(definition.Type).To(Equal(shareddomain.FieldTypeText))
			Expect(definition.CreatedAt).To(Equal(definition.UpdatedAt))
		})

		DescribeTable("invalid input",
			func(owner, entityType, key, label, fieldType string, expected error) {
				b := domain.NewDefinitionBuilder().
					WithOwnerID(shareddomain.ID(owner)).
					WithEntityType(entityType).
					WithKey(key).
					WithLabel(label)
				if fieldType != "" {
					b = b.WithType(fieldType)
				}

				_, err := b.Build()

				Expect(err).To(MatchError(expected))
			},
			Entry("missing owner", "", "deal", "budget", "Budget", "", domain.ErrOwnerRequired),
			Entry("unknown entity", "user-1", "company", "budget", "Budget", "", shareddomain.ErrInvalidEntityType),
			Entry("key with spaces", "user-1", "deal", "my budget", "Budget", "", domain.ErrInvalidFieldKey),
			Entry("key too long", "user-1", "deal", strings.Repeat("k", 101), "Budget", "", domain.ErrInvalidFieldKey),
			Entry("blank label", "user-1", "deal", "budget", "   ", "", domain.ErrInvalidLabel),
			Entry("label too long", "user-1", "deal", "budget", strings.Repeat("l", 101), "", domain.ErrInvalidLabel),
			Entry("unknown type", "user-1", "deal", "budget", "Budget", "currency", shareddomain.ErrInvalidFieldType),
		)

		It("should accept keys with dashes and underscores", func() {
			definition, err := domain.NewDefinitionBuilder().
				WithOwnerID("user-1").
				WithEntityType("deal").
				WithKey("lead-source_2").
				WithLabel("Lead source").
				WithType("number").
				Build()

			Expect(err).NotTo(HaveOccurred())
			Expect(definition.Key).To(Equal("lead-source_2"))
			Expect(definition.Type).To(Equal(shareddomain.FieldTypeNumber))
		})
	})

	Context("changes", func() {
		var definition domain.Definition

		BeforeEach(func() {
			var err error
			definition, err = domain.NewDefinitionBuilder().
				WithOwnerID("user-1").
				WithEntityType("deal").
				WithKey("budget").
				WithLabel("Budget").
				Build()
			Expect(err).NotTo(HaveOccurred())
		})

		It("should relabel", func() {
			Expect(definition.Relabel(" Annual budget ")).To(Succeed())
			Expect(definition.Label).To(Equal("Annual budget"))
		})

		It("should reject an empty label", func() {
			Expect(definition.Relabel("")).To(MatchError(domain.ErrInvalidLabel))
			Expect(definition.Label).To(Equal("Budget"))
		})

		It("should change the type", func() {
			Expect(definition.ChangeType(shareddomain.FieldTypeDate)).To(Succeed())
			Expect(definition.Type).To(Equal(shareddomain.FieldTypeDate))
		})

		It("should reject an unknown type", func() {
			Expect(definition.ChangeType("money")).To(MatchError(shareddomain.ErrInvalidFieldType))
		})
	})
})

var _ = Describe("Catalog", func() {
	catalog := domain.Catalog{
		{Key: "region", Type: shareddomain.FieldTypeText},
		{Key: "budget", Type: shareddomain.FieldTypeNumber},
	}

	It("should index types by key", func() {
		Expect(catalog.Types()).To(Equal(map[string]shareddomain.FieldType{
			"region": shareddomain.FieldTypeText,
			"budget": shareddomain.FieldTypeNumber,
		}))
	})

	It("should list keys in order", func() {
		Expect(catalog.Keys()).To(Equal([]string{"budget", "region"}))
	})

	It("should expose filter definitions", func() {
		definitions := catalog.FilterDefinitions()
		Expect(definitions).To(HaveLen(2))
		Expect(definitions[1].Key).To(Equal("budget"))
		Expect(definitions[1].Type).To(Equal(shareddomain.FieldTypeNumber))
	})
})
