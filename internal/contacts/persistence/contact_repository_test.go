package persistence_test

import (
	"context"
	"crm-server/internal/contacts/domain"
	"crm-server/internal/contacts/persistence"
	"crm-server/internal/contacts/usecases"
	"crm-server/internal/infra/pubsub"
	"crm-server/internal/infra/sql"
	"crm-server/internal/infra/utils"
	"crm-server/internal/query/filter"
	shareddomain "crm-server/internal/shared_kernel/domain"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ContactRepository", func() {
	var (
		ctx        context.Context
		cancel     context.CancelFunc
		broker     *pubsub.MemoryBroker
		repository *persistence.SimpleContactRepository
	)

	newContact := func(owner, first, company string, custom shareddomain.CustomFields) domain.Contact {
		contact, err := domain.NewContactBuilder().
			WithOwnerID(shareddomain.ID(owner)).
			WithFirstName(first).
			WithCompany(company).
			WithCustomFields(custom).
			Build()
		Expect(err).NotTo(HaveOccurred())
		return contact
	}

	find := func(owner string, filters ...filter.ColumnFilter) []string {
		definitions := []filter.Definition{{Key: "budget", Type: shareddomain.FieldTypeNumber}}
		predicate := filter.NewCompiler(filter.ContactCatalog(), time.UTC).
			Compile(filter.Query{OwnerID: owner, Filters: filters}, definitions)
		contacts, total, err := repository.Find(ctx, predicate, usecases.Pagination{})
		Expect(err).NotTo(HaveOccurred())
		Expect(total).To(Equal(len(contacts)))
		names := make([]string, len(contacts))
		for i, contact := range contacts {
			names[i] = contact.FirstName
		}
		return names
	}

	BeforeEach(func() {
		ctx, cancel = context.WithCancel(context.Background())
		broker = pubsub.NewMemoryBroker()
		orm, err := sql.NewMemoryORM("contacts_" + utils.GenerateUUID())
		Expect(err).NotTo(HaveOccurred())
		repository, err = persistence.NewContactRepository(pubsub.NewMemoryPublisherFactory(broker), orm)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		cancel()
	})

	It("should store and read back a contact", func() {
		contact := newContact("user-1", "Ada", "Acme Corp", shareddomain.CustomFields{"budget": shareddomain.NumberValue(1500)})
		contact.Tags = []string{"vip"}
		Expect(repository.Create(ctx, contact)).To(Succeed())

		found, err := repository.GetByID(ctx, "user-1", contact.ID)

		Expect(err).NotTo(HaveOccurred())
		Expect(found.FirstName).To(Equal("Ada"))
		Expect(found.Tags).To(Equal([]string{"vip"}))
		n, ok := found.Custom["budget"].AsNumber()
		Expect(ok).To(BeTrue())
		Expect(n).To(Equal(1500.0))
	})

	It("should not read contacts of another owner", func() {
		contact := newContact("user-1", "Ada", "", nil)
		Expect(repository.Create(ctx, contact)).To(Succeed())

		_, err := repository.GetByID(ctx, "user-2", contact.ID)

		Expect(err).To(MatchError(usecases.ErrContactNotFound))
	})

	It("should publish a record change for every write", func() {
		changes := make(chan shareddomain.RecordChange, 3)
		pubsub.NewMemoryConsumerFactory(broker, "test").New().
			Consume(ctx, pubsub.RecordChangesTopic, func(_ context.Context, _ pubsub.Key, message pubsub.Prototype) error {
				changes <- message.(shareddomain.RecordChange)
				return nil
			}, nil)

		contact := newContact("user-1", "Ada", "", nil)
		Expect(repository.Create(ctx, contact)).To(Succeed())
		contact.LastName = "Lovelace"
		Expect(repository.Update(ctx, contact)).To(Succeed())
		Expect(repository.Delete(ctx, "user-1", contact.ID)).To(Succeed())

		var actions []shareddomain.ChangeAction
		for range 3 {
			var change shareddomain.RecordChange
			Eventually(changes).Should(Receive(&change))
			Expect(change.RecordID).To(Equal(contact.ID))
			Expect(change.EntityType).To(Equal(shareddomain.EntityTypeContact))
			actions = append(actions, change.Action)
		}
		Expect(actions).To(ConsistOf(
			shareddomain.ChangeActionCreated,
			shareddomain.ChangeActionUpdated,
			shareddomain.ChangeActionDeleted,
		))
	})

	Context("Find", func() {
		BeforeEach(func() {
			Expect(repository.Create(ctx, newContact("user-1", "Ada", "Acme Corp", shareddomain.CustomFields{"budget": shareddomain.NumberValue(1500)}))).To(Succeed())
			Expect(repository.Create(ctx, newContact("user-1", "Grace", "The Acme Co", shareddomain.CustomFields{"budget": shareddomain.TextValue("N/A")}))).To(Succeed())
			Expect(repository.Create(ctx, newContact("user-1", "Linus", "", shareddomain.CustomFields{"budget": shareddomain.TextValue("200")}))).To(Succeed())
			Expect(repository.Create(ctx, newContact("user-2", "Alan", "Acme Corp", nil))).To(Succeed())
		})

		It("should only return the owner's contacts", func() {
			Expect(find("user-1")).To(ConsistOf("Ada", "Grace", "Linus"))
			Expect(find("user-2")).To(ConsistOf("Alan"))
		})

		It("should match a prefix only at the start", func() {
			Expect(find("user-1", filter.ColumnFilter{ColumnID: "company", Operator: filter.OperatorStartsWith, Value: "acme"})).
				To(ConsistOf("Ada"))
		})

		It("should treat like wildcards as plain text", func() {
			Expect(find("user-1", filter.ColumnFilter{ColumnID: "company", Operator: filter.OperatorContains, Value: "%"})).
				To(BeEmpty())
		})

		It("should compare custom numbers and skip non numeric values", func() {
			Expect(find("user-1", filter.ColumnFilter{ColumnID: "budget", Operator: filter.OperatorGt, Value: "100"})).
				To(ConsistOf("Ada", "Linus"))
		})

		It("should not read a numeric prefix as a number", func() {
			Expect(repository.Create(ctx, newContact("user-3", "Edsger", "", shareddomain.CustomFields{"budget": shareddomain.TextValue("500-1")}))).To(Succeed())
			Expect(repository.Create(ctx, newContact("user-3", "Barbara", "", shareddomain.CustomFields{"budget": shareddomain.TextValue("1.2.3")}))).To(Succeed())
			Expect(repository.Create(ctx, newContact("user-3", "Donald", "", shareddomain.CustomFields{"budget": shareddomain.TextValue(" 250 ")}))).To(Succeed())

			Expect(find("user-3", filter.ColumnFilter{ColumnID: "budget", Operator: filter.OperatorGt, Value: "100"})).
				To(ConsistOf("Donald"))
			Expect(find("user-3", filter.ColumnFilter{ColumnID: "budget", Operator: filter.OperatorLt, Value: "100"})).
				To(BeEmpty())
		})

		It("should page and still count every match", func() {
			predicate := filter.NewCompiler(filter.ContactCatalog(), time.UTC).Compile(filter.Query{OwnerID: "user-1"}, nil)

			contacts, total, err := repository.Find(ctx, predicate, usecases.Pagination{Limit: 2, Offset: 2})

			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(3))
			Expect(contacts).To(HaveLen(1))
		})
	})

	It("should count contacts, distinct companies and recent contacts", func() {
		Expect(repository.Create(ctx, newContact("user-1", "Ada", "Acme Corp", nil))).To(Succeed())
		Expect(repository.Create(ctx, newContact("user-1", "Grace", "Acme Corp", nil))).To(Succeed())
		Expect(repository.Create(ctx, newContact("user-1", "Linus", "", nil))).To(Succeed())
		Expect(repository.Create(ctx, newContact("user-2", "Alan", "Other", nil))).To(Succeed())

		stats, err := repository.Stats(ctx, "user-1", time.Now().AddDate(0, 0, -30))

		Expect(err).NotTo(HaveOccurred())
		Expect(stats).To(Equal(domain.Stats{TotalContacts: 3, TotalCompanies: 1, RecentContacts: 3}))
	})

	It("should report deleting a missing contact", func() {
		Expect(repository.Delete(ctx, "user-1", "missing")).To(MatchError(usecases.ErrContactNotFound))
	})
})
