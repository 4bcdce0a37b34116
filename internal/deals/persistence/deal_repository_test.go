package persistence_test

import (
	"context"
	contactsdomain "crm-server/internal/contacts/domain"
	contactspersistence "crm-server/internal/contacts/persistence"
	"crm-server/internal/deals/domain"
	"crm-server/internal/deals/persistence"
	"crm-server/internal/deals/usecases"
	"crm-server/internal/infra/pubsub"
	"crm-server/internal/infra/sql"
	"crm-server/internal/infra/utils"
	"crm-server/internal/query/filter"
	shareddomain "crm-server/internal/shared_kernel/domain"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DealRepository", func() {
	var (
		ctx        context.Context
		cancel     context.CancelFunc
		broker     *pubsub.MemoryBroker
		contacts   *contactspersistence.SimpleContactRepository
		repository *persistence.SimpleDealRepository
	)

	newContact := func(owner, first, last string) contactsdomain.Contact {
		contact, err := contactsdomain.NewContactBuilder().
			WithOwnerID(shareddomain.ID(owner)).
			WithFirstName(first).
			WithLastName(last).
			Build()
		Expect(err).NotTo(HaveOccurred())
		Expect(contacts.Create(ctx, contact)).To(Succeed())
		return contact
	}

	newDeal := func(owner, name, stage, value string, contactIDs ...shareddomain.ID) domain.Deal {
		deal, err := domain.NewDealBuilder().
			WithOwnerID(shareddomain.ID(owner)).
			WithName(name).
			WithStage(stage).
			WithValue(value).
			WithContactIDs(contactIDs).
			Build()
		Expect(err).NotTo(HaveOccurred())
		return deal
	}

	BeforeEach(func() {
		ctx, cancel = context.WithCancel(context.Background())
		broker = pubsub.NewMemoryBroker()
		orm, err := sql.NewMemoryORM("deals_" + utils.GenerateUUID())
		Expect(err).NotTo(HaveOccurred())
		factory := pubsub.NewMemoryPublisherFactory(broker)
		contacts, err = contactspersistence.NewContactRepository(factory, orm)
		Expect(err).NotTo(HaveOccurred())
		repository, err = persistence.NewDealRepository(factory, orm)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		cancel()
	})

	It("should store a deal with its linked contacts", func() {
		ada := newContact("user-1", "Ada", "Lovelace")
		grace := newContact("user-1", "Grace", "Hopper")
		deal := newDeal("user-1", "Website", "proposal", "1200.50", ada.ID, grace.ID)
		Expect(repository.Create(ctx, deal)).To(Succeed())

		found, err := repository.GetByID(ctx, "user-1", deal.ID)

		Expect(err).NotTo(HaveOccurred())
		Expect(found.Name).To(Equal("Website"))
		Expect(found.Stage).To(Equal(domain.StageProposal))
		Expect(found.ValueText()).To(Equal("1200.5"))
		Expect(found.Currency).To(Equal(domain.DefaultCurrency))
		Expect(found.ContactIDs).To(ConsistOf(ada.ID, grace.ID))
		names := []string{found.Contacts[0].Name(), found.Contacts[1].Name()}
		Expect(names).To(Equal([]string{"Grace Hopper", "Ada Lovelace"}))
	})

	It("should not read deals of another owner", func() {
		deal := newDeal("user-1", "Website", "", "")
		Expect(repository.Create(ctx, deal)).To(Succeed())

		_, err := repository.GetByID(ctx, "user-2", deal.ID)

		Expect(err).To(MatchError(usecases.ErrDealNotFound))
	})

	It("should replace the links on update", func() {
		ada := newContact("user-1", "Ada", "Lovelace")
		grace := newContact("user-1", "Grace", "Hopper")
		deal := newDeal("user-1", "Website", "", "", ada.ID)
		Expect(repository.Create(ctx, deal)).To(Succeed())

		deal.ContactIDs = []shareddomain.ID{grace.ID}
		Expect(repository.Update(ctx, deal, deal.Stage)).To(Succeed())

		found, err := repository.GetByID(ctx, "user-1", deal.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(found.ContactIDs).To(Equal([]shareddomain.ID{grace.ID}))
	})

	It("should report stage changes as their own action", func() {
		changes := make(chan shareddomain.RecordChange, 4)
		pubsub.NewMemoryConsumerFactory(broker, "test").New().
			Consume(ctx, pubsub.RecordChangesTopic, func(_ context.Context, _ pubsub.Key, message pubsub.Prototype) error {
				changes <- message.(shareddomain.RecordChange)
				return nil
			}, nil)

		deal := newDeal("user-1", "Website", "lead", "")
		Expect(repository.Create(ctx, deal)).To(Succeed())
		deal.Stage = domain.StageQualified
		Expect(repository.Update(ctx, deal, domain.StageLead)).To(Succeed())
		deal.Notes = "call back"
		Expect(repository.Update(ctx, deal, domain.StageQualified)).To(Succeed())
		Expect(repository.Delete(ctx, "user-1", deal.ID)).To(Succeed())

		received := map[shareddomain.ChangeAction]shareddomain.RecordChange{}
		for range 4 {
			var change shareddomain.RecordChange
			Eventually(changes).Should(Receive(&change))
			Expect(change.EntityType).To(Equal(shareddomain.EntityTypeDeal))
			received[change.Action] = change
		}
		Expect(received).To(HaveLen(4))
		Expect(received[shareddomain.ChangeActionStageChanged].PreviousStage).To(Equal("lead"))
		Expect(received[shareddomain.ChangeActionStageChanged].Stage).To(Equal("qualified"))
	})

	It("should report the contacts an owner does not have", func() {
		ada := newContact("user-1", "Ada", "Lovelace")
		alan := newContact("user-2", "Alan", "Turing")

		missing, err := repository.MissingContacts(ctx, "user-1", []shareddomain.ID{ada.ID, alan.ID, "unknown"})

		Expect(err).NotTo(HaveOccurred())
		Expect(missing).To(Equal([]shareddomain.ID{alan.ID, "unknown"}))
	})

	Context("Find", func() {
		BeforeEach(func() {
			ada := newContact("user-1", "Ada", "Lovelace")
			Expect(repository.Create(ctx, newDeal("user-1", "Website", "lead", "500", ada.ID))).To(Succeed())
			Expect(repository.Create(ctx, newDeal("user-1", "Support plan", "closed-won", "1500"))).To(Succeed())
			Expect(repository.Create(ctx, newDeal("user-1", "Audit", "proposal", ""))).To(Succeed())
			Expect(repository.Create(ctx, newDeal("user-2", "Other", "lead", "900"))).To(Succeed())
		})

		find := func(includeContacts bool, filters ...filter.ColumnFilter) []domain.Deal {
			predicate := filter.NewCompiler(filter.DealCatalog(), time.UTC).
				Compile(filter.Query{OwnerID: "user-1", Filters: filters}, nil)
			deals, total, err := repository.Find(ctx, predicate, usecases.Pagination{}, includeContacts)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(len(deals)))
			return deals
		}

		names := func(deals []domain.Deal) []string {
			result := make([]string, len(deals))
			for i, deal := range deals {
				result[i] = deal.Name
			}
			return result
		}

		It("should compare values as numbers and skip deals without one", func() {
			deals := find(false, filter.ColumnFilter{ColumnID: "value", Operator: filter.OperatorGt, Value: "600"})
			Expect(names(deals)).To(ConsistOf("Support plan"))
		})

		It("should filter by stage", func() {
			deals := find(false, filter.ColumnFilter{ColumnID: "stage", Operator: filter.OperatorIn, Value: "lead,proposal"})
			Expect(names(deals)).To(ConsistOf("Website", "Audit"))
		})

		It("should load contacts only when asked", func() {
			withContacts := find(true, filter.ColumnFilter{ColumnID: "name", Operator: filter.OperatorEquals, Value: "website"})
			Expect(withContacts).To(HaveLen(1))
			Expect(withContacts[0].Contacts).To(HaveLen(1))

			withoutContacts := find(false, filter.ColumnFilter{ColumnID: "name", Operator: filter.OperatorEquals, Value: "website"})
			Expect(withoutContacts[0].Contacts).To(BeEmpty())
		})

		It("should page and still count every match", func() {
			predicate := filter.NewCompiler(filter.DealCatalog(), time.UTC).Compile(filter.Query{OwnerID: "user-1"}, nil)

			deals, total, err := repository.Find(ctx, predicate, usecases.Pagination{Limit: 2}, false)

			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(3))
			Expect(deals).To(HaveLen(2))
		})
	})

	It("should find open deals past their expected close date", func() {
		past := time.Now().UTC().Add(-48 * time.Hour)
		future := time.Now().UTC().Add(48 * time.Hour)

		overdue := newDeal("user-1", "Late", "proposal", "")
		overdue.ExpectedClose = &past
		won := newDeal("user-1", "Won", "closed-won", "")
		won.ExpectedClose = &past
		upcoming := newDeal("user-2", "Upcoming", "lead", "")
		upcoming.ExpectedClose = &future
		undated := newDeal("user-2", "Undated", "lead", "")
		for _, deal := range []domain.Deal{overdue, won, upcoming, undated} {
			Expect(repository.Create(ctx, deal)).To(Succeed())
		}

		deals, err := repository.FindOverdue(ctx, time.Now())

		Expect(err).NotTo(HaveOccurred())
		Expect(deals).To(HaveLen(1))
		Expect(deals[0].ID).To(Equal(overdue.ID))
	})

	It("should sum values exactly per owner", func() {
		Expect(repository.Create(ctx, newDeal("user-1", "A", "lead", "0.10"))).To(Succeed())
		Expect(repository.Create(ctx, newDeal("user-1", "B", "closed-won", "0.20"))).To(Succeed())
		Expect(repository.Create(ctx, newDeal("user-1", "C", "closed-won", ""))).To(Succeed())
		Expect(repository.Create(ctx, newDeal("user-2", "D", "lead", "99"))).To(Succeed())

		stats, err := repository.Stats(ctx, "user-1")

		Expect(err).NotTo(HaveOccurred())
		Expect(stats.TotalDeals).To(Equal(int64(3)))
		Expect(stats.DealsByStage).To(HaveKeyWithValue("closed-won", int64(2)))
		Expect(stats.DealsByStage).To(HaveKeyWithValue("negotiation", int64(0)))
		Expect(stats.TotalValue.String()).To(Equal("0.3"))
		Expect(stats.WonValue.String()).To(Equal("0.2"))
	})

	It("should report deleting a missing deal", func() {
		Expect(repository.Delete(ctx, "user-1", "missing")).To(MatchError(usecases.ErrDealNotFound))
	})
})
