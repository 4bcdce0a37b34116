package usecases_test

import (
	"context"
	"crm-server/internal/columns/domain"
	"crm-server/internal/columns/usecases"
	"sync"

	"github.com/google/go-cmp/cmp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type memoryStorage struct {
	mu     sync.Mutex
	states map[usecases.StateKey][]byte
}

func (m *memoryStorage) Read(_ context.Context, key usecases.StateKey) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	payload, ok := m.states[key]
	return payload, ok, nil
}

func (m *memoryStorage) Write(_ context.Context, key usecases.StateKey, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[key] = payload
	return nil
}

var _ = Describe("ColumnConfigService", func() {
	var (
		service *usecases.SimpleColumnConfigService
		storage *memoryStorage
		ctx     context.Context
	)

	const owner = "user-1"

	BeforeEach(func() {
		storage = &memoryStorage{states: map[usecases.StateKey][]byte{}}
		service = usecases.NewColumnConfigService(usecases.NewStore(storage))
		ctx = context.Background()
	})

	It("should reject unknown lists", func() {
		_, err := service.Get(ctx, owner, "kanban-columns")
		Expect(err).To(MatchError(domain.ErrUnknownList))
	})

	It("should persist changes per owner", func() {
		_, err := service.ToggleVisibility(ctx, owner, domain.ContactListColumns, "phone")
		Expect(err).NotTo(HaveOccurred())

		mine, err := service.Get(ctx, owner, domain.ContactListColumns)
		Expect(err).NotTo(HaveOccurred())
		theirs, err := service.Get(ctx, "user-2", domain.ContactListColumns)
		Expect(err).NotTo(HaveOccurred())

		phone, _ := mine.Column("phone")
		Expect(phone.Visible).To(BeFalse())
		phone, _ = theirs.Column("phone")
		Expect(phone.Visible).To(BeTrue())
	})

	It("should report unknown columns", func() {
		_, err := service.ToggleVisibility(ctx, owner, domain.ContactListColumns, "missing")
		Expect(err).To(MatchError(usecases.ErrColumnNotFound))
		_, err = service.SetSort(ctx, owner, domain.ContactListColumns, "missing", domain.SortAsc)
		Expect(err).To(MatchError(usecases.ErrColumnNotFound))
	})

	It("should keep one active sort", func() {
		_, err := service.SetSort(ctx, owner, domain.DealListColumns, "value", domain.SortDesc)
		Expect(err).NotTo(HaveOccurred())
		set, err := service.SetSort(ctx, owner, domain.DealListColumns, "name", domain.SortAsc)
		Expect(err).NotTo(HaveOccurred())
		Expect(set.Sorted()).To(HaveLen(1))

		active, ok := service.ActiveSort(ctx, owner, domain.DealListColumns)
		Expect(ok).To(BeTrue())
		Expect(active.ID).To(Equal("name"))
		Expect(active.SortDirection).To(Equal(domain.SortAsc))

		_, err = service.ClearSort(ctx, owner, domain.DealListColumns)
		Expect(err).NotTo(HaveOccurred())
		_, ok = service.ActiveSort(ctx, owner, domain.DealListColumns)
		Expect(ok).To(BeFalse())
	})

	It("should reject removing default columns", func() {
		_, err := service.RemoveColumn(ctx, owner, domain.ContactListColumns, "email")
		Expect(err).To(MatchError(usecases.ErrDefaultColumnRemoval))

		set, err := service.Get(ctx, owner, domain.ContactListColumns)
		Expect(err).NotTo(HaveOccurred())
		Expect(set.Has("email")).To(BeTrue())
	})

	It("should add and remove custom columns", func() {
		set, err := service.AddColumn(ctx, owner, domain.ContactListColumns, domain.ColumnConfig{ID: "budget", Visible: true})
		Expect(err).NotTo(HaveOccurred())
		budget, ok := set.Column("budget")
		Expect(ok).To(BeTrue())
		Expect(budget.Label).To(Equal("budget"))
		Expect(budget.Order).To(Equal(7))

		set, err = service.RemoveColumn(ctx, owner, domain.ContactListColumns, "budget")
		Expect(err).NotTo(HaveOccurred())
		Expect(set.Has("budget")).To(BeFalse())
	})

	It("should reject blank labels and ids", func() {
		_, err := service.Rename(ctx, owner, domain.ContactListColumns, "name", "  ")
		Expect(err).To(MatchError(usecases.ErrInvalidColumn))
		_, err = service.AddColumn(ctx, owner, domain.ContactListColumns, domain.ColumnConfig{})
		Expect(err).To(MatchError(usecases.ErrInvalidColumn))
	})

	It("should reset idempotently", func() {
		_, err := service.Rename(ctx, owner, domain.DealListColumns, "name", "Opportunity")
		Expect(err).NotTo(HaveOccurred())
		_, err = service.Reorder(ctx, owner, domain.DealListColumns, map[string]int{"createdAt": -5})
		Expect(err).NotTo(HaveOccurred())

		first, err := service.Reset(ctx, owner, domain.DealListColumns)
		Expect(err).NotTo(HaveOccurred())
		second, err := service.Reset(ctx, owner, domain.DealListColumns)
		Expect(err).NotTo(HaveOccurred())

		defaults, _ := domain.DefaultColumns(domain.DealListColumns)
		Expect(cmp.Diff(defaults, first.Columns())).To(BeEmpty())
		Expect(cmp.Diff(first.Columns(), second.Columns())).To(BeEmpty())
	})

	It("should serialise concurrent changes", func() {
		var wg sync.WaitGroup
		labels := []string{"A", "B", "C", "D", "E", "F", "G"}
		defaults, _ := domain.DefaultColumns(domain.ContactListColumns)
		for i, column := range defaults {
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer GinkgoRecover()
				_, err := service.Rename(ctx, owner, domain.ContactListColumns, column.ID, labels[i])
				Expect(err).NotTo(HaveOccurred())
			}()
		}
		wg.Wait()

		set, err := service.Get(ctx, owner, domain.ContactListColumns)
		Expect(err).NotTo(HaveOccurred())
		for i, column := range set.Columns() {
			Expect(column.Label).To(Equal(labels[i]))
		}
	})
})
