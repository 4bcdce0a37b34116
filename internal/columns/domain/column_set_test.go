package domain_test

import (
	"crm-server/internal/columns/domain"
	"encoding/json"

	"github.com/google/go-cmp/cmp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func ids(columns []domain.ColumnConfig) []string {
	result := make([]string, len(columns))
	for i, column := range columns {
		result[i] = column.ID
	}
	return result
}

func contactDefaults() []domain.ColumnConfig {
	defaults, err := domain.DefaultColumns(domain.ContactListColumns)
	Expect(err).NotTo(HaveOccurred())
	return defaults
}

var _ = Describe("DefaultColumns", func() {
	It("should list the contact columns in catalog order", func() {
		Expect(ids(contactDefaults())).To(Equal([]string{"name", "email", "phone", "company", "jobTitle", "tags", "createdAt"}))
	})

	It("should list the deal columns in catalog order", func() {
		defaults, err := domain.DefaultColumns(domain.DealListColumns)
		Expect(err).NotTo(HaveOccurred())
		Expect(ids(defaults)).To(Equal([]string{"name", "stage", "value", "expectedClose", "contacts", "createdAt"}))
	})

	It("should reject unknown lists", func() {
		_, err := domain.DefaultColumns("pipeline-columns")
		Expect(err).To(MatchError(domain.ErrUnknownList))
		_, err = domain.ParseListKey("pipeline-columns")
		Expect(err).To(MatchError(domain.ErrUnknownList))
	})
})

var _ = Describe("Reconcile", func() {
	It("should use the defaults when nothing was persisted", func() {
		set := domain.Reconcile(contactDefaults(), nil)

		Expect(cmp.Diff(contactDefaults(), set.Columns())).To(BeEmpty())
		Expect(set.Sorted()).To(BeEmpty())
	})

	It("should insert a new default column while keeping the user order", func() {
		persisted := []domain.ColumnConfig{
			{ID: "email", Label: "E-mail", Visible: true, Order: 0, SortDirection: domain.SortNone},
			{ID: "name", Label: "Name", Visible: true, Order: 1, SortDirection: domain.SortAsc},
			{ID: "phone", Label: "Phone", Visible: false, Order: 2, SortDirection: domain.SortNone},
			{ID: "company", Label: "Company", Visible: true, Order: 3, SortDirection: domain.SortNone},
			{ID: "tags", Label: "Tags", Visible: true, Order: 5, SortDirection: domain.SortNone},
			{ID: "createdAt", Label: "Created", Visible: true, Order: 6, SortDirection: domain.SortNone},
		}

		set := domain.Reconcile(contactDefaults(), persisted)

		Expect(ids(set.Columns())).To(Equal([]string{"email", "name", "phone", "company", "jobTitle", "tags", "createdAt"}))
		jobTitle, ok := set.Column("jobTitle")
		Expect(ok).To(BeTrue())
		Expect(jobTitle).To(Equal(domain.ColumnConfig{ID: "jobTitle", Label: "Job Title", Visible: true, Order: 4, SortDirection: domain.SortNone}))

		email, _ := set.Column("email")
		Expect(email.Label).To(Equal("E-mail"))
		phone, _ := set.Column("phone")
		Expect(phone.Visible).To(BeFalse())
		Expect(ids(set.Sorted())).To(Equal([]string{"name"}))
	})

	It("should append persisted columns that are not defaults", func() {
		custom := domain.ColumnConfig{ID: "budget", Label: "Budget", Visible: true, Order: 10, SortDirection: domain.SortDesc}
		set := domain.Reconcile(contactDefaults(), []domain.ColumnConfig{custom})

		column, ok := set.Column("budget")
		Expect(ok).To(BeTrue())
		Expect(column).To(Equal(custom))
		Expect(set.Columns()[len(set.Columns())-1].ID).To(Equal("budget"))
	})

	It("should keep only the first sort when several were saved", func() {
		persisted := []domain.ColumnConfig{
			{ID: "name", Label: "Name", Visible: true, Order: 0, SortDirection: domain.SortAsc},
			{ID: "budget", Label: "Budget", Visible: true, Order: 10, SortDirection: domain.SortDesc},
		}

		set := domain.Reconcile(contactDefaults(), persisted)

		Expect(set.Sorted()).To(HaveLen(1))
		active, ok := set.ActiveSort()
		Expect(ok).To(BeTrue())
		Expect(active.ID).To(Equal("name"))
		Expect(active.SortDirection).To(Equal(domain.SortAsc))
		budget, _ := set.Column("budget")
		Expect(budget.SortDirection).To(Equal(domain.SortNone))
	})
})

var _ = Describe("ColumnSet", func() {
	var set domain.ColumnSet

	BeforeEach(func() {
		set = domain.NewColumnSet(contactDefaults())
	})

	It("should keep a single sorted column", func() {
		set.SetSort("name", domain.SortAsc)
		set.SetSort("email", domain.SortDesc)

		Expect(set.Sorted()).To(HaveLen(1))
		active, ok := set.ActiveSort()
		Expect(ok).To(BeTrue())
		Expect(active.ID).To(Equal("email"))
		Expect(active.SortDirection).To(Equal(domain.SortDesc))
	})

	It("should only clear the target when the direction is none", func() {
		set.SetSort("name", domain.SortAsc)
		set.SetSort("email", domain.SortNone)

		Expect(ids(set.Sorted())).To(Equal([]string{"name"}))

		set.SetSort("name", domain.SortNone)
		Expect(set.Sorted()).To(BeEmpty())
	})

	It("should clear every sort", func() {
		set.SetSort("company", domain.SortDesc)
		set.ClearSort()

		_, ok := set.ActiveSort()
		Expect(ok).To(BeFalse())
	})

	It("should toggle visibility and rename", func() {
		set.ToggleVisibility("phone")
		set.Rename("company", "Organisation")

		Expect(ids(set.Visible())).NotTo(ContainElement("phone"))
		company, _ := set.Column("company")
		Expect(company.Label).To(Equal("Organisation"))
	})

	It("should ignore unknown ids", func() {
		before := set.Columns()

		set.ToggleVisibility("missing")
		set.Rename("missing", "x")
		set.SetSort("missing", domain.SortAsc)

		Expect(cmp.Diff(before, set.Columns())).To(BeEmpty())
	})

	It("should reorder the mentioned columns", func() {
		set.Reorder(map[string]int{"createdAt": -1, "name": 3})

		Expect(ids(set.Columns())).To(Equal([]string{"createdAt", "email", "phone", "name", "company", "jobTitle", "tags"}))
	})

	It("should append added columns after the last position", func() {
		set.Reorder(map[string]int{"tags": 20})

		Expect(set.Add(domain.ColumnConfig{ID: "budget", Label: "Budget", Visible: true, SortDirection: domain.SortAsc})).To(BeTrue())
		Expect(set.Add(domain.ColumnConfig{ID: "budget", Label: "Again"})).To(BeFalse())

		budget, _ := set.Column("budget")
		Expect(budget.Order).To(Equal(21))
		Expect(budget.SortDirection).To(Equal(domain.SortNone))
		Expect(budget.Label).To(Equal("Budget"))
	})

	It("should add at position zero to an empty set", func() {
		empty := domain.NewColumnSet(nil)
		empty.Add(domain.ColumnConfig{ID: "budget", Visible: true})

		Expect(empty.Columns()[0].Order).To(Equal(0))
	})

	It("should remove columns", func() {
		set.Remove("tags")
		Expect(set.Has("tags")).To(BeFalse())
	})

	It("should reset to the defaults idempotently", func() {
		set.ToggleVisibility("email")
		set.SetSort("email", domain.SortAsc)
		set.Add(domain.ColumnConfig{ID: "budget", Visible: true})

		set.Reset(contactDefaults())
		once := set.Columns()
		set.Reset(contactDefaults())

		Expect(cmp.Diff(contactDefaults(), once)).To(BeEmpty())
		Expect(cmp.Diff(once, set.Columns())).To(BeEmpty())
	})

	It("should not share its columns with callers", func() {
		columns := set.Columns()
		columns[0].Label = "changed"

		first, _ := set.Column(columns[0].ID)
		Expect(first.Label).NotTo(Equal("changed"))
	})
})

var _ = Describe("ColumnConfig JSON", func() {
	It("should write an unsorted column with a null direction", func() {
		data, err := json.Marshal(domain.ColumnConfig{ID: "name", Label: "Name", Visible: true, Order: 0, SortDirection: domain.SortNone})
		Expect(err).NotTo(HaveOccurred())
		Expect(data).To(MatchJSON(`{"id":"name","label":"Name","visible":true,"order":0,"sortDirection":null}`))
	})

	It("should read a sorted column", func() {
		var column domain.ColumnConfig
		Expect(json.Unmarshal([]byte(`{"id":"value","label":"Value","visible":false,"order":2,"sortDirection":"desc"}`), &column)).To(Succeed())
		Expect(column).To(Equal(domain.ColumnConfig{ID: "value", Label: "Value", Visible: false, Order: 2, SortDirection: domain.SortDesc}))
	})

	It("should treat a missing direction as unsorted", func() {
		var column domain.ColumnConfig
		Expect(json.Unmarshal([]byte(`{"id":"value","label":"Value","visible":true,"order":2}`), &column)).To(Succeed())
		Expect(column.SortDirection).To(Equal(domain.SortNone))
	})

	It("should reject unknown directions", func() {
		var column domain.ColumnConfig
		Expect(json.Unmarshal([]byte(`{"id":"value","sortDirection":"sideways"}`), &column)).To(MatchError(domain.ErrInvalidSortDirection))
	})
})
