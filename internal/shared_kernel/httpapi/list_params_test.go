package httpapi_test

import (
	"crm-server/internal/query/filter"
	"crm-server/internal/query/sorting"
	"crm-server/internal/shared_kernel/httpapi"
	"net/http/httptest"
	"net/url"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ListParams", func() {
	Context("ParseSort", func() {
		DescribeTable("valid values",
			func(raw string, expected *sorting.Directive) {
				sort, err := httpapi.ParseSort(raw)
				Expect(err).NotTo(HaveOccurred())
				Expect(sort).To(Equal(expected))
			},
			Entry("empty", "", nil),
			Entry("column only", "company", &sorting.Directive{ColumnID: "company", Direction: sorting.DirectionAsc}),
			Entry("descending", "company:desc", &sorting.Directive{ColumnID: "company", Direction: sorting.DirectionDesc}),
			Entry("upper case direction", "company:DESC", &sorting.Directive{ColumnID: "company", Direction: sorting.DirectionDesc}),
			Entry("explicitly unsorted", "company:none", &sorting.Directive{ColumnID: "company", Direction: sorting.DirectionNone}),
		)

		DescribeTable("invalid values",
			func(raw string) {
				_, err := httpapi.ParseSort(raw)
				Expect(err).To(MatchError(httpapi.ErrInvalidSort))
			},
			Entry("unknown direction", "company:sideways"),
			Entry("missing column", ":asc"),
		)
	})

	Context("ParseFilters", func() {
		It("should read a JSON array of column filters", func() {
			filters, err := httpapi.ParseFilters(`[{"columnId":"value","columnType":"number","operator":"gt","value":"1000"}]`)

			Expect(err).NotTo(HaveOccurred())
			Expect(filters).To(Equal([]filter.ColumnFilter{
				{ColumnID: "value", ColumnType: filter.ColumnTypeNumber, Operator: filter.OperatorGt, Value: "1000"},
			}))
		})

		It("should reject anything else", func() {
			_, err := httpapi.ParseFilters(`{"columnId":"value"}`)
			Expect(err).To(MatchError(httpapi.ErrInvalidFilters))
		})
	})

	Context("ParseListParams", func() {
		It("should read every parameter", func() {
			query := url.Values{}
			query.Set("search", "acme")
			query.Set("filters", `[{"columnId":"company","operator":"contains","value":"acme"}]`)
			query.Set("sort", "name:desc")
			query.Set("page", "3")
			query.Set("limit", "25")

			params, err := httpapi.ParseListParams(httptest.NewRequest("GET", "/v1/contacts?"+query.Encode(), nil))

			Expect(err).NotTo(HaveOccurred())
			Expect(params.Search).To(Equal("acme"))
			Expect(params.Filters).To(HaveLen(1))
			Expect(params.Sort.Direction).To(Equal(sorting.DirectionDesc))
			Expect(params.Pagination.Page).To(Equal(3))
			Expect(params.Pagination.Limit).To(Equal(25))
			Expect(params.Pagination.Offset()).To(Equal(50))
		})

		It("should fall back to the default page size above the maximum", func() {
			params, err := httpapi.ParseListParams(httptest.NewRequest("GET", "/v1/contacts?limit=500", nil))

			Expect(err).NotTo(HaveOccurred())
			Expect(params.Pagination.Limit).To(Equal(10))
			Expect(params.Sort).To(BeNil())
		})
	})
})
