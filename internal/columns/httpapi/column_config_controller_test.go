package httpapi_test

import (
	"crm-server/internal/columns/domain"
	"crm-server/internal/columns/httpapi"
	"crm-server/internal/columns/usecases"
	mockusecases "crm-server/test/unit/doubles/columns/usecases"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

type columnSetBody struct {
	List    string `json:"list"`
	Columns []struct {
		ID            string  `json:"id"`
		Visible       bool    `json:"visible"`
		SortDirection *string `json:"sortDirection"`
	} `json:"columns"`
	Sorted []struct {
		ID string `json:"id"`
	} `json:"sorted"`
}

var _ = Describe("ColumnConfigController", func() {
	var (
		ctrl        *gomock.Controller
		mockService *mockusecases.MockColumnConfigService
		router      *http.ServeMux
		recorder    *httptest.ResponseRecorder
		defaults    domain.ColumnSet
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockColumnConfigService(ctrl)
		router = http.NewServeMux()
		httpapi.NewColumnConfigController(mockService).AddRoutes(router)
		recorder = httptest.NewRecorder()

		columns, err := domain.DefaultColumns(domain.DealListColumns)
		Expect(err).NotTo(HaveOccurred())
		defaults = domain.NewColumnSet(columns)
	})

	request := func(method, path, body string) *http.Request {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("X-User-ID", "user-1")
		return req
	}

	It("should return the column set of a list", func() {
		mockService.EXPECT().Get(gomock.Any(), "user-1", domain.DealListColumns).Return(defaults, nil)

		router.ServeHTTP(recorder, request(http.MethodGet, "/v1/column-configs/deal-list-columns", ""))

		Expect(recorder.Code).To(Equal(http.StatusOK))
		var body columnSetBody
		Expect(json.Unmarshal(recorder.Body.Bytes(), &body)).To(Succeed())
		Expect(body.List).To(Equal("deal-list-columns"))
		Expect(body.Columns).To(HaveLen(6))
		Expect(body.Columns[0].SortDirection).To(BeNil())
		Expect(body.Sorted).To(BeEmpty())
	})

	It("should require a user", func() {
		req := httptest.NewRequest(http.MethodGet, "/v1/column-configs/deal-list-columns", nil)

		router.ServeHTTP(recorder, req)

		Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
	})

	It("should reject unknown lists", func() {
		router.ServeHTTP(recorder, request(http.MethodGet, "/v1/column-configs/kanban", ""))

		Expect(recorder.Code).To(Equal(http.StatusNotFound))
	})

	It("should set the sort direction", func() {
		sorted := domain.NewColumnSet(defaults.Columns())
		sorted.SetSort("value", domain.SortDesc)
		mockService.EXPECT().
			SetSort(gomock.Any(), "user-1", domain.DealListColumns, "value", domain.SortDesc).
			Return(sorted, nil)

		router.ServeHTTP(recorder, request(http.MethodPut, "/v1/column-configs/deal-list-columns/columns/value/sort", `{"direction":"desc"}`))

		Expect(recorder.Code).To(Equal(http.StatusOK))
		var body columnSetBody
		Expect(json.Unmarshal(recorder.Body.Bytes(), &body)).To(Succeed())
		Expect(body.Sorted).To(HaveLen(1))
		Expect(body.Sorted[0].ID).To(Equal("value"))
	})

	It("should reject unknown sort directions", func() {
		router.ServeHTTP(recorder, request(http.MethodPut, "/v1/column-configs/deal-list-columns/columns/value/sort", `{"direction":"up"}`))

		Expect(recorder.Code).To(Equal(http.StatusBadRequest))
	})

	It("should map default column removal to a conflict", func() {
		mockService.EXPECT().
			RemoveColumn(gomock.Any(), "user-1", domain.DealListColumns, "stage").
			Return(domain.ColumnSet{}, usecases.ErrDefaultColumnRemoval)

		router.ServeHTTP(recorder, request(http.MethodDelete, "/v1/column-configs/deal-list-columns/columns/stage", ""))

		Expect(recorder.Code).To(Equal(http.StatusConflict))
	})

	It("should map unknown columns to not found", func() {
		mockService.EXPECT().
			ToggleVisibility(gomock.Any(), "user-1", domain.DealListColumns, "missing").
			Return(domain.ColumnSet{}, usecases.ErrColumnNotFound)

		router.ServeHTTP(recorder, request(http.MethodPost, "/v1/column-configs/deal-list-columns/columns/missing/visibility", ""))

		Expect(recorder.Code).To(Equal(http.StatusNotFound))
	})

	It("should pass the requested positions", func() {
		mockService.EXPECT().
			Reorder(gomock.Any(), "user-1", domain.DealListColumns, map[string]int{"value": 0, "name": 2}).
			Return(defaults, nil)

		router.ServeHTTP(recorder, request(http.MethodPut, "/v1/column-configs/deal-list-columns/order", `{"columns":[{"id":"value","order":0},{"id":"name","order":2}]}`))

		Expect(recorder.Code).To(Equal(http.StatusOK))
	})

	It("should add visible columns by default", func() {
		mockService.EXPECT().
			AddColumn(gomock.Any(), "user-1", domain.DealListColumns, domain.ColumnConfig{ID: "probability", Label: "Probability", Visible: true, SortDirection: domain.SortNone}).
			Return(defaults, nil)

		router.ServeHTTP(recorder, request(http.MethodPost, "/v1/column-configs/deal-list-columns/columns", `{"id":"probability","label":"Probability"}`))

		Expect(recorder.Code).To(Equal(http.StatusOK))
	})

	It("should reject malformed bodies", func() {
		router.ServeHTTP(recorder, request(http.MethodPut, "/v1/column-configs/deal-list-columns/columns/name/label", `{`))

		Expect(recorder.Code).To(Equal(http.StatusBadRequest))
	})

	It("should hide internal failures", func() {
		mockService.EXPECT().Reset(gomock.Any(), "user-1", domain.DealListColumns).Return(domain.ColumnSet{}, errors.New("boom"))

		router.ServeHTTP(recorder, request(http.MethodPost, "/v1/column-configs/deal-list-columns/reset", ""))

		Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
		Expect(recorder.Body.String()).NotTo(ContainSubstring("boom"))
	})

	It("should clear the sort", func() {
		mockService.EXPECT().ClearSort(gomock.Any(), "user-1", domain.DealListColumns).Return(defaults, nil)

		router.ServeHTTP(recorder, request(http.MethodDelete, "/v1/column-configs/deal-list-columns/sort", ""))

		Expect(recorder.Code).To(Equal(http.StatusOK))
	})
})
