package httpapi_test

import (
	"crm-server/internal/contacts/domain"
	"crm-server/internal/contacts/httpapi"
	"crm-server/internal/contacts/usecases"
	"crm-server/internal/query/filter"
	"crm-server/internal/query/sorting"
	shareddomain "crm-server/internal/shared_kernel/domain"
	mockusecases "crm-server/test/unit/doubles/contacts/usecases"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("ContactController", func() {
	var (
		ctrl        *gomock.Controller
		mockService *mockusecases.MockContactService
		router      *http.ServeMux
		recorder    *httptest.ResponseRecorder
		ada         domain.Contact
	)

	const owner = shareddomain.ID("user-1")

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockContactService(ctrl)
		router = http.NewServeMux()
		httpapi.NewContactController(mockService).AddRoutes(router)
		recorder = httptest.NewRecorder()

		var err error
		ada, err = domain.NewContactBuilder().
			WithOwnerID(owner).
			WithFirstName("Ada").
			WithLastName("Lovelace").
			WithEmail("ada@example.com").
			WithCompany("Acme Corp").
			Build()
		Expect(err).NotTo(HaveOccurred())
	})

	request := func(method, path, body string) *http.Request {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("X-User-ID", owner.String())
		return req
	}

	It("should reject requests without a user", func() {
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/contacts", nil))

		Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
	})

	Context("list", func() {
		It("should pass filters, sort and paging to the service", func() {
			filters := url.QueryEscape(`[{"columnId":"company","operator":"startsWith","value":"Acme"}]`)
			mockService.EXPECT().
				List(gomock.Any(), owner, usecases.ListQuery{
					Search:     "ada",
					Filters:    []filter.ColumnFilter{{ColumnID: "company", Operator: filter.OperatorStartsWith, Value: "Acme"}},
					Sort:       &sorting.Directive{ColumnID: "company", Direction: sorting.DirectionDesc},
					Pagination: usecases.Pagination{Limit: 5, Offset: 5},
				}).
				Return([]domain.Contact{ada}, 6, nil)

			router.ServeHTTP(recorder, request(http.MethodGet, "/v1/contacts?search=ada&sort=company:desc&page=2&limit=5&filters="+filters, ""))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			var body struct {
				Data []struct {
					ID        string `json:"id"`
					FirstName string `json:"firstName"`
				} `json:"data"`
				Pagination struct {
					Page       int `json:"page"`
					Total      int `json:"total"`
					TotalPages int `json:"total_pages"`
				} `json:"pagination"`
			}
			Expect(json.Unmarshal(recorder.Body.Bytes(), &body)).To(Succeed())
			Expect(body.Data).To(HaveLen(1))
			Expect(body.Data[0].FirstName).To(Equal("Ada"))
			Expect(body.Pagination.Page).To(Equal(2))
			Expect(body.Pagination.Total).To(Equal(6))
			Expect(body.Pagination.TotalPages).To(Equal(2))
		})

		It("should reject malformed filters", func() {
			router.ServeHTTP(recorder, request(http.MethodGet, "/v1/contacts?filters=nope", ""))

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})

		It("should reject an unknown sort direction", func() {
			router.ServeHTTP(recorder, request(http.MethodGet, "/v1/contacts?sort=company:sideways", ""))

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Context("search", func() {
		It("should require a term", func() {
			router.ServeHTTP(recorder, request(http.MethodGet, "/v1/contacts/search", ""))

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})

		It("should forward the limit", func() {
			mockService.EXPECT().Search(gomock.Any(), owner, "ada", 3).Return([]domain.Contact{ada}, nil)

			router.ServeHTTP(recorder, request(http.MethodGet, "/v1/contacts/search?q=ada&limit=3", ""))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(ContainSubstring(`"email":"ada@example.com"`))
		})
	})

	It("should return the stats", func() {
		mockService.EXPECT().Stats(gomock.Any(), owner).Return(domain.Stats{TotalContacts: 4, TotalCompanies: 2, RecentContacts: 1}, nil)

		router.ServeHTTP(recorder, request(http.MethodGet, "/v1/contacts/stats", ""))

		Expect(recorder.Code).To(Equal(http.StatusOK))
		Expect(recorder.Body.String()).To(MatchJSON(`{"totalContacts": 4, "totalCompanies": 2, "recentContacts": 1}`))
	})

	Context("get", func() {
		It("should return the contact", func() {
			mockService.EXPECT().Get(gomock.Any(), owner, ada.ID).Return(ada, nil)

			router.ServeHTTP(recorder, request(http.MethodGet, "/v1/contacts/"+ada.ID.String(), ""))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(ContainSubstring(`"lastName":"Lovelace"`))
		})

		It("should return not found", func() {
			mockService.EXPECT().Get(gomock.Any(), owner, shareddomain.ID("missing")).Return(domain.Contact{}, usecases.ErrContactNotFound)

			router.ServeHTTP(recorder, request(http.MethodGet, "/v1/contacts/missing", ""))

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})
	})

	Context("create", func() {
		It("should create the contact", func() {
			mockService.EXPECT().Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ any, contact domain.Contact) error {
					Expect(contact.OwnerID).To(Equal(owner))
					Expect(contact.FirstName).To(Equal("Grace"))
					Expect(contact.Tags).To(Equal([]string{"vip"}))
					return nil
				})

			router.ServeHTTP(recorder, request(http.MethodPost, "/v1/contacts", `{"firstName": "Grace", "tags": ["vip", "vip"]}`))

			Expect(recorder.Code).To(Equal(http.StatusCreated))
			Expect(recorder.Body.String()).To(ContainSubstring(`"id"`))
		})

		It("should reject an invalid email", func() {
			router.ServeHTTP(recorder, request(http.MethodPost, "/v1/contacts", `{"firstName": "Grace", "email": "grace@"}`))

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})

		It("should reject unknown custom fields", func() {
			mockService.EXPECT().Create(gomock.Any(), gomock.Any()).Return(shareddomain.ErrUnknownCustomField)

			router.ServeHTTP(recorder, request(http.MethodPost, "/v1/contacts", `{"firstName": "Grace", "customFields": {"tier": "gold"}}`))

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})

		It("should hide internal failures", func() {
			mockService.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

			router.ServeHTTP(recorder, request(http.MethodPost, "/v1/contacts", `{"firstName": "Grace"}`))

			Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
			Expect(recorder.Body.String()).NotTo(ContainSubstring("disk full"))
		})
	})

	Context("update", func() {
		It("should only send the given fields", func() {
			mockService.EXPECT().Update(gomock.Any(), owner, ada.ID, gomock.Any()).
				DoAndReturn(func(_ any, _ shareddomain.ID, _ shareddomain.ID, changes domain.Changes) (domain.Contact, error) {
					Expect(changes.Email).NotTo(BeNil())
					Expect(*changes.Email).To(BeEmpty())
					Expect(changes.Company).To(BeNil())
					return ada, nil
				})

			router.ServeHTTP(recorder, request(http.MethodPut, "/v1/contacts/"+ada.ID.String(), `{"email": ""}`))

			Expect(recorder.Code).To(Equal(http.StatusOK))
		})

		It("should return not found", func() {
			mockService.EXPECT().Update(gomock.Any(), owner, shareddomain.ID("missing"), gomock.Any()).Return(domain.Contact{}, usecases.ErrContactNotFound)

			router.ServeHTTP(recorder, request(http.MethodPut, "/v1/contacts/missing", `{}`))

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})
	})

	Context("delete", func() {
		It("should reply with no content", func() {
			mockService.EXPECT().Delete(gomock.Any(), owner, ada.ID).Return(nil)

			router.ServeHTTP(recorder, request(http.MethodDelete, "/v1/contacts/"+ada.ID.String(), ""))

			Expect(recorder.Code).To(Equal(http.StatusNoContent))
		})

		It("should return not found", func() {
			mockService.EXPECT().Delete(gomock.Any(), owner, shareddomain.ID("missing")).Return(usecases.ErrContactNotFound)

			router.ServeHTTP(recorder, request(http.MethodDelete, "/v1/contacts/missing", ""))

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})
	})
})
