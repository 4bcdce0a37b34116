package httpapi_test

import (
	"crm-server/internal/deals/domain"
	"crm-server/internal/deals/httpapi"
	"crm-server/internal/deals/usecases"
	shareddomain "crm-server/internal/shared_kernel/domain"
	mockusecases "crm-server/test/unit/doubles/deals/usecases"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("DealController", func() {
	var (
		ctrl        *gomock.Controller
		mockService *mockusecases.MockDealService
		router      *http.ServeMux
		recorder    *httptest.ResponseRecorder
		website     domain.Deal
	)

	const owner = shareddomain.ID("user-1")

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockDealService(ctrl)
		router = http.NewServeMux()
		httpapi.NewDealController(mockService, time.UTC).AddRoutes(router)
		recorder = httptest.NewRecorder()

		var err error
		website, err = domain.NewDealBuilder().
			WithOwnerID(owner).
			WithName("Website").
			WithStage("proposal").
			WithValue("1200.50").
			Build()
		Expect(err).NotTo(HaveOccurred())
		website.Contacts = []domain.ContactSummary{{ID: "c-1", FirstName: "Ada", LastName: "Lovelace"}}
		website.ContactIDs = []shareddomain.ID{"c-1"}
	})

	request := func(method, path, body string) *http.Request {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("X-User-ID", owner.String())
		return req
	}

	It("should reject requests without a user", func() {
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/deals/pipeline", nil))

		Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
	})

	Context("list", func() {
		It("should pass the stage and contact flag to the service", func() {
			mockService.EXPECT().
				List(gomock.Any(), owner, usecases.ListQuery{
					Stage:           domain.StageProposal,
					IncludeContacts: true,
					Pagination:      usecases.Pagination{Limit: 10},
				}).
				Return([]domain.Deal{website}, 1, nil)

			router.ServeHTTP(recorder, request(http.MethodGet, "/v1/deals?stage=proposal&includeContacts=true", ""))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			var body struct {
				Data []struct {
					Name     string `json:"name"`
					Value    string `json:"value"`
					Contacts []struct {
						FirstName string `json:"firstName"`
					} `json:"contacts"`
				} `json:"data"`
			}
			Expect(json.Unmarshal(recorder.Body.Bytes(), &body)).To(Succeed())
			Expect(body.Data).To(HaveLen(1))
			Expect(body.Data[0].Value).To(Equal("1200.5"))
			Expect(body.Data[0].Contacts[0].FirstName).To(Equal("Ada"))
		})

		It("should reject an unknown stage", func() {
			router.ServeHTTP(recorder, request(http.MethodGet, "/v1/deals?stage=won", ""))

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})

		It("should list one stage by path", func() {
			mockService.EXPECT().ListByStage(gomock.Any(), owner, domain.StageClosedWon).Return([]domain.Deal{}, nil)

			router.ServeHTTP(recorder, request(http.MethodGet, "/v1/deals/stages/closed-won", ""))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(MatchJSON(`{"data": []}`))
		})

		It("should reject an unknown stage path", func() {
			router.ServeHTTP(recorder, request(http.MethodGet, "/v1/deals/stages/someday", ""))

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})
	})

	It("should return every pipeline stage", func() {
		mockService.EXPECT().Pipeline(gomock.Any(), owner).Return(domain.GroupByStage([]domain.Deal{website}), nil)

		router.ServeHTTP(recorder, request(http.MethodGet, "/v1/deals/pipeline", ""))

		Expect(recorder.Code).To(Equal(http.StatusOK))
		var body struct {
			Stages []struct {
				Stage string `json:"stage"`
				Total string `json:"total"`
				Count int    `json:"count"`
			} `json:"stages"`
		}
		Expect(json.Unmarshal(recorder.Body.Bytes(), &body)).To(Succeed())
		Expect(body.Stages).To(HaveLen(len(domain.Stages)))
		Expect(body.Stages[2].Stage).To(Equal("proposal"))
		Expect(body.Stages[2].Total).To(Equal("1200.5"))
		Expect(body.Stages[2].Count).To(Equal(1))
	})

	It("should render stats with exact totals", func() {
		stats := domain.NewStats()
		value, err := domain.ParseValue("0.10")
		Expect(err).NotTo(HaveOccurred())
		stats.Add(domain.StageClosedWon, value)
		stats.Add(domain.StageClosedWon, value)
		stats.Add(domain.StageClosedWon, value)
		mockService.EXPECT().Stats(gomock.Any(), owner).Return(stats, nil)

		router.ServeHTTP(recorder, request(http.MethodGet, "/v1/deals/stats", ""))

		Expect(recorder.Code).To(Equal(http.StatusOK))
		Expect(recorder.Body.String()).To(MatchJSON(`{
			"totalDeals": 3,
			"dealsByStage": {"lead": 0, "qualified": 0, "proposal": 0, "negotiation": 0, "closed-won": 3, "closed-lost": 0},
			"totalValue": "0.3",
			"wonValue": "0.3"
		}`))
	})

	Context("get", func() {
		It("should return the deal", func() {
			mockService.EXPECT().Get(gomock.Any(), owner, website.ID).Return(website, nil)

			router.ServeHTTP(recorder, request(http.MethodGet, "/v1/deals/"+website.ID.String(), ""))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(ContainSubstring(`"stage":"proposal"`))
		})

		It("should report a missing deal", func() {
			mockService.EXPECT().Get(gomock.Any(), owner, shareddomain.ID("missing")).Return(domain.Deal{}, usecases.ErrDealNotFound)

			router.ServeHTTP(recorder, request(http.MethodGet, "/v1/deals/missing", ""))

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})
	})

	Context("create", func() {
		It("should build the deal from the body", func() {
			mockService.EXPECT().Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ any, deal domain.Deal) error {
					Expect(deal.OwnerID).To(Equal(owner))
					Expect(deal.Stage).To(Equal(domain.StageLead))
					Expect(deal.Currency).To(Equal("AUD"))
					Expect(*deal.ExpectedClose).To(Equal(time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)))
					Expect(deal.ContactIDs).To(Equal([]shareddomain.ID{"c-1"}))
					return nil
				})

			router.ServeHTTP(recorder, request(http.MethodPost, "/v1/deals",
				`{"name": "Website", "value": "500", "currency": "aud", "expectedClose": "2024-06-30", "contactIds": ["c-1", "c-1"]}`))

			Expect(recorder.Code).To(Equal(http.StatusCreated))
			Expect(recorder.Body.String()).To(ContainSubstring(`"id"`))
		})

		DescribeTable("should reject invalid input",
			func(body string) {
				router.ServeHTTP(recorder, request(http.MethodPost, "/v1/deals", body))

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			},
			Entry("missing name", `{"value": "10"}`),
			Entry("negative value", `{"name": "Website", "value": "-10"}`),
			Entry("unknown stage", `{"name": "Website", "stage": "won"}`),
			Entry("bad date", `{"name": "Website", "expectedClose": "soon"}`),
			Entry("malformed body", `{"name": `),
		)

		It("should reject contacts of another owner", func() {
			mockService.EXPECT().Create(gomock.Any(), gomock.Any()).Return(usecases.ErrUnknownContacts)

			router.ServeHTTP(recorder, request(http.MethodPost, "/v1/deals", `{"name": "Website", "contactIds": ["c-9"]}`))

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})

		It("should hide internal failures", func() {
			mockService.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("database is down"))

			router.ServeHTTP(recorder, request(http.MethodPost, "/v1/deals", `{"name": "Website"}`))

			Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
			Expect(recorder.Body.String()).NotTo(ContainSubstring("database"))
		})
	})

	Context("update", func() {
		It("should clear the expected close date and replace contacts", func() {
			mockService.EXPECT().Update(gomock.Any(), owner, website.ID, gomock.Any()).
				DoAndReturn(func(_ any, _, _ shareddomain.ID, changes domain.Changes) (domain.Deal, error) {
					Expect(changes.ClearExpectedClose).To(BeTrue())
					Expect(changes.ExpectedClose).To(BeNil())
					Expect(*changes.ContactIDs).To(BeEmpty())
					Expect(changes.Name).To(BeNil())
					return website, nil
				})

			router.ServeHTTP(recorder, request(http.MethodPut, "/v1/deals/"+website.ID.String(), `{"expectedClose": "", "contactIds": []}`))

			Expect(recorder.Code).To(Equal(http.StatusOK))
		})

		It("should report a missing deal", func() {
			mockService.EXPECT().Update(gomock.Any(), owner, shareddomain.ID("missing"), gomock.Any()).Return(domain.Deal{}, usecases.ErrDealNotFound)

			router.ServeHTTP(recorder, request(http.MethodPut, "/v1/deals/missing", `{"name": "x"}`))

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})

		It("should report an invalid value", func() {
			mockService.EXPECT().Update(gomock.Any(), owner, website.ID, gomock.Any()).Return(domain.Deal{}, domain.ErrInvalidValue)

			router.ServeHTTP(recorder, request(http.MethodPut, "/v1/deals/"+website.ID.String(), `{"value": "abc"}`))

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Context("move", func() {
		It("should move the deal to the given stage", func() {
			moved := website
			moved.Stage = domain.StageNegotiation
			mockService.EXPECT().UpdateStage(gomock.Any(), owner, website.ID, domain.StageNegotiation).Return(moved, nil)

			router.ServeHTTP(recorder, request(http.MethodPut, "/v1/deals/"+website.ID.String()+"/stage", `{"stage": "negotiation"}`))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(ContainSubstring(`"stage":"negotiation"`))
		})

		It("should reject an unknown stage", func() {
			router.ServeHTTP(recorder, request(http.MethodPut, "/v1/deals/"+website.ID.String()+"/stage", `{"stage": "done"}`))

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Context("delete", func() {
		It("should answer no content", func() {
			mockService.EXPECT().Delete(gomock.Any(), owner, website.ID).Return(nil)

			router.ServeHTTP(recorder, request(http.MethodDelete, "/v1/deals/"+website.ID.String(), ""))

			Expect(recorder.Code).To(Equal(http.StatusNoContent))
		})

		It("should report a missing deal", func() {
			mockService.EXPECT().Delete(gomock.Any(), owner, shareddomain.ID("missing")).Return(usecases.ErrDealNotFound)

			router.ServeHTTP(recorder, request(http.MethodDelete, "/v1/deals/missing", ""))

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})
	})
})
