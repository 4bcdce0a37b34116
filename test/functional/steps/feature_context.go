package steps

import (
	"context"
	"crm-server/test/functional/driver"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type PaginatedResponse[T any] struct {
	Data       []T `json:"data"`
	Pagination struct {
		Page       int `json:"page"`
		Limit      int `json:"limit"`
		Total      int `json:"total"`
		TotalPages int `json:"total_pages"`
	} `json:"pagination"`
}

type FeatureContext struct {
	apiDriver    *driver.APIDriver
	response     *http.Response
	responseBody []byte
	ownerID      string
	contactIDs   map[string]string
	dealIDs      map[string]string
	require      *require.Assertions
	t            godog.TestingT
}

func NewFeatureContext(baseURL string) *FeatureContext {
	return &FeatureContext{
		apiDriver: driver.NewAPIDriver(baseURL),
	}
}

func (fc *FeatureContext) RegisterSteps(ctx *godog.ScenarioContext) {
	// Generic steps
	ctx.Given(`^I am a new user$`, fc.iAmANewUser)
	ctx.Given(`^I am anonymous$`, fc.iAmAnonymous)
	ctx.Then(`^the response status code should be (\d+)$`, fc.theResponseStatusCodeShouldBe)
	ctx.When(`^I check the service health$`, fc.iCheckTheServiceHealth)
	ctx.Then(`^the service should be healthy and ready$`, fc.theServiceShouldBeHealthyAndReady)

	// Custom field steps
	ctx.When(`^I define a "([^"]*)" custom field "([^"]*)" for "([^"]*)"$`, fc.iDefineACustomField)
	ctx.Given(`^a "([^"]*)" custom field "([^"]*)" for "([^"]*)"$`, fc.aCustomFieldExists)
	ctx.When(`^I list the custom fields for "([^"]*)"$`, fc.iListTheCustomFieldsFor)
	ctx.Then(`^the custom fields should be "([^"]*)"$`, fc.theCustomFieldsShouldBe)

	// Contact steps
	ctx.When(`^I create a contact "([^"]*)" "([^"]*)" at "([^"]*)" with email "([^"]*)"$`, fc.iCreateAContact)
	ctx.Given(`^a contact "([^"]*)" "([^"]*)" at "([^"]*)" with email "([^"]*)"$`, fc.aContactExists)
	ctx.Given(`^a contact "([^"]*)" "([^"]*)" with "([^"]*)" set to "([^"]*)"$`, fc.aContactWithCustomFieldExists)
	ctx.When(`^I create a contact "([^"]*)" with "([^"]*)" set to "([^"]*)"$`, fc.iCreateAContactWithCustomField)
	ctx.Given(`^another user owns a contact "([^"]*)" "([^"]*)"$`, fc.anotherUserOwnsAContact)
	ctx.When(`^I get the contact "([^"]*)"$`, fc.iGetTheContact)
	ctx.When(`^another user gets the contact "([^"]*)"$`, fc.anotherUserGetsTheContact)
	ctx.When(`^I clear the email of contact "([^"]*)"$`, fc.iClearTheEmailOfContact)
	ctx.Then(`^the contact should have company "([^"]*)"$`, fc.theContactShouldHaveCompany)
	ctx.Then(`^the contact should have email "([^"]*)"$`, fc.theContactShouldHaveEmail)
	ctx.When(`^I list contacts$`, fc.iListContacts)
	ctx.When(`^I list contacts where "([^"]*)" "([^"]*)" "([^"]*)" "([^"]*)"$`, fc.iListContactsWhere)
	ctx.When(`^I list contacts sorted by "([^"]*)"$`, fc.iListContactsSortedBy)
	ctx.Then(`^the listed contacts should be "([^"]*)" in any order$`, fc.theListedContactsShouldBeInAnyOrder)
	ctx.Then(`^the listed contacts should be "([^"]*)" in this order$`, fc.theListedContactsShouldBeInThisOrder)
	ctx.When(`^I search contacts for "([^"]*)"$`, fc.iSearchContactsFor)
	ctx.Then(`^the found contacts should be "([^"]*)"$`, fc.theFoundContactsShouldBe)
	ctx.When(`^I request the contact stats$`, fc.iRequestTheContactStats)
	ctx.Then(`^the stats should report (\d+) contacts at (\d+) companies$`, fc.theStatsShouldReport)

	// Deal steps
	ctx.When(`^I create a deal "([^"]*)" worth "([^"]*)"$`, fc.iCreateADealWorth)
	ctx.Given(`^a deal "([^"]*)" worth "([^"]*)"$`, fc.aDealExists)
	ctx.When(`^I create a deal "([^"]*)" linked to contact "([^"]*)"$`, fc.iCreateADealLinkedToContact)
	ctx.When(`^I get the deal "([^"]*)"$`, fc.iGetTheDeal)
	ctx.Then(`^the deal should be in stage "([^"]*)" with currency "([^"]*)"$`, fc.theDealShouldBeInStageWithCurrency)
	ctx.Then(`^the deal value should be "([^"]*)"$`, fc.theDealValueShouldBe)
	ctx.Then(`^the deal should list contact "([^"]*)"$`, fc.theDealShouldListContact)
	ctx.When(`^I move the deal "([^"]*)" to "([^"]*)"$`, fc.iMoveTheDealTo)
	ctx.When(`^I request the pipeline$`, fc.iRequestThePipeline)
	ctx.Then(`^the pipeline stage "([^"]*)" should hold (\d+) deals? worth "([^"]*)"$`, fc.thePipelineStageShouldHold)
	ctx.When(`^I request the deal stats$`, fc.iRequestTheDealStats)
	ctx.Then(`^the deal stats should report (\d+) deals worth "([^"]*)" with "([^"]*)" won$`, fc.theDealStatsShouldReport)
	ctx.When(`^I list deals where "([^"]*)" "([^"]*)" "([^"]*)" "([^"]*)"$`, fc.iListDealsWhere)
	ctx.Then(`^the listed deals should be "([^"]*)"$`, fc.theListedDealsShouldBe)

	// Column configuration steps
	ctx.When(`^I get the "([^"]*)" columns$`, fc.iGetTheColumns)
	ctx.Then(`^the columns should be "([^"]*)"$`, fc.theColumnsShouldBe)
	ctx.When(`^I toggle the "([^"]*)" column of "([^"]*)"$`, fc.iToggleTheColumnOf)
	ctx.Then(`^the visible columns should not include "([^"]*)"$`, fc.theVisibleColumnsShouldNotInclude)
	ctx.When(`^I remove the "([^"]*)" column of "([^"]*)"$`, fc.iRemoveTheColumnOf)
	ctx.When(`^I sort the "([^"]*)" list by "([^"]*)" "([^"]*)"$`, fc.iSortTheListBy)
	ctx.Then(`^the sorted columns should be "([^"]*)"$`, fc.theSortedColumnsShouldBe)
	ctx.When(`^I reset the "([^"]*)" columns$`, fc.iResetTheColumns)
	ctx.Then(`^no column should be sorted$`, fc.noColumnShouldBeSorted)

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		fc.t = godog.T(ctx)
		fc.require = require.New(fc.t)

		fc.reset()
		return ctx, nil
	})
}

func (fc *FeatureContext) reset() {
	fc.response = nil
	fc.responseBody = nil
	fc.ownerID = ""
	fc.apiDriver.ActAs("")
	fc.contactIDs = make(map[string]string)
	fc.dealIDs = make(map[string]string)
}

// record keeps the response of the last request. The body is read once so
// that several steps can inspect it.
func (fc *FeatureContext) record(resp *http.Response, err error) {
	fc.require.NoError(err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	fc.require.NoError(err)
	fc.response = resp
	fc.responseBody = body
}

func (fc *FeatureContext) decodeBody(target any) {
	fc.require.NotNil(fc.response, "no request was sent")
	fc.require.NoError(json.Unmarshal(fc.responseBody, target), string(fc.responseBody))
}

func (fc *FeatureContext) decodePaginatedResponse() []map[string]any {
	var paginatedResp PaginatedResponse[map[string]any]
	fc.decodeBody(&paginatedResp)
	return paginatedResp.Data
}

func (fc *FeatureContext) createdID() string {
	var data map[string]any
	fc.decodeBody(&data)
	id, ok := data["id"].(string)
	fc.require.True(ok, "response has no id")
	return id
}

// asOtherUser runs fn on behalf of a fresh user and switches back.
func (fc *FeatureContext) asOtherUser(fn func()) {
	fc.apiDriver.ActAs(uuid.NewString())
	defer fc.apiDriver.ActAs(fc.ownerID)
	fn()
}

func splitNames(names string) []string {
	if strings.TrimSpace(names) == "" {
		return []string{}
	}
	parts := strings.Split(names, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func fieldOf(items []map[string]any, key string) []string {
	values := make([]string, 0, len(items))
	for _, item := range items {
		value, _ := item[key].(string)
		values = append(values, value)
	}
	return values
}
