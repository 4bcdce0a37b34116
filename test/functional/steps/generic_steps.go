package steps

import (
	"net/http"

	"github.com/google/uuid"
)

func (fc *FeatureContext) iAmANewUser() error {
	fc.ownerID = uuid.NewString()
	fc.apiDriver.ActAs(fc.ownerID)
	return nil
}

func (fc *FeatureContext) iAmAnonymous() error {
	fc.ownerID = ""
	fc.apiDriver.ActAs("")
	return nil
}

func (fc *FeatureContext) theResponseStatusCodeShouldBe(code int) error {
	fc.require.NotNil(fc.response, "no request was sent")
	fc.require.Equal(code, fc.response.StatusCode, "Unexpected status code: %s", string(fc.responseBody))
	return nil
}

func (fc *FeatureContext) iCheckTheServiceHealth() error {
	fc.record(fc.apiDriver.Healthz())
	return nil
}

func (fc *FeatureContext) theServiceShouldBeHealthyAndReady() error {
	fc.require.Equal(http.StatusOK, fc.response.StatusCode)

	fc.record(fc.apiDriver.Readyz())
	fc.require.Equal(http.StatusOK, fc.response.StatusCode)
	return nil
}
