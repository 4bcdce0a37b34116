package steps

import "net/http"

func (fc *FeatureContext) iDefineACustomField(fieldType, key, entityType string) error {
	fc.record(fc.apiDriver.CreateCustomField(entityType, key, key, fieldType))
	return nil
}

func (fc *FeatureContext) aCustomFieldExists(fieldType, key, entityType string) error {
	fc.record(fc.apiDriver.CreateCustomField(entityType, key, key, fieldType))
	fc.require.Equal(http.StatusCreated, fc.response.StatusCode, string(fc.responseBody))
	return nil
}

func (fc *FeatureContext) iListTheCustomFieldsFor(entityType string) error {
	fc.record(fc.apiDriver.ListCustomFields(entityType))
	return nil
}

func (fc *FeatureContext) theCustomFieldsShouldBe(keys string) error {
	var list struct {
		Data []map[string]any `json:"data"`
	}
	fc.decodeBody(&list)
	fc.require.ElementsMatch(splitNames(keys), fieldOf(list.Data, "fieldKey"))
	return nil
}
