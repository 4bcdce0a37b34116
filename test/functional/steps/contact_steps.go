package steps

import (
	"encoding/json"
	"net/http"
	"net/url"
)

func (fc *FeatureContext) createContact(contact map[string]any) {
	fc.record(fc.apiDriver.CreateContact(contact))
	if fc.response.StatusCode == http.StatusCreated {
		fc.contactIDs[contact["firstName"].(string)] = fc.createdID()
	}
}

func (fc *FeatureContext) iCreateAContact(firstName, lastName, company, email string) error {
	fc.createContact(map[string]any{
		"firstName": firstName,
		"lastName":  lastName,
		"company":   company,
		"email":     email,
	})
	return nil
}

func (fc *FeatureContext) aContactExists(firstName, lastName, company, email string) error {
	fc.iCreateAContact(firstName, lastName, company, email)
	fc.require.Equal(http.StatusCreated, fc.response.StatusCode, string(fc.responseBody))
	return nil
}

func (fc *FeatureContext) aContactWithCustomFieldExists(firstName, lastName, key, value string) error {
	fc.createContact(map[string]any{
		"firstName":    firstName,
		"lastName":     lastName,
		"customFields": map[string]any{key: value},
	})
	fc.require.Equal(http.StatusCreated, fc.response.StatusCode, string(fc.responseBody))
	return nil
}

func (fc *FeatureContext) iCreateAContactWithCustomField(firstName, key, value string) error {
	fc.createContact(map[string]any{
		"firstName":    firstName,
		"customFields": map[string]any{key: value},
	})
	return nil
}

func (fc *FeatureContext) anotherUserOwnsAContact(firstName, lastName string) error {
	fc.asOtherUser(func() {
		fc.createContact(map[string]any{
			"firstName": firstName,
			"lastName":  lastName,
		})
		fc.require.Equal(http.StatusCreated, fc.response.StatusCode, string(fc.responseBody))
	})
	return nil
}

func (fc *FeatureContext) contactID(firstName string) string {
	id, ok := fc.contactIDs[firstName]
	fc.require.True(ok, "unknown contact %s", firstName)
	return id
}

func (fc *FeatureContext) iGetTheContact(firstName string) error {
	fc.record(fc.apiDriver.GetContact(fc.contactID(firstName)))
	return nil
}

func (fc *FeatureContext) anotherUserGetsTheContact(firstName string) error {
	id := fc.contactID(firstName)
	fc.asOtherUser(func() {
		fc.record(fc.apiDriver.GetContact(id))
	})
	return nil
}

func (fc *FeatureContext) iClearTheEmailOfContact(firstName string) error {
	fc.record(fc.apiDriver.UpdateContact(fc.contactID(firstName), map[string]any{"email": ""}))
	return nil
}

func (fc *FeatureContext) theContactShouldHaveCompany(company string) error {
	var contact map[string]any
	fc.decodeBody(&contact)
	fc.require.Equal(company, contact["company"])
	return nil
}

func (fc *FeatureContext) theContactShouldHaveEmail(email string) error {
	var contact map[string]any
	fc.decodeBody(&contact)
	fc.require.Equal(email, contact["email"])
	return nil
}

func (fc *FeatureContext) iListContacts() error {
	fc.record(fc.apiDriver.ListContacts(url.Values{}))
	return nil
}

func (fc *FeatureContext) iListContactsWhere(columnID, columnType, operator, value string) error {
	filters, err := json.Marshal([]map[string]any{{
		"columnId":   columnID,
		"columnType": columnType,
		"operator":   operator,
		"value":      value,
	}})
	fc.require.NoError(err)

	fc.record(fc.apiDriver.ListContacts(url.Values{"filters": {string(filters)}}))
	return nil
}

func (fc *FeatureContext) iListContactsSortedBy(sort string) error {
	fc.record(fc.apiDriver.ListContacts(url.Values{"sort": {sort}}))
	return nil
}

func (fc *FeatureContext) theListedContactsShouldBeInAnyOrder(names string) error {
	fc.require.Equal(http.StatusOK, fc.response.StatusCode, string(fc.responseBody))
	fc.require.ElementsMatch(splitNames(names), fieldOf(fc.decodePaginatedResponse(), "firstName"))
	return nil
}

func (fc *FeatureContext) theListedContactsShouldBeInThisOrder(names string) error {
	fc.require.Equal(http.StatusOK, fc.response.StatusCode, string(fc.responseBody))
	fc.require.Equal(splitNames(names), fieldOf(fc.decodePaginatedResponse(), "firstName"))
	return nil
}

func (fc *FeatureContext) iSearchContactsFor(term string) error {
	fc.record(fc.apiDriver.SearchContacts(term))
	return nil
}

func (fc *FeatureContext) theFoundContactsShouldBe(names string) error {
	var found struct {
		Data []map[string]any `json:"data"`
	}
	fc.decodeBody(&found)
	fc.require.ElementsMatch(splitNames(names), fieldOf(found.Data, "firstName"))
	return nil
}

func (fc *FeatureContext) iRequestTheContactStats() error {
	fc.record(fc.apiDriver.ContactStats())
	return nil
}

func (fc *FeatureContext) theStatsShouldReport(contacts, companies int) error {
	var stats struct {
		TotalContacts  int `json:"totalContacts"`
		TotalCompanies int `json:"totalCompanies"`
		RecentContacts int `json:"recentContacts"`
	}
	fc.decodeBody(&stats)
	fc.require.Equal(contacts, stats.TotalContacts)
	fc.require.Equal(companies, stats.TotalCompanies)
	fc.require.Equal(contacts, stats.RecentContacts, "every contact was created just now")
	return nil
}
