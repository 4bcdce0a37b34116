package steps

import (
	"encoding/json"
	"net/http"
	"net/url"
)

func (fc *FeatureContext) createDeal(deal map[string]any) {
	fc.record(fc.apiDriver.CreateDeal(deal))
	if fc.response.StatusCode == http.StatusCreated {
		fc.dealIDs[deal["name"].(string)] = fc.createdID()
	}
}

func (fc *FeatureContext) dealID(name string) string {
	id, ok := fc.dealIDs[name]
	fc.require.True(ok, "unknown deal %s", name)
	return id
}

func (fc *FeatureContext) iCreateADealWorth(name, value string) error {
	fc.createDeal(map[string]any{"name": name, "value": value})
	return nil
}

func (fc *FeatureContext) aDealExists(name, value string) error {
	fc.iCreateADealWorth(name, value)
	fc.require.Equal(http.StatusCreated, fc.response.StatusCode, string(fc.responseBody))
	return nil
}

func (fc *FeatureContext) iCreateADealLinkedToContact(name, firstName string) error {
	fc.createDeal(map[string]any{
		"name":       name,
		"contactIds": []string{fc.contactID(firstName)},
	})
	return nil
}

func (fc *FeatureContext) iGetTheDeal(name string) error {
	fc.record(fc.apiDriver.GetDeal(fc.dealID(name)))
	return nil
}

func (fc *FeatureContext) theDealShouldBeInStageWithCurrency(stage, currency string) error {
	var deal map[string]any
	fc.decodeBody(&deal)
	fc.require.Equal(stage, deal["stage"])
	fc.require.Equal(currency, deal["currency"])
	return nil
}

func (fc *FeatureContext) theDealValueShouldBe(value string) error {
	var deal map[string]any
	fc.decodeBody(&deal)
	fc.require.Equal(value, deal["value"])
	return nil
}

func (fc *FeatureContext) theDealShouldListContact(firstName string) error {
	var deal struct {
		ContactIDs []string         `json:"contactIds"`
		Contacts   []map[string]any `json:"contacts"`
	}
	fc.decodeBody(&deal)
	fc.require.Equal([]string{fc.contactID(firstName)}, deal.ContactIDs)
	fc.require.Equal([]string{firstName}, fieldOf(deal.Contacts, "firstName"))
	return nil
}

func (fc *FeatureContext) iMoveTheDealTo(name, stage string) error {
	fc.record(fc.apiDriver.MoveDeal(fc.dealID(name), stage))
	return nil
}

func (fc *FeatureContext) iRequestThePipeline() error {
	fc.record(fc.apiDriver.Pipeline())
	return nil
}

func (fc *FeatureContext) thePipelineStageShouldHold(stage string, count int, total string) error {
	var pipeline struct {
		Stages []struct {
			Stage string `json:"stage"`
			Total string `json:"total"`
			Count int    `json:"count"`
		} `json:"stages"`
	}
	fc.decodeBody(&pipeline)

	for _, column := range pipeline.Stages {
		if column.Stage != stage {
			continue
		}
		fc.require.Equal(count, column.Count)
		fc.require.Equal(total, column.Total)
		return nil
	}
	fc.require.Failf("missing stage", "the pipeline has no %s stage", stage)
	return nil
}

func (fc *FeatureContext) iRequestTheDealStats() error {
	fc.record(fc.apiDriver.DealStats())
	return nil
}

func (fc *FeatureContext) theDealStatsShouldReport(deals int, total, won string) error {
	var stats struct {
		TotalDeals int    `json:"totalDeals"`
		TotalValue string `json:"totalValue"`
		WonValue   string `json:"wonValue"`
	}
	fc.decodeBody(&stats)
	fc.require.Equal(deals, stats.TotalDeals)
	fc.require.Equal(total, stats.TotalValue)
	fc.require.Equal(won, stats.WonValue)
	return nil
}

func (fc *FeatureContext) iListDealsWhere(columnID, columnType, operator, value string) error {
	filters, err := json.Marshal([]map[string]any{{
		"columnId":   columnID,
		"columnType": columnType,
		"operator":   operator,
		"value":      value,
	}})
	fc.require.NoError(err)

	fc.record(fc.apiDriver.ListDeals(url.Values{"filters": {string(filters)}}))
	return nil
}

func (fc *FeatureContext) theListedDealsShouldBe(names string) error {
	fc.require.Equal(http.StatusOK, fc.response.StatusCode, string(fc.responseBody))
	fc.require.ElementsMatch(splitNames(names), fieldOf(fc.decodePaginatedResponse(), "name"))
	return nil
}
