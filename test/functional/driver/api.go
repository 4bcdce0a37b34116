package driver

import (
	"bytes"
	"crm-server/internal/infra/httpserver"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

type APIDriver struct {
	baseURL string
	client  *http.Client
	ownerID string
}

func NewAPIDriver(baseURL string) *APIDriver {
	return &APIDriver{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// ActAs sends every following request on behalf of ownerID. An empty id
// sends anonymous requests.
func (d *APIDriver) ActAs(ownerID string) {
	d.ownerID = ownerID
}

func (d *APIDriver) do(method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		reader = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, d.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if d.ownerID != "" {
		req.Header.Set(httpserver.UserIDHeader, d.ownerID)
	}
	return d.client.Do(req)
}

func (d *APIDriver) Healthz() (*http.Response, error) {
	return d.do(http.MethodGet, "/healthz", nil)
}

func (d *APIDriver) Readyz() (*http.Response, error) {
	return d.do(http.MethodGet, "/readyz", nil)
}

func (d *APIDriver) CreateCustomField(entityType, key, label, fieldType string) (*http.Response, error) {
	return d.do(http.MethodPost, "/v1/custom-fields", map[string]any{
		"entityType": entityType,
		"fieldKey":   key,
		"label":      label,
		"fieldType":  fieldType,
	})
}

func (d *APIDriver) ListCustomFields(entityType string) (*http.Response, error) {
	return d.do(http.MethodGet, "/v1/custom-fields?entityType="+url.QueryEscape(entityType), nil)
}

func (d *APIDriver) DeleteCustomField(id string) (*http.Response, error) {
	return d.do(http.MethodDelete, fmt.Sprintf("/v1/custom-fields/%s", id), nil)
}

func (d *APIDriver) CreateContact(contact map[string]any) (*http.Response, error) {
	return d.do(http.MethodPost, "/v1/contacts", contact)
}

func (d *APIDriver) GetContact(id string) (*http.Response, error) {
	return d.do(http.MethodGet, fmt.Sprintf("/v1/contacts/%s", id), nil)
}

func (d *APIDriver) UpdateContact(id string, changes map[string]any) (*http.Response, error) {
	return d.do(http.MethodPut, fmt.Sprintf("/v1/contacts/%s", id), changes)
}

func (d *APIDriver) DeleteContact(id string) (*http.Response, error) {
	return d.do(http.MethodDelete, fmt.Sprintf("/v1/contacts/%s", id), nil)
}

// ListContacts sends query as the raw query string, e.g. filters and sort.
func (d *APIDriver) ListContacts(query url.Values) (*http.Response, error) {
	return d.do(http.MethodGet, "/v1/contacts?"+query.Encode(), nil)
}

func (d *APIDriver) SearchContacts(term string) (*http.Response, error) {
	return d.do(http.MethodGet, "/v1/contacts/search?q="+url.QueryEscape(term), nil)
}

func (d *APIDriver) ContactStats() (*http.Response, error) {
	return d.do(http.MethodGet, "/v1/contacts/stats", nil)
}

func (d *APIDriver) CreateDeal(deal map[string]any) (*http.Response, error) {
	return d.do(http.MethodPost, "/v1/deals", deal)
}

func (d *APIDriver) GetDeal(id string) (*http.Response, error) {
	return d.do(http.MethodGet, fmt.Sprintf("/v1/deals/%s", id), nil)
}

func (d *APIDriver) ListDeals(query url.Values) (*http.Response, error) {
	return d.do(http.MethodGet, "/v1/deals?"+query.Encode(), nil)
}

func (d *APIDriver) MoveDeal(id, stage string) (*http.Response, error) {
	return d.do(http.MethodPut, fmt.Sprintf("/v1/deals/%s/stage", id), map[string]any{"stage": stage})
}

func (d *APIDriver) Pipeline() (*http.Response, error) {
	return d.do(http.MethodGet, "/v1/deals/pipeline", nil)
}

func (d *APIDriver) DealStats() (*http.Response, error) {
	return d.do(http.MethodGet, "/v1/deals/stats", nil)
}

func (d *APIDriver) GetColumns(list string) (*http.Response, error) {
	return d.do(http.MethodGet, fmt.Sprintf("/v1/column-configs/%s", list), nil)
}

func (d *APIDriver) ToggleColumn(list, columnID string) (*http.Response, error) {
	return d.do(http.MethodPost, fmt.Sprintf("/v1/column-configs/%s/columns/%s/visibility", list, columnID), nil)
}

func (d *APIDriver) SortColumn(list, columnID, direction string) (*http.Response, error) {
	return d.do(http.MethodPut, fmt.Sprintf("/v1/column-configs/%s/columns/%s/sort", list, columnID), map[string]any{"direction": direction})
}

func (d *APIDriver) RemoveColumn(list, columnID string) (*http.Response, error) {
	return d.do(http.MethodDelete, fmt.Sprintf("/v1/column-configs/%s/columns/%s", list, columnID), nil)
}

func (d *APIDriver) ResetColumns(list string) (*http.Response, error) {
	return d.do(http.MethodPost, fmt.Sprintf("/v1/column-configs/%s/reset", list), nil)
}
