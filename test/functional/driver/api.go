package driver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	userIDHeader   = "X-User-ID"
	userRoleHeader = "X-User-Role"
	operatorRole   = "operator"
)

type APIDriver struct {
	baseURL string
	client  *http.Client
}

func NewAPIDriver(baseURL string) *APIDriver {
	return &APIDriver{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func (d *APIDriver) GetHealthz() (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/healthz", d.baseURL))
}

func (d *APIDriver) GetTagTypeBySlug(ownerID, slug string) (*http.Response, error) {
	return d.do(http.MethodGet, fmt.Sprintf("/v1/tag-types/%s", slug), ownerID, "", nil)
}

func (d *APIDriver) CreateItem(ownerID string, body map[string]any) (*http.Response, error) {
	return d.do(http.MethodPost, "/v1/items", ownerID, "", body)
}

func (d *APIDriver) IssueCodes(count int, batch string) (*http.Response, error) {
	return d.do(http.MethodPost, "/v1/admin/codes", "operator-1", operatorRole, map[string]any{
		"count": count,
		"batch": batch,
	})
}

func (d *APIDriver) ClaimTag(ownerID, itemID, code string) (*http.Response, error) {
	return d.do(http.MethodPost, fmt.Sprintf("/v1/items/%s/tags", itemID), ownerID, "", map[string]any{"code": code})
}

func (d *APIDriver) ReleaseTag(ownerID, itemID, code string) (*http.Response, error) {
	return d.do(http.MethodDelete, fmt.Sprintf("/v1/items/%s/tags/%s", itemID, code), ownerID, "", nil)
}

func (d *APIDriver) ScanTag(code string) (*http.Response, error) {
	return d.do(http.MethodGet, fmt.Sprintf("/v1/public/tags/%s", code), "", "", nil)
}

func (d *APIDriver) SubmitChecklist(code string, body map[string]any) (*http.Response, error) {
	return d.do(http.MethodPost, fmt.Sprintf("/v1/public/tags/%s/checklist", code), "", "", body)
}

func (d *APIDriver) ListSubmissions(ownerID, itemID string) (*http.Response, error) {
	return d.do(http.MethodGet, fmt.Sprintf("/v1/items/%s/checklist-submissions", itemID), ownerID, "", nil)
}

func (d *APIDriver) ListScans(ownerID, itemID string) (*http.Response, error) {
	return d.do(http.MethodGet, fmt.Sprintf("/v1/items/%s/scans", itemID), ownerID, "", nil)
}

func (d *APIDriver) do(method, path, userID, role string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, d.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set(userIDHeader, userID)
	}
	if role != "" {
		req.Header.Set(userRoleHeader, role)
	}

	return d.client.Do(req)
}
