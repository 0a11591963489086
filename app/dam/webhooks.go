package dam

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cappuccinotm/damlink/app/errs"
	"github.com/cappuccinotm/damlink/app/store"
)

// ListWebhooks fetches the webhook integrations configured in the DAM
// account. Entries missing any of the required fields are skipped with a
// diagnostic, a partial registry is better than none.
func (c *Client) ListWebhooks(ctx context.Context) (store.Registry, error) {
	if !c.configured() {
		return store.Registry{}, errs.ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/webhooks", nil)
	if err != nil {
		return store.Registry{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.cl.Do(req)
	if err != nil {
		return store.Registry{}, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return store.Registry{}, c.handleUnexpectedStatus(resp)
	}

	var respBody struct {
		Results []struct {
			Name    string `json:"name"`
			UUID    string `json:"uuid"`
			Service string `json:"service"`
			Config  struct {
				URL string `json:"url"`
			} `json:"config"`
		} `json:"results"`
	}

	if err = json.NewDecoder(resp.Body).Decode(&respBody); err != nil {
		return store.Registry{}, fmt.Errorf("unmarshal webhooks list: %w", err)
	}

	var registry store.Registry
	for _, raw := range respBody.Results {
		e := store.Endpoint{Name: raw.Name, UUID: raw.UUID, Service: raw.Service, URL: raw.Config.URL}
		if err := e.Validate(); err != nil {
			c.l.Printf("[DEBUG] skipped webhook entry %q: %v", raw.Name, err)
			continue
		}
		registry.Add(e)
	}

	return registry, nil
}
