package dam

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cappuccinotm/damlink/app/errs"
	"github.com/cappuccinotm/damlink/app/store"
)

// AttributeTemplate describes a custom file attribute field configured in
// the DAM account.
type AttributeTemplate struct {
	UUID   string `json:"uuid"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Hidden bool   `json:"hidden"`
}

// batchPath is a single path entry of the batch attribute endpoints.
// Unlike the weblink endpoint, these accept a revision-pinned asset as a
// path plus a separate identifier.
type batchPath struct {
	Path       string `json:"path"`
	Identifier string `json:"identifier,omitempty"`
}

// GetOrCreateAttributeTemplate returns the text attribute field with the
// given name, creating a non-hidden one with no preset values if the
// account has none yet. Idempotent by name.
func (c *Client) GetOrCreateAttributeTemplate(ctx context.Context, name string) (AttributeTemplate, error) {
	if !c.configured() {
		return AttributeTemplate{}, errs.ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/company/file_attribute_templates", nil)
	if err != nil {
		return AttributeTemplate{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.cl.Do(req)
	if err != nil {
		return AttributeTemplate{}, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return AttributeTemplate{}, c.handleUnexpectedStatus(resp)
	}

	var respBody struct {
		Results []AttributeTemplate `json:"results"`
	}

	if err = json.NewDecoder(resp.Body).Decode(&respBody); err != nil {
		return AttributeTemplate{}, fmt.Errorf("unmarshal attribute templates: %w", err)
	}

	for _, tmpl := range respBody.Results {
		if tmpl.Name == name && tmpl.Type == "text" {
			return tmpl, nil
		}
	}

	return c.createAttributeTemplate(ctx, name)
}

func (c *Client) createAttributeTemplate(ctx context.Context, name string) (AttributeTemplate, error) {
	bts, err := json.Marshal(struct {
		AccountKey      string   `json:"account_key"`
		Name            string   `json:"name"`
		Type            string   `json:"type"`
		AvailableValues []string `json:"available_values"`
		Hidden          bool     `json:"hidden"`
	}{AccountKey: c.accountKey, Name: name, Type: "text", AvailableValues: []string{}})
	if err != nil {
		return AttributeTemplate{}, fmt.Errorf("marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/company/file_attribute_templates", bytes.NewReader(bts))
	if err != nil {
		return AttributeTemplate{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.cl.Do(req)
	if err != nil {
		return AttributeTemplate{}, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return AttributeTemplate{}, c.handleUnexpectedStatus(resp)
	}

	var tmpl AttributeTemplate
	if err = json.NewDecoder(resp.Body).Decode(&tmpl); err != nil {
		return AttributeTemplate{}, fmt.Errorf("unmarshal created template: %w", err)
	}

	return tmpl, nil
}

// AttachMetadata sets the value of the named text attribute on the asset,
// resolving the attribute template by name first.
func (c *Client) AttachMetadata(ctx context.Context, assetPath, fieldName, value string) error {
	if !c.configured() {
		return errs.ErrNotConfigured
	}

	tmpl, err := c.GetOrCreateAttributeTemplate(ctx, fieldName)
	if err != nil {
		return fmt.Errorf("resolve attribute template %q: %w", fieldName, err)
	}

	path, revision := store.SplitRevision(assetPath)
	body := struct {
		AccountKey string      `json:"account_key"`
		Paths      []batchPath `json:"paths"`
		Create     []struct {
			UUID  string `json:"uuid"`
			Value string `json:"value"`
		} `json:"create"`
	}{
		AccountKey: c.accountKey,
		Paths:      []batchPath{{Path: path, Identifier: revision}},
		Create: []struct {
			UUID  string `json:"uuid"`
			Value string `json:"value"`
		}{{UUID: tmpl.UUID, Value: value}},
	}

	if err := c.batchPut(ctx, "/api/p4/batch/custom_file_attributes", body); err != nil {
		return fmt.Errorf("set attribute %q on %s: %w", fieldName, path, err)
	}

	return nil
}

// AttachTags adds the given tags to the asset. No-op when there is nothing
// to add.
func (c *Client) AttachTags(ctx context.Context, assetPath string, tags []string) error {
	if len(tags) == 0 {
		return nil
	}

	if !c.configured() {
		return errs.ErrNotConfigured
	}

	path, revision := store.SplitRevision(assetPath)
	body := struct {
		AccountKey string      `json:"account_key"`
		Paths      []batchPath `json:"paths"`
		Create     []string    `json:"create"`
	}{
		AccountKey: c.accountKey,
		Paths:      []batchPath{{Path: path, Identifier: revision}},
		Create:     tags,
	}

	if err := c.batchPut(ctx, "/api/p4/batch/tags", body); err != nil {
		return fmt.Errorf("add tags to %s: %w", path, err)
	}

	return nil
}

func (c *Client) batchPut(ctx context.Context, path string, body interface{}) error {
	bts, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+path, bytes.NewReader(bts))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.cl.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return c.handleUnexpectedStatus(resp)
	}

	return nil
}
