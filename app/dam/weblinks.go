package dam

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cappuccinotm/damlink/app/errs"
	"github.com/cappuccinotm/damlink/app/link"
	"github.com/cappuccinotm/damlink/app/store"
)

// weblinkReq describes the request body of POST /api/weblinks.
type weblinkReq struct {
	AccountKey string         `json:"account_key"`
	DepotPath  string         `json:"depot_path"`
	URL        string         `json:"url"`
	Config     *weblinkConfig `json:"config,omitempty"`
	Webhook    string         `json:"webhook,omitempty"`
	Text       string         `json:"text,omitempty"`
}

// weblinkConfig carries the reference id in the field expected by the
// matched integration kind.
type weblinkConfig struct {
	IssueID string `json:"issue_id,omitempty"`
	ItemID  string `json:"item_id,omitempty"`
}

// AttachWeblink associates the weblink with the depot asset. The weblink
// endpoint operates on unversioned paths only, so a trailing @revision is
// stripped from the asset path. The webhook registry is fetched fresh on
// every call and the link is classified against it to shape the payload;
// a failed registry fetch downgrades the link to generic rather than
// aborting the attachment.
func (c *Client) AttachWeblink(ctx context.Context, assetPath, weblink string) error {
	switch {
	case weblink == "":
		return errs.ErrEmptyWeblink
	case !c.configured():
		return errs.ErrNotConfigured
	case assetPath == "":
		return errs.ErrEmptyAssetPath
	}

	depotPath, _ := store.SplitRevision(assetPath)

	registry, err := c.ListWebhooks(ctx)
	if err != nil {
		c.l.Printf("[WARN] failed to fetch webhook registry, attaching as generic link: %v", err)
	}

	wl := link.Classify(weblink, registry)

	body := weblinkReq{AccountKey: c.accountKey, DepotPath: depotPath, URL: weblink}
	switch wl.Kind {
	case store.KindPlanningItem:
		body.Config = &weblinkConfig{ItemID: wl.RefID}
		body.Webhook = wl.WebhookUUID
	case store.KindTrackerIssue:
		body.Config = &weblinkConfig{IssueID: wl.RefID}
		body.Webhook = wl.WebhookUUID
	default:
		body.Text = wl.Text
	}

	bts, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/weblinks", bytes.NewReader(bts))
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

	var confirmation map[string]interface{}
	if err = json.NewDecoder(resp.Body).Decode(&confirmation); err != nil {
		// some deployments respond with an empty body, the link is attached anyway
		c.l.Printf("[DEBUG] weblink %s attached to %s, no json confirmation returned", weblink, depotPath)
		return nil
	}

	c.l.Printf("[DEBUG] weblink %s attached to %s: %v", weblink, depotPath, confirmation)
	return nil
}
