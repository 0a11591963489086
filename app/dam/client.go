// Package dam implements a client to the digital asset management REST
// service: webhook registry lookups, weblink attachment and custom file
// attribute management.
package dam

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/cappuccinotm/damlink/app/errs"
	"github.com/cappuccinotm/damlink/pkg/httpx"
	"github.com/cappuccinotm/damlink/pkg/logx"
)

const defaultTimeout = 10 * time.Second

// Client makes requests to the DAM REST service. All methods are
// single-shot synchronous calls, nothing is cached between them.
type Client struct {
	baseURL    string
	accountKey string
	cl         *http.Client
	l          logx.Logger
}

// ClientParams describes parameters to initialize Client.
type ClientParams struct {
	BaseURL    string
	AccountKey string
	Client     *http.Client
	Timeout    time.Duration
	Logger     logx.Logger
}

// NewClient makes new instance of Client.
func NewClient(params ClientParams) *Client {
	svc := &Client{
		baseURL:    params.BaseURL,
		accountKey: params.AccountKey,
		l:          params.Logger,
	}

	if svc.l == nil {
		svc.l = logx.Nop()
	}

	if params.Timeout == 0 {
		params.Timeout = defaultTimeout
	}

	base := http.DefaultTransport
	if params.Client != nil && params.Client.Transport != nil {
		base = params.Client.Transport
	}

	// GET endpoints expect the account key as a query credential,
	// mutating endpoints carry it in the request body
	svc.cl = &http.Client{
		Transport: httpx.RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			if r.Method == http.MethodGet {
				q := r.URL.Query()
				q.Set("account_key", params.AccountKey)
				r.URL.RawQuery = q.Encode()
			}
			return base.RoundTrip(r)
		}),
		Timeout: params.Timeout,
	}

	return svc
}

// configured reports whether the client knows the server address and the
// account key. Methods of an unconfigured client degrade to a no-op with
// errs.ErrNotConfigured instead of attempting any network call.
func (c *Client) configured() bool { return c.baseURL != "" && c.accountKey != "" }

func (c *Client) handleUnexpectedStatus(resp *http.Response) error {
	rerr := errs.ErrDAMAPI{ResponseStatus: resp.StatusCode}

	if err := json.NewDecoder(resp.Body).Decode(&rerr); err != nil {
		c.l.Printf("[WARN] dam API responded with status %d, failed to decode response body: %v", resp.StatusCode, err)
		return rerr
	}

	return rerr
}
