package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is the address of a locally running backend.
const DefaultBaseURL = "http://127.0.0.1:5001"

// Options configures a RestyClient at construction time.
type Options struct {
	BaseURL string
	// Timeout of zero leaves requests unbounded.
	Timeout time.Duration
	Debug   bool
	Logger  resty.Logger
}

// RestyClient adapts resty.Client to the httpclient.Client interface.
type RestyClient struct {
	client  *resty.Client
	baseURL string
}

// NewRestyClient creates a RestyClient bound to opts.BaseURL.
func NewRestyClient(opts Options) *RestyClient {
	base := strings.TrimSpace(opts.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	return &RestyClient{client: newRestyBaseClient(opts), baseURL: base}
}

// newRestyBaseClient creates a new resty.Client from the given options.
func newRestyBaseClient(opts Options) *resty.Client {
	c := resty.New()
	if opts.Timeout > 0 {
		c.SetTimeout(opts.Timeout)
	}
	if opts.Logger != nil {
		c.SetLogger(opts.Logger)
	}
	c.SetDebug(opts.Debug)
	return c
}

// BaseURL returns the address every request path is appended to.
func (r *RestyClient) BaseURL() string { return r.baseURL }

// Get performs an HTTP GET for path and returns the parsed JSON body.
func (r *RestyClient) Get(ctx context.Context, path string) (any, error) {
	return r.do(ctx, http.MethodGet, path, nil)
}

// Post serializes payload as JSON, sends it to path and returns the parsed JSON body.
func (r *RestyClient) Post(ctx context.Context, path string, payload any) (any, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	return r.do(ctx, http.MethodPost, path, body)
}

func (r *RestyClient) do(ctx context.Context, method, path string, body []byte) (any, error) {
	req := r.client.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, r.baseURL+path)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}

	text := string(resp.Body())
	if !resp.IsSuccess() {
		return nil, &RequestError{StatusCode: resp.StatusCode(), Body: text}
	}
	return decodeBody(text)
}

// decodeBody parses text as JSON. An empty body decodes to an empty mapping.
func decodeBody(text string) (any, error) {
	if text == "" {
		return map[string]any{}, nil
	}
	var out any
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, err
	}
	return out, nil
}
