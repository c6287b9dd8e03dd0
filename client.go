package browserkit

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/tailbits/browserkit/jsonmerge"
	"github.com/tailbits/browserkit/model"
	"github.com/tailbits/browserkit/rawjson"
)

const (
	DefaultBaseURL = "https://api.browserbase.com"

	EnvAPIKey  = "BROWSERKIT_API_KEY"
	EnvBaseURL = "BROWSERKIT_BASE_URL"

	apiKeyHeader = "X-BB-API-Key"
)

// Client talks to the browser automation API. It is safe for concurrent
// use once built.
type Client struct {
	baseURL     string
	apiKey      string
	transport   Transport
	middlewares []Middleware
	strict      bool
	header      http.Header
	registry    *Registry

	Sessions   *SessionService
	Contexts   *ContextService
	Extensions *ExtensionService
	Projects   *ProjectService
}

type ClientOption func(*Client)

func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

func WithAPIKey(key string) ClientOption {
	return func(c *Client) {
		c.apiKey = key
	}
}

func WithTransport(t Transport) ClientOption {
	return func(c *Client) {
		c.transport = t
	}
}

func WithMiddleware(mws ...Middleware) ClientOption {
	return func(c *Client) {
		c.middlewares = append(c.middlewares, mws...)
	}
}

// WithStrict makes every call validate its params and response eagerly:
// Validate on the model and a JSON Schema check of the body.
func WithStrict(strict bool) ClientOption {
	return func(c *Client) {
		c.strict = strict
	}
}

func WithHeader(key, value string) ClientOption {
	return func(c *Client) {
		c.header.Add(key, value)
	}
}

// NewClient builds a client. The API key and base URL default to the
// BROWSERKIT_API_KEY and BROWSERKIT_BASE_URL environment variables.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		apiKey:    os.Getenv(EnvAPIKey),
		transport: &http.Client{Timeout: 60 * time.Second},
		header:    make(http.Header),
		registry:  NewRegistry(),
	}
	if u := os.Getenv(EnvBaseURL); u != "" {
		c.baseURL = strings.TrimRight(u, "/")
	}

	for _, opt := range opts {
		opt(c)
	}
	c.transport = chain(c.transport, c.middlewares)

	c.Sessions = &SessionService{c: c}
	c.Contexts = &ContextService{c: c}
	c.Extensions = &ExtensionService{c: c}
	c.Projects = &ProjectService{c: c}

	return c
}

func (c *Client) Registry() *Registry {
	return c.registry
}

type requestConfig struct {
	extraBody *rawjson.Object
	header    http.Header
	strict    bool
}

// RequestOption adjusts a single call.
type RequestOption func(*requestConfig)

// WithExtraBody merges extra into the request body. Nested objects are
// merged and extra wins on conflicts.
func WithExtraBody(extra *rawjson.Object) RequestOption {
	return func(rc *requestConfig) {
		rc.extraBody = extra
	}
}

func WithRequestHeader(key, value string) RequestOption {
	return func(rc *requestConfig) {
		rc.header.Add(key, value)
	}
}

// WithStrictResponse overrides the client's strict setting for one call.
func WithStrictResponse(strict bool) RequestOption {
	return func(rc *requestConfig) {
		rc.strict = strict
	}
}

var bodyMerger = jsonmerge.NewWithOptions(jsonmerge.Options{
	Strategy: jsonmerge.OverwriteDuplicates,
	Deep:     true,
})

// call is a resolved operation ready to be sent.
type call struct {
	op    Operation
	args  []string
	body  model.Model
	query url.Values
	// params is the model query was encoded from.
	params model.Entity
	config requestConfig
}

func (c *Client) newCall(opID string, opts []RequestOption) (*call, error) {
	op, ok := c.registry.Op(opID)
	if !ok {
		return nil, fmt.Errorf("browserkit: unknown operation %s", opID)
	}
	cl := &call{
		op:     op,
		config: requestConfig{header: make(http.Header), strict: c.strict},
	}
	for _, opt := range opts {
		opt(&cl.config)
	}
	return cl, nil
}

// do sends the call and returns the response body of a 2xx response.
func (c *Client) do(ctx context.Context, cl *call) ([]byte, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	if cl.config.strict && cl.params != nil {
		if err := cl.params.Validate(); err != nil {
			return nil, fmt.Errorf("validate %s: %w", cl.params.Name(), err)
		}
	}

	path, err := expandPath(cl.op.Path, cl.args)
	if err != nil {
		return nil, err
	}
	u := c.baseURL + path
	if len(cl.query) > 0 {
		u += "?" + cl.query.Encode()
	}

	var body io.Reader
	if cl.op.HasBody() {
		if cl.config.strict {
			if err := cl.body.Validate(); err != nil {
				return nil, fmt.Errorf("validate %s: %w", cl.op.Input.Name(), err)
			}
		}
		data, err := c.encodeBody(cl)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, cl.op.Method, u, body)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	for k, vs := range c.header {
		req.Header[k] = append([]string(nil), vs...)
	}
	for k, vs := range cl.config.header {
		req.Header[k] = append(req.Header[k], vs...)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.transport.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", cl.op.Method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("unable to read the body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(req, resp.StatusCode, data)
	}
	return data, nil
}

func (c *Client) encodeBody(cl *call) ([]byte, error) {
	raw := cl.body.Raw()
	if cl.config.extraBody != nil {
		merged, err := bodyMerger.Merge(raw, cl.config.extraBody)
		if err != nil {
			return nil, fmt.Errorf("merge extra body: %w", err)
		}
		raw = merged
	}
	return raw.MarshalJSON()
}

// expandPath fills the {param} segments of path in order.
func expandPath(path string, args []string) (string, error) {
	segs := strings.Split(path, "/")
	i := 0
	for n, seg := range segs {
		if !strings.HasPrefix(seg, "{") || !strings.HasSuffix(seg, "}") {
			continue
		}
		if i >= len(args) {
			return "", fmt.Errorf("browserkit: %s: missing path parameter %s", path, seg)
		}
		if args[i] == "" {
			return "", fmt.Errorf("browserkit: %s: empty path parameter %s", path, seg)
		}
		segs[n] = url.PathEscape(args[i])
		i++
	}
	return strings.Join(segs, "/"), nil
}
