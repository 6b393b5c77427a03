package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/abdul-hamid-achik/hitpie/packages/logger"
	"github.com/abdul-hamid-achik/hitpie/packages/request"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const (
	// PoweredByHeader identifies hitpie to the server.
	PoweredByHeader = "X-Powered-By"
	// PoweredByValue is sent in PoweredByHeader.
	PoweredByValue = "Go"
)

// Config is everything a Client needs at construction time.
type Config struct {
	// DefaultHeaders are sent with every request.
	DefaultHeaders map[string]string
	// Logger receives request diagnostics. Nil means discard.
	Logger *logger.Logger
}

// DefaultHeaders returns the identification headers hitpie sends.
func DefaultHeaders(version string) map[string]string {
	return map[string]string{
		PoweredByHeader: PoweredByValue,
		"User-Agent":    "hitpie/" + version,
	}
}

type Client struct {
	rc  *resty.Client
	log *logger.Logger
}

func NewClient(cfg Config) *Client {
	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}

	rc := resty.New().
		SetLogger(log).
		SetHeaders(cfg.DefaultHeaders)

	rc.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		logger.FromContext(r.Context()).Debug().
			Str("method", r.Method).
			Str("url", r.URL).
			Msg("sending request")
		return nil
	})

	return &Client{rc: rc, log: log}
}

// Get issues a GET to url.
func (c *Client) Get(ctx context.Context, url string) (*Response, error) {
	return c.do(ctx, http.MethodGet, url, nil)
}

// Post sends pairs to url as a JSON object.
func (c *Client) Post(ctx context.Context, url string, pairs []request.KVPair) (*Response, error) {
	return c.do(ctx, http.MethodPost, url, request.BodyFromPairs(pairs))
}

// Do issues the request described by spec.
func (c *Client) Do(ctx context.Context, spec *request.Spec) (*Response, error) {
	switch spec.Method {
	case http.MethodGet:
		return c.Get(ctx, spec.URL)
	case http.MethodPost:
		return c.Post(ctx, spec.URL, spec.Pairs)
	default:
		return nil, fmt.Errorf("unsupported method %q", spec.Method)
	}
}

func (c *Client) do(ctx context.Context, method, url string, body map[string]string) (*Response, error) {
	reqLog := &logger.Logger{Logger: c.log.With().Str("request_id", uuid.NewString()).Logger()}

	req := c.rc.R().SetContext(reqLog.WithContext(ctx))
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, url)
	if err != nil {
		reqLog.Debug().Err(err).Msg("request failed")
		return nil, &TransportError{Method: method, URL: url, Err: err}
	}

	r := newResponse(resp.RawResponse, resp.Body(), resp.Time())
	reqLog.Debug().
		Int("status", r.StatusCode).
		Int("bytes", len(r.Body)).
		Int64("duration_ms", r.DurationMs()).
		Msg("response received")

	return r, nil
}
