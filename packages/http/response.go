package http

import (
	"net/http"
	"sort"
	"strings"
	"time"
)

// Header is a single response header line.
type Header struct {
	Name  string
	Value string
}

type Response struct {
	Proto      string
	StatusCode int
	Status     string
	Headers    []Header
	Body       []byte
	Duration   time.Duration
}

// newResponse copies what the renderer needs out of a completed response.
// net/http keeps headers in a map, so names are sorted to give a stable
// order; repeated values of one header keep the order they arrived in.
func newResponse(raw *http.Response, body []byte, duration time.Duration) *Response {
	names := make([]string, 0, len(raw.Header))
	for name := range raw.Header {
		names = append(names, name)
	}
	sort.Strings(names)

	var headers []Header
	for _, name := range names {
		for _, v := range raw.Header[name] {
			headers = append(headers, Header{Name: name, Value: v})
		}
	}

	return &Response{
		Proto:      raw.Proto,
		StatusCode: raw.StatusCode,
		Status:     raw.Status,
		Headers:    headers,
		Body:       body,
		Duration:   duration,
	}
}

func (r *Response) BodyString() string {
	return string(r.Body)
}

// Header returns the first value for key, matched case-insensitively.
func (r *Response) Header(key string) string {
	for _, h := range r.Headers {
		if strings.EqualFold(h.Name, key) {
			return h.Value
		}
	}
	return ""
}

func (r *Response) ContentType() string {
	return r.Header("Content-Type")
}

func (r *Response) DurationMs() int64 {
	return r.Duration.Milliseconds()
}
