package output

import (
	"bytes"
	"errors"
	"testing"

	"github.com/abdul-hamid-achik/hitpie/packages/http"
	"github.com/abdul-hamid-achik/hitpie/packages/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResponse(contentType, body string) *http.Response {
	resp := &http.Response{
		Proto:      "HTTP/1.1",
		StatusCode: 200,
		Status:     "200 OK",
		Body:       []byte(body),
	}
	if contentType != "" {
		resp.Headers = []http.Header{{Name: "Content-Type", Value: contentType}}
	}
	return resp
}

func TestConsoleRenderer_PlainLayout(t *testing.T) {
	var buf bytes.Buffer
	r := NewConsoleRenderer(WithWriter(&buf), WithNoColor(true))

	resp := &http.Response{
		Proto:   "HTTP/1.1",
		Status:  "200 OK",
		Headers: []http.Header{{Name: "X", Value: "1"}},
		Body:    []byte("hello"),
	}
	require.NoError(t, r.Render(resp))

	assert.Equal(t, "HTTP/1.1 200 OK\n\nX: 1\n\nhello\n", buf.String())
}

func TestConsoleRenderer_OneLinePerHeader(t *testing.T) {
	var buf bytes.Buffer
	r := NewConsoleRenderer(WithWriter(&buf), WithNoColor(true))

	resp := &http.Response{
		Proto:  "HTTP/2.0",
		Status: "404 Not Found",
		Headers: []http.Header{
			{Name: "Content-Length", Value: "0"},
			{Name: "Set-Cookie", Value: "a=1"},
			{Name: "Set-Cookie", Value: "b=2"},
		},
	}
	require.NoError(t, r.Render(resp))

	assert.Equal(t, "HTTP/2.0 404 Not Found\n\nContent-Length: 0\nSet-Cookie: a=1\nSet-Cookie: b=2\n\n", buf.String())
}

func TestConsoleRenderer_ColorsStatusAndHeaders(t *testing.T) {
	var buf bytes.Buffer
	r := NewConsoleRenderer(WithWriter(&buf), WithHighlight(false))

	require.NoError(t, r.Render(&http.Response{
		Proto:   "HTTP/1.1",
		Status:  "200 OK",
		Headers: []http.Header{{Name: "X", Value: "1"}},
	}))

	assert.Contains(t, buf.String(), "\x1b[34mHTTP/1.1 200 OK\x1b[0m")
	assert.Contains(t, buf.String(), "\x1b[32mX\x1b[0m: 1")
}

func TestConsoleRenderer_BodySelection(t *testing.T) {
	tests := []struct {
		name            string
		contentType     string
		body            string
		wantHighlighted bool
	}{
		{name: "json is highlighted", contentType: "application/json", body: `{"a":1}`, wantHighlighted: true},
		{name: "html is highlighted", contentType: "text/html; charset=utf-8", body: "<b>x</b>", wantHighlighted: true},
		{name: "plain text is raw", contentType: "text/plain", body: "just text", wantHighlighted: false},
		{name: "missing content type is raw", contentType: "", body: "no type", wantHighlighted: false},
		{name: "bad content type is raw", contentType: ";;", body: "bad type", wantHighlighted: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := NewConsoleRenderer(WithWriter(&buf), WithPretty(false))

			require.NoError(t, r.renderBody(newTestResponse(tt.contentType, tt.body)))

			if tt.wantHighlighted {
				assert.Contains(t, buf.String(), "\x1b[38;2;")
			} else {
				assert.Equal(t, tt.body+"\n", buf.String())
			}
		})
	}
}

func TestConsoleRenderer_PrettyJSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewConsoleRenderer(WithWriter(&buf), WithNoColor(true))

	require.NoError(t, r.renderBody(newTestResponse("application/json", `{"a":1,"b":[1,2]}`)))

	assert.Equal(t, "{\n  \"a\": 1,\n  \"b\": [1, 2]\n}\n", buf.String())
}

func TestConsoleRenderer_InvalidJSONLeftAlone(t *testing.T) {
	var buf bytes.Buffer
	r := NewConsoleRenderer(WithWriter(&buf), WithNoColor(true))

	require.NoError(t, r.renderBody(newTestResponse("application/json", `{"a":`)))

	assert.Equal(t, "{\"a\":\n", buf.String())
}

func TestConsoleRenderer_HighlightFailureFallsBack(t *testing.T) {
	var out, logs bytes.Buffer
	r := NewConsoleRenderer(
		WithWriter(&out),
		WithTheme("no-such-theme"),
		WithPretty(false),
		WithLogger(logger.New(&logs, false, true)),
	)

	require.NoError(t, r.renderBody(newTestResponse("application/json", `{"a":1}`)))

	assert.Equal(t, "{\"a\":1}\n", out.String())
	assert.Contains(t, logs.String(), "highlighting failed")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed pipe")
}

func TestConsoleRenderer_WriteFailure(t *testing.T) {
	r := NewConsoleRenderer(WithWriter(failingWriter{}), WithNoColor(true))

	err := r.Render(newTestResponse("", "x"))

	var re *RenderError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "status", re.Stage)
}

func TestConsoleRenderer_ImplementsRenderer(t *testing.T) {
	var _ Renderer = NewConsoleRenderer()
}
