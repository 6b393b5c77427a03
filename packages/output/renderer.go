package output

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abdul-hamid-achik/hitpie/packages/http"
	"github.com/abdul-hamid-achik/hitpie/packages/logger"
	"github.com/fatih/color"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// Renderer prints a completed response.
type Renderer interface {
	Render(resp *http.Response) error
}

type ConsoleRenderer struct {
	writer    io.Writer
	noColor   bool
	pretty    bool
	highlight bool
	theme     string
	log       *logger.Logger

	statusColor *color.Color
	headerColor *color.Color
}

type ConsoleOption func(*ConsoleRenderer)

func NewConsoleRenderer(opts ...ConsoleOption) *ConsoleRenderer {
	r := &ConsoleRenderer{
		writer:    os.Stdout,
		pretty:    true,
		highlight: true,
		theme:     DefaultTheme,
		log:       logger.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.statusColor = color.New(color.FgBlue)
	r.headerColor = color.New(color.FgGreen)
	if r.noColor {
		r.statusColor.DisableColor()
		r.headerColor.DisableColor()
	} else {
		r.statusColor.EnableColor()
		r.headerColor.EnableColor()
	}
	return r
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(r *ConsoleRenderer) {
		r.writer = w
	}
}

// WithNoColor disables colors. Highlighting is color, so it is disabled too.
func WithNoColor(nc bool) ConsoleOption {
	return func(r *ConsoleRenderer) {
		r.noColor = nc
	}
}

// WithPretty re-indents valid JSON bodies before printing.
func WithPretty(p bool) ConsoleOption {
	return func(r *ConsoleRenderer) {
		r.pretty = p
	}
}

func WithHighlight(h bool) ConsoleOption {
	return func(r *ConsoleRenderer) {
		r.highlight = h
	}
}

func WithTheme(theme string) ConsoleOption {
	return func(r *ConsoleRenderer) {
		r.theme = theme
	}
}

func WithLogger(l *logger.Logger) ConsoleOption {
	return func(r *ConsoleRenderer) {
		r.log = l
	}
}

func (r *ConsoleRenderer) Render(resp *http.Response) error {
	if err := r.renderStatus(resp); err != nil {
		return &RenderError{Stage: "status", Err: err}
	}
	if err := r.renderHeaders(resp); err != nil {
		return &RenderError{Stage: "headers", Err: err}
	}
	if err := r.renderBody(resp); err != nil {
		return &RenderError{Stage: "body", Err: err}
	}
	return nil
}

func (r *ConsoleRenderer) renderStatus(resp *http.Response) error {
	_, err := fmt.Fprintf(r.writer, "%s\n\n", r.statusColor.Sprintf("%s %s", resp.Proto, resp.Status))
	return err
}

func (r *ConsoleRenderer) renderHeaders(resp *http.Response) error {
	for _, h := range resp.Headers {
		if _, err := fmt.Fprintf(r.writer, "%s: %s\n", r.headerColor.Sprint(h.Name), h.Value); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(r.writer)
	return err
}

func (r *ConsoleRenderer) renderBody(resp *http.Response) error {
	grammar := GrammarFor(DetectContentType(resp.ContentType()))
	body := resp.BodyString()

	if grammar == GrammarJSON && r.pretty && gjson.Valid(body) {
		body = string(pretty.Pretty([]byte(body)))
	}

	if grammar != "" && r.highlight && !r.noColor {
		var buf bytes.Buffer
		err := Highlight(&buf, body, grammar, r.theme)
		if err == nil {
			return r.writeBody(buf.String())
		}
		r.log.Warn().Err(err).Str("grammar", grammar).Msg("highlighting failed, printing plain body")
	}

	return r.writeBody(body)
}

func (r *ConsoleRenderer) writeBody(body string) error {
	if _, err := io.WriteString(r.writer, body); err != nil {
		return err
	}
	if body != "" && !strings.HasSuffix(body, "\n") {
		_, err := io.WriteString(r.writer, "\n")
		return err
	}
	return nil
}
