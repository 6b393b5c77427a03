package output

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

const (
	GrammarJSON = "json"
	GrammarHTML = "html"

	// DefaultTheme is the bundled chroma style used for bodies.
	DefaultTheme = "base16-snazzy"
)

// Highlight writes text to w with 24-bit terminal colors, using the grammar
// registered for the given extension and the named theme.
func Highlight(w io.Writer, text, grammar, theme string) error {
	lexer := lexers.Get(grammar)
	if lexer == nil {
		return &RenderError{Stage: "highlight", Err: fmt.Errorf("no syntax definition for %q", grammar)}
	}

	style, ok := styles.Registry[theme]
	if !ok {
		return &RenderError{Stage: "highlight", Err: fmt.Errorf("unknown theme %q", theme)}
	}

	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, text)
	if err != nil {
		return &RenderError{Stage: "highlight", Err: err}
	}

	if err := formatters.TTY16m.Format(w, style, iterator); err != nil {
		return &RenderError{Stage: "highlight", Err: err}
	}
	return nil
}
