package output

import "mime"

const (
	MediaTypeJSON = "application/json"
	MediaTypeHTML = "text/html"
)

// DetectContentType returns the media type of a Content-Type header value
// without its parameters. Empty or unparseable values yield "".
func DetectContentType(value string) string {
	if value == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(value)
	if err != nil {
		return ""
	}
	return mediaType
}

// GrammarFor maps a media type to the highlighter grammar used for it, or
// "" when the body should be printed raw.
func GrammarFor(mediaType string) string {
	switch mediaType {
	case MediaTypeJSON:
		return GrammarJSON
	case MediaTypeHTML:
		return GrammarHTML
	default:
		return ""
	}
}
