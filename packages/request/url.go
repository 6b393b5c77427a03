package request

import (
	"fmt"
	neturl "net/url"
)

// ValidateURL checks that raw is an absolute http(s) URL with a host and
// returns it unchanged.
func ValidateURL(raw string) (string, error) {
	u, err := neturl.Parse(raw)
	if err != nil {
		return "", &ParseError{Input: raw, Reason: "invalid URL", Err: err}
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return "", &ParseError{
			Input:  raw,
			Reason: fmt.Sprintf("unsupported URL scheme %q (only http and https are allowed)", u.Scheme),
		}
	}

	if u.Host == "" {
		return "", &ParseError{Input: raw, Reason: "URL must have a host"}
	}

	return raw, nil
}
