package request

import "net/http"

// Spec describes the single request issued by one invocation.
type Spec struct {
	Method string
	URL    string
	Pairs  []KVPair
}

// Body returns the JSON object sent with a POST, or nil for a GET.
func (s *Spec) Body() map[string]string {
	if s.Method != http.MethodPost {
		return nil
	}
	return BodyFromPairs(s.Pairs)
}

// ParseGet builds a GET spec from the `get` subcommand arguments.
func ParseGet(rawURL string) (*Spec, error) {
	u, err := ValidateURL(rawURL)
	if err != nil {
		return nil, err
	}
	return &Spec{Method: http.MethodGet, URL: u}, nil
}

// ParsePost builds a POST spec from the `post` subcommand arguments.
func ParsePost(rawURL string, tokens []string) (*Spec, error) {
	u, err := ValidateURL(rawURL)
	if err != nil {
		return nil, err
	}
	pairs, err := ParseKVPairs(tokens)
	if err != nil {
		return nil, err
	}
	return &Spec{Method: http.MethodPost, URL: u, Pairs: pairs}, nil
}
