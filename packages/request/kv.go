package request

import "strings"

// KVPair is a key=value token from the command line.
type KVPair struct {
	Key   string
	Value string
}

// ParseKVPair splits token at the first '='. The value keeps any further
// '=' characters, so "q=a=b" yields key "q" and value "a=b". Either side
// may be empty; only a token without '=' is rejected.
func ParseKVPair(token string) (KVPair, error) {
	key, value, found := strings.Cut(token, "=")
	if !found {
		return KVPair{}, &ParseError{Input: token, Reason: "expected key=value"}
	}
	return KVPair{Key: key, Value: value}, nil
}

// ParseKVPairs parses every token, stopping at the first malformed one.
func ParseKVPairs(tokens []string) ([]KVPair, error) {
	pairs := make([]KVPair, 0, len(tokens))
	for _, token := range tokens {
		pair, err := ParseKVPair(token)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, pair)
	}
	return pairs, nil
}

// BodyFromPairs collapses pairs into a JSON object body. Later keys
// overwrite earlier ones.
func BodyFromPairs(pairs []KVPair) map[string]string {
	body := make(map[string]string, len(pairs))
	for _, p := range pairs {
		body[p.Key] = p.Value
	}
	return body
}
