package http

import (
	"fmt"
	"net/url"
)

// RequestFactory maps a verb name to a concrete request and validates
// its URL before construction.
type RequestFactory struct{}

// NewRequestFactory creates a request factory.
func NewRequestFactory() *RequestFactory {
	return &RequestFactory{}
}

// Build constructs a request for the given verb and absolute URL and
// attaches the given headers. It fails with ErrInvalidArgument for an
// unknown verb or a URL that is empty or not a well-formed absolute URL.
func (f *RequestFactory) Build(verb Verb, rawURL string, headers map[string]string) (*Request, error) {
	if !knownVerb(verb) {
		return nil, fmt.Errorf("%w: unknown verb %q", ErrInvalidArgument, verb)
	}
	if rawURL == "" {
		return nil, fmt.Errorf("%w: empty URL", ErrInvalidArgument)
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed URL %q: %v", ErrInvalidArgument, rawURL, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("%w: URL %q is not absolute", ErrInvalidArgument, rawURL)
	}

	req := newRequest(verb, rawURL)
	req.AddHeaders(headers)
	return req, nil
}

func knownVerb(verb Verb) bool {
	for _, v := range Verbs {
		if v == verb {
			return true
		}
	}
	return false
}
