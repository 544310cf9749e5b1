package http

// Verb is the HTTP method identity of a request, fixed at construction.
// The set is closed: request preparation dispatches on it.
type Verb string

const (
	MethodGet    Verb = "GET"
	MethodPost   Verb = "POST"
	MethodHead   Verb = "HEAD"
	MethodPut    Verb = "PUT"
	MethodDelete Verb = "DELETE"
)

// Verbs lists every verb the request factory recognizes.
var Verbs = []Verb{MethodGet, MethodPost, MethodHead, MethodPut, MethodDelete}

// Request represents an HTTP request bound to the Client that created
// it. The verb and URL are fixed at construction; headers, body, and
// transport options may be added until Send is called.
type Request struct {
	Message

	verb    Verb
	url     string
	options Options
	client  *Client
}

func newRequest(verb Verb, url string) *Request {
	return &Request{
		verb:    verb,
		url:     url,
		options: make(Options),
	}
}

// Verb returns the request's HTTP method identity.
func (r *Request) Verb() Verb {
	return r.verb
}

// URL returns the absolute URL the request was built with.
func (r *Request) URL() string {
	return r.url
}

// AddOption merges a single transport option into the request.
func (r *Request) AddOption(opt Option, value interface{}) *Request {
	r.options[opt] = value
	return r
}

// AddOptions merges the given transport options into the request.
func (r *Request) AddOptions(options Options) *Request {
	for opt, value := range options {
		r.options[opt] = value
	}
	return r
}

// Options returns the transport options accumulated on the request.
func (r *Request) Options() Options {
	return r.options
}

// prepare contributes the verb-specific transport options. It runs
// lazily at Send time so a body set after construction is visible.
func (r *Request) prepare() {
	switch r.verb {
	case MethodGet:
		r.options[OptHTTPGet] = true
	case MethodHead:
		r.options[OptNoBody] = true
	case MethodPost:
		r.options[OptPost] = true
		r.options[OptPostFields] = r.postFields()
	case MethodPut:
		r.options[OptCustomRequest] = string(MethodPut)
		r.options[OptPostFields] = r.postFields()
	case MethodDelete:
		r.options[OptCustomRequest] = string(MethodDelete)
		r.options[OptPostFields] = r.postFields()
	}
}

// postFields returns the body as a string, or false when none was set.
func (r *Request) postFields() interface{} {
	if r.GetBody() == nil {
		return false
	}
	return string(r.GetBody())
}

// Send prepares the request and dispatches it through the bound Client.
// It fails with ErrNoClient when the request was built without one.
func (r *Request) Send() (*Response, error) {
	if r.client == nil {
		return nil, ErrNoClient
	}
	r.prepare()
	return r.client.Send(r)
}
