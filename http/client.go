package http

import (
	"fmt"
)

// Version is the library version reported in the User-Agent header.
const Version = "0.1.0"

// Client builds, tags, and sends requests. It holds an optional base
// URL, a per-verb transport handle cache, and the lifecycle event
// registry. The handle cache grows as new verbs are used and never
// shrinks; because option accumulation and execution on a cached handle
// are not atomic, a Client is not safe for concurrent use by multiple
// goroutines without external synchronization.
type Client struct {
	baseURL      string
	factory      *RequestFactory
	handles      map[Verb]*Handle
	listeners    map[Event][]Handler
	newTransport func() Transport
}

// ClientOption is a function that configures a Client.
type ClientOption func(*Client)

// NewClient creates a new client with the given options.
func NewClient(options ...ClientOption) *Client {
	client := &Client{
		factory: NewRequestFactory(),
		handles: make(map[Verb]*Handle),
		listeners: map[Event][]Handler{
			EventRequestBuilt:  {},
			EventError:         {},
			EventResponseBuilt: {},
		},
		newTransport: func() Transport { return NewNetTransport() },
	}

	for _, option := range options {
		option(client)
	}

	return client
}

// WithBaseURL sets the base URL every request path is resolved against.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTransportFactory sets the constructor used for each verb's native
// transport session. The default builds a NetTransport.
func WithTransportFactory(factory func() Transport) ClientOption {
	return func(c *Client) {
		c.newTransport = factory
	}
}

// Get builds a GET request for the given path.
func (c *Client) Get(url string, headers ...map[string]string) (*Request, error) {
	return c.createRequest(MethodGet, url, first(headers))
}

// Post builds a POST request for the given path.
func (c *Client) Post(url string, headers ...map[string]string) (*Request, error) {
	return c.createRequest(MethodPost, url, first(headers))
}

// Head builds a HEAD request for the given path.
func (c *Client) Head(url string, headers ...map[string]string) (*Request, error) {
	return c.createRequest(MethodHead, url, first(headers))
}

// Put builds a PUT request for the given path.
func (c *Client) Put(url string, headers ...map[string]string) (*Request, error) {
	return c.createRequest(MethodPut, url, first(headers))
}

// Delete builds a DELETE request for the given path.
func (c *Client) Delete(url string, headers ...map[string]string) (*Request, error) {
	return c.createRequest(MethodDelete, url, first(headers))
}

// createRequest resolves the effective URL (base URL + path), has the
// factory validate and build the request, and binds it to this client.
func (c *Client) createRequest(verb Verb, url string, headers map[string]string) (*Request, error) {
	effective := c.baseURL + url
	if effective == "" {
		return nil, fmt.Errorf("%w: empty URL", ErrInvalidArgument)
	}
	req, err := c.factory.Build(verb, effective, headers)
	if err != nil {
		return nil, err
	}
	req.client = c
	return req, nil
}

// Send executes a prepared request through the cached handle for its
// verb: it merges the request's options, URL, header lines, and this
// client's user agent into the handle, fires request-built, executes,
// and either fires error and returns the transport error, or builds the
// response, fires response-built, and returns it.
func (c *Client) Send(req *Request) (*Response, error) {
	handle := c.handle(req.Verb())
	handle.AddOptions(req.Options())
	handle.AddOption(OptURL, req.URL())
	handle.AddOption(OptHTTPHeader, req.headerLines())
	handle.AddOption(OptUserAgent, c.GetUserAgent())

	if err := c.dispatch(EventRequestBuilt, req); err != nil {
		return nil, err
	}

	raw, err := handle.Execute()
	if err != nil {
		if derr := c.dispatch(EventError, err); derr != nil {
			return nil, derr
		}
		return nil, err
	}

	resp, err := newResponse(raw, handle, req)
	if err != nil {
		return nil, err
	}
	if err := c.dispatch(EventResponseBuilt, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// handle returns the cached transport handle for a verb, creating one on
// first use. Options accumulate on the handle across sends of the same
// verb.
func (c *Client) handle(verb Verb) *Handle {
	h, ok := c.handles[verb]
	if !ok {
		h = newHandle(c.newTransport())
		c.handles[verb] = h
	}
	return h
}

// GetUserAgent returns the fixed user-agent string identifying this
// client.
func (c *Client) GetUserAgent() string {
	return "riposte/" + Version
}

// Register appends a handler to the given lifecycle event. It fails
// with ErrInvalidArgument for an unrecognized event name.
func (c *Client) Register(event Event, handler Handler) error {
	if _, ok := c.listeners[event]; !ok {
		return fmt.Errorf("%w: unknown event %q", ErrInvalidArgument, event)
	}
	c.listeners[event] = append(c.listeners[event], handler)
	return nil
}

func first(headers []map[string]string) map[string]string {
	if len(headers) == 0 {
		return nil
	}
	return headers[0]
}
