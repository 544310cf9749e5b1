package http

// Event names one of the three fixed points in request processing at
// which registered handlers run.
type Event string

const (
	// EventRequestBuilt fires after the handle's options are merged,
	// just before execution. The payload is the *Request.
	EventRequestBuilt Event = "request-built"

	// EventError fires when the transport reports a failure, before the
	// error is returned from Send. The payload is the error.
	EventError Event = "error"

	// EventResponseBuilt fires once the response has been parsed. The
	// payload is the *Response.
	EventResponseBuilt Event = "response-built"
)

// Handler is a lifecycle event callback. Handlers for one event run
// synchronously in registration order; a non-nil return escapes Send —
// no error is ever swallowed, including from an EventError handler.
type Handler func(payload interface{}) error

// dispatch runs the handlers registered for event in order, stopping at
// the first error.
func (c *Client) dispatch(event Event, payload interface{}) error {
	for _, handler := range c.listeners[event] {
		if err := handler(payload); err != nil {
			return err
		}
	}
	return nil
}
