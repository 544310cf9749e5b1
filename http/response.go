package http

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Response represents a parsed HTTP response bound to the request that
// produced it. It is populated by the response factory while the raw
// stream is parsed and should be treated as read-only afterwards.
type Response struct {
	Message

	status          int
	transactionTime float64
	request         *Request
}

// newResponse builds a Response from the raw transport bytes: it binds
// the originating request, parses the status line and headers, stores
// the leftover body bytes, and records the transaction time the handle
// reports for the just-completed execution.
func newResponse(raw []byte, handle *Handle, request *Request) (*Response, error) {
	resp := &Response{request: request}
	body, err := parseResponse(raw, resp)
	if err != nil {
		return nil, err
	}
	resp.SetBody(body)
	if err := resp.SetTransactionTime(handle.TransactionTime()); err != nil {
		return nil, err
	}
	return resp, nil
}

// SetStatus sets the numeric status code.
func (r *Response) SetStatus(code int) {
	r.status = code
}

// GetStatus returns the numeric status code.
func (r *Response) GetStatus() int {
	return r.status
}

// GetRequest returns the request this response answers.
func (r *Response) GetRequest() *Request {
	return r.request
}

// SetTransactionTime records the transaction duration in seconds. The
// value may be a float, an integer, or a numeric string; anything else,
// or a negative duration, is rejected.
func (r *Response) SetTransactionTime(value interface{}) error {
	var seconds float64
	switch v := value.(type) {
	case float64:
		seconds = v
	case float32:
		seconds = float64(v)
	case int:
		seconds = float64(v)
	case int64:
		seconds = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: transaction time %q is not numeric", ErrInvalidArgument, v)
		}
		seconds = parsed
	default:
		return fmt.Errorf("%w: transaction time %v is not numeric", ErrInvalidArgument, value)
	}
	if seconds < 0 {
		return fmt.Errorf("%w: transaction time %v is negative", ErrInvalidArgument, seconds)
	}
	r.transactionTime = seconds
	return nil
}

// GetTransactionTime returns the transaction duration in seconds.
func (r *Response) GetTransactionTime() float64 {
	return r.transactionTime
}

// GetBodyAsString returns the response body as a string.
func (r *Response) GetBodyAsString() string {
	return string(r.GetBody())
}

// GetBodyAsJSON unmarshals the response body into the provided value.
func (r *Response) GetBodyAsJSON(v interface{}) error {
	return json.Unmarshal(r.GetBody(), v)
}

// IsSuccess returns true if the status code is in the 2xx range.
func (r *Response) IsSuccess() bool {
	return r.status >= 200 && r.status < 300
}

// IsRedirect returns true if the status code is in the 3xx range.
func (r *Response) IsRedirect() bool {
	return r.status >= 300 && r.status < 400
}

// IsClientError returns true if the status code is in the 4xx range.
func (r *Response) IsClientError() bool {
	return r.status >= 400 && r.status < 500
}

// IsServerError returns true if the status code is in the 5xx range.
func (r *Response) IsServerError() bool {
	return r.status >= 500 && r.status < 600
}
