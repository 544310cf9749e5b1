package http

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for malformed verbs, URLs, event
	// names, and other bad inputs detected at the call site.
	ErrInvalidArgument = errors.New("riposte: invalid argument")

	// ErrNoClient is returned by Request.Send when the request was never
	// bound to a Client.
	ErrNoClient = errors.New("riposte: request is not bound to a client")

	// ErrProtocol is returned when the raw response stream cannot be
	// parsed into a status line and header block.
	ErrProtocol = errors.New("riposte: malformed response")
)

// TransportError is the typed error raised when the native transport
// reports a failure. Code and Message carry the native error verbatim.
type TransportError struct {
	Code    int
	Message string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("riposte: transport error %d: %s", e.Code, e.Message)
}
