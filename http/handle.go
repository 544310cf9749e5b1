package http

// Handle wraps one native transport session. The Client keeps one Handle
// per verb tag, so the option set is cumulative across sends of the same
// verb: options from a prior send persist unless overwritten. That reuse
// is a documented behavior contract, not an accident — see the package
// doc for the concurrency implications.
type Handle struct {
	transport Transport
	options   Options
}

func newHandle(transport Transport) *Handle {
	return &Handle{
		transport: transport,
		options:   make(Options),
	}
}

// AddOption merges a single option into the cumulative set. Last write
// wins.
func (h *Handle) AddOption(opt Option, value interface{}) {
	h.options[opt] = value
}

// AddOptions merges the given options into the cumulative set.
func (h *Handle) AddOptions(options Options) {
	for opt, value := range options {
		h.options[opt] = value
	}
}

// Options returns the cumulative option set.
func (h *Handle) Options() Options {
	return h.options
}

// Execute invokes the native transport with the accumulated options and
// returns the raw response bytes. A native failure, or a result with no
// usable bytes, becomes a *TransportError carrying the native code and
// message. This is the single point where native failures are
// translated into the library's typed error.
func (h *Handle) Execute() ([]byte, error) {
	raw, code, message := h.transport.Execute(h.options)
	if code != 0 {
		return nil, &TransportError{Code: code, Message: message}
	}
	if len(raw) == 0 {
		return nil, &TransportError{Code: transportCodeEmptyReply, Message: "empty reply from server"}
	}
	return raw, nil
}

// TransactionTime returns the elapsed seconds the transport reports for
// the just-completed execution.
func (h *Handle) TransactionTime() float64 {
	return h.transport.TransactionTime()
}
