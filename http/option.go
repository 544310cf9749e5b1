package http

// Option identifies one transport option: a key/value instruction passed
// through to the native transport controlling one aspect of the call.
// The set mirrors the curl option vocabulary the transport understands.
type Option int

const (
	// OptURL is the absolute target URL for the call.
	OptURL Option = iota

	// OptHTTPGet marks the call as a body-less GET fetch.
	OptHTTPGet

	// OptNoBody suppresses the response body (HEAD).
	OptNoBody

	// OptPost marks the call as a POST.
	OptPost

	// OptPostFields carries the request body, or false when no body was
	// set.
	OptPostFields

	// OptCustomRequest overrides the request method (PUT, DELETE).
	OptCustomRequest

	// OptHTTPHeader carries the serialized "Name: Value" header lines as
	// a []string.
	OptHTTPHeader

	// OptUserAgent sets the User-Agent header for the call.
	OptUserAgent

	// OptTimeout is an opaque passthrough: a time.Duration bounding the
	// whole transport call.
	OptTimeout
)

var optionNames = map[Option]string{
	OptURL:           "URL",
	OptHTTPGet:       "HTTPGET",
	OptNoBody:        "NOBODY",
	OptPost:          "POST",
	OptPostFields:    "POSTFIELDS",
	OptCustomRequest: "CUSTOMREQUEST",
	OptHTTPHeader:    "HTTPHEADER",
	OptUserAgent:     "USERAGENT",
	OptTimeout:       "TIMEOUT",
}

func (o Option) String() string {
	if name, ok := optionNames[o]; ok {
		return name
	}
	return "UNKNOWN"
}

// Options is the accumulated option set handed to the native transport.
type Options map[Option]interface{}
