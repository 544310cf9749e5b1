package http

import (
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"strings"
	"time"
)

// Transport is the native transport collaborator: it accepts the
// accumulated option map, executes one synchronous call, and returns the
// unparsed response byte stream. A non-zero code signals failure, with
// the message describing it. TransactionTime reports the elapsed seconds
// of the just-completed call.
type Transport interface {
	Execute(options Options) (raw []byte, code int, message string)
	TransactionTime() float64
}

// Native error codes, in the curl numbering the option vocabulary
// follows.
const (
	transportCodeUnsupported = 1  // unsupported URL scheme
	transportCodeBadURL      = 3  // URL malformed
	transportCodeResolve     = 6  // could not resolve host
	transportCodeConnect     = 7  // could not connect
	transportCodeTimeout     = 28 // operation timed out
	transportCodeEmptyReply  = 52 // no usable result
	transportCodeSend        = 55 // failed sending data
	transportCodeRecv        = 56 // failed receiving data
)

const defaultTimeout = 30 * time.Second

// NetTransport is the default Transport: it speaks HTTP/1.1 over a raw
// TCP (or TLS) connection and returns the response bytes exactly as read
// off the wire, status line and header block included, so the response
// parser sees any informational blocks the server sent. Each call uses
// one connection and asks the server to close it.
type NetTransport struct {
	elapsed time.Duration
}

// NewNetTransport creates the default native transport.
func NewNetTransport() *NetTransport {
	return &NetTransport{}
}

// TransactionTime returns the elapsed seconds of the last Execute call.
func (t *NetTransport) TransactionTime() float64 {
	return t.elapsed.Seconds()
}

// Execute performs one HTTP exchange described by the option map.
func (t *NetTransport) Execute(options Options) ([]byte, int, string) {
	start := time.Now()
	raw, code, message := t.roundTrip(options)
	t.elapsed = time.Since(start)
	return raw, code, message
}

func (t *NetTransport) roundTrip(options Options) ([]byte, int, string) {
	rawURL, _ := options[OptURL].(string)
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return nil, transportCodeBadURL, fmt.Sprintf("URL rejected: %q", rawURL)
	}

	var useTLS bool
	switch u.Scheme {
	case "http":
	case "https":
		useTLS = true
	default:
		return nil, transportCodeUnsupported, fmt.Sprintf("unsupported scheme %q", u.Scheme)
	}

	timeout := defaultTimeout
	if d, ok := options[OptTimeout].(time.Duration); ok && d > 0 {
		timeout = d
	}

	conn, code, message := dial(u, useTLS, timeout)
	if code != 0 {
		return nil, code, message
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(timeout)); err != nil {
		return nil, transportCodeConnect, err.Error()
	}

	if _, err := conn.Write(buildRequest(u, options)); err != nil {
		return nil, sendCode(err), err.Error()
	}

	raw, err := io.ReadAll(conn)
	if err != nil {
		return nil, recvCode(err), err.Error()
	}
	return raw, 0, ""
}

func dial(u *url.URL, useTLS bool, timeout time.Duration) (net.Conn, int, string) {
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		if useTLS {
			port = "443"
		} else {
			port = "80"
		}
	}

	conn, err := net.DialTimeout("tcp", net.JoinHostPort(host, port), timeout)
	if err != nil {
		return nil, dialCode(err), err.Error()
	}
	if !useTLS {
		return conn, 0, ""
	}

	tlsConn := tls.Client(conn, &tls.Config{ServerName: host})
	if err := tlsConn.SetDeadline(time.Now().Add(timeout)); err == nil {
		err = tlsConn.Handshake()
	}
	if err != nil {
		conn.Close()
		return nil, transportCodeConnect, err.Error()
	}
	return tlsConn, 0, ""
}

// buildRequest assembles the HTTP/1.1 request bytes from the option map.
func buildRequest(u *url.URL, options Options) []byte {
	method := methodFor(options)

	target := u.RequestURI()
	if target == "" {
		target = "/"
	}

	var body string
	if fields, ok := options[OptPostFields].(string); ok {
		body = fields
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s HTTP/1.1\r\n", method, target)
	fmt.Fprintf(&b, "Host: %s\r\n", u.Host)
	if ua, ok := options[OptUserAgent].(string); ok && ua != "" {
		fmt.Fprintf(&b, "User-Agent: %s\r\n", ua)
	}
	if lines, ok := options[OptHTTPHeader].([]string); ok {
		for _, line := range lines {
			fmt.Fprintf(&b, "%s\r\n", line)
		}
	}
	if len(body) > 0 || method == "POST" || method == "PUT" {
		fmt.Fprintf(&b, "Content-Length: %d\r\n", len(body))
	}
	b.WriteString("Connection: close\r\n\r\n")
	b.WriteString(body)
	return []byte(b.String())
}

// methodFor selects the request method from the accumulated options, in
// the same precedence the option vocabulary implies: an explicit custom
// method wins, then POST, then NOBODY (HEAD), then GET.
func methodFor(options Options) string {
	if m, ok := options[OptCustomRequest].(string); ok && m != "" {
		return m
	}
	if post, ok := options[OptPost].(bool); ok && post {
		return "POST"
	}
	if nobody, ok := options[OptNoBody].(bool); ok && nobody {
		return "HEAD"
	}
	return "GET"
}

func dialCode(err error) int {
	if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
		return transportCodeTimeout
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return transportCodeResolve
	}
	return transportCodeConnect
}

func sendCode(err error) int {
	if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
		return transportCodeTimeout
	}
	return transportCodeSend
}

func recvCode(err error) int {
	if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
		return transportCodeTimeout
	}
	return transportCodeRecv
}
