package http

import (
	"io"
	"net"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetTransport_Get(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/test", r.URL.Path)
		assert.Equal(t, "riposte-test", r.Header.Get("User-Agent"))
		assert.Equal(t, "test-value", r.Header.Get("X-Test-Header"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(nethttp.StatusOK)
		w.Write([]byte(`{"message":"success"}`))
	}))
	defer server.Close()

	transport := NewNetTransport()
	raw, code, message := transport.Execute(Options{
		OptURL:        server.URL + "/test",
		OptHTTPGet:    true,
		OptUserAgent:  "riposte-test",
		OptHTTPHeader: []string{"X-Test-Header: test-value"},
	})

	require.Zero(t, code, message)
	assert.True(t, strings.HasPrefix(string(raw), "HTTP/1.1 200"), "raw stream should start with the status line")
	assert.Contains(t, string(raw), "Content-Type: application/json")
	assert.True(t, strings.HasSuffix(string(raw), `{"message":"success"}`))
	assert.Greater(t, transport.TransactionTime(), 0.0)
}

func TestNetTransport_PostBody(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "POST", r.Method)
		body, _ := io.ReadAll(r.Body)
		w.Write(body)
	}))
	defer server.Close()

	transport := NewNetTransport()
	raw, code, message := transport.Execute(Options{
		OptURL:        server.URL + "/echo",
		OptPost:       true,
		OptPostFields: `{"name":"John"}`,
	})

	require.Zero(t, code, message)
	assert.True(t, strings.HasSuffix(string(raw), `{"name":"John"}`))
}

func TestNetTransport_CustomMethod(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "DELETE", r.Method)
		w.WriteHeader(nethttp.StatusNoContent)
	}))
	defer server.Close()

	transport := NewNetTransport()
	raw, code, message := transport.Execute(Options{
		OptURL:           server.URL + "/things/1",
		OptCustomRequest: "DELETE",
		OptPostFields:    false,
	})

	require.Zero(t, code, message)
	assert.True(t, strings.HasPrefix(string(raw), "HTTP/1.1 204"))
}

func TestNetTransport_Head(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "HEAD", r.Method)
		w.Header().Set("Content-Length", "42")
	}))
	defer server.Close()

	transport := NewNetTransport()
	raw, code, message := transport.Execute(Options{
		OptURL:    server.URL + "/resource",
		OptNoBody: true,
	})

	require.Zero(t, code, message)
	assert.True(t, strings.HasSuffix(string(raw), "\r\n\r\n"), "HEAD response should carry no body")
}

func TestNetTransport_ConnectionRefused(t *testing.T) {
	// Grab a free port, then close the listener so nothing accepts.
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	listener.Close()

	transport := NewNetTransport()
	_, code, message := transport.Execute(Options{
		OptURL: "http://" + addr + "/",
	})

	assert.Equal(t, transportCodeConnect, code)
	assert.NotEmpty(t, message)
}

func TestNetTransport_Timeout(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer server.Close()

	transport := NewNetTransport()
	_, code, _ := transport.Execute(Options{
		OptURL:     server.URL + "/slow",
		OptTimeout: 100 * time.Millisecond,
	})

	assert.Equal(t, transportCodeTimeout, code)
}

func TestNetTransport_RejectsBadTargets(t *testing.T) {
	transport := NewNetTransport()

	_, code, _ := transport.Execute(Options{OptURL: "ftp://example.com/file"})
	assert.Equal(t, transportCodeUnsupported, code)

	_, code, _ = transport.Execute(Options{OptURL: "not a url"})
	assert.Equal(t, transportCodeBadURL, code)
}

// End-to-end: a Client backed by the default transport against a real
// server, informational path excluded (httptest servers answer in one
// block).
func TestClient_SendOverNetTransport(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/users", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"users":[]}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	req, err := client.Get("/users")
	require.NoError(t, err)

	resp, err := req.Send()
	require.NoError(t, err)

	assert.Equal(t, 200, resp.GetStatus())
	assert.Equal(t, `{"users":[]}`, resp.GetBodyAsString())
	ct, _ := resp.GetHeader("Content-Type")
	assert.Equal(t, "application/json", ct)
	assert.Greater(t, resp.GetTransactionTime(), 0.0)
	assert.Same(t, req, resp.GetRequest())
}
