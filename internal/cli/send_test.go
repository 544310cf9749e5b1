package cli

import (
	"bytes"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	RootCmd.SetOut(out)
	RootCmd.SetErr(out)
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return out.String(), err
}

func TestGetCommand(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "custom-value", r.Header.Get("X-Custom"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":42}`))
	}))
	defer server.Close()

	out, err := execute(t, "get", server.URL+"/users/42",
		"-H", "X-Custom: custom-value", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "REQUEST: GET")
	assert.Contains(t, out, "RESPONSE: 200")
}

func TestPostCommand_BodyAndExtract(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "POST", r.Method)
		w.Write([]byte(`{"created":{"id":7}}`))
	}))
	defer server.Close()

	out, err := execute(t, "post", server.URL+"/users",
		"-d", `{"name":"John"}`,
		"--extract", "$.created.id",
		"--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "7\n")
}

func TestGetCommand_SchemaValidation(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Write([]byte(`{"name":"John"}`))
	}))
	defer server.Close()

	out, err := execute(t, "get", server.URL+"/user",
		"--schema", `{"type":"object","required":["name"]}`,
		"--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "schema valid")

	_, err = execute(t, "get", server.URL+"/user",
		"--schema", `{"type":"object","required":["missing"]}`,
		"--no-color")
	require.Error(t, err)
}

func TestCommand_TransportFailure(t *testing.T) {
	// Nothing is listening on this URL once the server closes.
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {}))
	url := server.URL
	server.Close()

	_, err := execute(t, "get", url, "--no-color")
	require.Error(t, err)
}

func TestParseHeaders(t *testing.T) {
	headers := parseHeaders([]string{
		"Accept: application/json",
		"X-Empty:",
		"malformed",
	})

	assert.Equal(t, "application/json", headers["Accept"])
	assert.Equal(t, "", headers["X-Empty"])
	assert.NotContains(t, headers, "malformed")
}

func TestBuildTarget(t *testing.T) {
	// A bare host gets an http scheme.
	client, url, _, err := buildTarget("", "", "example.com/users")
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.Equal(t, "http://example.com/users", url)

	// --env without --config is rejected.
	_, _, _, err = buildTarget("", "dev", "/users")
	require.Error(t, err)
}
