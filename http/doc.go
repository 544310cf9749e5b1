// Package http provides a curl-style HTTP client library with per-verb
// request types, raw response parsing, and lifecycle events.
//
// This package is designed for programmatic use and provides:
//   - A client with an optional base URL and per-verb request builders
//   - Requests that translate each HTTP verb into transport options
//   - A raw status-line/header parser that handles informational
//     (1xx) blocks preceding the final response
//   - Lifecycle events (request-built, error, response-built) with
//     synchronous, in-order handler dispatch
//
// Basic Usage:
//
//	client := http.NewClient(
//	    http.WithBaseURL("https://api.example.com"),
//	)
//
//	req, err := client.Get("/users")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	req.AddHeader("Accept", "application/json")
//
//	resp, err := req.Send()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Status: %d\n", resp.GetStatus())
//	fmt.Printf("Time:   %.3fs\n", resp.GetTransactionTime())
//
// Event Example:
//
//	client.Register(http.EventResponseBuilt, func(payload interface{}) error {
//	    resp := payload.(*http.Response)
//	    log.Printf("got %d in %.3fs", resp.GetStatus(), resp.GetTransactionTime())
//	    return nil
//	})
//
// A Client performs exactly one execution attempt per Send: there is no
// redirect following, retrying, or connection pooling at this layer. A
// Client is not safe for concurrent use by multiple goroutines.
package http
