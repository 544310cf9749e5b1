package http

import (
	"errors"
	"testing"
)

func TestRequestFactory_Build(t *testing.T) {
	tests := []struct {
		name    string
		verb    Verb
		url     string
		headers map[string]string
		wantErr bool
	}{
		{
			name:    "Simple GET request",
			verb:    MethodGet,
			url:     "https://api.example.com/users",
			headers: map[string]string{"Accept": "application/json"},
		},
		{
			name: "All verbs are known",
			verb: MethodDelete,
			url:  "http://example.com/things/1",
		},
		{
			name:    "Unknown verb",
			verb:    Verb("PATCH"),
			url:     "https://api.example.com/users",
			wantErr: true,
		},
		{
			name:    "Empty URL",
			verb:    MethodGet,
			url:     "",
			wantErr: true,
		},
		{
			name:    "Relative URL",
			verb:    MethodGet,
			url:     "/users",
			wantErr: true,
		},
		{
			name:    "Malformed URL",
			verb:    MethodGet,
			url:     "http://exa mple.com/%zz",
			wantErr: true,
		},
	}

	factory := NewRequestFactory()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := factory.Build(tt.verb, tt.url, tt.headers)

			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected an error, got none")
				}
				if !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("Expected ErrInvalidArgument, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if req.Verb() != tt.verb {
				t.Errorf("Expected verb %s, got %s", tt.verb, req.Verb())
			}
			if req.URL() != tt.url {
				t.Errorf("Expected URL %s, got %s", tt.url, req.URL())
			}
			for name, value := range tt.headers {
				got, ok := req.GetHeader(name)
				if !ok || got != value {
					t.Errorf("Expected header %s: %s, got %q", name, value, got)
				}
			}
		})
	}
}
