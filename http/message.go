package http

import (
	"fmt"
	"sort"
	"strings"
)

// Message holds the header storage shared by Request and Response.
//
// Header names are compared case-insensitively, but each header is
// reported in the case it was first written with: adding "content-type"
// after "Content-Type" overwrites the value while keeping the original
// spelling.
type Message struct {
	headers map[string]string // lowercase name -> value
	names   map[string]string // lowercase name -> first-write spelling
	body    []byte
}

func (m *Message) init() {
	if m.headers == nil {
		m.headers = make(map[string]string)
		m.names = make(map[string]string)
	}
}

// AddHeader sets a header, overwriting any existing value for the same
// name regardless of case.
func (m *Message) AddHeader(name, value string) {
	m.init()
	key := strings.ToLower(name)
	if _, ok := m.names[key]; !ok {
		m.names[key] = name
	}
	m.headers[key] = value
}

// AddHeaders sets every header in the given map.
func (m *Message) AddHeaders(headers map[string]string) {
	for name, value := range headers {
		m.AddHeader(name, value)
	}
}

// HasHeader reports whether a header with the given name is present.
func (m *Message) HasHeader(name string) bool {
	_, ok := m.headers[strings.ToLower(name)]
	return ok
}

// GetHeader returns the value for the given header name and whether it
// was present.
func (m *Message) GetHeader(name string) (string, bool) {
	value, ok := m.headers[strings.ToLower(name)]
	return value, ok
}

// GetHeaders returns all headers keyed by their first-write spelling.
func (m *Message) GetHeaders() map[string]string {
	out := make(map[string]string, len(m.headers))
	for key, value := range m.headers {
		out[m.names[key]] = value
	}
	return out
}

// RemoveHeader removes the header with the given name, if present.
func (m *Message) RemoveHeader(name string) {
	key := strings.ToLower(name)
	delete(m.headers, key)
	delete(m.names, key)
}

// RemoveHeaders removes every header.
func (m *Message) RemoveHeaders() {
	m.headers = nil
	m.names = nil
}

// SetBody sets the message body. A nil body means "no body was set",
// which request preparation distinguishes from an empty one.
func (m *Message) SetBody(body []byte) {
	m.body = body
}

// SetBodyString sets the message body from a string.
func (m *Message) SetBodyString(body string) {
	m.body = []byte(body)
}

// GetBody returns the message body, or nil when none was set.
func (m *Message) GetBody() []byte {
	return m.body
}

// headerLines serializes the headers as "Name: Value" lines, sorted for
// deterministic transport options.
func (m *Message) headerLines() []string {
	lines := make([]string, 0, len(m.headers))
	for key, value := range m.headers {
		lines = append(lines, fmt.Sprintf("%s: %s", m.names[key], value))
	}
	sort.Strings(lines)
	return lines
}
