package http

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

var (
	blockSep   = []byte("\r\n\r\n")
	httpPrefix = []byte("HTTP/")
)

// parseResponse populates resp from the raw byte stream the transport
// returned and returns the leftover body bytes.
//
// The stream may carry more than one status-line/header block: servers
// send informational (1xx) blocks, e.g. "100 Continue", ahead of the
// final response, each terminated by CRLFCRLF. Every block that is
// followed by another block is skipped; the status line and headers of
// the last block are applied to resp, and the bytes after its blank
// line are returned as the body.
func parseResponse(raw []byte, resp *Response) ([]byte, error) {
	block, rest := cutBlock(raw)
	for bytes.HasPrefix(rest, httpPrefix) {
		block, rest = cutBlock(rest)
	}

	lines := strings.Split(string(block), "\r\n")
	code, err := parseStatusLine(lines[0])
	if err != nil {
		return nil, err
	}
	resp.SetStatus(code)

	for _, line := range lines[1:] {
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		resp.AddHeader(strings.TrimSpace(name), strings.TrimSpace(value))
	}
	return rest, nil
}

// cutBlock splits raw at the first CRLFCRLF. A stream with no
// terminator is treated as a lone header block with an empty remainder.
func cutBlock(raw []byte) (block, rest []byte) {
	i := bytes.Index(raw, blockSep)
	if i < 0 {
		return raw, nil
	}
	return raw[:i], raw[i+len(blockSep):]
}

// parseStatusLine extracts the numeric status code from a line of the
// form "HTTP/<ver> <code> <reason>".
func parseStatusLine(line string) (int, error) {
	parts := strings.SplitN(line, " ", 3)
	if len(parts) < 2 || !strings.HasPrefix(parts[0], "HTTP/") {
		return 0, fmt.Errorf("%w: bad status line %q", ErrProtocol, line)
	}
	code, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: non-numeric status in %q", ErrProtocol, line)
	}
	return code, nil
}
