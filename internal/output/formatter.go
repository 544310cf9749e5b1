package output

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	http "github.com/wesleyorama2/riposte/http"
)

// Formatter is responsible for formatting requests and responses for
// terminal display
type Formatter struct {
	Verbose bool
	scheme  *ColorScheme
}

// NewFormatter creates a new formatter with the given options
func NewFormatter(verbose, noColor bool) *Formatter {
	scheme := DefaultColorScheme()
	if noColor || !IsTerminal() {
		scheme = NoColorScheme()
	}
	return &Formatter{
		Verbose: verbose,
		scheme:  scheme,
	}
}

// FormatRequest formats a request for display
func (f *Formatter) FormatRequest(req *http.Request) string {
	var buf strings.Builder

	buf.WriteString(fmt.Sprintf("▶ REQUEST: %s %s\n",
		f.scheme.Method.Sprint(req.Verb()),
		f.scheme.URL.Sprint(req.URL())))

	headers := req.GetHeaders()
	if f.Verbose || len(headers) > 0 {
		buf.WriteString("  Headers:\n")
		for _, name := range sortedKeys(headers) {
			buf.WriteString(fmt.Sprintf("    %s: %s\n",
				f.scheme.HeaderKey.Sprint(name),
				f.scheme.HeaderValue.Sprint(headers[name])))
		}
	}

	if body := req.GetBody(); body != nil {
		buf.WriteString("  Body: ")
		buf.WriteString(formatJSONString(string(body)))
		buf.WriteString("\n")
	}

	return buf.String()
}

// FormatResponse formats a response for display
func (f *Formatter) FormatResponse(resp *http.Response) string {
	var buf strings.Builder

	statusColor := f.scheme.StatusError
	if resp.IsSuccess() {
		statusColor = f.scheme.StatusOK
	} else if resp.IsRedirect() {
		statusColor = f.scheme.StatusWarn
	}

	buf.WriteString(fmt.Sprintf("◀ RESPONSE: %s %s\n",
		statusColor.Sprintf("%d", resp.GetStatus()),
		f.scheme.Timing.Sprintf("(%.3fs)", resp.GetTransactionTime())))

	if f.Verbose {
		headers := resp.GetHeaders()
		buf.WriteString("  Headers:\n")
		for _, name := range sortedKeys(headers) {
			buf.WriteString(fmt.Sprintf("    %s: %s\n",
				f.scheme.HeaderKey.Sprint(name),
				f.scheme.HeaderValue.Sprint(headers[name])))
		}
	}

	if body := resp.GetBody(); len(body) > 0 {
		buf.WriteString("  Body: ")
		buf.WriteString(formatJSONString(string(body)))
		buf.WriteString("\n")
	}

	return buf.String()
}

// FormatError formats a send failure for display
func (f *Formatter) FormatError(err error) string {
	return fmt.Sprintf("✖ ERROR: %s\n", f.scheme.Error.Sprint(err))
}

// formatJSONString pretty-prints a JSON body; anything that does not
// parse is returned verbatim.
func formatJSONString(s string) string {
	var value interface{}
	if err := json.Unmarshal([]byte(s), &value); err != nil {
		return s
	}
	pretty, err := json.MarshalIndent(value, "  ", "  ")
	if err != nil {
		return s
	}
	return string(pretty)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
