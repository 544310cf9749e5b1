package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/riposte/internal/config"
	"github.com/wesleyorama2/riposte/internal/output"
	"github.com/wesleyorama2/riposte/pkg/jsonpath"
	"github.com/wesleyorama2/riposte/pkg/jsonschema"

	http "github.com/wesleyorama2/riposte/http"
)

// addRequestFlags registers the flags shared by every verb command.
func addRequestFlags(cmd *cobra.Command, withBody bool) {
	cmd.Flags().StringArrayP("header", "H", nil, "Request header as 'Name: Value' (repeatable)")
	cmd.Flags().Duration("timeout", 30*time.Second, "Transport timeout")
	cmd.Flags().BoolP("verbose", "v", false, "Show response headers")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
	cmd.Flags().String("extract", "", "JSONPath to extract from the response body")
	cmd.Flags().String("schema", "", "JSON Schema the response body must satisfy")
	cmd.Flags().String("config", "", "Path to a config file with environment profiles")
	cmd.Flags().String("env", "", "Environment profile to resolve the URL against")
	if withBody {
		cmd.Flags().StringP("body", "d", "", "Request body")
	}
}

// runRequest is the shared execution path behind every verb command.
func runRequest(cmd *cobra.Command, verb http.Verb, rawURL string) error {
	headerFlags, _ := cmd.Flags().GetStringArray("header")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	verbose, _ := cmd.Flags().GetBool("verbose")
	noColor, _ := cmd.Flags().GetBool("no-color")
	extract, _ := cmd.Flags().GetString("extract")
	schema, _ := cmd.Flags().GetString("schema")
	configPath, _ := cmd.Flags().GetString("config")
	envName, _ := cmd.Flags().GetString("env")

	client, path, headers, err := buildTarget(configPath, envName, rawURL)
	if err != nil {
		return err
	}
	// CLI headers win over profile headers.
	for name, value := range parseHeaders(headerFlags) {
		headers[name] = value
	}

	formatter := output.NewFormatter(verbose, noColor)
	client.Register(http.EventRequestBuilt, func(payload interface{}) error {
		fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRequest(payload.(*http.Request)))
		return nil
	})
	client.Register(http.EventError, func(payload interface{}) error {
		fmt.Fprint(cmd.ErrOrStderr(), formatter.FormatError(payload.(error)))
		return nil
	})
	client.Register(http.EventResponseBuilt, func(payload interface{}) error {
		fmt.Fprint(cmd.OutOrStdout(), formatter.FormatResponse(payload.(*http.Response)))
		return nil
	})

	req, err := buildRequest(client, verb, path, headers)
	if err != nil {
		return err
	}
	req.AddOption(http.OptTimeout, timeout)

	if cmd.Flags().Lookup("body") != nil {
		if body, _ := cmd.Flags().GetString("body"); body != "" {
			req.SetBodyString(body)
		}
	}

	resp, err := req.Send()
	if err != nil {
		return err
	}

	if schema != "" {
		valid, errs := jsonschema.ValidateWithErrors(resp.GetBodyAsString(), schema)
		if !valid {
			return fmt.Errorf("response body failed schema validation: %s", errs.Error())
		}
		fmt.Fprintln(cmd.OutOrStdout(), "✓ schema valid")
	}

	if extract != "" {
		value, err := jsonpath.Extract(resp.GetBodyAsString(), extract)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
	}

	return nil
}

// buildRequest dispatches to the client's verb method.
func buildRequest(client *http.Client, verb http.Verb, path string, headers map[string]string) (*http.Request, error) {
	switch verb {
	case http.MethodGet:
		return client.Get(path, headers)
	case http.MethodPost:
		return client.Post(path, headers)
	case http.MethodHead:
		return client.Head(path, headers)
	case http.MethodPut:
		return client.Put(path, headers)
	case http.MethodDelete:
		return client.Delete(path, headers)
	default:
		return nil, fmt.Errorf("unsupported verb %q", verb)
	}
}

// buildTarget resolves the target: with --env the URL argument is a path
// under the profile's base URL and the profile's headers apply;
// otherwise the argument must be a full URL.
func buildTarget(configPath, envName, rawURL string) (*http.Client, string, map[string]string, error) {
	headers := make(map[string]string)

	if envName != "" {
		if configPath == "" {
			return nil, "", nil, fmt.Errorf("--env requires --config")
		}
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, "", nil, err
		}
		env, err := cfg.Environment(envName)
		if err != nil {
			return nil, "", nil, err
		}
		for name, value := range env.Headers {
			headers[name] = value
		}
		return http.NewClient(http.WithBaseURL(env.BaseURL)), rawURL, headers, nil
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		rawURL = "http://" + rawURL
	}
	return http.NewClient(), rawURL, headers, nil
}

// parseHeaders turns repeated 'Name: Value' flags into a header map.
func parseHeaders(flags []string) map[string]string {
	headers := make(map[string]string, len(flags))
	for _, flag := range flags {
		name, value, ok := strings.Cut(flag, ":")
		if !ok {
			continue
		}
		headers[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}
	return headers
}
