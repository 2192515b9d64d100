package compile

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// CompilationTimeout is the maximum time to wait for one provider attempt.
const CompilationTimeout = 30 * time.Second

// Provider is one remote LaTeX compilation service.
type Provider struct {
	Name    string
	URL     string
	Command string
}

// DefaultProviders is the fixed priority order tried by a zero-config client.
var DefaultProviders = []Provider{
	{Name: "latexonline", URL: "https://latexonline.cc/compile", Command: "pdflatex"},
	{Name: "ytotech", URL: "https://latex.ytotech.com/builds/sync", Command: "pdflatex"},
}

// Client compiles LaTeX source through remote providers, falling back across
// them in priority order.
type Client struct {
	providers  []Provider
	httpClient *http.Client
}

// NewClient creates a compilation client. A nil or empty provider list uses
// DefaultProviders.
func NewClient(providers []Provider) *Client {
	if len(providers) == 0 {
		providers = DefaultProviders
	}
	return &Client{
		providers:  providers,
		httpClient: &http.Client{Timeout: CompilationTimeout},
	}
}

// Compile posts source to each provider in order and returns the first
// successful PDF. Success requires a 2xx status and a PDF content type. If
// every provider fails, the returned AllProvidersError carries the source and
// each provider's error text.
func (c *Client) Compile(ctx context.Context, source string) ([]byte, error) {
	var attempts []*ProviderError

	for _, p := range c.providers {
		pdf, err := c.tryProvider(ctx, p, source)
		if err == nil {
			return pdf, nil
		}
		if ctx.Err() != nil {
			// The caller gave up; stop falling through providers.
			attempts = append(attempts, &ProviderError{Provider: p.Name, Message: "canceled", Cause: ctx.Err()})
			break
		}
		var provErr *ProviderError
		if pe, ok := err.(*ProviderError); ok {
			provErr = pe
		} else {
			provErr = &ProviderError{Provider: p.Name, Message: "request failed", Cause: err}
		}
		attempts = append(attempts, provErr)
	}

	return nil, &AllProvidersError{Source: source, Attempts: attempts}
}

// tryProvider performs one form-encoded POST against a provider.
func (c *Client) tryProvider(ctx context.Context, p Provider, source string) ([]byte, error) {
	form := url.Values{}
	form.Set("text", source)
	form.Set("command", p.Command)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.URL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, &ProviderError{Provider: p.Name, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ProviderError{Provider: p.Name, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &ProviderError{
			Provider: p.Name,
			Message:  fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "application/pdf") {
		return nil, &ProviderError{
			Provider: p.Name,
			Message:  fmt.Sprintf("unexpected content type %q", contentType),
		}
	}

	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ProviderError{Provider: p.Name, Message: "failed to read response body", Cause: err}
	}
	return pdf, nil
}
