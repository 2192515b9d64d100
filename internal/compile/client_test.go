package compile

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pdfServer(t *testing.T, capture *map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if capture != nil {
			*capture = map[string]string{
				"text":    r.PostFormValue("text"),
				"command": r.PostFormValue("command"),
			}
		}
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4 fake"))
	}))
}

func failingServer(t *testing.T, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "compile failed", status)
	}))
}

func TestCompile_FirstProviderSucceeds(t *testing.T) {
	var form map[string]string
	srv := pdfServer(t, &form)
	defer srv.Close()

	client := NewClient([]Provider{{Name: "primary", URL: srv.URL, Command: "pdflatex"}})
	pdf, err := client.Compile(context.Background(), `\documentclass{article}`)
	require.NoError(t, err)

	assert.Equal(t, "%PDF-1.4 fake", string(pdf))
	assert.Equal(t, `\documentclass{article}`, form["text"])
	assert.Equal(t, "pdflatex", form["command"])
}

func TestCompile_FallsBackToSecondProvider(t *testing.T) {
	bad := failingServer(t, http.StatusInternalServerError)
	defer bad.Close()
	good := pdfServer(t, nil)
	defer good.Close()

	client := NewClient([]Provider{
		{Name: "primary", URL: bad.URL, Command: "pdflatex"},
		{Name: "secondary", URL: good.URL, Command: "pdflatex"},
	})

	pdf, err := client.Compile(context.Background(), "src")
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}

func TestCompile_AllProvidersFail(t *testing.T) {
	first := failingServer(t, http.StatusInternalServerError)
	defer first.Close()
	second := failingServer(t, http.StatusBadGateway)
	defer second.Close()

	client := NewClient([]Provider{
		{Name: "primary", URL: first.URL, Command: "pdflatex"},
		{Name: "secondary", URL: second.URL, Command: "pdflatex"},
	})

	_, err := client.Compile(context.Background(), "original source")
	require.Error(t, err)

	var allErr *AllProvidersError
	require.ErrorAs(t, err, &allErr)
	assert.Equal(t, "original source", allErr.Source)
	require.Len(t, allErr.Attempts, 2)
	assert.Equal(t, "primary", allErr.Attempts[0].Provider)
	assert.Equal(t, "secondary", allErr.Attempts[1].Provider)
	assert.Contains(t, allErr.Attempts[0].Message, "500")
}

func TestCompile_NonPDFContentTypeIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>not a pdf</html>"))
	}))
	defer srv.Close()

	client := NewClient([]Provider{{Name: "primary", URL: srv.URL, Command: "pdflatex"}})
	_, err := client.Compile(context.Background(), "src")

	var allErr *AllProvidersError
	require.ErrorAs(t, err, &allErr)
	assert.Contains(t, allErr.Attempts[0].Message, "content type")
}

func TestCompile_ContextCancellationStopsFallback(t *testing.T) {
	srv := pdfServer(t, nil)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient([]Provider{
		{Name: "primary", URL: srv.URL, Command: "pdflatex"},
		{Name: "secondary", URL: srv.URL, Command: "pdflatex"},
	})

	_, err := client.Compile(ctx, "src")
	var allErr *AllProvidersError
	require.ErrorAs(t, err, &allErr)
	assert.Len(t, allErr.Attempts, 1)
}

func TestNewClient_DefaultProviders(t *testing.T) {
	client := NewClient(nil)
	require.Len(t, client.providers, 2)
	assert.Equal(t, "latexonline", client.providers[0].Name)
}
