// Package compile turns rendered LaTeX source into PDF bytes, either through
// remote compilation services with ordered fallback or a local TeX
// installation.
package compile

import (
	"fmt"
	"strings"
)

// ProviderError records one failed compilation attempt against a provider.
type ProviderError struct {
	Provider string
	Message  string
	Cause    error
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("provider %s: %s: %v", e.Provider, e.Message, e.Cause)
	}
	return fmt.Sprintf("provider %s: %s", e.Provider, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// AllProvidersError is returned when every configured provider fails. It
// carries the original LaTeX source together with the per-provider error
// text, so callers can surface the source for manual recovery.
type AllProvidersError struct {
	Source   string
	Attempts []*ProviderError
}

func (e *AllProvidersError) Error() string {
	msgs := make([]string, len(e.Attempts))
	for i, a := range e.Attempts {
		msgs[i] = a.Error()
	}
	return fmt.Sprintf("all %d compilation providers failed: %s", len(e.Attempts), strings.Join(msgs, "; "))
}

// CompilationError represents a local pdflatex compilation failure.
type CompilationError struct {
	Message   string
	LogOutput string
	Cause     error
}

func (e *CompilationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("compilation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("compilation error: %s", e.Message)
}

func (e *CompilationError) Unwrap() error {
	return e.Cause
}
