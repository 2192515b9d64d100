// Package server provides the HTTP REST API over the rendering engine.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/c7harry/bayform/internal/rendering"
	"github.com/c7harry/bayform/internal/store"
	"github.com/c7harry/bayform/internal/tailor"
	"github.com/c7harry/bayform/schemas"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	if errors.Is(err, store.ErrNotFound) {
		return http.StatusNotFound
	}

	var (
		validationErr *ErrValidation
		schemaErr     *schemas.ValidationError
		fieldErrs     validator.ValidationErrors
		renderErr     *rendering.RenderError
		templateErr   *rendering.TemplateError
		fetchErr      *tailor.FetchError
	)
	switch {
	case errors.As(err, &validationErr), errors.As(err, &schemaErr), errors.As(err, &fieldErrs):
		return http.StatusBadRequest
	case errors.As(err, &renderErr), errors.As(err, &templateErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &fetchErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
