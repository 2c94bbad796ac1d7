package mcp

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/buildcorp/buildpro/internal/store"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes. It returns nil for errors
// it does not recognize.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	var validationErrs validator.ValidationErrors
	switch {
	case errors.Is(err, store.ErrNotFound):
		return &APIError{Code: "NOT_FOUND", Message: err.Error(), RecoveryHint: "Check the ID against a list call; hidden records read as absent"}
	case errors.Is(err, store.ErrDuplicateID):
		return &APIError{Code: "DUPLICATE_ID", Message: err.Error(), RecoveryHint: "Omit the id to have one generated"}
	case errors.Is(err, store.ErrUnavailable):
		return &APIError{Code: "STORE_UNAVAILABLE", Message: err.Error(), RecoveryHint: "Retry once storage is reachable"}
	case errors.As(err, &validationErrs):
		return &APIError{Code: "INVALID_ENTITY", Message: "entity failed validation", Details: validationErrs.Error()}
	default:
		return nil
	}
}

func mapError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
