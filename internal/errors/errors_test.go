package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("Error string without cause", func(t *testing.T) {
		err := NotFound("lead 42 not found", nil)
		if got := err.Error(); got != "NOT_FOUND: lead 42 not found" {
			t.Errorf("Unexpected error string %q", got)
		}
	})

	t.Run("Error string includes the cause", func(t *testing.T) {
		cause := errors.New("row missing")
		err := InternalError("lookup failed", cause)
		if got := err.Error(); !strings.Contains(got, "row missing") {
			t.Errorf("Expected the cause in %q", got)
		}
	})

	t.Run("Unwrap exposes the cause to errors.Is", func(t *testing.T) {
		cause := errors.New("boom")
		err := ValidationError("bad request", cause)
		if !errors.Is(err, cause) {
			t.Error("Expected errors.Is to find the cause")
		}
	})

	t.Run("WithDetails", func(t *testing.T) {
		err := InvalidInput("bad id", nil).WithDetails("id must be numeric")
		if err.Details != "id must be numeric" {
			t.Errorf("Unexpected details %q", err.Details)
		}
	})
}

func TestIsNotFound(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{"Direct NotFound", NotFound("missing", nil), true},
		{"Wrapped NotFound", fmt.Errorf("service: %w", NotFound("missing", nil)), true},
		{"Other AppError", InvalidInput("bad", nil), false},
		{"Plain error", errors.New("missing"), false},
		{"Nil", nil, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsNotFound(tc.err); got != tc.expected {
				t.Errorf("IsNotFound(%v) = %v, expected %v", tc.err, got, tc.expected)
			}
		})
	}
}
