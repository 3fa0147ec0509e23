package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"maludy/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{
			name: "failure carries its own code",
			err:  failure.NotFound("booking not found"),
			code: http.StatusNotFound,
		},
		{
			name: "wrapped failure is unwrapped",
			err:  fmt.Errorf("creating booking: %w", failure.Conflict("duplicate reservation code")),
			code: http.StatusConflict,
		},
		{
			name: "validation maps to bad request",
			err:  failure.NewValidation(failure.FieldViolation{Field: "adults", Message: "at least 1 person required"}),
			code: http.StatusBadRequest,
		},
		{
			name: "plain error maps to internal error",
			err:  errors.New("boom"),
			code: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, got)
			}
		})
	}
}

func TestValidation_Error(t *testing.T) {
	err := failure.NewValidation(
		failure.FieldViolation{Field: "date", Message: "date must be today or later"},
		failure.FieldViolation{Field: "adults", Message: "at least 1 adult or senior is required"},
	)

	var validation *failure.Validation
	if !errors.As(err, &validation) {
		t.Fatalf("expected *failure.Validation, got %T", err)
	}

	if len(validation.Violations) != 2 {
		t.Fatalf("expected 2 violations, got %d", len(validation.Violations))
	}

	want := "validation failed: date: date must be today or later; adults: at least 1 adult or senior is required"
	if err.Error() != want {
		t.Errorf("unexpected message: %s", err.Error())
	}
}
