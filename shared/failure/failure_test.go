package failure_test

import (
	"chore/shared/failure"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "title is required",
	}

	if f.Error() != "title is required" {
		t.Errorf("expected error message to be 'title is required', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "BadRequest",
			err:     failure.BadRequest(errors.New("validation failed")),
			code:    http.StatusBadRequest,
			message: "validation failed",
		},
		{
			name:    "BadRequestFromString",
			err:     failure.BadRequestFromString("title must be less than or equal to 100"),
			code:    http.StatusBadRequest,
			message: "title must be less than or equal to 100",
		},
		{
			name:    "Unauthorized",
			err:     failure.Unauthorized("You need to log in first!"),
			code:    http.StatusUnauthorized,
			message: "You need to log in first!",
		},
		{
			name:    "NotFound",
			err:     failure.NotFound("todo not found"),
			code:    http.StatusNotFound,
			message: "todo not found",
		},
		{
			name:    "Conflict",
			err:     failure.Conflict("That username already exists - please choose another"),
			code:    http.StatusConflict,
			message: "That username already exists - please choose another",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := tt.err.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", tt.err)
			}

			if f.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, f.Code)
			}

			if f.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, f.Message)
			}
		})
	}
}

func TestNilInputs(t *testing.T) {
	if err := failure.BadRequest(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("failed to get todo: %w", failure.NotFound("todo not found")),
			expected: http.StatusNotFound,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.GetCode(tt.input)
			if result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestIs(t *testing.T) {
	wrapped := fmt.Errorf("wrap: %w", failure.NotFound("todo not found"))

	if !failure.Is(wrapped, http.StatusNotFound) {
		t.Error("expected wrapped not found failure to match")
	}

	if failure.Is(wrapped, http.StatusBadRequest) {
		t.Error("expected wrapped not found failure not to match bad request")
	}

	if failure.Is(errors.New("plain"), http.StatusNotFound) {
		t.Error("expected plain error not to match")
	}
}

func TestMessage(t *testing.T) {
	if msg := failure.Message(failure.BadRequestFromString("title is required"), "fallback"); msg != "title is required" {
		t.Errorf("expected failure message, got %s", msg)
	}

	if msg := failure.Message(errors.New("pq: connection refused"), "fallback"); msg != "fallback" {
		t.Errorf("expected fallback message, got %s", msg)
	}
}
