package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestWrap(t *testing.T) {
	originalErr := errors.New("database connection failed")
	wrapped := Wrap(originalErr, CodeInternal, "internal error", http.StatusInternalServerError)

	if wrapped.Err != originalErr {
		t.Errorf("expected wrapped error to contain original error")
	}
	if errors.Unwrap(wrapped) != originalErr {
		t.Errorf("Unwrap() should return original error")
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without underlying error",
			appErr:   &AppError{Code: CodeNotFound, Message: "Hotel not found"},
			expected: "NOT_FOUND: Hotel not found",
		},
		{
			name: "with underlying error",
			appErr: &AppError{
				Code:    CodeInternal,
				Message: "internal error",
				Err:     errors.New("database connection failed"),
			},
			expected: "INTERNAL_ERROR: internal error (caused by: database connection failed)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.appErr.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestConstructors_StatusCodes(t *testing.T) {
	tests := []struct {
		name   string
		err    *AppError
		code   string
		status int
	}{
		{"not found", NotFound("Booking"), CodeNotFound, http.StatusNotFound},
		{"validation", Validation("validation failed", nil), CodeValidation, http.StatusBadRequest},
		{"invalid input", InvalidInput("Invalid rating value"), CodeInvalidInput, http.StatusBadRequest},
		{"unauthorized", Unauthorized("Unauthorized"), CodeUnauthorized, http.StatusUnauthorized},
		{"forbidden", Forbidden("Forbidden"), CodeForbidden, http.StatusForbidden},
		{"conflict", Conflict("booking in progress"), CodeConflict, http.StatusConflict},
		{"internal", Internal("boom", nil), CodeInternal, http.StatusInternalServerError},
		{"timeout", Timeout("Request timeout"), CodeTimeout, http.StatusGatewayTimeout},
		{"unavailable", Unavailable("Admin registration is not configured"), CodeUnavailable, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("expected code %s, got %s", tt.code, tt.err.Code)
			}
			if tt.err.StatusCode() != tt.status {
				t.Errorf("StatusCode() = %d, want %d", tt.err.StatusCode(), tt.status)
			}
		})
	}
}

func TestStatusCode_ZeroDefaultsToInternal(t *testing.T) {
	err := &AppError{Code: CodeBadRequest, Message: "bad"}
	if err.StatusCode() != http.StatusInternalServerError {
		t.Errorf("StatusCode() = %d, want %d", err.StatusCode(), http.StatusInternalServerError)
	}
}

func TestNotFoundWithID(t *testing.T) {
	err := NotFoundWithID("Hotel", "65f0c1")

	if err.Message != "Hotel not found" {
		t.Errorf("expected message 'Hotel not found', got %s", err.Message)
	}
	if err.Details["id"] != "65f0c1" {
		t.Errorf("expected id '65f0c1', got %v", err.Details["id"])
	}
	if err.Details["resource"] != "Hotel" {
		t.Errorf("expected resource 'Hotel', got %v", err.Details["resource"])
	}
}

func TestIsAppError(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", Forbidden("Forbidden"))

	if !IsAppError(NotFound("Booking")) {
		t.Errorf("IsAppError() should return true for AppError")
	}
	if !IsAppError(wrapped) {
		t.Errorf("IsAppError() should see through wrapping")
	}
	if IsAppError(errors.New("regular error")) {
		t.Errorf("IsAppError() should return false for regular error")
	}
}

func TestAsAppError(t *testing.T) {
	appErr := NotFound("Booking")
	regularErr := errors.New("regular error")

	if AsAppError(appErr) != appErr {
		t.Errorf("AsAppError() should return same AppError")
	}

	result := AsAppError(regularErr)
	if result.Code != CodeInternal {
		t.Errorf("AsAppError() should wrap regular error as internal error")
	}
	if result.Message != "Internal server error" {
		t.Errorf("unexpected message %q", result.Message)
	}
	if result.Err != regularErr {
		t.Errorf("AsAppError() should wrap the original error")
	}
}

func TestAppError_ToJSON(t *testing.T) {
	err := Internal("Internal server error", errors.New("secret driver detail"))

	var body map[string]any
	if jsonErr := json.Unmarshal(err.ToJSON(), &body); jsonErr != nil {
		t.Fatalf("ToJSON() produced invalid JSON: %v", jsonErr)
	}
	if body["error"] != "Internal server error" {
		t.Errorf("expected error message, got %v", body["error"])
	}
	if _, ok := body["details"]; ok {
		t.Errorf("details should be omitted when empty")
	}
	if len(body) != 1 {
		t.Errorf("ToJSON() must not leak the cause, got %v", body)
	}
}
