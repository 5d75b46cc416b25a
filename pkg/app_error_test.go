package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError_ToHTTPError(t *testing.T) {
	appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", errors.New("dynamodb: boom"), http.StatusInternalServerError)

	httpErr := appErr.ToHTTPError()
	if httpErr.Code != "INTERNAL_ERROR" || httpErr.Message != "An internal error occurred" {
		t.Fatalf("unexpected http error: %+v", httpErr)
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	appErr := NewDomainError("X", "x", cause, http.StatusInternalServerError)
	if !errors.Is(appErr, cause) {
		t.Fatalf("expected cause to unwrap")
	}

	simple := NewDomainErrorSimple("NOT_FOUND", "Customer not found", http.StatusNotFound)
	if simple.Error() != "NOT_FOUND: Customer not found" {
		t.Fatalf("unexpected error string: %s", simple.Error())
	}
}
