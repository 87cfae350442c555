package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("db")
	appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(appErr, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if appErr.Error() != "INTERNAL_ERROR: An internal error occurred: db" {
		t.Fatalf("unexpected message: %s", appErr.Error())
	}

	simple := NewDomainErrorSimple("QUARTO_NOT_FOUND", "Quarto não encontrado", http.StatusNotFound)
	withDetails := simple.WithDetails("a", "b")
	if len(simple.Details) != 0 {
		t.Fatalf("expected original untouched, got %v", simple.Details)
	}

	body := withDetails.ToHTTPError()
	if body.Code != "QUARTO_NOT_FOUND" || len(body.Details) != 2 {
		t.Fatalf("unexpected http error: %+v", body)
	}
}
