package pkg

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("wraps the cause", func(t *testing.T) {
		cause := errors.New("conditional check failed")
		appErr := NewDomainError("COMPLAINT_UPDATE", "Not found", cause, http.StatusNotFound)

		if !errors.Is(appErr, cause) {
			t.Fatalf("errors.Is() = false, want the cause to unwrap")
		}
		if got := appErr.Error(); got != "COMPLAINT_UPDATE: Not found: conditional check failed" {
			t.Fatalf("Error() = %q", got)
		}
	})

	t.Run("formats without a cause", func(t *testing.T) {
		appErr := NewDomainErrorSimple("COMPLAINT_BODY", "Invalid request", http.StatusBadRequest)

		if got := appErr.Error(); got != "COMPLAINT_BODY: Invalid request" {
			t.Fatalf("Error() = %q", got)
		}
		if appErr.HTTPStatus != http.StatusBadRequest {
			t.Fatalf("HTTPStatus = %d, want 400", appErr.HTTPStatus)
		}
	})

	t.Run("serializes the wire shape", func(t *testing.T) {
		appErr := NewDomainErrorSimple("COMPLAINT_BODY", "Invalid request", http.StatusBadRequest)

		raw, err := json.Marshal(appErr.ToHTTPError())
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		if string(raw) != `{"success":false,"message":"Invalid request"}` {
			t.Fatalf("Marshal() = %s", raw)
		}
	})
}
