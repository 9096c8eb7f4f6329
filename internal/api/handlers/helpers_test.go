package handlers_test

import (
	"net/http/httptest"
	"testing"

	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/testutil"
)

// errorBody mirrors response.ErrorResponse with map details for validation failures.
type errorBody struct {
	Error   string `json:"error"`
	Details any    `json:"details"`
}

func decodeFieldErrors(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	body := testutil.DecodeJSON[errorBody](t, w)
	fields, ok := body.Details.(map[string]any)
	if !ok {
		t.Fatalf("Expected field details, got %#v", body.Details)
	}
	return fields
}
