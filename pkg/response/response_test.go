package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func newEchoContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	return e.NewContext(req, rec), rec
}

func TestOkWithMessage_ShapesUniformResult(t *testing.T) {
	c, rec := newEchoContext()

	if err := OkWithMessage(c, "Message webhook acknowledged", nil); err != nil {
		t.Fatalf("OkWithMessage returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body SuccessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if !body.Success {
		t.Errorf("expected Success=true, got false")
	}
	if body.Message != "Message webhook acknowledged" {
		t.Errorf("unexpected message: %q", body.Message)
	}
}

func TestBadRequest_CarriesErrorText(t *testing.T) {
	c, rec := newEchoContext()

	if err := BadRequest(c, errors.New("page must be a positive integer")); err != nil {
		t.Fatalf("BadRequest returned error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var body ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if body.Success {
		t.Errorf("expected Success=false, got true")
	}
	if body.Error != "page must be a positive integer" {
		t.Errorf("unexpected error text: %q", body.Error)
	}
}
