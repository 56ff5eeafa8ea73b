package httpmsg_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/km-arc/go-httpfactory/framework/httpmsg"
)

func decodeJSON(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.NewDecoder(rr.Body).Decode(&m); err != nil {
		t.Fatalf("decodeJSON: %v", err)
	}
	return m
}

func TestResponse_Defaults(t *testing.T) {
	res := httpmsg.NewResponse(http.StatusOK)

	if res.Status() != http.StatusOK {
		t.Errorf("Status: got %d", res.Status())
	}
	if res.Body() != nil {
		t.Error("fresh response should have no body")
	}
}

func TestResponse_Chaining(t *testing.T) {
	res := httpmsg.NewResponse(http.StatusOK).
		WithStatus(http.StatusTeapot).
		WithHeader("X-Custom", "v")

	if res.Status() != http.StatusTeapot {
		t.Errorf("Status: got %d", res.Status())
	}
	if res.Header().Get("X-Custom") != "v" {
		t.Errorf("header: got %q", res.Header().Get("X-Custom"))
	}
}

func TestResponse_JSON(t *testing.T) {
	res := httpmsg.NewResponse(http.StatusCreated).JSON(map[string]any{"id": 1})

	if res.Header().Get("Content-Type") != "application/json" {
		t.Errorf("Content-Type: got %q", res.Header().Get("Content-Type"))
	}
	if res.Body() == nil {
		t.Fatal("JSON should set a body")
	}
}

func TestResponse_Write(t *testing.T) {
	rr := httptest.NewRecorder()
	res := httpmsg.NewResponse(http.StatusCreated).JSON(map[string]any{"id": float64(1)})

	if err := res.Write(rr); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if rr.Code != http.StatusCreated {
		t.Errorf("status: got %d want 201", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q", ct)
	}
	m := decodeJSON(t, rr)
	if m["id"] != float64(1) {
		t.Errorf("body id: got %v", m["id"])
	}
}

func TestResponse_Write_RewindsBody(t *testing.T) {
	rr1 := httptest.NewRecorder()
	rr2 := httptest.NewRecorder()
	res := httpmsg.NewResponse(http.StatusOK).JSON(map[string]any{"k": "v"})

	if err := res.Write(rr1); err != nil {
		t.Fatalf("first Write: %v", err)
	}
	if err := res.Write(rr2); err != nil {
		t.Fatalf("second Write: %v", err)
	}
	if rr2.Body.Len() == 0 {
		t.Error("second Write should replay the body from the start")
	}
}

func TestResponse_Write_NoBody(t *testing.T) {
	rr := httptest.NewRecorder()
	res := httpmsg.NewResponse(http.StatusNoContent)

	if err := res.Write(rr); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if rr.Code != http.StatusNoContent {
		t.Errorf("status: got %d want 204", rr.Code)
	}
	if rr.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", rr.Body.String())
	}
}
