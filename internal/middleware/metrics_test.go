package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	var gotID string
	handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = RequestID(r.Context())
	}))

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if gotID == "" {
		t.Error("Expected a generated request ID in the context")
	}
	if rec.Header().Get("X-Request-ID") != gotID {
		t.Errorf("Expected response header to carry %s, got %s", gotID, rec.Header().Get("X-Request-ID"))
	}
}

func TestRequestIDMiddleware_KeepsIncomingID(t *testing.T) {
	var gotID string
	handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = RequestID(r.Context())
	}))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Request-ID", "caller-supplied-id")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if gotID != "caller-supplied-id" {
		t.Errorf("Expected caller-supplied id preserved, got %s", gotID)
	}
}

func TestStatusRecorder_CapturesCode(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := &statusRecorder{ResponseWriter: rec, statusCode: 200}

	wrapped.WriteHeader(http.StatusNotFound)
	wrapped.WriteHeader(http.StatusOK) // second call must not overwrite

	if wrapped.statusCode != http.StatusNotFound {
		t.Errorf("Expected recorded status 404, got %d", wrapped.statusCode)
	}
}

func TestStatusRecorder_DefaultsOnWrite(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := &statusRecorder{ResponseWriter: rec, statusCode: 200}

	if _, err := wrapped.Write([]byte("body")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if wrapped.statusCode != http.StatusOK {
		t.Errorf("Expected implicit 200, got %d", wrapped.statusCode)
	}
}
