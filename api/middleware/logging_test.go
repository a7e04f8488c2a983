// ABOUTME: Tests for the request logging middleware
// ABOUTME: Verifies request ID propagation, status capture and log emission

package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// mockLogger records log calls for assertions
type mockLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

type logEntry struct {
	level   string
	message string
	fields  map[string]interface{}
}

func (m *mockLogger) log(level, msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, logEntry{level: level, message: msg, fields: fields})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.log("debug", msg, fields) }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.log("info", msg, fields) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.log("warn", msg, fields) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.log("error", msg, fields) }

func (m *mockLogger) byLevel(level string) []logEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []logEntry
	for _, e := range m.entries {
		if e.level == level {
			out = append(out, e)
		}
	}
	return out
}

func TestRequestLoggingMiddleware_SetsRequestID(t *testing.T) {
	logger := &mockLogger{}
	var ctxRequestID string

	handler := RequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxRequestID = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/discover", nil))

	headerID := rec.Header().Get("X-Request-ID")
	if headerID == "" {
		t.Error("Expected X-Request-ID header to be set")
	}
	if ctxRequestID == "" {
		t.Error("Expected request ID in handler context")
	}
	if ctxRequestID != headerID {
		t.Errorf("Context request ID %q does not match header %q", ctxRequestID, headerID)
	}
}

func TestRequestLoggingMiddleware_LogsStartAndCompletion(t *testing.T) {
	logger := &mockLogger{}

	handler := RequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/comment-links", nil))

	infos := logger.byLevel("info")
	if len(infos) != 2 {
		t.Fatalf("Expected 2 info entries, got %d", len(infos))
	}
	if infos[0].message != "Request started" {
		t.Errorf("Expected first entry 'Request started', got %q", infos[0].message)
	}
	if infos[1].message != "Request completed" {
		t.Errorf("Expected second entry 'Request completed', got %q", infos[1].message)
	}
	if status, _ := infos[1].fields["status"].(int); status != http.StatusNoContent {
		t.Errorf("Expected logged status 204, got %v", infos[1].fields["status"])
	}
}

func TestRequestLoggingMiddleware_LogsServerErrors(t *testing.T) {
	logger := &mockLogger{}

	handler := RequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/discover", nil))

	errs := logger.byLevel("error")
	if len(errs) != 1 {
		t.Fatalf("Expected 1 error entry, got %d", len(errs))
	}
	if status, _ := errs[0].fields["status"].(int); status != http.StatusInternalServerError {
		t.Errorf("Expected logged status 500, got %v", errs[0].fields["status"])
	}
}

func TestRequestIDFromContext_Unset(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	if id := RequestIDFromContext(req.Context()); id != "" {
		t.Errorf("Expected empty request ID, got %q", id)
	}
}
