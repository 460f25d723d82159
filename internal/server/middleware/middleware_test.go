package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// TestChain_ExecutionOrder verifies first added is outermost middleware.
func TestChain_ExecutionOrder(t *testing.T) {
	var executionLog []string

	m1 := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			executionLog = append(executionLog, "start-1")
			next.ServeHTTP(w, r)
			executionLog = append(executionLog, "end-1")
		})
	}

	m2 := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			executionLog = append(executionLog, "start-2")
			next.ServeHTTP(w, r)
			executionLog = append(executionLog, "end-2")
		})
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		executionLog = append(executionLog, "handler")
		w.WriteHeader(http.StatusOK)
	})

	chained := Chain(m1, m2)(handler)

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	chained.ServeHTTP(w, req)

	expected := []string{"start-1", "start-2", "handler", "end-2", "end-1"}
	if len(executionLog) != len(expected) {
		t.Fatalf("expected %d log entries, got %d", len(expected), len(executionLog))
	}

	for i, exp := range expected {
		if executionLog[i] != exp {
			t.Errorf("log[%d]: expected %s, got %s", i, exp, executionLog[i])
		}
	}
}

// TestChain_Empty verifies a chain with no middleware is a passthrough.
func TestChain_Empty(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	chained := Chain()(handler)

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	chained.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("expected status 204, got %d", w.Code)
	}
}

// TestLogger tests request logging middleware.
func TestLogger(t *testing.T) {
	tests := []struct {
		name          string
		method        string
		path          string
		handlerStatus int
	}{
		{
			name:          "GET request",
			method:        "GET",
			path:          "/api/v1/representatives",
			handlerStatus: http.StatusOK,
		},
		{
			name:          "POST request",
			method:        "POST",
			path:          "/api/v1/admin/reload",
			handlerStatus: http.StatusOK,
		},
		{
			name:          "error status",
			method:        "GET",
			path:          "/api/v1/members/UNKNOWN",
			handlerStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf).With().Timestamp().Logger()

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
			})

			wrapped := Logger(&logger)(handler)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.RemoteAddr = "192.168.1.1:12345"
			req.Header.Set("User-Agent", "test-agent")
			w := httptest.NewRecorder()

			wrapped.ServeHTTP(w, req)

			if w.Code != tt.handlerStatus {
				t.Errorf("expected status %d, got %d", tt.handlerStatus, w.Code)
			}

			var logEntry map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
				t.Fatalf("log is not valid JSON: %v", err)
			}

			if logEntry["method"] != tt.method {
				t.Errorf("log method: expected %s, got %v", tt.method, logEntry["method"])
			}
			if logEntry["path"] != tt.path {
				t.Errorf("log path: expected %s, got %v", tt.path, logEntry["path"])
			}
			if statusFloat, ok := logEntry["status"].(float64); !ok || int(statusFloat) != tt.handlerStatus {
				t.Errorf("log status: expected %d, got %v", tt.handlerStatus, logEntry["status"])
			}
			if _, ok := logEntry["duration_ms"]; !ok {
				t.Error("log missing duration_ms field")
			}
		})
	}
}

// TestRecovery tests panic recovery middleware.
func TestRecovery(t *testing.T) {
	tests := []struct {
		name         string
		shouldPanic  bool
		panicValue   interface{}
		expectStatus int
	}{
		{
			name:         "no panic - normal execution",
			shouldPanic:  false,
			expectStatus: http.StatusOK,
		},
		{
			name:         "panic with string",
			shouldPanic:  true,
			panicValue:   "something went wrong",
			expectStatus: http.StatusInternalServerError,
		},
		{
			name:         "panic with error",
			shouldPanic:  true,
			panicValue:   http.ErrAbortHandler,
			expectStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf).With().Timestamp().Logger()

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.shouldPanic {
					panic(tt.panicValue)
				}
				w.WriteHeader(http.StatusOK)
			})

			wrapped := Recovery(&logger)(handler)

			req := httptest.NewRequest("GET", "/test", nil)
			w := httptest.NewRecorder()

			func() {
				defer func() {
					if r := recover(); r != nil {
						t.Errorf("panic not recovered: %v", r)
					}
				}()
				wrapped.ServeHTTP(w, req)
			}()

			if w.Code != tt.expectStatus {
				t.Errorf("expected status %d, got %d", tt.expectStatus, w.Code)
			}

			if tt.shouldPanic {
				if !strings.Contains(buf.String(), "Panic recovered") {
					t.Error("expected panic log entry")
				}

				body := w.Body.String()
				if !strings.Contains(body, "INTERNAL_ERROR") {
					t.Error("response missing INTERNAL_ERROR code")
				}

				var errorResp map[string]interface{}
				if err := json.Unmarshal([]byte(body), &errorResp); err != nil {
					t.Errorf("response is not valid JSON: %v", err)
				}
			}
		})
	}
}

// TestResponseWriter tests the responseWriter wrapper.
func TestResponseWriter(t *testing.T) {
	tests := []struct {
		name         string
		writeHeader  bool
		statusCode   int
		expectedCode int
	}{
		{
			name:         "explicit WriteHeader",
			writeHeader:  true,
			statusCode:   http.StatusCreated,
			expectedCode: http.StatusCreated,
		},
		{
			name:         "default status (no WriteHeader)",
			writeHeader:  false,
			expectedCode: http.StatusOK,
		},
		{
			name:         "error status",
			writeHeader:  true,
			statusCode:   http.StatusBadRequest,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			rw := &responseWriter{
				ResponseWriter: recorder,
				statusCode:     http.StatusOK,
			}

			if tt.writeHeader {
				rw.WriteHeader(tt.statusCode)
			}

			if rw.statusCode != tt.expectedCode {
				t.Errorf("expected statusCode=%d, got %d", tt.expectedCode, rw.statusCode)
			}

			if tt.writeHeader && recorder.Code != tt.statusCode {
				t.Errorf("expected recorder.Code=%d, got %d", tt.statusCode, recorder.Code)
			}
		})
	}
}
