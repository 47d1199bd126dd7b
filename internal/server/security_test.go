package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestAuthMiddleware(t *testing.T) {
	apiKey := "secret-key"

	tests := []struct {
		name           string
		providedKey    string
		path           string
		expectedStatus int
	}{
		{
			name:           "Valid API Key",
			providedKey:    apiKey,
			path:           "/api/v1/vendors",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid API Key",
			providedKey:    "wrong-key",
			path:           "/api/v1/vendors",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Key Prefix Is Not Enough",
			providedKey:    "secret",
			path:           "/api/v1/vendors",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Missing API Key",
			providedKey:    "",
			path:           "/api/v1/vendors",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Public Path - Healthz",
			providedKey:    "",
			path:           "/healthz",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Public Path - Metrics",
			providedKey:    "",
			path:           "/metrics",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Public Path - Swagger",
			providedKey:    "",
			path:           "/swagger/index.html",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detector := NewSuspiciousActivityDetector()
			handler := AuthMiddleware(apiKey, nil, detector)(okHandler)

			req := httptest.NewRequest("GET", tt.path, nil)
			req.RemoteAddr = "10.1.1.1:5000"
			if tt.providedKey != "" {
				req.Header.Set(HeaderAPIKey, tt.providedKey)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}
			if tt.expectedStatus == http.StatusUnauthorized && detector.FailedAuthCount("10.1.1.1") != 1 {
				t.Errorf("expected one recorded failure, got %d", detector.FailedAuthCount("10.1.1.1"))
			}
		})
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	handler := SecurityHeadersMiddleware()(okHandler)

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	expectedHeaders := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "SAMEORIGIN",
		"X-XSS-Protection":       "1; mode=block",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	}

	for header, expected := range expectedHeaders {
		if got := rec.Header().Get(header); got != expected {
			t.Errorf("expected header %s to be %q, got %q", header, expected, got)
		}
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	// No refill to speak of, so only the burst gets through
	limiter := NewIPRateLimiter(0.001, 3)
	handler := RateLimitMiddleware(nil, limiter)(okHandler)

	send := func(remoteAddr string) int {
		req := httptest.NewRequest("GET", "/api/v1/vendors", nil)
		req.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 3; i++ {
		if code := send("192.168.1.100:1234"); code != http.StatusOK {
			t.Fatalf("request %d failed with status %d", i, code)
		}
	}

	if code := send("192.168.1.100:1234"); code != http.StatusTooManyRequests {
		t.Errorf("expected status 429 Too Many Requests, got %d", code)
	}

	// Buckets are per IP
	if code := send("192.168.1.101:1234"); code != http.StatusOK {
		t.Errorf("expected a different IP to pass, got %d", code)
	}
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name      string
		remote    string
		forwarded string
		trusted   []string
		want      string
	}{
		{"direct", "203.0.113.5:443", "", nil, "203.0.113.5"},
		{"untrusted proxy ignored", "203.0.113.5:443", "198.51.100.1", nil, "203.0.113.5"},
		{"trusted proxy uses rightmost hop", "10.0.0.1:80", "1.1.1.1, 198.51.100.7", []string{"10.0.0.1"}, "198.51.100.7"},
		{"trusted proxy without header", "10.0.0.1:80", "", []string{"10.0.0.1"}, "10.0.0.1"},
		{"unparseable remote", "garbage", "", nil, "garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remote
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			if got := extractIP(req, tt.trusted); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	handler := RequestSizeLimitMiddleware(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	for body, want := range map[string]int{
		"01234567":         http.StatusOK,
		"0123456789abcdef": http.StatusRequestEntityTooLarge,
	} {
		req := httptest.NewRequest("POST", "/", strings.NewReader(body))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != want {
			t.Errorf("body of %d bytes: expected status %d, got %d", len(body), want, rec.Code)
		}
	}
}
