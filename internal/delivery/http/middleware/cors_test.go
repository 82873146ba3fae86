package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	handler := CORS([]string{"https://app.eventmatch.io/", " http://localhost:3000"}, next)

	tests := []struct {
		name       string
		method     string
		origin     string
		wantStatus int
		wantOrigin string
		wantBody   string
	}{
		{name: "allowed origin", method: http.MethodGet, origin: "https://app.eventmatch.io", wantStatus: http.StatusOK, wantOrigin: "https://app.eventmatch.io", wantBody: "ok"},
		{name: "trimmed config entry", method: http.MethodGet, origin: "http://localhost:3000", wantStatus: http.StatusOK, wantOrigin: "http://localhost:3000", wantBody: "ok"},
		{name: "other origin gets no headers", method: http.MethodGet, origin: "https://evil.example", wantStatus: http.StatusOK, wantBody: "ok"},
		{name: "preflight allowed", method: http.MethodOptions, origin: "https://app.eventmatch.io", wantStatus: http.StatusNoContent, wantOrigin: "https://app.eventmatch.io"},
		{name: "preflight other origin", method: http.MethodOptions, origin: "https://evil.example", wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/dashboard", nil)
			req.Header.Set("Origin", tt.origin)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantBody, rr.Body.String())
			if tt.method == http.MethodOptions && tt.wantOrigin != "" {
				assert.Contains(t, rr.Header().Get("Access-Control-Allow-Headers"), "Authorization")
			}
		})
	}
}
