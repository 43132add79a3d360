package web

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIKeyAuth(t *testing.T) {
	testCases := []struct {
		name               string
		headerValue        string
		expectedStatusCode int
		shouldCallNext     bool
	}{
		{
			name:               "Success - key on the allow-list",
			headerValue:        "key-one",
			expectedStatusCode: http.StatusOK,
			shouldCallNext:     true,
		},
		{
			name:               "Failure - no header yields 401",
			headerValue:        "",
			expectedStatusCode: http.StatusUnauthorized,
			shouldCallNext:     false,
		},
		{
			name:               "Failure - unknown key yields 403",
			headerValue:        "not-a-key",
			expectedStatusCode: http.StatusForbidden,
			shouldCallNext:     false,
		},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})
			handler := APIKeyAuth(logger, []string{"key-one", "key-two"})(next)

			req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
			if tc.headerValue != "" {
				req.Header.Set(HeaderAPIKey, tc.headerValue)
			}
			rec := httptest.NewRecorder()

			// when
			handler.ServeHTTP(rec, req)

			// then
			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			assert.Equal(t, tc.shouldCallNext, nextCalled)
		})
	}
}
