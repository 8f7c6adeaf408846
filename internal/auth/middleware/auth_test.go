package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockValidator struct {
	userID int
	role   int
	err    error
}

func (m *mockValidator) ValidateAccessToken(tokenString string) (int, int, error) {
	return m.userID, m.role, m.err
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		validator      *mockValidator
		requiredRole   int
		header         string
		cookie         string
		expectedStatus int
	}{
		{"bearer header", &mockValidator{userID: 7, role: 1}, 0, "Bearer tok", "", http.StatusOK},
		{"cookie", &mockValidator{userID: 7, role: 1}, 0, "", "tok", http.StatusOK},
		{"no token", &mockValidator{}, 0, "", "", http.StatusUnauthorized},
		{"malformed header", &mockValidator{}, 0, "Token tok", "", http.StatusUnauthorized},
		{"invalid token", &mockValidator{err: errors.New("bad")}, 0, "Bearer tok", "", http.StatusUnauthorized},
		{"insufficient role", &mockValidator{userID: 7, role: 1}, 2, "Bearer tok", "", http.StatusForbidden},
		{"sufficient role", &mockValidator{userID: 7, role: 3}, 2, "Bearer tok", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUser, gotRole int
			h := RoleMiddleware(tt.validator, tt.requiredRole)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser, _ = GetUserID(r.Context())
				gotRole, _ = GetRole(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "access_token", Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.validator.userID, gotUser)
				assert.Equal(t, tt.validator.role, gotRole)
			}
		})
	}
}
