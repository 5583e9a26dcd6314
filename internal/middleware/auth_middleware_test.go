package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// stubVerifier implements TokenVerifier and records whether it was called.
type stubVerifier struct {
	token  *auth.Token
	err    error
	called bool
}

func (s *stubVerifier) VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error) {
	s.called = true
	if s.err != nil {
		return nil, s.err
	}
	return s.token, nil
}

func setupAuthTestRouter(verifier TokenVerifier) (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	authMW := NewAuthMiddleware(verifier)

	var seenEmail string
	router.GET("/protected", authMW.VerifyToken(), func(c *gin.Context) {
		seenEmail = c.GetString(ContextUserEmail)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router, &seenEmail
}

func TestVerifyToken(t *testing.T) {
	tests := []struct {
		name         string
		authHeader   string
		verifier     *stubVerifier
		wantStatus   int
		wantBody     string
		wantVerified bool
	}{
		{
			name:       "missing header rejected before verifier call",
			authHeader: "",
			verifier:   &stubVerifier{},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"message":"unauthorized access"}`,
		},
		{
			name:       "malformed header rejected before verifier call",
			authHeader: "Token abc123",
			verifier:   &stubVerifier{},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"message":"unauthorized access"}`,
		},
		{
			name:         "verification failure",
			authHeader:   "Bearer expired-token",
			verifier:     &stubVerifier{err: errors.New("token expired")},
			wantStatus:   http.StatusUnauthorized,
			wantBody:     `{"message":"unauthorized access"}`,
			wantVerified: true,
		},
		{
			name:       "valid token passes through",
			authHeader: "Bearer good-token",
			verifier: &stubVerifier{token: &auth.Token{
				UID:    "uid-1",
				Claims: map[string]interface{}{"email": "a@x.com"},
			}},
			wantStatus:   http.StatusOK,
			wantBody:     `{"ok":true}`,
			wantVerified: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, seenEmail := setupAuthTestRouter(tt.verifier)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.Equal(t, tt.wantVerified, tt.verifier.called)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "a@x.com", *seenEmail)
			}
		})
	}
}
