package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blogspace-api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, userID string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	echo := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(middleware.UserIDKey)})
	}
	r.GET("/required", middleware.AuthRequired(testSecret), echo)
	r.GET("/optional", middleware.AuthOptional(testSecret), echo)
	return r
}

func do(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequired(t *testing.T) {
	r := testRouter()

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"no token", "", http.StatusUnauthorized},
		{"malformed header", "Token abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + signToken(t, "other-secret", "u1"), http.StatusUnauthorized},
		{"valid token", "Bearer " + signToken(t, testSecret, "u1"), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, "/required", tt.header)
			if w.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestAuthRequiredRejectsExpiredToken(t *testing.T) {
	r := testRouter()
	claims := jwt.MapClaims{
		"user_id": "u1",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	w := do(r, "/required", "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for expired token, got %d", w.Code)
	}
}

func TestAuthOptional(t *testing.T) {
	r := testRouter()

	// Anonymous requests pass through without a user id.
	w := do(r, "/optional", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 without token, got %d", w.Code)
	}

	// Invalid tokens are ignored, not rejected.
	w = do(r, "/optional", "Bearer not-a-jwt")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with bad token, got %d", w.Code)
	}

	// Valid tokens attach the caller's id.
	w = do(r, "/optional", "Bearer "+signToken(t, testSecret, "u42"))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid token, got %d", w.Code)
	}
	if body := w.Body.String(); body != `{"user_id":"u42"}` {
		t.Errorf("unexpected body %s", body)
	}
}
