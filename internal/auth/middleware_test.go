package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The gate must reject before the handler runs: a failed request leaves no
// trace in nextCalled.
func callGate(t *testing.T, j *JWT, authHeader string) (*httptest.ResponseRecorder, bool, uint64) {
	t.Helper()

	var nextCalled bool
	var gotUID uint64
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		gotUID, _ = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/activities", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	RequireAuth(j)(next).ServeHTTP(rr, req)
	return rr, nextCalled, gotUID
}

func TestRequireAuthBindsUserID(t *testing.T) {
	j := NewJWT("test-secret")
	token, err := j.Sign(7)
	require.NoError(t, err)

	rr, called, uid := callGate(t, j, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, called)
	assert.Equal(t, uint64(7), uid)
}

func TestRequireAuthMissingHeader(t *testing.T) {
	rr, called, _ := callGate(t, NewJWT("test-secret"), "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, called)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
}

func TestRequireAuthNonBearerHeader(t *testing.T) {
	rr, called, _ := callGate(t, NewJWT("test-secret"), "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, called)
}

func TestRequireAuthTamperedToken(t *testing.T) {
	j := NewJWT("test-secret")
	token, err := j.Sign(7)
	require.NoError(t, err)

	rr, called, _ := callGate(t, j, "Bearer "+token+"x")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, called)
}

func TestRequireAuthExpiredToken(t *testing.T) {
	secret := "test-secret"
	claims := jwt.MapClaims{
		"sub": uint64(7),
		"exp": time.Now().Add(-time.Minute).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	rr, called, _ := callGate(t, NewJWT(secret), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, called)
}
