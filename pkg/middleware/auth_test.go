package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"resource-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "middleware-test-secret"

func signToken(t *testing.T, secret, role string, ttl time.Duration) string {
	t.Helper()

	token, err := utils.CreateToken(secret, utils.Identity{
		ID:    uuid.New(),
		Name:  "Ali Raza",
		Email: "ali@itu.edu.pk",
		Role:  role,
	}, ttl)
	require.NoError(t, err)
	return token
}

// adminChain is the stack every admin route runs behind.
func adminChain(next http.Handler) http.Handler {
	log := zap.NewNop()
	return Authenticate(testSecret, log)(RequireRole(log, "ADMIN")(next))
}

func TestAuthenticateMissingToken(t *testing.T) {
	called := false
	handler := adminChain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	handler := adminChain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	for _, header := range []string{"Bearer", "Token abc", "Bearer a b"} {
		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestAuthenticateRejectsForgedToken(t *testing.T) {
	called := false
	handler := adminChain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	token := signToken(t, "some-other-secret", "ADMIN", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
}

func TestAuthenticateRejectsExpiredToken(t *testing.T) {
	handler := adminChain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	token := signToken(t, testSecret, "ADMIN", -time.Minute)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthenticateAttachesIdentity(t *testing.T) {
	var seen utils.Identity
	log := zap.NewNop()
	handler := Authenticate(testSecret, log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := utils.GetIdentityFromContext(r.Context())
		require.True(t, ok)
		seen = identity
	}))

	token := signToken(t, testSecret, "USER", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Ali Raza", seen.Name)
	assert.Equal(t, "ali@itu.edu.pk", seen.Email)
	assert.Equal(t, "USER", seen.Role)
}

func TestRequireRoleBlocksUserOnAdminRoute(t *testing.T) {
	called := false
	handler := adminChain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	token := signToken(t, testSecret, "USER", time.Hour)

	req := httptest.NewRequest(http.MethodPatch, "/api/bookings/some-id/status", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
}

func TestRequireRoleAllowsAdmin(t *testing.T) {
	called := false
	handler := adminChain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	token := signToken(t, testSecret, "ADMIN", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestRequireRoleWithoutAuthenticate(t *testing.T) {
	// RequireRole finds no identity when Authenticate never ran.
	handler := RequireRole(zap.NewNop(), "ADMIN")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCORSPinsConfiguredOrigin(t *testing.T) {
	handler := CORS("http://localhost:3000")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/resources", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	preflight := httptest.NewRequest(http.MethodOptions, "/api/resources", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, preflight)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
