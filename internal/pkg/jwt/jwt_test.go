package jwt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/hrsaas/timesheet-backend/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	token, expiresAt, err := svc.GenerateAccessToken("u-1", "u1@acme.test", "c-1", user.RoleAdmin)
	require.NoError(t, err)
	assert.Greater(t, expiresAt, time.Now().Unix())

	var got Claims
	handler := jwtauth.Verifier(svc.JWTAuth())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, err = FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.NoError(t, err)
	assert.Equal(t, Claims{UserID: "u-1", Email: "u1@acme.test", CompanyID: "c-1", Role: user.RoleAdmin}, got)
	assert.True(t, got.IsAdmin())
}

func TestFromContext_MissingClaims(t *testing.T) {
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)

	_, err := FromContext(context.Background())
	assert.Error(t, err)

	ctx, err := NewContext(context.Background(), ja, Claims{CompanyID: "c-1"})
	require.NoError(t, err)
	_, err = FromContext(ctx)
	assert.ErrorIs(t, err, ErrMissingClaims)

	ctx, err = NewContext(context.Background(), ja, Claims{UserID: "u-1"})
	require.NoError(t, err)
	_, err = FromContext(ctx)
	assert.ErrorIs(t, err, user.ErrCompanyIDRequired)
}

func TestClaims_IsAdmin(t *testing.T) {
	assert.True(t, Claims{Role: user.RoleSysAdmin}.IsAdmin())
	assert.True(t, Claims{Role: user.RoleAdmin}.IsAdmin())
	assert.False(t, Claims{Role: user.RoleUser}.IsAdmin())
	assert.False(t, Claims{}.IsAdmin())
}
