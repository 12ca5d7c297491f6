package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DHRUV222222/CareerLift/internal/services"
)

func testTokens() services.TokenService {
	return services.TokenService{
		Secret:     []byte("test-secret"),
		Issuer:     "careerlift",
		AccessTTL:  time.Hour,
		RefreshTTL: 24 * time.Hour,
	}
}

func authedRequest(t *testing.T, tokens services.TokenService, flags services.ActorFlags) *http.Request {
	t.Helper()
	signed, _, err := tokens.CreateAccessToken("user-1", "a@b.c", flags)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	return req
}

func TestWithAuthPopulatesContext(t *testing.T) {
	tokens := testTokens()
	var gotUserID string
	var gotFlags services.ActorFlags
	handler := WithAuth(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = CurrentUserID(r)
		gotFlags = CurrentFlags(r)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(t, tokens, services.ActorFlags{IsStudent: true}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", gotUserID)
	assert.True(t, gotFlags.IsStudent)
	assert.False(t, gotFlags.IsMentor)
}

func TestWithAuthRejectsMissingHeader(t *testing.T) {
	handler := WithAuth(testTokens())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWithAuthRejectsRefreshToken(t *testing.T) {
	tokens := testTokens()
	signed, err := tokens.CreateRefreshToken("user-1")
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)

	handler := WithAuth(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoleMiddlewares(t *testing.T) {
	tokens := testTokens()
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	cases := []struct {
		name       string
		middleware func(http.Handler) http.Handler
		flags      services.ActorFlags
		want       int
	}{
		{"student allowed", RequireStudent, services.ActorFlags{IsStudent: true}, http.StatusOK},
		{"student denied", RequireStudent, services.ActorFlags{IsMentor: true}, http.StatusForbidden},
		{"mentor allowed", RequireMentor, services.ActorFlags{IsMentor: true}, http.StatusOK},
		{"mentor denied", RequireMentor, services.ActorFlags{IsStudent: true}, http.StatusForbidden},
		{"admin allowed", RequireAdmin, services.ActorFlags{IsAdmin: true}, http.StatusOK},
		{"admin denied", RequireAdmin, services.ActorFlags{IsStudent: true, IsMentor: true}, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := WithAuth(tokens)(tc.middleware(ok))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, authedRequest(t, tokens, tc.flags))
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}
