package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"penguin-pet/internal/ports/auth"

	"github.com/stretchr/testify/assert"
)

type stubVerifier struct {
	valid map[string]string
}

func (v stubVerifier) Verify(_ context.Context, token string) (auth.Claims, error) {
	uid, ok := v.valid[token]
	if !ok {
		return auth.Claims{}, errors.New("bad token")
	}
	return auth.Claims{UserID: uid}, nil
}

func runAuth(t *testing.T, opts AuthOptions, verifier auth.AuthVerifier, mutate func(*http.Request)) (string, bool) {
	t.Helper()

	var gotUID string
	var gotOK bool
	h := AuthContext(verifier, opts)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUID, gotOK = UserID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/pet", nil)
	mutate(req)
	h.ServeHTTP(httptest.NewRecorder(), req)
	return gotUID, gotOK
}

func TestAuthContext_Cookie(t *testing.T) {
	v := stubVerifier{valid: map[string]string{"tok": "u1"}}
	uid, ok := runAuth(t, AuthOptions{CookieName: "penguin_session"}, v, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: "penguin_session", Value: "tok"})
	})
	assert.True(t, ok)
	assert.Equal(t, "u1", uid)
}

func TestAuthContext_Bearer(t *testing.T) {
	v := stubVerifier{valid: map[string]string{"tok": "u2"}}
	uid, ok := runAuth(t, AuthOptions{CookieName: "penguin_session"}, v, func(r *http.Request) {
		r.Header.Set("Authorization", "bearer tok")
	})
	assert.True(t, ok)
	assert.Equal(t, "u2", uid)
}

func TestAuthContext_InvalidTokenIsAnonymous(t *testing.T) {
	v := stubVerifier{valid: map[string]string{}}
	_, ok := runAuth(t, AuthOptions{CookieName: "penguin_session"}, v, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: "penguin_session", Value: "forged"})
	})
	assert.False(t, ok)
}

func TestAuthContext_DevHeaderOnlyWhenEnabled(t *testing.T) {
	set := func(r *http.Request) { r.Header.Set(DebugUserHeader, "dev-user") }

	_, ok := runAuth(t, AuthOptions{}, nil, set)
	assert.False(t, ok)

	uid, ok := runAuth(t, AuthOptions{DevHeader: true}, nil, set)
	assert.True(t, ok)
	assert.Equal(t, "dev-user", uid)
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "", bearerToken("Basic abc"))
	assert.Equal(t, "", bearerToken("Bearer"))
	assert.Equal(t, "", bearerToken(""))
}
