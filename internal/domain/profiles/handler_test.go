package profiles

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"penguin-pet/internal/middleware"
	"penguin-pet/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_PatchAndGet(t *testing.T) {
	now := at("2026-06-01T10:00:00Z")
	svc, _ := newTestService(&now, Defaults{})
	r := chi.NewRouter()
	RegisterRoutes(r, svc)

	do := func(method, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, "/profile", strings.NewReader(body))
		req = req.WithContext(middleware.WithClaims(req.Context(), auth.Claims{UserID: "u1"}))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	rec := do(http.MethodPatch, `{"displayName":"Ana","birthday":"1995-06-15"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got ProfileResponse
	require.NoError(t, json.Unmarshal(do(http.MethodGet, "").Body.Bytes(), &got))
	assert.Equal(t, "Ana", *got.DisplayName)
	assert.Equal(t, "1995-06-15", *got.Birthday)

	// fecha inválida se ignora
	rec = do(http.MethodPatch, `{"birthday":"not-a-date"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	got = ProfileResponse{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "1995-06-15", *got.Birthday)

	rec = do(http.MethodPatch, `{"birthday":null,"displayName":""}`)
	require.Equal(t, http.StatusOK, rec.Code)
	got = ProfileResponse{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Nil(t, got.Birthday)
	assert.Nil(t, got.DisplayName)

	// body no-JSON: patch vacío, nada cambia
	rec = do(http.MethodPatch, `{"displayName":"Ana"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(http.MethodPatch, `nope`)
	require.Equal(t, http.StatusOK, rec.Code)
	got = ProfileResponse{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.NotNil(t, got.DisplayName)
	assert.Equal(t, "Ana", *got.DisplayName)
}

func TestHandler_PatchIgnoresNonStringDisplayName(t *testing.T) {
	now := at("2026-06-01T10:00:00Z")
	svc, _ := newTestService(&now, Defaults{})
	r := chi.NewRouter()
	RegisterRoutes(r, svc)

	do := func(body string) ProfileResponse {
		req := httptest.NewRequest(http.MethodPatch, "/profile", strings.NewReader(body))
		req = req.WithContext(middleware.WithClaims(req.Context(), auth.Claims{UserID: "u1"}))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		var got ProfileResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		return got
	}

	do(`{"displayName":"Ana"}`)
	for _, body := range []string{`{"displayName":null}`, `{"displayName":42}`, `{"displayName":{"a":1}}`} {
		got := do(body)
		require.NotNil(t, got.DisplayName, body)
		assert.Equal(t, "Ana", *got.DisplayName, body)
	}
}

func TestParsePatch_NullDisplayNameNotSet(t *testing.T) {
	p := parsePatch(map[string]json.RawMessage{"displayName": json.RawMessage(" null ")})
	assert.False(t, p.DisplayName.Set)

	p = parsePatch(map[string]json.RawMessage{"birthday": json.RawMessage("null")})
	assert.True(t, p.Birthday.Set)
	assert.Nil(t, p.Birthday.Value)
}

func TestHandler_Unauthorized(t *testing.T) {
	now := at("2026-06-01T10:00:00Z")
	svc, _ := newTestService(&now, Defaults{})
	r := chi.NewRouter()
	RegisterRoutes(r, svc)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/profile", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
