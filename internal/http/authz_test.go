package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lojabase/internal/auth"
)

var protectedRoutes = []struct{ method, path string }{
	{http.MethodGet, "/produtos"},
	{http.MethodPost, "/produtos"},
	{http.MethodPut, "/produtos/abc"},
	{http.MethodDelete, "/produtos/abc"},
	{http.MethodGet, "/clientes"},
	{http.MethodPut, "/clientes/abc"},
	{http.MethodDelete, "/clientes/abc"},
}

func TestGatewayMissingToken(t *testing.T) {
	a := newTestApp(t)
	for _, r := range protectedRoutes {
		status, body := a.call(t, r.method, r.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, status, "%s %s", r.method, r.path)
		assert.Equal(t, "Acesso negado, Token não fornecido.", decode[map[string]string](t, body)["erro"])
	}
}

func TestGatewayNonBearerHeaderCountsAsMissing(t *testing.T) {
	a := newTestApp(t)
	for _, h := range []string{"Basic YWxhZGRpbjpvcGVuc2VzYW1l", "Bearer", "token-without-scheme"} {
		req := httptest.NewRequest(http.MethodGet, "/produtos", nil)
		req.Header.Set("Authorization", h)
		resp, err := a.app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, h)
	}
}

func TestGatewayInvalidToken(t *testing.T) {
	a := newTestApp(t)

	foreign, err := auth.NewTokenService("some-other-secret")
	require.NoError(t, err)
	forged, err := foreign.Issue("cust-1", "ana@x.com")
	require.NoError(t, err)

	own, err := auth.NewTokenService(testSecret)
	require.NoError(t, err)
	expired, err := own.WithClock(func() time.Time { return time.Now().Add(-3 * time.Hour) }).Issue("cust-1", "ana@x.com")
	require.NoError(t, err)

	for name, tok := range map[string]string{"malformed": "not.a.jwt", "forged": forged, "expired": expired} {
		for _, r := range protectedRoutes {
			status, body := a.call(t, r.method, r.path, tok, nil)
			assert.Equal(t, http.StatusForbidden, status, "%s: %s %s", name, r.method, r.path)
			assert.Equal(t, "Token invalido ou expirado.", decode[map[string]string](t, body)["erro"])
		}
	}
}

func TestGatewayDoesNotReachHandler(t *testing.T) {
	a := newTestApp(t)
	token := a.login(t, "Ana", "ana@x.com", "secret")

	status, body := a.call(t, http.MethodPost, "/produtos", "", map[string]any{"nome": "NES", "descricao": "console", "preco": 10})
	require.Equal(t, http.StatusUnauthorized, status, string(body))

	status, body = a.call(t, http.MethodGet, "/produtos", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(body))
}
