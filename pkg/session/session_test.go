package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/laziz/pkg/session"
)

func handlerCapturingID(got *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got = session.FromCtx(r).ID()
	})
}

func TestMiddlewareIssuesCookieOnFirstRequest(t *testing.T) {
	opts := session.DefaultOptions()
	var id string
	h := session.Middleware(opts)(handlerCapturingID(&id))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotEmpty(t, id)

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == opts.CookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie, "identity cookie not set")
	assert.Equal(t, id, cookie.Value, "cookie must carry the id handlers see")
	assert.True(t, cookie.HttpOnly)
}

func TestMiddlewareKeepsIdentityAcrossRequests(t *testing.T) {
	opts := session.DefaultOptions()
	var id string
	h := session.Middleware(opts)(handlerCapturingID(&id))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	first := id

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, first, id, "same cookie must resolve to the same identity")
}

func TestDistinctVisitorsGetDistinctIdentities(t *testing.T) {
	opts := session.DefaultOptions()
	var id string
	h := session.Middleware(opts)(handlerCapturingID(&id))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	first := id
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEqual(t, first, id)
}

func TestFromCtxWithoutMiddleware(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.NotEmpty(t, session.FromCtx(r).ID())
}
