package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/shashiranjanraj/laziz/pkg/auth"
	"github.com/shashiranjanraj/laziz/pkg/response"
)

type claimsKey struct{}

// AdminOnly guards the back-office routes: it requires a valid bearer token
// whose role claim is "admin". The parsed claims are stored in the request
// context for handlers that want the admin's email.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" {
			response.Unauthorized(w)
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil || claims.Role != "admin" {
			response.Unauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFromCtx returns the admin claims stored by AdminOnly, if any.
func ClaimsFromCtx(ctx context.Context) (*auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(*auth.Claims)
	return c, ok
}
