package middleware

import (
	"net/http"

	"github.com/HuginnARaven/WorkerOnline-server/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// IdentityFromRequest extracts the authenticated principal from the verified
// token in the request context. Handlers behind AuthRequired can rely on the
// second return value being true.
func IdentityFromRequest(r *http.Request) (jwt.Identity, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return jwt.Identity{}, false
	}
	return jwt.IdentityFromClaims(claims)
}
