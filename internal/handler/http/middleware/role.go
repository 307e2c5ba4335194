package middleware

import (
	"net/http"

	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/user"
	"github.com/HuginnARaven/WorkerOnline-server/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

func requireRole(next http.Handler, roles ...user.Role) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "Insufficient permissions")
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.Forbidden(w, "Insufficient permissions")
			return
		}

		role := user.Role(roleStr)
		for _, allowed := range roles {
			if role == allowed {
				next.ServeHTTP(w, r)
				return
			}
		}
		response.Forbidden(w, "Insufficient permissions")
	})
}

// CompanyOnly restricts a route to company accounts.
func CompanyOnly(next http.Handler) http.Handler {
	return requireRole(next, user.RoleCompany)
}

// WorkerOnly restricts a route to worker accounts.
func WorkerOnly(next http.Handler) http.Handler {
	return requireRole(next, user.RoleWorker)
}

// AdminOnly restricts a route to admin accounts.
func AdminOnly(next http.Handler) http.Handler {
	return requireRole(next, user.RoleAdmin)
}
