package middleware

import (
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/hr-admin-go/internal/domain/user"
	"github.com/cmlabs-hris/hr-admin-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/jwt"
)

// RequirePermission checks if user has specific permission
func RequirePermission(permission user.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, err := jwt.PrincipalFromContext(r.Context())
			if err != nil {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s'", permission))
				return
			}

			if !principal.Can(permission) {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s', but user role is '%s'", permission, principal.Role))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireEmployee guards self-service routes: the caller must be linked to an employee record.
func RequireEmployee(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, err := jwt.PrincipalFromContext(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if !principal.HasEmployee() {
			response.HandleError(w, user.ErrNoEmployeeProfile)
			return
		}

		next.ServeHTTP(w, r)
	})
}
