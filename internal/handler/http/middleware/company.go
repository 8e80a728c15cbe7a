package middleware

import (
	"net/http"

	"github.com/hrsaas/timesheet-backend/internal/handler/http/response"
	"github.com/hrsaas/timesheet-backend/internal/pkg/jwt"
)

// RequireCompany rejects tokens that carry no company, since every record is
// scoped to one.
func RequireCompany(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := jwt.FromContext(r.Context()); err != nil {
			response.HandleError(w, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}
