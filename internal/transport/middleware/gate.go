package middleware

import (
	"net/http"

	"github.com/heartmarshall/wordassist-backend/pkg/ctxutil"
)

// Authenticated sends anonymous requests to the login surface instead of
// failing them.
func Authenticated(loginPath string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ctxutil.IdentityFromCtx(r.Context()); !ok {
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly soft-denies non-administrators: they are redirected to the
// standard landing surface and never learn the route exists. Anonymous
// requests go to the login surface.
func AdminOnly(loginPath, landingPath string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := ctxutil.IdentityFromCtx(r.Context())
			if !ok {
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}
			if !id.IsAdmin() {
				http.Redirect(w, r, landingPath, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
