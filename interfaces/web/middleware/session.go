package middleware

import (
	"context"
	"net/http"
	"strings"

	"cmsadmin/application"
	"cmsadmin/logging"
)

// Authenticator resolves a session token to a caller. A nil caller means anonymous.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*application.Caller, error)
}

// Session attaches the authenticated caller to the request context.
// The token is read from an "Authorization: Bearer" header, then from the named cookie.
// Requests without a valid session continue anonymously.
func Session(auth Authenticator, cookieName string) func(http.Handler) http.Handler {
	logger := logging.Default().WithComponent("session")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := TokenFromRequest(r, cookieName)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			caller, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				logger.WithContext(r.Context()).Error("Session lookup failed", "error", err)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			if caller == nil {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(application.WithCaller(r.Context(), caller)))
		})
	}
}

// TokenFromRequest extracts the session token of a request.
func TokenFromRequest(r *http.Request, cookieName string) string {
	if header := r.Header.Get("Authorization"); header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
	}

	if cookieName != "" {
		if cookie, err := r.Cookie(cookieName); err == nil {
			return cookie.Value
		}
	}

	return ""
}
