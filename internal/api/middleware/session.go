package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/irikhenry/topbreeze/internal/session"
)

// CookieName is the session cookie the storefront SPA carries.
const CookieName = "tb_session"

type contextKey string

const sessionContextKey contextKey = "session"

// respondError writes a JSON error response
func respondError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// Session resolves the visitor session from the signed cookie, creating
// a fresh session (and setting a new cookie) when the cookie is missing,
// invalid, expired, or points at an evicted session. Handlers behind this
// middleware can always assume a session is present.
func Session(tokens *session.TokenService, sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sess *session.Session

			if cookie, err := r.Cookie(CookieName); err == nil {
				if sid, err := tokens.Validate(cookie.Value); err == nil {
					if s, ok := sessions.Get(sid); ok {
						sess = s
					}
				}
			}

			if sess == nil {
				sess = sessions.Create()
				token, expires, err := tokens.Generate(sess.ID)
				if err != nil {
					respondError(w, "could not establish session", http.StatusInternalServerError)
					return
				}
				http.SetCookie(w, &http.Cookie{
					Name:     CookieName,
					Value:    token,
					Path:     "/",
					Expires:  expires,
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), sessionContextKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSession retrieves the visitor session from the request context.
func GetSession(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(sessionContextKey).(*session.Session)
	return sess, ok
}
