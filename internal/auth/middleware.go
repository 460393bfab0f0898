package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Livia-11/Full-backend-swagger-documentation/internal/utils/response"
)

// RequireAuth returns middleware that verifies a bearer token before the
// wrapped handler runs. It is applied by the route table to every route
// except signup and login.
//
// Expected header:
//
//	Authorization: Bearer <token>
//
// Missing token  → 401 with "No token found".
// Invalid token  → 401 with the verification failure message.
//
// The gate never touches storage: a token is accepted purely on its
// signature, without checking that the embedded account still exists.
func RequireAuth(tokens *TokenService) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				slog.Debug("auth: no bearer token", slog.String("path", r.URL.Path))
				response.WriteJSON(w, http.StatusUnauthorized,
					response.GeneralError(errors.New("No token found")))
				return
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				slog.Debug("auth: token rejected",
					slog.String("path", r.URL.Path),
					slog.String("error", err.Error()))
				response.WriteJSON(w, http.StatusUnauthorized,
					response.GeneralError(err))
				return
			}

			slog.Debug("auth: token accepted",
				slog.String("path", r.URL.Path),
				slog.String("username", claims.Username))

			next(w, r)
		}
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. The second return value is false when the header is absent or
// not of bearer shape.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}

	return token, true
}
