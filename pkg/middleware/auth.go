package middleware

import (
	"net/http"
	"strings"

	"movie-tracker/internal/data/repository"
	"movie-tracker/pkg/utils"

	"go.uber.org/zap"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "session_token"

// AuthSession validates the session cookie (or a Bearer token for API
// clients) and puts the authenticated user id into the request context.
// The cookie value is HMAC-signed with SECRET_KEY; forged cookies are
// rejected before the database is consulted.
func AuthSession(sessionRepo repository.SessionRepository, secretKey string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := extractToken(r, secretKey, logger)
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			session, err := sessionRepo.FindValidByToken(r.Context(), token)
			if err != nil {
				logger.Error("Failed to validate session", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if session == nil {
				logger.Warn("Invalid or expired session")
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			ctx := utils.SetUserContext(r.Context(), session.UserID)
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken pulls the session token from the signed cookie, falling back
// to an Authorization Bearer header for cookie-less API clients.
func extractToken(r *http.Request, secretKey string, logger *zap.Logger) (string, bool) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		token, err := utils.VerifySessionToken(cookie.Value, secretKey)
		if err != nil {
			logger.Warn("Rejected session cookie", zap.Error(err))
			return "", false
		}
		return token, true
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}
