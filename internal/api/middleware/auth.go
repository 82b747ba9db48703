package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/questparty/questparty-api/internal/api/shared"
	"github.com/questparty/questparty-api/internal/service/auth"
)

// Messages sent with 401 responses.
const (
	MsgAuthRequired  = "Authentication required"
	MsgInvalidFormat = "Invalid authorization format"
	MsgTokenExpired  = "Token expired"
	MsgInvalidToken  = "Invalid token"
)

// AuthMiddleware provides JWT authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// Authenticate validates the bearer token in the Authorization header and
// adds the caller's user ID to the request context. Every failure is a 401;
// the wrapped handler is never reached. Rejected tokens are logged at WARN.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			msg := MsgInvalidFormat
			if r.Header.Get("Authorization") == "" {
				msg = MsgAuthRequired
			}
			shared.RespondError(w, r, http.StatusUnauthorized, msg)
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			msg := MsgInvalidToken
			if errors.Is(err, auth.ErrExpiredToken) {
				msg = MsgTokenExpired
			}
			shared.RespondErrorAndLog(w, r, http.StatusUnauthorized, msg, err, shared.WithElevatedLogLevel())
			return
		}

		ctx := shared.WithUserID(r.Context(), claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" value.
// The scheme is matched case-insensitively.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", false
	}
	return token, true
}
