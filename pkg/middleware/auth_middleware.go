package middleware

import (
	"context"
	"net/http"
	"strings"

	"auth-service/internal/domain"
	"auth-service/pkg/jwtutil"
	"auth-service/pkg/response"
	"auth-service/pkg/xerrors"
)

type contextKey string

// ContextUser carries the resolved account. Only Require populates it;
// handlers never assemble it themselves.
const ContextUser contextKey = "auth_user"

// UserResolver maps a verified token identity back to a stored account.
type UserResolver interface {
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
}

type AuthMiddleware struct {
	verifier *jwtutil.Manager
	users    UserResolver
}

func NewAuthMiddleware(verifier *jwtutil.Manager, users UserResolver) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, users: users}
}

// The Authorization header takes precedence over the session cookie.
func extractToken(r *http.Request) string {
	if authHeader := r.Header.Get("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	if cookie, err := r.Cookie(CookieName); err == nil {
		return cookie.Value
	}
	return ""
}

// Require rejects the request unless a valid token resolves to a stored
// account, then injects that account into the request context.
func (am *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r)
		if token == "" {
			response.Error(w, http.StatusUnauthorized, xerrors.ErrNoToken.Error())
			return
		}

		claims, err := am.verifier.ParseAndValidate(token)
		if err != nil {
			response.Error(w, http.StatusUnauthorized, xerrors.ErrInvalidToken.Error())
			return
		}

		user, err := am.users.GetUserByID(r.Context(), claims.UserID)
		if err != nil {
			response.Error(w, http.StatusUnauthorized, xerrors.ErrTokenUser.Error())
			return
		}

		ctx := context.WithValue(r.Context(), ContextUser, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserFromContext retrieves the account placed by Require.
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	u, ok := ctx.Value(ContextUser).(*domain.User)
	return u, ok
}
