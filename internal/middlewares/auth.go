package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-whiskey-collection/internal/jwt"
	"github.com/sbilibin2017/gw-whiskey-collection/internal/logger"
	"github.com/sbilibin2017/gw-whiskey-collection/internal/models"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=middlewares

// Tokener extracts and verifies the bearer token of a request.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// UserGetter resolves the identity a token was issued for.
type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

type authErrorResponse struct {
	Message string `json:"message"`
}

// AuthMiddleware rejects requests without a valid session token and attaches
// the resolved user to the request context. The user is looked up on every
// request; identities are never cached.
func AuthMiddleware(tokener Tokener, users UserGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				reject(w, http.StatusUnauthorized, "Authorization token required")
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Warnw("authorization failed", "err", err)
				switch {
				case errors.Is(err, jwt.ErrTokenExpired):
					reject(w, http.StatusUnauthorized, "Token expired")
				case errors.Is(err, jwt.ErrMalformedToken):
					reject(w, http.StatusUnauthorized, "Invalid token")
				default:
					reject(w, http.StatusInternalServerError, "Server error during authentication")
				}
				return
			}

			user, err := users.GetByID(ctx, claims.UserID)
			if err != nil {
				logger.Log.Errorw("authentication lookup failed", "userID", claims.UserID, "err", err)
				reject(w, http.StatusInternalServerError, "Server error during authentication")
				return
			}
			if user == nil {
				logger.Log.Warnw("token user not found", "userID", claims.UserID)
				reject(w, http.StatusUnauthorized, "User not found")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(ctx, user)))
		})
	}
}

func reject(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(authErrorResponse{Message: message})
}

type userContextKey struct{}

// WithUser returns a copy of ctx carrying the authenticated user.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// UserFromContext returns the authenticated user, or nil outside the auth middleware.
func UserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userContextKey{}).(*models.User)
	return user
}
