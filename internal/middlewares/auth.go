package middlewares

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-hydroponics/internal/jwt"
	"github.com/sbilibin2017/gw-hydroponics/internal/logger"
)

//go:generate mockgen -source=auth.go -destination=mock_auth_test.go -package=middlewares

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// RevocationChecker reports whether a token id was revoked by logout.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthMiddleware validates the bearer token, rejects revoked tokens and
// stores the token claims in the request context.
// A nil revocations skips the revocation check.
func AuthMiddleware(tokener Tokener, revocations RevocationChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Warnw("authorization failed", "err", err)
				unauthorized(w, err)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Warnw("authorization failed", "err", err)
				unauthorized(w, err)
				return
			}

			if revocations != nil && claims.TokenID != "" {
				revoked, err := revocations.IsRevoked(ctx, claims.TokenID)
				if err != nil {
					logger.Log.Errorw("failed to check token revocation", "err", err)
					writeError(w, http.StatusInternalServerError, "Internal server error")
					return
				}
				if revoked {
					logger.Log.Warnw("revoked token used", "user_id", claims.UserID, "token_id", claims.TokenID)
					unauthorized(w, jwt.ErrInvalidToken)
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(jwt.WithClaims(ctx, claims)))
		})
	}
}

func unauthorized(w http.ResponseWriter, err error) {
	msg := "Invalid token."
	if errors.Is(err, jwt.ErrMissingHeader) {
		msg = "Authentication credentials were not provided."
	}
	w.Header().Set("WWW-Authenticate", `Bearer realm="api"`)
	writeError(w, http.StatusUnauthorized, msg)
}
