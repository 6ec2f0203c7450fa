package middlewares

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/unrolled/render"
	"github.com/yaarastore/backend/app/services"
)

type contextKey string

const ContextKeyClaims contextKey = "authClaims"

// JWTAuthMiddleware gates the admin routes behind a bearer token. The
// test environment bypasses verification entirely so the HTTP tests can
// exercise admin routes without minting tokens.
func JWTAuthMiddleware(authSvc *services.AuthService, appEnv string) func(http.Handler) http.Handler {
	rnd := render.New()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if appEnv == "test" {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				_ = rnd.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized - missing token"})
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := authSvc.VerifyToken(token)
			if err != nil {
				log.Printf("❌ Invalid token: %v", err)
				_ = rnd.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized - invalid token"})
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyClaims, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
