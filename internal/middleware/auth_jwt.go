package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"aidhub/internal/auth"
	"aidhub/internal/domain"
)

type actorKey struct{}

// TokenVerifier validates bearer tokens.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// UserLookup resolves the subject of a verified token.
type UserLookup interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Denied writes an error response for a request rejected by a middleware.
type Denied func(w http.ResponseWriter, r *http.Request, err error)

// AuthJWT requires a valid bearer token for an existing user and stores the
// actor in the request context. The role comes from the database.
func AuthJWT(tokens TokenVerifier, users UserLookup, deny Denied) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				deny(w, r, fmt.Errorf("%w: missing authorization", domain.ErrUnauthenticated))
				return
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
				deny(w, r, fmt.Errorf("%w: invalid authorization", domain.ErrUnauthenticated))
				return
			}
			claims, err := tokens.Verify(strings.TrimSpace(parts[1]))
			if err != nil {
				deny(w, r, fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err))
				return
			}
			id, err := claims.UserID()
			if err != nil {
				deny(w, r, fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err))
				return
			}
			user, err := users.GetByID(r.Context(), id)
			if errors.Is(err, domain.ErrNotFound) {
				deny(w, r, fmt.Errorf("%w: user no longer exists", domain.ErrUnauthenticated))
				return
			}
			if err != nil {
				deny(w, r, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(ContextWithActor(r.Context(), user.Actor())))
		})
	}
}

// RequireRole rejects authenticated actors whose role is not role.
func RequireRole(role domain.Role, deny Denied) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := ActorFromContext(r.Context())
			if !ok {
				deny(w, r, domain.ErrUnauthenticated)
				return
			}
			if actor.Role != role {
				deny(w, r, fmt.Errorf("%w: only %ss may use this endpoint", domain.ErrForbidden, role))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func ActorFromContext(ctx context.Context) (domain.Actor, bool) {
	a, ok := ctx.Value(actorKey{}).(domain.Actor)
	return a, ok
}

func ContextWithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}
