package middleware

import (
	"context"
	"net/http"

	"github.com/stylehub/order-service/internal/entities"
	"github.com/stylehub/order-service/pkg/utils"
)

// Identity headers set by the API gateway after it terminates the session
// token. The service trusts them and never re-derives the identity.
const (
	headerUserID   = "X-User-Id"
	headerUserRole = "X-User-Role"
)

type actorKey struct{}

// Authenticate requires a gateway-supplied identity on the request and
// stores it in the context as an entities.Actor.
func Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(headerUserID)
		if id == "" {
			utils.WriteError(w, "authentication required", http.StatusUnauthorized)
			return
		}

		role := r.Header.Get(headerUserRole)
		if role == "" {
			role = entities.RoleCustomer
		}

		ctx := context.WithValue(r.Context(), actorKey{}, entities.Actor{ID: id, Role: role})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin rejects non-admin actors. It must run after Authenticate.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ActorFromContext(r.Context())
		if !ok {
			utils.WriteError(w, "authentication required", http.StatusUnauthorized)
			return
		}
		if actor.Role != entities.RoleAdmin {
			utils.WriteError(w, "admin access required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func ActorFromContext(ctx context.Context) (entities.Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(entities.Actor)
	return actor, ok
}
