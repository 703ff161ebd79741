package middleware

import (
	"context"
	"net/http"

	"ems/internal/requestctx"
)

// Actor records the acting admin's id from the X-Actor-ID header.
// Authentication itself is handled upstream of this service.
func Actor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actorID := r.Header.Get("X-Actor-ID")
		ctx := requestctx.WithActorID(r.Context(), actorID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetActorID(ctx context.Context) string {
	return requestctx.GetActorID(ctx)
}
