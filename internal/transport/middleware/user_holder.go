package middleware

import (
	"context"

	"github.com/google/uuid"
)

// userHolder lets an outer middleware observe the user id that an inner Auth
// middleware resolved; contexts only flow inwards.
type userHolder struct {
	id  uuid.UUID
	set bool
}

type userHolderKey struct{}

func withUserHolder(ctx context.Context, h *userHolder) context.Context {
	return context.WithValue(ctx, userHolderKey{}, h)
}

func recordUser(ctx context.Context, id uuid.UUID) {
	if h, ok := ctx.Value(userHolderKey{}).(*userHolder); ok {
		h.id = id
		h.set = true
	}
}
