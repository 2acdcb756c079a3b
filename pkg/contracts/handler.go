package contracts

import (
	"context"

	"github.com/julienschmidt/httprouter"
)

type Handler interface {
	RegisterRoutes(*httprouter.Router)
}

// AdminGuard decides whether a caller may use admin routes.
type AdminGuard interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
	// RequireAdmin returns the caller's user id, or a 401 for anonymous
	// callers and a 403 for callers that are not admins.
	RequireAdmin(ctx context.Context) (string, error)
}
