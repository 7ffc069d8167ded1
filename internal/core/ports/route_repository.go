package ports

import (
	"context"

	"lockerfleet/internal/core/domain/model/kernel"
	"lockerfleet/internal/core/domain/model/route"
)

// RouteRepository provides lookups for routes and their stores. Routes are
// owned by the route planning system; the fleet only reads them.
type RouteRepository interface {
	// GetRoute retrieves a route by its unique identifier.
	GetRoute(ctx context.Context, id kernel.UUID) (*route.Route, error)

	// GetStore retrieves a store by its unique identifier.
	GetStore(ctx context.Context, id kernel.UUID) (*route.Store, error)
}

// RouteVersionRepository provides lookups for time-bounded route revisions.
type RouteVersionRepository interface {
	// GetVersion retrieves a route version by its unique identifier.
	GetVersion(ctx context.Context, id kernel.UUID) (*route.Version, error)

	// GetVersionsByCabinet retrieves all route versions servicing a
	// cabinet through the version-cabinet join.
	GetVersionsByCabinet(ctx context.Context, cabinetID kernel.UUID) ([]*route.Version, error)
}
