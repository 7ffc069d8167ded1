// Package route models delivery routes and their time-bounded revisions.
// A route's versions gate which time slots a cabinet may offer: a slot is
// only bookable while its governing route version is valid.
package route

import (
	"errors"

	"lockerfleet/internal/core/domain/model/kernel"
	"lockerfleet/internal/pkg/guard"
)

// ErrRouteIsNotConstructed is returned when a Route instance was not
// created through NewRoute.
var ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute")

// Route is the physical delivery route serving one or more cabinets. The
// route itself carries no temporal data; validity lives on its versions.
type Route struct {
	id      kernel.UUID
	storeID kernel.UUID
	name    string

	guard guard.ConstructorGuard
}

// NewRoute creates a route operated from the given store.
func NewRoute(id, storeID kernel.UUID, name string) (*Route, error) {
	if err := errors.Join(id.Validate(), storeID.Validate()); err != nil {
		return nil, err
	}

	return &Route{
		id:      id,
		storeID: storeID,
		name:    name,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Route was created through its constructor.
func (r *Route) Validate() error {
	if r == nil {
		return ErrRouteIsNotConstructed
	}
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

// ID returns the route's unique identifier.
func (r *Route) ID() kernel.UUID { return r.id }

// StoreID returns the operating store's identifier.
func (r *Route) StoreID() kernel.UUID { return r.storeID }

// Name returns the display name.
func (r *Route) Name() string { return r.name }

// Store is the retail location a route is fulfilled from.
type Store struct {
	id   kernel.UUID
	name string
}

// NewStore creates a store.
func NewStore(id kernel.UUID, name string) (*Store, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return &Store{id: id, name: name}, nil
}

// ID returns the store's unique identifier.
func (s *Store) ID() kernel.UUID { return s.id }

// Name returns the display name.
func (s *Store) Name() string { return s.name }
