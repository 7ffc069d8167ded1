// Package routerepo provides read-only persistence adapters for routes,
// stores and time-bounded route versions. This data is owned by the route
// planning system; the fleet never writes it.
package routerepo

import (
	"time"

	"lockerfleet/internal/core/domain/model/kernel"
	"lockerfleet/internal/core/domain/model/route"

	"github.com/google/uuid"
)

// RouteDTO represents the database structure of pickup routes.
type RouteDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	StoreID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name    string    `gorm:"type:varchar(255);not null"`
}

// TableName overrides GORM's default naming to use "routes".
func (RouteDTO) TableName() string {
	return "routes"
}

// StoreDTO represents the database structure of fulfillment stores.
type StoreDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(255);not null"`
}

// TableName overrides GORM's default naming to use "stores".
func (StoreDTO) TableName() string {
	return "stores"
}

// RouteVersionDTO represents a time-bounded revision of a route. A null
// valid_until means the revision is open-ended.
type RouteVersionDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RouteID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name       string     `gorm:"type:varchar(255)"`
	ValidFrom  time.Time  `gorm:"index"`
	ValidUntil *time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "route_versions".
func (RouteVersionDTO) TableName() string {
	return "route_versions"
}

// RouteVersionCabinetDTO joins route versions to the cabinets they serve.
type RouteVersionCabinetDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	RouteVersionID uuid.UUID `gorm:"type:uuid;not null;index"`
	CabinetID      uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName overrides GORM's default naming to use "route_version_cabinets".
func (RouteVersionCabinetDTO) TableName() string {
	return "route_version_cabinets"
}

func routeToDomain(dto RouteDTO) (*route.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return nil, err
	}

	return route.NewRoute(id, storeID, dto.Name)
}

func storeToDomain(dto StoreDTO) (*route.Store, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return route.NewStore(id, dto.Name)
}

func versionToDomain(dto RouteVersionDTO) (*route.Version, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	routeID, err := kernel.UUIDFromBytes(dto.RouteID[:])
	if err != nil {
		return nil, err
	}

	return route.NewVersion(id, routeID, dto.Name, dto.ValidFrom, dto.ValidUntil)
}
