package routerepo

import (
	"context"
	"errors"

	"lockerfleet/internal/core/domain/model/kernel"
	"lockerfleet/internal/core/domain/model/route"
	"lockerfleet/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRouteRepository implements RouteRepository using GORM.
type GormRouteRepository struct {
	db *gorm.DB
}

// NewGormRouteRepository creates a new GORM route repository.
func NewGormRouteRepository(db *gorm.DB) *GormRouteRepository {
	return &GormRouteRepository{db: db}
}

// GetRoute retrieves a route by ID.
func (r *GormRouteRepository) GetRoute(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RouteDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("route", id.String())
		}
		return nil, err
	}

	return routeToDomain(dto)
}

// GetStore retrieves a store by ID.
func (r *GormRouteRepository) GetStore(ctx context.Context, id kernel.UUID) (*route.Store, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StoreDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("store", id.String())
		}
		return nil, err
	}

	return storeToDomain(dto)
}

// GormRouteVersionRepository implements RouteVersionRepository using GORM.
type GormRouteVersionRepository struct {
	db *gorm.DB
}

// NewGormRouteVersionRepository creates a new GORM route version
// repository.
func NewGormRouteVersionRepository(db *gorm.DB) *GormRouteVersionRepository {
	return &GormRouteVersionRepository{db: db}
}

// GetVersion retrieves a route version by ID.
func (r *GormRouteVersionRepository) GetVersion(ctx context.Context, id kernel.UUID) (*route.Version, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RouteVersionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("routeVersion", id.String())
		}
		return nil, err
	}

	return versionToDomain(dto)
}

// GetVersionsByCabinet retrieves all route versions servicing a cabinet,
// most recently valid first.
func (r *GormRouteVersionRepository) GetVersionsByCabinet(ctx context.Context, cabinetID kernel.UUID) ([]*route.Version, error) {
	if err := cabinetID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RouteVersionDTO
	if err := r.db.WithContext(ctx).
		Table("route_versions").
		Select("route_versions.*").
		Joins("JOIN route_version_cabinets ON route_version_cabinets.route_version_id = route_versions.id").
		Where("route_version_cabinets.cabinet_id = ?", cabinetID.Bytes()).
		Order("route_versions.valid_from DESC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	versions := make([]*route.Version, 0, len(dtos))
	for _, dto := range dtos {
		v, err := versionToDomain(dto)
		if err != nil {
			return nil, err
		}
		versions = append(versions, v)
	}

	return versions, nil
}
