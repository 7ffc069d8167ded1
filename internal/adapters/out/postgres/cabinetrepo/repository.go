package cabinetrepo

import (
	"context"
	"errors"

	"lockerfleet/internal/core/domain/model/cabinet"
	"lockerfleet/internal/core/domain/model/kernel"
	"lockerfleet/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormCabinetRepository implements CabinetRepository using GORM.
type GormCabinetRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormCabinetRepository creates a new GORM cabinet repository.
func NewGormCabinetRepository(db *gorm.DB, tracker aggregateTracker) *GormCabinetRepository {
	return &GormCabinetRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new cabinet to the database.
func (r *GormCabinetRepository) Add(ctx context.Context, aggregate *cabinet.Cabinet) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing cabinet to the database.
func (r *GormCabinetRepository) Update(ctx context.Context, aggregate *cabinet.Cabinet) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a cabinet by ID. Soft-deleted cabinets are not found.
func (r *GormCabinetRepository) Get(ctx context.Context, id kernel.UUID) (*cabinet.Cabinet, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CabinetDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cabinet", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByExternalID retrieves a cabinet by its terminal platform identifier.
func (r *GormCabinetRepository) GetByExternalID(ctx context.Context, externalID string) (*cabinet.Cabinet, error) {
	if externalID == "" {
		return nil, errs.NewValueIsRequiredError("externalId")
	}

	var dto CabinetDTO
	if err := r.db.WithContext(ctx).First(&dto, "external_id = ?", externalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cabinet", externalID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves all non-deleted cabinets in active status,
// ordered by name.
func (r *GormCabinetRepository) GetAllActive(ctx context.Context) ([]*cabinet.Cabinet, error) {
	var dtos []CabinetDTO
	if err := r.db.WithContext(ctx).
		Where("status = ?", int(cabinet.StatusActive)).
		Order("name").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	cabinets := make([]*cabinet.Cabinet, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		cabinets = append(cabinets, c)
	}

	return cabinets, nil
}

// Delete soft-deletes a cabinet. The row stays in storage with deleted_at
// set and disappears from every query.
func (r *GormCabinetRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&CabinetDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cabinet", id.String())
	}

	return nil
}

// GormCabinetLogRepository implements CabinetLogRepository using GORM.
// The log is append-only; this repository never updates or deletes rows.
type GormCabinetLogRepository struct {
	db *gorm.DB
}

// NewGormCabinetLogRepository creates a new GORM cabinet log repository.
func NewGormCabinetLogRepository(db *gorm.DB) *GormCabinetLogRepository {
	return &GormCabinetLogRepository{db: db}
}

// Add appends an audit row.
func (r *GormCabinetLogRepository) Add(ctx context.Context, entry *cabinet.Log) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := logFromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByCabinet retrieves all audit rows of a cabinet, newest first.
func (r *GormCabinetLogRepository) GetByCabinet(ctx context.Context, cabinetID kernel.UUID) ([]*cabinet.Log, error) {
	if err := cabinetID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CabinetLogDTO
	if err := r.db.WithContext(ctx).
		Where("cabinet_id = ?", cabinetID.Bytes()).
		Order("ext_created_at DESC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]*cabinet.Log, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := logToDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
