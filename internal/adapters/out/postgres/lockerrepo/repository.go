package lockerrepo

import (
	"context"
	"errors"
	"strconv"

	"lockerfleet/internal/core/domain/model/kernel"
	"lockerfleet/internal/core/domain/model/locker"
	"lockerfleet/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormLockerRepository implements LockerRepository using GORM.
type GormLockerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormLockerRepository creates a new GORM locker repository.
func NewGormLockerRepository(db *gorm.DB, tracker aggregateTracker) *GormLockerRepository {
	return &GormLockerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new locker to the database.
func (r *GormLockerRepository) Add(ctx context.Context, aggregate *locker.Locker) error {
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

// Update saves an existing locker to the database.
func (r *GormLockerRepository) Update(ctx context.Context, aggregate *locker.Locker) error {
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

// Get retrieves a locker by ID.
func (r *GormLockerRepository) Get(ctx context.Context, id kernel.UUID) (*locker.Locker, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LockerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("locker", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByExternalID retrieves a locker by its terminal platform identifier.
func (r *GormLockerRepository) GetByExternalID(ctx context.Context, externalID string) (*locker.Locker, error) {
	if externalID == "" {
		return nil, errs.NewValueIsRequiredError("externalId")
	}

	var dto LockerDTO
	if err := r.db.WithContext(ctx).First(&dto, "external_id = ?", externalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("locker", externalID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCabinetAndIndex resolves a locker from a hardware box report.
func (r *GormLockerRepository) GetByCabinetAndIndex(ctx context.Context, cabinetID kernel.UUID, index int) (*locker.Locker, error) {
	if err := cabinetID.Validate(); err != nil {
		return nil, err
	}

	var dto LockerDTO
	if err := r.db.WithContext(ctx).
		First(&dto, "cabinet_id = ? AND box_index = ?", cabinetID.Bytes(), index).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("locker", cabinetID.String()+"/"+strconv.Itoa(index))
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByCabinet retrieves all lockers of a cabinet ordered by box index.
func (r *GormLockerRepository) GetAllByCabinet(ctx context.Context, cabinetID kernel.UUID) ([]*locker.Locker, error) {
	if err := cabinetID.Validate(); err != nil {
		return nil, err
	}

	var dtos []LockerDTO
	if err := r.db.WithContext(ctx).
		Where("cabinet_id = ?", cabinetID.Bytes()).
		Order("box_index").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllWithStatusNot retrieves all lockers whose operational status
// differs from the given one, across cabinets.
func (r *GormLockerRepository) GetAllWithStatusNot(ctx context.Context, status locker.Status) ([]*locker.Locker, error) {
	var dtos []LockerDTO
	if err := r.db.WithContext(ctx).
		Where("status <> ?", int(status)).
		Order("cabinet_id, box_index").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func toDomainAll(dtos []LockerDTO) ([]*locker.Locker, error) {
	lockers := make([]*locker.Locker, 0, len(dtos))
	for _, dto := range dtos {
		l, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		lockers = append(lockers, l)
	}
	return lockers, nil
}

// GormLockerLogRepository implements LockerLogRepository using GORM.
// The log is append-only; this repository never updates or deletes rows.
type GormLockerLogRepository struct {
	db *gorm.DB
}

// NewGormLockerLogRepository creates a new GORM locker log repository.
func NewGormLockerLogRepository(db *gorm.DB) *GormLockerLogRepository {
	return &GormLockerLogRepository{db: db}
}

// Add appends an audit row.
func (r *GormLockerLogRepository) Add(ctx context.Context, entry *locker.Log) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := logFromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByLocker retrieves all audit rows of a locker, newest first.
func (r *GormLockerLogRepository) GetByLocker(ctx context.Context, lockerID kernel.UUID) ([]*locker.Log, error) {
	if err := lockerID.Validate(); err != nil {
		return nil, err
	}

	return r.find(ctx, "locker_id = ?", lockerID.Bytes())
}

// GetByCabinet retrieves all audit rows of a cabinet's lockers, newest
// first.
func (r *GormLockerLogRepository) GetByCabinet(ctx context.Context, cabinetID kernel.UUID) ([]*locker.Log, error) {
	if err := cabinetID.Validate(); err != nil {
		return nil, err
	}

	return r.find(ctx, "cabinet_id = ?", cabinetID.Bytes())
}

// CountByLocker reports how many audit rows a locker has accumulated.
func (r *GormLockerLogRepository) CountByLocker(ctx context.Context, lockerID kernel.UUID) (int64, error) {
	if err := lockerID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&LockerLogDTO{}).
		Where("locker_id = ?", lockerID.Bytes()).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (r *GormLockerLogRepository) find(ctx context.Context, cond string, arg any) ([]*locker.Log, error) {
	var dtos []LockerLogDTO
	if err := r.db.WithContext(ctx).
		Where(cond, arg).
		Order("ext_created_at DESC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]*locker.Log, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := logToDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
