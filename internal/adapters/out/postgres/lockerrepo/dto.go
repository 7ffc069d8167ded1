// Package lockerrepo provides data transfer objects and mapping functions
// for locker persistence. It covers the locker aggregate and its
// append-only audit log.
package lockerrepo

import (
	"time"

	"lockerfleet/internal/core/domain/model/kernel"
	"lockerfleet/internal/core/domain/model/locker"

	"github.com/google/uuid"
)

// LockerDTO represents the database structure for persisting locker
// aggregates. The box index is unique within a cabinet; hardware events
// address boxes by it.
type LockerDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CabinetID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_lockers_cabinet_box"`
	ExternalID  string    `gorm:"type:varchar(64)"`
	BoxIndex    int       `gorm:"type:int;not null;uniqueIndex:idx_lockers_cabinet_box"`
	Status      int       `gorm:"type:int;not null"`
	Maintenance int       `gorm:"type:int;not null"`
	TempMode    string    `gorm:"type:varchar(64)"`
	Comment     string    `gorm:"type:text"`
	ThermoMode  int       `gorm:"type:int;not null"`
}

// TableName overrides GORM's default naming to use "lockers".
func (LockerDTO) TableName() string {
	return "lockers"
}

// LockerLogDTO represents one row of the locker audit trail. The status,
// maintenance and temp-mode columns are nullable; a row records only the
// axes the originating update touched.
type LockerLogDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	LockerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CabinetID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Status       *int      `gorm:"type:int"`
	Maintenance  *int      `gorm:"type:int"`
	TempMode     *string   `gorm:"type:varchar(64)"`
	Comment      string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"not null"`
	ExtCreatedAt time.Time `gorm:"not null;index"`
}

// TableName overrides GORM's default naming to use "locker_logs".
func (LockerLogDTO) TableName() string {
	return "locker_logs"
}

func fromDomain(l *locker.Locker) LockerDTO {
	return LockerDTO{
		ID:          l.ID().Bytes(),
		CabinetID:   l.CabinetID().Bytes(),
		ExternalID:  l.ExternalID(),
		BoxIndex:    l.Index(),
		Status:      int(l.Status()),
		Maintenance: int(l.Maintenance()),
		TempMode:    string(l.TempMode()),
		Comment:     l.Comment(),
		ThermoMode:  l.ThermoMode(),
	}
}

func toDomain(dto LockerDTO) (*locker.Locker, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	cabinetID, err := kernel.UUIDFromBytes(dto.CabinetID[:])
	if err != nil {
		return nil, err
	}

	return locker.RestoreLocker(
		id,
		cabinetID,
		dto.ExternalID,
		dto.BoxIndex,
		locker.Status(dto.Status),
		locker.Maintenance(dto.Maintenance),
		locker.TempMode(dto.TempMode),
		dto.Comment,
		dto.ThermoMode,
	)
}

func logFromDomain(entry *locker.Log) LockerLogDTO {
	var status *int
	if entry.Status() != nil {
		raw := int(*entry.Status())
		status = &raw
	}

	var maintenance *int
	if entry.Maintenance() != nil {
		raw := int(*entry.Maintenance())
		maintenance = &raw
	}

	var tempMode *string
	if entry.TempMode() != nil {
		raw := string(*entry.TempMode())
		tempMode = &raw
	}

	return LockerLogDTO{
		ID:           entry.ID().Bytes(),
		LockerID:     entry.LockerID().Bytes(),
		CabinetID:    entry.CabinetID().Bytes(),
		Status:       status,
		Maintenance:  maintenance,
		TempMode:     tempMode,
		Comment:      entry.Comment(),
		CreatedAt:    entry.CreatedAt(),
		ExtCreatedAt: entry.ExtCreatedAt(),
	}
}

func logToDomain(dto LockerLogDTO) (*locker.Log, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	lockerID, err := kernel.UUIDFromBytes(dto.LockerID[:])
	if err != nil {
		return nil, err
	}

	cabinetID, err := kernel.UUIDFromBytes(dto.CabinetID[:])
	if err != nil {
		return nil, err
	}

	var status *locker.Status
	if dto.Status != nil {
		raw := locker.Status(*dto.Status)
		status = &raw
	}

	var maintenance *locker.Maintenance
	if dto.Maintenance != nil {
		raw := locker.Maintenance(*dto.Maintenance)
		maintenance = &raw
	}

	var tempMode *locker.TempMode
	if dto.TempMode != nil {
		raw := locker.TempMode(*dto.TempMode)
		tempMode = &raw
	}

	return locker.RestoreLog(
		id,
		lockerID,
		cabinetID,
		status,
		maintenance,
		tempMode,
		dto.Comment,
		dto.CreatedAt,
		dto.ExtCreatedAt,
	)
}
