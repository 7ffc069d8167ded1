// Package cabinetrepo provides data transfer objects and mapping functions
// for cabinet persistence. It implements the repository pattern for the
// cabinet aggregate and its append-only status log.
package cabinetrepo

import (
	"time"

	"lockerfleet/internal/core/domain/model/cabinet"
	"lockerfleet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CabinetDTO represents the database structure for persisting cabinet
// aggregates. Cabinets are soft-deleted; listing queries exclude rows with
// a non-null deleted_at.
type CabinetDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ExternalID  string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	SecondaryID string    `gorm:"type:varchar(64)"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Address     string    `gorm:"type:varchar(512);not null"`
	Description string    `gorm:"type:text"`
	Status      int       `gorm:"type:int;not null"`
	MaxOrders   int       `gorm:"type:int;not null"`
	Fee         decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	DeletedAt   gorm.DeletedAt  `gorm:"index"`
}

// TableName overrides GORM's default naming to use "cabinets".
func (CabinetDTO) TableName() string {
	return "cabinets"
}

// CabinetLogDTO represents one row of the cabinet status audit trail.
// Rows are write-once.
type CabinetLogDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CabinetID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserID       *uuid.UUID `gorm:"type:uuid"`
	Status       int        `gorm:"type:int;not null"`
	CreatedAt    time.Time  `gorm:"not null"`
	ExtCreatedAt time.Time  `gorm:"not null;index"`
}

// TableName overrides GORM's default naming to use "cabinet_logs".
func (CabinetLogDTO) TableName() string {
	return "cabinet_logs"
}

func fromDomain(c *cabinet.Cabinet) CabinetDTO {
	return CabinetDTO{
		ID:          c.ID().Bytes(),
		ExternalID:  c.ExternalID(),
		SecondaryID: c.SecondaryID(),
		Name:        c.Name(),
		Address:     c.Address(),
		Description: c.Description(),
		Status:      int(c.Status()),
		MaxOrders:   c.MaxOrders(),
		Fee:         c.Fee(),
	}
}

func toDomain(dto CabinetDTO) (*cabinet.Cabinet, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return cabinet.RestoreCabinet(
		id,
		dto.ExternalID,
		dto.SecondaryID,
		dto.Name,
		dto.Address,
		dto.Description,
		cabinet.Status(dto.Status),
		dto.MaxOrders,
		dto.Fee,
	)
}

func logFromDomain(entry *cabinet.Log) CabinetLogDTO {
	var userID *uuid.UUID
	if entry.UserID() != nil {
		raw := entry.UserID().Bytes()
		userID = &raw
	}

	return CabinetLogDTO{
		ID:           entry.ID().Bytes(),
		CabinetID:    entry.CabinetID().Bytes(),
		UserID:       userID,
		Status:       int(entry.Status()),
		CreatedAt:    entry.CreatedAt(),
		ExtCreatedAt: entry.ExtCreatedAt(),
	}
}

func logToDomain(dto CabinetLogDTO) (*cabinet.Log, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	cabinetID, err := kernel.UUIDFromBytes(dto.CabinetID[:])
	if err != nil {
		return nil, err
	}

	var userID *kernel.UUID
	if dto.UserID != nil {
		uID, userErr := kernel.UUIDFromBytes((*dto.UserID)[:])
		if userErr != nil {
			return nil, userErr
		}
		userID = &uID
	}

	return cabinet.RestoreLog(
		id,
		cabinetID,
		userID,
		cabinet.Status(dto.Status),
		dto.CreatedAt,
		dto.ExtCreatedAt,
	)
}
