// Package classifierrepo provides a read-only persistence adapter for the
// classifier dictionary backing status display texts.
package classifierrepo

import (
	"context"
	"errors"

	"lockerfleet/internal/core/domain/model/classifier"
	"lockerfleet/internal/core/domain/model/kernel"
	"lockerfleet/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassifierDTO represents one dictionary entry. Entries form a one-level
// hierarchy: state keys hang under a parent group key.
type ClassifierDTO struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ParentID *uuid.UUID `gorm:"type:uuid;index"`
	Key      string     `gorm:"type:varchar(128);not null;uniqueIndex"`
	Value    string     `gorm:"type:varchar(255);not null"`
}

// TableName overrides GORM's default naming to use "classifiers".
func (ClassifierDTO) TableName() string {
	return "classifiers"
}

func toDomain(dto ClassifierDTO) (*classifier.Classifier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var parentID *kernel.UUID
	if dto.ParentID != nil {
		pID, parentErr := kernel.UUIDFromBytes((*dto.ParentID)[:])
		if parentErr != nil {
			return nil, parentErr
		}
		parentID = &pID
	}

	return classifier.NewClassifier(id, parentID, dto.Key, dto.Value)
}

// GormClassifierRepository implements ClassifierRepository using GORM.
type GormClassifierRepository struct {
	db *gorm.DB
}

// NewGormClassifierRepository creates a new GORM classifier repository.
func NewGormClassifierRepository(db *gorm.DB) *GormClassifierRepository {
	return &GormClassifierRepository{db: db}
}

// GetByKey retrieves one dictionary entry by its machine key.
func (r *GormClassifierRepository) GetByKey(ctx context.Context, key string) (*classifier.Classifier, error) {
	if key == "" {
		return nil, errs.NewValueIsRequiredError("key")
	}

	var dto ClassifierDTO
	if err := r.db.WithContext(ctx).First(&dto, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("classifier", key)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetChildrenOf retrieves all entries nested under the entry with the
// given key, ordered by key.
func (r *GormClassifierRepository) GetChildrenOf(ctx context.Context, parentKey string) ([]*classifier.Classifier, error) {
	if parentKey == "" {
		return nil, errs.NewValueIsRequiredError("parentKey")
	}

	var dtos []ClassifierDTO
	if err := r.db.WithContext(ctx).
		Table("classifiers").
		Select("classifiers.*").
		Joins("JOIN classifiers parents ON parents.id = classifiers.parent_id").
		Where("parents.key = ?", parentKey).
		Order("classifiers.key").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]*classifier.Classifier, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, c)
	}

	return entries, nil
}
