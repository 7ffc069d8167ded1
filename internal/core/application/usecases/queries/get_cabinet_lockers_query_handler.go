package queries

import (
	"context"

	"lockerfleet/internal/core/domain/model/kernel"
	"lockerfleet/internal/core/domain/model/locker"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCabinetLockersQueryHandler retrieves the locker listing of one
// cabinet from the database.
type GetCabinetLockersQueryHandler struct {
	db *gorm.DB
}

// NewGetCabinetLockersQueryHandler creates a handler for the per-cabinet
// locker listing.
func NewGetCabinetLockersQueryHandler(db *gorm.DB) GetCabinetLockersQueryHandler {
	return GetCabinetLockersQueryHandler{db: db}
}

// Handle executes the query. Rows are ordered by box index; an unknown or
// deleted cabinet yields an empty slice.
func (h GetCabinetLockersQueryHandler) Handle(
	ctx context.Context,
	query GetCabinetLockersQuery,
) ([]GetCabinetLockersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	lockers := make([]GetCabinetLockersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			l.id,
			l.box_index,
			l.status,
			l.maintenance,
			l.temp_mode,
			COALESCE(NULLIF(cls.value, ''), l.temp_mode) AS state_value,
			l.comment,
			l.thermo_mode
		FROM lockers l
		JOIN cabinets c ON c.id = l.cabinet_id AND c.deleted_at IS NULL
		LEFT JOIN classifiers cls ON cls.key = l.temp_mode
		WHERE l.cabinet_id = ?
		ORDER BY l.box_index
	`, query.CabinetID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetCabinetLockersQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&row.BoxIndex,
			&status,
			&row.Maintenance,
			&row.TempMode,
			&row.StateValue,
			&row.Comment,
			&row.ThermoMode,
		)
		if err != nil {
			return nil, err
		}

		lockerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.ID = lockerID
		row.StatusKey = locker.Status(status).Key()

		lockers = append(lockers, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lockers, nil
}
