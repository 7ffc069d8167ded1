package queries

import (
	"context"

	"lockerfleet/internal/core/domain/model/cabinet"
	"lockerfleet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableCabinetsQueryHandler retrieves all active cabinets with a
// route version valid on the current calendar day. Validity is compared
// at day granularity, the same way route.Version.ActiveOn resolves it.
type GetAvailableCabinetsQueryHandler struct {
	db    *gorm.DB
	clock kernel.Clock
}

// NewGetAvailableCabinetsQueryHandler creates a handler for the
// deliverable cabinet listing.
func NewGetAvailableCabinetsQueryHandler(db *gorm.DB, clock kernel.Clock) GetAvailableCabinetsQueryHandler {
	return GetAvailableCabinetsQueryHandler{db: db, clock: clock}
}

// Handle executes the query. Returns cabinets sorted by name.
func (h GetAvailableCabinetsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableCabinetsQuery,
) ([]GetAvailableCabinetsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	cabinets := make([]GetAvailableCabinetsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT DISTINCT c.id, c.name, c.address
		FROM cabinets c
		JOIN route_version_cabinets rvc ON rvc.cabinet_id = c.id
		JOIN route_versions rv ON rv.id = rvc.route_version_id
		WHERE c.deleted_at IS NULL
			AND c.status = ?
			AND rv.valid_from::date <= ?::date
			AND (rv.valid_until IS NULL OR rv.valid_until::date >= ?::date)
		ORDER BY c.name
	`, int(cabinet.StatusActive), now, now).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetAvailableCabinetsQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &row.Name, &row.Address); err != nil {
			return nil, err
		}

		cabinetID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.ID = cabinetID
		cabinets = append(cabinets, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return cabinets, nil
}
