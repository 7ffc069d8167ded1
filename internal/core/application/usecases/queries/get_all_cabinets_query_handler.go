package queries

import (
	"context"

	"lockerfleet/internal/core/domain/model/cabinet"
	"lockerfleet/internal/core/domain/model/kernel"
	"lockerfleet/internal/core/domain/model/locker"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllCabinetsQueryHandler retrieves the cabinet overview listing from
// the database. Uses direct SQL for optimal read performance in the CQRS
// pattern; the route and store names come from the version currently
// serving the cabinet, if any.
type GetAllCabinetsQueryHandler struct {
	db    *gorm.DB
	clock kernel.Clock
}

// NewGetAllCabinetsQueryHandler creates a handler for the cabinet
// listing. The clock determines which route version counts as currently
// active.
func NewGetAllCabinetsQueryHandler(db *gorm.DB, clock kernel.Clock) GetAllCabinetsQueryHandler {
	return GetAllCabinetsQueryHandler{db: db, clock: clock}
}

// Handle executes the query. Returns one row per non-deleted cabinet
// sorted by name.
func (h GetAllCabinetsQueryHandler) Handle(
	ctx context.Context,
	query GetAllCabinetsQuery,
) ([]GetAllCabinetsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	cabinets := make([]GetAllCabinetsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.external_id,
			c.name,
			c.address,
			c.description,
			c.status,
			(SELECT COUNT(*) FROM lockers l WHERE l.cabinet_id = c.id) AS locker_count,
			(SELECT COUNT(*) FROM lockers l WHERE l.cabinet_id = c.id AND l.status <> ?) AS error_count,
			COALESCE(r.name, '') AS route_name,
			COALESCE(s.name, '') AS store_name,
			COALESCE(cls.value, '') AS status_value
		FROM cabinets c
		LEFT JOIN LATERAL (
			SELECT rv.route_id
			FROM route_version_cabinets rvc
			JOIN route_versions rv ON rv.id = rvc.route_version_id
			WHERE rvc.cabinet_id = c.id
				AND rv.valid_from::date <= ?::date
				AND (rv.valid_until IS NULL OR rv.valid_until::date >= ?::date)
			ORDER BY rv.valid_from DESC
			LIMIT 1
		) active ON TRUE
		LEFT JOIN routes r ON r.id = active.route_id
		LEFT JOIN stores s ON s.id = r.store_id
		LEFT JOIN classifiers cls ON cls.key = CASE WHEN c.status = ? THEN ? ELSE ? END
		WHERE c.deleted_at IS NULL
		ORDER BY c.name
	`,
		int(locker.StatusActive),
		now, now,
		int(cabinet.StatusActive),
		cabinet.StatusActive.Key(), cabinet.StatusInactive.Key(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetAllCabinetsQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&row.ExternalID,
			&row.Name,
			&row.Address,
			&row.Description,
			&status,
			&row.LockerCount,
			&row.ErrorCount,
			&row.RouteName,
			&row.StoreName,
			&row.StatusValue,
		)
		if err != nil {
			return nil, err
		}

		cabinetID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.ID = cabinetID
		row.StatusKey = cabinet.Status(status).Key()
		cabinets = append(cabinets, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return cabinets, nil
}
