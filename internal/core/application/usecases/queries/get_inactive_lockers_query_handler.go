package queries

import (
	"context"

	"lockerfleet/internal/core/domain/model/kernel"
	"lockerfleet/internal/core/domain/model/locker"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetInactiveLockersQueryHandler retrieves the out-of-service locker
// listing from the database. A locker appears here when its operational
// status is anything but active; the route and store columns come from
// the version currently serving its cabinet, if any.
type GetInactiveLockersQueryHandler struct {
	db    *gorm.DB
	clock kernel.Clock
}

// NewGetInactiveLockersQueryHandler creates a handler for the
// out-of-service locker listing.
func NewGetInactiveLockersQueryHandler(db *gorm.DB, clock kernel.Clock) GetInactiveLockersQueryHandler {
	return GetInactiveLockersQueryHandler{db: db, clock: clock}
}

// Handle executes the query. Rows are ordered by cabinet name, then box
// index.
func (h GetInactiveLockersQueryHandler) Handle(
	ctx context.Context,
	query GetInactiveLockersQuery,
) ([]GetInactiveLockersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	lockers := make([]GetInactiveLockersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			l.id,
			l.cabinet_id,
			c.name AS cabinet_name,
			l.box_index,
			l.comment,
			COALESCE(NULLIF(cls.value, ''), l.temp_mode) AS state_value,
			COALESCE(r.name, '') AS route_name,
			COALESCE(s.name, '') AS store_name,
			(SELECT COUNT(*) FROM locker_logs ll WHERE ll.locker_id = l.id) AS log_count
		FROM lockers l
		JOIN cabinets c ON c.id = l.cabinet_id AND c.deleted_at IS NULL
		LEFT JOIN classifiers cls ON cls.key = l.temp_mode
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
		WHERE l.status <> ?
		ORDER BY c.name, l.box_index
	`, now, now, int(locker.StatusActive)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetInactiveLockersQueryResponse
		var id, cabinetID uuid.UUID

		err = rows.Scan(
			&id,
			&cabinetID,
			&row.CabinetName,
			&row.BoxIndex,
			&row.Comment,
			&row.StateValue,
			&row.RouteName,
			&row.StoreName,
			&row.LogCount,
		)
		if err != nil {
			return nil, err
		}

		lockerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.ID = lockerID

		cID, idErr := kernel.UUIDFromBytes(cabinetID[:])
		if idErr != nil {
			return nil, idErr
		}
		row.CabinetID = cID

		lockers = append(lockers, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lockers, nil
}
