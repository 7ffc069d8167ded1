package queries

import (
	"context"
	"database/sql"
	"errors"

	"lockerfleet/internal/core/domain/model/cabinet"
	"lockerfleet/internal/core/domain/model/kernel"
	"lockerfleet/internal/core/domain/model/locker"
	"lockerfleet/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCabinetDetailsQueryHandler retrieves the detail read model of one
// cabinet from the database.
type GetCabinetDetailsQueryHandler struct {
	db    *gorm.DB
	clock kernel.Clock
}

// NewGetCabinetDetailsQueryHandler creates a handler for the cabinet
// detail view.
func NewGetCabinetDetailsQueryHandler(db *gorm.DB, clock kernel.Clock) GetCabinetDetailsQueryHandler {
	return GetCabinetDetailsQueryHandler{db: db, clock: clock}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when the
// cabinet does not exist or has been deleted.
func (h GetCabinetDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetCabinetDetailsQuery,
) (GetCabinetDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCabinetDetailsQueryResponse{}, err
	}

	now := h.clock.Now()
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.external_id,
			c.secondary_id,
			c.name,
			c.address,
			c.description,
			c.status,
			c.max_orders,
			c.fee::text,
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
		WHERE c.deleted_at IS NULL AND c.id = ?
	`,
		int(locker.StatusActive),
		now, now,
		int(cabinet.StatusActive),
		cabinet.StatusActive.Key(), cabinet.StatusInactive.Key(),
		query.CabinetID().Bytes(),
	).Row()

	var response GetCabinetDetailsQueryResponse
	var id uuid.UUID
	var status int

	err := row.Scan(
		&id,
		&response.ExternalID,
		&response.SecondaryID,
		&response.Name,
		&response.Address,
		&response.Description,
		&status,
		&response.MaxOrders,
		&response.Fee,
		&response.LockerCount,
		&response.ErrorCount,
		&response.RouteName,
		&response.StoreName,
		&response.StatusValue,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetCabinetDetailsQueryResponse{}, errs.NewObjectNotFoundError(
			"cabinetID", query.CabinetID().String())
	}
	if err != nil {
		return GetCabinetDetailsQueryResponse{}, err
	}

	cabinetID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetCabinetDetailsQueryResponse{}, err
	}
	response.ID = cabinetID
	response.StatusKey = cabinet.Status(status).Key()

	return response, nil
}
