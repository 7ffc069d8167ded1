package queries

import (
	"context"
	"log/slog"
	"time"

	"lockerfleet/internal/core/domain/model/kernel"
	"lockerfleet/internal/core/domain/model/locker"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCabinetLockerLogsQueryHandler retrieves the day-ranged audit rows of
// a cabinet's lockers. Rows that fail domain reconstruction are logged
// and skipped so one corrupted row cannot empty the whole listing.
type GetCabinetLockerLogsQueryHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGetCabinetLockerLogsQueryHandler creates a handler for the cabinet
// audit listing.
func NewGetCabinetLockerLogsQueryHandler(db *gorm.DB, logger *slog.Logger) GetCabinetLockerLogsQueryHandler {
	return GetCabinetLockerLogsQueryHandler{
		db:     db,
		logger: logger.With("component", "cabinet_locker_logs_query"),
	}
}

// Handle executes the query. The range is inclusive on both ends and
// evaluated against each row's external timestamp.
func (h GetCabinetLockerLogsQueryHandler) Handle(
	ctx context.Context,
	query GetCabinetLockerLogsQuery,
) ([]LockerLogResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rangeStart := query.From().Start()
	rangeEnd := query.To().AddDays(1).Start()

	sql := `
		SELECT id, locker_id, cabinet_id, status, maintenance, temp_mode, comment, created_at, ext_created_at
		FROM locker_logs
		WHERE cabinet_id = ? AND ext_created_at >= ? AND ext_created_at < ?
	`
	args := []any{query.CabinetID().Bytes(), rangeStart, rangeEnd}
	if query.TempMode() != "" {
		sql += " AND temp_mode = ?"
		args = append(args, query.TempMode())
	}
	sql += " ORDER BY ext_created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]LockerLogResponse, 0)

	for rows.Next() {
		var id, lockerID, cabinetID uuid.UUID
		var status, maintenance *int
		var tempMode *string
		var comment string
		var createdAt, extCreatedAt time.Time

		err = rows.Scan(&id, &lockerID, &cabinetID, &status, &maintenance, &tempMode,
			&comment, &createdAt, &extCreatedAt)
		if err != nil {
			return nil, err
		}

		entry, restoreErr := restoreLogRow(id, lockerID, cabinetID, status, maintenance, tempMode,
			comment, createdAt, extCreatedAt)
		if restoreErr != nil {
			h.logger.ErrorContext(ctx, "skipping unreadable locker log row",
				"logId", id.String(), "error", restoreErr)
			continue
		}

		result = append(result, logToResponse(entry))
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func restoreLogRow(
	id, lockerID, cabinetID uuid.UUID,
	status, maintenance *int,
	tempMode *string,
	comment string,
	createdAt, extCreatedAt time.Time,
) (*locker.Log, error) {
	logID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}

	lID, err := kernel.UUIDFromBytes(lockerID[:])
	if err != nil {
		return nil, err
	}

	cID, err := kernel.UUIDFromBytes(cabinetID[:])
	if err != nil {
		return nil, err
	}

	var logStatus *locker.Status
	if status != nil {
		raw := locker.Status(*status)
		logStatus = &raw
	}

	var logMaintenance *locker.Maintenance
	if maintenance != nil {
		raw := locker.Maintenance(*maintenance)
		logMaintenance = &raw
	}

	var logTempMode *locker.TempMode
	if tempMode != nil {
		raw := locker.TempMode(*tempMode)
		logTempMode = &raw
	}

	return locker.RestoreLog(logID, lID, cID, logStatus, logMaintenance, logTempMode,
		comment, createdAt, extCreatedAt)
}
