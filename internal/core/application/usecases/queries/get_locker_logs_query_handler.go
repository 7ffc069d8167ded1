package queries

import (
	"context"

	"lockerfleet/internal/core/ports"
)

// GetLockerLogsQueryHandler retrieves one locker's audit trail. It reads
// through the log repository rather than raw SQL because the changed-value
// projection is domain logic on the log row, not a stored column.
type GetLockerLogsQueryHandler struct {
	logs ports.LockerLogRepository
}

// NewGetLockerLogsQueryHandler creates a handler for the locker audit
// trail.
func NewGetLockerLogsQueryHandler(logs ports.LockerLogRepository) GetLockerLogsQueryHandler {
	return GetLockerLogsQueryHandler{logs: logs}
}

// Handle retrieves the audit rows, newest first.
func (h GetLockerLogsQueryHandler) Handle(
	ctx context.Context,
	query GetLockerLogsQuery,
) ([]LockerLogResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries, err := h.logs.GetByLocker(ctx, query.LockerID())
	if err != nil {
		return nil, err
	}

	result := make([]LockerLogResponse, 0, len(entries))
	for _, entry := range entries {
		result = append(result, logToResponse(entry))
	}

	return result, nil
}
