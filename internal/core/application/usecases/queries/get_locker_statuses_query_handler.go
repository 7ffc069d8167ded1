package queries

import (
	"context"

	"lockerfleet/internal/core/domain/model/classifier"
	"lockerfleet/internal/core/ports"
)

// GetLockerStatusesQueryHandler lists the locker states under the
// LOCKER_STATE dictionary group, minus the package-flow states the
// hardware drives on its own.
type GetLockerStatusesQueryHandler struct {
	classifiers ports.ClassifierRepository
}

// NewGetLockerStatusesQueryHandler creates a handler for the settable
// locker state listing.
func NewGetLockerStatusesQueryHandler(classifiers ports.ClassifierRepository) GetLockerStatusesQueryHandler {
	return GetLockerStatusesQueryHandler{classifiers: classifiers}
}

// Handle retrieves and filters the dictionary entries.
func (h GetLockerStatusesQueryHandler) Handle(
	ctx context.Context,
	query GetLockerStatusesQuery,
) ([]LockerStatusResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries, err := h.classifiers.GetChildrenOf(ctx, classifier.LockerStateParentKey)
	if err != nil {
		return nil, err
	}

	result := make([]LockerStatusResponse, 0, len(entries))
	for _, entry := range entries {
		if classifier.IsPackageFlowKey(entry.Key()) {
			continue
		}
		result = append(result, LockerStatusResponse{
			Key:   entry.Key(),
			Value: entry.Value(),
		})
	}

	return result, nil
}
