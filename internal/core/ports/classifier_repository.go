package ports

import (
	"context"

	"lockerfleet/internal/core/domain/model/classifier"
)

// ClassifierRepository provides read-only access to the key/value
// dictionary backing status display texts.
type ClassifierRepository interface {
	// GetByKey retrieves one dictionary entry by its machine key.
	GetByKey(ctx context.Context, key string) (*classifier.Classifier, error)

	// GetChildrenOf retrieves all entries nested under the entry with the
	// given key, e.g. every locker state key under LOCKER_STATE.
	GetChildrenOf(ctx context.Context, parentKey string) ([]*classifier.Classifier, error)
}
