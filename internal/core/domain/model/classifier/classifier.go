// Package classifier models the shared key/value dictionary used for
// display texts of locker and cabinet state keys.
package classifier

import (
	"errors"

	"lockerfleet/internal/core/domain/model/kernel"
	"lockerfleet/internal/pkg/errs"
	"lockerfleet/internal/pkg/guard"
)

// LockerStateParentKey is the classifier group holding all locker state
// entries.
const LockerStateParentKey = "LOCKER_STATE"

// Package-flow keys describe parcel movement rather than locker health.
// They are filtered out of operational state listings.
const (
	PackageNotLoadedKey = "LOCKER_STATE_PACKAGE_NOT_LOADED"
	PackageLoadedKey    = "LOCKER_STATE_PACKAGE_LOADED"
	PackageCollectedKey = "LOCKER_STATE_PACKAGE_COLLECTED"
	PackageEmptyKey     = "LOCKER_STATE_PACKAGE_EMPTY"
	PackageNotEmptyKey  = "LOCKER_STATE_PACKAGE_NOT_EMPTY"
)

func getPackageFlowKeys() map[string]struct{} {
	return map[string]struct{}{
		PackageNotLoadedKey: {},
		PackageLoadedKey:    {},
		PackageCollectedKey: {},
		PackageEmptyKey:     {},
		PackageNotEmptyKey:  {},
	}
}

// IsPackageFlowKey reports whether the key belongs to the parcel-movement
// subset of locker state keys.
func IsPackageFlowKey(key string) bool {
	_, ok := getPackageFlowKeys()[key]
	return ok
}

// ErrClassifierIsNotConstructed is returned when a Classifier was not
// created via NewClassifier.
var ErrClassifierIsNotConstructed = errors.New("Classifier must be created via NewClassifier")

// Classifier is one dictionary entry: a machine key with its display value,
// optionally nested under a parent entry.
type Classifier struct {
	id       kernel.UUID
	parentID *kernel.UUID
	key      string
	value    string

	guard guard.ConstructorGuard
}

// NewClassifier creates a dictionary entry. parentID may be nil for root
// entries.
func NewClassifier(id kernel.UUID, parentID *kernel.UUID, key, value string) (*Classifier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if parentID != nil {
		if err := parentID.Validate(); err != nil {
			return nil, err
		}
	}
	if key == "" {
		return nil, errs.NewValueIsRequiredError("key")
	}

	return &Classifier{
		id:       id,
		parentID: parentID,
		key:      key,
		value:    value,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Classifier was created through its constructor.
func (c *Classifier) Validate() error {
	if c == nil {
		return ErrClassifierIsNotConstructed
	}
	return c.guard.Validate(ErrClassifierIsNotConstructed)
}

// ID returns the entry's unique identifier.
func (c *Classifier) ID() kernel.UUID { return c.id }

// ParentID returns the parent entry, or nil for root entries.
func (c *Classifier) ParentID() *kernel.UUID { return c.parentID }

// Key returns the machine key.
func (c *Classifier) Key() string { return c.key }

// Value returns the display value.
func (c *Classifier) Value() string { return c.value }
