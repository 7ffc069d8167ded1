package route

import (
	"errors"
	"time"

	"lockerfleet/internal/core/domain/model/kernel"
	"lockerfleet/internal/pkg/errs"
	"lockerfleet/internal/pkg/guard"
)

// ErrVersionIsNotConstructed is returned when a Version instance was not
// created through NewVersion.
var ErrVersionIsNotConstructed = errors.New("Version must be created via NewVersion")

// Version is a time-bounded revision of a route. validFrom is inclusive
// and required; validUntil is inclusive and nil for an open-ended version.
//
// Multiple versions may exist per route. Under correct data only one is
// active on a given day, but nothing here assumes that: each version
// answers for itself and callers evaluate all versions independently.
type Version struct {
	id      kernel.UUID
	routeID kernel.UUID
	name    string

	validFrom  time.Time
	validUntil *time.Time

	guard guard.ConstructorGuard
}

// NewVersion creates a route version. A zero validFrom is accepted at
// construction so corrupted upstream rows can still be loaded and
// inspected; ActiveOn fails fast on them instead.
func NewVersion(id, routeID kernel.UUID, name string, validFrom time.Time, validUntil *time.Time) (*Version, error) {
	if err := errors.Join(id.Validate(), routeID.Validate()); err != nil {
		return nil, err
	}

	return &Version{
		id:         id,
		routeID:    routeID,
		name:       name,
		validFrom:  validFrom,
		validUntil: validUntil,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Version was created through its constructor.
func (v *Version) Validate() error {
	if v == nil {
		return ErrVersionIsNotConstructed
	}
	return v.guard.Validate(ErrVersionIsNotConstructed)
}

// ID returns the version's unique identifier.
func (v *Version) ID() kernel.UUID { return v.id }

// RouteID returns the owning route's identifier.
func (v *Version) RouteID() kernel.UUID { return v.routeID }

// Name returns the display name.
func (v *Version) Name() string { return v.name }

// ValidFrom returns the inclusive start of the validity window.
func (v *Version) ValidFrom() time.Time { return v.validFrom }

// ValidUntil returns the inclusive end of the validity window, or nil for
// an open-ended version.
func (v *Version) ValidUntil() *time.Time { return v.validUntil }

// ActiveOn reports whether the version is valid on the given calendar day.
//
// The version is active iff the day of validFrom is not after day, and
// validUntil is either absent or its day is not before day. Both bounds
// are truncated to day boundaries in the day's own time zone, so a
// version valid "until" any instant of a day covers that whole day.
//
// A missing validFrom is upstream data corruption and fails fast with a
// value-required error rather than guessing a default. A validUntil
// before validFrom is tolerated: the window is simply empty and the
// version is never active.
func (v *Version) ActiveOn(day kernel.Day) (bool, error) {
	if v.validFrom.IsZero() {
		return false, errs.NewValueIsRequiredError("validFrom")
	}

	loc := day.Start().Location()
	from := kernel.DayOf(v.validFrom, loc)
	if from.After(day) {
		return false, nil
	}
	if v.validUntil == nil {
		return true, nil
	}
	until := kernel.DayOf(*v.validUntil, loc)
	return !until.Before(day), nil
}

// VersionCabinets is the many-to-many join fixing which cabinets a route
// version services.
type VersionCabinets struct {
	id             kernel.UUID
	routeVersionID kernel.UUID
	cabinetID      kernel.UUID
}

// NewVersionCabinets creates a join row.
func NewVersionCabinets(id, routeVersionID, cabinetID kernel.UUID) (*VersionCabinets, error) {
	if err := errors.Join(id.Validate(), routeVersionID.Validate(), cabinetID.Validate()); err != nil {
		return nil, err
	}
	return &VersionCabinets{id: id, routeVersionID: routeVersionID, cabinetID: cabinetID}, nil
}

// ID returns the join row's unique identifier.
func (vc *VersionCabinets) ID() kernel.UUID { return vc.id }

// RouteVersionID returns the route version's identifier.
func (vc *VersionCabinets) RouteVersionID() kernel.UUID { return vc.routeVersionID }

// CabinetID returns the serviced cabinet's identifier.
func (vc *VersionCabinets) CabinetID() kernel.UUID { return vc.cabinetID }
