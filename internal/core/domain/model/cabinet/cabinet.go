package cabinet

import (
	"errors"
	"strings"

	"lockerfleet/internal/core/domain/model/kernel"
	"lockerfleet/internal/pkg/errs"
	"lockerfleet/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrCabinetIsNotConstructed is returned when a Cabinet instance was not
// created through NewCabinet or RestoreCabinet.
var ErrCabinetIsNotConstructed = errors.New("Cabinet must be created via NewCabinet or RestoreCabinet")

// Cabinet is a physical locker bank at a location. It is the aggregate
// root for the fleet: lockers reference it by identifier, audit rows are
// attributed to it, and time slot configurations bind delivery windows to
// it.
//
// Cabinet invariants:
//   - Must have a valid unique identifier
//   - Must carry the terminal platform's external identifier
//   - maxOrders must not be negative
//   - Status is a closed enumeration reconciled from hardware events
//
// Name, capacity, fee, and description are mutated by administrative edit;
// the operational status only through reconciliation. The address is owned
// by the terminal platform and never edited locally.
type Cabinet struct {
	id          kernel.UUID
	externalID  string
	secondaryID string
	name        string
	address     string
	description string
	status      Status
	maxOrders   int
	fee         decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCabinet creates an active cabinet registered under the terminal
// platform identifier externalID.
func NewCabinet(id kernel.UUID, externalID, name, address string) (*Cabinet, error) {
	c := &Cabinet{
		status: StatusActive,
		fee:    decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setExternalID(externalID),
	); err != nil {
		return nil, err
	}

	c.name = name
	c.address = address
	return c, nil
}

// RestoreCabinet reconstructs a cabinet from its persisted state.
func RestoreCabinet(
	id kernel.UUID,
	externalID, secondaryID, name, address, description string,
	status Status,
	maxOrders int,
	fee decimal.Decimal,
) (*Cabinet, error) {
	c := &Cabinet{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setExternalID(externalID),
		c.setStatus(status),
		c.setMaxOrders(maxOrders),
	); err != nil {
		return nil, err
	}

	c.secondaryID = secondaryID
	c.name = name
	c.address = address
	c.description = description
	c.fee = fee
	return c, nil
}

// Validate ensures the Cabinet was created through a constructor.
func (c *Cabinet) Validate() error {
	if c == nil {
		return ErrCabinetIsNotConstructed
	}
	return c.guard.Validate(ErrCabinetIsNotConstructed)
}

// ID returns the cabinet's unique identifier.
func (c *Cabinet) ID() kernel.UUID {
	return c.id
}

// ExternalID returns the terminal platform identifier.
func (c *Cabinet) ExternalID() string {
	return c.externalID
}

// SecondaryID returns the secondary business identifier.
func (c *Cabinet) SecondaryID() string {
	return c.secondaryID
}

// Name returns the display name.
func (c *Cabinet) Name() string {
	return c.name
}

// Address returns the physical address.
func (c *Cabinet) Address() string {
	return c.address
}

// Description returns the administrative description.
func (c *Cabinet) Description() string {
	return c.description
}

// Status returns the operational status.
func (c *Cabinet) Status() Status {
	return c.status
}

// MaxOrders returns the maximum number of concurrent orders.
func (c *Cabinet) MaxOrders() int {
	return c.maxOrders
}

// Fee returns the base delivery fee.
func (c *Cabinet) Fee() decimal.Decimal {
	return c.fee
}

// ReconcileStatus applies the terminal platform's deleted flag to the
// operational status. Reports whether the status changed, which is the
// signal for the caller to append an audit row; the cabinet is persisted
// afterward either way.
func (c *Cabinet) ReconcileStatus(deleted bool) (Status, bool) {
	newStatus := StatusFromDeleted(deleted)
	changed := newStatus != c.status
	c.status = newStatus
	return newStatus, changed
}

// UpdateDetails applies an administrative edit. Address and coordinates
// are owned by the terminal platform and deliberately not editable here.
func (c *Cabinet) UpdateDetails(name string, maxOrders int, fee decimal.Decimal, description string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if err := c.setMaxOrders(maxOrders); err != nil {
		return err
	}

	c.name = name
	c.fee = fee
	c.description = description
	return nil
}

// IsEqual compares two cabinets by identifier.
func (c *Cabinet) IsEqual(other *Cabinet) bool {
	return other != nil && c.id.IsEqual(other.id)
}

func (c *Cabinet) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Cabinet) setExternalID(externalID string) error {
	if strings.TrimSpace(externalID) == "" {
		return errs.NewValueIsRequiredError("externalId")
	}
	c.externalID = externalID
	return nil
}

func (c *Cabinet) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *Cabinet) setMaxOrders(maxOrders int) error {
	if maxOrders < 0 {
		return errs.NewValueIsInvalidError("maxOrders")
	}
	c.maxOrders = maxOrders
	return nil
}
