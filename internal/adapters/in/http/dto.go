package http

import (
	"time"

	"lockerfleet/internal/core/application/usecases/queries"

	"github.com/oapi-codegen/runtime/types"
)

// Error is the uniform problem payload of every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Cabinet is one row of the cabinet listing.
type Cabinet struct {
	ID          string `json:"id"`
	ExternalID  string `json:"externalId"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`
	StatusKey   string `json:"statusKey"`
	StatusValue string `json:"statusValue"`
	LockerCount int    `json:"lockerCount"`
	ErrorCount  int    `json:"errorCount"`
	RouteName   string `json:"routeName"`
	StoreName   string `json:"storeName"`
}

// CabinetDetails is the full view of one cabinet, including the fields an
// administrator can edit.
type CabinetDetails struct {
	ID          string `json:"id"`
	ExternalID  string `json:"externalId"`
	SecondaryID string `json:"secondaryId"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`
	StatusKey   string `json:"statusKey"`
	StatusValue string `json:"statusValue"`
	MaxOrders   int    `json:"maxOrders"`
	Fee         string `json:"fee"`
	LockerCount int    `json:"lockerCount"`
	ErrorCount  int    `json:"errorCount"`
	RouteName   string `json:"routeName"`
	StoreName   string `json:"storeName"`
}

// UpdateCabinetRequest carries the editable cabinet fields. Fee is a
// decimal string.
type UpdateCabinetRequest struct {
	Name        string `json:"name"`
	MaxOrders   int    `json:"maxOrders"`
	Fee         string `json:"fee"`
	Description string `json:"description"`
}

// AvailableCabinet is one row of the bookable cabinet listing.
type AvailableCabinet struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Locker is one row of the per-cabinet locker listing.
type Locker struct {
	ID          string `json:"id"`
	BoxIndex    int    `json:"boxIndex"`
	StatusKey   string `json:"statusKey"`
	Maintenance int    `json:"maintenance"`
	TempMode    string `json:"tempMode"`
	StateValue  string `json:"stateValue"`
	Comment     string `json:"comment"`
	ThermoMode  int    `json:"thermoMode"`
}

// InactiveLocker is one row of the out-of-service locker listing.
type InactiveLocker struct {
	ID          string `json:"id"`
	CabinetID   string `json:"cabinetId"`
	CabinetName string `json:"cabinetName"`
	BoxIndex    int    `json:"boxIndex"`
	Comment     string `json:"comment"`
	StateValue  string `json:"stateValue"`
	RouteName   string `json:"routeName"`
	StoreName   string `json:"storeName"`
	LogCount    int64  `json:"logCount"`
}

// LockerLog is one audit row of a locker's state history.
type LockerLog struct {
	ID           string    `json:"id"`
	LockerID     string    `json:"lockerId"`
	CabinetID    string    `json:"cabinetId"`
	ChangedValue string    `json:"changedValue"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"createdAt"`
	ExtCreatedAt time.Time `json:"extCreatedAt"`
}

// UpdateLockerStatusRequest carries a manual locker state change.
type UpdateLockerStatusRequest struct {
	StatusKey string `json:"statusKey"`
	Comment   string `json:"comment"`
}

// LockerStatus is one manually settable locker state.
type LockerStatus struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// SlotInstance is one delivery window on one day.
type SlotInstance struct {
	ConfigID  string `json:"configId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Fee       string `json:"fee"`
	Status    string `json:"status"`
}

// DayAvailability groups the slot instances of one calendar day.
type DayAvailability struct {
	Date  types.Date     `json:"date"`
	Slots []SlotInstance `json:"slots"`
}

// TerminalEvent is the webhook payload the terminal platform posts on
// every hardware state change.
type TerminalEvent struct {
	TerminalID string             `json:"terminalId"`
	OccurredAt *time.Time         `json:"occurredAt,omitempty"`
	IsDeleted  bool               `json:"isDeleted"`
	Boxes      []TerminalBoxState `json:"boxes"`
}

// TerminalBoxState is the per-box part of a terminal event. Box indexes
// are 1-based.
type TerminalBoxState struct {
	Index       int  `json:"index"`
	IsDisabled  bool `json:"isDisabled"`
	ThermalMode int  `json:"thermalMode"`
}

func lockerLogToDTO(row queries.LockerLogResponse) LockerLog {
	return LockerLog{
		ID:           row.ID.String(),
		LockerID:     row.LockerID.String(),
		CabinetID:    row.CabinetID.String(),
		ChangedValue: row.ChangedValue,
		Comment:      row.Comment,
		CreatedAt:    row.CreatedAt,
		ExtCreatedAt: row.ExtCreatedAt,
	}
}
