package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"lockerfleet/internal/core/application/usecases/commands"
	"lockerfleet/internal/core/application/usecases/queries"
	"lockerfleet/internal/core/domain/model/kernel"
	"lockerfleet/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

const dayLayout = "2006-01-02"

// Server coordinates between HTTP handlers and application use cases. All
// responses are JSON; failures use the uniform Error payload.
type Server struct {
	// Command handlers
	updateCabinetHandler      commands.UpdateCabinetCommandHandler
	deleteCabinetHandler      commands.DeleteCabinetCommandHandler
	updateLockerStatusHandler commands.UpdateLockerStatusCommandHandler
	applyTerminalEventHandler commands.ApplyTerminalEventCommandHandler

	// Query handlers
	getAllCabinetsHandler       queries.GetAllCabinetsQueryHandler
	getCabinetDetailsHandler    queries.GetCabinetDetailsQueryHandler
	getAvailableCabinetsHandler queries.GetAvailableCabinetsQueryHandler
	getCabinetLockersHandler    queries.GetCabinetLockersQueryHandler
	getInactiveLockersHandler   queries.GetInactiveLockersQueryHandler
	getLockerLogsHandler        queries.GetLockerLogsQueryHandler
	getCabinetLockerLogsHandler queries.GetCabinetLockerLogsQueryHandler
	getSlotAvailabilityHandler  queries.GetSlotAvailabilityQueryHandler
	getLockerStatusesHandler    queries.GetLockerStatusesQueryHandler

	location *time.Location
}

// NewServer creates an HTTP server over the fleet's command and query
// handlers. location is the fleet's operating time zone; day-ranged
// filters are interpreted in it.
func NewServer(
	updateCabinetHandler commands.UpdateCabinetCommandHandler,
	deleteCabinetHandler commands.DeleteCabinetCommandHandler,
	updateLockerStatusHandler commands.UpdateLockerStatusCommandHandler,
	applyTerminalEventHandler commands.ApplyTerminalEventCommandHandler,
	getAllCabinetsHandler queries.GetAllCabinetsQueryHandler,
	getCabinetDetailsHandler queries.GetCabinetDetailsQueryHandler,
	getAvailableCabinetsHandler queries.GetAvailableCabinetsQueryHandler,
	getCabinetLockersHandler queries.GetCabinetLockersQueryHandler,
	getInactiveLockersHandler queries.GetInactiveLockersQueryHandler,
	getLockerLogsHandler queries.GetLockerLogsQueryHandler,
	getCabinetLockerLogsHandler queries.GetCabinetLockerLogsQueryHandler,
	getSlotAvailabilityHandler queries.GetSlotAvailabilityQueryHandler,
	getLockerStatusesHandler queries.GetLockerStatusesQueryHandler,
	location *time.Location,
) *Server {
	return &Server{
		updateCabinetHandler:        updateCabinetHandler,
		deleteCabinetHandler:        deleteCabinetHandler,
		updateLockerStatusHandler:   updateLockerStatusHandler,
		applyTerminalEventHandler:   applyTerminalEventHandler,
		getAllCabinetsHandler:       getAllCabinetsHandler,
		getCabinetDetailsHandler:    getCabinetDetailsHandler,
		getAvailableCabinetsHandler: getAvailableCabinetsHandler,
		getCabinetLockersHandler:    getCabinetLockersHandler,
		getInactiveLockersHandler:   getInactiveLockersHandler,
		getLockerLogsHandler:        getLockerLogsHandler,
		getCabinetLockerLogsHandler: getCabinetLockerLogsHandler,
		getSlotAvailabilityHandler:  getSlotAvailabilityHandler,
		getLockerStatusesHandler:    getLockerStatusesHandler,
		location:                    location,
	}
}

// RegisterRoutes attaches all fleet endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/cabinets", s.GetCabinets)
	api.GET("/cabinets/available", s.GetAvailableCabinets)
	api.GET("/cabinets/:cabinetId", s.GetCabinet)
	api.PUT("/cabinets/:cabinetId", s.UpdateCabinet)
	api.DELETE("/cabinets/:cabinetId", s.DeleteCabinet)
	api.GET("/cabinets/:cabinetId/lockers", s.GetCabinetLockers)
	api.GET("/cabinets/:cabinetId/locker-logs", s.GetCabinetLockerLogs)
	api.GET("/cabinets/:cabinetId/availability", s.GetSlotAvailability)
	api.GET("/lockers/inactive", s.GetInactiveLockers)
	api.GET("/lockers/:lockerId/logs", s.GetLockerLogs)
	api.POST("/lockers/:lockerId/status", s.UpdateLockerStatus)
	api.GET("/locker-statuses", s.GetLockerStatuses)
	api.POST("/terminal-events", s.ApplyTerminalEvent)

	e.GET("/health", s.Health)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetCabinets handles GET /api/v1/cabinets - retrieves the cabinet
// listing.
func (s *Server) GetCabinets(ctx echo.Context) error {
	cabinets, err := s.getAllCabinetsHandler.Handle(
		ctx.Request().Context(), queries.NewGetAllCabinetsQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve cabinets",
		})
	}

	response := make([]Cabinet, len(cabinets))
	for i, row := range cabinets {
		response[i] = Cabinet{
			ID:          row.ID.String(),
			ExternalID:  row.ExternalID,
			Name:        row.Name,
			Address:     row.Address,
			Description: row.Description,
			StatusKey:   row.StatusKey,
			StatusValue: row.StatusValue,
			LockerCount: row.LockerCount,
			ErrorCount:  row.ErrorCount,
			RouteName:   row.RouteName,
			StoreName:   row.StoreName,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAvailableCabinets handles GET /api/v1/cabinets/available - retrieves
// the cabinets a customer can currently book a delivery to.
func (s *Server) GetAvailableCabinets(ctx echo.Context) error {
	cabinets, err := s.getAvailableCabinetsHandler.Handle(
		ctx.Request().Context(), queries.NewGetAvailableCabinetsQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve available cabinets",
		})
	}

	response := make([]AvailableCabinet, len(cabinets))
	for i, row := range cabinets {
		response[i] = AvailableCabinet{
			ID:      row.ID.String(),
			Name:    row.Name,
			Address: row.Address,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCabinet handles GET /api/v1/cabinets/{cabinetId} - retrieves one
// cabinet's detail view.
func (s *Server) GetCabinet(ctx echo.Context) error {
	cabinetID, err := kernel.UUIDFromString(ctx.Param("cabinetId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid cabinet id",
		})
	}

	query, err := queries.NewGetCabinetDetailsQuery(cabinetID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid cabinet id: " + err.Error(),
		})
	}

	details, err := s.getCabinetDetailsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Cabinet not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve cabinet",
		})
	}

	return ctx.JSON(http.StatusOK, CabinetDetails{
		ID:          details.ID.String(),
		ExternalID:  details.ExternalID,
		SecondaryID: details.SecondaryID,
		Name:        details.Name,
		Address:     details.Address,
		Description: details.Description,
		StatusKey:   details.StatusKey,
		StatusValue: details.StatusValue,
		MaxOrders:   details.MaxOrders,
		Fee:         details.Fee,
		LockerCount: details.LockerCount,
		ErrorCount:  details.ErrorCount,
		RouteName:   details.RouteName,
		StoreName:   details.StoreName,
	})
}

// UpdateCabinet handles PUT /api/v1/cabinets/{cabinetId} - edits a
// cabinet's administrative fields.
func (s *Server) UpdateCabinet(ctx echo.Context) error {
	cabinetID, err := kernel.UUIDFromString(ctx.Param("cabinetId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid cabinet id",
		})
	}

	var request UpdateCabinetRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	fee, err := decimal.NewFromString(request.Fee)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid fee value",
		})
	}

	cmd, err := commands.NewUpdateCabinetCommand(
		cabinetID, request.Name, request.MaxOrders, fee, request.Description)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid cabinet data: " + err.Error(),
		})
	}

	if handleErr := s.updateCabinetHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Cabinet not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to update cabinet",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteCabinet handles DELETE /api/v1/cabinets/{cabinetId} - soft-deletes
// a cabinet.
func (s *Server) DeleteCabinet(ctx echo.Context) error {
	cabinetID, err := kernel.UUIDFromString(ctx.Param("cabinetId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid cabinet id",
		})
	}

	cmd, err := commands.NewDeleteCabinetCommand(cabinetID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid cabinet id: " + err.Error(),
		})
	}

	if handleErr := s.deleteCabinetHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Cabinet not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to delete cabinet",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCabinetLockers handles GET /api/v1/cabinets/{cabinetId}/lockers -
// retrieves all lockers of one cabinet in box order.
func (s *Server) GetCabinetLockers(ctx echo.Context) error {
	cabinetID, err := kernel.UUIDFromString(ctx.Param("cabinetId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid cabinet id",
		})
	}

	query, err := queries.NewGetCabinetLockersQuery(cabinetID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid cabinet id: " + err.Error(),
		})
	}

	lockers, err := s.getCabinetLockersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve lockers",
		})
	}

	response := make([]Locker, len(lockers))
	for i, row := range lockers {
		response[i] = Locker{
			ID:          row.ID.String(),
			BoxIndex:    row.BoxIndex,
			StatusKey:   row.StatusKey,
			Maintenance: row.Maintenance,
			TempMode:    row.TempMode,
			StateValue:  row.StateValue,
			Comment:     row.Comment,
			ThermoMode:  row.ThermoMode,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCabinetLockerLogs handles GET
// /api/v1/cabinets/{cabinetId}/locker-logs - retrieves the day-ranged
// audit rows of a cabinet's lockers. Requires from and to date query
// parameters; tempMode narrows to one state key.
func (s *Server) GetCabinetLockerLogs(ctx echo.Context) error {
	cabinetID, err := kernel.UUIDFromString(ctx.Param("cabinetId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid cabinet id",
		})
	}

	from, err := s.parseDayParam(ctx.QueryParam("from"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid from date, expected YYYY-MM-DD",
		})
	}

	to, err := s.parseDayParam(ctx.QueryParam("to"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid to date, expected YYYY-MM-DD",
		})
	}

	query, err := queries.NewGetCabinetLockerLogsQuery(cabinetID, from, to, ctx.QueryParam("tempMode"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid log filter: " + err.Error(),
		})
	}

	logs, err := s.getCabinetLockerLogsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve locker logs",
		})
	}

	response := make([]LockerLog, len(logs))
	for i, row := range logs {
		response[i] = lockerLogToDTO(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetSlotAvailability handles GET
// /api/v1/cabinets/{cabinetId}/availability - computes the bookable
// delivery windows over the coming days. The days query parameter sets
// the horizon, default 7.
func (s *Server) GetSlotAvailability(ctx echo.Context) error {
	cabinetID, err := kernel.UUIDFromString(ctx.Param("cabinetId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid cabinet id",
		})
	}

	days := 7
	if raw := ctx.QueryParam("days"); raw != "" {
		days, err = strconv.Atoi(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid days value",
			})
		}
	}

	query, err := queries.NewGetSlotAvailabilityQuery(cabinetID, days)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid availability query: " + err.Error(),
		})
	}

	buckets, err := s.getSlotAvailabilityHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Cabinet not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to compute availability",
		})
	}

	response := make([]DayAvailability, len(buckets))
	for i, bucket := range buckets {
		slots := make([]SlotInstance, len(bucket.Slots))
		for j, slot := range bucket.Slots {
			slots[j] = SlotInstance{
				ConfigID:  slot.ConfigID.String(),
				StartTime: slot.StartTime.String(),
				EndTime:   slot.EndTime.String(),
				Fee:       slot.Fee,
				Status:    slot.Status,
			}
		}
		response[i] = DayAvailability{
			Date:  types.Date{Time: bucket.Date.Start()},
			Slots: slots,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetInactiveLockers handles GET /api/v1/lockers/inactive - retrieves all
// out-of-service lockers across the fleet.
func (s *Server) GetInactiveLockers(ctx echo.Context) error {
	lockers, err := s.getInactiveLockersHandler.Handle(
		ctx.Request().Context(), queries.NewGetInactiveLockersQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve inactive lockers",
		})
	}

	response := make([]InactiveLocker, len(lockers))
	for i, row := range lockers {
		response[i] = InactiveLocker{
			ID:          row.ID.String(),
			CabinetID:   row.CabinetID.String(),
			CabinetName: row.CabinetName,
			BoxIndex:    row.BoxIndex,
			Comment:     row.Comment,
			StateValue:  row.StateValue,
			RouteName:   row.RouteName,
			StoreName:   row.StoreName,
			LogCount:    row.LogCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetLockerLogs handles GET /api/v1/lockers/{lockerId}/logs - retrieves
// one locker's audit trail, newest first.
func (s *Server) GetLockerLogs(ctx echo.Context) error {
	lockerID, err := kernel.UUIDFromString(ctx.Param("lockerId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid locker id",
		})
	}

	query, err := queries.NewGetLockerLogsQuery(lockerID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid locker id: " + err.Error(),
		})
	}

	logs, err := s.getLockerLogsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve locker logs",
		})
	}

	response := make([]LockerLog, len(logs))
	for i, row := range logs {
		response[i] = lockerLogToDTO(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateLockerStatus handles POST /api/v1/lockers/{lockerId}/status -
// applies a manual locker state change and returns the appended audit
// row.
func (s *Server) UpdateLockerStatus(ctx echo.Context) error {
	lockerID, err := kernel.UUIDFromString(ctx.Param("lockerId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid locker id",
		})
	}

	var request UpdateLockerStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateLockerStatusCommand(lockerID, request.StatusKey, request.Comment)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status data: " + err.Error(),
		})
	}

	entry, err := s.updateLockerStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Locker not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to update locker status",
		})
	}

	return ctx.JSON(http.StatusOK, LockerLog{
		ID:           entry.ID().String(),
		LockerID:     entry.LockerID().String(),
		CabinetID:    entry.CabinetID().String(),
		ChangedValue: entry.ChangedValue(),
		Comment:      entry.Comment(),
		CreatedAt:    entry.CreatedAt(),
		ExtCreatedAt: entry.ExtCreatedAt(),
	})
}

// GetLockerStatuses handles GET /api/v1/locker-statuses - retrieves the
// locker states an operator can set manually.
func (s *Server) GetLockerStatuses(ctx echo.Context) error {
	statuses, err := s.getLockerStatusesHandler.Handle(
		ctx.Request().Context(), queries.NewGetLockerStatusesQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve locker statuses",
		})
	}

	response := make([]LockerStatus, len(statuses))
	for i, row := range statuses {
		response[i] = LockerStatus{Key: row.Key, Value: row.Value}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ApplyTerminalEvent handles POST /api/v1/terminal-events - ingests one
// hardware state event from the terminal platform. Unknown terminals are
// acknowledged without effect so the platform does not retry them
// forever.
func (s *Server) ApplyTerminalEvent(ctx echo.Context) error {
	var event TerminalEvent
	if err := ctx.Bind(&event); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	boxes := make([]commands.BoxState, len(event.Boxes))
	for i, box := range event.Boxes {
		boxes[i] = commands.BoxState{
			Index:       box.Index,
			IsDisabled:  box.IsDisabled,
			ThermalMode: box.ThermalMode,
		}
	}

	var occurredAt time.Time
	if event.OccurredAt != nil {
		occurredAt = *event.OccurredAt
	}

	cmd, err := commands.NewApplyTerminalEventCommand(
		event.TerminalID, occurredAt, event.IsDeleted, boxes)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid terminal event: " + err.Error(),
		})
	}

	if handleErr := s.applyTerminalEventHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to apply terminal event",
		})
	}

	return ctx.NoContent(http.StatusAccepted)
}

func (s *Server) parseDayParam(raw string) (kernel.Day, error) {
	t, err := time.ParseInLocation(dayLayout, raw, s.location)
	if err != nil {
		return kernel.Day{}, err
	}
	return kernel.DayOf(t, s.location), nil
}
