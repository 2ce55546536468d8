// Package http exposes the work order and activity log operations over echo.
// Handlers translate JSON bodies into commands and queries, and the error
// taxonomy into HTTP statuses.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"ostrack/internal/core/application/usecases/commands"
	"ostrack/internal/core/application/usecases/queries"
	"ostrack/internal/core/domain/model/kernel"
	"ostrack/internal/core/domain/model/workorder"
	"ostrack/internal/core/domain/services"
	"ostrack/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler  commands.CreateWorkOrderCommandHandler
	reportHandler       commands.ReportProductionCommandHandler
	validateHandler     commands.ValidateProductionCommandHandler
	finalizeHandler     commands.FinalizeWorkOrderCommandHandler
	deleteOrderHandler  commands.DeleteWorkOrderCommandHandler
	patchOrderHandler   commands.PatchWorkOrderCommandHandler
	pauseHandler        commands.PauseInProgressCommandHandler
	createLogHandler    commands.CreateLogEntryCommandHandler
	deleteLogHandler    commands.DeleteLogEntryCommandHandler
	renameLogsHandler   commands.RenameLogOrderNumberCommandHandler
	getAllOrdersHandler queries.GetAllWorkOrdersQueryHandler
	getSectorHandler    queries.GetSectorWorkOrdersQueryHandler
	getOrderHandler     queries.GetWorkOrderQueryHandler
	getAllLogsHandler   queries.GetAllLogEntriesQueryHandler
	getOrderLogsHandler queries.GetWorkOrderLogEntriesQueryHandler
	policy              services.AccessPolicy
}

// NewServer creates an HTTP server over the given use case handlers.
func NewServer(
	createOrderHandler commands.CreateWorkOrderCommandHandler,
	reportHandler commands.ReportProductionCommandHandler,
	validateHandler commands.ValidateProductionCommandHandler,
	finalizeHandler commands.FinalizeWorkOrderCommandHandler,
	deleteOrderHandler commands.DeleteWorkOrderCommandHandler,
	patchOrderHandler commands.PatchWorkOrderCommandHandler,
	pauseHandler commands.PauseInProgressCommandHandler,
	createLogHandler commands.CreateLogEntryCommandHandler,
	deleteLogHandler commands.DeleteLogEntryCommandHandler,
	renameLogsHandler commands.RenameLogOrderNumberCommandHandler,
	getAllOrdersHandler queries.GetAllWorkOrdersQueryHandler,
	getSectorHandler queries.GetSectorWorkOrdersQueryHandler,
	getOrderHandler queries.GetWorkOrderQueryHandler,
	getAllLogsHandler queries.GetAllLogEntriesQueryHandler,
	getOrderLogsHandler queries.GetWorkOrderLogEntriesQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:  createOrderHandler,
		reportHandler:       reportHandler,
		validateHandler:     validateHandler,
		finalizeHandler:     finalizeHandler,
		deleteOrderHandler:  deleteOrderHandler,
		patchOrderHandler:   patchOrderHandler,
		pauseHandler:        pauseHandler,
		createLogHandler:    createLogHandler,
		deleteLogHandler:    deleteLogHandler,
		renameLogsHandler:   renameLogsHandler,
		getAllOrdersHandler: getAllOrdersHandler,
		getSectorHandler:    getSectorHandler,
		getOrderHandler:     getOrderHandler,
		getAllLogsHandler:   getAllLogsHandler,
		getOrderLogsHandler: getOrderLogsHandler,
		policy:              services.NewAccessPolicy(),
	}
}

// RegisterRoutes wires the order and log routes behind the auth middleware.
// The login route stays outside it.
func (s *Server) RegisterRoutes(e *echo.Echo, auth *Authenticator, secret []byte) {
	e.POST("/login", auth.Login)

	protected := e.Group("", AuthMiddleware(secret))
	protected.POST("/os", s.CreateOrder)
	protected.GET("/os", s.ListAllOrders)
	protected.GET("/os/sector", s.ListSectorOrders)
	protected.GET("/os/:number", s.GetOrder)
	protected.POST("/os/:number/report", s.ReportProduction)
	protected.POST("/os/:number/validate", s.ValidateProduction)
	protected.POST("/os/:number/finalize", s.FinalizeOrder)
	protected.DELETE("/os/:number", s.DeleteOrder)
	protected.PATCH("/os/:number", s.PatchOrder)
	protected.POST("/os/pause", s.TriggerPause)
	protected.GET("/logs", s.ListAllLogs)
	protected.GET("/logs/:number", s.ListOrderLogs)
	protected.POST("/logs", s.CreateLog)
	protected.DELETE("/logs/:id", s.DeleteLog)
	protected.POST("/logs/rename", s.RenameLogs)
}

// CreateOrder handles POST /os.
func (s *Server) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	if req.Status == "" {
		return respondError(c, errs.NewValueIsRequiredError("status"))
	}
	status, err := workorder.StatusFromString(req.Status)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewCreateWorkOrderCommand(
		callerFrom(c),
		req.OrderNumber,
		workorder.Details{
			PartName:   req.PartName,
			PartNumber: req.PartNumber,
			Quantity:   req.Quantity,
			Note:       req.Note,
			Priority:   req.Priority,
			CreatedAt:  req.CreatedAt.Time,
		},
		status,
		kernel.Sector(req.CurrentSector),
		req.Routing,
	)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.createOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusCreated)
}

// ListAllOrders handles GET /os. Only the unfiltered roles may read the raw set.
func (s *Server) ListAllOrders(c echo.Context) error {
	caller := callerFrom(c)
	if !s.policy.SeesUnfiltered(caller) {
		return respondError(c, errs.NewAccessForbiddenError("listAllOrders", caller.String()))
	}

	orders, err := s.getAllOrdersHandler.Handle(c.Request().Context(), queries.NewGetAllWorkOrdersQuery())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toWorkOrderResponses(orders))
}

// ListSectorOrders handles GET /os/sector. Page and limit arrive as query
// parameters; junk values fall back to the pagination defaults.
func (s *Server) ListSectorOrders(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	query, err := queries.NewGetSectorWorkOrdersQuery(callerFrom(c), page, limit)
	if err != nil {
		return respondError(c, err)
	}

	result, err := s.getSectorHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, queries.Page[workOrderResponse]{
		Page:       result.Page,
		Limit:      result.Limit,
		Total:      result.Total,
		TotalPages: result.TotalPages,
		Data:       toWorkOrderResponses(result.Data),
	})
}

// GetOrder handles GET /os/:number.
func (s *Server) GetOrder(c echo.Context) error {
	query, err := queries.NewGetWorkOrderQuery(c.Param("number"))
	if err != nil {
		return respondError(c, err)
	}

	order, err := s.getOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toWorkOrderResponse(order))
}

// ReportProduction handles POST /os/:number/report. The caller's sector comes
// from the token, never from the body.
func (s *Server) ReportProduction(c echo.Context) error {
	var req reportProductionRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewReportProductionCommand(
		callerFrom(c), c.Param("number"), req.Quantity, req.DefectiveQuantity, req.OperatorName,
	)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.reportHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ValidateProduction handles POST /os/:number/validate.
func (s *Server) ValidateProduction(c echo.Context) error {
	var req validateProductionRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewValidateProductionCommand(callerFrom(c), c.Param("number"), req.Approved)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.validateHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// FinalizeOrder handles POST /os/:number/finalize.
func (s *Server) FinalizeOrder(c echo.Context) error {
	cmd, err := commands.NewFinalizeWorkOrderCommand(callerFrom(c), c.Param("number"))
	if err != nil {
		return respondError(c, err)
	}

	if err = s.finalizeHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /os/:number.
func (s *Server) DeleteOrder(c echo.Context) error {
	cmd, err := commands.NewDeleteWorkOrderCommand(callerFrom(c), c.Param("number"))
	if err != nil {
		return respondError(c, err)
	}

	if err = s.deleteOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// PatchOrder handles PATCH /os/:number. Unknown fields are dropped by the
// JSON decoder; only the allow-listed ones reach the command.
func (s *Server) PatchOrder(c echo.Context) error {
	var req patchOrderRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewPatchWorkOrderCommand(callerFrom(c), c.Param("number"), commands.WorkOrderPatch{
		PartName:       req.PartName,
		PartNumber:     req.PartNumber,
		Quantity:       req.Quantity,
		Note:           req.Note,
		Priority:       req.Priority,
		Status:         req.Status,
		CurrentSector:  req.CurrentSector,
		NewOrderNumber: req.OrderNumber,
	})
	if err != nil {
		return respondError(c, err)
	}

	if err = s.patchOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListAllLogs handles GET /logs.
func (s *Server) ListAllLogs(c echo.Context) error {
	entries, err := s.getAllLogsHandler.Handle(c.Request().Context(), queries.NewGetAllLogEntriesQuery())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toLogEntryResponses(entries))
}

// ListOrderLogs handles GET /logs/:number.
func (s *Server) ListOrderLogs(c echo.Context) error {
	query, err := queries.NewGetWorkOrderLogEntriesQuery(c.Param("number"))
	if err != nil {
		return respondError(c, err)
	}

	entries, err := s.getOrderLogsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toLogEntryResponses(entries))
}

// CreateLog handles POST /logs. The entry's sector defaults to the caller's
// role when the body does not name one.
func (s *Server) CreateLog(c echo.Context) error {
	var req createLogRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	sector := callerFrom(c)
	if req.Sector != "" {
		sector = kernel.Sector(req.Sector)
	}

	cmd, err := commands.NewCreateLogEntryCommand(sector, req.OrderNumber, req.Description, req.Date.Time)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.createLogHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusCreated)
}

// DeleteLog handles DELETE /logs/:id.
func (s *Server) DeleteLog(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "id must be a UUID")
	}

	cmd, err := commands.NewDeleteLogEntryCommand(callerFrom(c), id)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.deleteLogHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// TriggerPause handles POST /os/pause. It runs the end-of-shift sweep on
// demand; the command carries no caller, so authorization happens here.
func (s *Server) TriggerPause(c echo.Context) error {
	if err := s.policy.Allows(callerFrom(c), services.ActionTriggerPause); err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewPauseInProgressCommand()
	if err != nil {
		return respondError(c, err)
	}

	paused, err := s.pauseHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, pausedResponse{Paused: paused})
}

// RenameLogs handles POST /logs/rename.
func (s *Server) RenameLogs(c echo.Context) error {
	var req renameLogsRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewRenameLogOrderNumberCommand(
		callerFrom(c), req.OldOrderNumber, req.NewOrderNumber,
	)
	if err != nil {
		return respondError(c, err)
	}

	renamed, err := s.renameLogsHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, renameLogsResponse{Renamed: renamed})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// respondError maps the error taxonomy to HTTP statuses. Concurrent write
// conflicts and invalid state transitions both answer 409.
func respondError(c echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrAccessForbidden):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidState), errors.Is(err, errs.ErrVersionIsInvalid):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return c.JSON(status, errorResponse{Code: status, Message: err.Error()})
}
