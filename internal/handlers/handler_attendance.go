package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/peoplehr/hr_ops_app/internal/core/ports/services"
	"github.com/peoplehr/hr_ops_app/internal/dto"
	"github.com/peoplehr/hr_ops_app/internal/middleware"
)

// attendanceHandler handles HTTP requests for the attendance time clock.
type attendanceHandler struct {
	engineService portssvc.EngineSvcFacade
}

// newAttendanceHandler creates a new attendanceHandler.
func newAttendanceHandler(engine portssvc.EngineSvcFacade) *attendanceHandler {
	return &attendanceHandler{engineService: engine}
}

// registerAttendanceRoutes registers routes related to attendance.
func registerAttendanceRoutes(rg *gin.RouterGroup, engine portssvc.EngineSvcFacade) {
	h := newAttendanceHandler(engine)

	attendance := rg.Group("/attendance")
	{
		attendance.POST("/check-in", h.checkIn)
		attendance.POST("/check-out", h.checkOut)
		attendance.GET("/:employeeID", h.listAttendance)
	}
}

// checkIn godoc
// @Summary Check in for the day
// @Description Records a check-in event for the caller (or another employee when the caller is an admin). The attendance day is derived from the event timestamp.
// @Tags attendance
// @Accept json
// @Produce json
// @Param event body dto.CheckInRequest false "Optional employee ID and event timestamp"
// @Success 201 {object} dto.AttendanceRecordResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already checked in today"
// @Security BearerAuth
// @Router /attendance/check-in [post]
func (h *attendanceHandler) checkIn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	// An empty body is fine: everything defaults to the caller and now
	var req dto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	employeeID := identity.EmployeeID
	if req.EmployeeID != nil && *req.EmployeeID != "" {
		employeeID = *req.EmployeeID
	}
	ts := time.Now()
	if req.Timestamp != nil {
		ts = *req.Timestamp
	}

	record, err := h.engineService.CheckIn(c.Request.Context(), identity, employeeID, ts)
	if err != nil {
		respondError(c, err, "Failed to check in")
		return
	}

	logger.Info("Check-in recorded", slog.String("record_id", record.RecordID))
	c.JSON(http.StatusCreated, dto.ToAttendanceRecordResponse(record))
}

// checkOut godoc
// @Summary Check out for the day
// @Description Records a check-out event, closing the day's attendance record. Requires an active check-in.
// @Tags attendance
// @Accept json
// @Produce json
// @Param event body dto.CheckOutRequest false "Optional employee ID and event timestamp"
// @Success 200 {object} dto.AttendanceRecordResponse
// @Failure 400 {object} ErrorResponse "Check-out before check-in"
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "No active check-in, or already completed"
// @Security BearerAuth
// @Router /attendance/check-out [post]
func (h *attendanceHandler) checkOut(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CheckOutRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	employeeID := identity.EmployeeID
	if req.EmployeeID != nil && *req.EmployeeID != "" {
		employeeID = *req.EmployeeID
	}
	ts := time.Now()
	if req.Timestamp != nil {
		ts = *req.Timestamp
	}

	record, err := h.engineService.CheckOut(c.Request.Context(), identity, employeeID, ts)
	if err != nil {
		respondError(c, err, "Failed to check out")
		return
	}

	logger.Info("Check-out recorded", slog.String("record_id", record.RecordID), slog.String("hours", record.Hours().String()))
	c.JSON(http.StatusOK, dto.ToAttendanceRecordResponse(record))
}

// listAttendance godoc
// @Summary List attendance history
// @Description Retrieves an employee's attendance records, newest first, with token pagination. Self or admin scoped.
// @Tags attendance
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListAttendanceResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /attendance/{employeeID} [get]
func (h *attendanceHandler) listAttendance(c *gin.Context) {
	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	employeeID := c.Param("employeeID")

	var params dto.ListAttendanceParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	records, nextToken, err := h.engineService.ListAttendance(c.Request.Context(), identity, employeeID, params.Limit, params.NextToken)
	if err != nil {
		respondError(c, err, "Failed to list attendance")
		return
	}

	c.JSON(http.StatusOK, dto.ToListAttendanceResponse(records, nextToken))
}
