package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	portssvc "github.com/peoplehr/hr_ops_app/internal/core/ports/services"
	"github.com/peoplehr/hr_ops_app/internal/dto"
	"github.com/peoplehr/hr_ops_app/internal/middleware"
)

// leaveHandler handles HTTP requests for the leave balance ledger. All
// operations go through the engine facade so authorization and the store
// deadline are applied uniformly.
type leaveHandler struct {
	engineService portssvc.EngineSvcFacade
}

// newLeaveHandler creates a new leaveHandler.
func newLeaveHandler(engine portssvc.EngineSvcFacade) *leaveHandler {
	return &leaveHandler{engineService: engine}
}

// registerLeaveRoutes registers routes related to leave balances.
func registerLeaveRoutes(rg *gin.RouterGroup, engine portssvc.EngineSvcFacade) {
	h := newLeaveHandler(engine)

	employees := rg.Group("/employees/:employeeID")
	{
		employees.GET("/leave-balances", h.listBalances)
		employees.POST("/leave-balances", h.allocate)
		employees.POST("/leave-balances/:leaveTypeID/deduct", h.deduct)
		employees.POST("/leave-balances/:leaveTypeID/credit", h.credit)
		employees.GET("/leave-entries", h.listEntries)
	}
}

// listBalances godoc
// @Summary List leave balances
// @Description Retrieves all leave balances for an employee, one per leave type. Self or admin scoped.
// @Tags leave
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Success 200 {array} dto.LeaveBalanceResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{employeeID}/leave-balances [get]
func (h *leaveHandler) listBalances(c *gin.Context) {
	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	employeeID := c.Param("employeeID")

	balances, err := h.engineService.GetEmployeeLeaveBalances(c.Request.Context(), identity, employeeID)
	if err != nil {
		respondError(c, err, "Failed to list leave balances")
		return
	}

	c.JSON(http.StatusOK, dto.ToListLeaveBalancesResponse(balances))
}

// allocate godoc
// @Summary Allocate a leave balance
// @Description Onboards an employee to a leave type with an opening allocation. Admin only.
// @Tags leave
// @Accept json
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Param allocation body dto.AllocateLeaveRequest true "Leave type and opening allocation"
// @Success 201 {object} dto.LeaveBalanceResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Balance already exists"
// @Security BearerAuth
// @Router /employees/{employeeID}/leave-balances [post]
func (h *leaveHandler) allocate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.AllocateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	employeeID := c.Param("employeeID")
	if req.EmployeeID != "" && req.EmployeeID != employeeID {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "employeeID in body does not match path"})
		return
	}

	balance, err := h.engineService.AllocateLeave(c.Request.Context(), identity, employeeID, req.LeaveTypeID, req.Allocated)
	if err != nil {
		respondError(c, err, "Failed to allocate leave balance")
		return
	}

	logger.Info("Leave balance allocated", slog.String("employee_id", employeeID), slog.String("leave_type_id", req.LeaveTypeID))
	c.JSON(http.StatusCreated, dto.ToLeaveBalanceResponse(balance))
}

// deduct godoc
// @Summary Deduct leave units
// @Description Deducts units from an employee's balance after verifying availability. The request path for taking leave; rejections are never clamped.
// @Tags leave
// @Accept json
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Param leaveTypeID path string true "Leave type ID"
// @Param deduction body dto.DeductLeaveRequest true "Units and optional notes"
// @Success 200 {object} dto.LeaveBalanceResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Concurrent update retries exhausted"
// @Failure 422 {object} ErrorResponse "Insufficient balance"
// @Security BearerAuth
// @Router /employees/{employeeID}/leave-balances/{leaveTypeID}/deduct [post]
func (h *leaveHandler) deduct(c *gin.Context) {
	h.applyEntry(c, false)
}

// credit godoc
// @Summary Credit leave units
// @Description Returns units to an employee's balance, floored at zero used. The cancellation path.
// @Tags leave
// @Accept json
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Param leaveTypeID path string true "Leave type ID"
// @Param credit body dto.CreditLeaveRequest true "Units and optional notes"
// @Success 200 {object} dto.LeaveBalanceResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{employeeID}/leave-balances/{leaveTypeID}/credit [post]
func (h *leaveHandler) credit(c *gin.Context) {
	h.applyEntry(c, true)
}

// applyEntry is the shared body of deduct and credit: same binding, same
// scoping, opposite ledger direction.
func (h *leaveHandler) applyEntry(c *gin.Context, isCredit bool) {
	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	employeeID := c.Param("employeeID")
	leaveTypeID := c.Param("leaveTypeID")

	var units decimal.Decimal
	var notes string
	if isCredit {
		var req dto.CreditLeaveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
			return
		}
		units, notes = req.Units, req.Notes
	} else {
		var req dto.DeductLeaveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
			return
		}
		units, notes = req.Units, req.Notes
	}

	if isCredit {
		bal, err := h.engineService.CreditLeave(c.Request.Context(), identity, employeeID, leaveTypeID, units, notes)
		if err != nil {
			respondError(c, err, "Failed to credit leave")
			return
		}
		c.JSON(http.StatusOK, dto.ToLeaveBalanceResponse(bal))
		return
	}

	bal, err := h.engineService.DeductLeave(c.Request.Context(), identity, employeeID, leaveTypeID, units, notes)
	if err != nil {
		respondError(c, err, "Failed to deduct leave")
		return
	}
	c.JSON(http.StatusOK, dto.ToLeaveBalanceResponse(bal))
}

// listEntries godoc
// @Summary List leave ledger entries
// @Description Retrieves the append-only ledger audit trail for an employee, newest first. Self or admin scoped.
// @Tags leave
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Param leaveTypeID query string false "Narrow to one leave type"
// @Success 200 {array} dto.LeaveEntryResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{employeeID}/leave-entries [get]
func (h *leaveHandler) listEntries(c *gin.Context) {
	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	employeeID := c.Param("employeeID")

	entries, err := h.engineService.ListLeaveEntries(c.Request.Context(), identity, employeeID, c.Query("leaveTypeID"))
	if err != nil {
		respondError(c, err, "Failed to list leave entries")
		return
	}

	c.JSON(http.StatusOK, dto.ToListLeaveEntriesResponse(entries))
}
