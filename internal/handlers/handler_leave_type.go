package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/peoplehr/hr_ops_app/internal/core/ports/services"
	"github.com/peoplehr/hr_ops_app/internal/dto"
)

// leaveTypeHandler handles HTTP requests for leave type reference data.
type leaveTypeHandler struct {
	leaveTypeService portssvc.LeaveTypeSvcFacade
}

// registerLeaveTypeRoutes registers routes related to leave types.
func registerLeaveTypeRoutes(rg *gin.RouterGroup, lts portssvc.LeaveTypeSvcFacade) {
	h := &leaveTypeHandler{leaveTypeService: lts}

	leaveTypes := rg.Group("/leave-types")
	{
		leaveTypes.GET("", h.listLeaveTypes)
		leaveTypes.GET("/:leaveTypeID", h.getLeaveType)
	}
}

// listLeaveTypes godoc
// @Summary List leave types
// @Description Retrieves all leave type reference data.
// @Tags leave-types
// @Produce json
// @Success 200 {array} dto.LeaveTypeResponse
// @Security BearerAuth
// @Router /leave-types [get]
func (h *leaveTypeHandler) listLeaveTypes(c *gin.Context) {
	leaveTypes, err := h.leaveTypeService.ListLeaveTypes(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list leave types")
		return
	}
	c.JSON(http.StatusOK, dto.ToListLeaveTypesResponse(leaveTypes))
}

// getLeaveType godoc
// @Summary Get a leave type
// @Description Retrieves one leave type by ID.
// @Tags leave-types
// @Produce json
// @Param leaveTypeID path string true "Leave type ID"
// @Success 200 {object} dto.LeaveTypeResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /leave-types/{leaveTypeID} [get]
func (h *leaveTypeHandler) getLeaveType(c *gin.Context) {
	leaveType, err := h.leaveTypeService.GetLeaveType(c.Request.Context(), c.Param("leaveTypeID"))
	if err != nil {
		respondError(c, err, "Failed to get leave type")
		return
	}
	c.JSON(http.StatusOK, dto.ToLeaveTypeResponse(leaveType))
}
