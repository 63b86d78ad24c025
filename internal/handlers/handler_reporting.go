package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/peoplehr/hr_ops_app/internal/core/domain"
	portssvc "github.com/peoplehr/hr_ops_app/internal/core/ports/services"
	"github.com/peoplehr/hr_ops_app/internal/dto"
	"github.com/peoplehr/hr_ops_app/internal/middleware"
)

// reportingHandler handles HTTP requests for the metrics dashboards.
type reportingHandler struct {
	engineService portssvc.EngineSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(engine portssvc.EngineSvcFacade) *reportingHandler {
	return &reportingHandler{engineService: engine}
}

// registerReportingRoutes registers routes related to metrics.
func registerReportingRoutes(rg *gin.RouterGroup, engine portssvc.EngineSvcFacade) {
	h := newReportingHandler(engine)

	metrics := rg.Group("/metrics")
	{
		metrics.GET("/me", h.employeeMetrics)
		metrics.GET("/admin", h.adminMetrics)
	}
}

// bindPeriod parses the from/to query dates into a domain period.
func bindPeriod(c *gin.Context) (dto.MetricsParams, domain.Period, bool) {
	var params dto.MetricsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return params, domain.Period{}, false
	}

	from, err := time.ParseInLocation("2006-01-02", params.From, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid 'from' date, expected YYYY-MM-DD"})
		return params, domain.Period{}, false
	}
	to, err := time.ParseInLocation("2006-01-02", params.To, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid 'to' date, expected YYYY-MM-DD"})
		return params, domain.Period{}, false
	}

	return params, domain.Period{From: from, To: to}, true
}

// employeeMetrics godoc
// @Summary Employee metrics
// @Description Retrieves the caller's attendance summary for a period plus a snapshot of current leave balances. Admins may pass employeeID to view others.
// @Tags metrics
// @Produce json
// @Param from query string true "Period start (YYYY-MM-DD)"
// @Param to query string true "Period end (YYYY-MM-DD)"
// @Param employeeID query string false "Target employee (admin only)"
// @Success 200 {object} dto.EmployeeMetricsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /metrics/me [get]
func (h *reportingHandler) employeeMetrics(c *gin.Context) {
	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	_, period, ok := bindPeriod(c)
	if !ok {
		return
	}

	employeeID := identity.EmployeeID
	if target := c.Query("employeeID"); target != "" {
		employeeID = target
	}

	metrics, err := h.engineService.GetEmployeeMetrics(c.Request.Context(), identity, employeeID, period)
	if err != nil {
		respondError(c, err, "Failed to aggregate employee metrics")
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeMetricsResponse(metrics))
}

// adminMetrics godoc
// @Summary Admin metrics
// @Description Retrieves org-wide rollups: present/absent counts per office and department, and leave usage per type. Aggregate counts only. Admin only.
// @Tags metrics
// @Produce json
// @Param from query string true "Period start (YYYY-MM-DD)"
// @Param to query string true "Period end (YYYY-MM-DD)"
// @Param officeID query string false "Filter by office"
// @Param department query string false "Filter by department"
// @Success 200 {object} dto.AdminMetricsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /metrics/admin [get]
func (h *reportingHandler) adminMetrics(c *gin.Context) {
	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	params, period, ok := bindPeriod(c)
	if !ok {
		return
	}

	filters := domain.MetricsFilters{
		OfficeID:   params.OfficeID,
		Department: params.Department,
	}

	metrics, err := h.engineService.GetAdminMetrics(c.Request.Context(), identity, period, filters)
	if err != nil {
		respondError(c, err, "Failed to aggregate admin metrics")
		return
	}

	c.JSON(http.StatusOK, dto.ToAdminMetricsResponse(metrics))
}
