package dto

import (
	"github.com/shopspring/decimal"

	"github.com/peoplehr/hr_ops_app/internal/core/domain"
)

// MetricsParams defines query parameters for metrics endpoints. Dates are
// inclusive calendar dates in YYYY-MM-DD form.
type MetricsParams struct {
	From       string `form:"from" binding:"required"`
	To         string `form:"to" binding:"required"`
	OfficeID   string `form:"officeID"`
	Department string `form:"department"`
}

// EmployeeMetricsResponse is the self-scoped attendance summary plus a
// snapshot of current leave balances.
type EmployeeMetricsResponse struct {
	EmployeeID  string                 `json:"employeeID"`
	From        string                 `json:"from"`
	To          string                 `json:"to"`
	DaysPresent int                    `json:"daysPresent"`
	DaysAbsent  int                    `json:"daysAbsent"`
	TotalHours  decimal.Decimal        `json:"totalHours"`
	Balances    []LeaveBalanceResponse `json:"balances"`
}

// OfficeAttendanceRowResponse is one office/department attendance rollup row.
type OfficeAttendanceRowResponse struct {
	OfficeID     string `json:"officeID"`
	Department   string `json:"department"`
	PresentCount int64  `json:"presentCount"`
	AbsentCount  int64  `json:"absentCount"`
}

// LeaveUsageRowResponse is one per-leave-type usage rollup row.
type LeaveUsageRowResponse struct {
	LeaveTypeID   string          `json:"leaveTypeID"`
	LeaveTypeName string          `json:"leaveTypeName"`
	TotalUsed     decimal.Decimal `json:"totalUsed"`
	EmployeeCount int64           `json:"employeeCount"`
}

// AdminMetricsResponse is the org-wide rollup. Aggregate counts only;
// individual punch times are never included.
type AdminMetricsResponse struct {
	From       string                        `json:"from"`
	To         string                        `json:"to"`
	Attendance []OfficeAttendanceRowResponse `json:"attendance"`
	LeaveUsage []LeaveUsageRowResponse       `json:"leaveUsage"`
}

// ToEmployeeMetricsResponse converts domain.EmployeeMetrics to its DTO
func ToEmployeeMetricsResponse(m *domain.EmployeeMetrics) EmployeeMetricsResponse {
	return EmployeeMetricsResponse{
		EmployeeID:  m.EmployeeID,
		From:        m.Period.From.Format("2006-01-02"),
		To:          m.Period.To.Format("2006-01-02"),
		DaysPresent: m.DaysPresent,
		DaysAbsent:  m.DaysAbsent,
		TotalHours:  m.TotalHours,
		Balances:    ToListLeaveBalancesResponse(m.Balances),
	}
}

// ToAdminMetricsResponse converts domain.AdminMetrics to its DTO
func ToAdminMetricsResponse(m *domain.AdminMetrics) AdminMetricsResponse {
	attendance := make([]OfficeAttendanceRowResponse, len(m.Attendance))
	for i, row := range m.Attendance {
		attendance[i] = OfficeAttendanceRowResponse{
			OfficeID:     row.OfficeID,
			Department:   row.Department,
			PresentCount: row.PresentCount,
			AbsentCount:  row.AbsentCount,
		}
	}
	leaveUsage := make([]LeaveUsageRowResponse, len(m.LeaveUsage))
	for i, row := range m.LeaveUsage {
		leaveUsage[i] = LeaveUsageRowResponse{
			LeaveTypeID:   row.LeaveTypeID,
			LeaveTypeName: row.LeaveTypeName,
			TotalUsed:     row.TotalUsed,
			EmployeeCount: row.EmployeeCount,
		}
	}
	return AdminMetricsResponse{
		From:       m.Period.From.Format("2006-01-02"),
		To:         m.Period.To.Format("2006-01-02"),
		Attendance: attendance,
		LeaveUsage: leaveUsage,
	}
}
