package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/peoplehr/hr_ops_app/internal/apperrors"
)

// Period is a closed date range used by the metrics aggregator.
type Period struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Validate rejects malformed periods (end before start).
func (p Period) Validate() error {
	if p.To.Before(p.From) {
		return apperrors.ErrValidation
	}
	return nil
}

// Days returns the number of calendar days covered, inclusive. Days are
// counted in the period's own location; dividing elapsed hours by 24 would
// drop a day whenever a DST transition falls inside the period.
func (p Period) Days() int {
	loc := p.From.Location()
	from := time.Date(p.From.Year(), p.From.Month(), p.From.Day(), 0, 0, 0, 0, loc)
	end := p.To.In(loc)
	to := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, loc)
	if to.Before(from) {
		return 0
	}

	days := 1
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		days++
	}
	return days
}

// MetricsFilters narrows an admin rollup. Zero values mean no filtering.
type MetricsFilters struct {
	OfficeID   string `json:"officeID,omitempty"`
	Department string `json:"department,omitempty"`
}

// EmployeeMetrics is the self-scoped dashboard summary: attendance counts
// and hours for the period plus a current snapshot of leave balances.
type EmployeeMetrics struct {
	EmployeeID  string          `json:"employeeID"`
	Period      Period          `json:"period"`
	DaysPresent int             `json:"daysPresent"`
	DaysAbsent  int             `json:"daysAbsent"`
	TotalHours  decimal.Decimal `json:"totalHours"`
	Balances    []LeaveBalance  `json:"balances"`
}

// OfficeAttendanceRow is one aggregate line of the admin rollup. Counts
// only; no individual timestamps cross this boundary.
type OfficeAttendanceRow struct {
	OfficeID     string `json:"officeID"`
	Department   string `json:"department"`
	PresentCount int64  `json:"presentCount"`
	AbsentCount  int64  `json:"absentCount"`
}

// LeaveUsageRow aggregates ledger deductions per leave type.
type LeaveUsageRow struct {
	LeaveTypeID   string          `json:"leaveTypeID"`
	LeaveTypeName string          `json:"leaveTypeName"`
	TotalUsed     decimal.Decimal `json:"totalUsed"`
	EmployeeCount int64           `json:"employeeCount"`
}

// AdminMetrics is the org-wide rollup for the admin dashboard.
type AdminMetrics struct {
	Period     Period                `json:"period"`
	Attendance []OfficeAttendanceRow `json:"attendance"`
	LeaveUsage []LeaveUsageRow       `json:"leaveUsage"`
}
