package repositories

import (
	"context"
	"time"

	"github.com/peoplehr/hr_ops_app/internal/core/domain"
)

// AttendanceStats is the raw per-employee attendance aggregate for a period.
type AttendanceStats struct {
	DaysPresent  int64
	TotalMinutes int64 // Closed check-in/out pairs only
}

// OfficePresence is the raw per-office/department aggregate joined against
// headcount, from which absent counts are derived.
type OfficePresence struct {
	OfficeID     string
	Department   string
	Headcount    int64
	PresentCount int64
}

// ReportingRepository is the read side feeding the metrics aggregator. Its
// queries tolerate eventual consistency: no locks, but each observed row is
// a committed write.
type ReportingRepository interface {
	// GetEmployeeAttendanceStats aggregates one employee's attendance within
	// [from, to]. In-progress days count as present with zero minutes.
	GetEmployeeAttendanceStats(ctx context.Context, employeeID string, from, to time.Time) (*AttendanceStats, error)

	// GetOfficePresenceRollup aggregates present counts and headcount per
	// office and department, optionally filtered. Aggregate counts only; raw
	// timestamps never leave this query.
	GetOfficePresenceRollup(ctx context.Context, from, to time.Time, filters domain.MetricsFilters) ([]OfficePresence, error)

	// GetLeaveUsageRollup aggregates ledger deductions per leave type.
	GetLeaveUsageRollup(ctx context.Context, from, to time.Time) ([]domain.LeaveUsageRow, error)
}
