package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/peoplehr/hr_ops_app/internal/apperrors"
	"github.com/peoplehr/hr_ops_app/internal/core/domain"
	portsrepo "github.com/peoplehr/hr_ops_app/internal/core/ports/repositories"
	portssvc "github.com/peoplehr/hr_ops_app/internal/core/ports/services"
)

// reportingService implements the metrics aggregator. It is strictly
// read-only and side-effect free: reads are safe to retry once on transient
// store failures, unlike the state-changing paths which never auto-retry.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	leaveRepo     portsrepo.LeaveBalanceReader
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, leaveRepo portsrepo.LeaveBalanceReader) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo, leaveRepo: leaveRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// EmployeeMetrics returns one employee's attendance summary for the period
// plus a current snapshot of leave balances. Absent days are derived:
// period days minus present days, never stored.
func (s *reportingService) EmployeeMetrics(ctx context.Context, employeeID string, period domain.Period) (*domain.EmployeeMetrics, error) {
	if employeeID == "" {
		return nil, fmt.Errorf("%w: employeeID is required", apperrors.ErrValidation)
	}
	if err := period.Validate(); err != nil {
		return nil, fmt.Errorf("%w: period end precedes start", err)
	}

	var stats *portsrepo.AttendanceStats
	err := s.withReadRetry(ctx, func() error {
		var opErr error
		stats, opErr = s.reportingRepo.GetEmployeeAttendanceStats(ctx, employeeID, period.From, period.To)
		return opErr
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate attendance stats", slog.String("employee_id", employeeID))
		return nil, err
	}

	var balances []domain.LeaveBalance
	err = s.withReadRetry(ctx, func() error {
		var opErr error
		balances, opErr = s.leaveRepo.ListBalancesByEmployee(ctx, employeeID)
		return opErr
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to snapshot leave balances", slog.String("employee_id", employeeID))
		return nil, err
	}

	daysAbsent := period.Days() - int(stats.DaysPresent)
	if daysAbsent < 0 {
		daysAbsent = 0
	}

	return &domain.EmployeeMetrics{
		EmployeeID:  employeeID,
		Period:      period,
		DaysPresent: int(stats.DaysPresent),
		DaysAbsent:  daysAbsent,
		TotalHours:  decimal.NewFromInt(stats.TotalMinutes).Div(decimal.NewFromInt(60)).Round(2),
		Balances:    balances,
	}, nil
}

// AdminMetrics returns the org-wide rollup: office attendance counts and
// per-type leave usage. Aggregate counts only; no individual punch
// timestamps cross this boundary.
func (s *reportingService) AdminMetrics(ctx context.Context, period domain.Period, filters domain.MetricsFilters) (*domain.AdminMetrics, error) {
	if err := period.Validate(); err != nil {
		return nil, fmt.Errorf("%w: period end precedes start", err)
	}

	var presence []portsrepo.OfficePresence
	err := s.withReadRetry(ctx, func() error {
		var opErr error
		presence, opErr = s.reportingRepo.GetOfficePresenceRollup(ctx, period.From, period.To, filters)
		return opErr
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate office presence")
		return nil, err
	}

	var usage []domain.LeaveUsageRow
	err = s.withReadRetry(ctx, func() error {
		var opErr error
		usage, opErr = s.reportingRepo.GetLeaveUsageRollup(ctx, period.From, period.To)
		return opErr
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate leave usage")
		return nil, err
	}

	days := int64(period.Days())
	attendance := make([]domain.OfficeAttendanceRow, len(presence))
	for i, row := range presence {
		absent := row.Headcount*days - row.PresentCount
		if absent < 0 {
			absent = 0
		}
		attendance[i] = domain.OfficeAttendanceRow{
			OfficeID:     row.OfficeID,
			Department:   row.Department,
			PresentCount: row.PresentCount,
			AbsentCount:  absent,
		}
	}

	return &domain.AdminMetrics{
		Period:     period,
		Attendance: attendance,
		LeaveUsage: usage,
	}, nil
}

// withReadRetry runs a read once more when it fails transiently. Only safe
// here because reporting reads have no side effects.
func (s *reportingService) withReadRetry(ctx context.Context, op func() error) error {
	err := op()
	if err != nil && apperrors.IsTransient(err) {
		s.LogDebug(ctx, "Transient store failure on reporting read, retrying", slog.String("error", err.Error()))
		err = op()
	}
	return err
}
