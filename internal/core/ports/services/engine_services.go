package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/peoplehr/hr_ops_app/internal/core/domain"
)

// EngineSvcFacade is the contract controllers consume. Every operation
// takes the verified caller identity; employee-scoped operations require
// identity.CanActFor(employeeID) and admin operations require the admin
// role, surfaced as apperrors.ErrForbidden otherwise. The facade also owns
// the per-operation store deadline and never auto-retries state-changing
// operations.
type EngineSvcFacade interface {
	CheckIn(ctx context.Context, identity domain.Identity, employeeID string, ts time.Time) (*domain.AttendanceRecord, error)
	CheckOut(ctx context.Context, identity domain.Identity, employeeID string, ts time.Time) (*domain.AttendanceRecord, error)
	ListAttendance(ctx context.Context, identity domain.Identity, employeeID string, limit int, nextToken *string) ([]domain.AttendanceRecord, *string, error)

	GetEmployeeLeaveBalances(ctx context.Context, identity domain.Identity, employeeID string) ([]domain.LeaveBalance, error)
	DeductLeave(ctx context.Context, identity domain.Identity, employeeID, leaveTypeID string, units decimal.Decimal, notes string) (*domain.LeaveBalance, error)
	CreditLeave(ctx context.Context, identity domain.Identity, employeeID, leaveTypeID string, units decimal.Decimal, notes string) (*domain.LeaveBalance, error)
	AllocateLeave(ctx context.Context, identity domain.Identity, employeeID, leaveTypeID string, allocated decimal.Decimal) (*domain.LeaveBalance, error)
	ListLeaveEntries(ctx context.Context, identity domain.Identity, employeeID, leaveTypeID string) ([]domain.LeaveEntry, error)

	GetEmployeeMetrics(ctx context.Context, identity domain.Identity, employeeID string, period domain.Period) (*domain.EmployeeMetrics, error)
	GetAdminMetrics(ctx context.Context, identity domain.Identity, period domain.Period, filters domain.MetricsFilters) (*domain.AdminMetrics, error)
}
