package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/peoplehr/hr_ops_app/internal/apperrors"
	"github.com/peoplehr/hr_ops_app/internal/core/domain"
	portssvc "github.com/peoplehr/hr_ops_app/internal/core/ports/services"
)

// defaultStoreOpTimeout bounds a single store-backed operation when no
// timeout is configured.
const defaultStoreOpTimeout = 5 * time.Second

// engineService is the facade controllers consume. It owns two concerns the
// inner services deliberately do not: authorization (predicates on the
// verified identity) and the per-operation store deadline. It never
// auto-retries state-changing operations; a timed-out write surfaces as
// ErrStorageTimeout and the caller decides.
type engineService struct {
	BaseService
	attendance   portssvc.AttendanceSvcFacade
	leave        portssvc.LeaveSvcFacade
	reporting    portssvc.ReportingSvcFacade
	storeTimeout time.Duration
}

// NewEngineService creates the engine facade over the attendance, leave and
// reporting services.
func NewEngineService(attendance portssvc.AttendanceSvcFacade, leave portssvc.LeaveSvcFacade, reporting portssvc.ReportingSvcFacade, storeTimeout time.Duration) portssvc.EngineSvcFacade {
	if storeTimeout <= 0 {
		storeTimeout = defaultStoreOpTimeout
	}
	return &engineService{
		attendance:   attendance,
		leave:        leave,
		reporting:    reporting,
		storeTimeout: storeTimeout,
	}
}

var _ portssvc.EngineSvcFacade = (*engineService)(nil)

// CheckIn records a check-in for employeeID on behalf of identity.
func (s *engineService) CheckIn(ctx context.Context, identity domain.Identity, employeeID string, ts time.Time) (*domain.AttendanceRecord, error) {
	if !identity.CanActFor(employeeID) {
		return nil, fmt.Errorf("%w: cannot check in for another employee", apperrors.ErrForbidden)
	}
	opCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	record, err := s.attendance.CheckIn(opCtx, employeeID, ts)
	return record, s.mapStoreErr(err)
}

// CheckOut records a check-out for employeeID on behalf of identity.
func (s *engineService) CheckOut(ctx context.Context, identity domain.Identity, employeeID string, ts time.Time) (*domain.AttendanceRecord, error) {
	if !identity.CanActFor(employeeID) {
		return nil, fmt.Errorf("%w: cannot check out for another employee", apperrors.ErrForbidden)
	}
	opCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	record, err := s.attendance.CheckOut(opCtx, employeeID, ts)
	return record, s.mapStoreErr(err)
}

// ListAttendance returns the attendance history for employeeID.
func (s *engineService) ListAttendance(ctx context.Context, identity domain.Identity, employeeID string, limit int, nextToken *string) ([]domain.AttendanceRecord, *string, error) {
	if !identity.CanActFor(employeeID) {
		return nil, nil, fmt.Errorf("%w: cannot view another employee's attendance", apperrors.ErrForbidden)
	}
	opCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	records, token, err := s.attendance.ListAttendance(opCtx, employeeID, limit, nextToken)
	return records, token, s.mapStoreErr(err)
}

// GetEmployeeLeaveBalances returns all balances for employeeID.
func (s *engineService) GetEmployeeLeaveBalances(ctx context.Context, identity domain.Identity, employeeID string) ([]domain.LeaveBalance, error) {
	if !identity.CanActFor(employeeID) {
		return nil, fmt.Errorf("%w: cannot view another employee's leave balances", apperrors.ErrForbidden)
	}
	opCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	balances, err := s.leave.ListBalancesForEmployee(opCtx, employeeID)
	return balances, s.mapStoreErr(err)
}

// DeductLeave deducts units from employeeID's balance. The request path for
// taking leave; self-or-admin scoped.
func (s *engineService) DeductLeave(ctx context.Context, identity domain.Identity, employeeID, leaveTypeID string, units decimal.Decimal, notes string) (*domain.LeaveBalance, error) {
	if !identity.CanActFor(employeeID) {
		return nil, fmt.Errorf("%w: cannot deduct another employee's leave", apperrors.ErrForbidden)
	}
	opCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	balance, err := s.leave.Deduct(opCtx, employeeID, leaveTypeID, units, identity.EmployeeID, notes)
	return balance, s.mapStoreErr(err)
}

// CreditLeave returns units to employeeID's balance. The cancellation path.
func (s *engineService) CreditLeave(ctx context.Context, identity domain.Identity, employeeID, leaveTypeID string, units decimal.Decimal, notes string) (*domain.LeaveBalance, error) {
	if !identity.CanActFor(employeeID) {
		return nil, fmt.Errorf("%w: cannot credit another employee's leave", apperrors.ErrForbidden)
	}
	opCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	balance, err := s.leave.Credit(opCtx, employeeID, leaveTypeID, units, identity.EmployeeID, notes)
	return balance, s.mapStoreErr(err)
}

// AllocateLeave onboards employeeID to a leave type. Admin only.
func (s *engineService) AllocateLeave(ctx context.Context, identity domain.Identity, employeeID, leaveTypeID string, allocated decimal.Decimal) (*domain.LeaveBalance, error) {
	if !identity.IsAdmin() {
		return nil, fmt.Errorf("%w: allocating leave requires the admin role", apperrors.ErrForbidden)
	}
	opCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	balance, err := s.leave.Allocate(opCtx, employeeID, leaveTypeID, allocated, identity.EmployeeID)
	return balance, s.mapStoreErr(err)
}

// ListLeaveEntries returns the ledger audit trail for employeeID, newest
// first, optionally narrowed to one leave type.
func (s *engineService) ListLeaveEntries(ctx context.Context, identity domain.Identity, employeeID, leaveTypeID string) ([]domain.LeaveEntry, error) {
	if !identity.CanActFor(employeeID) {
		return nil, fmt.Errorf("%w: cannot view another employee's leave history", apperrors.ErrForbidden)
	}
	opCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	entries, err := s.leave.ListEntries(opCtx, employeeID, leaveTypeID)
	return entries, s.mapStoreErr(err)
}

// GetEmployeeMetrics returns the self-scoped metrics summary.
func (s *engineService) GetEmployeeMetrics(ctx context.Context, identity domain.Identity, employeeID string, period domain.Period) (*domain.EmployeeMetrics, error) {
	if !identity.CanActFor(employeeID) {
		return nil, fmt.Errorf("%w: cannot view another employee's metrics", apperrors.ErrForbidden)
	}
	opCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	metrics, err := s.reporting.EmployeeMetrics(opCtx, employeeID, period)
	return metrics, s.mapStoreErr(err)
}

// GetAdminMetrics returns the org-wide rollup. Admin only.
func (s *engineService) GetAdminMetrics(ctx context.Context, identity domain.Identity, period domain.Period, filters domain.MetricsFilters) (*domain.AdminMetrics, error) {
	if !identity.IsAdmin() {
		return nil, fmt.Errorf("%w: admin metrics require the admin role", apperrors.ErrForbidden)
	}
	opCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	metrics, err := s.reporting.AdminMetrics(opCtx, period, filters)
	return metrics, s.mapStoreErr(err)
}

// mapStoreErr surfaces an exceeded store deadline as ErrStorageTimeout.
// Other errors pass through untouched for errors.Is mapping upstream.
func (s *engineService) mapStoreErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", apperrors.ErrStorageTimeout, err)
	}
	return err
}
