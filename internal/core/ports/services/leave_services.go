package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/peoplehr/hr_ops_app/internal/core/domain"
)

// LeaveSvcFacade is the leave balance ledger: per-employee, per-leave-type
// balances with atomic, audited mutations.
type LeaveSvcFacade interface {
	// GetBalance is a pure read of one (employee, leave type) balance.
	GetBalance(ctx context.Context, employeeID, leaveTypeID string) (*domain.LeaveBalance, error)

	// Deduct atomically increments used by units after verifying
	// units <= available. Rejections are never clamped.
	Deduct(ctx context.Context, employeeID, leaveTypeID string, units decimal.Decimal, actorID, notes string) (*domain.LeaveBalance, error)

	// Credit decrements used by units, floored at zero. The reversal path
	// for leave-request cancellations.
	Credit(ctx context.Context, employeeID, leaveTypeID string, units decimal.Decimal, actorID, notes string) (*domain.LeaveBalance, error)

	// ListBalancesForEmployee returns one balance per leave type the
	// employee participates in.
	ListBalancesForEmployee(ctx context.Context, employeeID string) ([]domain.LeaveBalance, error)

	// Allocate onboards an employee to a leave type with an opening
	// allocation.
	Allocate(ctx context.Context, employeeID, leaveTypeID string, allocated decimal.Decimal, actorID string) (*domain.LeaveBalance, error)

	// ListEntries returns the ledger audit trail for an employee, newest
	// first; leaveTypeID narrows it when non-empty.
	ListEntries(ctx context.Context, employeeID, leaveTypeID string) ([]domain.LeaveEntry, error)
}

// LeaveTypeSvcFacade reads leave type reference data.
type LeaveTypeSvcFacade interface {
	GetLeaveType(ctx context.Context, leaveTypeID string) (*domain.LeaveType, error)
	ListLeaveTypes(ctx context.Context) ([]domain.LeaveType, error)
}
