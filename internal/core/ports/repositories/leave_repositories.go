package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/peoplehr/hr_ops_app/internal/core/domain"
)

// LeaveBalanceReader defines read operations for leave balances.
type LeaveBalanceReader interface {
	// FindBalance retrieves the balance row for (employee, leave type), or
	// apperrors.ErrNotFound when the employee is not onboarded to the type.
	FindBalance(ctx context.Context, employeeID, leaveTypeID string) (*domain.LeaveBalance, error)

	// ListBalancesByEmployee retrieves all balance rows for an employee, one
	// per participating leave type. Re-querying yields current state.
	ListBalancesByEmployee(ctx context.Context, employeeID string) ([]domain.LeaveBalance, error)
}

// LeaveBalanceWriter defines write operations for leave balances. Every
// mutation appends its ledger entry in the same transaction.
type LeaveBalanceWriter interface {
	// CreateBalance inserts a new balance row plus its ALLOCATION entry.
	// A duplicate (employee, leave type) pair yields apperrors.ErrDuplicate.
	CreateBalance(ctx context.Context, balance domain.LeaveBalance, entry domain.LeaveEntry) error

	// ApplyEntry sets used to newUsed and appends the ledger entry, guarded
	// by compare-and-swap on the version column. A version mismatch yields
	// apperrors.ErrConcurrentUpdate for the caller's bounded retry loop.
	ApplyEntry(ctx context.Context, entry domain.LeaveEntry, expectedVersion int64, newUsed decimal.Decimal) error
}

// LeaveEntryReader defines read operations over the ledger audit trail.
type LeaveEntryReader interface {
	// ListEntriesByEmployee retrieves ledger entries for an employee, newest
	// first, optionally narrowed to one leave type (empty string means all).
	ListEntriesByEmployee(ctx context.Context, employeeID, leaveTypeID string) ([]domain.LeaveEntry, error)
}

// LeaveRepositoryFacade combines all leave repository interfaces.
type LeaveRepositoryFacade interface {
	LeaveBalanceReader
	LeaveBalanceWriter
	LeaveEntryReader
}

// LeaveRepositoryWithTx extends the facade with transaction capabilities.
type LeaveRepositoryWithTx interface {
	LeaveRepositoryFacade
	TransactionManager
}

// LeaveTypeReader defines read access to leave type reference data. The
// engine never writes leave types.
type LeaveTypeReader interface {
	FindLeaveTypeByID(ctx context.Context, leaveTypeID string) (*domain.LeaveType, error)
	ListLeaveTypes(ctx context.Context) ([]domain.LeaveType, error)
}
