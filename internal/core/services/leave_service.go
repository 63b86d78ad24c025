package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/peoplehr/hr_ops_app/internal/apperrors"
	"github.com/peoplehr/hr_ops_app/internal/core/domain"
	portsrepo "github.com/peoplehr/hr_ops_app/internal/core/ports/repositories"
	portssvc "github.com/peoplehr/hr_ops_app/internal/core/ports/services"
)

// maxBalanceAttempts bounds the read-check-swap retry loop for balance
// mutations. Contention beyond this surfaces ErrConcurrentUpdate to the
// caller instead of spinning.
const maxBalanceAttempts = 3

// leaveService implements the leave balance ledger. Balances mutate only
// through compare-and-swap writes that append their ledger entry in the
// same transaction, so the audit trail can always reproduce the balance.
type leaveService struct {
	BaseService
	leaveRepo     portsrepo.LeaveRepositoryWithTx
	leaveTypeRepo portsrepo.LeaveTypeReader
}

// NewLeaveService creates a new leave ledger service.
func NewLeaveService(leaveRepo portsrepo.LeaveRepositoryWithTx, leaveTypeRepo portsrepo.LeaveTypeReader) portssvc.LeaveSvcFacade {
	return &leaveService{leaveRepo: leaveRepo, leaveTypeRepo: leaveTypeRepo}
}

var _ portssvc.LeaveSvcFacade = (*leaveService)(nil)

// GetBalance is a pure read of one (employee, leave type) balance.
func (s *leaveService) GetBalance(ctx context.Context, employeeID, leaveTypeID string) (*domain.LeaveBalance, error) {
	if employeeID == "" || leaveTypeID == "" {
		return nil, fmt.Errorf("%w: employeeID and leaveTypeID are required", apperrors.ErrValidation)
	}
	balance, err := s.leaveRepo.FindBalance(ctx, employeeID, leaveTypeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find leave balance", slog.String("employee_id", employeeID), slog.String("leave_type_id", leaveTypeID))
		}
		return nil, err
	}
	return balance, nil
}

// ListBalancesForEmployee returns one balance per leave type the employee
// participates in.
func (s *leaveService) ListBalancesForEmployee(ctx context.Context, employeeID string) ([]domain.LeaveBalance, error) {
	if employeeID == "" {
		return nil, fmt.Errorf("%w: employeeID is required", apperrors.ErrValidation)
	}
	balances, err := s.leaveRepo.ListBalancesByEmployee(ctx, employeeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list leave balances", slog.String("employee_id", employeeID))
		return nil, err
	}
	return balances, nil
}

// Deduct decrements the available balance by units. The check against
// available and the write are made atomic by the version CAS: when another
// writer slips in between, the stale swap loses and the loop re-reads.
// Insufficient balance is rejected outright, never clamped.
func (s *leaveService) Deduct(ctx context.Context, employeeID, leaveTypeID string, units decimal.Decimal, actorID, notes string) (*domain.LeaveBalance, error) {
	if err := s.validateMutation(employeeID, leaveTypeID, units, actorID); err != nil {
		return nil, err
	}
	if _, err := s.leaveTypeRepo.FindLeaveTypeByID(ctx, leaveTypeID); err != nil {
		return nil, err
	}

	for attempt := 1; attempt <= maxBalanceAttempts; attempt++ {
		balance, err := s.leaveRepo.FindBalance(ctx, employeeID, leaveTypeID)
		if err != nil {
			return nil, err
		}
		if balance.Used.GreaterThan(balance.Allocated) {
			s.LogError(ctx, apperrors.ErrDataIntegrity, "Leave balance has used > allocated", slog.String("employee_id", employeeID), slog.String("leave_type_id", leaveTypeID))
			return nil, fmt.Errorf("%w: leave balance for employee %s type %s has used > allocated", apperrors.ErrDataIntegrity, employeeID, leaveTypeID)
		}
		if units.GreaterThan(balance.Available()) {
			return nil, fmt.Errorf("%w: requested %s units, %s available", apperrors.ErrInsufficientBalance, units.String(), balance.Available().String())
		}

		newUsed := balance.Used.Add(units)
		entry := s.newEntry(employeeID, leaveTypeID, domain.EntryDeduction, units, balance.Allocated.Sub(newUsed), actorID, notes)

		err = s.leaveRepo.ApplyEntry(ctx, entry, balance.Version, newUsed)
		if err == nil {
			s.LogInfo(ctx, "Leave deducted", slog.String("employee_id", employeeID), slog.String("leave_type_id", leaveTypeID), slog.String("units", units.String()))
			return s.appliedBalance(balance, newUsed, actorID, entry.CreatedAt), nil
		}
		if errors.Is(err, apperrors.ErrConcurrentUpdate) && attempt < maxBalanceAttempts {
			s.LogDebug(ctx, "Leave balance version conflict, retrying", slog.Int("attempt", attempt), slog.String("employee_id", employeeID))
			continue
		}
		if !errors.Is(err, apperrors.ErrConcurrentUpdate) {
			s.LogError(ctx, err, "Failed to apply leave deduction", slog.String("employee_id", employeeID), slog.String("leave_type_id", leaveTypeID))
		}
		return nil, err
	}
	return nil, apperrors.ErrConcurrentUpdate
}

// Credit returns units to the balance, floored at used = 0. The reversal
// path for leave-request cancellations.
func (s *leaveService) Credit(ctx context.Context, employeeID, leaveTypeID string, units decimal.Decimal, actorID, notes string) (*domain.LeaveBalance, error) {
	if err := s.validateMutation(employeeID, leaveTypeID, units, actorID); err != nil {
		return nil, err
	}
	if _, err := s.leaveTypeRepo.FindLeaveTypeByID(ctx, leaveTypeID); err != nil {
		return nil, err
	}

	for attempt := 1; attempt <= maxBalanceAttempts; attempt++ {
		balance, err := s.leaveRepo.FindBalance(ctx, employeeID, leaveTypeID)
		if err != nil {
			return nil, err
		}

		newUsed := balance.Used.Sub(units)
		if newUsed.IsNegative() {
			newUsed = decimal.Zero
		}
		entry := s.newEntry(employeeID, leaveTypeID, domain.EntryCredit, units, balance.Allocated.Sub(newUsed), actorID, notes)

		err = s.leaveRepo.ApplyEntry(ctx, entry, balance.Version, newUsed)
		if err == nil {
			s.LogInfo(ctx, "Leave credited", slog.String("employee_id", employeeID), slog.String("leave_type_id", leaveTypeID), slog.String("units", units.String()))
			return s.appliedBalance(balance, newUsed, actorID, entry.CreatedAt), nil
		}
		if errors.Is(err, apperrors.ErrConcurrentUpdate) && attempt < maxBalanceAttempts {
			continue
		}
		if !errors.Is(err, apperrors.ErrConcurrentUpdate) {
			s.LogError(ctx, err, "Failed to apply leave credit", slog.String("employee_id", employeeID), slog.String("leave_type_id", leaveTypeID))
		}
		return nil, err
	}
	return nil, apperrors.ErrConcurrentUpdate
}

// Allocate onboards an employee to a leave type with an opening allocation.
func (s *leaveService) Allocate(ctx context.Context, employeeID, leaveTypeID string, allocated decimal.Decimal, actorID string) (*domain.LeaveBalance, error) {
	if employeeID == "" || leaveTypeID == "" || actorID == "" {
		return nil, fmt.Errorf("%w: employeeID, leaveTypeID and actorID are required", apperrors.ErrValidation)
	}
	if allocated.IsNegative() {
		return nil, fmt.Errorf("%w: allocation cannot be negative", apperrors.ErrValidation)
	}
	if _, err := s.leaveTypeRepo.FindLeaveTypeByID(ctx, leaveTypeID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	balance := domain.LeaveBalance{
		EmployeeID:  employeeID,
		LeaveTypeID: leaveTypeID,
		Allocated:   allocated,
		Used:        decimal.Zero,
		Version:     1,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}
	entry := s.newEntry(employeeID, leaveTypeID, domain.EntryAllocation, allocated, allocated, actorID, "opening allocation")

	if err := s.leaveRepo.CreateBalance(ctx, balance, entry); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to create leave balance", slog.String("employee_id", employeeID), slog.String("leave_type_id", leaveTypeID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Leave balance allocated", slog.String("employee_id", employeeID), slog.String("leave_type_id", leaveTypeID), slog.String("allocated", allocated.String()))
	return &balance, nil
}

// ListEntries returns the ledger audit trail for an employee, newest first.
func (s *leaveService) ListEntries(ctx context.Context, employeeID, leaveTypeID string) ([]domain.LeaveEntry, error) {
	if employeeID == "" {
		return nil, fmt.Errorf("%w: employeeID is required", apperrors.ErrValidation)
	}
	entries, err := s.leaveRepo.ListEntriesByEmployee(ctx, employeeID, leaveTypeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list leave entries", slog.String("employee_id", employeeID))
		return nil, err
	}
	return entries, nil
}

func (s *leaveService) validateMutation(employeeID, leaveTypeID string, units decimal.Decimal, actorID string) error {
	if employeeID == "" || leaveTypeID == "" || actorID == "" {
		return fmt.Errorf("%w: employeeID, leaveTypeID and actorID are required", apperrors.ErrValidation)
	}
	if !units.IsPositive() {
		return fmt.Errorf("%w: units must be positive", apperrors.ErrValidation)
	}
	return nil
}

func (s *leaveService) newEntry(employeeID, leaveTypeID string, entryType domain.LeaveEntryType, units, balanceAfter decimal.Decimal, actorID, notes string) domain.LeaveEntry {
	now := time.Now().UTC()
	return domain.LeaveEntry{
		EntryID:      uuid.NewString(),
		EmployeeID:   employeeID,
		LeaveTypeID:  leaveTypeID,
		EntryType:    entryType,
		Units:        units,
		BalanceAfter: balanceAfter,
		Notes:        notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}
}

// appliedBalance is the post-swap view of a balance without a re-read.
func (s *leaveService) appliedBalance(balance *domain.LeaveBalance, newUsed decimal.Decimal, actorID string, at time.Time) *domain.LeaveBalance {
	updated := *balance
	updated.Used = newUsed
	updated.Version = balance.Version + 1
	updated.LastUpdatedAt = at
	updated.LastUpdatedBy = actorID
	return &updated
}
