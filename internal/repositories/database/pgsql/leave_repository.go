package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/peoplehr/hr_ops_app/internal/apperrors"
	"github.com/peoplehr/hr_ops_app/internal/core/domain"
	portsrepo "github.com/peoplehr/hr_ops_app/internal/core/ports/repositories"
	"github.com/peoplehr/hr_ops_app/internal/models"
	"github.com/peoplehr/hr_ops_app/internal/utils/mapping"
)

type PgxLeaveRepository struct {
	BaseRepository
}

// newPgxLeaveRepository creates a new repository for leave balances and the
// ledger audit trail.
func newPgxLeaveRepository(pool *pgxpool.Pool) portsrepo.LeaveRepositoryWithTx {
	return &PgxLeaveRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxLeaveRepository implements portsrepo.LeaveRepositoryWithTx
var _ portsrepo.LeaveRepositoryWithTx = (*PgxLeaveRepository)(nil)

// FindBalance retrieves the balance row for one (employee, leave type) pair.
func (r *PgxLeaveRepository) FindBalance(ctx context.Context, employeeID, leaveTypeID string) (*domain.LeaveBalance, error) {
	query := `
		SELECT employee_id, leave_type_id, allocated, used, version, created_at, created_by, last_updated_at, last_updated_by
		FROM leave_balances
		WHERE employee_id = $1 AND leave_type_id = $2;
	`
	var modelBal models.LeaveBalance
	err := r.Pool.QueryRow(ctx, query, employeeID, leaveTypeID).Scan(
		&modelBal.EmployeeID,
		&modelBal.LeaveTypeID,
		&modelBal.Allocated,
		&modelBal.Used,
		&modelBal.Version,
		&modelBal.CreatedAt,
		&modelBal.CreatedBy,
		&modelBal.LastUpdatedAt,
		&modelBal.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find leave balance for employee %s type %s: %w", employeeID, leaveTypeID, err)
	}

	domainBal := mapping.ToDomainLeaveBalance(modelBal)
	return &domainBal, nil
}

// ListBalancesByEmployee retrieves all balance rows for an employee.
func (r *PgxLeaveRepository) ListBalancesByEmployee(ctx context.Context, employeeID string) ([]domain.LeaveBalance, error) {
	query := `
		SELECT employee_id, leave_type_id, allocated, used, version, created_at, created_by, last_updated_at, last_updated_by
		FROM leave_balances
		WHERE employee_id = $1
		ORDER BY leave_type_id;
	`
	rows, err := r.Pool.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave balances for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	modelBals := []models.LeaveBalance{}
	for rows.Next() {
		var modelBal models.LeaveBalance
		err := rows.Scan(
			&modelBal.EmployeeID,
			&modelBal.LeaveTypeID,
			&modelBal.Allocated,
			&modelBal.Used,
			&modelBal.Version,
			&modelBal.CreatedAt,
			&modelBal.CreatedBy,
			&modelBal.LastUpdatedAt,
			&modelBal.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave balance row: %w", err)
		}
		modelBals = append(modelBals, modelBal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating leave balance rows: %w", err)
	}

	return mapping.ToDomainLeaveBalanceSlice(modelBals), nil
}

// CreateBalance inserts a new balance row together with its ALLOCATION
// ledger entry in a single transaction.
func (r *PgxLeaveRepository) CreateBalance(ctx context.Context, balance domain.LeaveBalance, entry domain.LeaveEntry) error {
	modelBal := mapping.ToModelLeaveBalance(balance)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck // Rollback after commit is a no-op

	query := `
		INSERT INTO leave_balances (employee_id, leave_type_id, allocated, used, version, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, query,
		modelBal.EmployeeID,
		modelBal.LeaveTypeID,
		modelBal.Allocated,
		modelBal.Used,
		modelBal.Version,
		modelBal.CreatedAt,
		modelBal.CreatedBy,
		modelBal.LastUpdatedAt,
		modelBal.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: leave balance for employee %s type %s already exists", apperrors.ErrDuplicate, modelBal.EmployeeID, modelBal.LeaveTypeID)
		}
		return fmt.Errorf("failed to save leave balance for employee %s: %w", modelBal.EmployeeID, err)
	}

	if err := r.insertLeaveEntryTx(ctx, tx, entry); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// ApplyEntry sets the balance's used units and appends the ledger entry in
// one transaction, guarded by compare-and-swap on the version column. The
// entry insert only happens when the CAS wins, so the ledger and the balance
// row can never disagree.
func (r *PgxLeaveRepository) ApplyEntry(ctx context.Context, entry domain.LeaveEntry, expectedVersion int64, newUsed decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck // Rollback after commit is a no-op

	query := `
		UPDATE leave_balances
		SET used = $4, version = version + 1, last_updated_at = $5, last_updated_by = $6
		WHERE employee_id = $1 AND leave_type_id = $2 AND version = $3;
	`
	cmdTag, err := tx.Exec(ctx, query,
		entry.EmployeeID,
		entry.LeaveTypeID,
		expectedVersion,
		newUsed,
		time.Now().UTC(),
		entry.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update leave balance for employee %s type %s: %w", entry.EmployeeID, entry.LeaveTypeID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		// Either the row moved past expectedVersion or it never existed.
		var exists bool
		checkErr := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM leave_balances WHERE employee_id = $1 AND leave_type_id = $2);`, entry.EmployeeID, entry.LeaveTypeID).Scan(&exists)
		if checkErr != nil {
			return fmt.Errorf("failed to check leave balance existence for employee %s: %w", entry.EmployeeID, checkErr)
		}
		if !exists {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("%w: leave balance for employee %s type %s changed since read", apperrors.ErrConcurrentUpdate, entry.EmployeeID, entry.LeaveTypeID)
	}

	if err := r.insertLeaveEntryTx(ctx, tx, entry); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// insertLeaveEntryTx appends one ledger entry within an existing transaction.
func (r *PgxLeaveRepository) insertLeaveEntryTx(ctx context.Context, tx pgx.Tx, entry domain.LeaveEntry) error {
	modelEntry := mapping.ToModelLeaveEntry(entry)

	query := `
		INSERT INTO leave_entries (entry_id, employee_id, leave_type_id, entry_type, units, balance_after, notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := tx.Exec(ctx, query,
		modelEntry.EntryID,
		modelEntry.EmployeeID,
		modelEntry.LeaveTypeID,
		modelEntry.EntryType,
		modelEntry.Units,
		modelEntry.BalanceAfter,
		modelEntry.Notes,
		modelEntry.CreatedAt,
		modelEntry.CreatedBy,
		modelEntry.LastUpdatedAt,
		modelEntry.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save leave entry %s: %w", modelEntry.EntryID, err)
	}
	return nil
}

// ListEntriesByEmployee retrieves ledger entries for an employee, newest
// first. An empty leaveTypeID returns entries across all leave types.
func (r *PgxLeaveRepository) ListEntriesByEmployee(ctx context.Context, employeeID, leaveTypeID string) ([]domain.LeaveEntry, error) {
	queryArgs := []interface{}{employeeID}
	query := `
		SELECT entry_id, employee_id, leave_type_id, entry_type, units, balance_after, notes, created_at, created_by, last_updated_at, last_updated_by
		FROM leave_entries
		WHERE employee_id = $1
	`
	if leaveTypeID != "" {
		query += ` AND leave_type_id = $2`
		queryArgs = append(queryArgs, leaveTypeID)
	}
	query += ` ORDER BY created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, queryArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave entries for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	entries := []domain.LeaveEntry{}
	for rows.Next() {
		var modelEntry models.LeaveEntry
		err := rows.Scan(
			&modelEntry.EntryID,
			&modelEntry.EmployeeID,
			&modelEntry.LeaveTypeID,
			&modelEntry.EntryType,
			&modelEntry.Units,
			&modelEntry.BalanceAfter,
			&modelEntry.Notes,
			&modelEntry.CreatedAt,
			&modelEntry.CreatedBy,
			&modelEntry.LastUpdatedAt,
			&modelEntry.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave entry row: %w", err)
		}
		entries = append(entries, mapping.ToDomainLeaveEntry(modelEntry))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating leave entry rows: %w", err)
	}

	return entries, nil
}
