package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/peoplehr/hr_ops_app/internal/apperrors"
	"github.com/peoplehr/hr_ops_app/internal/core/domain"
	portsrepo "github.com/peoplehr/hr_ops_app/internal/core/ports/repositories"
	"github.com/peoplehr/hr_ops_app/internal/models"
	"github.com/peoplehr/hr_ops_app/internal/utils/mapping"
	"github.com/peoplehr/hr_ops_app/internal/utils/pagination"
)

type PgxAttendanceRepository struct {
	BaseRepository
}

// newPgxAttendanceRepository creates a new repository for attendance data.
func newPgxAttendanceRepository(pool *pgxpool.Pool) portsrepo.AttendanceRepositoryWithTx {
	return &PgxAttendanceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAttendanceRepository implements portsrepo.AttendanceRepositoryWithTx
var _ portsrepo.AttendanceRepositoryWithTx = (*PgxAttendanceRepository)(nil)

// checkInConflictError classifies a check-in that lost to an existing row
// by that row's state: a closed day is never re-opened.
func checkInConflictError(status models.AttendanceStatus, employeeID string, date time.Time) error {
	if status == models.CheckedOut {
		return fmt.Errorf("%w: employee %s already completed attendance on %s", apperrors.ErrAlreadyCompleted, employeeID, date.Format("2006-01-02"))
	}
	return fmt.Errorf("%w: employee %s already checked in on %s", apperrors.ErrDuplicateCheckIn, employeeID, date.Format("2006-01-02"))
}

// judgeCheckOutTransition validates a check-out against the locked row.
// Check-out proceeds only from CHECKED_IN with a strictly later timestamp.
func judgeCheckOutTransition(rec models.AttendanceRecord, checkOutTime time.Time) error {
	switch rec.Status {
	case models.CheckedOut:
		return fmt.Errorf("%w: employee %s already checked out on %s", apperrors.ErrAlreadyCompleted, rec.EmployeeID, rec.AttendanceDate.Format("2006-01-02"))
	case models.CheckedIn:
		// The only state check-out proceeds from
	default:
		return fmt.Errorf("%w: employee %s has no open check-in on %s", apperrors.ErrNoActiveCheckIn, rec.EmployeeID, rec.AttendanceDate.Format("2006-01-02"))
	}

	if rec.CheckInTime == nil {
		return fmt.Errorf("%w: attendance record %s has no check-in time", apperrors.ErrNoActiveCheckIn, rec.RecordID)
	}
	if !checkOutTime.After(*rec.CheckInTime) {
		return fmt.Errorf("%w: check-out %s must be strictly after check-in %s", apperrors.ErrInvalidOrdering, checkOutTime.Format(time.RFC3339), rec.CheckInTime.Format(time.RFC3339))
	}
	return nil
}

// CreateCheckIn inserts the day's attendance record in CHECKED_IN state.
// The unique index on (employee_id, attendance_date) is the arbiter when two
// check-ins race: exactly one insert wins, the loser gets a conflict error
// classified by the winning row's state.
func (r *PgxAttendanceRepository) CreateCheckIn(ctx context.Context, record domain.AttendanceRecord) error {
	modelRec := mapping.ToModelAttendanceRecord(record)

	query := `
		INSERT INTO attendance_records (record_id, employee_id, attendance_date, check_in_time, check_out_time, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelRec.RecordID,
		modelRec.EmployeeID,
		modelRec.AttendanceDate,
		modelRec.CheckInTime,
		modelRec.CheckOutTime,
		modelRec.Status,
		modelRec.CreatedAt,
		modelRec.CreatedBy,
		modelRec.LastUpdatedAt,
		modelRec.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			status, lookupErr := r.findDayStatus(ctx, modelRec.EmployeeID, modelRec.AttendanceDate)
			if lookupErr != nil {
				// The winning row could not be read back; report the plain duplicate.
				status = models.CheckedIn
			}
			return checkInConflictError(status, modelRec.EmployeeID, modelRec.AttendanceDate)
		}
		return fmt.Errorf("failed to save check-in for employee %s: %w", modelRec.EmployeeID, err)
	}
	return nil
}

// findDayStatus reads the state of an employee's record for one date.
func (r *PgxAttendanceRepository) findDayStatus(ctx context.Context, employeeID string, date time.Time) (models.AttendanceStatus, error) {
	query := `
		SELECT status
		FROM attendance_records
		WHERE employee_id = $1 AND attendance_date = $2;
	`
	var status models.AttendanceStatus
	err := r.Pool.QueryRow(ctx, query, employeeID, date).Scan(&status)
	return status, err
}

// CompleteCheckOut transitions the day's record to CHECKED_OUT. The row is
// re-read under FOR UPDATE inside a transaction so the transition is judged
// against committed state, never a stale read.
func (r *PgxAttendanceRepository) CompleteCheckOut(ctx context.Context, employeeID string, date time.Time, checkOutTime time.Time, updatedBy string) (*domain.AttendanceRecord, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck // Rollback after commit is a no-op

	lockQuery := `
		SELECT record_id, employee_id, attendance_date, check_in_time, check_out_time, status, created_at, created_by, last_updated_at, last_updated_by
		FROM attendance_records
		WHERE employee_id = $1 AND attendance_date = $2
		FOR UPDATE;
	`
	var modelRec models.AttendanceRecord
	err = tx.QueryRow(ctx, lockQuery, employeeID, date).Scan(
		&modelRec.RecordID,
		&modelRec.EmployeeID,
		&modelRec.AttendanceDate,
		&modelRec.CheckInTime,
		&modelRec.CheckOutTime,
		&modelRec.Status,
		&modelRec.CreatedAt,
		&modelRec.CreatedBy,
		&modelRec.LastUpdatedAt,
		&modelRec.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: employee %s has no attendance record on %s", apperrors.ErrNoActiveCheckIn, employeeID, date.Format("2006-01-02"))
		}
		return nil, fmt.Errorf("failed to lock attendance record for employee %s: %w", employeeID, err)
	}

	if err := judgeCheckOutTransition(modelRec, checkOutTime); err != nil {
		return nil, err
	}

	updateQuery := `
		UPDATE attendance_records
		SET check_out_time = $2, status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE record_id = $1;
	`
	now := time.Now().UTC()
	_, err = tx.Exec(ctx, updateQuery, modelRec.RecordID, checkOutTime, models.CheckedOut, now, updatedBy)
	if err != nil {
		return nil, fmt.Errorf("failed to update attendance record %s: %w", modelRec.RecordID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	modelRec.CheckOutTime = &checkOutTime
	modelRec.Status = models.CheckedOut
	modelRec.LastUpdatedAt = now
	modelRec.LastUpdatedBy = updatedBy
	domainRec := mapping.ToDomainAttendanceRecord(modelRec)
	return &domainRec, nil
}

// FindRecordByEmployeeAndDate retrieves one employee's record for one
// calendar date.
func (r *PgxAttendanceRepository) FindRecordByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*domain.AttendanceRecord, error) {
	query := `
		SELECT record_id, employee_id, attendance_date, check_in_time, check_out_time, status, created_at, created_by, last_updated_at, last_updated_by
		FROM attendance_records
		WHERE employee_id = $1 AND attendance_date = $2;
	`
	var modelRec models.AttendanceRecord
	err := r.Pool.QueryRow(ctx, query, employeeID, date).Scan(
		&modelRec.RecordID,
		&modelRec.EmployeeID,
		&modelRec.AttendanceDate,
		&modelRec.CheckInTime,
		&modelRec.CheckOutTime,
		&modelRec.Status,
		&modelRec.CreatedAt,
		&modelRec.CreatedBy,
		&modelRec.LastUpdatedAt,
		&modelRec.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find attendance record for employee %s: %w", employeeID, err)
	}

	domainRec := mapping.ToDomainAttendanceRecord(modelRec)
	return &domainRec, nil
}

// ListRecordsByEmployee retrieves a paginated attendance history for an
// employee, newest first, using token-based pagination.
func (r *PgxAttendanceRepository) ListRecordsByEmployee(ctx context.Context, employeeID string, limit int, nextToken *string) ([]domain.AttendanceRecord, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	queryArgs := []interface{}{employeeID}
	query := `
		SELECT record_id, employee_id, attendance_date, check_in_time, check_out_time, status, created_at, created_by, last_updated_at, last_updated_by
		FROM attendance_records
		WHERE employee_id = $1
	`

	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		query += ` AND (attendance_date, created_at) < ($2, $3)`
		queryArgs = append(queryArgs, lastDate, lastCreatedAt)
	}

	// Fetch one extra row to determine whether another page exists
	query += fmt.Sprintf(` ORDER BY attendance_date DESC, created_at DESC LIMIT $%d;`, len(queryArgs)+1)
	queryArgs = append(queryArgs, limit+1)

	rows, err := r.Pool.Query(ctx, query, queryArgs...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query attendance records for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	modelRecs := []models.AttendanceRecord{}
	for rows.Next() {
		var modelRec models.AttendanceRecord
		err := rows.Scan(
			&modelRec.RecordID,
			&modelRec.EmployeeID,
			&modelRec.AttendanceDate,
			&modelRec.CheckInTime,
			&modelRec.CheckOutTime,
			&modelRec.Status,
			&modelRec.CreatedAt,
			&modelRec.CreatedBy,
			&modelRec.LastUpdatedAt,
			&modelRec.LastUpdatedBy,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan attendance record row: %w", err)
		}
		modelRecs = append(modelRecs, modelRec)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating attendance record rows: %w", err)
	}

	var nextTokenVal *string
	if len(modelRecs) > limit {
		modelRecs = modelRecs[:limit]
		last := modelRecs[len(modelRecs)-1]
		token := pagination.EncodeToken(last.AttendanceDate, last.CreatedAt)
		nextTokenVal = &token
	}

	return mapping.ToDomainAttendanceRecordSlice(modelRecs), nextTokenVal, nil
}
