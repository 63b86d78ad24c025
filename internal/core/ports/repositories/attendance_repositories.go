package repositories

import (
	"context"
	"time"

	"github.com/peoplehr/hr_ops_app/internal/core/domain"
)

// AttendanceReader defines read operations for attendance records.
type AttendanceReader interface {
	// FindRecordByEmployeeAndDate retrieves the record for one employee on
	// one calendar date, or apperrors.ErrNotFound when the day has no record.
	FindRecordByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*domain.AttendanceRecord, error)

	// ListRecordsByEmployee retrieves a paginated attendance history, newest
	// first, using token-based pagination.
	ListRecordsByEmployee(ctx context.Context, employeeID string, limit int, nextToken *string) ([]domain.AttendanceRecord, *string, error)
}

// AttendanceWriter defines write operations for attendance records.
type AttendanceWriter interface {
	// CreateCheckIn inserts the day's record in CHECKED_IN state. A unique
	// index on (employee_id, attendance_date) turns racing inserts into
	// apperrors.ErrDuplicateCheckIn.
	CreateCheckIn(ctx context.Context, record domain.AttendanceRecord) error

	// CompleteCheckOut transitions the day's record to CHECKED_OUT inside a
	// single transaction that re-reads the row under lock, so a committed
	// check-in is always observed before the transition is judged. Returns
	// ErrNoActiveCheckIn, ErrAlreadyCompleted or ErrInvalidOrdering on
	// rejected transitions.
	CompleteCheckOut(ctx context.Context, employeeID string, date time.Time, checkOutTime time.Time, updatedBy string) (*domain.AttendanceRecord, error)
}

// AttendanceRepositoryFacade combines all attendance repository interfaces.
type AttendanceRepositoryFacade interface {
	AttendanceReader
	AttendanceWriter
}

// AttendanceRepositoryWithTx extends the facade with transaction capabilities.
type AttendanceRepositoryWithTx interface {
	AttendanceRepositoryFacade
	TransactionManager
}
