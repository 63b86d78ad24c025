package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/peoplehr/hr_ops_app/internal/apperrors"
	"github.com/peoplehr/hr_ops_app/internal/core/domain"
	portsrepo "github.com/peoplehr/hr_ops_app/internal/core/ports/repositories"
	portssvc "github.com/peoplehr/hr_ops_app/internal/core/ports/services"
)

// attendanceService implements the per-employee-per-day attendance state
// machine. The repository's unique index and row locking are the final
// arbiters under concurrency; this layer owns day derivation and event
// validation.
type attendanceService struct {
	BaseService
	attendanceRepo portsrepo.AttendanceRepositoryWithTx
}

// NewAttendanceService creates a new attendance service.
func NewAttendanceService(repo portsrepo.AttendanceRepositoryWithTx) portssvc.AttendanceSvcFacade {
	return &attendanceService{attendanceRepo: repo}
}

var _ portssvc.AttendanceSvcFacade = (*attendanceService)(nil)

// CheckIn creates the day's record in CHECKED_IN state. The day is derived
// from the event timestamp, so a request that crosses midnight in flight is
// still attributed to the day the punch happened.
func (s *attendanceService) CheckIn(ctx context.Context, employeeID string, ts time.Time) (*domain.AttendanceRecord, error) {
	if employeeID == "" {
		return nil, fmt.Errorf("%w: employeeID is required", apperrors.ErrValidation)
	}
	if ts.IsZero() {
		return nil, fmt.Errorf("%w: event timestamp is required", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	checkInTime := ts
	record := domain.AttendanceRecord{
		RecordID:    uuid.NewString(),
		EmployeeID:  employeeID,
		Date:        domain.DateOf(ts),
		CheckInTime: &checkInTime,
		Status:      domain.CheckedIn,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     employeeID,
			LastUpdatedAt: now,
			LastUpdatedBy: employeeID,
		},
	}

	if err := s.attendanceRepo.CreateCheckIn(ctx, record); err != nil {
		if !apperrors.IsStateConflict(err) {
			s.LogError(ctx, err, "Failed to save check-in", slog.String("employee_id", employeeID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Employee checked in", slog.String("employee_id", employeeID), slog.String("record_id", record.RecordID))
	return &record, nil
}

// CheckOut closes the day's record. The repository re-reads the row under
// lock, so the decision always sees a committed check-in even when the two
// events race.
func (s *attendanceService) CheckOut(ctx context.Context, employeeID string, ts time.Time) (*domain.AttendanceRecord, error) {
	if employeeID == "" {
		return nil, fmt.Errorf("%w: employeeID is required", apperrors.ErrValidation)
	}
	if ts.IsZero() {
		return nil, fmt.Errorf("%w: event timestamp is required", apperrors.ErrValidation)
	}

	record, err := s.attendanceRepo.CompleteCheckOut(ctx, employeeID, domain.DateOf(ts), ts, employeeID)
	if err != nil {
		if !apperrors.IsStateConflict(err) {
			s.LogError(ctx, err, "Failed to complete check-out", slog.String("employee_id", employeeID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Employee checked out", slog.String("employee_id", employeeID), slog.String("record_id", record.RecordID))
	return record, nil
}

// ListAttendance returns the employee's attendance history, newest first.
func (s *attendanceService) ListAttendance(ctx context.Context, employeeID string, limit int, nextToken *string) ([]domain.AttendanceRecord, *string, error) {
	if employeeID == "" {
		return nil, nil, fmt.Errorf("%w: employeeID is required", apperrors.ErrValidation)
	}

	records, token, err := s.attendanceRepo.ListRecordsByEmployee(ctx, employeeID, limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list attendance records", slog.String("employee_id", employeeID))
		return nil, nil, err
	}
	return records, token, nil
}
