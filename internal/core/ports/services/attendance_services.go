package services

import (
	"context"
	"time"

	"github.com/peoplehr/hr_ops_app/internal/core/domain"
)

// AttendanceSvcFacade is the attendance state machine: raw check-in/out
// events in, per-employee-per-day records out.
type AttendanceSvcFacade interface {
	// CheckIn creates today's record in CHECKED_IN state. The day is the
	// server-local calendar date of ts, not of request arrival.
	CheckIn(ctx context.Context, employeeID string, ts time.Time) (*domain.AttendanceRecord, error)

	// CheckOut closes today's record. Requires an active check-in and
	// ts strictly after the check-in time.
	CheckOut(ctx context.Context, employeeID string, ts time.Time) (*domain.AttendanceRecord, error)

	// ListAttendance returns the employee's attendance history, newest
	// first, with token pagination.
	ListAttendance(ctx context.Context, employeeID string, limit int, nextToken *string) ([]domain.AttendanceRecord, *string, error)
}
