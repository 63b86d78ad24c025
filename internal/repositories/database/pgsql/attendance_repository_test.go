package pgsql

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/peoplehr/hr_ops_app/internal/apperrors"
	"github.com/peoplehr/hr_ops_app/internal/models"
)

func TestCheckInConflictClassification(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local)

	// A closed day is never re-opened
	err := checkInConflictError(models.CheckedOut, "emp-1", date)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyCompleted)
	assert.NotErrorIs(t, err, apperrors.ErrDuplicateCheckIn)

	err = checkInConflictError(models.CheckedIn, "emp-1", date)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateCheckIn)
	assert.NotErrorIs(t, err, apperrors.ErrAlreadyCompleted)
}

func TestCheckOutTransitionJudgment(t *testing.T) {
	checkIn := time.Date(2025, 6, 2, 9, 0, 0, 0, time.Local)
	rec := models.AttendanceRecord{
		RecordID:       "rec-1",
		EmployeeID:     "emp-1",
		AttendanceDate: time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local),
		CheckInTime:    &checkIn,
		Status:         models.CheckedIn,
	}

	assert.NoError(t, judgeCheckOutTransition(rec, checkIn.Add(8*time.Hour)))

	// Check-out at the exact check-in instant is rejected, not just earlier ones
	assert.ErrorIs(t, judgeCheckOutTransition(rec, checkIn), apperrors.ErrInvalidOrdering)
	assert.ErrorIs(t, judgeCheckOutTransition(rec, checkIn.Add(-time.Minute)), apperrors.ErrInvalidOrdering)

	closed := rec
	closed.Status = models.CheckedOut
	assert.ErrorIs(t, judgeCheckOutTransition(closed, checkIn.Add(time.Hour)), apperrors.ErrAlreadyCompleted)

	absent := rec
	absent.Status = models.Absent
	assert.ErrorIs(t, judgeCheckOutTransition(absent, checkIn.Add(time.Hour)), apperrors.ErrNoActiveCheckIn)

	noCheckIn := rec
	noCheckIn.CheckInTime = nil
	assert.ErrorIs(t, judgeCheckOutTransition(noCheckIn, checkIn.Add(time.Hour)), apperrors.ErrNoActiveCheckIn)
}
