package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplehr/hr_ops_app/internal/core/domain"
)

func TestAttendanceRecordHours(t *testing.T) {
	checkIn := time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local)
	checkOut := time.Date(2024, 1, 1, 17, 0, 0, 0, time.Local)

	record := domain.AttendanceRecord{
		Status:       domain.CheckedOut,
		CheckInTime:  &checkIn,
		CheckOutTime: &checkOut,
	}
	assert.True(t, record.Hours().Equal(decimal.NewFromInt(8)), "expected 8 hours, got %s", record.Hours())

	halfDay := time.Date(2024, 1, 1, 13, 30, 0, 0, time.Local)
	record.CheckOutTime = &halfDay
	assert.True(t, record.Hours().Equal(decimal.NewFromFloat(4.5)))
}

func TestAttendanceRecordHoursOpenDay(t *testing.T) {
	checkIn := time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local)

	// In-progress check-ins contribute zero hours until checked out.
	record := domain.AttendanceRecord{
		Status:      domain.CheckedIn,
		CheckInTime: &checkIn,
	}
	assert.True(t, record.Hours().IsZero())
}

func TestDateOfUsesEventTimestamp(t *testing.T) {
	ts := time.Date(2024, 3, 15, 23, 59, 0, 0, time.Local)
	date := domain.DateOf(ts)

	assert.Equal(t, 2024, date.Year())
	assert.Equal(t, time.March, date.Month())
	assert.Equal(t, 15, date.Day())
	assert.Equal(t, 0, date.Hour())
}

func TestLeaveBalanceAvailable(t *testing.T) {
	b := domain.LeaveBalance{
		Allocated: decimal.NewFromInt(10),
		Used:      decimal.NewFromInt(2),
	}
	assert.True(t, b.Available().Equal(decimal.NewFromInt(8)))
}

func TestIdentityPredicates(t *testing.T) {
	admin := domain.Identity{EmployeeID: "a1", Role: domain.RoleAdmin}
	employee := domain.Identity{EmployeeID: "e1", Role: domain.RoleEmployee}

	assert.True(t, admin.IsAdmin())
	assert.True(t, admin.CanActFor("e1"))

	assert.False(t, employee.IsAdmin())
	assert.True(t, employee.CanActFor("e1"))
	assert.False(t, employee.CanActFor("e2"))
}

func TestPeriodValidate(t *testing.T) {
	ok := domain.Period{From: time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local), To: time.Date(2024, 1, 31, 0, 0, 0, 0, time.Local)}
	assert.NoError(t, ok.Validate())
	assert.Equal(t, 31, ok.Days())

	bad := domain.Period{From: ok.To, To: ok.From}
	assert.Error(t, bad.Validate())
}

func TestPeriodDaysSingleDay(t *testing.T) {
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local)
	p := domain.Period{From: day, To: day}
	assert.Equal(t, 1, p.Days())
}

func TestPeriodDaysAcrossDSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2025-03-09 springs forward, so midnight-to-midnight is only 47 hours.
	// The period still covers three calendar days.
	p := domain.Period{
		From: time.Date(2025, 3, 8, 0, 0, 0, 0, loc),
		To:   time.Date(2025, 3, 10, 0, 0, 0, 0, loc),
	}
	assert.Equal(t, 3, p.Days())
}
