package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AttendanceStatus is the per-day state of an attendance record.
// Transitions only move forward: ABSENT -> CHECKED_IN -> CHECKED_OUT.
type AttendanceStatus string

const (
	Absent     AttendanceStatus = "ABSENT"
	CheckedIn  AttendanceStatus = "CHECKED_IN"
	CheckedOut AttendanceStatus = "CHECKED_OUT"
)

// AttendanceRecord is the time-clock state for one employee on one calendar
// date. At most one record exists per (employee, date); records are never
// deleted, they form the audit trail.
type AttendanceRecord struct {
	RecordID     string           `json:"recordID"` // Primary Key (UUID)
	EmployeeID   string           `json:"employeeID"`
	Date         time.Time        `json:"date"` // Calendar date, midnight server-local
	CheckInTime  *time.Time       `json:"checkInTime,omitempty"`
	CheckOutTime *time.Time       `json:"checkOutTime,omitempty"`
	Status       AttendanceStatus `json:"status"`
	AuditFields
}

// Hours returns the worked hours for a closed record. Open or absent
// records contribute zero until checked out.
func (r AttendanceRecord) Hours() decimal.Decimal {
	if r.Status != CheckedOut || r.CheckInTime == nil || r.CheckOutTime == nil {
		return decimal.Zero
	}
	minutes := r.CheckOutTime.Sub(*r.CheckInTime).Minutes()
	return decimal.NewFromFloat(minutes).Div(decimal.NewFromInt(60)).Round(2)
}

// DateOf truncates an event timestamp to its server-local calendar date.
// The day boundary follows the event timestamp, not request arrival time.
func DateOf(ts time.Time) time.Time {
	local := ts.Local()
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
}
