package models

import "time"

// AttendanceStatus mirrors domain.AttendanceStatus at the storage layer.
type AttendanceStatus string

const (
	Absent     AttendanceStatus = "ABSENT"
	CheckedIn  AttendanceStatus = "CHECKED_IN"
	CheckedOut AttendanceStatus = "CHECKED_OUT"
)

// AttendanceRecord is a row of attendance_records. One row per
// (employee_id, attendance_date), enforced by a unique index.
type AttendanceRecord struct {
	RecordID       string           `db:"record_id"`
	EmployeeID     string           `db:"employee_id"`
	AttendanceDate time.Time        `db:"attendance_date"`
	CheckInTime    *time.Time       `db:"check_in_time"`
	CheckOutTime   *time.Time       `db:"check_out_time"`
	Status         AttendanceStatus `db:"status"`
	AuditFields
}
