package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/peoplehr/hr_ops_app/internal/core/domain"
)

// CheckInRequest defines the data for a check-in event. All fields are
// optional: employeeID defaults to the caller (admins may act for others)
// and timestamp defaults to server time.
type CheckInRequest struct {
	EmployeeID *string    `json:"employeeID"`
	Timestamp  *time.Time `json:"timestamp"`
}

// CheckOutRequest defines the data for a check-out event.
type CheckOutRequest struct {
	EmployeeID *string    `json:"employeeID"`
	Timestamp  *time.Time `json:"timestamp"`
}

// AttendanceRecordResponse defines the data returned for one attendance day.
type AttendanceRecordResponse struct {
	RecordID     string          `json:"recordID"`
	EmployeeID   string          `json:"employeeID"`
	Date         string          `json:"date"` // YYYY-MM-DD
	CheckInTime  *time.Time      `json:"checkInTime"`
	CheckOutTime *time.Time      `json:"checkOutTime"`
	Status       string          `json:"status"`
	Hours        decimal.Decimal `json:"hours"`
}

// ListAttendanceParams defines query parameters for listing attendance.
type ListAttendanceParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListAttendanceResponse wraps a page of attendance records.
type ListAttendanceResponse struct {
	Records   []AttendanceRecordResponse `json:"records"`
	NextToken *string                    `json:"nextToken,omitempty"`
}

// ToAttendanceRecordResponse converts a domain.AttendanceRecord to its DTO
func ToAttendanceRecordResponse(rec *domain.AttendanceRecord) AttendanceRecordResponse {
	return AttendanceRecordResponse{
		RecordID:     rec.RecordID,
		EmployeeID:   rec.EmployeeID,
		Date:         rec.Date.Format("2006-01-02"),
		CheckInTime:  rec.CheckInTime,
		CheckOutTime: rec.CheckOutTime,
		Status:       string(rec.Status),
		Hours:        rec.Hours(),
	}
}

// ToListAttendanceResponse converts a page of domain records plus its
// pagination token to the list DTO
func ToListAttendanceResponse(recs []domain.AttendanceRecord, nextToken *string) ListAttendanceResponse {
	records := make([]AttendanceRecordResponse, len(recs))
	for i, rec := range recs {
		records[i] = ToAttendanceRecordResponse(&rec)
	}
	return ListAttendanceResponse{
		Records:   records,
		NextToken: nextToken,
	}
}
