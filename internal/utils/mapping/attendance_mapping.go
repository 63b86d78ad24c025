package mapping

import (
	"github.com/peoplehr/hr_ops_app/internal/core/domain"
	"github.com/peoplehr/hr_ops_app/internal/models"
)

// ToModelAttendanceRecord converts a domain AttendanceRecord to a model AttendanceRecord
func ToModelAttendanceRecord(d domain.AttendanceRecord) models.AttendanceRecord {
	return models.AttendanceRecord{
		RecordID:       d.RecordID,
		EmployeeID:     d.EmployeeID,
		AttendanceDate: d.Date,
		CheckInTime:    d.CheckInTime,
		CheckOutTime:   d.CheckOutTime,
		Status:         models.AttendanceStatus(d.Status),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAttendanceRecord converts a model AttendanceRecord to a domain AttendanceRecord
func ToDomainAttendanceRecord(m models.AttendanceRecord) domain.AttendanceRecord {
	return domain.AttendanceRecord{
		RecordID:     m.RecordID,
		EmployeeID:   m.EmployeeID,
		Date:         m.AttendanceDate,
		CheckInTime:  m.CheckInTime,
		CheckOutTime: m.CheckOutTime,
		Status:       domain.AttendanceStatus(m.Status),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAttendanceRecordSlice converts a slice of model records to domain records
func ToDomainAttendanceRecordSlice(ms []models.AttendanceRecord) []domain.AttendanceRecord {
	ds := make([]domain.AttendanceRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAttendanceRecord(m)
	}
	return ds
}
