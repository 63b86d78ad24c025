package mapping

import (
	"github.com/peoplehr/hr_ops_app/internal/core/domain"
	"github.com/peoplehr/hr_ops_app/internal/models"
)

// ToModelLeaveBalance converts a domain LeaveBalance to a model LeaveBalance
func ToModelLeaveBalance(d domain.LeaveBalance) models.LeaveBalance {
	return models.LeaveBalance{
		EmployeeID:  d.EmployeeID,
		LeaveTypeID: d.LeaveTypeID,
		Allocated:   d.Allocated,
		Used:        d.Used,
		Version:     d.Version,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLeaveBalance converts a model LeaveBalance to a domain LeaveBalance
func ToDomainLeaveBalance(m models.LeaveBalance) domain.LeaveBalance {
	return domain.LeaveBalance{
		EmployeeID:  m.EmployeeID,
		LeaveTypeID: m.LeaveTypeID,
		Allocated:   m.Allocated,
		Used:        m.Used,
		Version:     m.Version,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLeaveBalanceSlice converts a slice of model balances to domain balances
func ToDomainLeaveBalanceSlice(ms []models.LeaveBalance) []domain.LeaveBalance {
	ds := make([]domain.LeaveBalance, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLeaveBalance(m)
	}
	return ds
}

// ToModelLeaveEntry converts a domain LeaveEntry to a model LeaveEntry
func ToModelLeaveEntry(d domain.LeaveEntry) models.LeaveEntry {
	return models.LeaveEntry{
		EntryID:      d.EntryID,
		EmployeeID:   d.EmployeeID,
		LeaveTypeID:  d.LeaveTypeID,
		EntryType:    models.LeaveEntryType(d.EntryType),
		Units:        d.Units,
		BalanceAfter: d.BalanceAfter,
		Notes:        d.Notes,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLeaveEntry converts a model LeaveEntry to a domain LeaveEntry
func ToDomainLeaveEntry(m models.LeaveEntry) domain.LeaveEntry {
	return domain.LeaveEntry{
		EntryID:      m.EntryID,
		EmployeeID:   m.EmployeeID,
		LeaveTypeID:  m.LeaveTypeID,
		EntryType:    domain.LeaveEntryType(m.EntryType),
		Units:        m.Units,
		BalanceAfter: m.BalanceAfter,
		Notes:        m.Notes,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLeaveType converts a model LeaveType to a domain LeaveType
func ToDomainLeaveType(m models.LeaveType) domain.LeaveType {
	return domain.LeaveType{
		LeaveTypeID: m.LeaveTypeID,
		Name:        m.Name,
		Deduction:   m.Deduction,
		Description: m.Description,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
