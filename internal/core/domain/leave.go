package domain

import "github.com/shopspring/decimal"

// LeaveType is a category of absence (sick, vacation, ...). It is reference
// data: immutable from the engine's perspective.
type LeaveType struct {
	LeaveTypeID string          `json:"leaveTypeID"` // Primary Key (UUID)
	Name        string          `json:"name"`
	Deduction   decimal.Decimal `json:"deduction"` // Units deducted per use
	Description string          `json:"description"`
	AuditFields
}

// LeaveBalance is the remaining allotment of one leave type for one
// employee. Available is derived as allocated - used and is never stored,
// which rules out drift between the two.
type LeaveBalance struct {
	EmployeeID  string          `json:"employeeID"`
	LeaveTypeID string          `json:"leaveTypeID"`
	Allocated   decimal.Decimal `json:"allocated"`
	Used        decimal.Decimal `json:"used"`
	Version     int64           `json:"-"` // Optimistic concurrency guard
	AuditFields
}

// Available returns allocated - used.
func (b LeaveBalance) Available() decimal.Decimal {
	return b.Allocated.Sub(b.Used)
}

// LeaveEntryType discriminates ledger entries.
type LeaveEntryType string

const (
	EntryDeduction  LeaveEntryType = "DEDUCTION"
	EntryCredit     LeaveEntryType = "CREDIT"
	EntryAllocation LeaveEntryType = "ALLOCATION"
)

// LeaveEntry is one immutable row of the leave ledger's audit trail,
// appended in the same transaction as the balance mutation it records.
type LeaveEntry struct {
	EntryID      string          `json:"entryID"` // Primary Key (UUID)
	EmployeeID   string          `json:"employeeID"`
	LeaveTypeID  string          `json:"leaveTypeID"`
	EntryType    LeaveEntryType  `json:"entryType"`
	Units        decimal.Decimal `json:"units"`        // Positive value
	BalanceAfter decimal.Decimal `json:"balanceAfter"` // Available balance after this entry
	Notes        string          `json:"notes"`
	AuditFields
}
