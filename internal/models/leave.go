package models

import "github.com/shopspring/decimal"

// LeaveType is a row of leave_types reference data.
type LeaveType struct {
	LeaveTypeID string          `db:"leave_type_id"`
	Name        string          `db:"name"`
	Deduction   decimal.Decimal `db:"deduction"`
	Description string          `db:"description"`
	AuditFields
}

// LeaveBalance is a row of leave_balances, keyed by
// (employee_id, leave_type_id). Available balance is not a column; it is
// always derived from allocated - used. The version column guards
// concurrent updates.
type LeaveBalance struct {
	EmployeeID  string          `db:"employee_id"`
	LeaveTypeID string          `db:"leave_type_id"`
	Allocated   decimal.Decimal `db:"allocated"`
	Used        decimal.Decimal `db:"used"`
	Version     int64           `db:"version"`
	AuditFields
}

// LeaveEntryType discriminates leave_entries rows.
type LeaveEntryType string

// LeaveEntry is an append-only row of leave_entries, the ledger audit trail.
type LeaveEntry struct {
	EntryID      string          `db:"entry_id"`
	EmployeeID   string          `db:"employee_id"`
	LeaveTypeID  string          `db:"leave_type_id"`
	EntryType    LeaveEntryType  `db:"entry_type"`
	Units        decimal.Decimal `db:"units"`
	BalanceAfter decimal.Decimal `db:"balance_after"`
	Notes        string          `db:"notes"`
	AuditFields
}
