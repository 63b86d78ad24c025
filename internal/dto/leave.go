package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/peoplehr/hr_ops_app/internal/core/domain"
)

// DeductLeaveRequest defines the data for deducting units from a balance.
// Employee and leave type ride in the URL path.
type DeductLeaveRequest struct {
	Units decimal.Decimal `json:"units" binding:"required,gt=0"`
	Notes string          `json:"notes"`
}

// CreditLeaveRequest defines the data for crediting units back to a balance.
type CreditLeaveRequest struct {
	Units decimal.Decimal `json:"units" binding:"required,gt=0"`
	Notes string          `json:"notes"`
}

// AllocateLeaveRequest defines the data for onboarding an employee to a
// leave type with an opening allocation. A zero opening allocation is valid;
// the service rejects negatives.
type AllocateLeaveRequest struct {
	EmployeeID  string          `json:"employeeID"`
	LeaveTypeID string          `json:"leaveTypeID" binding:"required"`
	Allocated   decimal.Decimal `json:"allocated"`
}

// LeaveBalanceResponse defines the data returned for one balance. Available
// is always derived, never stored.
type LeaveBalanceResponse struct {
	EmployeeID  string          `json:"employeeID"`
	LeaveTypeID string          `json:"leaveTypeID"`
	Allocated   decimal.Decimal `json:"allocated"`
	Used        decimal.Decimal `json:"used"`
	Available   decimal.Decimal `json:"available"`
}

// LeaveEntryResponse defines the data returned for one ledger entry.
type LeaveEntryResponse struct {
	EntryID      string          `json:"entryID"`
	EmployeeID   string          `json:"employeeID"`
	LeaveTypeID  string          `json:"leaveTypeID"`
	EntryType    string          `json:"entryType"`
	Units        decimal.Decimal `json:"units"`
	BalanceAfter decimal.Decimal `json:"balanceAfter"`
	Notes        string          `json:"notes"`
	CreatedAt    time.Time       `json:"createdAt"`
	CreatedBy    string          `json:"createdBy"`
}

// LeaveTypeResponse defines the data returned for a leave type.
type LeaveTypeResponse struct {
	LeaveTypeID string          `json:"leaveTypeID"`
	Name        string          `json:"name"`
	Deduction   decimal.Decimal `json:"deduction"`
	Description string          `json:"description"`
}

// ToLeaveBalanceResponse converts a domain.LeaveBalance to its DTO
func ToLeaveBalanceResponse(bal *domain.LeaveBalance) LeaveBalanceResponse {
	return LeaveBalanceResponse{
		EmployeeID:  bal.EmployeeID,
		LeaveTypeID: bal.LeaveTypeID,
		Allocated:   bal.Allocated,
		Used:        bal.Used,
		Available:   bal.Available(),
	}
}

// ToListLeaveBalancesResponse converts a slice of domain.LeaveBalance to DTOs
func ToListLeaveBalancesResponse(bals []domain.LeaveBalance) []LeaveBalanceResponse {
	res := make([]LeaveBalanceResponse, len(bals))
	for i, bal := range bals {
		res[i] = ToLeaveBalanceResponse(&bal)
	}
	return res
}

// ToLeaveEntryResponse converts a domain.LeaveEntry to its DTO
func ToLeaveEntryResponse(entry *domain.LeaveEntry) LeaveEntryResponse {
	return LeaveEntryResponse{
		EntryID:      entry.EntryID,
		EmployeeID:   entry.EmployeeID,
		LeaveTypeID:  entry.LeaveTypeID,
		EntryType:    string(entry.EntryType),
		Units:        entry.Units,
		BalanceAfter: entry.BalanceAfter,
		Notes:        entry.Notes,
		CreatedAt:    entry.CreatedAt,
		CreatedBy:    entry.CreatedBy,
	}
}

// ToListLeaveEntriesResponse converts a slice of domain.LeaveEntry to DTOs
func ToListLeaveEntriesResponse(entries []domain.LeaveEntry) []LeaveEntryResponse {
	res := make([]LeaveEntryResponse, len(entries))
	for i, entry := range entries {
		res[i] = ToLeaveEntryResponse(&entry)
	}
	return res
}

// ToLeaveTypeResponse converts a domain.LeaveType to its DTO
func ToLeaveTypeResponse(lt *domain.LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		LeaveTypeID: lt.LeaveTypeID,
		Name:        lt.Name,
		Deduction:   lt.Deduction,
		Description: lt.Description,
	}
}

// ToListLeaveTypesResponse converts a slice of domain.LeaveType to DTOs
func ToListLeaveTypesResponse(lts []domain.LeaveType) []LeaveTypeResponse {
	res := make([]LeaveTypeResponse, len(lts))
	for i, lt := range lts {
		res[i] = ToLeaveTypeResponse(&lt)
	}
	return res
}
