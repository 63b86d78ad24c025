package domain

import "time"

// Role classifies what an authenticated caller may do.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleEmployee Role = "EMPLOYEE"
)

// Identity is the verified caller extracted from an access token.
// Authorization is expressed as explicit predicates on it rather than
// controller hierarchies.
type Identity struct {
	EmployeeID string
	Role       Role
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// CanActFor reports whether the identity may perform employee-scoped
// operations for the given employee. Admins may act for anyone.
func (i Identity) CanActFor(employeeID string) bool {
	return i.IsAdmin() || i.EmployeeID == employeeID
}

// AuthProvider identifies how an employee authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

// Employee represents an employee identity in the domain. The engine only
// reads it; lifecycle is owned by the identity/HR module.
type Employee struct {
	EmployeeID     string       `json:"employeeID"` // Primary Key (UUID)
	Name           string       `json:"name"`
	Username       string       `json:"username"`
	Email          string       `json:"email"`
	PasswordHash   string       `json:"-"`
	Role           Role         `json:"role"`
	OfficeID       string       `json:"officeID"`
	Department     string       `json:"department"`
	AuthProvider   AuthProvider `json:"-"`
	ProviderUserID string       `json:"-"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Soft delete
}
