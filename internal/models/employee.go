package models

import "time"

// Employee is a row of employees. The engine reads it for identity and
// rollup grouping (office, department); lifecycle belongs to the identity
// module.
type Employee struct {
	EmployeeID     string     `db:"employee_id"`
	Name           string     `db:"name"`
	Username       string     `db:"username"`
	Email          string     `db:"email"`
	PasswordHash   string     `db:"password_hash"`
	Role           string     `db:"role"`
	OfficeID       string     `db:"office_id"`
	Department     string     `db:"department"`
	AuthProvider   string     `db:"auth_provider"`
	ProviderUserID string     `db:"provider_user_id"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
