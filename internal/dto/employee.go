package dto

import (
	"github.com/peoplehr/hr_ops_app/internal/core/domain"
)

// CreateEmployeeRequest defines the data needed to register a
// local-credential employee.
type CreateEmployeeRequest struct {
	Name       string      `json:"name" binding:"required"`
	Username   string      `json:"username" binding:"required"`
	Email      string      `json:"email" binding:"omitempty,email"`
	Password   string      `json:"password" binding:"required,min=8"`
	Role       domain.Role `json:"role" binding:"omitempty,oneof=ADMIN EMPLOYEE"`
	OfficeID   string      `json:"officeID"`
	Department string      `json:"department"`
}

// EmployeeResponse defines the data returned for an employee. The password
// hash never leaves the service layer.
type EmployeeResponse struct {
	EmployeeID string      `json:"employeeID"`
	Name       string      `json:"name"`
	Username   string      `json:"username"`
	Email      string      `json:"email"`
	Role       domain.Role `json:"role"`
	OfficeID   string      `json:"officeID"`
	Department string      `json:"department"`
}

// ToEmployeeResponse converts a domain.Employee to EmployeeResponse DTO
func ToEmployeeResponse(emp *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID: emp.EmployeeID,
		Name:       emp.Name,
		Username:   emp.Username,
		Email:      emp.Email,
		Role:       emp.Role,
		OfficeID:   emp.OfficeID,
		Department: emp.Department,
	}
}
