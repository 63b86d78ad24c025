package mapping

import (
	"github.com/peoplehr/hr_ops_app/internal/core/domain"
	"github.com/peoplehr/hr_ops_app/internal/models"
)

// ToModelEmployee converts a domain Employee to a model Employee
func ToModelEmployee(d domain.Employee) models.Employee {
	return models.Employee{
		EmployeeID:     d.EmployeeID,
		Name:           d.Name,
		Username:       d.Username,
		Email:          d.Email,
		PasswordHash:   d.PasswordHash,
		Role:           string(d.Role),
		OfficeID:       d.OfficeID,
		Department:     d.Department,
		AuthProvider:   string(d.AuthProvider),
		ProviderUserID: d.ProviderUserID,
		AuditFields:    ToModelAuditFields(d.AuditFields),
		DeletedAt:      d.DeletedAt,
	}
}

// ToDomainEmployee converts a model Employee to a domain Employee
func ToDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		EmployeeID:     m.EmployeeID,
		Name:           m.Name,
		Username:       m.Username,
		Email:          m.Email,
		PasswordHash:   m.PasswordHash,
		Role:           domain.Role(m.Role),
		OfficeID:       m.OfficeID,
		Department:     m.Department,
		AuthProvider:   domain.AuthProvider(m.AuthProvider),
		ProviderUserID: m.ProviderUserID,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
		DeletedAt:      m.DeletedAt,
	}
}
