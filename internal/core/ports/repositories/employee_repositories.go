package repositories

import (
	"context"

	"github.com/peoplehr/hr_ops_app/internal/core/domain"
)

// EmployeeReader defines read operations for employee identities.
type EmployeeReader interface {
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)
	FindEmployeeByUsername(ctx context.Context, username string) (*domain.Employee, error)
	FindEmployeeByProviderID(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.Employee, error)
}

// EmployeeWriter defines the write operations the identity module needs.
type EmployeeWriter interface {
	SaveEmployee(ctx context.Context, employee domain.Employee) error
}

// EmployeeRepositoryFacade combines employee repository interfaces.
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
}
