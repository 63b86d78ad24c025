package services

import (
	"context"

	"github.com/peoplehr/hr_ops_app/internal/core/domain"
	"github.com/peoplehr/hr_ops_app/internal/dto"
)

// EmployeeSvcFacade is the identity collaborator: the engine consumes
// verified identities, this service produces them.
type EmployeeSvcFacade interface {
	GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)
	GetEmployeeByUsername(ctx context.Context, username string) (*domain.Employee, error)

	// CreateEmployee registers a local-credential employee.
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, actorID string) (*domain.Employee, error)

	// CreateOAuthEmployee finds or creates the employee matching a verified
	// external identity (first SSO login provisions the account).
	CreateOAuthEmployee(ctx context.Context, name, email string, provider domain.AuthProvider, providerUserID string, emailVerified bool) (*domain.Employee, error)
}
