package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/peoplehr/hr_ops_app/internal/apperrors"
	"github.com/peoplehr/hr_ops_app/internal/core/domain"
	portsrepo "github.com/peoplehr/hr_ops_app/internal/core/ports/repositories"
	portssvc "github.com/peoplehr/hr_ops_app/internal/core/ports/services"
	"github.com/peoplehr/hr_ops_app/internal/dto"
	"github.com/peoplehr/hr_ops_app/internal/utils"
)

// employeeService owns employee identity lifecycle. The engine itself only
// consumes verified identities; this service produces the accounts behind
// them.
type employeeService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepositoryFacade
}

// NewEmployeeService creates a new employee identity service.
func NewEmployeeService(repo portsrepo.EmployeeRepositoryFacade) portssvc.EmployeeSvcFacade {
	return &employeeService{employeeRepo: repo}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

// GetEmployeeByID retrieves an active employee by ID.
func (s *employeeService) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	if employeeID == "" {
		return nil, fmt.Errorf("%w: employeeID is required", apperrors.ErrValidation)
	}
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find employee", slog.String("employee_id", employeeID))
		}
		return nil, err
	}
	return employee, nil
}

// GetEmployeeByUsername retrieves an active employee by username.
func (s *employeeService) GetEmployeeByUsername(ctx context.Context, username string) (*domain.Employee, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", apperrors.ErrValidation)
	}
	employee, err := s.employeeRepo.FindEmployeeByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find employee by username")
		}
		return nil, err
	}
	return employee, nil
}

// CreateEmployee registers a local-credential employee.
func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, actorID string) (*domain.Employee, error) {
	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, apperrors.NewAppError(500, "failed to hash password", err)
	}

	role := req.Role
	if role == "" {
		role = domain.RoleEmployee
	}

	now := time.Now().UTC()
	newEmployeeID := uuid.NewString()
	if actorID == "" {
		// Self-registration: the new employee is its own creator
		actorID = newEmployeeID
	}

	employee := domain.Employee{
		EmployeeID:   newEmployeeID,
		Name:         req.Name,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         role,
		OfficeID:     req.OfficeID,
		Department:   req.Department,
		AuthProvider: domain.ProviderLocal,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save employee", slog.String("employee_id", employee.EmployeeID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Employee created", slog.String("employee_id", employee.EmployeeID))
	return &employee, nil
}

// CreateOAuthEmployee finds or creates the employee matching a verified
// external identity. First SSO login provisions the account.
func (s *employeeService) CreateOAuthEmployee(ctx context.Context, name, email string, provider domain.AuthProvider, providerUserID string, emailVerified bool) (*domain.Employee, error) {
	if providerUserID == "" {
		return nil, fmt.Errorf("%w: provider user ID is required", apperrors.ErrValidation)
	}
	if !emailVerified {
		return nil, fmt.Errorf("%w: email not verified by provider", apperrors.ErrUnauthorized)
	}

	existing, err := s.employeeRepo.FindEmployeeByProviderID(ctx, provider, providerUserID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up employee by provider identity")
		return nil, err
	}

	now := time.Now().UTC()
	newEmployeeID := uuid.NewString()
	employee := domain.Employee{
		EmployeeID:     newEmployeeID,
		Name:           name,
		Username:       email,
		Email:          email,
		Role:           domain.RoleEmployee,
		AuthProvider:   provider,
		ProviderUserID: providerUserID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     newEmployeeID,
			LastUpdatedAt: now,
			LastUpdatedBy: newEmployeeID,
		},
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Lost a provisioning race; the winner's row is authoritative
			return s.employeeRepo.FindEmployeeByProviderID(ctx, provider, providerUserID)
		}
		s.LogError(ctx, err, "Failed to provision OAuth employee")
		return nil, err
	}

	s.LogInfo(ctx, "OAuth employee provisioned", slog.String("employee_id", employee.EmployeeID), slog.String("provider", string(provider)))
	return &employee, nil
}
