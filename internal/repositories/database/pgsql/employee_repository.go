package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/peoplehr/hr_ops_app/internal/apperrors"
	"github.com/peoplehr/hr_ops_app/internal/core/domain"
	portsrepo "github.com/peoplehr/hr_ops_app/internal/core/ports/repositories"
	"github.com/peoplehr/hr_ops_app/internal/models"
	"github.com/peoplehr/hr_ops_app/internal/utils/mapping"
)

type PgxEmployeeRepository struct {
	BaseRepository
}

// newPgxEmployeeRepository creates a new repository for employee identities.
func newPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxEmployeeRepository implements portsrepo.EmployeeRepositoryFacade
var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

const employeeColumns = `employee_id, name, username, email, password_hash, role, office_id, department, auth_provider, provider_user_id, created_at, created_by, last_updated_at, last_updated_by, deleted_at`

// scanEmployee scans one employees row. provider_user_id is NULL for local
// accounts so the partial unique index on OAuth identities stays clean.
func scanEmployee(row pgx.Row) (*models.Employee, error) {
	var modelEmp models.Employee
	var providerUserID sql.NullString
	err := row.Scan(
		&modelEmp.EmployeeID,
		&modelEmp.Name,
		&modelEmp.Username,
		&modelEmp.Email,
		&modelEmp.PasswordHash,
		&modelEmp.Role,
		&modelEmp.OfficeID,
		&modelEmp.Department,
		&modelEmp.AuthProvider,
		&providerUserID,
		&modelEmp.CreatedAt,
		&modelEmp.CreatedBy,
		&modelEmp.LastUpdatedAt,
		&modelEmp.LastUpdatedBy,
		&modelEmp.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	if providerUserID.Valid {
		modelEmp.ProviderUserID = providerUserID.String
	}
	return &modelEmp, nil
}

// SaveEmployee inserts a new employee.
func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	modelEmp := mapping.ToModelEmployee(employee)

	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	var providerUserID sql.NullString
	if modelEmp.ProviderUserID != "" {
		providerUserID = sql.NullString{String: modelEmp.ProviderUserID, Valid: true}
	}

	_, err := r.Pool.Exec(ctx, query,
		modelEmp.EmployeeID,
		modelEmp.Name,
		modelEmp.Username,
		modelEmp.Email,
		modelEmp.PasswordHash,
		modelEmp.Role,
		modelEmp.OfficeID,
		modelEmp.Department,
		modelEmp.AuthProvider,
		providerUserID,
		modelEmp.CreatedAt,
		modelEmp.CreatedBy,
		modelEmp.LastUpdatedAt,
		modelEmp.LastUpdatedBy,
		modelEmp.DeletedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: employee with username %s already exists", apperrors.ErrDuplicate, modelEmp.Username)
		}
		return fmt.Errorf("failed to save employee %s: %w", modelEmp.EmployeeID, err)
	}
	return nil
}

// FindEmployeeByID retrieves an active employee by ID.
func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE employee_id = $1 AND deleted_at IS NULL;
	`
	modelEmp, err := scanEmployee(r.Pool.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee by ID %s: %w", employeeID, err)
	}

	domainEmp := mapping.ToDomainEmployee(*modelEmp)
	return &domainEmp, nil
}

// FindEmployeeByUsername retrieves an active employee by username.
func (r *PgxEmployeeRepository) FindEmployeeByUsername(ctx context.Context, username string) (*domain.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE username = $1 AND deleted_at IS NULL;
	`
	modelEmp, err := scanEmployee(r.Pool.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee by username: %w", err)
	}

	domainEmp := mapping.ToDomainEmployee(*modelEmp)
	return &domainEmp, nil
}

// FindEmployeeByProviderID retrieves an active employee by OAuth provider
// identity.
func (r *PgxEmployeeRepository) FindEmployeeByProviderID(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE auth_provider = $1 AND provider_user_id = $2 AND deleted_at IS NULL;
	`
	modelEmp, err := scanEmployee(r.Pool.QueryRow(ctx, query, string(provider), providerUserID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee by provider identity: %w", err)
	}

	domainEmp := mapping.ToDomainEmployee(*modelEmp)
	return &domainEmp, nil
}
