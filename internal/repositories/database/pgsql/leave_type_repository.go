package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/peoplehr/hr_ops_app/internal/apperrors"
	"github.com/peoplehr/hr_ops_app/internal/core/domain"
	portsrepo "github.com/peoplehr/hr_ops_app/internal/core/ports/repositories"
	"github.com/peoplehr/hr_ops_app/internal/models"
	"github.com/peoplehr/hr_ops_app/internal/utils/mapping"
)

type PgxLeaveTypeRepository struct {
	BaseRepository
}

// newPgxLeaveTypeRepository creates a new repository for leave type
// reference data. The engine only reads leave types; rows come from
// migrations or back-office seeding.
func newPgxLeaveTypeRepository(pool *pgxpool.Pool) portsrepo.LeaveTypeReader {
	return &PgxLeaveTypeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxLeaveTypeRepository implements portsrepo.LeaveTypeReader
var _ portsrepo.LeaveTypeReader = (*PgxLeaveTypeRepository)(nil)

// FindLeaveTypeByID retrieves a leave type by its ID.
func (r *PgxLeaveTypeRepository) FindLeaveTypeByID(ctx context.Context, leaveTypeID string) (*domain.LeaveType, error) {
	query := `
		SELECT leave_type_id, name, deduction, description, created_at, created_by, last_updated_at, last_updated_by
		FROM leave_types
		WHERE leave_type_id = $1;
	`
	var modelLT models.LeaveType
	err := r.Pool.QueryRow(ctx, query, leaveTypeID).Scan(
		&modelLT.LeaveTypeID,
		&modelLT.Name,
		&modelLT.Deduction,
		&modelLT.Description,
		&modelLT.CreatedAt,
		&modelLT.CreatedBy,
		&modelLT.LastUpdatedAt,
		&modelLT.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find leave type %s: %w", leaveTypeID, err)
	}

	domainLT := mapping.ToDomainLeaveType(modelLT)
	return &domainLT, nil
}

// ListLeaveTypes retrieves all leave types.
func (r *PgxLeaveTypeRepository) ListLeaveTypes(ctx context.Context) ([]domain.LeaveType, error) {
	query := `
		SELECT leave_type_id, name, deduction, description, created_at, created_by, last_updated_at, last_updated_by
		FROM leave_types
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave types: %w", err)
	}
	defer rows.Close()

	leaveTypes := []domain.LeaveType{}
	for rows.Next() {
		var modelLT models.LeaveType
		err := rows.Scan(
			&modelLT.LeaveTypeID,
			&modelLT.Name,
			&modelLT.Deduction,
			&modelLT.Description,
			&modelLT.CreatedAt,
			&modelLT.CreatedBy,
			&modelLT.LastUpdatedAt,
			&modelLT.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave type row: %w", err)
		}
		leaveTypes = append(leaveTypes, mapping.ToDomainLeaveType(modelLT))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating leave type rows: %w", err)
	}

	return leaveTypes, nil
}
