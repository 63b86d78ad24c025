package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/peoplehr/hr_ops_app/internal/core/domain"
	portsrepo "github.com/peoplehr/hr_ops_app/internal/core/ports/repositories"
)

// reportingRepository implements the ReportingRepository interface. All of
// its queries return aggregate counts only; individual punch timestamps
// never leave this layer.
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// GetEmployeeAttendanceStats aggregates one employee's attendance within
// [from, to]. Days still checked in count as present with zero minutes.
func (r *reportingRepository) GetEmployeeAttendanceStats(ctx context.Context, employeeID string, from, to time.Time) (*portsrepo.AttendanceStats, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE status IN ('CHECKED_IN', 'CHECKED_OUT')) AS days_present,
			COALESCE(SUM(
				EXTRACT(EPOCH FROM (check_out_time - check_in_time)) / 60
			) FILTER (WHERE status = 'CHECKED_OUT'), 0)::BIGINT AS total_minutes
		FROM attendance_records
		WHERE employee_id = $1
			AND attendance_date BETWEEN $2 AND $3
	`

	var stats portsrepo.AttendanceStats
	err := r.Pool.QueryRow(ctx, query, employeeID, from, to).Scan(
		&stats.DaysPresent,
		&stats.TotalMinutes,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying attendance stats for employee %s: %w", employeeID, err)
	}

	return &stats, nil
}

// GetOfficePresenceRollup aggregates headcount and present day counts per
// office and department. Employees without any attendance in the window
// still contribute headcount, which is what the absent derivation needs.
func (r *reportingRepository) GetOfficePresenceRollup(ctx context.Context, from, to time.Time, filters domain.MetricsFilters) ([]portsrepo.OfficePresence, error) {
	query := `
		SELECT
			e.office_id,
			e.department,
			COUNT(DISTINCT e.employee_id) AS headcount,
			COUNT(a.record_id) AS present_count
		FROM employees e
		LEFT JOIN attendance_records a
			ON a.employee_id = e.employee_id
			AND a.attendance_date BETWEEN $1 AND $2
			AND a.status IN ('CHECKED_IN', 'CHECKED_OUT')
		WHERE e.deleted_at IS NULL
	`
	queryArgs := []interface{}{from, to}

	if filters.OfficeID != "" {
		queryArgs = append(queryArgs, filters.OfficeID)
		query += fmt.Sprintf(" AND e.office_id = $%d", len(queryArgs))
	}
	if filters.Department != "" {
		queryArgs = append(queryArgs, filters.Department)
		query += fmt.Sprintf(" AND e.department = $%d", len(queryArgs))
	}

	query += `
		GROUP BY e.office_id, e.department
		ORDER BY e.office_id, e.department
	`

	rows, err := r.Pool.Query(ctx, query, queryArgs...)
	if err != nil {
		return nil, fmt.Errorf("error querying office presence rollup: %w", err)
	}
	defer rows.Close()

	result := []portsrepo.OfficePresence{}
	for rows.Next() {
		var row portsrepo.OfficePresence
		if err := rows.Scan(
			&row.OfficeID,
			&row.Department,
			&row.Headcount,
			&row.PresentCount,
		); err != nil {
			return nil, fmt.Errorf("error scanning office presence row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating office presence rows: %w", err)
	}

	return result, nil
}

// GetLeaveUsageRollup aggregates ledger deductions per leave type within
// [from, to].
func (r *reportingRepository) GetLeaveUsageRollup(ctx context.Context, from, to time.Time) ([]domain.LeaveUsageRow, error) {
	query := `
		SELECT
			le.leave_type_id,
			lt.name AS leave_type_name,
			COALESCE(SUM(le.units), 0) AS total_used,
			COUNT(DISTINCT le.employee_id) AS employee_count
		FROM leave_entries le
		JOIN leave_types lt ON lt.leave_type_id = le.leave_type_id
		WHERE le.entry_type = 'DEDUCTION'
			AND le.created_at >= $1
			AND le.created_at < $2 + INTERVAL '1 day'
		GROUP BY le.leave_type_id, lt.name
		ORDER BY lt.name
	`

	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying leave usage rollup: %w", err)
	}
	defer rows.Close()

	result := []domain.LeaveUsageRow{}
	for rows.Next() {
		var row domain.LeaveUsageRow
		if err := rows.Scan(
			&row.LeaveTypeID,
			&row.LeaveTypeName,
			&row.TotalUsed,
			&row.EmployeeCount,
		); err != nil {
			return nil, fmt.Errorf("error scanning leave usage row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating leave usage rows: %w", err)
	}

	return result, nil
}
